package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		ReadOnlyMongo  *mongo.Client
		Redis          *redis.Client
		RabbitMQ       *amqp091.Connection
		Minio          *minio.Client
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	DriverConfig struct {
		SurveyStore SurveyStore
		Redis       Redis
		RabbitMQ    RabbitMQ
		Minio       Minio
		Logger      Logger
	}

	// SurveyStore carries the external store connection parameters. Two
	// credential tiers: the service URI for full access and a restricted
	// read-only URI used when the service tier is not configured.
	SurveyStore struct {
		ServiceURI  string
		ReadOnlyURI string
		DbName      string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	InternalConfig struct {
		App App
		JWT JWT
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Timezone                  string
		EndpointPrefix            string
		FrontendBaseURL           string
		MailerQueue               string
		MaxRequests               int
		ShutdownTimeout           int
		SessionExpTimeInHour      int
		OTPExpTimeInMinute        int
		OTPResendPerMinute        int
		ResetTokenExpTimeInMinute int
		ExportArchiveEnabled      bool
	}

	JWT struct {
		Secret string
	}
)
