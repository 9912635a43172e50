package config

import (
	"nutrisurvey-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		SurveyStore: SurveyStore{
			ServiceURI:  utils.GetEnvString("SURVEY_STORE_SERVICE_URI", "mongodb://localhost:27017"),
			ReadOnlyURI: utils.GetEnvString("SURVEY_STORE_READONLY_URI", ""),
			DbName:      utils.GetEnvString("SURVEY_STORE_DB_NAME", "nutrisurvey"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", ""),
			Password:   utils.GetEnvString("MINIO_PASSWORD", ""),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "nutrisurvey-exports"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "Asia/Bangkok"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			FrontendBaseURL:           utils.GetEnvString("APP_FRONTEND_BASE_URL", "http://localhost:3000"),
			MailerQueue:               utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "nutrisurvey_mailer_queue"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			SessionExpTimeInHour:      utils.GetEnvInt("APP_SESSION_EXP_TIME_IN_HOUR", 12),
			OTPExpTimeInMinute:        utils.GetEnvInt("APP_OTP_EXP_TIME_IN_MINUTE", 10),
			OTPResendPerMinute:        utils.GetEnvInt("APP_OTP_RESEND_PER_MINUTE", 1),
			ResetTokenExpTimeInMinute: utils.GetEnvInt("APP_RESET_TOKEN_EXP_TIME_IN_MINUTE", 30),
			ExportArchiveEnabled:      utils.GetEnvBool("APP_EXPORT_ARCHIVE_ENABLED", false),
		},
		JWT: JWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
	}
}
