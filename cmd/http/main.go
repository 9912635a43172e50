package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nutrisurvey-service/internal/app/config"
	"nutrisurvey-service/internal/app/delivery/http/middlewares"
	"nutrisurvey-service/internal/app/delivery/http/routers"
	"nutrisurvey-service/internal/app/drivers/database"
	"nutrisurvey-service/internal/app/drivers/logger"
	"nutrisurvey-service/internal/app/drivers/messaging"
	"nutrisurvey-service/internal/app/drivers/storage"
	"nutrisurvey-service/internal/app/services/core/auth"
	"nutrisurvey-service/internal/app/services/core/reports"
	"nutrisurvey-service/internal/app/services/core/surveysessions"
	"nutrisurvey-service/internal/app/services/shared/mailerqueue"
	"nutrisurvey-service/internal/app/services/shared/redis"
	sharedstorage "nutrisurvey-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	lifecycleLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        database.NewMongoDB(driverConfig),
		ReadOnlyMongo:  database.NewReadOnlyMongoDB(driverConfig),
		Redis:          database.NewRedisClient(driverConfig),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if internalConfig.App.ExportArchiveEnabled {
		bootstrap.Minio = storage.NewMinio(driverConfig)
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	lifecycleLog.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	lifecycleLog.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Mailer queue
	mailerQueue, err := mailerqueue.NewMailerQueue(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.MailerQueue)
	if err != nil {
		log.Fatalf("Failed to open mailer queue channel: %v", err)
	}

	// Export archive
	var exportArchive sharedstorage.ExportArchive
	if bootstrap.Minio != nil {
		exportArchive = sharedstorage.NewMinioArchive(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, redisRepository, bootstrap.InternalConfig)

	// Auth
	userMongoRepository := auth.NewUserMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.SurveyStore.DbName,
	)
	authUseCase := auth.NewAuthUsecase(userMongoRepository, redisRepository, mailerQueue, bootstrap.InternalConfig)
	authController := auth.NewAuthController(bootstrap.Logger, authUseCase)

	// Reports
	surveySessionRepository := surveysessions.NewSurveySessionMongoRepository(
		bootstrap.ReadOnlyMongo,
		bootstrap.DriverConfig.SurveyStore.DbName,
	)
	reportUseCase := reports.NewReportUsecase(surveySessionRepository, exportArchive, bootstrap.InternalConfig, bootstrap.Logger)
	reportController := reports.NewReportController(bootstrap.Logger, reportUseCase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, authController, reportController)
}
