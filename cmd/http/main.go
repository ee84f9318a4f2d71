package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aidentify-service/internal/app/config"
	"aidentify-service/internal/app/delivery/http/middlewares"
	"aidentify-service/internal/app/delivery/http/routers"
	"aidentify-service/internal/app/drivers/database"
	"aidentify-service/internal/app/drivers/logger"
	smtpdriver "aidentify-service/internal/app/drivers/mailer"
	"aidentify-service/internal/app/drivers/messaging"
	"aidentify-service/internal/app/drivers/storage"
	"aidentify-service/internal/app/services/core/activities"
	"aidentify-service/internal/app/services/core/analysis"
	"aidentify-service/internal/app/services/core/auth"
	"aidentify-service/internal/app/services/core/patients"
	"aidentify-service/internal/app/services/core/reports"
	"aidentify-service/internal/app/services/core/scans"
	"aidentify-service/internal/app/services/core/session"
	sharedmailer "aidentify-service/internal/app/services/shared/mailer"
	"aidentify-service/internal/app/services/shared/redis"
	sharedstorage "aidentify-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootstrapLog := logger.NewBootstrapLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootstrapLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig, bootstrapLog)
	redisClient := database.NewRedisClient(driverConfig, bootstrapLog)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, bootstrapLog)
	minioClient := storage.NewMinio(driverConfig, bootstrapLog)
	smtpClient := smtpdriver.NewSMTPClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapingTheApp(&bootstrap, minioClient, smtpClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootstrapLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	bootstrapLog.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		bootstrapLog.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		bootstrapLog.Printf("Error during shutdown: %v", err)
	}

	bootstrapLog.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, minioClient *minio.Client, smtpClient *smtpdriver.SMTPClient) {
	// Shared infrastructure
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedstorage.NewMinioStorage(minioClient, bootstrap.DriverConfig.Minio.BucketName)
	mailerService, err := sharedmailer.NewMailerService(bootstrap.RabbitMQ, bootstrap.InternalConfig.Report.MailQueue)
	if err != nil {
		bootstrap.Logger.Fatal("failed to set up mail queue", zap.Error(err))
	}

	// Session
	lifetime := time.Duration(bootstrap.InternalConfig.App.SessionLifetimeInHour) * time.Hour
	credentialStore := session.NewCredentialStore(redisRepository, lifetime)

	// Activity log
	activityRepository := activities.NewActivityMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	activityUsecase := activities.NewActivityUsecase(bootstrap.Logger, activityRepository)
	activityController := activities.NewActivityController(bootstrap.Logger, activityUsecase)

	// Auth
	remoteCallTimeout := time.Duration(bootstrap.InternalConfig.App.RemoteCallTimeoutInSecond) * time.Second
	authGateway := auth.NewAuthGatewayClient(bootstrap.InternalConfig.Auth.BaseURL, remoteCallTimeout)
	authUsecase := auth.NewAuthUsecase(credentialStore, authGateway, activityUsecase, bootstrap.InternalConfig)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Patient reconciliation and scan persistence
	patientDirectory := patients.NewPatientDirectoryClient(bootstrap.InternalConfig.Directory.BaseURL, remoteCallTimeout)
	patientReconciler := patients.NewPatientUsecase(bootstrap.Logger, patientDirectory)
	scanDirectory := scans.NewScanDirectoryClient(bootstrap.InternalConfig.Directory.BaseURL, remoteCallTimeout)
	scanPersister := scans.NewScanUsecase(bootstrap.Logger, minioStorage, scanDirectory)

	// Analysis
	processingClient := analysis.NewProcessingClient(bootstrap.InternalConfig.Processing.BaseURL, remoteCallTimeout)
	analysisUsecase := analysis.NewAnalysisUsecase(
		bootstrap.Logger,
		processingClient,
		patientReconciler,
		scanPersister,
		mailerService,
		activityUsecase,
		bootstrap.InternalConfig.App.ScanMaxUploadSizeInMB,
	)
	analysisController := analysis.NewAnalysisController(bootstrap.Logger, analysisUsecase, bootstrap.InternalConfig.App.ScanMaxUploadSizeInMB)

	// Report worker
	reportWorker, err := reports.NewWorker(bootstrap.Logger, bootstrap.RabbitMQ, bootstrap.InternalConfig.Report.MailQueue, smtpClient)
	if err != nil {
		bootstrap.Logger.Fatal("failed to set up report worker", zap.Error(err))
	}
	stop, err := reportWorker.Start(context.Background())
	if err != nil {
		bootstrap.Logger.Fatal("failed to start report worker", zap.Error(err))
	}
	bootstrap.WorkerStop = stop

	// Middlewares and routes
	middlewareSet := middlewares.NewMiddlewares(bootstrap.Logger, credentialStore, bootstrap.InternalConfig)
	bootstrap.Router.Use(middlewareSet.Logging(bootstrap.Logger))
	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewareSet,
		authController,
		analysisController,
		activityController,
	)
}
