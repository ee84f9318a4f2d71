package config

import (
	"aidentify-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		MongoDB: MongoDB{
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "aidentify"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "scans"),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
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
			Env:                   utils.GetEnvString("APP_ENV", "development"),
			Port:                  utils.GetEnvString("APP_PORT", ":8080"),
			Version:               utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:              utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:        utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:           utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:       utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			ScanMaxUploadSizeInMB: utils.GetEnvInt64("APP_SCAN_UPLOAD_MAX_SIZE_IN_MB", 16),
			SessionLifetimeInHour: utils.GetEnvInt("APP_SESSION_LIFETIME_IN_HOUR", 8),
			// 0 means no deadline; a hung processing call then stays in
			// flight until the client disconnects. Left as an operator
			// decision rather than a hardcoded value.
			RemoteCallTimeoutInSecond: utils.GetEnvInt("APP_REMOTE_CALL_TIMEOUT_IN_SECOND", 0),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 8),
		},
		Auth: AuthService{
			BaseURL: utils.GetEnvString("AUTH_SERVICE_BASE_URL", "http://localhost:5000/api/auth"),
		},
		Processing: ProcessingService{
			BaseURL: utils.GetEnvString("PROCESSING_SERVICE_BASE_URL", "http://localhost:5000/api"),
		},
		Directory: DirectoryService{
			BaseURL: utils.GetEnvString("DIRECTORY_SERVICE_BASE_URL", "http://localhost:5000/api"),
		},
		Report: Report{
			EmailSender: utils.GetEnvString("REPORT_EMAIL_SENDER", ""),
			MailQueue:   utils.GetEnvString("REPORT_MAIL_QUEUE", "report-mail"),
		},
	}
}
