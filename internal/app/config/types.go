package config

type (
	InternalConfig struct {
		App        App
		JWT        JWT
		Auth       AuthService
		Processing ProcessingService
		Directory  DirectoryService
		Report     Report
	}

	DriverConfig struct {
		Redis    Redis
		MongoDB  MongoDB
		Minio    Minio
		SMTP     SMTP
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Timezone                  string
		EndpointPrefix            string
		MaxRequests               int
		ShutdownTimeout           int
		ScanMaxUploadSizeInMB     int64
		SessionLifetimeInHour     int
		RemoteCallTimeoutInSecond int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	// AuthService is the remote authentication collaborator.
	AuthService struct {
		BaseURL string
	}

	// ProcessingService is the remote AI image-processing collaborator.
	ProcessingService struct {
		BaseURL string
	}

	// DirectoryService hosts the patient and scan directories.
	DirectoryService struct {
		BaseURL string
	}

	Report struct {
		EmailSender string
		MailQueue   string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	MongoDB struct {
		Host     string
		Port     string
		DbName   string
		Username string
		Password string
	}

	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		BucketName string
	}

	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
