package config

type DriverConfig struct {
	Redis    Redis
	RabbitMQ RabbitMQ
	Minio    Minio
	Logger   Logger
}

type Redis struct {
	Host     string
	Port     string
	Password string
}

type RabbitMQ struct {
	Host     string
	Port     string
	Username string
	Password string
}

type Minio struct {
	Host       string
	Port       string
	Username   string
	Password   string
	BucketName string
	UseSSL     bool
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type InternalConfig struct {
	App     App
	Backend Backend
	JWT     JWT
}

type App struct {
	Env                                  string
	Port                                 string
	Version                              string
	BaseUrl                              string
	Timezone                             string
	EndpointPrefix                       string
	MaxRequests                          int
	ShutdownTimeout                      int
	DefaultPageSize                      int
	NotificationQueue                    string
	DoctorCacheTTLInMinute               int
	MinioProfilePictureMaxUploadSizeInMB int64
}

// Backend points at the authoritative clinic REST service; every persisted
// entity lives there.
type Backend struct {
	BaseUrl          string
	RequestTimeoutIn int
}

type JWT struct {
	Secret string
}
