package config

type Config interface {
	EnvConfig
	APIConfig
}

type EnvConfig interface {
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
	GetTokenFile() string
}

type APIConfig interface {
	GetBaseURL() string
	GetRequestTimeoutSeconds() int
}

type mainConfig struct {
	EnvVars
	API
}

func New() Config {
	return mainConfig{}
}
