package config

import (
	"os"
	"path/filepath"
)

const (
	appNameVar   = "APP_NAME"
	tokenFileVar = "TOKEN_FILE"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Employee Tracker")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func (EnvVars) GetLogLevel() string {
	return GetEnv("LOG_LEVEL", "info")
}

// GetTokenFile returns the path of the file holding the persisted bearer
// token. Defaults to ~/.employee-tracker/token.
func (EnvVars) GetTokenFile() string {
	if file := os.Getenv(tokenFileVar); file != "" {
		return file
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".employee-tracker-token"
	}
	return filepath.Join(home, ".employee-tracker", "token")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
