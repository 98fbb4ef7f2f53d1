package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("VH_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("VH_DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("VH_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "data"
	}
	return dbFolderPath
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("VH_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = filepath.Join(GetDBFolderPath(), "log")
	}
	return logFolderPath
}

func GetListen() string {
	return os.Getenv("VH_LISTEN")
}

func GetPort() string {
	port := os.Getenv("VH_PORT")
	if port == "" {
		port = "8080"
	}
	return port
}

// GetSessionSecret returns the cookie signing secret. Empty means the
// caller should generate a random one for the lifetime of the process.
func GetSessionSecret() string {
	return os.Getenv("VH_SESSION_SECRET")
}
