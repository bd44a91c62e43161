package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ServerConfig contains all of the server settings defined in the TOML file
type ServerConfig struct {
	ListenAddrIP    string
	ListenAddrPort  string
	WebDir          string //directory holding app.wasm, served under /web
	StylesheetPath  string
	LogLevel        slog.Level
	LogOutput       string //stdout or file
	LogFileLocation string
	CORSOrigins     []string
	FrontEndConfig
}

// FrontEndConfig stores the settings handed to the go-app handler
type FrontEndConfig struct {
	AppName        string
	AppDescription string
	Version        string
}

// SetDefaults registers the default value for every key we read
func SetDefaults(v *viper.Viper) {
	v.SetDefault("serverConfig.ServerAddr", "")
	v.SetDefault("serverConfig.ServerPort", "8000")
	v.SetDefault("serverConfig.WebDir", "web")
	v.SetDefault("serverConfig.Stylesheet", "webapp/webapp.css")
	v.SetDefault("serverConfig.CORSOrigins", []string{"*"})
	v.SetDefault("logging.Level", "warn")
	v.SetDefault("logging.OutputPath", "stdout")
	v.SetDefault("logging.LogFileLocation", "travelgenius.log")
	v.SetDefault("frontend.Name", "Travel Genius")
	v.SetDefault("frontend.Description", "Your AI-powered travel companion")
	v.SetDefault("frontend.Version", "dev")
}

// ReadConfig reads the config file into v, a missing file leaves the defaults in place
func ReadConfig(v *viper.Viper, configFile string) (found bool, err error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath("config/")
		v.AddConfigPath(".")
		v.SetConfigName("serverConfig")
	}
	err = v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading config file: %w", err)
	}
	return true, nil
}

// Load builds the ServerConfig from an already populated viper instance
func Load(v *viper.Viper) ServerConfig {
	var serverConfigLive ServerConfig
	serverConfigLive.ListenAddrIP = v.GetString("serverConfig.ServerAddr")
	serverConfigLive.ListenAddrPort = v.GetString("serverConfig.ServerPort")
	serverConfigLive.WebDir = filepath.ToSlash(v.GetString("serverConfig.WebDir"))
	serverConfigLive.StylesheetPath = filepath.ToSlash(v.GetString("serverConfig.Stylesheet"))
	serverConfigLive.CORSOrigins = v.GetStringSlice("serverConfig.CORSOrigins")
	serverConfigLive.LogLevel = ParseLevel(v.GetString("logging.Level"))
	serverConfigLive.LogOutput = v.GetString("logging.OutputPath")
	serverConfigLive.LogFileLocation = v.GetString("logging.LogFileLocation")
	serverConfigLive.FrontEndConfig = FrontEndConfig{
		AppName:        v.GetString("frontend.Name"),
		AppDescription: v.GetString("frontend.Description"),
		Version:        v.GetString("frontend.Version"),
	}
	return serverConfigLive
}

// SetupServer does the initial configuration
func SetupServer(v *viper.Viper, configFile string) (ServerConfig, *slog.Logger, error) {
	SetDefaults(v)
	found, err := ReadConfig(v, configFile)
	if err != nil {
		return ServerConfig{}, nil, err
	}
	serverConfigLive := Load(v)
	logger, err := setupLogging(serverConfigLive)
	if err != nil {
		return ServerConfig{}, nil, err
	}
	if found {
		logger.Info("Config file loaded", "path", v.ConfigFileUsed())
	} else {
		logger.Info("No config file found, running with defaults")
	}
	return serverConfigLive, logger, nil
}

// ParseLevel maps the config level name onto slog, unknown names fall back to warn
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func setupLogging(serverConfig ServerConfig) (*slog.Logger, error) {
	var logWriter io.Writer = os.Stdout
	if serverConfig.LogOutput == "file" {
		logPath, err := filepath.Abs(filepath.ToSlash(serverConfig.LogFileLocation))
		if err != nil {
			return nil, fmt.Errorf("resolving log file path: %w", err)
		}
		logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		logWriter = logFile
	}

	opts := &slog.HandlerOptions{
		Level: serverConfig.LogLevel,
	}
	handler := slog.NewTextHandler(logWriter, opts)
	return slog.New(handler), nil
}
