// Package config loads and provides access to the app configuration.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Practice PracticeConfig
		Audio    AudioConfig
		Sync     SyncConfig
		Display  DisplayConfig
		System   SystemConfig
	}

	// PracticeConfig holds practice-session settings.
	PracticeConfig struct {
		DefaultPhrase string
		SessionCmd    string
		RecognizerCmd string
		DailyTarget   int
	}

	// AudioConfig holds ambient audio settings.
	AudioConfig struct {
		Track    string
		Volume   float64
		Autoplay bool
	}

	// SyncConfig holds remote store settings. An empty base URL disables
	// cloud sync entirely.
	SyncConfig struct {
		BaseURL string
		Token   string
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme bool
	}

	// SystemConfig holds system-related settings.
	SystemConfig struct {
		ConfigPath string
		DBPath     string
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	configDir      = "naamjap"
	configFileName = "config.yml"
	dbFileName     = "naamjap.db"
	logFileName    = "naamjap.log"
	dbFilePath     string
	configFilePath string
	logFilePath    string
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

func InitializePaths() {
	env := strings.TrimSpace(os.Getenv("NAAMJAP_ENV"))
	if env != "" {
		configFileName = fmt.Sprintf("config_%s.yml", env)
		dbFileName = fmt.Sprintf("naamjap_%s.db", env)
		logFileName = fmt.Sprintf("naamjap_%s.log", env)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// New creates a new Config with default values and applies options.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{
		System: SystemConfig{
			ConfigPath: configFilePath,
			DBPath:     dbFilePath,
		},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("config option error: %w", err)
		}
	}

	return cfg, nil
}
