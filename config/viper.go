package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper
// counterparts.
const (
	keyDefaultPhrase = "practice.phrase"
	keyDailyTarget   = "practice.daily_target"
	keySessionCmd    = "practice.session_cmd"
	keyRecognizerCmd = "practice.recognizer_cmd"
	keyAudioTrack    = "audio.track"
	keyAudioVolume   = "audio.volume"
	keyAudioAutoplay = "audio.autoplay"
	keySyncBaseURL   = "sync.base_url"
	keySyncToken     = "sync.token"
	keyDarkTheme     = "display.dark_theme"
)

// WithViperConfig returns an Option that loads configuration from Viper,
// writing a default config file first if none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("reading config file failed: %w", err)
		}

		if err := v.WriteConfig(); err != nil {
			return fmt.Errorf("writing default config failed: %w", err)
		}

		return loadViperConfig(v, c)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyDefaultPhrase, "Radhe Radhe")
	v.SetDefault(keyDailyTarget, 108)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyRecognizerCmd, "")
	v.SetDefault(keyAudioTrack, "soft-flute")
	v.SetDefault(keyAudioVolume, 0.5)
	v.SetDefault(keyAudioAutoplay, false)
	v.SetDefault(keySyncBaseURL, "")
	v.SetDefault(keySyncToken, "")
	v.SetDefault(keyDarkTheme, true)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	c.Practice.DefaultPhrase = v.GetString(keyDefaultPhrase)
	c.Practice.DailyTarget = v.GetInt(keyDailyTarget)
	c.Practice.SessionCmd = v.GetString(keySessionCmd)
	c.Practice.RecognizerCmd = v.GetString(keyRecognizerCmd)
	c.Audio.Track = v.GetString(keyAudioTrack)
	c.Audio.Volume = v.GetFloat64(keyAudioVolume)
	c.Audio.Autoplay = v.GetBool(keyAudioAutoplay)
	c.Sync.BaseURL = v.GetString(keySyncBaseURL)
	c.Sync.Token = v.GetString(keySyncToken)
	c.Display.DarkTheme = v.GetBool(keyDarkTheme)

	if c.Practice.DailyTarget <= 0 {
		return fmt.Errorf("daily target must be positive, got %d", c.Practice.DailyTarget)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume must be between 0 and 1, got %v", c.Audio.Volume)
	}

	return nil
}
