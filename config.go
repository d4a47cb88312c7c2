package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ---------------------------------------------------------------------------
// App configuration (viper: config.toml + JASKDECK_* env overrides)
// ---------------------------------------------------------------------------

type appConfig struct {
	Database databaseConfig
	Present  presentConfig
}

type databaseConfig struct {
	Path string
}

type presentConfig struct {
	// IntermissionSeconds is the auto-advance delay between slides.
	IntermissionSeconds int
	Wrap                bool
	AutoPlay            bool
}

// loadConfig reads configuration from file and env. Env overrides use the
// JASKDECK_ prefix, e.g. JASKDECK_PRESENT_INTERMISSIONSECONDS=10.
func loadConfig() (appConfig, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "jaskdeck", "decks.db"))
	v.SetDefault("present.intermissionseconds", 5)
	v.SetDefault("present.wrap", true)
	v.SetDefault("present.autoplay", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("JASKDECK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "jaskdeck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JASKDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	var c appConfig
	if err := v.Unmarshal(&c); err != nil {
		return appConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return normalizeConfig(c), nil
}

// normalizeConfig clamps user-supplied values into safe ranges rather than
// rejecting them.
func normalizeConfig(c appConfig) appConfig {
	if strings.TrimSpace(c.Database.Path) == "" {
		c.Database.Path = filepath.Join(os.Getenv("HOME"), ".local", "share", "jaskdeck", "decks.db")
	}
	if c.Present.IntermissionSeconds < 1 {
		c.Present.IntermissionSeconds = 1
	}
	if c.Present.IntermissionSeconds > 600 {
		c.Present.IntermissionSeconds = 600
	}
	return c
}
