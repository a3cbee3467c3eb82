package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var configDir string
var configFilePath string

// Init initializes the configuration. Settings are resolved from defaults,
// then the TOML config file, then SWIPEFEED_* environment variables.
func Init(configPath string) error {
	var err error
	if configPath != "" {
		configDir = filepath.Dir(configPath)
		configFilePath = configPath
	} else {
		base, err := os.UserConfigDir()
		if err != nil {
			base, err = os.UserHomeDir()
			if err != nil {
				base = "."
			}
			base = filepath.Join(base, ".config")
		}
		configDir = filepath.Join(base, "swipefeed")
		configFilePath = filepath.Join(configDir, "config.toml")
	}

	if err = os.MkdirAll(configDir, 0700); err != nil {
		return err
	}

	viper.SetConfigType("toml")
	setDefaults()

	viper.SetEnvPrefix("SWIPEFEED")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// User config overrides defaults when present
	if _, err := os.Stat(configFilePath); err == nil {
		viper.SetConfigFile(configFilePath)
		if err := viper.ReadInConfig(); err != nil {
			return err
		}
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("api.base_url", "http://localhost:8080")
	viper.SetDefault("api.timeout", 10) // seconds
	viper.SetDefault("feed.page_size", 20)
	viper.SetDefault("feed.prefetch_lookahead", 3)
	viper.SetDefault("feed.category", "")
	viper.SetDefault("gesture.threshold", 25.0)
	viper.SetDefault("ui.animation_ms", 140)
	viper.SetDefault("log.file", filepath.Join(configDir, "swipefeed.log"))
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an integer config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetFloat64 returns a float config value
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

// SetString overrides a config value for this run (flag overrides)
func SetString(key, value string) {
	viper.Set(key, value)
}

// Dir returns the resolved config directory
func Dir() string {
	return configDir
}
