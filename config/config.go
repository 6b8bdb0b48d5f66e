package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Load reads battleship.cfg.json from configDir and sets default values.
// A missing file is fine: the game runs on defaults.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("dataDir", "./data")

	viper.SetDefault("bot.seed", 0)

	viper.SetDefault("archive.enabled", true)
	viper.SetDefault("archive.path", "./data/games.db")

	viper.SetConfigName("battleship.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return err
	}
	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt64 returns an int64 config value.
func GetInt64(key string) int64 {
	return viper.GetInt64(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
