package config

import (
	"errors"

	"github.com/spf13/viper"
)

// ServerConfig - Configuration for the search table daemon
type ServerConfig struct {
	Host     string `mapstructure:"host" default:"0.0.0.0" description:"address the api listens on"`
	Port     string `mapstructure:"port" default:"7654" description:"port the api listens on"`
	LogLevel string `mapstructure:"logLevel" default:"info" description:"log level"`
}

var Config *ServerConfig

const configPath = "./"

// LoadConfig - Reads config.json from the working directory, falling back to defaults when the
// file doesn't exist. Any other problem reading or parsing the configuration is fatal.
func LoadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.AddConfigPath(configPath)

	viper.SetDefault("host", "0.0.0.0")
	viper.SetDefault("port", "7654")
	viper.SetDefault("logLevel", "info")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(err)
		}
	}

	if err := viper.Unmarshal(&Config); err != nil {
		panic(err)
	}
}
