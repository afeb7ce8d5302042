package store

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the store location and scheduling defaults that would
// otherwise live as ambient globals.
type Config interface {
	BasePath() string
	ReminderHour() int
}

// LoadConfig resolves configuration from a .bestbefore file or BESTBEFORE_*
// environment variables, falling back to defaults.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.bestbefore.db")
	viper.SetDefault("reminder_hour", 8)
	viper.SetConfigName(".bestbefore") // .yaml is implicit
	viper.SetEnvPrefix("BESTBEFORE")
	viper.AutomaticEnv()

	if override := os.Getenv("BESTBEFORE_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{path: path, reminderHour: viper.GetInt("reminder_hour")}, nil
}

type fileConfig struct {
	path         string
	reminderHour int
}

func (f *fileConfig) BasePath() string { return f.path }

func (f *fileConfig) ReminderHour() int { return f.reminderHour }
