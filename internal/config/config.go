package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	CatalogSourceMemory = "memory"
	CatalogSourceMongo  = "mongo"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Database DatabaseConfig `mapstructure:"database"`
	Session  SessionConfig  `mapstructure:"session"`
	Streak   StreakConfig   `mapstructure:"streak"`
	User     UserConfig     `mapstructure:"user"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	JSON   bool   `mapstructure:"json"`
	File   string `mapstructure:"file"`   // empty: stdout only
	Stdout bool   `mapstructure:"stdout"` // also write to stdout when File is set
}

// CatalogConfig selects where workouts, meal plans and rivals come from.
type CatalogConfig struct {
	Source string `mapstructure:"source"`
	Seed   bool   `mapstructure:"seed"` // seed empty mongo collections with the sample catalog
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// SessionConfig sets the tick rates of a live workout session.
type SessionConfig struct {
	RestTick    time.Duration `mapstructure:"rest_tick"`
	ElapsedTick time.Duration `mapstructure:"elapsed_tick"`
}

type StreakConfig struct {
	Timezone string `mapstructure:"timezone"`
}

// UserConfig seeds the trainee at startup.
type UserConfig struct {
	Name       string `mapstructure:"name"`
	PowerLevel int    `mapstructure:"power_level"`
	Goal       string `mapstructure:"goal"`
}

// Location resolves the streak timezone.
func (s StreakConfig) Location() (*time.Location, error) {
	if s.Timezone == "" || s.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(s.Timezone)
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// session.rest_tick -> SESSION_REST_TICK
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	v.SetDefault("server.address", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.stdout", true)
	v.SetDefault("catalog.source", CatalogSourceMemory)
	v.SetDefault("catalog.seed", true)
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "saiyan_training")
	v.SetDefault("session.rest_tick", "1s")
	v.SetDefault("session.elapsed_tick", "1m")
	v.SetDefault("streak.timezone", "Local")
	v.SetDefault("user.name", "Warrior")
	v.SetDefault("user.power_level", 100)
	v.SetDefault("user.goal", "Strength Gain")

	err = v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		// no file: defaults and env vars only
		err = nil
	} else if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("unmarshal config: %w", err)
	}
	if err = config.validate(); err != nil {
		return config, fmt.Errorf("config validation: %w", err)
	}
	return config, nil
}

func (c Config) validate() error {
	switch c.Catalog.Source {
	case CatalogSourceMemory, CatalogSourceMongo:
	default:
		return fmt.Errorf("unknown catalog source %q", c.Catalog.Source)
	}
	if c.Session.RestTick <= 0 || c.Session.ElapsedTick <= 0 {
		return errors.New("session tick intervals must be positive")
	}
	if c.User.PowerLevel < 0 {
		return errors.New("user power level cannot be negative")
	}
	if _, err := c.Streak.Location(); err != nil {
		return fmt.Errorf("streak timezone: %w", err)
	}
	return nil
}
