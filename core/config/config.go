package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"inventory-manager/core/database"
	"inventory-manager/core/logger"
	"inventory-manager/core/reorder"
	"inventory-manager/core/server"
	"inventory-manager/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full application configuration, one section per subsystem.
type Config struct {
	Server   server.Config   `mapstructure:"server"`
	Storage  storage.Config  `mapstructure:"storage"`
	Log      logger.Config   `mapstructure:"log"`
	Database database.Config `mapstructure:"database"`
	Reorder  reorder.Config  `mapstructure:"reorder"`
}

// LoadConfig reads the optional .env file in dir, then the process
// environment, on top of the struct tag defaults.
func LoadConfig(dir string) (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	registerDefaults(v, reflect.TypeOf(Config{}), "")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case database.DriverMySQL, database.DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Reorder.ServiceLevel < 0 {
		return fmt.Errorf("reorder.service_level must not be negative, got %g", c.Reorder.ServiceLevel)
	}
	if c.Reorder.DefaultLeadTime < 0 {
		return fmt.Errorf("reorder.default_lead_time must not be negative, got %g", c.Reorder.DefaultLeadTime)
	}
	return nil
}

// registerDefaults walks the mapstructure tags of t and registers every leaf
// key with viper. Keys without a default are registered empty so that
// AutomaticEnv still picks them up during Unmarshal.
func registerDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for _, field := range reflect.VisibleFields(t) {
		name := field.Tag.Get("mapstructure")
		if name == "" {
			continue
		}
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}
		if field.Type.Kind() == reflect.Struct {
			registerDefaults(v, field.Type, key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
