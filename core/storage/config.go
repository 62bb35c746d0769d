package storage

import (
	"strings"
	"time"
)

// Config holds the object storage connection settings.
type Config struct {
	// Endpoint may carry an http:// or https:// scheme; it is stripped.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket receives reorder report exports.
	Bucket string `mapstructure:"bucket" default:"inventory"`
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds connection setup and the first response byte.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

func (c Config) host() string {
	for _, scheme := range []string{"http://", "https://"} {
		if rest, ok := strings.CutPrefix(c.Endpoint, scheme); ok {
			return rest
		}
	}
	return c.Endpoint
}

func (c Config) timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
