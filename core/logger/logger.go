package logger

import (
	"fmt"

	"inventory-manager/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger for cfg. An empty level keeps the preset's default.
func New(cfg *Config) (*zap.Logger, error) {
	zc := preset(cfg.Level)

	if cfg.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		zc.Level = zap.NewAtomicLevelAt(level)
	}

	zc.Encoding = "json"
	if cfg.Format == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.DisableStacktrace = true
	}

	zc.EncoderConfig.TimeKey = "time"
	zc.EncoderConfig.LevelKey = "level"
	zc.EncoderConfig.MessageKey = "message"
	return zc.Build()
}

func preset(level string) zap.Config {
	if level == "debug" {
		return zap.NewDevelopmentConfig()
	}
	return zap.NewProductionConfig()
}

// WithRayID scopes l to the request's ray id, when the rayid middleware set one.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	if rid, ok := c.Locals(rayid.LocalsKey).(string); ok && rid != "" {
		return l.With(zap.String(rayid.LocalsKey, rid))
	}
	return l
}
