package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventory-manager/core/config"
	"inventory-manager/core/database"
	"inventory-manager/core/loader"
	"inventory-manager/core/logger"
	"inventory-manager/core/middleware/auth"
	"inventory-manager/core/middleware/rayid"
	"inventory-manager/core/snapshot"
	"inventory-manager/core/storage"
	"inventory-manager/feature/integrity"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/reorder"
	"inventory-manager/feature/supplier"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "inventory-manager/docs/swagger"
)

// @title Inventory Manager API
// @version 1.0
// @description API for managing products, suppliers and reorder reports.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

const shutdownTimeout = 10 * time.Second

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the inventory manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(envDir)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !cfg.Server.IsValidEnvironment() {
			logg.Warn("Unknown environment, continuing", zap.String("environment", cfg.Server.Environment))
		}
		logg = logg.With(zap.String("environment", cfg.Server.Environment))

		// Every feature reads the database, so the server does not start without it.
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		logg.Info("Connected to database", zap.String("driver", db.Dialector.Name()), zap.String("name", cfg.Database.Name))

		if cfg.Database.AutoMigrate {
			if err := inventory.Migrate(db); err != nil {
				return fmt.Errorf("schema migration failed: %w", err)
			}
			logg.Info("Schema migrated")
		}

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		app, err := newServer(cfg, logg, db, store)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		listenErr := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			listenErr <- app.Listen(":" + cfg.Server.Port)
		}()

		select {
		case err := <-listenErr:
			return fmt.Errorf("server failed: %w", err)
		case <-ctx.Done():
		}

		logg.Info("Shutting down server")
		return app.ShutdownWithTimeout(shutdownTimeout)
	},
}

// newServer builds the Fiber app with its middleware chain and every feature
// mounted. Swagger stays reachable without an API key.
func newServer(cfg *config.Config, logg *zap.Logger, db *gorm.DB, store storage.Client) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	})

	app.Use(rayid.New())
	app.Use(requestLogger(logg))
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, SkipPaths: []string{"/swagger"}}))

	cache := snapshot.New(cfg.Server.CacheTTL())
	inv := inventory.NewFeature(db, cache, logg)

	mgr := loader.NewManager()
	mgr.Register(inv)
	mgr.Register(supplier.NewFeature(db, cache, logg))
	mgr.Register(reorder.NewFeature(inv.Service(), db, store, cfg.Storage.Bucket, cfg.Reorder, logg))
	mgr.Register(integrity.NewFeature(store, cfg.Storage.Bucket, logg, db, cache))

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		return nil, fmt.Errorf("failed to load features: %w", err)
	}
	logg.Info("Features loaded", zap.Strings("features", loaded))
	return app, nil
}

func requestLogger(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		l := logger.WithRayID(logg, c)
		err := c.Next()

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			l.Error("Request failed", append(fields, zap.Error(err))...)
			return err
		}
		l.Info("Request completed", fields...)
		return nil
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
