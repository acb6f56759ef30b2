package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"ddrconf/core/config"
	"ddrconf/core/database"
	"ddrconf/core/loader"
	"ddrconf/core/logger"
	"ddrconf/core/middleware"
	"ddrconf/core/storage"

	"ddrconf/feature/compare"
	"ddrconf/feature/history"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "ddrconf/docs/swagger"
)

// @title DDR Configuration API
// @version 1.0
// @description API for comparing DRAM timing configuration dumps.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the comparison server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// The database only backs the history feature, so a failed
		// connection degrades the server instead of killing it.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to history database")
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		mgr := loader.NewManager(logg)
		mgr.Register(compare.NewFeature(
			cfg.Compare.Options(), logg, store, cfg.Storage.Bucket,
			cfg.Server.LeftDump, cfg.Server.RightDump, cfg.Server.CacheTTL()))
		mgr.Register(history.NewFeature(db, logg))

		// RayID first so every later log line can be traced.
		app.Use(middleware.RayID())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger stays public; everything after this is key-protected.
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(middleware.Auth(cfg.Server.ApiKey))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
