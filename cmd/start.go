package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"floorplan/core/config"
	"floorplan/core/database"
	"floorplan/core/loader"
	"floorplan/core/logger"
	"floorplan/core/middleware/auth"
	"floorplan/core/middleware/rayid"
	"floorplan/core/storage"

	"floorplan/feature/editor"
	"floorplan/feature/floor"
	"floorplan/feature/integrity"
	"floorplan/feature/render"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "floorplan/docs/swagger"
)

// @title Floor Plan API
// @version 1.0
// @description API for editing venue floor plans.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the floor plan server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !cfg.Server.IsValidMode() {
			logg.Fatal("Invalid server mode", zap.String("mode", cfg.Server.Mode))
		}
		logg = logg.With(zap.String("mode", cfg.Server.Mode))

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Database connection failed", zap.Error(err))
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		bucketCtx, cancelBucket := context.WithTimeout(context.Background(), 10*time.Second)
		if err := storage.EnsureBucket(bucketCtx, store, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			// Backgrounds and published renders fail until storage is reachable.
			logg.Warn("Object storage unavailable", zap.Error(err))
		}
		cancelBucket()

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 5. Register Features
		allowEdit := cfg.Server.AllowEdit()
		floorFeature := floor.NewFeature(db, store, cfg.Storage.Bucket, allowEdit, logg)
		editorFeature, err := editor.NewFeature(cfg.Editor, allowEdit, floorFeature.Service(), floorFeature.Service(), logg)
		if err != nil {
			logg.Fatal("Failed to create editor", zap.Error(err))
		}
		renderFeature := render.NewFeature(cfg.Render, floorFeature.Service(), store, cfg.Storage.Bucket, logg)

		mgr := loader.NewManager()
		mgr.Register(floorFeature)
		mgr.Register(editorFeature)
		mgr.Register(renderFeature)
		mgr.Register(integrity.NewFeature(store, cfg.Storage.Bucket, logg, db, floorFeature.Service(), cfg.Render.Prefix))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with the ray id
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

		// 3. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/swagger"}}))

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Reload editor settings when .env changes
		watchCtx, stopWatch := context.WithCancel(context.Background())
		go func() {
			err := config.Watch(watchCtx, ".", logg, func(next *config.Config) {
				editorFeature.Service().SetConfig(next.Editor)
			})
			if err != nil {
				logg.Warn("Config watcher stopped", zap.Error(err))
			}
		}()

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		stopWatch()
		_ = app.ShutdownWithTimeout(10 * time.Second)

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := mgr.CloseAll(ctx); err != nil {
			logg.Error("Feature shutdown incomplete", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
