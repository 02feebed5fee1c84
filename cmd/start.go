package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Omega-Networks/Pulse-sub003/core/config"
	"github.com/Omega-Networks/Pulse-sub003/core/database"
	"github.com/Omega-Networks/Pulse-sub003/core/loader"
	"github.com/Omega-Networks/Pulse-sub003/core/logger"
	"github.com/Omega-Networks/Pulse-sub003/core/middleware/auth"
	"github.com/Omega-Networks/Pulse-sub003/core/middleware/rayid"
	"github.com/Omega-Networks/Pulse-sub003/core/reconcile"
	"github.com/Omega-Networks/Pulse-sub003/core/storage"

	"github.com/Omega-Networks/Pulse-sub003/feature/alerts"
	"github.com/Omega-Networks/Pulse-sub003/feature/alerts/zabbix"
	"github.com/Omega-Networks/Pulse-sub003/feature/inventory"
	"github.com/Omega-Networks/Pulse-sub003/feature/inventory/netbox"
	"github.com/Omega-Networks/Pulse-sub003/feature/snapshot"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/Omega-Networks/Pulse-sub003/docs/swagger"
)

// @title Pulse Synchronization API
// @version 1.0
// @description API for synchronizing and serving the infrastructure inventory graph.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the synchronization server",
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

		// 3. Open Local Store
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to open local store", zap.Error(err))
		}
		logg.Info("Local store ready", zap.String("driver", cfg.Database.Driver))

		// 4. Remote API Clients
		netboxClient := netbox.NewClient(cfg.NetBox, logg)
		zabbixClient := zabbix.NewClient(cfg.Zabbix, logg)

		// 5. Reconciliation Engine + Orchestrator
		engine := reconcile.NewEngine(db, logg)
		orchestrator := reconcile.NewOrchestrator(engine, logg)

		// 6. Snapshot Storage (optional)
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 7. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 8. Initialize Feature Loader
		mgr := loader.NewManager()

		inventoryFeature := inventory.NewFeature(db, netboxClient, orchestrator, logg)
		alertsFeature := alerts.NewFeature(db, zabbixClient, orchestrator, logg)

		mgr.Register(inventoryFeature)
		mgr.Register(alertsFeature)
		mgr.Register(snapshot.NewFeature(db, store, cfg.Storage.Bucket, logg))

		// Schema migration before any pass runs.
		if err := inventoryFeature.Service().Migrate(); err != nil {
			logg.Fatal("Inventory migration failed", zap.Error(err))
		}
		if err := alertsFeature.Service().Migrate(); err != nil {
			logg.Fatal("Alert migration failed", zap.Error(err))
		}

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Zap + RayID)
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

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 9. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 10. Background Synchronization
		syncCtx, stopSync := context.WithCancel(context.Background())
		defer stopSync()
		if cfg.Sync.IntervalMinutes > 0 {
			interval := time.Duration(cfg.Sync.IntervalMinutes) * time.Minute
			logg.Info("Background synchronization enabled", zap.Duration("interval", interval))
			go func() {
				ticker := time.NewTicker(interval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						orchestrator.SyncAll(syncCtx)
					case <-syncCtx.Done():
						return
					}
				}
			}()
		}

		// 11. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 12. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		stopSync()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
