package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"track-manager/core/loader"
	"track-manager/core/logger"
	"track-manager/core/middleware/auth"
	"track-manager/core/middleware/rayid"

	"track-manager/feature/health"
	syncfeature "track-manager/feature/sync"
	"track-manager/feature/tracks"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "track-manager/docs/swagger"
)

// @title Track Manager API
// @version 1.0
// @description API for reconciling a local audio library with an object store.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the track manager server",
	Long:  `Starts the HTTP server, the optional sync schedule and all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		rt, err := bootstrap(nil)
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if rt.db != nil {
			logg.Info("Sync state is persisted", zap.String("driver", rt.cfg.Database.Driver))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			JSONEncoder:           json.Marshal,
			JSONDecoder:           json.Unmarshal,
		})

		syncFeature := syncfeature.NewFeature(rt.manager, logg)

		mgr := loader.NewManager()
		mgr.Register(health.NewFeature(rt.admin(), rt.cfg.Library, rt.db, logg))
		mgr.Register(syncFeature)
		mgr.Register(tracks.NewFeature(rt.storage, rt.cfg.Library, logg))

		// RayID first so every log line can be traced
		app.Use(rayid.New())

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

		// Public routes
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

		// Media files are fetched by players that cannot send the API key
		app.Use(auth.New(auth.Config{
			ApiKey: rt.cfg.Server.ApiKey,
			Skip:   []string{rt.cfg.Library.MediaRoute},
		}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		var scheduler *syncfeature.Scheduler
		if rt.cfg.Sync.Schedule != "" {
			scheduler, err = syncfeature.NewScheduler(rt.cfg.Sync.Schedule, syncFeature.Service(), logg)
			if err != nil {
				logg.Fatal("Failed to schedule sync", zap.Error(err))
			}
			scheduler.Start()
			logg.Info("Scheduled sync enabled", zap.String("schedule", rt.cfg.Sync.Schedule))
		}

		go func() {
			logg.Info("Starting server",
				zap.String("port", rt.cfg.Server.Port),
				zap.String("mode", string(rt.cfg.Library.Mode)),
				zap.Strings("features", mgr.Loaded()))
			if err := app.Listen(rt.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), rt.cfg.Server.ShutdownTimeout())
		defer cancel()
		if scheduler != nil {
			scheduler.Stop(ctx)
		}
		_ = app.ShutdownWithContext(ctx)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
