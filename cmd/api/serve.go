package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gnapi/docs"
	"gnapi/internal/backend"
	"gnapi/internal/config"
	handlers "gnapi/internal/http/handler"
	"gnapi/internal/http/middleware"
	"gnapi/internal/metrics"
	"gnapi/internal/otel"
	"gnapi/internal/service"
	"gnapi/internal/storage"
)

const (
	shutdownTimeout = 10 * time.Second
	bodyLimit       = 64 * 1024
)

var skipMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API.

Migrations run first unless --skip-migrate is given. The server drains
in-flight requests for up to 10s on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not create the schema on startup")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log := bootstrap()
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		tctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(tctx); err != nil {
			log.Warn("tracing_shutdown_failed", zap.Error(err))
		}
	}()

	be, err := backend.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := be.Close(context.Background()); err != nil {
			log.Warn("db_close_failed", zap.Error(err))
		}
	}()

	if !skipMigrate {
		if err := be.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	var archive storage.Storage
	if cfg.MinIO.Endpoint != "" {
		archive, err = storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			return fmt.Errorf("init lead archive: %w", err)
		}
		log.Info("lead_archive_enabled", zap.String("bucket", cfg.MinIO.Bucket))
	} else {
		log.Info("lead_archive_disabled")
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		defer func() { _ = rdb.Close() }()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis_unreachable", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.RegisterCollectors(reg)

	app, err := newApp(cfg, log, reg, handlers.Deps{
		Pinger:         be.Pinger,
		Content:        service.NewContentService(be.Team, be.Projects, be.News),
		Leads:          service.NewLeadService(be.Leads, archive, log),
		ContactLimiter: middleware.RedisRateLimit(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.Window, log),
	})
	if err != nil {
		return err
	}

	addr := ":" + cfg.Port
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server_starting", zap.String("addr", addr), zap.String("db_driver", be.Driver))
		if err := app.Listen(addr); err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("server_shutdown", zap.Duration("timeout", shutdownTimeout))
		return app.ShutdownWithTimeout(shutdownTimeout)
	})
	return g.Wait()
}

// newApp builds the Fiber app with the full middleware chain and every route.
func newApp(cfg *config.AppConfig, log *zap.Logger, reg *prometheus.Registry, deps handlers.Deps) (*fiber.App, error) {
	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, fmt.Errorf("register http metrics: %w", err)
	}

	app := fiber.New(fiberConfig(cfg, log))

	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			rid, _ := c.Locals(middleware.RequestIDLocalKey).(string)
			log.Error("panic_recovered", zap.String("request_id", rid), zap.Any("panic", e), zap.Stack("stack"))
		},
	}))
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(log))
	app.Use(prom.Handler())
	app.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, deps)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	return app, nil
}

// fiberConfig reads the client address from X-Forwarded-For only when the peer is a trusted proxy.
func fiberConfig(cfg *config.AppConfig, log *zap.Logger) fiber.Config {
	fc := fiber.Config{
		AppName:               "gnapi",
		ErrorHandler:          handlers.ErrorHandler(log),
		DisableStartupMessage: true,
		BodyLimit:             bodyLimit,
	}
	if len(cfg.TrustedProxies) > 0 {
		fc.ProxyHeader = fiber.HeaderXForwardedFor
		fc.EnableTrustedProxyCheck = true
		fc.TrustedProxies = cfg.TrustedProxies
		fc.EnableIPValidation = true
	}
	return fc
}

// corsConfig allows credentials only for an explicit origin list; "*" (or nothing) means any origin.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  "GET,POST,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, " + middleware.RequestIDHeader,
		ExposeHeaders: middleware.RequestIDHeader + ", " + fiber.HeaderRetryAfter,
		MaxAge:        600,
	}
	for _, o := range origins {
		if o == "*" {
			origins = nil
			break
		}
	}
	if len(origins) == 0 {
		cfg.AllowOrigins = "*"
		return cfg
	}
	cfg.AllowOrigins = strings.Join(origins, ",")
	cfg.AllowCredentials = true
	return cfg
}
