package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"foodatlas-server/internal/config"
	domainauth "foodatlas-server/internal/domain/auth"
	"foodatlas-server/internal/domain/food"
	"foodatlas-server/internal/domain/user"
	authinfra "foodatlas-server/internal/infrastructure/auth"
	"foodatlas-server/internal/interfaces/httpserver/handlers"
	"foodatlas-server/internal/interfaces/httpserver/middlewares"
	"foodatlas-server/internal/interfaces/httpserver/routes"
)

// HttpServer wraps the gin engine with graceful shutdown helpers.
type HttpServer struct {
	cfg    *config.Config
	engine *gin.Engine
	log    zerolog.Logger
}

// New constructs the HTTP server with default middleware and routes.
func New(cfg *config.Config, log zerolog.Logger, users *user.Service, foods *food.Service, resolver *domainauth.Resolver, codec *authinfra.TokenCodec, cookies *authinfra.CookiePolicy) *HttpServer {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middlewares.RequestID(),
		middlewares.CORSMiddleware(),
		middlewares.LoggingMiddleware(log),
		middlewares.MetricsMiddleware(),
		// Sliding-window cookie expiry: advisory on every route, gating none.
		middlewares.RefreshCookie(cookies),
	)

	handlerProvider := handlers.NewProvider(users, foods, codec, cookies, log)
	routeProvider := routes.NewRoutes(handlerProvider, routes.Middleware{
		Auth:       middlewares.AuthRequired(resolver, log),
		CookieAuth: middlewares.CookieAuthRequired(resolver, cookies, log),
		Admin:      middlewares.RequireAdmin(),
	})
	registerCoreRoutes(engine, cfg, routeProvider)

	return &HttpServer{
		cfg:    cfg,
		engine: engine,
		log:    log,
	}
}

// Engine exposes the underlying gin engine, mainly for tests.
func (s *HttpServer) Engine() *gin.Engine {
	return s.engine
}

// Run starts the HTTP listener and handles graceful shutdown via context cancellation.
func (s *HttpServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr()).Msg("catalog-api HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.log.Info().Msg("context cancelled, shutting down HTTP server")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func registerCoreRoutes(engine *gin.Engine, cfg *config.Config, routeProvider *routes.Routes) {
	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": cfg.ServiceName, "status": "ok"})
	})
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	engine.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routeProvider.Register(engine.Group("/"))
}
