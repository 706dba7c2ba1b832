package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"foodatlas-server/internal/config"
	domainauth "foodatlas-server/internal/domain/auth"
	"foodatlas-server/internal/domain/food"
	"foodatlas-server/internal/domain/user"
	authinfra "foodatlas-server/internal/infrastructure/auth"
	"foodatlas-server/internal/infrastructure/database"
	"foodatlas-server/internal/infrastructure/database/repository/foodrepo"
	"foodatlas-server/internal/infrastructure/database/repository/userrepo"
	"foodatlas-server/internal/infrastructure/logger"
	"foodatlas-server/internal/infrastructure/observability"
	"foodatlas-server/internal/interfaces/httpserver"
)

// Application bundles the running server with its logger.
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(database.Config{
		DSN:             cfg.DBPostgresqlDSN,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	userRepository := userrepo.NewUserGormRepository(db)
	foodRepository := foodrepo.NewFoodGormRepository(db)

	userService := user.NewService(userRepository)
	foodService := food.NewService(foodRepository)

	tokenCodec := authinfra.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	cookiePolicy := authinfra.NewCookiePolicy(cfg.IsProduction(), cfg.SessionCookieTTL)
	resolver := domainauth.NewResolver(tokenCodec, userRepository)

	httpServer := httpserver.New(cfg, log, userService, foodService, resolver, tokenCodec, cookiePolicy)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
