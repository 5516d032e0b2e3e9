// Package server owns the process-wide resources: the store pool, the
// optional cache and the Echo instance. Nothing is served before New
// returns, and Shutdown releases the pool only after in-flight requests end.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"profilesvc/internal/cache"
	"profilesvc/internal/config"
	"profilesvc/internal/db"
	"profilesvc/internal/handler"
	"profilesvc/internal/repository"
	"profilesvc/internal/router"
	"profilesvc/internal/service"
)

// Server is a running instance of the service.
type Server struct {
	cfg   *config.Config
	log   zerolog.Logger
	db    *gorm.DB
	cache *cache.Client
	echo  *echo.Echo
}

// New connects the store, creates the tables and mounts the routes.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Server, error) {
	gormDB, err := db.Open(ctx, db.Options{
		Driver:       cfg.DBDriver,
		DSN:          cfg.DBDSN,
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
	})
	if err != nil {
		return nil, fmt.Errorf("database init: %w", err)
	}
	log.Info().Str("driver", cfg.DBDriver).Msg("connected to the database")

	if err := db.Migrate(gormDB); err != nil {
		_ = db.Close(gormDB)
		return nil, err
	}
	log.Info().Msg("database schema ready")

	var cacheClient *cache.Client
	if cfg.CacheEnabled() {
		cacheClient = cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := cacheClient.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, continuing with cache misses")
		}
	}

	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)

	userService := service.NewUserService(userRepo, profileRepo, cacheClient, log)
	profileService := service.NewProfileService(profileRepo, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	router.Register(e, log, router.Handlers{
		User:    handler.NewUserHandler(userService),
		Profile: handler.NewProfileHandler(profileService),
		Health: handler.NewHealthHandler(handler.PingerFunc(func(ctx context.Context) error {
			return db.Ping(ctx, gormDB)
		}), log),
	})

	return &Server{
		cfg:   cfg,
		log:   log,
		db:    gormDB,
		cache: cacheClient,
		echo:  e,
	}, nil
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	addr := ":" + s.cfg.ServerPort
	s.log.Info().Str("addr", addr).Str("env", s.cfg.Env).Msg("starting server")
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server start: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests, waits for in-flight ones, then closes
// the cache and the store pool.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	if err := s.echo.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}
	if err := s.cache.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close cache: %w", err))
	}
	if err := db.Close(s.db); err != nil {
		errs = append(errs, fmt.Errorf("close database: %w", err))
	}
	s.log.Info().Msg("server stopped")
	return errors.Join(errs...)
}
