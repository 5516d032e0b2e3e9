package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"profilesvc/internal/config"
	"profilesvc/internal/db"
	"profilesvc/internal/dto"
	apperrors "profilesvc/internal/errors"
	"profilesvc/internal/logger"
	"profilesvc/internal/repository"
	"profilesvc/internal/service"
)

// sampleUsers is used when no -file is given.
var sampleUsers = []dto.RegisterRequest{
	{FirstName: ptr("Ada"), Email: ptr("ada@x.com"), Password: ptr("p"), Phone: ptr("555")},
	{FirstName: ptr("Grace"), Email: ptr("grace@x.com"), Password: ptr("q"), Phone: ptr("556")},
}

func main() {
	file := flag.String("file", "", "JSON array of register payloads; built-in samples when empty")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		boot := logger.New("info", true)
		boot.Fatal().Err(err).Msg("load config")
	}
	log := logger.New(cfg.LogLevel, true)

	if err := run(context.Background(), cfg, *file, log); err != nil {
		log.Error().Err(err).Msg("seed aborted")
		os.Exit(1)
	}
}

// run connects, migrates and seeds. The database is closed before it returns.
func run(ctx context.Context, cfg *config.Config, file string, log zerolog.Logger) error {
	gormDB, err := db.Open(ctx, db.Options{
		Driver:       cfg.DBDriver,
		DSN:          cfg.DBDSN,
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			log.Error().Err(err).Msg("close database")
		}
	}()

	if err := db.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	users := sampleUsers
	if file != "" {
		users, err = readUsers(file)
		if err != nil {
			return fmt.Errorf("read seed file %s: %w", file, err)
		}
	}

	svc := service.NewUserService(
		repository.NewUserRepository(gormDB),
		repository.NewProfileRepository(gormDB),
		nil,
		log,
	)

	created, skipped, err := seedUsers(ctx, svc, users, log)
	if err != nil {
		return err
	}
	log.Info().Int("created", created).Int("skipped", skipped).Msg("seed completed")
	return nil
}

func readUsers(path string) ([]dto.RegisterRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var users []dto.RegisterRequest
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	return users, nil
}

// seedUsers registers each payload, counting conflicts as skipped. Any other
// error stops the run.
func seedUsers(ctx context.Context, svc service.UserService, users []dto.RegisterRequest, log zerolog.Logger) (created, skipped int, err error) {
	for i, req := range users {
		if req.FirstName == nil || req.Email == nil || req.Password == nil || req.Phone == nil {
			log.Warn().Int("index", i).Msg("skipping incomplete payload")
			skipped++
			continue
		}

		user, err := svc.Register(ctx, req.ToUser())
		switch {
		case errors.Is(err, apperrors.ErrEmailAlreadyExists), errors.Is(err, apperrors.ErrPhoneAlreadyExists):
			log.Warn().Str("email", *req.Email).Str("reason", err.Error()).Msg("skipping user")
			skipped++
		case err != nil:
			return created, skipped, fmt.Errorf("register %s: %w", *req.Email, err)
		default:
			log.Info().Int64("id", user.ID).Str("email", user.Email).Msg("user created")
			created++
		}
	}
	return created, skipped, nil
}

func ptr(s string) *string { return &s }
