package app

import (
	"context"
	"log"
	"os"
	"time"

	"job-radar/internal/config"
	"job-radar/internal/database"
	"job-radar/internal/database/migration"
	dbpostgres "job-radar/internal/database/postgres"
	"job-radar/internal/infrastructure/cache"
	"job-radar/internal/pkg/jwt"
	"job-radar/internal/quality"
	"job-radar/internal/repository"
	"job-radar/internal/usecase"
	"job-radar/internal/ws"
)

// Container owns every long-lived dependency and the usecases built on
// top of them.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Auth       usecase.AuthUsecase
	Duplicates usecase.DuplicateUsecase
	Match      usecase.MatchUsecase
	JWT        jwt.Service
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := (migration.Runner{Dir: "migrations"}).Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	hub := ws.NewHub(logger)
	ws.SetDefaultHub(hub)
	go hub.Run()

	jobs := repository.NewPostgresJobRepository(db)
	pairs := repository.NewPostgresDuplicateRepository(db)
	profiles := repository.NewPostgresProfileRepository(db)
	users := repository.NewPostgresUserRepository(db)

	jwtSvc := jwt.NewHMACService(cfg.Auth.JWTSecret, cfg.Auth.AccessExpiresIn, cfg.Auth.RefreshExpiresIn)

	scorer := quality.NewScorer(jobs)
	selector := usecase.NewCanonicalSelector(scorer, cfg.Detection.QualityTimeout, logger)

	return &Container{
		Config:     cfg,
		Logger:     logger,
		DB:         db,
		Cache:      redisCache,
		Hub:        hub,
		Auth:       usecase.NewAuthUsecase(users, jwtSvc),
		Duplicates: usecase.NewDuplicateUsecase(jobs, pairs, selector, cfg.Detection.Threshold, cfg.Detection.Workers, logger),
		Match:      usecase.NewMatchUsecase(jobs, profiles, redisCache, logger),
		JWT:        jwtSvc,
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
