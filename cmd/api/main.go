package main

import (
	"context"

	"github.com/abhishek622/careerOS/internal/config"
	"github.com/abhishek622/careerOS/internal/database"
	"github.com/abhishek622/careerOS/internal/handler"
	"github.com/abhishek622/careerOS/internal/logger"
	"github.com/abhishek622/careerOS/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

type application struct {
	DB         *pgxpool.Pool
	Logger     *zap.Logger
	Config     *config.Config
	Repository *repository.Repository
	Handler    *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded: %s", cfg)

	pool, err := database.Connect(ctx, cfg.DB.DSN, cfg.DB.MaxConns, cfg.DB.MaxConnLifetime)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		sugar.Fatal(err)
	}
	sugar.Info("database schema ready")

	repo := repository.NewRepository(pool)

	app := &application{
		DB:         pool,
		Logger:     log,
		Config:     cfg,
		Repository: repo,
		Handler:    handler.New(log, repo.Entry, pool),
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
