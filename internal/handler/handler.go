package handler

import (
	"context"

	"github.com/abhishek622/careerOS/pkg/model"
	"go.uber.org/zap"
)

// EntryStore is the persistence the entry handlers depend on.
type EntryStore interface {
	Create(ctx context.Context, title, markdown string) (model.Entry, error)
	GetByID(ctx context.Context, id int64) (model.Entry, error)
	ListLatest(ctx context.Context, limit int) ([]model.Entry, error)
}

// Pinger reports store reachability for /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Logger    *zap.Logger
	EntryRepo EntryStore
	DB        Pinger
}

func New(logger *zap.Logger, entries EntryStore, db Pinger) *Handler {
	return &Handler{
		Logger:    logger,
		EntryRepo: entries,
		DB:        db,
	}
}
