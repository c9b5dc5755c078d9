package integration_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/metinatakli/movieflix/internal/app"
	"github.com/metinatakli/movieflix/internal/auth"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type TestApp struct {
	App    *app.Application
	DB     *mongo.Database
	Tokens *auth.TokenManager
	client *mongo.Client
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, err
	}

	return &TestApp{
		App:    app.NewApp(cfg, logger),
		DB:     client.Database(cfg.Mongo.DBName),
		Tokens: auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.SessionTTL),
		client: client,
	}, nil
}

func (a *TestApp) Close(ctx context.Context) error {
	if err := a.App.Close(ctx); err != nil {
		return err
	}

	return a.client.Disconnect(ctx)
}
