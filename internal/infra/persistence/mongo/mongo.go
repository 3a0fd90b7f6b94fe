// Package mongo contains the concrete implementation of the persistence layer
// using the MongoDB document store.
package mongo

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"passport/config"
	"passport/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required to build the database handle.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New connects to the configured MongoDB deployment and returns the database
// handle the repositories operate on. The connection is verified with a ping
// and closed through the fx lifecycle.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo uri must be provided")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongo")
	}

	pingCtx := params.Ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(params.Ctx, cfg.Timeout)
		defer cancel()
	}

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, errors.Wrap(err, "failed to ping mongo")
	}

	params.Logger.Info("Connected to MongoDB", slog.String("database", cfg.Database))

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(client.Disconnect(shutdownCtx))
		},
	})

	return client.Database(cfg.Database), nil
}
