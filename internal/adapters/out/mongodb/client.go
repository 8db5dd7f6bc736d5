package mongodb

import (
	"context"
	"fmt"

	"github.com/suchimauz/dentist-timeslots-generator/internal/config"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/ports/out"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func NewMongoClient(ctx context.Context, cfg *config.Config, logger out.LoggerPort) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Mongo.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		logger.Error("mongodb.connect.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("mongodb.connect.failed: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		logger.Error("mongodb.ping.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("mongodb.ping.failed: %w", err)
	}

	logger.Info("mongodb.connected", out.LogFields{
		"database": cfg.Mongo.Database,
	})

	return client, nil
}
