// File: internal/platform/mongodb/client.go
package mongodb

import (
	"context"
	"fmt"

	"github.com/AymenS02/united-real-estate/internal/config"
	"github.com/AymenS02/united-real-estate/internal/platform/gateway"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Dialer returns a gateway dialer that connects to MONGO_URI and pings the primary.
func Dialer(cfg *config.Config) gateway.Dialer[*mongo.Client] {
	return func(ctx context.Context) (*mongo.Client, error) {
		ctx, cancel := context.WithTimeout(ctx, cfg.MongoConnectTimeout)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().
			ApplyURI(cfg.MongoURI).
			SetServerSelectionTimeout(cfg.MongoConnectTimeout))
		if err != nil {
			return nil, fmt.Errorf("mongo connect: %w", err)
		}
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, fmt.Errorf("mongo ping: %w", err)
		}
		return client, nil
	}
}

// NewGateway returns the process-wide lazily connected Mongo gateway.
func NewGateway(cfg *config.Config, logger *zap.Logger) *gateway.Gateway[*mongo.Client] {
	return gateway.New[*mongo.Client]("mongodb", Dialer(cfg),
		gateway.WithCloser[*mongo.Client](func(ctx context.Context, c *mongo.Client) error {
			return c.Disconnect(ctx)
		}),
		gateway.WithLogger[*mongo.Client](logger.Named("mongodb")),
	)
}
