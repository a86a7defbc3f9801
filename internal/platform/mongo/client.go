package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"insightboard/internal/platform/config"
)

// Client holds a connected mongo client and the configured collection.
type Client struct {
	*mongo.Client
	cfg config.MongoConfig
}

// New connects to cfg.URI and verifies the primary is reachable.
func New(ctx context.Context, cfg config.MongoConfig) (*Client, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout).SetServerSelectionTimeout(cfg.ConnectTimeout)
	}
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}
	return &Client{Client: client, cfg: cfg}, nil
}

// Collection returns the configured insights collection.
func (c *Client) Collection() *mongo.Collection {
	return c.Database(c.cfg.Database).Collection(c.cfg.Collection)
}

// Close disconnects from the deployment.
func (c *Client) Close(ctx context.Context) error {
	return c.Disconnect(ctx)
}
