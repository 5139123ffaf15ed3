package mongoclient

import (
	"context"
	"fmt"
	"time"

	"github.com/platewise/account-service/cmd/config"
	tokenrepo "github.com/platewise/account-service/repository/token"
	userrepo "github.com/platewise/account-service/repository/user"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	client   *mongo.Client
	database *mongo.Database
)

// New connects to the document store using the provided configuration,
// verifies connectivity and ensures the required indexes.
func New(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config provided")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Database.URI))
	if err != nil {
		return fmt.Errorf("unable to connect to mongo at %s: %w", cfg.Database.URI, err)
	}

	if err := c.Ping(ctx, nil); err != nil {
		return fmt.Errorf("unable to ping mongo at %s: %w", cfg.Database.URI, err)
	}

	db := c.Database(cfg.Database.Name)
	if err := ensureIndexes(ctx, db); err != nil {
		return fmt.Errorf("unable to create indexes: %w", err)
	}

	client = c
	database = db
	return nil
}

func Get() *mongo.Database {
	return database
}

func Close() error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}

// ensureIndexes creates the authoritative uniqueness guards for email
// and phone (partial, since each account carries exactly one of them)
// and lets the store expire reset tokens past their expiry.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	users := db.Collection(userrepo.CollectionName)
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"email": bson.M{"$type": "string"}}),
		},
		{
			Keys: bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"phone": bson.M{"$type": "string"}}),
		},
	})
	if err != nil {
		return err
	}

	tokens := db.Collection(tokenrepo.CollectionName)
	_, err = tokens.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "token", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	})
	return err
}
