package token

import (
	"context"
	"time"

	"github.com/platewise/account-service/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const CollectionName = "password_reset_tokens"

type Mongo struct {
	coll *mongo.Collection
}

// TokenRepository persists issued password-reset tokens. There is no
// read-back here: the redemption step is out of scope, tokens are only
// minted and stored.
type TokenRepository interface {
	Create(ctx context.Context, data *model.PasswordResetToken) (*model.PasswordResetToken, error)
}

func NewTokenRepository(db *mongo.Database) TokenRepository {
	return &Mongo{coll: db.Collection(CollectionName)}
}

func (m *Mongo) Create(ctx context.Context, data *model.PasswordResetToken) (*model.PasswordResetToken, error) {
	data.CreatedAt = time.Now().UTC()

	result, err := m.coll.InsertOne(ctx, data)
	if err != nil {
		return nil, err
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		data.ID = id
	}
	return data, nil
}
