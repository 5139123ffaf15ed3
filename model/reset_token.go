package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PasswordResetToken is a document in the password_reset_tokens
// collection. UserID is a lookup reference, not an ownership link.
type PasswordResetToken struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Token     string             `bson:"token" json:"-"`
	ExpiresAt time.Time          `bson:"expires_at" json:"expires_at"`
	Consumed  bool               `bson:"consumed" json:"consumed"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Valid reports whether the token may still authorize a password change:
// not consumed and not past its expiry.
func (t *PasswordResetToken) Valid(now time.Time) bool {
	return !t.Consumed && now.Before(t.ExpiresAt)
}
