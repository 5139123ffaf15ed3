package user

import (
	"context"
	"errors"
	"time"

	"github.com/platewise/account-service/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicate is returned when an insert hits the unique email/phone
// index. The index is the authoritative uniqueness guard; the service
// existence check is only a fast path.
var ErrDuplicate = errors.New("identity already exists")

const CollectionName = "users"

type Mongo struct {
	coll *mongo.Collection
}

type UserRepository interface {
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	Exists(ctx context.Context, filter *model.UserFilter) (bool, error)
	Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error)
	UpdateProfileByEmail(ctx context.Context, email string, profile *model.ProfileUpdate) (int64, error)
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &Mongo{coll: db.Collection(CollectionName)}
}

func buildFilter(filter *model.UserFilter) bson.M {
	query := bson.M{}
	if !filter.ID.IsZero() {
		query["_id"] = filter.ID
	}
	if filter.Email != "" {
		query["email"] = filter.Email
	}
	if filter.Phone != "" {
		query["phone"] = filter.Phone
	}
	return query
}

func (m *Mongo) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	var entity model.UserEntity
	err := m.coll.FindOne(ctx, buildFilter(filter)).Decode(&entity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (m *Mongo) Exists(ctx context.Context, filter *model.UserFilter) (bool, error) {
	count, err := m.coll.CountDocuments(ctx, buildFilter(filter))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m *Mongo) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	data.CreatedAt = time.Now().UTC()

	result, err := m.coll.InsertOne(ctx, data)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		data.ID = id
	}
	return data, nil
}

func (m *Mongo) UpdateProfileByEmail(ctx context.Context, email string, profile *model.ProfileUpdate) (int64, error) {
	set := bson.M{
		"name":       profile.Name,
		"age":        profile.Age,
		"sex":        profile.Sex,
		"address":    profile.Address,
		"updated_at": time.Now().UTC(),
	}
	if profile.ProfilePicture != "" {
		set["profile_picture"] = profile.ProfilePicture
	}
	if profile.FoodPreferences != nil {
		set["food_preferences"] = profile.FoodPreferences
	}

	result, err := m.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}
