package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserEntity represents a document in the users collection.
type UserEntity struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email              string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone              string             `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash       string             `bson:"password_hash" json:"-"`
	SecurityQuestion   string             `bson:"security_question" json:"-"`
	SecurityAnswerHash string             `bson:"security_answer_hash" json:"-"`
	Name               string             `bson:"name,omitempty" json:"name,omitempty"`
	Age                int                `bson:"age,omitempty" json:"age,omitempty"`
	Sex                string             `bson:"sex,omitempty" json:"sex,omitempty"`
	Address            string             `bson:"address,omitempty" json:"address,omitempty"`
	ProfilePicture     string             `bson:"profile_picture,omitempty" json:"profile_picture,omitempty"`
	FoodPreferences    []string           `bson:"food_preferences,omitempty" json:"food_preferences,omitempty"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt          *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    primitive.ObjectID
	Email string
	Phone string
}

// ProfileUpdate carries the personal-info fields applied to an existing user.
// ProfilePicture and FoodPreferences are optional; the rest are always set.
type ProfileUpdate struct {
	Name            string
	Age             int
	Sex             string
	Address         string
	ProfilePicture  string
	FoodPreferences []string
}

// RegisterRequest for account registration. Exactly one of Email/Phone
// must be set; the service enforces the ordering of the checks, so the
// struct carries no validate tags.
type RegisterRequest struct {
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Password         string `json:"password"`
	ConfirmPassword  string `json:"confirm_password"`
	SecurityQuestion string `json:"security_question"`
	SecurityAnswer   string `json:"security_answer"`
}

// LoginRequest accepts an email or phone plus password.
type LoginRequest struct {
	EmailOrPhone string `json:"email_or_phone"`
	Password     string `json:"password"`
}

// ForgotPasswordRequest starts the reset flow by answering the
// account's security question.
type ForgotPasswordRequest struct {
	EmailOrPhone   string `json:"email_or_phone"`
	SecurityAnswer string `json:"security_answer"`
}

// PersonalInfoRequest updates profile attributes on an existing account.
// Fields are declared in validation order; tags delegate to the shared
// account predicates registered in utils/validator.
type PersonalInfoRequest struct {
	Email           string   `json:"email" validate:"account_email"`
	Name            string   `json:"name" validate:"person_name"`
	Age             int      `json:"age" validate:"adult_age"`
	Sex             string   `json:"sex" validate:"sex_enum"`
	Address         string   `json:"address" validate:"street_address"`
	ProfilePicture  string   `json:"profile_picture,omitempty"`
	FoodPreferences []string `json:"food_preferences,omitempty" validate:"omitempty,dive,food_type"`
}

// MessageResponse is the acknowledgment body shared by the account
// operations. No operation echoes credentials or tokens back.
type MessageResponse struct {
	Message string `json:"message"`
}

// FoodTypesResponse lists the fixed cuisine catalog.
type FoodTypesResponse struct {
	FoodTypes []string `json:"food_types"`
}
