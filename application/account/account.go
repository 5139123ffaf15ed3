package account

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	stderrors "errors"
	"strings"
	"time"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/platewise/account-service/cmd/config"
	"github.com/platewise/account-service/constant"
	"github.com/platewise/account-service/model"
	tokenrepo "github.com/platewise/account-service/repository/token"
	userrepo "github.com/platewise/account-service/repository/user"
	"github.com/platewise/account-service/thirdparty/rabbitmq"
	"github.com/platewise/account-service/utils/errors"
	"github.com/platewise/account-service/utils/hasher"
	"github.com/platewise/account-service/utils/logger"
	validatorx "github.com/platewise/account-service/utils/validator"
	"go.uber.org/zap"
)

const (
	resetTokenTTL   = time.Hour
	resetTokenBytes = 32 // 256 bits of entropy
)

// ResetPublisher hands a minted reset token to the delivery side.
type ResetPublisher interface {
	PublishPasswordReset(msg rabbitmq.PasswordResetMessage) error
}

type AccountApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.MessageResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.MessageResponse, error)
	ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) (*model.MessageResponse, error)
	Logout(ctx context.Context) *model.MessageResponse
	SavePersonalInfo(ctx context.Context, req *model.PersonalInfoRequest) (*model.MessageResponse, error)
	FoodTypes(ctx context.Context) *model.FoodTypesResponse
}

type AccountAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	tokenRepo tokenrepo.TokenRepository
	hasher    hasher.Hasher
	publisher ResetPublisher
}

func NewAccountApp(config *config.Config, userRepo userrepo.UserRepository, tokenRepo tokenrepo.TokenRepository, secretHasher hasher.Hasher, publisher ResetPublisher) AccountApp {
	return &AccountAppImpl{
		config:    config,
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		hasher:    secretHasher,
		publisher: publisher,
	}
}

// Register creates an account keyed by exactly one of email or phone.
// The check order is fixed: identity shape, password confirmation,
// password strength, security question/answer presence, uniqueness.
// Callers rely on first-failure-wins error messages.
func (s *AccountAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.MessageResponse, error) {
	var identity model.Identity
	switch {
	case req.Email != "" && req.Phone != "":
		return nil, errors.SetCustomError(constant.ErrInvalidIdentity)
	case req.Email != "":
		if !validatorx.IsValidEmail(req.Email) {
			return nil, errors.SetCustomError(constant.ErrInvalidIdentity)
		}
		identity = model.EmailIdentity(req.Email)
	case req.Phone != "":
		if !validatorx.IsValidPhone(req.Phone) {
			return nil, errors.SetCustomError(constant.ErrInvalidIdentity)
		}
		identity = model.PhoneIdentity(req.Phone)
	default:
		return nil, errors.SetCustomError(constant.ErrInvalidIdentity)
	}

	if req.Password != req.ConfirmPassword {
		return nil, errors.SetCustomError(constant.ErrPasswordMismatch)
	}

	if !validatorx.IsValidPassword(req.Password) {
		return nil, errors.SetCustomError(constant.ErrWeakPassword)
	}

	if strings.TrimSpace(req.SecurityQuestion) == "" || strings.TrimSpace(req.SecurityAnswer) == "" {
		return nil, errors.SetCustomError(constant.ErrMissingSecurityQA)
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Database.OpTimeout)
	defer cancel()

	// Fast path only; the unique index on insert is authoritative.
	exists, err := s.userRepo.Exists(ctx, identity.Filter())
	if err != nil {
		logger.Error("[Register] err userRepo.Exists", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if exists {
		return nil, errors.SetCustomError(constant.ErrDuplicateIdentity)
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		logger.Error("[Register] err hasher.Hash password", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	answerHash, err := s.hasher.Hash(req.SecurityAnswer)
	if err != nil {
		logger.Error("[Register] err hasher.Hash answer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userEntity := &model.UserEntity{
		Email:              req.Email,
		Phone:              req.Phone,
		PasswordHash:       passwordHash,
		SecurityQuestion:   req.SecurityQuestion,
		SecurityAnswerHash: answerHash,
	}

	if _, err = s.userRepo.Create(ctx, userEntity); err != nil {
		if stderrors.Is(err, userrepo.ErrDuplicate) {
			// Lost the race between the existence check and the insert.
			return nil, errors.SetCustomError(constant.ErrDuplicateIdentity)
		}
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.MessageResponse{Message: "User registered successfully"}, nil
}

// Login verifies credentials and acknowledges. Unknown identity and
// wrong password produce the identical error, so callers cannot probe
// which accounts exist. No session or token is issued.
func (s *AccountAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.MessageResponse, error) {
	if req.EmailOrPhone == "" || req.Password == "" {
		return nil, errors.SetCustomError(constant.ErrMissingCredentials)
	}

	identity := model.ParseIdentity(req.EmailOrPhone)

	ctx, cancel := context.WithTimeout(ctx, s.config.Database.OpTimeout)
	defer cancel()

	user, err := s.userRepo.Get(ctx, identity.Filter())
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil || !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	return &model.MessageResponse{Message: "Login successful"}, nil
}

// ForgotPassword mints a single-use reset token once the security
// answer verifies. Unknown identity and wrong answer share one error,
// and the token value never appears in the response.
func (s *AccountAppImpl) ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) (*model.MessageResponse, error) {
	if req.EmailOrPhone == "" || req.SecurityAnswer == "" {
		return nil, errors.SetCustomError(constant.ErrMissingFields)
	}

	identity := model.ParseIdentity(req.EmailOrPhone)

	ctx, cancel := context.WithTimeout(ctx, s.config.Database.OpTimeout)
	defer cancel()

	user, err := s.userRepo.Get(ctx, identity.Filter())
	if err != nil {
		logger.Error("[ForgotPassword] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil || !s.hasher.Verify(req.SecurityAnswer, user.SecurityAnswerHash) {
		return nil, errors.SetCustomError(constant.ErrInvalidSecurityAnswer)
	}

	tokenValue, err := generateResetToken()
	if err != nil {
		logger.Error("[ForgotPassword] err generateResetToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	resetToken := &model.PasswordResetToken{
		UserID:    user.ID,
		Token:     tokenValue,
		ExpiresAt: time.Now().Add(resetTokenTTL),
		Consumed:  false,
	}

	if _, err = s.tokenRepo.Create(ctx, resetToken); err != nil {
		logger.Error("[ForgotPassword] err tokenRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Delivery is best-effort: the token is already persisted, a failed
	// hand-off only delays the link.
	err = s.publisher.PublishPasswordReset(rabbitmq.PasswordResetMessage{
		UserID:    user.ID.Hex(),
		Email:     user.Email,
		Phone:     user.Phone,
		Token:     resetToken.Token,
		ExpiresAt: resetToken.ExpiresAt,
	})
	if err != nil {
		logger.Warn("[ForgotPassword] err publisher.PublishPasswordReset", zap.String("error", err.Error()))
	}

	return &model.MessageResponse{Message: "Password reset link sent"}, nil
}

// Logout is a stateless acknowledgment; there is no session to
// invalidate.
func (s *AccountAppImpl) Logout(ctx context.Context) *model.MessageResponse {
	return &model.MessageResponse{Message: "Logout successful"}
}

// SavePersonalInfo applies profile attributes to an existing account
// looked up by email. Field rules are the shared account predicates,
// evaluated through struct tags in declaration order so the first bad
// field wins.
func (s *AccountAppImpl) SavePersonalInfo(ctx context.Context, req *model.PersonalInfoRequest) (*model.MessageResponse, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		var fieldErrs gpvalidator.ValidationErrors
		if stderrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return nil, fieldValidationError(fieldErrs[0])
		}
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	update := &model.ProfileUpdate{
		Name:            strings.TrimSpace(req.Name),
		Age:             req.Age,
		Sex:             req.Sex,
		Address:         strings.TrimSpace(req.Address),
		ProfilePicture:  req.ProfilePicture,
		FoodPreferences: req.FoodPreferences,
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Database.OpTimeout)
	defer cancel()

	matched, err := s.userRepo.UpdateProfileByEmail(ctx, req.Email, update)
	if err != nil {
		logger.Error("[SavePersonalInfo] err userRepo.UpdateProfileByEmail", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if matched == 0 {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}

	return &model.MessageResponse{Message: "Personal information saved successfully"}, nil
}

// FoodTypes returns the fixed cuisine catalog in stable order.
func (s *AccountAppImpl) FoodTypes(ctx context.Context) *model.FoodTypesResponse {
	return &model.FoodTypesResponse{
		FoodTypes: append([]string(nil), constant.FoodTypes...),
	}
}

func fieldValidationError(fe gpvalidator.FieldError) errors.CustomError {
	var msg string
	// Dive validations report the element, e.g. FoodPreferences[2].
	field := fe.StructField()
	if strings.HasPrefix(field, "FoodPreferences") {
		field = "FoodPreferences"
	}
	switch field {
	case "Email":
		msg = "Invalid email address"
	case "Name":
		msg = "Invalid name"
	case "Age":
		msg = "Age must be between 18 and 99"
	case "Sex":
		msg = "Invalid sex"
	case "Address":
		msg = "Invalid address"
	case "FoodPreferences":
		msg = "Unknown food preference"
	default:
		msg = constant.ErrorTypeMessage[constant.ErrFieldValidation]
	}
	return errors.SetCustomErrorMessage(constant.ErrFieldValidation, msg)
}

func generateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
