package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	accountapp "github.com/platewise/account-service/application/account"
	"github.com/platewise/account-service/constant"
	"github.com/platewise/account-service/model"
	"github.com/platewise/account-service/utils/errors"
	"github.com/platewise/account-service/utils/ratelimit"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	AccountApp accountapp.AccountApp
}

func NewTransport(AccountApp accountapp.AccountApp, limiter *ratelimit.Limiter) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		AccountApp: AccountApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	throttled := RateLimitMiddleware(limiter)

	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.Handle("/login", throttled(http.HandlerFunc(rh.Login))).Methods(http.MethodPost)
	mux.Handle("/forgot-password", throttled(http.HandlerFunc(rh.ForgotPassword))).Methods(http.MethodPost)
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/user/personal-info", rh.SavePersonalInfo).Methods(http.MethodPost)
	mux.HandleFunc("/user/food-preferences", rh.FoodPreferences).Methods(http.MethodGet)

	// middleware
	mux.Use(LoggingMiddleware())

	return mux
}

// Register handler
// @Summary Register account
// @Description Register a new account with email or phone, password and security question
// @Tags Account
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.AccountApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.AccountApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login
// @Description Authenticate with email or phone and password
// @Tags Account
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.AccountApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.AccountApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ForgotPassword handler
// @Summary Forgot password
// @Description Verify the security answer and send a password reset link
// @Tags Account
// @Accept json
// @Produce json
// @Param request body model.ForgotPasswordRequest true "Forgot Password Request"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Router /forgot-password [post]
func (s *RestHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.AccountApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.AccountApp.ForgotPassword(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout
// @Description Acknowledge logout; no server-side session exists
// @Tags Account
// @Produce json
// @Success 200 {object} model.MessageResponse
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.AccountApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	writeSuccess(w, s.AccountApp.Logout(ctx))
}

// SavePersonalInfo handler
// @Summary Save personal info
// @Description Update profile attributes of an existing account
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body model.PersonalInfoRequest true "Personal Info Request"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} errorResponse
// @Router /user/personal-info [post]
func (s *RestHandler) SavePersonalInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.PersonalInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.AccountApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.AccountApp.SavePersonalInfo(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// FoodPreferences handler
// @Summary Food preferences catalog
// @Description List the fixed catalog of food types
// @Tags Profile
// @Produce json
// @Success 200 {object} model.FoodTypesResponse
// @Router /user/food-preferences [get]
func (s *RestHandler) FoodPreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.AccountApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	writeSuccess(w, s.AccountApp.FoodTypes(ctx))
}
