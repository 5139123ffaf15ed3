package transport_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/platewise/account-service/constant"
	accountmocks "github.com/platewise/account-service/mocks/application/account"
	"github.com/platewise/account-service/model"
	"github.com/platewise/account-service/transport"
	cerr "github.com/platewise/account-service/utils/errors"
	"github.com/platewise/account-service/utils/ratelimit"
	"github.com/stretchr/testify/mock"
)

func postJSON(t *testing.T, handler http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.RemoteAddr = "1.2.3.4:56789"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestTransport_FoodPreferences(t *testing.T) {
	appMock := accountmocks.NewAccountApp(t)
	appMock.
		On("FoodTypes", mock.Anything).
		Return(&model.FoodTypesResponse{FoodTypes: append([]string(nil), constant.FoodTypes...)}).
		Times(2)

	limiter := ratelimit.New(10, time.Minute)
	defer limiter.Stop()
	handler := transport.NewTransport(appMock, limiter)

	var bodies [2]model.FoodTypesResponse
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/user/food-preferences", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &bodies[i]); err != nil {
			t.Fatalf("decode body: %v", err)
		}
	}

	if len(bodies[0].FoodTypes) != 10 {
		t.Fatalf("catalog size = %d, want 10", len(bodies[0].FoodTypes))
	}
	for i, ft := range bodies[0].FoodTypes {
		if bodies[1].FoodTypes[i] != ft {
			t.Fatal("catalog order should be stable across requests")
		}
	}
}

func TestTransport_Logout(t *testing.T) {
	appMock := accountmocks.NewAccountApp(t)
	appMock.
		On("Logout", mock.Anything).
		Return(&model.MessageResponse{Message: "Logout successful"}).
		Once()

	limiter := ratelimit.New(10, time.Minute)
	defer limiter.Stop()
	handler := transport.NewTransport(appMock, limiter)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body model.MessageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "Logout successful" {
		t.Fatalf("message = %q", body.Message)
	}
}

func TestTransport_LoginRateLimited(t *testing.T) {
	appMock := accountmocks.NewAccountApp(t)
	appMock.
		On("Login", mock.Anything, mock.AnythingOfType("*model.LoginRequest")).
		Return(nil, cerr.SetCustomError(constant.ErrInvalidCredentials)).
		Times(10)

	limiter := ratelimit.New(10, time.Minute)
	defer limiter.Stop()
	handler := transport.NewTransport(appMock, limiter)

	login := &model.LoginRequest{EmailOrPhone: "test@example.com", Password: "WrongPass1!"}

	for i := 0; i < 10; i++ {
		rec := postJSON(t, handler, "/login", login)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("attempt %d status = %d, want 400", i+1, rec.Code)
		}
	}

	// The 11th attempt inside the window never reaches the service.
	rec := postJSON(t, handler, "/login", login)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("11th attempt status = %d, want 429", rec.Code)
	}

	var body struct {
		Code  string `json:"code"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != constant.ErrorTypeMessage[constant.ErrRateLimited] {
		t.Fatalf("error = %q", body.Error)
	}
}

func TestTransport_RegisterDuplicateConflict(t *testing.T) {
	appMock := accountmocks.NewAccountApp(t)
	appMock.
		On("Register", mock.Anything, mock.AnythingOfType("*model.RegisterRequest")).
		Return(nil, cerr.SetCustomError(constant.ErrDuplicateIdentity)).
		Once()

	limiter := ratelimit.New(10, time.Minute)
	defer limiter.Stop()
	handler := transport.NewTransport(appMock, limiter)

	rec := postJSON(t, handler, "/register", &model.RegisterRequest{
		Email:            "existing@example.com",
		Password:         "Abc12345!",
		ConfirmPassword:  "Abc12345!",
		SecurityQuestion: "q",
		SecurityAnswer:   "a",
	})

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestTransport_RegisterBadJSON(t *testing.T) {
	appMock := accountmocks.NewAccountApp(t)

	limiter := ratelimit.New(10, time.Minute)
	defer limiter.Stop()
	handler := transport.NewTransport(appMock, limiter)

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestTransport_ForgotPasswordResponseOmitsToken(t *testing.T) {
	appMock := accountmocks.NewAccountApp(t)
	appMock.
		On("ForgotPassword", mock.Anything, mock.AnythingOfType("*model.ForgotPasswordRequest")).
		Return(&model.MessageResponse{Message: "Password reset link sent"}, nil).
		Once()

	limiter := ratelimit.New(10, time.Minute)
	defer limiter.Stop()
	handler := transport.NewTransport(appMock, limiter)

	rec := postJSON(t, handler, "/forgot-password", &model.ForgotPasswordRequest{
		EmailOrPhone:   "test@example.com",
		SecurityAnswer: "Rex",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if _, ok := body["token"]; ok {
		t.Fatal("response must not contain a token field")
	}
	if body["message"] != "Password reset link sent" {
		t.Fatalf("message = %v", body["message"])
	}
}
