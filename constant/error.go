package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrInvalidRequest
	ErrInvalidIdentity
	ErrPasswordMismatch
	ErrWeakPassword
	ErrMissingSecurityQA
	ErrDuplicateIdentity
	ErrMissingCredentials
	ErrMissingFields
	ErrInvalidCredentials
	ErrInvalidSecurityAnswer
	ErrUserNotFound
	ErrFieldValidation
	ErrRateLimited
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:               "success",
	ErrInternal:              "error internal",
	ErrInvalidRequest:        "invalid request",
	ErrInvalidIdentity:       "Invalid email address or phone number",
	ErrPasswordMismatch:      "Passwords do not match",
	ErrWeakPassword:          "Password must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, one number, and one special character",
	ErrMissingSecurityQA:     "Security question and answer cannot be empty",
	ErrDuplicateIdentity:     "User already exists",
	ErrMissingCredentials:    "Email or phone and password are required",
	ErrMissingFields:         "Email or phone and security answer are required",
	ErrInvalidCredentials:    "Incorrect email or password",
	ErrInvalidSecurityAnswer: "Invalid security question answer",
	ErrUserNotFound:          "No matching user record found",
	ErrFieldValidation:       "Invalid field value",
	ErrRateLimited:           "Too many requests, please try again later",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:               http.StatusOK,
	ErrInternal:              http.StatusInternalServerError,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrInvalidIdentity:       http.StatusBadRequest,
	ErrPasswordMismatch:      http.StatusBadRequest,
	ErrWeakPassword:          http.StatusBadRequest,
	ErrMissingSecurityQA:     http.StatusBadRequest,
	ErrDuplicateIdentity:     http.StatusConflict,
	ErrMissingCredentials:    http.StatusBadRequest,
	ErrMissingFields:         http.StatusBadRequest,
	ErrInvalidCredentials:    http.StatusBadRequest,
	ErrInvalidSecurityAnswer: http.StatusBadRequest,
	ErrUserNotFound:          http.StatusBadRequest,
	ErrFieldValidation:       http.StatusBadRequest,
	ErrRateLimited:           http.StatusTooManyRequests,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:               "0000",
	ErrInternal:              "0001",
	ErrInvalidRequest:        "0002",
	ErrInvalidIdentity:       "0003",
	ErrPasswordMismatch:      "0004",
	ErrWeakPassword:          "0005",
	ErrMissingSecurityQA:     "0006",
	ErrDuplicateIdentity:     "0007",
	ErrMissingCredentials:    "0008",
	ErrMissingFields:         "0009",
	ErrInvalidCredentials:    "0010",
	ErrInvalidSecurityAnswer: "0011",
	ErrUserNotFound:          "0012",
	ErrFieldValidation:       "0013",
	ErrRateLimited:           "0014",
}
