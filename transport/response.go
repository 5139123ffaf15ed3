package transport

import (
	"encoding/json"
	"net/http"

	"github.com/platewise/account-service/constant"
	cerr "github.com/platewise/account-service/utils/errors"
)

type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError maps CustomError to its taxonomy status and message; any
// other error is reported as a generic internal failure so storage
// faults never leak details or crash the request.
func writeError(w http.ResponseWriter, err error) {
	custom, ok := err.(cerr.CustomError)
	if !ok {
		custom = cerr.SetCustomError(constant.ErrInternal)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(custom.ErrorHTTPCode())
	_ = json.NewEncoder(w).Encode(errorResponse{
		Code:  custom.ErrorCode(),
		Error: custom.Error(),
	})
}
