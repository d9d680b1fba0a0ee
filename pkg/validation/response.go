package validation

import (
	"encoding/json"
	"net/http"
)

// ErrorCode is the machine-readable code of the default error response.
const ErrorCode = "validation_error"

// ErrorResponse is the body written by the default error responder.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the flat error map under Details.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details Errors `json:"details"`
}

// JSONErrorResponse returns an ErrorResponder writing ErrorResponse with the given status.
func JSONErrorResponse(status int) ErrorResponder {
	return func(w http.ResponseWriter, _ *http.Request, res *Result) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(ErrorResponse{
			Error: ErrorDetail{
				Code:    ErrorCode,
				Message: ErrValidationFailed.Error(),
				Details: res.Errors(),
			},
		})
	}
}
