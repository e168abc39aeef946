package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	appliancedomain "github.com/wattwiselabs/wattwise/internal/appliance/domain"
	jwtsvc "github.com/wattwiselabs/wattwise/internal/auth/jwt"
	billdomain "github.com/wattwiselabs/wattwise/internal/bill/domain"
	forecastdomain "github.com/wattwiselabs/wattwise/internal/forecast/domain"
	monthlydomain "github.com/wattwiselabs/wattwise/internal/monthlydata/domain"
	"github.com/wattwiselabs/wattwise/internal/predictor"
	recdomain "github.com/wattwiselabs/wattwise/internal/recommendation/domain"
	tariffdomain "github.com/wattwiselabs/wattwise/internal/tariff/domain"
	usagedomain "github.com/wattwiselabs/wattwise/internal/usage/domain"
	userdomain "github.com/wattwiselabs/wattwise/internal/user/domain"
	uadomain "github.com/wattwiselabs/wattwise/internal/userappliance/domain"
)

const (
	codeValidation = "validation_error"
	codeDuplicate  = "duplicate_error"
	codeAuth       = "auth_error"
	codeForbidden  = "forbidden"
	codeNotFound   = "not_found"
	codeUpstream   = "upstream_error"
	codeStore      = "store_error"
)

var (
	ErrUnauthorized = errors.New("missing or invalid bearer token")
	ErrForbidden    = errors.New("insufficient role")
)

// APIError is the wire shape of every error response.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message"`
}

func (e *APIError) Error() string { return e.Message }

func newValidationError(field, reason, message string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    codeValidation,
		Field:   field,
		Reason:  reason,
		Message: message,
	}
}

// AbortWithError converts any error into the stable error taxonomy and ends
// the request. Unrecognized errors become opaque store errors so that
// persistence internals never leak to clients.
func AbortWithError(c *gin.Context, err error) {
	apiErr := toAPIError(err)
	c.AbortWithStatusJSON(apiErr.Status, gin.H{"error": apiErr})
}

func toAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	if isMalformedBody(err) {
		return &APIError{Status: http.StatusBadRequest, Code: codeValidation, Message: "malformed request body"}
	}

	switch {
	case isValidationError(err):
		return &APIError{Status: http.StatusBadRequest, Code: codeValidation, Message: err.Error()}

	case errors.Is(err, userdomain.ErrDuplicateEmail):
		return &APIError{Status: http.StatusBadRequest, Code: codeDuplicate, Message: "email already registered"}

	case errors.Is(err, userdomain.ErrInvalidCredentials),
		errors.Is(err, jwtsvc.ErrInvalidToken),
		errors.Is(err, jwtsvc.ErrExpiredToken),
		errors.Is(err, jwtsvc.ErrInvalidAlgorithm),
		errors.Is(err, ErrUnauthorized):
		return &APIError{Status: http.StatusUnauthorized, Code: codeAuth, Message: err.Error()}

	case errors.Is(err, ErrForbidden):
		return &APIError{Status: http.StatusForbidden, Code: codeForbidden, Message: err.Error()}

	case errors.Is(err, userdomain.ErrUserNotFound),
		errors.Is(err, uadomain.ErrRecordNotFound),
		errors.Is(err, tariffdomain.ErrEmptyTariffTable):
		return &APIError{Status: http.StatusNotFound, Code: codeNotFound, Message: err.Error()}

	case errors.Is(err, predictor.ErrUpstream):
		// The upstream message rides along so the client can surface it.
		return &APIError{Status: http.StatusInternalServerError, Code: codeUpstream, Message: err.Error()}
	}

	return &APIError{Status: http.StatusInternalServerError, Code: codeStore, Message: "internal storage error"}
}

func isMalformedBody(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}

func isValidationError(err error) bool {
	for _, target := range []error{
		userdomain.ErrMissingFields,
		userdomain.ErrInvalidRole,
		userdomain.ErrInvalidUserID,
		uadomain.ErrInvalidUserID,
		usagedomain.ErrMissingFields,
		usagedomain.ErrInvalidUserID,
		usagedomain.ErrInvalidMonth,
		forecastdomain.ErrMissingFields,
		forecastdomain.ErrInvalidUserID,
		recdomain.ErrMissingFields,
		recdomain.ErrInvalidUserID,
		recdomain.ErrInvalidMonth,
		billdomain.ErrMissingFields,
		billdomain.ErrInvalidUserID,
		monthlydomain.ErrInvalidMonth,
		appliancedomain.ErrMissingName,
		tariffdomain.ErrNegativeConsumption,
		tariffdomain.ErrUnknownScheme,
		tariffdomain.ErrInvalidBlock,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
