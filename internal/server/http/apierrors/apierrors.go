// Package apierrors maps service errors to HTTP statuses and writes every
// response in the {message, code, data} envelope.
package apierrors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/models"
)

// ErrBadRequest marks malformed input that never reached a service.
var ErrBadRequest = errors.New("bad request")

// Status returns the HTTP status for err.
func Status(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrForbiddenRole):
		return http.StatusForbidden
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// WriteJSON writes data inside the envelope. Code mirrors the status.
func WriteJSON(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.Envelope[any]{Message: message, Code: status, Data: data})
}

// WriteError writes err with the status from Status. Internal errors are
// reported without detail; validation errors carry the field map as data.
func WriteError(w http.ResponseWriter, _ *http.Request, err error) {
	status := Status(err)

	var data any
	var verrs models.ValidationErrors
	if errors.As(err, &verrs) {
		data = verrs
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = common.ErrorInternal.Error()
	}

	WriteJSON(w, status, message, data)
}
