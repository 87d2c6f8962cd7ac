// Package handlers implements the REST endpoints on top of the services.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/portfolio/internal/server/http/apierrors"
	"github.com/dmitrijs2005/portfolio/internal/server/services"
)

// maxBodyBytes caps request bodies; content records are small.
const maxBodyBytes = 1 << 20

// Handlers holds the dependencies of the non-content endpoints.
type Handlers struct {
	Users   *services.UserService
	Contact *services.ContactService
	Uploads *services.UploadService

	// Ping checks the storage for /health. Nil means always healthy.
	Ping func(ctx context.Context) error
}

func writeOK(w http.ResponseWriter, status int, message string, data any) {
	apierrors.WriteJSON(w, status, message, data)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, value any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(value); err != nil {
		return fmt.Errorf("%w: invalid request body: %w", apierrors.ErrBadRequest, err)
	}
	return nil
}

func idParam(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if id == "" {
		return "", fmt.Errorf("%w: id is required", apierrors.ErrBadRequest)
	}
	return id, nil
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if h.Ping != nil {
		if err := h.Ping(r.Context()); err != nil {
			writeOK(w, http.StatusServiceUnavailable, "storage unavailable", nil)
			return
		}
	}
	writeOK(w, http.StatusOK, "ok", map[string]string{"status": "up"})
}
