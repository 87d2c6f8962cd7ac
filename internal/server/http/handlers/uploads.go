package handlers

import (
	"net/http"

	"github.com/dmitrijs2005/portfolio/internal/models"
	"github.com/dmitrijs2005/portfolio/internal/server/http/apierrors"
)

func (h *Handlers) PresignUpload(w http.ResponseWriter, r *http.Request) {
	var in models.UploadRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	ticket, err := h.Uploads.Presign(r.Context(), in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, "ok", ticket)
}
