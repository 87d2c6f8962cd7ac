package handlers

import (
	"net/http"

	"github.com/dmitrijs2005/portfolio/internal/models"
	"github.com/dmitrijs2005/portfolio/internal/server/http/apierrors"
)

func (h *Handlers) SendContactMessage(w http.ResponseWriter, r *http.Request) {
	var in models.ContactMessageRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	m, err := h.Contact.Send(r.Context(), in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, "message sent", m)
}

func (h *Handlers) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	items, err := h.Contact.List(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, "ok", items)
}

func (h *Handlers) DeleteContactMessage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.Contact.Delete(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, "deleted", nil)
}

func (h *Handlers) MarkContactMessageRead(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.Contact.MarkRead(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, "marked as read", nil)
}
