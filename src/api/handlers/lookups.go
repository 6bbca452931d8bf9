package handlers

import (
	"net/http"

	"backoffice/src/schemas"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetLookup(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	c, _, err := h.controller(ctx)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}
	items, err := c.Lookup(ctx, chi.URLParam(r, "name"))
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}
	h.respond(w, r, schemas.JSONResult{Success: true, Data: items}, http.StatusOK)
}
