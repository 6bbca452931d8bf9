package handlers

import (
	"net/http"

	"backoffice/src/menu"
	"backoffice/src/schemas"
	"backoffice/src/sessions"
)

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.html(w, r, http.StatusOK, "home", h.page(r, "Home"))
}

// GetMenu returns the menu tree the user may see. With ?path= the nodes
// leading to that page are flagged active.
func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	sess := sessions.FromContext(r.Context())
	items := menu.Filter(h.Menu, sess.PermissionSet())
	if path := r.URL.Query().Get("path"); path != "" {
		items = menu.Active(items, path)
	}
	if items == nil {
		items = []menu.Item{}
	}
	h.respond(w, r, schemas.JSONResult{Success: true, Data: items}, http.StatusOK)
}

func (h *Handler) GetBreadcrumbs(w http.ResponseWriter, r *http.Request) {
	sess := sessions.FromContext(r.Context())
	path := r.URL.Query().Get("path")
	if path == "" {
		path = "/"
	}
	crumbs := menu.Breadcrumbs(menu.Filter(h.Menu, sess.PermissionSet()), path)
	h.respond(w, r, schemas.JSONResult{Success: true, Data: crumbs}, http.StatusOK)
}
