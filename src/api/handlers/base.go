package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"backoffice/src/api/controllers"
	"backoffice/src/menu"
	"backoffice/src/schemas"
	"backoffice/src/sessions"
	"backoffice/src/utils"
	"backoffice/src/utils/render"

	"github.com/go-chi/chi/v5"
)

const invalidInputMessage = "Please correct the highlighted fields."

type Handler struct {
	Tenants  controllers.TenantSource
	Auth     controllers.AuthControllerI
	Sessions *sessions.Manager
	Renderer *render.Renderer
	Menu     []menu.Item
	Timeout  time.Duration
}

func NewHandler(tenants controllers.TenantSource, manager *sessions.Manager, renderer *render.Renderer, items []menu.Item, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	h := &Handler{
		Tenants:  tenants,
		Auth:     controllers.NewAuthController(tenants),
		Sessions: manager,
		Renderer: renderer,
		Menu:     items,
		Timeout:  timeout,
	}
	manager.Forbidden = http.HandlerFunc(h.Forbidden)
	return h
}

func (h *Handler) context(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.Timeout)
}

// controller returns the controller bound to the database of the customer
// the request is logged in to.
func (h *Handler) controller(ctx context.Context) (*controllers.Controller, *sessions.Session, error) {
	sess := sessions.FromContext(ctx)
	if sess == nil {
		return nil, nil, utils.Unauthorized("Your session has expired. Please log in again.")
	}
	caller, err := h.Tenants.Caller(ctx, sess.Customer)
	if err != nil {
		return nil, nil, err
	}
	return controllers.NewController(caller), sess, nil
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

// classify maps an error to the status and the message shown to the user.
// Errors without a user facing message are logged and reported generically.
func classify(r *http.Request, err error) (int, string) {
	var httpErr *utils.HTTPError
	var verr *schemas.ValidationError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		utils.LoggerFromContext(r.Context()).WithError(err).Warn("request timed out")
		return http.StatusGatewayTimeout, "Request timed out"
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity, invalidInputMessage
	case errors.As(err, &httpErr):
		return httpErr.Code, httpErr.Message
	}
	utils.LoggerFromContext(r.Context()).WithError(err).Error("request failed")
	return http.StatusInternalServerError, utils.GenericFailureMessage
}

// HandleErrors answers a JSON request that failed.
func (h *Handler) HandleErrors(w http.ResponseWriter, r *http.Request, err error) {
	status, message := classify(r, err)
	result := schemas.JSONResult{Success: false, Message: message}
	var verr *schemas.ValidationError
	if errors.As(err, &verr) {
		result.Errors = verr.Fields
	}
	h.respond(w, r, result, status)
}

// page builds the layout data for the current request: the menu filtered by
// the user's permissions and the breadcrumbs of the current path.
func (h *Handler) page(r *http.Request, title string) *render.Page {
	p := &render.Page{Title: title, CurrentPath: r.URL.Path}
	sess := sessions.FromContext(r.Context())
	if sess == nil {
		return p
	}
	visible := menu.Filter(h.Menu, sess.PermissionSet())
	p.User = sess.DisplayName
	if p.User == "" {
		p.User = sess.UserName
	}
	p.Customer = sess.Customer
	p.Menu = menu.Active(visible, r.URL.Path)
	p.Crumbs = menu.Breadcrumbs(visible, r.URL.Path)
	return p
}

func (h *Handler) html(w http.ResponseWriter, r *http.Request, status int, name string, p *render.Page) {
	if err := h.Renderer.HTML(w, status, name, p); err != nil {
		utils.LoggerFromContext(r.Context()).WithError(err).WithField("template", name).Error("rendering page")
		http.Error(w, utils.GenericFailureMessage, http.StatusInternalServerError)
	}
}

// fail answers a failed request in the format the client asked for.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if utils.WantsJSON(r) {
		h.HandleErrors(w, r, err)
		return
	}
	status, message := classify(r, err)
	if status == http.StatusUnauthorized {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	h.html(w, r, status, "error", h.page(r, message))
}

func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	h.html(w, r, http.StatusForbidden, "error", h.page(r, "You are not allowed to use this screen."))
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.fail(w, r, utils.NotFound("Page not found"))
}

func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, utils.BadRequest("Invalid " + name)
	}
	return id, nil
}

// sessionUser is the user name recorded by the procedures as the author of
// a change.
func sessionUser(r *http.Request) string {
	if sess := sessions.FromContext(r.Context()); sess != nil {
		return sess.UserName
	}
	return ""
}

func can(r *http.Request, perm string) bool {
	sess := sessions.FromContext(r.Context())
	return sess != nil && sess.Can(perm)
}
