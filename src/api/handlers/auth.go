package handlers

import (
	"net/http"
	"strings"

	"backoffice/src/schemas"
	"backoffice/src/sessions"
	"backoffice/src/utils"
	"backoffice/src/utils/render"
)

func loginFields(form *schemas.LoginForm) []schemas.FormField {
	return []schemas.FormField{
		{Name: "customer", Label: "Customer", Type: "text", Value: form.Customer, Required: true},
		{Name: "username", Label: "User name", Type: "text", Value: form.UserName, Required: true},
		{Name: "password", Label: "Password", Type: "password", Required: true},
	}
}

func passwordFields() []schemas.FormField {
	return []schemas.FormField{
		{Name: "current", Label: "Current password", Type: "password", Required: true},
		{Name: "new", Label: "New password", Type: "password", Required: true},
		{Name: "confirm", Label: "Confirm new password", Type: "password", Required: true},
	}
}

// safeNext only lets the login page send users back to a local path.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	p := h.page(r, "Log in")
	p.Data = render.LoginView{Next: safeNext(r.URL.Query().Get("next")), Fields: loginFields(&schemas.LoginForm{})}
	h.html(w, r, http.StatusOK, "login", p)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	if err := r.ParseForm(); err != nil {
		h.fail(w, r, utils.BadRequest("Invalid form"))
		return
	}
	var form schemas.LoginForm
	var sess *sessions.Session
	var token string
	err := form.Bind(r.PostForm)
	if err == nil {
		sess, err = h.Auth.Login(ctx, &form)
	}
	if err == nil {
		token, err = h.Sessions.Issue(ctx, w, sess)
	}

	if utils.WantsJSON(r) {
		if err != nil {
			h.HandleErrors(w, r, err)
			return
		}
		h.respond(w, r, schemas.JSONResult{Success: true, Data: map[string]string{"token": token}}, http.StatusOK)
		return
	}
	if err == nil {
		http.Redirect(w, r, safeNext(r.PostForm.Get("next")), http.StatusSeeOther)
		return
	}

	status, message := classify(r, err)
	p := h.page(r, "Log in")
	p.Error = message
	p.Data = render.LoginView{
		Next:   safeNext(r.PostForm.Get("next")),
		Fields: schemas.ApplyErrors(loginFields(&form), err),
	}
	h.html(w, r, status, "login", p)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	logger := utils.LoggerFromContext(ctx)
	if sess := sessions.FromContext(ctx); sess != nil {
		// the local session goes away even when the procedure fails
		if err := h.Auth.Logout(ctx, sess); err != nil {
			logger.WithError(err).Warn("logout procedure failed")
		}
	}
	if err := h.Sessions.Clear(ctx, w); err != nil {
		logger.WithError(err).Warn("clearing session")
	}
	if utils.WantsJSON(r) {
		h.respond(w, r, schemas.JSONResult{Success: true}, http.StatusOK)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) PasswordPage(w http.ResponseWriter, r *http.Request) {
	p := h.page(r, "Change password")
	p.Data = passwordFields()
	h.html(w, r, http.StatusOK, "password", p)
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	if err := r.ParseForm(); err != nil {
		h.fail(w, r, err)
		return
	}
	var form schemas.PasswordForm
	err := schemas.Parse(&form, r.PostForm)
	if err == nil {
		err = h.Auth.ChangePassword(ctx, sessions.FromContext(ctx), &form)
	}

	if utils.WantsJSON(r) {
		if err != nil {
			h.HandleErrors(w, r, err)
			return
		}
		h.respond(w, r, schemas.JSONResult{Success: true, Message: "Password changed"}, http.StatusOK)
		return
	}

	p := h.page(r, "Change password")
	status := http.StatusOK
	if err != nil {
		status, p.Error = classify(r, err)
	} else {
		p.Flash = "Your password was changed."
	}
	p.Data = schemas.ApplyErrors(passwordFields(), err)
	h.html(w, r, status, "password", p)
}
