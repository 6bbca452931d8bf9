package sessions

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"backoffice/src/config"
	"backoffice/src/utils"

	"github.com/go-chi/jwtauth"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	claimSession  = "sid"
	claimCustomer = "cus"
)

type Manager struct {
	auth       *jwtauth.JWTAuth
	store      Store
	cookieName string
	ttl        time.Duration
	secure     bool

	// Forbidden answers HTML requests that lack a permission. JSON
	// requests always get a plain 403.
	Forbidden http.Handler
}

func NewManager(cfg config.AuthConfig, secureCookies bool, store Store) *Manager {
	return &Manager{
		auth:       jwtauth.New("HS256", []byte(cfg.JWTSecret), nil),
		store:      store,
		cookieName: cfg.CookieName,
		ttl:        cfg.SessionTTL,
		secure:     secureCookies,
	}
}

// Issue stores sess under a fresh id and sets the session cookie. The signed
// token is returned as well for API clients that send it as a bearer token.
func (m *Manager) Issue(ctx context.Context, w http.ResponseWriter, sess *Session) (string, error) {
	sess.ID = uuid.NewString()
	sess.CreatedAt = time.Now().UTC()
	if err := m.store.Save(ctx, sess, m.ttl); err != nil {
		return "", err
	}

	expires := sess.CreatedAt.Add(m.ttl)
	claims := map[string]interface{}{
		claimSession:  sess.ID,
		claimCustomer: sess.Customer,
	}
	jwtauth.SetIssuedNow(claims)
	jwtauth.SetExpiry(claims, expires)
	_, token, err := m.auth.Encode(claims)
	if err != nil {
		return "", err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return token, nil
}

// Clear removes the session of the request, if any, and expires the cookie.
func (m *Manager) Clear(ctx context.Context, w http.ResponseWriter) error {
	m.expireCookie(w)
	sess := FromContext(ctx)
	if sess == nil {
		return nil
	}
	return m.store.Delete(ctx, sess.ID)
}

func (m *Manager) expireCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) tokenFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Authenticate verifies the session token of the request and puts the
// session on the context. Anonymous HTML requests are redirected to the
// login page; JSON requests get a 401.
func (m *Manager) Authenticate(next http.Handler) http.Handler {
	verify := jwtauth.Verify(m.auth, m.tokenFromCookie, jwtauth.TokenFromHeader)
	return verify(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token, claims, err := jwtauth.FromContext(ctx)
		if err != nil || token == nil {
			m.unauthorized(w, r)
			return
		}
		id, _ := claims[claimSession].(string)
		sess, err := m.store.Load(ctx, id)
		if errors.Is(err, ErrSessionNotFound) {
			m.unauthorized(w, r)
			return
		}
		if err != nil {
			utils.LoggerFromContext(ctx).WithError(err).Error("loading session")
			utils.WriteError(w, err)
			return
		}

		entry := utils.LoggerFromContext(ctx).WithFields(logrus.Fields{
			"customer": sess.Customer,
			"user":     sess.UserName,
		})
		ctx = utils.WithLogger(WithSession(ctx, sess), entry)
		next.ServeHTTP(w, r.WithContext(ctx))
	}))
}

func (m *Manager) unauthorized(w http.ResponseWriter, r *http.Request) {
	m.expireCookie(w)
	if utils.WantsJSON(r) {
		utils.WriteError(w, utils.Unauthorized("Your session has expired. Please log in again."))
		return
	}
	target := "/login"
	if r.Method == http.MethodGet && r.URL.Path != "/" {
		target += "?next=" + url.QueryEscape(r.URL.RequestURI())
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// RequirePermission lets the request through only when the session holds
// perm.
func (m *Manager) RequirePermission(perm string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := FromContext(r.Context())
			if sess == nil {
				m.unauthorized(w, r)
				return
			}
			if !sess.Can(perm) {
				utils.LoggerFromContext(r.Context()).WithField("permission", perm).Warn("permission denied")
				if m.Forbidden != nil && !utils.WantsJSON(r) {
					m.Forbidden.ServeHTTP(w, r)
					return
				}
				utils.WriteError(w, utils.Forbidden("You are not allowed to use this screen."))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
