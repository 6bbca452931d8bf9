package sessions_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backoffice/src/config"
	"backoffice/src/sessions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(store sessions.Store) *sessions.Manager {
	return sessions.NewManager(config.AuthConfig{
		JWTSecret:  "testing-secret",
		CookieName: "tms_session",
		SessionTTL: time.Hour,
	}, false, store)
}

func issue(t *testing.T, m *sessions.Manager, perms ...string) (*http.Cookie, *sessions.Session) {
	recorder := httptest.NewRecorder()
	sess := &sessions.Session{Customer: "ACME", UserID: 7, UserName: "jdoe", DisplayName: "John Doe", Permissions: perms}
	token, err := m.Issue(context.Background(), recorder, sess)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, sess.ID)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, token, cookies[0].Value)
	return cookies[0], sess
}

func echoSession() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := sessions.FromContext(r.Context())
		w.Write([]byte(sess.Customer + "/" + sess.UserName))
	})
}

func TestSessionCan(t *testing.T) {
	sess := &sessions.Session{Permissions: []string{"driver_view", "TEAM_EDIT "}}
	assert.True(t, sess.Can("DRIVER_VIEW"))
	assert.True(t, sess.Can("TEAM_EDIT"))
	assert.False(t, sess.Can("AGENT_VIEW"))
	assert.True(t, sess.PermissionSet().Has("team_edit"))
}

func TestAuthenticate(t *testing.T) {
	store := sessions.NewMemoryStore()
	m := newManager(store)
	cookie, sess := issue(t, m, "DRIVER_VIEW")
	handler := m.Authenticate(echoSession())

	t.Run("valid cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/drivers", nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ACME/jdoe", rec.Body.String())
	})

	t.Run("bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
		req.Header.Set("Authorization", "Bearer "+cookie.Value)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("anonymous page redirects to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/drivers/12", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login?next=%2Fdrivers%2F12", rec.Header().Get("Location"))
	})

	t.Run("anonymous json gets 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/drivers/data", nil)
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	})

	t.Run("tampered token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "tms_session", Value: cookie.Value + "x"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := sessions.NewManager(config.AuthConfig{JWTSecret: "other", CookieName: "tms_session", SessionTTL: time.Hour}, false, store)
		foreign, _ := issue(t, other)
		req := httptest.NewRequest(http.MethodGet, "/drivers", nil)
		req.AddCookie(foreign)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})

	t.Run("session removed from the store", func(t *testing.T) {
		require.NoError(t, store.Delete(context.Background(), sess.ID))
		req := httptest.NewRequest(http.MethodGet, "/drivers", nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})
}

func TestRequirePermission(t *testing.T) {
	m := newManager(sessions.NewMemoryStore())
	cookie, _ := issue(t, m, "DRIVER_VIEW")

	guarded := func(perm string) http.Handler {
		return m.Authenticate(m.RequirePermission(perm)(echoSession()))
	}

	req := httptest.NewRequest(http.MethodGet, "/drivers", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	guarded("DRIVER_VIEW").ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/agents", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	guarded("AGENT_VIEW").ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	m.Forbidden = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("forbidden page"))
	})
	req = httptest.NewRequest(http.MethodGet, "/agents", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	guarded("AGENT_VIEW").ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "forbidden page", rec.Body.String())
}

func TestClear(t *testing.T) {
	store := sessions.NewMemoryStore()
	m := newManager(store)
	_, sess := issue(t, m)

	rec := httptest.NewRecorder()
	ctx := sessions.WithSession(context.Background(), sess)
	require.NoError(t, m.Clear(ctx, rec))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)

	_, err := store.Load(context.Background(), sess.ID)
	assert.ErrorIs(t, err, sessions.ErrSessionNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := sessions.NewMemoryStore()
	sess := &sessions.Session{ID: "abc", UserName: "jdoe"}
	require.NoError(t, store.Save(context.Background(), sess, 20*time.Millisecond))

	loaded, err := store.Load(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "jdoe", loaded.UserName)

	time.Sleep(40 * time.Millisecond)
	_, err = store.Load(context.Background(), "abc")
	assert.ErrorIs(t, err, sessions.ErrSessionNotFound)
}
