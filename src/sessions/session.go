// Package sessions keeps who is logged in. The browser holds a signed JWT
// cookie that only carries the session id and customer code; the session
// body lives in a Store.
package sessions

import (
	"context"
	"errors"
	"strings"
	"time"

	"backoffice/src/menu"
)

var ErrSessionNotFound = errors.New("session not found")

type Session struct {
	ID          string    `json:"id"`
	Customer    string    `json:"customer"`
	UserID      int64     `json:"userId"`
	UserName    string    `json:"userName"`
	DisplayName string    `json:"displayName"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Can reports whether the user holds perm. Permission codes compare case
// insensitively.
func (s *Session) Can(perm string) bool {
	for _, p := range s.Permissions {
		if strings.EqualFold(strings.TrimSpace(p), perm) {
			return true
		}
	}
	return false
}

func (s *Session) PermissionSet() menu.PermissionSet {
	return menu.NewPermissionSet(s.Permissions)
}

type contextKey string

const sessionKey = contextKey("session")

func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// FromContext returns the session of the request, or nil when the request
// is anonymous.
func FromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(sessionKey).(*Session)
	return sess
}
