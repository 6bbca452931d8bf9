package api

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"backoffice/src/metrics"
	"backoffice/src/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// RequestLogger puts a request scoped entry on the context and logs every
// request once it is done.
func RequestLogger(logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			entry := logrus.NewEntry(logger).WithFields(logrus.Fields{
				"request_id": middleware.GetReqID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
			})
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			ctx := utils.WithLogger(r.Context(), entry)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := logrus.Fields{
				"status":   status,
				"bytes":    ww.BytesWritten(),
				"duration": time.Since(start).String(),
			}
			if status >= http.StatusInternalServerError {
				utils.LoggerFromContext(ctx).WithFields(fields).Warn("request served")
			} else {
				utils.LoggerFromContext(ctx).WithFields(fields).Info("request served")
			}
		})
	}
}

// Metrics records the request count and latency by route pattern, so ids
// in the path do not explode the label set.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.RecordHTTPRequest(r.Method, route, strconv.Itoa(status), time.Since(start))
	})
}

type peerAddrKey struct{}

// PeerAddr keeps the socket address of the connection on the context. It
// must run before middleware.RealIP, which rewrites RemoteAddr from
// headers the client controls.
func PeerAddr(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), peerAddrKey{}, r.RemoteAddr)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// peerHost is the host of the connection as seen by PeerAddr, or of
// RemoteAddr when PeerAddr did not run.
func peerHost(r *http.Request) string {
	addr, ok := r.Context().Value(peerAddrKey{}).(string)
	if !ok {
		addr = r.RemoteAddr
	}
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

// LoginLimiter throttles login attempts per connecting address. Forwarded
// headers are ignored.
type LoginLimiter struct {
	mutex    sync.Mutex
	limiters map[string]*clientLimiter
	rate     rate.Limit
	burst    int
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewLoginLimiter(perMinute, burst int) *LoginLimiter {
	if perMinute <= 0 {
		perMinute = 10
	}
	if burst <= 0 {
		burst = 1
	}
	return &LoginLimiter{
		limiters: make(map[string]*clientLimiter),
		rate:     rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
	}
}

func (l *LoginLimiter) allow(key string) bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	client, ok := l.limiters[key]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[key] = client
	}
	client.lastSeen = time.Now()
	return client.limiter.Allow()
}

// Cleanup forgets clients not seen for maxIdle and returns how many were
// dropped.
func (l *LoginLimiter) Cleanup(maxIdle time.Duration) int {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	removed := 0
	for key, client := range l.limiters {
		if time.Since(client.lastSeen) > maxIdle {
			delete(l.limiters, key)
			removed++
		}
	}
	return removed
}

func (l *LoginLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := peerHost(r)
		if !l.allow(key) {
			utils.LoggerFromContext(r.Context()).WithField("client", key).Warn("login rate limit exceeded")
			if utils.WantsJSON(r) {
				utils.WriteError(w, utils.TooManyRequests("Too many login attempts. Please wait a minute."))
				return
			}
			http.Error(w, "Too many login attempts. Please wait a minute.", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CORS lets the listed origins call the JSON API with the session cookie or
// a bearer token. With no origins configured it lets every request through
// untouched.
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
