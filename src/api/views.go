package api

import (
	"net/http"
	"time"

	"backoffice/src/api/handlers"
	"backoffice/src/config"
	"backoffice/src/metrics"
	"backoffice/src/sessions"
	"backoffice/src/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router   *chi.Mux
	Handler  *handlers.Handler
	Sessions *sessions.Manager
	Limiter  *LoginLimiter
	Logger   *logrus.Logger
	Origins  []string
}

func NewServer(handler *handlers.Handler, limiter *LoginLimiter, origins []string, logger *logrus.Logger) *Server {
	server := &Server{
		Router:   chi.NewRouter(),
		Handler:  handler,
		Sessions: handler.Sessions,
		Limiter:  limiter,
		Logger:   logger,
		Origins:  origins,
	}
	server.InitRoutes()
	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Use(PeerAddr)
	s.Router.Use(middleware.RequestID)
	s.Router.Use(middleware.RealIP)
	s.Router.Use(RequestLogger(s.Logger))
	s.Router.Use(Metrics)
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(CORS(s.Origins))
	s.Router.NotFound(s.Handler.NotFound)

	s.Router.Get("/alive", handlers.Healthcheck)
	s.Router.Method(http.MethodGet, "/metrics", metrics.Handler())

	s.Router.Get("/login", s.Handler.LoginPage)
	s.Router.With(s.Limiter.Handler).Post("/login", s.Handler.Login)

	s.Router.Group(func(r chi.Router) {
		r.Use(s.Sessions.Authenticate)

		r.Get("/", s.Handler.Home)
		r.Post("/logout", s.Handler.Logout)
		r.Get("/account/password", s.Handler.PasswordPage)
		r.Post("/account/password", s.Handler.ChangePassword)

		r.Get("/api/menu", s.Handler.GetMenu)
		r.Get("/api/breadcrumbs", s.Handler.GetBreadcrumbs)
		r.Get("/api/lookups/{name}", s.Handler.GetLookup)

		for _, m := range handlers.Maintenances {
			s.mountMaintenance(r, m)
		}
	})
}

// mountMaintenance registers the list, form, save and delete routes of one
// entity and its sub-records.
func (s *Server) mountMaintenance(r chi.Router, m *handlers.Maintenance) {
	view := s.Sessions.RequirePermission(m.ViewPerm)
	edit := s.Sessions.RequirePermission(m.EditPerm)

	r.Route(m.Path, func(r chi.Router) {
		r.With(view).Get("/", s.Handler.List(m))
		r.With(view).Get("/data", s.Handler.Data(m))
		r.With(edit).Get("/new", s.Handler.New(m))
		r.With(edit).Post("/save", s.Handler.Save(m))
		r.With(view).Get("/{id}", s.Handler.Edit(m))
		r.With(edit).Post("/{id}/delete", s.Handler.Delete(m))

		if m.SubRecords {
			for _, kind := range handlers.SubRecordKinds {
				r.With(view).Get("/{id}/"+kind, s.Handler.SubRecordList(m, kind))
				r.With(edit).Post("/{id}/"+kind, s.Handler.SubRecordSave(m, kind))
				r.With(edit).Post("/{id}/"+kind+"/{subID}/delete", s.Handler.SubRecordDelete(m, kind))
			}
		}

		switch m {
		case handlers.Drivers:
			r.With(s.Sessions.RequirePermission(utils.PermDriverExport)).Get("/export", s.Handler.ExportDrivers)
		case handlers.Teams:
			r.Route("/{id}/members", func(r chi.Router) {
				r.With(view).Get("/", s.Handler.TeamMembers)
				r.With(edit).Post("/", s.Handler.AddTeamMember)
				r.With(edit).Post("/{driverID}/delete", s.Handler.RemoveTeamMember)
			})
		}
	})
}

func NewHTTPServer(server *Server, cfg config.ServiceConfig) *http.Server {
	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
		Handler:           server,
	}
	return httpServer
}
