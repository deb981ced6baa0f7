// Package server wires every route of the demo: the public marketing
// pages, the mock auth flow, and the two role-scoped dashboards.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/cradlecare/cradle/internal/config"
	"github.com/cradlecare/cradle/internal/exam"
	"github.com/cradlecare/cradle/internal/middleware"
	"github.com/cradlecare/cradle/internal/model"
	"github.com/cradlecare/cradle/internal/repository"
	"github.com/cradlecare/cradle/internal/roster"
	"github.com/cradlecare/cradle/internal/session"
	"github.com/cradlecare/cradle/internal/template"
)

type Server struct {
	log      *zap.Logger
	config   *config.Config
	sessions *session.Manager
	repo     repository.Repository
	roster   *roster.Provider
	exams    *exam.Service
	gen      *roster.Generator
	renderer *template.Renderer

	server *http.Server
}

type Params struct {
	fx.In

	Log      *zap.Logger
	Config   *config.Config
	Sessions *session.Manager
	Repo     repository.Repository
	Roster   *roster.Provider
	Exams    *exam.Service
	Gen      *roster.Generator
}

func New(p Params) (*Server, error) {
	s := &Server{
		log:      p.Log,
		config:   p.Config,
		sessions: p.Sessions,
		repo:     p.Repo,
		roster:   p.Roster,
		exams:    p.Exams,
		gen:      p.Gen,
		renderer: template.NewRenderer(p.Config.Server.TemplateDir),
	}

	s.server = &http.Server{
		Addr:    fmt.Sprintf("localhost:%d", p.Config.Server.Port),
		Handler: s.Router(),
	}

	return s, nil
}

// Router builds the full navigation surface: landing, login, register,
// privacy, not-found, the two dashboards, and patient detail.
func (s *Server) Router() http.Handler {
	root := chi.NewRouter()
	root.Use(s.sessions.Wrap)

	// public
	root.Group(func(r chi.Router) {
		r.Get("/", s.landing)
		r.Get("/privacy", s.privacy)
		r.Get("/login", s.loginPage)
		r.Post("/login", s.login)
		r.Get("/register", s.registerPage)
		r.Post("/register", s.register)
		r.Post("/logout", s.logout)
	})

	// doctor only
	root.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(s.sessions, model.RoleDoctor))
		r.Get("/dashboard/doctor", s.doctorDashboard)
		r.Post("/dashboard/doctor/reorder", s.reorderPatients)

		r.Route("/dashboard/doctor/exam", func(r chi.Router) {
			r.Post("/connect", s.examConnect)
			r.Get("/status", s.examStatus)
			r.Post("/record", s.examRecord)
			r.Post("/questionnaire", s.examQuestionnaire)
			r.Get("/report", s.examReport)
		})

		r.Post("/dashboard/patient/{id}/notes", s.patientNotes)
	})

	// parent only
	root.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(s.sessions, model.RoleParent))
		r.Get("/dashboard/parent", s.parentDashboard)
	})

	// any authenticated session
	root.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(s.sessions))
		r.Get("/dashboard/patient/{id}", s.patientDetail)
		r.Post("/dashboard/patient/{id}/share", s.patientShare)
	})

	root.NotFound(s.notFound)

	return root
}

func RegisterHooks(lc fx.Lifecycle, s *Server) {
	lc.Append(fx.Hook{
		OnStart: s.Start,
		OnStop:  s.server.Shutdown,
	})
}

func (s *Server) Start(_ context.Context) error {
	go func() {
		err := s.server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			s.log.Error("error starting server", zap.Error(err))
		}
	}()
	return nil
}

func (s *Server) render(w http.ResponseWriter, tmpl string, data any) {
	if err := s.renderer.Render(w, tmpl, data); err != nil {
		s.log.Error("failed rendering template", zap.String("template", tmpl), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("failed encoding response", zap.Error(err))
	}
}

func (s *Server) notFound(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	s.render(w, "notfound.html", pageData{Title: "Not Found"})
}

// pageData carries what every page template needs.
type pageData struct {
	Title string
	Flash string
	User  *model.Session
}
