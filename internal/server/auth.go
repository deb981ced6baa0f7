package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/cradlecare/cradle/internal/auth"
	"github.com/cradlecare/cradle/internal/model"
)

type loginData struct {
	pageData
	Email  string
	Role   string
	Errors auth.FieldErrors
}

type registerData struct {
	pageData
	FullName string
	Email    string
	Role     string
	Errors   auth.FieldErrors

	StrengthScore int
	StrengthLabel string
}

func (s *Server) landing(w http.ResponseWriter, r *http.Request) {
	user, _ := s.sessions.Get(r.Context())
	s.render(w, "landing.html", pageData{
		Title: "Cradle",
		Flash: s.sessions.PopFlash(r.Context()),
		User:  user,
	})
}

func (s *Server) privacy(w http.ResponseWriter, _ *http.Request) {
	s.render(w, "privacy.html", pageData{Title: "Privacy Notice"})
}

func (s *Server) loginPage(w http.ResponseWriter, r *http.Request) {
	// an already authenticated visitor goes straight to their dashboard
	if user, err := s.sessions.Get(r.Context()); err == nil {
		http.Redirect(w, r, dashboardPath(user.Role), http.StatusSeeOther)
		return
	}

	s.render(w, "login.html", loginData{
		pageData: pageData{Title: "Login", Flash: s.sessions.PopFlash(r.Context())},
		Role:     string(model.RoleParent),
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	form := auth.LoginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
		Role:     model.Role(r.PostFormValue("role")),
	}

	if errs := form.Validate(); !errs.OK() {
		s.render(w, "login.html", loginData{
			pageData: pageData{Title: "Login"},
			Email:    form.Email,
			Role:     string(form.Role),
			Errors:   errs,
		})
		return
	}

	// simulated submission latency, part of the device-less demo feel
	time.Sleep(s.config.Auth.LoginDelay)

	if err := s.sessions.SetAuthenticated(r.Context(), form.Email, form.Role); err != nil {
		s.log.Error("failed writing session", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.sessions.PutFlash(r.Context(), "Logged in!")
	http.Redirect(w, r, dashboardPath(form.Role), http.StatusSeeOther)
}

func (s *Server) registerPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, "register.html", registerData{
		pageData:      pageData{Title: "Create your account", Flash: s.sessions.PopFlash(r.Context())},
		Role:          string(model.RoleParent),
		StrengthLabel: auth.StrengthLabel(0),
	})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	form := auth.RegisterForm{
		FullName: r.PostFormValue("fullName"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
		Confirm:  r.PostFormValue("confirm"),
		Role:     model.Role(r.PostFormValue("role")),
	}

	score := auth.Strength(form.Password)

	if errs := form.Validate(); !errs.OK() {
		s.render(w, "register.html", registerData{
			pageData:      pageData{Title: "Create your account"},
			FullName:      form.FullName,
			Email:         form.Email,
			Role:          string(form.Role),
			Errors:        errs,
			StrengthScore: score,
			StrengthLabel: auth.StrengthLabel(score),
		})
		return
	}

	time.Sleep(s.config.Auth.RegisterDelay)

	err := s.repo.AddUser(r.Context(), model.RegisteredUser{
		FullName: form.FullName,
		Email:    form.Email,
		Role:     form.Role,
	})
	if err != nil {
		s.log.Error("failed storing registered user", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.sessions.PutFlash(r.Context(), "Registered! Please login.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Clear(r.Context()); err != nil {
		s.log.Warn("failed clearing session", zap.Error(err))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func dashboardPath(role model.Role) string {
	return "/dashboard/" + string(role)
}
