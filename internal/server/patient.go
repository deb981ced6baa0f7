package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cradlecare/cradle/internal/model"
	"github.com/cradlecare/cradle/internal/roster"
)

type patientData struct {
	pageData
	Patient  model.Patient
	Series   []float64
	History  []model.Exam
	IsDoctor bool
}

// patientDetail resolves one record by id. Unknown or malformed ids
// redirect to the doctor dashboard: a read-only view must never render
// a non-existent subject.
func (s *Server) patientDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/dashboard/doctor", http.StatusSeeOther)
		return
	}

	patient, err := s.roster.PatientByID(id)
	if err != nil {
		http.Redirect(w, r, "/dashboard/doctor", http.StatusSeeOther)
		return
	}

	user, _ := s.sessions.Get(r.Context())

	s.render(w, "patient.html", patientData{
		pageData: pageData{
			Title: patient.Name,
			Flash: s.sessions.PopFlash(r.Context()),
			User:  user,
		},
		Patient: *patient,
		Series:  s.gen.DecibelSeries(roster.DefaultSeriesLen),
		History: s.gen.ExamHistory(roster.HistoryLen, time.Now()),
		// the notes form is doctor-only and must never render for a
		// parent session
		IsDoctor: user != nil && user.Role == model.RoleDoctor,
	})
}

// patientNotes accepts the doctor's additional notes. Write-only mock:
// acknowledged and discarded.
func (s *Server) patientNotes(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if notes := r.PostFormValue("notes"); notes != "" {
		s.sessions.PutFlash(r.Context(), "Note saved (mock)")
	}

	http.Redirect(w, r, "/dashboard/patient/"+id, http.StatusSeeOther)
}

// patientShare simulates generating a share link.
func (s *Server) patientShare(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.sessions.PutFlash(r.Context(), "Secure share link generated (mock)")
	http.Redirect(w, r, "/dashboard/patient/"+id, http.StatusSeeOther)
}
