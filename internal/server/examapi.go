package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cradlecare/cradle/internal/exam"
	"github.com/cradlecare/cradle/internal/model"
	"github.com/cradlecare/cradle/internal/risk"
)

// examStatusResponse is what the exam dialog polls while the device
// "connects" and after a recording lands.
type examStatusResponse struct {
	State         exam.State          `json:"state"`
	Questionnaire model.Questionnaire `json:"questionnaire"`
	Recording     *recordingResponse  `json:"recording,omitempty"`
}

type recordingResponse struct {
	ID       string        `json:"id"`
	Risk     int           `json:"risk"`
	Category risk.Category `json:"category"`
	Series   []float64     `json:"series"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func statusOf(e *exam.Exam) examStatusResponse {
	resp := examStatusResponse{
		State:         e.State,
		Questionnaire: e.Questionnaire,
	}
	if e.Recording != nil {
		resp.Recording = &recordingResponse{
			ID:       e.Recording.ID,
			Risk:     e.Recording.Risk,
			Category: risk.Classify(e.Recording.Risk),
			Series:   e.Recording.Series,
		}
	}
	return resp
}

func (s *Server) examConnect(w http.ResponseWriter, r *http.Request) {
	e := s.sessions.Exam(r.Context())
	s.exams.Connect(e)
	s.sessions.PutExam(r.Context(), e)

	s.respondJSON(w, http.StatusOK, statusOf(e))
}

func (s *Server) examStatus(w http.ResponseWriter, r *http.Request) {
	e := s.sessions.Exam(r.Context())
	s.exams.Refresh(e)
	s.sessions.PutExam(r.Context(), e)

	s.respondJSON(w, http.StatusOK, statusOf(e))
}

func (s *Server) examRecord(w http.ResponseWriter, r *http.Request) {
	e := s.sessions.Exam(r.Context())

	if err := s.exams.Record(e); err != nil {
		if errors.Is(err, exam.ErrNotConnected) {
			s.respondJSON(w, http.StatusConflict, errorResponse{Error: "Connect device first"})
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.sessions.PutExam(r.Context(), e)
	s.sessions.PutFlash(r.Context(), "Recording complete")
	s.respondJSON(w, http.StatusOK, statusOf(e))
}

// examQuestionnaire stores the advisory metadata. It is independent of
// the connection state and may be edited at any time.
func (s *Server) examQuestionnaire(w http.ResponseWriter, r *http.Request) {
	var q model.Questionnaire
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid questionnaire"})
		return
	}

	e := s.sessions.Exam(r.Context())
	e.Questionnaire = q
	s.sessions.PutExam(r.Context(), e)

	s.respondJSON(w, http.StatusOK, statusOf(e))
}

// examReport is the mock "download report" action: terminal,
// side-effect-only, available once a recording exists.
func (s *Server) examReport(w http.ResponseWriter, r *http.Request) {
	e := s.sessions.Exam(r.Context())

	rec, err := s.exams.Report(e)
	if err != nil {
		s.respondJSON(w, http.StatusConflict, errorResponse{Error: "No recording yet"})
		return
	}

	report := struct {
		ID            string              `json:"id"`
		GeneratedAt   string              `json:"generatedAt"`
		Risk          int                 `json:"risk"`
		Category      risk.Category       `json:"category"`
		Series        []float64           `json:"series"`
		Questionnaire model.Questionnaire `json:"questionnaire"`
	}{
		ID:            rec.ID,
		GeneratedAt:   time.Now().Format(time.RFC3339),
		Risk:          rec.Risk,
		Category:      risk.Classify(rec.Risk),
		Series:        rec.Series,
		Questionnaire: e.Questionnaire,
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=cradle-report-%s.json", rec.ID))
	s.respondJSON(w, http.StatusOK, report)
}
