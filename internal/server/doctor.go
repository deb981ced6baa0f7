package server

import (
	"net/http"
	"strconv"

	"github.com/cradlecare/cradle/internal/exam"
	"github.com/cradlecare/cradle/internal/model"
	"github.com/cradlecare/cradle/internal/patients"
)

type doctorData struct {
	pageData
	Query    string
	SortKey  string
	Patients []model.Patient

	ExamState     exam.State
	Questionnaire model.Questionnaire
	HasRecording  bool
}

// workingList returns the doctor's current full patient order: the
// manual override when one is stored, otherwise the last chosen sort
// (risk-descending by default).
func (s *Server) workingList(r *http.Request) []model.Patient {
	list := s.roster.Patients()

	order, ok := s.sessions.PatientOrder(r.Context())
	if !ok {
		key := patients.SortByRisk
		if stored, found := s.sessions.SortKey(r.Context()); found {
			if parsed, valid := patients.ParseSortKey(stored); valid {
				key = parsed
			}
		}
		patients.Sort(list, key)
		return list
	}

	byID := make(map[int]model.Patient, len(list))
	for _, p := range list {
		byID[p.ID] = p
	}

	out := make([]model.Patient, 0, len(list))
	for _, id := range order {
		if p, found := byID[id]; found {
			out = append(out, p)
			delete(byID, id)
		}
	}
	// roster entries the stored order has never seen go last
	for _, p := range list {
		if _, left := byID[p.ID]; left {
			out = append(out, p)
		}
	}
	return out
}

func patientIDs(list []model.Patient) []int {
	ids := make([]int, len(list))
	for i, p := range list {
		ids[i] = p.ID
	}
	return ids
}

func (s *Server) doctorDashboard(w http.ResponseWriter, r *http.Request) {
	// an explicit sort recompute discards any manual order
	if key, ok := patients.ParseSortKey(r.URL.Query().Get("sort")); ok {
		s.sessions.PutSortKey(r.Context(), string(key))
		s.sessions.ClearPatientOrder(r.Context())
	}
	list := s.workingList(r)

	query := r.URL.Query().Get("q")
	list = patients.Filter(list, query)

	e := s.sessions.Exam(r.Context())
	s.exams.Refresh(e)
	s.sessions.PutExam(r.Context(), e)

	sortShown, _ := s.sessions.SortKey(r.Context())

	user, _ := s.sessions.Get(r.Context())
	s.render(w, "doctor.html", doctorData{
		pageData: pageData{
			Title: "Doctor Dashboard",
			Flash: s.sessions.PopFlash(r.Context()),
			User:  user,
		},
		Query:         query,
		SortKey:       sortShown,
		Patients:      list,
		ExamState:     e.State,
		Questionnaire: e.Questionnaire,
		HasRecording:  e.Recording != nil,
	})
}

// reorderPatients applies a drag-and-drop move to the working order.
// The new order persists until the next sort recompute.
func (s *Server) reorderPatients(w http.ResponseWriter, r *http.Request) {
	from, errFrom := strconv.Atoi(r.PostFormValue("from"))
	to, errTo := strconv.Atoi(r.PostFormValue("to"))
	if errFrom != nil || errTo != nil {
		http.Redirect(w, r, "/dashboard/doctor", http.StatusSeeOther)
		return
	}

	list, err := patients.Reorder(s.workingList(r), from, to)
	if err != nil {
		// out-of-range drops degrade to a plain redirect, no mutation
		http.Redirect(w, r, "/dashboard/doctor", http.StatusSeeOther)
		return
	}

	s.sessions.PutPatientOrder(r.Context(), patientIDs(list))
	http.Redirect(w, r, "/dashboard/doctor", http.StatusSeeOther)
}
