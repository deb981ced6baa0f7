package server

import (
	"net/http"

	"github.com/cradlecare/cradle/internal/model"
)

const parentCardSeriesLen = 60

type childCard struct {
	model.Patient
	Series []float64
}

type parentData struct {
	pageData
	Children []childCard
}

// parentDashboard is read-only: a card per child with a fresh synthetic
// series and a recommendation line.
func (s *Server) parentDashboard(w http.ResponseWriter, r *http.Request) {
	children := s.roster.Children()

	cards := make([]childCard, len(children))
	for i, c := range children {
		cards[i] = childCard{
			Patient: c,
			Series:  s.gen.DecibelSeries(parentCardSeriesLen),
		}
	}

	user, _ := s.sessions.Get(r.Context())
	s.render(w, "parent.html", parentData{
		pageData: pageData{
			Title: "Parent Dashboard",
			Flash: s.sessions.PopFlash(r.Context()),
			User:  user,
		},
		Children: cards,
	})
}
