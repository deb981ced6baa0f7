package roster

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/cradlecare/cradle/internal/model"
)

const (
	// DefaultSeriesLen is the sample count of a full recording.
	DefaultSeriesLen = 100

	// HistoryLen is the number of prior exams synthesized for the
	// patient detail timeline, spaced exactly seven days apart.
	HistoryLen = 4

	historySeriesLen = 40
)

// Generator produces the synthetic decibel series and risk scores shown
// on the dashboards. It is seedable so tests can assert exact outputs
// instead of ranges. Safe for concurrent use.
type Generator struct {
	mu   sync.Mutex
	rand *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rand: rand.New(rand.NewSource(seed))}
}

// DecibelSeries returns n amplitude samples, each uniform in [20, 80).
func (g *Generator) DecibelSeries(n int) []float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	series := make([]float64, n)
	for i := range series {
		series[i] = g.rand.Float64()*60 + 20
	}
	return series
}

// RiskScore returns a uniformly random integer risk in [10, 100].
func (g *Generator) RiskScore() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return int(math.Round(10 + g.rand.Float64()*90))
}

// ExamHistory synthesizes n prior exams ending at now, one week apart,
// newest first, each with an independent risk score.
func (g *Generator) ExamHistory(n int, now time.Time) []model.Exam {
	history := make([]model.Exam, n)
	for i := range history {
		history[i] = model.Exam{
			Seq:    i + 1,
			Date:   now.AddDate(0, 0, -7*i).Format("2006-01-02"),
			Series: g.DecibelSeries(historySeriesLen),
			Risk:   g.RiskScore(),
		}
	}
	return history
}
