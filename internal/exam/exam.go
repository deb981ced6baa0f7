// Package exam drives the simulated device workflow on the doctor
// dashboard: connect, record, report. The connection goes through an
// explicit state machine rather than loose flags so that invalid
// transitions are rejected in one place.
package exam

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/cradlecare/cradle/internal/model"
)

type State string

const (
	Disconnected State = "disconnected"
	Connecting   State = "connecting"
	Connected    State = "connected"
	Recording    State = "recording"
	Recorded     State = "recorded"
)

var (
	// ErrNotConnected is surfaced to the user as "Connect device first".
	ErrNotConnected = errors.New("device not connected")

	ErrNoRecording = errors.New("no recording to report")
)

// Exam is one dashboard session's workflow state. It outlives the exam
// dialog: closing and reopening the dialog resumes from whatever state
// was last reached. The questionnaire is advisory metadata, editable in
// any state and never a precondition for recording.
type Exam struct {
	State         State
	ConnectedAt   time.Time // when Connecting promotes to Connected
	Recording     *model.Recording
	Questionnaire model.Questionnaire
}

func NewExam() *Exam {
	return &Exam{State: Disconnected}
}

type generator interface {
	DecibelSeries(n int) []float64
	RiskScore() int
}

// Service applies transitions to an Exam. The clock is injectable so
// tests can drive the simulated connection delay.
type Service struct {
	delay     time.Duration
	seriesLen int
	gen       generator
	now       func() time.Time
}

func NewService(delay time.Duration, gen generator) *Service {
	return &Service{
		delay:     delay,
		seriesLen: 100,
		gen:       gen,
		now:       time.Now,
	}
}

// Connect starts the simulated device handshake. It only acts from
// Disconnected; reconnecting an already connecting or connected device
// is a no-op.
func (s *Service) Connect(e *Exam) {
	if e.State != Disconnected {
		return
	}
	e.State = Connecting
	e.ConnectedAt = s.now().Add(s.delay)
}

// Refresh promotes Connecting to Connected once the simulated delay has
// elapsed. The handshake has no failure path: it always succeeds after
// the fixed delay.
func (s *Service) Refresh(e *Exam) {
	if e.State == Connecting && !s.now().Before(e.ConnectedAt) {
		e.State = Connected
	}
}

// Record generates a fresh decibel series and risk score, exactly once
// per invocation. It is rejected unless the device is connected; a
// recorded exam may be re-recorded without reconnecting.
func (s *Service) Record(e *Exam) error {
	s.Refresh(e)
	if e.State != Connected && e.State != Recorded {
		return ErrNotConnected
	}

	e.State = Recording
	e.Recording = &model.Recording{
		ID:     uuid.NewString(),
		Series: s.gen.DecibelSeries(s.seriesLen),
		Risk:   s.gen.RiskScore(),
	}
	e.State = Recorded
	return nil
}

// Report returns the recording for the mock download. Terminal and
// side-effect-only: it never changes state.
func (s *Service) Report(e *Exam) (*model.Recording, error) {
	if e.Recording == nil {
		return nil, ErrNoRecording
	}
	return e.Recording, nil
}
