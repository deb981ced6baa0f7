// Package session wraps the cookie-backed session manager. It is the
// server-side analog of the original demo's browser storage slot: one
// record saying who is using this browser, plus the dashboard's
// transient exam state. It is a UX convenience, not a security
// boundary; a real deployment needs server-side authorization.
package session

import (
	"context"
	"encoding/gob"
	"errors"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/cradlecare/cradle/internal/exam"
	"github.com/cradlecare/cradle/internal/model"
)

const (
	sessionKey = "session"
	examKey    = "exam"
	orderKey   = "patient_order"
	sortKey    = "patient_sort"
	flashKey   = "flash"
)

var (
	errSessionNotFound = errors.New("session not found")
)

type Manager struct {
	impl *scs.SessionManager
}

func NewManager() (*Manager, error) {
	gob.Register(&model.Session{})
	gob.Register(&exam.Exam{})
	gob.Register([]int{})

	m := &Manager{}
	m.impl = scs.New()
	m.impl.Lifetime = 24 * time.Hour

	return m, nil
}

func (m *Manager) Wrap(next http.Handler) http.Handler {
	return m.impl.LoadAndSave(next)
}

// Get reads the current session. It fails soft: missing or corrupt
// data reads as "no session" and never reaches the user as an error.
func (m *Manager) Get(ctx context.Context) (*model.Session, error) {
	session, ok := m.impl.Get(ctx, sessionKey).(*model.Session)
	if !ok || !session.Role.Valid() {
		return nil, errSessionNotFound
	}

	return session, nil
}

// SetAuthenticated overwrites any prior session; it replaces rather
// than merges.
func (m *Manager) SetAuthenticated(ctx context.Context, email string, role model.Role) error {
	if err := m.impl.RenewToken(ctx); err != nil {
		return err
	}

	m.impl.Put(ctx, sessionKey, &model.Session{Email: email, Role: role})
	return nil
}

// Clear removes everything stored for this browser. Idempotent.
func (m *Manager) Clear(ctx context.Context) error {
	return m.impl.Destroy(ctx)
}

// Exam returns the dashboard's exam workflow state, creating it on
// first use. The state survives dialog close/reopen but not logout.
func (m *Manager) Exam(ctx context.Context) *exam.Exam {
	if e, ok := m.impl.Get(ctx, examKey).(*exam.Exam); ok {
		return e
	}
	return exam.NewExam()
}

func (m *Manager) PutExam(ctx context.Context, e *exam.Exam) {
	m.impl.Put(ctx, examKey, e)
}

// PatientOrder is the doctor's working list order (patient ids), set by
// manual reorder and discarded on the next sort recompute.
func (m *Manager) PatientOrder(ctx context.Context) ([]int, bool) {
	order, ok := m.impl.Get(ctx, orderKey).([]int)
	return order, ok
}

func (m *Manager) PutPatientOrder(ctx context.Context, order []int) {
	m.impl.Put(ctx, orderKey, order)
}

func (m *Manager) ClearPatientOrder(ctx context.Context) {
	m.impl.Remove(ctx, orderKey)
}

// SortKey remembers which of the two sort orders the doctor last chose.
func (m *Manager) SortKey(ctx context.Context) (string, bool) {
	key, ok := m.impl.Get(ctx, sortKey).(string)
	return key, ok
}

func (m *Manager) PutSortKey(ctx context.Context, key string) {
	m.impl.Put(ctx, sortKey, key)
}

// PopFlash returns and clears the pending notice, if any.
func (m *Manager) PopFlash(ctx context.Context) string {
	s, _ := m.impl.Pop(ctx, flashKey).(string)
	return s
}

func (m *Manager) PutFlash(ctx context.Context, msg string) {
	m.impl.Put(ctx, flashKey, msg)
}
