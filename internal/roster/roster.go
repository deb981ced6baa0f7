// Package roster is the demo's mock data provider. Patient and child
// records come from a static built-in list (optionally a YAML file) and
// are immutable at runtime; a real product would back this with a
// persistent store.
package roster

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/jaswdr/faker"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cradlecare/cradle/internal/config"
	"github.com/cradlecare/cradle/internal/model"
)

var ErrNotFound = errors.New("patient not found")

var defaultPatients = []model.Patient{
	{ID: 1, Name: "John Doe", Age: 3, LastExam: "2025-08-01", Risk: 75},
	{ID: 2, Name: "Jane Smith", Age: 2, LastExam: "2025-07-15", Risk: 45},
	{ID: 3, Name: "Sam Lee", Age: 4, LastExam: "2025-07-05", Risk: 32},
	{ID: 4, Name: "Ava Brown", Age: 3, LastExam: "2025-06-21", Risk: 62},
}

var defaultChildren = []model.Patient{
	{ID: 101, Name: "Jane Smith", Age: 2, LastExam: "2025-07-15", Risk: 45},
	{ID: 102, Name: "Liam Wong", Age: 3, LastExam: "2025-07-02", Risk: 28},
	{ID: 103, Name: "Mia Patel", Age: 4, LastExam: "2025-06-18", Risk: 60},
}

type Provider struct {
	log      *zap.Logger
	patients []model.Patient
	children []model.Patient
}

type Params struct {
	fx.In

	Config *config.Config
	Log    *zap.Logger
}

type rosterFile struct {
	Patients []model.Patient `yaml:"patients"`
	Children []model.Patient `yaml:"children"`
}

func New(p Params) (*Provider, error) {
	r := &Provider{
		log:      p.Log,
		patients: defaultPatients,
		children: defaultChildren,
	}

	if path := p.Config.Roster.Path; path != "" {
		if err := r.loadFile(path); err != nil {
			// fall back to the built-in roster
			r.log.Warn("failed loading roster file", zap.String("path", path), zap.Error(err))
		}
	}

	if n := p.Config.Roster.DemoPatients; n > 0 {
		r.patients = append(r.patients, demoPatients(n, p.Config.Roster.DemoSeed, r.nextID())...)
	}

	return r, nil
}

func (r *Provider) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var f rosterFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return err
	}

	if len(f.Patients) > 0 {
		r.patients = f.Patients
	}
	if len(f.Children) > 0 {
		r.children = f.Children
	}
	return nil
}

func (r *Provider) nextID() int {
	next := 1
	for _, p := range r.patients {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return next
}

// demoPatients pads the roster with seeded synthetic entries so large
// demos don't show four lonely cards.
func demoPatients(n int, seed int64, firstID int) []model.Patient {
	f := faker.NewWithSeed(rand.NewSource(seed))
	now := time.Now()

	extra := make([]model.Patient, n)
	for i := range extra {
		extra[i] = model.Patient{
			ID:       firstID + i,
			Name:     fmt.Sprintf("%s %s", f.Person().FirstName(), f.Person().LastName()),
			Age:      f.IntBetween(1, 5),
			LastExam: now.AddDate(0, 0, -f.IntBetween(1, 90)).Format("2006-01-02"),
			Risk:     f.IntBetween(10, 100),
		}
	}
	return extra
}

// Patients returns a copy of the doctor roster; callers may reorder it
// freely without affecting the source list.
func (r *Provider) Patients() []model.Patient {
	out := make([]model.Patient, len(r.patients))
	copy(out, r.patients)
	return out
}

// Children returns a copy of the parent dashboard list.
func (r *Provider) Children() []model.Patient {
	out := make([]model.Patient, len(r.children))
	copy(out, r.children)
	return out
}

// PatientByID resolves one record. An id resolves to at most one
// record; unknown ids return ErrNotFound.
func (r *Provider) PatientByID(id int) (*model.Patient, error) {
	for _, p := range r.patients {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, ErrNotFound
}
