package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"sync"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/cradlecare/cradle/internal/config"
	"github.com/cradlecare/cradle/internal/model"
)

var (
	errTableFileIsDir = errors.New("table file is dir")
)

type Data struct {
	Users []model.RegisteredUser `json:"users"`
}

// jsonRepo keeps the registered-users list in a single JSON file, the
// server-side stand-in for the browser's persisted key-value slot.
// Last write wins; there is no transactional guarantee.
type jsonRepo struct {
	path string
	log  *zap.Logger

	mu   sync.Mutex
	data *Data
}

type jsonParams struct {
	fx.In

	LC     fx.Lifecycle
	Config *config.Config
	Log    *zap.Logger
}

func NewJSON(p jsonParams) (Repository, error) {
	r := &jsonRepo{
		path: p.Config.Users.Path,
		log:  p.Log,
		data: &Data{},
	}

	err := r.readfile()
	if err != nil {
		// only log, data will be empty and will overwrite when
		// the service is stopped
		r.log.Warn("failed reading json repo data file", zap.Error(err))
	}

	p.LC.Append(fx.Hook{
		OnStop: r.stop,
	})

	return r, nil
}

func (r *jsonRepo) stop(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writefile()
}

func (r *jsonRepo) readfile() error {
	finfo, err := os.Stat(r.path)
	if err != nil {
		return err
	}

	if finfo.IsDir() {
		return errTableFileIsDir
	}

	f, err := os.Open(r.path)
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(&r.data)
}

func (r *jsonRepo) writefile() error {
	f, err := os.Create(r.path)
	if err != nil {
		return err
	}
	defer f.Close()

	b, err := json.MarshalIndent(r.data, "", "  ")
	if err != nil {
		return err
	}

	_, err = f.Write(b)
	return err
}

func (r *jsonRepo) AddUser(_ context.Context, user model.RegisteredUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data.Users = append(r.data.Users, user)
	return nil
}

func (r *jsonRepo) GetUsers(_ context.Context) ([]model.RegisteredUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.RegisteredUser, len(r.data.Users))
	copy(out, r.data.Users)
	return out, nil
}

func (r *jsonRepo) GetUserByEmail(_ context.Context, email string) (*model.RegisteredUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.data.Users {
		if strings.EqualFold(u.Email, email) {
			u := u
			return &u, nil
		}
	}

	return nil, ErrNotFound
}
