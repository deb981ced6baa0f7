package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"github.com/cradlecare/cradle/internal/config"
	"github.com/cradlecare/cradle/internal/model"
)

func newJSONRepo(t *testing.T, path string) (Repository, *fxtest.Lifecycle) {
	t.Helper()

	lc := fxtest.NewLifecycle(t)
	repo, err := NewJSON(jsonParams{
		LC:     lc,
		Config: &config.Config{Users: config.Users{Path: path}},
		Log:    zap.NewNop(),
	})
	require.NoError(t, err)
	return repo, lc
}

func Test_jsonRepo_roundtrip(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "users.json")

	repo, lc := newJSONRepo(t, path)
	lc.RequireStart()
	require.NoError(repo.AddUser(ctx, model.RegisteredUser{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Role:     model.RoleParent,
	}))
	lc.RequireStop()

	// a fresh repo reads the flushed file
	repo2, _ := newJSONRepo(t, path)
	users, err := repo2.GetUsers(ctx)
	require.NoError(err)
	require.Len(users, 1)
	assert.Equal("ada@example.com", users[0].Email)
	assert.Equal(model.RoleParent, users[0].Role)
}

func Test_jsonRepo_noDedup(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	repo, _ := newJSONRepo(t, filepath.Join(t.TempDir(), "users.json"))

	u := model.RegisteredUser{FullName: "Ada", Email: "ada@example.com", Role: model.RoleDoctor}
	require.NoError(repo.AddUser(ctx, u))
	require.NoError(repo.AddUser(ctx, u))

	users, err := repo.GetUsers(ctx)
	require.NoError(err)
	require.Len(users, 2)
}

func Test_GetUserByEmail(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	ctx := context.Background()

	repo := NewMemory()
	require.NoError(repo.AddUser(ctx, model.RegisteredUser{
		FullName: "Ada", Email: "Ada@Example.com", Role: model.RoleDoctor,
	}))

	u, err := repo.GetUserByEmail(ctx, "ada@example.com")
	require.NoError(err)
	assert.Equal("Ada", u.FullName)

	_, err = repo.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(err, ErrNotFound)
}
