package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/skillfit/internal/client/auth"
	"github.com/dmitrijs2005/skillfit/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/skillfit/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	data   map[string][]byte
	getErr error
	setErr error
	delErr error
}

func newMemRepo() *memRepo { return &memRepo{data: map[string][]byte{}} }

func (m *memRepo) Get(_ context.Context, k string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[k]
	if !ok {
		return nil, metadata.ErrNotFound
	}
	return v, nil
}
func (m *memRepo) Set(_ context.Context, k string, v []byte) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[k] = v
	return nil
}
func (m *memRepo) Delete(_ context.Context, k string) error {
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.data, k)
	return nil
}
func (m *memRepo) Clear(context.Context) error { m.data = map[string][]byte{}; return nil }

func token(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)
	return s
}

func TestStore_EmptyByDefault(t *testing.T) {
	s := NewStore(newMemRepo())
	require.NoError(t, s.Init(context.Background()))

	_, ok := s.CurrentClaims()
	assert.False(t, ok)
	_, ok = s.Credential()
	assert.False(t, ok)
	assert.Empty(t, s.DisplayName())
}

func TestStore_SetCredential_PersistsAndDerivesClaims(t *testing.T) {
	repo := newMemRepo()
	s := NewStore(repo)
	tok := token(t, jwt.MapClaims{"sub": "alice@example.org", "role": "user"})

	require.NoError(t, s.SetCredential(context.Background(), tok))

	c, ok := s.CurrentClaims()
	require.True(t, ok)
	assert.Equal(t, auth.RoleUser, c.Role)
	assert.Equal(t, "alice@example.org", c.Subject)

	cred, ok := s.Credential()
	require.True(t, ok)
	assert.Equal(t, tok, cred)
	assert.Equal(t, []byte(tok), repo.data[common.CredentialKey])
	assert.Equal(t, "alice@example.org", s.DisplayName())
}

func TestStore_SetCredential_RejectsMalformed(t *testing.T) {
	repo := newMemRepo()
	s := NewStore(repo)
	good := token(t, jwt.MapClaims{"sub": "a@b.c", "role": "admin"})
	require.NoError(t, s.SetCredential(context.Background(), good))

	err := s.SetCredential(context.Background(), "not-a-token")
	require.ErrorIs(t, err, auth.ErrMalformedCredential)

	cred, ok := s.Credential()
	require.True(t, ok, "previous session untouched")
	assert.Equal(t, good, cred)
	assert.Equal(t, []byte(good), repo.data[common.CredentialKey])
}

func TestStore_SetCredential_PersistFailure(t *testing.T) {
	repo := newMemRepo()
	repo.setErr = errors.New("disk full")
	s := NewStore(repo)

	err := s.SetCredential(context.Background(), token(t, jwt.MapClaims{"role": "user"}))
	require.Error(t, err)
	_, ok := s.CurrentClaims()
	assert.False(t, ok)
}

func TestStore_ClearCredential(t *testing.T) {
	repo := newMemRepo()
	s := NewStore(repo)
	require.NoError(t, s.SetCredential(context.Background(), token(t, jwt.MapClaims{"role": "user"})))
	s.SetDisplayName("Alice")

	require.NoError(t, s.ClearCredential(context.Background()))

	_, ok := s.CurrentClaims()
	assert.False(t, ok)
	assert.Empty(t, s.DisplayName())
	assert.NotContains(t, repo.data, common.CredentialKey)
}

func TestStore_Init_RestoresPersistedCredential(t *testing.T) {
	repo := newMemRepo()
	tok := token(t, jwt.MapClaims{"sub": "root@example.org", "role": "admin"})
	repo.data[common.CredentialKey] = []byte(tok)

	s := NewStore(repo)
	require.NoError(t, s.Init(context.Background()))

	c, ok := s.CurrentClaims()
	require.True(t, ok)
	assert.Equal(t, auth.RoleAdmin, c.Role)
}

func TestStore_Init_DropsMalformedCredential(t *testing.T) {
	repo := newMemRepo()
	repo.data[common.CredentialKey] = []byte("garbage")

	s := NewStore(repo)
	require.NoError(t, s.Init(context.Background()))

	_, ok := s.CurrentClaims()
	assert.False(t, ok)
	assert.NotContains(t, repo.data, common.CredentialKey)
}

func TestStore_Init_RepoError(t *testing.T) {
	repo := newMemRepo()
	repo.getErr = errors.New("io")
	require.Error(t, NewStore(repo).Init(context.Background()))
}

func TestStore_ExpiredCredentialReadsAsAbsent(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	clock := now
	s := NewStore(newMemRepo(), WithClock(func() time.Time { return clock }))

	tok := token(t, jwt.MapClaims{"role": "user", "exp": now.Add(time.Hour).Unix()})
	require.NoError(t, s.SetCredential(context.Background(), tok))
	_, ok := s.CurrentClaims()
	require.True(t, ok)

	clock = now.Add(2 * time.Hour)
	_, ok = s.CurrentClaims()
	assert.False(t, ok)
	_, ok = s.Credential()
	assert.False(t, ok)
}

func TestStore_DisplayName(t *testing.T) {
	s := NewStore(newMemRepo())
	s.SetDisplayName("ignored while signed out")
	assert.Empty(t, s.DisplayName())

	require.NoError(t, s.SetCredential(context.Background(), token(t, jwt.MapClaims{"sub": "a@b.c", "role": "user"})))
	s.SetDisplayName("Alice Doe")
	assert.Equal(t, "Alice Doe", s.DisplayName())

	require.NoError(t, s.SetCredential(context.Background(), token(t, jwt.MapClaims{"sub": "b@b.c", "role": "user"})))
	assert.Equal(t, "b@b.c", s.DisplayName(), "name belongs to the previous credential")
}

func TestStore_WithSQLiteRepository(t *testing.T) {
	ctx := context.Background()
	db, err := metadata.OpenSQLite(ctx, filepath.Join(t.TempDir(), "s.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	tok := token(t, jwt.MapClaims{"sub": "a@b.c", "role": "user"})
	require.NoError(t, NewStore(metadata.NewSQLiteRepository(db)).SetCredential(ctx, tok))

	restored := NewStore(metadata.NewSQLiteRepository(db))
	require.NoError(t, restored.Init(ctx))
	cred, ok := restored.Credential()
	require.True(t, ok)
	assert.Equal(t, tok, cred)
}
