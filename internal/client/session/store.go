// Package session owns the client's bearer credential and the identity
// claims derived from it.
//
// Store is the only writer of the credential. Sign-in calls SetCredential,
// sign-out calls ClearCredential, and everything else reads through
// CurrentClaims or Credential. The claims are client-asserted (see package
// auth): a Store saying "admin" does not authorize anything on the backend.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/skillfit/internal/client/auth"
	"github.com/dmitrijs2005/skillfit/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/skillfit/internal/common"
)

type Option func(*Store)

// WithClock replaces time.Now for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

type Store struct {
	repo metadata.Repository
	now  func() time.Time

	mu          sync.RWMutex
	credential  string
	claims      *auth.Claims
	displayName string
}

func NewStore(repo metadata.Repository, opts ...Option) *Store {
	s := &Store{repo: repo, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Init loads a credential persisted by a previous run. A persisted value that
// no longer decodes is removed and the store starts signed out.
func (s *Store) Init(ctx context.Context) error {
	raw, err := s.repo.Get(ctx, common.CredentialKey)
	if errors.Is(err, metadata.ErrNotFound) {
		s.reset()
		return nil
	}
	if err != nil {
		return fmt.Errorf("load credential: %w", err)
	}

	claims, err := auth.Decode(string(raw))
	if err != nil {
		s.reset()
		if derr := s.repo.Delete(ctx, common.CredentialKey); derr != nil {
			return fmt.Errorf("drop malformed credential: %w", derr)
		}
		return nil
	}

	s.mu.Lock()
	s.credential = string(raw)
	s.claims = &claims
	s.displayName = ""
	s.mu.Unlock()
	return nil
}

// SetCredential persists c and replaces the current claims. A malformed
// credential is rejected with auth.ErrMalformedCredential and the store is
// left as it was.
func (s *Store) SetCredential(ctx context.Context, c string) error {
	claims, err := auth.Decode(c)
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, common.CredentialKey, []byte(c)); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}

	s.mu.Lock()
	s.credential = c
	s.claims = &claims
	s.displayName = ""
	s.mu.Unlock()
	return nil
}

// ClearCredential forgets the credential in memory and on disk.
func (s *Store) ClearCredential(ctx context.Context) error {
	s.reset()
	if err := s.repo.Delete(ctx, common.CredentialKey); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}

func (s *Store) reset() {
	s.mu.Lock()
	s.credential = ""
	s.claims = nil
	s.displayName = ""
	s.mu.Unlock()
}

// CurrentClaims returns the claims of a present, well-formed, unexpired
// credential.
func (s *Store) CurrentClaims() (auth.Claims, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.liveLocked() {
		return auth.Claims{}, false
	}
	return *s.claims, true
}

// Credential returns the raw token for the Authorization header.
func (s *Store) Credential() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.liveLocked() {
		return "", false
	}
	return s.credential, true
}

func (s *Store) liveLocked() bool {
	return s.claims != nil && !s.claims.Expired(s.now())
}

// SetDisplayName records the profile name shown in the prompt. It is dropped
// whenever the credential changes.
func (s *Store) SetDisplayName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.claims != nil {
		s.displayName = name
	}
}

// DisplayName falls back to the credential subject when no profile name is
// known, and is empty when signed out.
func (s *Store) DisplayName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.liveLocked() {
		return ""
	}
	if s.displayName != "" {
		return s.displayName
	}
	return s.claims.Subject
}
