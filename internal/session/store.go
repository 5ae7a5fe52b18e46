// Package session stores the bearer token between CLI invocations. It plays
// the role the browser's localStorage plays for the web client: one token
// under a fixed key, cleared on logout or authentication expiry.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/golang-jwt/jwt/v5"
)

// tokenFileName is the fixed key the token is stored under.
const tokenFileName = "auth_token"

// Store is a file-backed token store. Writes are guarded by a file lock so
// concurrent CLI invocations cannot interleave a save and a clear.
type Store struct {
	dir string
}

// NewStore creates a token store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultStore creates a token store under the user's config directory.
func DefaultStore() (*Store, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return NewStore(filepath.Join(base, "resume-optimizer")), nil
}

// Token returns the stored token, or an empty string when none is stored.
func (s *Store) Token() (string, error) {
	data, err := os.ReadFile(s.tokenPath())
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save persists the token, creating the store directory if needed.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create session directory %s: %w", s.dir, err)
	}

	lock := flock.New(s.lockPath())
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock session store: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	if err := os.WriteFile(s.tokenPath(), []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// Clear removes the stored token. No-op when no token is stored.
func (s *Store) Clear() error {
	lock := flock.New(s.lockPath())
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock session store: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	if err := os.Remove(s.tokenPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}

// ExpiresAt reports the stored token's expiry, read from the JWT's exp claim
// without verifying the signature (the client has no signing key; the server
// remains the authority). Returns false when no token is stored or the token
// carries no readable expiry.
func (s *Store) ExpiresAt() (time.Time, bool) {
	token, err := s.Token()
	if err != nil || token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// ExpiresSoon reports whether the stored token expires within the given
// window. Tokens with no readable expiry never report as expiring.
func (s *Store) ExpiresSoon(window time.Duration) bool {
	exp, ok := s.ExpiresAt()
	if !ok {
		return false
	}
	return time.Until(exp) < window
}

func (s *Store) tokenPath() string {
	return filepath.Join(s.dir, tokenFileName)
}

func (s *Store) lockPath() string {
	return filepath.Join(s.dir, tokenFileName+".lock")
}
