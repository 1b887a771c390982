// Package credstore persists the client-owned state: the auth token and
// the theme preference. Nothing else lives outside the backend.
package credstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gopkg.in/yaml.v3"
)

const fileName = "credentials.yaml"

// credentials is the on-disk shape.
type credentials struct {
	Token string `yaml:"token,omitempty"`
	Theme string `yaml:"theme,omitempty"`
}

// Store reads and writes the credentials file. It implements the API
// client's TokenSource, including the clear-on-401 hook.
type Store struct {
	mu    sync.Mutex
	path  string
	creds credentials
}

// Open loads the credentials file under dir, creating the directory if
// needed. A missing file is not an error; the store starts empty.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	s := &Store{path: filepath.Join(dir, fileName)}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	if err := yaml.Unmarshal(data, &s.creds); err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	return s, nil
}

// Token returns the stored bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds.Token
}

// SetToken stores a new bearer token.
func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds.Token = token
	return s.save()
}

// Clear discards the token but keeps preferences. Called by the API
// client when the backend reports the session as expired.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds.Token == "" {
		return nil
	}
	s.creds.Token = ""
	return s.save()
}

// Theme returns the stored theme preference, or "" for the default.
func (s *Store) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds.Theme
}

// SetTheme stores the theme preference.
func (s *Store) SetTheme(theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds.Theme = theme
	return s.save()
}

// save writes the file atomically with owner-only permissions.
func (s *Store) save() error {
	data, err := yaml.Marshal(s.creds)
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace credentials: %w", err)
	}
	return nil
}

var errNoExpiry = errors.New("token has no expiry claim")

// TokenExpiry extracts the exp claim without verifying the signature.
// The signing secret is server-side; this is only used to warn the user
// before making a call that is guaranteed to 401.
func TokenExpiry(token string) (time.Time, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, errNoExpiry
	}
	return exp.Time, nil
}

// Expired reports whether the stored token exists but is past its
// expiry. A token without an exp claim is treated as live.
func (s *Store) Expired(now time.Time) bool {
	token := s.Token()
	if token == "" {
		return false
	}
	exp, err := TokenExpiry(token)
	if err != nil {
		return false
	}
	return exp.Before(now)
}
