// Package session owns the single persisted admin-session flag and the
// credentials guarding it. The flag is read once at startup and toggled by
// login/logout; there are exactly two states and the transition is
// synchronous with the flag write.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/malokastory/elegance-backend/internal/storage"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenTTL = 72 * time.Hour

// Manager is injected through the composition root; nothing in the codebase
// reaches for ambient global session state.
type Manager struct {
	store        storage.Store
	passwordHash string
	jwtSecret    []byte

	mu            sync.Mutex
	authenticated bool
}

// NewManager restores the persisted flag (default false) into memory.
func NewManager(store storage.Store, passwordHash string, jwtSecret []byte) *Manager {
	authed, err := storage.ReadJSON(store, storage.KeyAdminAuth, false)
	if err != nil {
		authed = false
	}
	return &Manager{
		store:         store,
		passwordHash:  passwordHash,
		jwtSecret:     jwtSecret,
		authenticated: authed,
	}
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.authenticated
}

// Verify compares the submitted password against the configured bcrypt hash.
func (m *Manager) Verify(password string) error {
	if bcrypt.CompareHashAndPassword([]byte(m.passwordHash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// SetAuthenticated persists the flag and mirrors it in memory. The persisted
// write happens first so a crash cannot leave memory ahead of storage.
func (m *Manager) SetAuthenticated(v bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := storage.WriteJSON(m.store, storage.KeyAdminAuth, v); err != nil {
		return err
	}
	m.authenticated = v
	return nil
}

// IssueToken signs a short-lived admin token for the HTTP layer.
func (m *Manager) IssueToken() (string, error) {
	claims := jwt.MapClaims{
		"admin": true,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.jwtSecret)
}
