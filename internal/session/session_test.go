package session

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/malokastory/elegance-backend/internal/storage"
)

func testHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	return string(hash)
}

func TestManager_DefaultsToLoggedOut(t *testing.T) {
	m := NewManager(storage.NewMemoryStore(), testHash(t, "secret"), []byte("k"))
	if m.IsAuthenticated() {
		t.Fatal("fresh store must start logged out")
	}
}

func TestManager_VerifyPassword(t *testing.T) {
	m := NewManager(storage.NewMemoryStore(), testHash(t, "secret"), []byte("k"))
	if err := m.Verify("secret"); err != nil {
		t.Fatalf("correct password rejected: %v", err)
	}
	if err := m.Verify("wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestManager_FlagSurvivesRestart(t *testing.T) {
	store := storage.NewMemoryStore()
	m := NewManager(store, testHash(t, "secret"), []byte("k"))
	if err := m.SetAuthenticated(true); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	// a second manager over the same store sees the persisted flag
	m2 := NewManager(store, testHash(t, "secret"), []byte("k"))
	if !m2.IsAuthenticated() {
		t.Fatal("persisted flag not restored at startup")
	}

	if err := m2.SetAuthenticated(false); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	m3 := NewManager(store, testHash(t, "secret"), []byte("k"))
	if m3.IsAuthenticated() {
		t.Fatal("logout must persist the cleared flag")
	}
}

func TestManager_IssueToken(t *testing.T) {
	m := NewManager(storage.NewMemoryStore(), testHash(t, "secret"), []byte("k"))
	token, err := m.IssueToken()
	if err != nil {
		t.Fatalf("token issue failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}
}
