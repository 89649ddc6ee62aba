package storage

import (
	"encoding/json"
	"fmt"
	"log"
)

// Keys under which the persisted state lives. Every value is one JSON
// document covering the whole collection (or record) for its entity.
const (
	KeyProducts  = "maloka_products"
	KeyOrders    = "maloka_orders"
	KeySettings  = "maloka_settings"
	KeyAdminAuth = "maloka_admin_auth"
)

// Store is a key/value store holding one JSON document per key. There is no
// transactionality across keys: two related writes can be observed
// half-applied if the second one fails.
type Store interface {
	// Get returns the raw document for key, with found=false when the key
	// does not exist. A non-nil error means the backend itself failed.
	Get(key string) ([]byte, bool, error)
	// Set replaces the document for key.
	Set(key string, value []byte) error
	// Delete removes the key. Deleting a missing key is a no-op.
	Delete(key string) error
	Close() error
}

// ReadJSON reads key and unmarshals it into a value of type T. A missing key
// yields def without writing anything back. A value that fails to parse is
// logged and degraded to def as well; only backend failures are returned as
// errors.
func ReadJSON[T any](s Store, key string, def T) (T, error) {
	raw, found, err := s.Get(key)
	if err != nil {
		return def, fmt.Errorf("storage: read %q: %w", key, err)
	}
	if !found {
		return def, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Printf("storage: corrupt value under %q, using default: %v", key, err)
		return def, nil
	}
	return v, nil
}

// WriteJSON marshals value and stores it under key. Serialization and
// persistence failures are both returned to the caller.
func WriteJSON(s Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("storage: encode %q: %w", key, err)
	}
	if err := s.Set(key, raw); err != nil {
		return fmt.Errorf("storage: write %q: %w", key, err)
	}
	return nil
}
