package settings

import (
	"sync"

	"github.com/malokastory/elegance-backend/internal/storage"
)

// Repository persists the singleton settings record. Get never writes the
// defaults back implicitly; the record first hits storage on Update or
// Replace.
type Repository interface {
	Get() (Settings, error)
	Update(patch Patch) (Settings, error)
	Replace(s Settings) error
}

type KVRepository struct {
	mu    sync.Mutex
	store storage.Store
}

func NewKVRepository(store storage.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) Get() (Settings, error) {
	return storage.ReadJSON(r.store, storage.KeySettings, Defaults())
}

// Update merges the patch over the stored record (or the defaults when
// nothing is stored yet) and writes the single record back. There is never a
// second record: the read-modify-write always targets the same key.
func (r *KVRepository) Update(patch Patch) (Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.Get()
	if err != nil {
		return Settings{}, err
	}
	merged := patch.apply(current)
	if err := storage.WriteJSON(r.store, storage.KeySettings, merged); err != nil {
		return Settings{}, err
	}
	return merged, nil
}

func (r *KVRepository) Replace(s Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return storage.WriteJSON(r.store, storage.KeySettings, s)
}
