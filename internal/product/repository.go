package product

import (
	"errors"
	"sync"

	"github.com/malokastory/elegance-backend/internal/ident"
	"github.com/malokastory/elegance-backend/internal/storage"
)

var ErrNotFound = errors.New("product not found")

// Repository persists the product collection. List degrades to an empty
// collection on a missing or corrupt key; only backend failures surface.
type Repository interface {
	List() ([]Product, error)
	GetByID(id string) (Product, error)
	Create(p Product) (Product, error)
	Update(id string, patch Patch) (Product, error)
	Delete(id string) error
	// Replace overwrites the whole collection (used by import/restore).
	Replace(products []Product) error
}

// KVRepository stores the collection as one JSON document. Every mutation is
// a whole-collection read, in-memory change, whole-collection write; the
// mutex keeps that cycle atomic within this process.
type KVRepository struct {
	mu    sync.Mutex
	store storage.Store
}

func NewKVRepository(store storage.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) List() ([]Product, error) {
	return storage.ReadJSON(r.store, storage.KeyProducts, []Product{})
}

func (r *KVRepository) GetByID(id string) (Product, error) {
	products, err := r.List()
	if err != nil {
		return Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *KVRepository) Create(p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.List()
	if err != nil {
		return Product{}, err
	}
	p.ID = ident.New()
	products = append(products, p)
	if err := storage.WriteJSON(r.store, storage.KeyProducts, products); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *KVRepository) Update(id string, patch Patch) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.List()
	if err != nil {
		return Product{}, err
	}
	for i := range products {
		if products[i].ID != id {
			continue
		}
		products[i] = patch.apply(products[i])
		if err := storage.WriteJSON(r.store, storage.KeyProducts, products); err != nil {
			return Product{}, err
		}
		return products[i], nil
	}
	return Product{}, ErrNotFound
}

// Delete removes the product with the given id. A missing id is a silent
// no-op so deletes stay idempotent.
func (r *KVRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.List()
	if err != nil {
		return err
	}
	kept := make([]Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return nil
	}
	return storage.WriteJSON(r.store, storage.KeyProducts, kept)
}

func (r *KVRepository) Replace(products []Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if products == nil {
		products = []Product{}
	}
	return storage.WriteJSON(r.store, storage.KeyProducts, products)
}
