package order

import (
	"errors"
	"sync"
	"time"

	"github.com/malokastory/elegance-backend/internal/ident"
	"github.com/malokastory/elegance-backend/internal/storage"
)

var ErrNotFound = errors.New("order not found")

// Repository persists the order collection. There is no delete: orders only
// ever leave storage through a full restore or clear.
type Repository interface {
	List() ([]Order, error)
	GetByID(id string) (Order, error)
	Create(ord Order) (Order, error)
	UpdateStatus(id string, status Status) (Order, error)
	Replace(orders []Order) error
}

// KVRepository stores the whole collection under one key, mutating it with
// the usual read-modify-write cycle guarded by a mutex.
type KVRepository struct {
	mu    sync.Mutex
	store storage.Store
}

func NewKVRepository(store storage.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) List() ([]Order, error) {
	return storage.ReadJSON(r.store, storage.KeyOrders, []Order{})
}

func (r *KVRepository) GetByID(id string) (Order, error) {
	orders, err := r.List()
	if err != nil {
		return Order{}, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}

// Create stamps identifier, order date and the fixed initial Pending status,
// whatever the input carried.
func (r *KVRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.List()
	if err != nil {
		return Order{}, err
	}
	ord.ID = ident.New()
	ord.OrderDate = time.Now().UTC().Format(time.RFC3339)
	ord.Status = StatusPending
	orders = append(orders, ord)
	if err := storage.WriteJSON(r.store, storage.KeyOrders, orders); err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *KVRepository) UpdateStatus(id string, status Status) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.List()
	if err != nil {
		return Order{}, err
	}
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		orders[i].Status = status
		if err := storage.WriteJSON(r.store, storage.KeyOrders, orders); err != nil {
			return Order{}, err
		}
		return orders[i], nil
	}
	return Order{}, ErrNotFound
}

func (r *KVRepository) Replace(orders []Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if orders == nil {
		orders = []Order{}
	}
	return storage.WriteJSON(r.store, storage.KeyOrders, orders)
}
