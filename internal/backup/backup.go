// Package backup implements the manual backup/restore path: the full entity
// set serialized to one JSON document and written back wholesale.
package backup

import (
	"time"

	"github.com/google/uuid"

	"github.com/malokastory/elegance-backend/internal/order"
	"github.com/malokastory/elegance-backend/internal/product"
	"github.com/malokastory/elegance-backend/internal/settings"
	"github.com/malokastory/elegance-backend/internal/storage"
)

// Bundle is the export file format. On import, absent keys are left
// untouched; present keys overwrite the whole stored collection/record with
// no merge and no validation beyond presence.
type Bundle struct {
	ExportID   string             `json:"exportId,omitempty"`
	ExportedAt string             `json:"exportedAt,omitempty"`
	Products   *[]product.Product `json:"products,omitempty"`
	Orders     *[]order.Order     `json:"orders,omitempty"`
	Settings   *settings.Settings `json:"settings,omitempty"`
}

type Service struct {
	products *product.Service
	orders   *order.Service
	settings *settings.Service
	store    storage.Store
}

func NewService(products *product.Service, orders *order.Service, settingsSvc *settings.Service, store storage.Store) *Service {
	return &Service{products: products, orders: orders, settings: settingsSvc, store: store}
}

// ExportAll snapshots the persisted state of all three repositories.
func (s *Service) ExportAll() (Bundle, error) {
	products, err := s.products.List()
	if err != nil {
		return Bundle{}, err
	}
	orders, err := s.orders.List()
	if err != nil {
		return Bundle{}, err
	}
	rec, err := s.settings.Get()
	if err != nil {
		return Bundle{}, err
	}

	return Bundle{
		ExportID:   uuid.NewString(),
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Products:   &products,
		Orders:     &orders,
		Settings:   &rec,
	}, nil
}

// ImportAll overwrites whichever collections the bundle carries. Callers are
// expected to trigger a full re-fetch through the synchronization context
// afterward.
func (s *Service) ImportAll(b Bundle) error {
	if b.Products != nil {
		if err := s.products.Replace(*b.Products); err != nil {
			return err
		}
	}
	if b.Orders != nil {
		if err := s.orders.Replace(*b.Orders); err != nil {
			return err
		}
	}
	if b.Settings != nil {
		if err := s.settings.Replace(*b.Settings); err != nil {
			return err
		}
	}
	return nil
}

// ClearAll removes the three entity keys entirely. The admin-auth flag is
// deliberately left alone.
func (s *Service) ClearAll() error {
	for _, key := range []string{storage.KeyProducts, storage.KeyOrders, storage.KeySettings} {
		if err := s.store.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
