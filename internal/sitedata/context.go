// Package sitedata holds the synchronization context: the single in-memory
// source of truth the HTTP layer reads from, kept consistent with storage
// after every mutation. The mirror is best-effort UI state, not a
// correctness source; consistency-critical reads re-fetch.
package sitedata

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/malokastory/elegance-backend/internal/order"
	"github.com/malokastory/elegance-backend/internal/product"
	"github.com/malokastory/elegance-backend/internal/session"
	"github.com/malokastory/elegance-backend/internal/settings"
)

type Context struct {
	productSvc  *product.Service
	orderSvc    *order.Service
	settingsSvc *settings.Service
	session     *session.Manager

	mu          sync.RWMutex
	products    []product.Product
	settingsRec *settings.Settings
	orders      []order.Order
	loading     bool
	lastErr     string
	authed      bool
}

func New(products *product.Service, orders *order.Service, settingsSvc *settings.Service, sess *session.Manager) *Context {
	return &Context{
		productSvc:  products,
		orderSvc:    orders,
		settingsSvc: settingsSvc,
		session:     sess,
		products:    []product.Product{},
		orders:      []order.Order{},
		loading:     true,
		authed:      sess.IsAuthenticated(),
	}
}

// Load runs the three fetches concurrently. Loading stays true until all of
// them settle, whether or not any individual fetch failed; each fetch
// manages its own fallback.
func (c *Context) Load(ctx context.Context) {
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { c.FetchProducts(); return nil })
	g.Go(func() error { c.FetchSettings(); return nil })
	g.Go(func() error { c.FetchOrders(); return nil })
	_ = g.Wait()

	c.mu.Lock()
	c.loading = false
	c.mu.Unlock()
}

// --- read state -----------------------------------------------------------

func (c *Context) Products() []product.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]product.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Settings returns nil until the first load has completed.
func (c *Context) Settings() *settings.Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.settingsRec == nil {
		return nil
	}
	cp := *c.settingsRec
	return &cp
}

func (c *Context) Orders() []order.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]order.Order, len(c.orders))
	copy(out, c.orders)
	return out
}

func (c *Context) IsLoading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// LastError holds the most recent failure only; any successful operation
// clears it. It is a flag for the UI, not an error log.
func (c *Context) LastError() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

func (c *Context) IsAdminAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.authed
}

// --- fetches --------------------------------------------------------------

// FetchProducts replaces the mirrored product list from storage. On failure
// the mirror falls back to an empty collection so the UI never sees an
// undefined list.
func (c *Context) FetchProducts() ([]product.Product, error) {
	list, err := c.productSvc.List()
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.products = []product.Product{}
		c.lastErr = err.Error()
		return nil, err
	}
	c.products = list
	c.lastErr = ""
	return list, nil
}

// FetchSettings replaces the mirrored record; failures fall back to the
// default record rather than a nil one.
func (c *Context) FetchSettings() (settings.Settings, error) {
	rec, err := c.settingsSvc.Get()
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		def := settings.Defaults()
		c.settingsRec = &def
		c.lastErr = err.Error()
		return def, err
	}
	c.settingsRec = &rec
	c.lastErr = ""
	return rec, nil
}

// FetchOrders is suppressed for unauthenticated sessions: the mirror stays
// empty and storage is not read.
func (c *Context) FetchOrders() ([]order.Order, error) {
	c.mu.RLock()
	authed := c.authed
	c.mu.RUnlock()
	if !authed {
		c.mu.Lock()
		c.orders = []order.Order{}
		c.mu.Unlock()
		return []order.Order{}, nil
	}

	list, err := c.orderSvc.List()
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.orders = []order.Order{}
		c.lastErr = err.Error()
		return nil, err
	}
	c.orders = list
	c.lastErr = ""
	return list, nil
}

// --- mutations ------------------------------------------------------------

func (c *Context) AddProduct(p product.Product) (product.Product, error) {
	created, err := c.productSvc.Create(p)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.lastErr = err.Error()
		return product.Product{}, err
	}
	c.products = append(c.products, created)
	c.lastErr = ""
	return created, nil
}

func (c *Context) UpdateProduct(id string, patch product.Patch) (product.Product, error) {
	updated, err := c.productSvc.Update(id, patch)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.lastErr = err.Error()
		return product.Product{}, err
	}
	for i := range c.products {
		if c.products[i].ID == id {
			c.products[i] = updated
			break
		}
	}
	c.lastErr = ""
	return updated, nil
}

func (c *Context) DeleteProduct(id string) error {
	if err := c.productSvc.Delete(id); err != nil {
		c.mu.Lock()
		c.lastErr = err.Error()
		c.mu.Unlock()
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.products[:0]
	for _, p := range c.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	c.products = kept
	c.lastErr = ""
	return nil
}

// UpdateSettings adopts the merged record the repository actually persisted,
// never the raw patch.
func (c *Context) UpdateSettings(patch settings.Patch) (settings.Settings, error) {
	merged, err := c.settingsSvc.Update(patch)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.lastErr = err.Error()
		return settings.Settings{}, err
	}
	c.settingsRec = &merged
	c.lastErr = ""
	return merged, nil
}

// AddOrder creates the order but leaves the mirror untouched: the order list
// is only populated for authenticated admin sessions. The created order goes
// back to the caller for checkout confirmation.
func (c *Context) AddOrder(d order.Draft) (order.Order, error) {
	created, err := c.orderSvc.Create(d)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.lastErr = err.Error()
		return order.Order{}, err
	}
	c.lastErr = ""
	return created, nil
}

func (c *Context) UpdateOrderStatus(id string, status order.Status) (order.Order, error) {
	updated, err := c.orderSvc.UpdateStatus(id, status)
	return c.adoptOrder(updated, err)
}

func (c *Context) AdvanceOrderStatus(id string) (order.Order, error) {
	updated, err := c.orderSvc.AdvanceStatus(id)
	return c.adoptOrder(updated, err)
}

func (c *Context) adoptOrder(updated order.Order, err error) (order.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.lastErr = err.Error()
		return order.Order{}, err
	}
	for i := range c.orders {
		if c.orders[i].ID == updated.ID {
			c.orders[i] = updated
			break
		}
	}
	c.lastErr = ""
	return updated, nil
}

// SetAdminAuthenticated persists the flag and applies the visibility gate:
// turning it on triggers an immediate orders fetch, turning it off clears
// the mirrored orders without touching storage.
func (c *Context) SetAdminAuthenticated(v bool) error {
	c.mu.Lock()
	was := c.authed
	c.mu.Unlock()

	if err := c.session.SetAuthenticated(v); err != nil {
		c.mu.Lock()
		c.lastErr = err.Error()
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.authed = v
	if !v {
		c.orders = []order.Order{}
	}
	c.lastErr = ""
	c.mu.Unlock()

	if v && !was {
		_, _ = c.FetchOrders()
	}
	return nil
}

// Reload re-runs the full fetch, used after an import overwrote storage.
func (c *Context) Reload() error {
	_, errP := c.FetchProducts()
	_, errS := c.FetchSettings()
	_, errO := c.FetchOrders()
	if errP != nil {
		return errP
	}
	if errS != nil {
		return errS
	}
	return errO
}
