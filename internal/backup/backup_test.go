package backup

import (
	"testing"

	"github.com/malokastory/elegance-backend/internal/order"
	"github.com/malokastory/elegance-backend/internal/product"
	"github.com/malokastory/elegance-backend/internal/settings"
	"github.com/malokastory/elegance-backend/internal/storage"
)

func newTestService() (*Service, storage.Store) {
	store := storage.NewMemoryStore()
	svc := NewService(
		product.NewService(product.NewKVRepository(store)),
		order.NewService(order.NewKVRepository(store)),
		settings.NewService(settings.NewKVRepository(store)),
		store,
	)
	return svc, store
}

func seed(t *testing.T, svc *Service) {
	t.Helper()
	if _, err := svc.products.Create(product.Product{
		Name: "Silver Ring", Price: 150, Category: product.CategoryRings, Images: []string{"imgA"},
	}); err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	if _, err := svc.orders.Create(order.Draft{
		CustomerName: "سارة", PhoneNumber: "0100", Address: "القاهرة",
		Items: []order.Item{{ProductID: "p", ProductName: "Silver Ring", Quantity: 2, Price: 150}},
	}); err != nil {
		t.Fatalf("seed order failed: %v", err)
	}
	hero := []string{"hero.jpg"}
	if _, err := svc.settings.Update(settings.Patch{HeroSliderImages: &hero}); err != nil {
		t.Fatalf("seed settings failed: %v", err)
	}
}

func TestExportImport_RoundTripReproducesState(t *testing.T) {
	src, srcStore := newTestService()
	seed(t, src)

	bundle, err := src.ExportAll()
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if bundle.ExportID == "" || bundle.ExportedAt == "" {
		t.Fatal("bundle must carry id and timestamp")
	}

	dst, dstStore := newTestService()
	if err := dst.ImportAll(bundle); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	for _, key := range []string{storage.KeyProducts, storage.KeyOrders, storage.KeySettings} {
		want, _, _ := srcStore.Get(key)
		got, found, err := dstStore.Get(key)
		if err != nil || !found {
			t.Fatalf("key %q missing after import: found=%v err=%v", key, found, err)
		}
		if string(want) != string(got) {
			t.Fatalf("key %q differs after round trip:\nwant %s\ngot  %s", key, want, got)
		}
	}
}

func TestImport_AbsentKeysLeftUntouched(t *testing.T) {
	svc, _ := newTestService()
	seed(t, svc)

	before, _ := svc.orders.List()

	// bundle carrying only products must not touch orders or settings
	empty := []product.Product{}
	if err := svc.ImportAll(Bundle{Products: &empty}); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	products, _ := svc.products.List()
	if len(products) != 0 {
		t.Fatalf("products not overwritten: %v", products)
	}
	after, _ := svc.orders.List()
	if len(after) != len(before) {
		t.Fatal("orders must be untouched by a products-only bundle")
	}
	rec, _ := svc.settings.Get()
	if len(rec.HeroSliderImages) != 1 {
		t.Fatal("settings must be untouched by a products-only bundle")
	}
}

func TestClearAll_RemovesEntityKeysButKeepsAuthFlag(t *testing.T) {
	svc, store := newTestService()
	seed(t, svc)
	if err := storage.WriteJSON(store, storage.KeyAdminAuth, true); err != nil {
		t.Fatalf("seed auth flag failed: %v", err)
	}

	if err := svc.ClearAll(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	for _, key := range []string{storage.KeyProducts, storage.KeyOrders, storage.KeySettings} {
		if _, found, _ := store.Get(key); found {
			t.Fatalf("key %q still present after clear", key)
		}
	}
	if _, found, _ := store.Get(storage.KeyAdminAuth); !found {
		t.Fatal("admin flag must survive a data clear")
	}
}
