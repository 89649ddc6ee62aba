package product

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/malokastory/elegance-backend/internal/storage"
)

// passthroughContext serves handler tests without pulling in the full
// synchronization context: reads go straight to the repository.
type passthroughContext struct {
	svc *Service
}

func (p *passthroughContext) Products() []Product {
	products, _ := p.svc.List()
	return products
}

func (p *passthroughContext) FetchProducts() ([]Product, error) { return p.svc.List() }

func (p *passthroughContext) AddProduct(in Product) (Product, error) { return p.svc.Create(in) }

func (p *passthroughContext) UpdateProduct(id string, patch Patch) (Product, error) {
	return p.svc.Update(id, patch)
}

func (p *passthroughContext) DeleteProduct(id string) error { return p.svc.Delete(id) }

func newTestApp(t *testing.T) (*fiber.App, *passthroughContext) {
	t.Helper()
	data := &passthroughContext{svc: NewService(NewKVRepository(storage.NewMemoryStore()))}
	h := NewHandler(data)
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	return app, data
}

func TestCreateProduct_HappyPath(t *testing.T) {
	app, _ := newTestApp(t)

	body := `{"name":"Silver Ring","price":150,"category":"خاتم","images":["imgA"]}`
	req := httptest.NewRequest("POST", "/api/v1/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	var created Product
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id in response")
	}

	// the created product must be retrievable through the list endpoint
	res2, _ := app.Test(httptest.NewRequest("GET", "/api/v1/products", nil))
	b, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b), created.ID) || !strings.Contains(string(b), "Silver Ring") {
		t.Fatalf("created product missing from list: %s", b)
	}
}

func TestCreateProduct_MissingImagesRejected(t *testing.T) {
	app, _ := newTestApp(t)

	body := `{"name":"Silver Ring","price":150,"category":"خاتم","images":[]}`
	req := httptest.NewRequest("POST", "/api/v1/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "images") {
		t.Fatalf("expected images validation error, got %s", b)
	}
}

func TestUpdateProduct_NonPositivePriceRejected(t *testing.T) {
	app, data := newTestApp(t)
	created, _ := data.AddProduct(Product{Name: "Ring", Price: 100, Category: CategoryRings, Images: []string{"img"}})

	req := httptest.NewRequest("PUT", "/api/v1/product/"+created.ID, strings.NewReader(`{"price":0}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}

	// the stored product is untouched
	got := data.Products()[0]
	if got.Price != 100 {
		t.Fatalf("price changed despite rejected patch: %v", got.Price)
	}
}

func TestUpdateProduct_UnknownIDReturns404(t *testing.T) {
	app, _ := newTestApp(t)
	req := httptest.NewRequest("PUT", "/api/v1/product/missing", strings.NewReader(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func TestDeleteProduct_UnknownIDStillSucceeds(t *testing.T) {
	app, _ := newTestApp(t)
	res, _ := app.Test(httptest.NewRequest("DELETE", "/api/v1/product/missing", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected idempotent delete to return 200, got %d", res.StatusCode)
	}
}
