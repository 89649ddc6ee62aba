package order

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// DataContext is the slice of the synchronization context the order handler
// works against. The mirrored order list is only populated for authenticated
// admin sessions; checkout never touches it.
type DataContext interface {
	Orders() []Order
	FetchOrders() ([]Order, error)
	AddOrder(d Draft) (Order, error)
	UpdateOrderStatus(id string, status Status) (Order, error)
	AdvanceOrderStatus(id string) (Order, error)
	IsAdminAuthenticated() bool
}

type Handler struct {
	data DataContext
}

func NewHandler(data DataContext) *Handler {
	return &Handler{data: data}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	// checkout is open to customers
	app.Post("/api/v1/orders", h.createOrder)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/orders", h.getOrders)
	app.Put("/api/v1/order/:id/status", h.updateStatus)
	app.Post("/api/v1/order/:id/advance", h.advanceStatus)
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	draft := new(Draft)
	if err := c.BodyParser(draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if ves := ValidateDraft(*draft); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	created, err := h.data.AddOrder(*draft)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	if !h.data.IsAdminAuthenticated() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin session required"})
	}
	if c.Query("refresh") == "1" {
		orders, err := h.data.FetchOrders()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
		return c.JSON(orders)
	}
	return c.JSON(h.data.Orders())
}

type updateStatusRequest struct {
	Status Status `json:"status"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	payload := new(updateStatusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if !payload.Status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown status"})
	}

	updated, err := h.data.UpdateOrderStatus(c.Params("id"), payload.Status)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(updated)
}

func (h *Handler) advanceStatus(c *fiber.Ctx) error {
	updated, err := h.data.AdvanceOrderStatus(c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(updated)
}
