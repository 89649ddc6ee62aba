package assistant

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/assistant/description", h.describe)
	app.Post("/api/v1/assistant/styling-tips", h.stylingTips)
}

func (h *Handler) describe(c *fiber.Ctx) error {
	req := new(DescribeRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if req.ProductName == "" || req.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "productName and category are required"})
	}

	text, err := h.client.Describe(*req)
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(fiber.Map{"text": text})
}

func (h *Handler) stylingTips(c *fiber.Ctx) error {
	req := new(TipsRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if req.ProductName == "" || req.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "productName and category are required"})
	}

	text, err := h.client.StylingTips(*req)
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(fiber.Map{"text": text})
}

func (h *Handler) serviceError(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrUnavailable) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "التوليد التلقائي غير متاح حاليًا"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
}
