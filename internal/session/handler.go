package session

import (
	"github.com/gofiber/fiber/v2"
)

// DataContext lets the handler flip the synchronization context's auth gate
// together with the persisted flag.
type DataContext interface {
	SetAdminAuthenticated(v bool) error
	IsAdminAuthenticated() bool
}

type Handler struct {
	manager *Manager
	data    DataContext
}

func NewHandler(manager *Manager, data DataContext) *Handler {
	return &Handler{manager: manager, data: data}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/admin/login", h.login)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/admin/logout", h.logout)
	app.Get("/api/v1/admin/session", h.sessionState)
}

type loginRequest struct {
	Password string `json:"password"`
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.manager.Verify(payload.Password); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid password"})
	}

	if err := h.data.SetAdminAuthenticated(true); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	signed, err := h.manager.IssueToken()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   signed,
	})
}

func (h *Handler) logout(c *fiber.Ctx) error {
	if err := h.data.SetAdminAuthenticated(false); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}

func (h *Handler) sessionState(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"isAdminAuthenticated": h.data.IsAdminAuthenticated()})
}
