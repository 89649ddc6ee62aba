package settings

import (
	"github.com/gofiber/fiber/v2"
)

// DataContext is the settings slice of the synchronization context.
type DataContext interface {
	Settings() *Settings
	FetchSettings() (Settings, error)
	UpdateSettings(patch Patch) (Settings, error)
}

type Handler struct {
	data DataContext
}

func NewHandler(data DataContext) *Handler {
	return &Handler{data: data}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/settings", h.getSettings)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Put("/api/v1/settings", h.updateSettings)
}

func (h *Handler) getSettings(c *fiber.Ctx) error {
	if s := h.data.Settings(); s != nil {
		return c.JSON(*s)
	}
	// mirror not loaded yet, go to storage
	s, err := h.data.FetchSettings()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(s)
}

func (h *Handler) updateSettings(c *fiber.Ctx) error {
	patch := new(Patch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.data.UpdateSettings(*patch)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(updated)
}
