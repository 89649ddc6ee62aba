package backup

import (
	"github.com/gofiber/fiber/v2"
)

// Reloader re-fetches the synchronization context after storage was
// overwritten behind its back.
type Reloader interface {
	Reload() error
}

type Handler struct {
	service  *Service
	reloader Reloader
}

func NewHandler(service *Service, reloader Reloader) *Handler {
	return &Handler{service: service, reloader: reloader}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/admin/export", h.exportAll)
	app.Post("/api/v1/admin/import", h.importAll)
	app.Post("/api/v1/admin/clear", h.clearAll)
}

func (h *Handler) exportAll(c *fiber.Ctx) error {
	bundle, err := h.service.ExportAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	c.Set("Content-Disposition", `attachment; filename="maloka-backup.json"`)
	return c.JSON(bundle)
}

func (h *Handler) importAll(c *fiber.Ctx) error {
	bundle := new(Bundle)
	if err := c.BodyParser(bundle); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.service.ImportAll(*bundle); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.reloader.Reload(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "import complete"})
}

func (h *Handler) clearAll(c *fiber.Ctx) error {
	if err := h.service.ClearAll(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.reloader.Reload(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "storage cleared"})
}
