package imaging

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/images", h.uploadImage)
}

func (h *Handler) uploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "file is required"})
	}

	contentType := file.Header.Get("Content-Type")
	if err := Validate(contentType, file.Size); err != nil {
		return h.validationError(c, err)
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	defer f.Close()
	raw, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	url, err := DataURL(raw, contentType)
	if err != nil {
		return h.validationError(c, err)
	}
	return c.JSON(fiber.Map{"imageUrl": url})
}

func (h *Handler) validationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrUnsupportedType):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "نوع الصورة غير مدعوم. يرجى استخدام JPG, PNG, أو WebP"})
	case errors.Is(err, ErrTooLarge):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "حجم الصورة كبير جداً. الحد الأقصى 5 ميجابايت"})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
}
