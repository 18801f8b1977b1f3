package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ParseIDQuery membaca id numerik dari query param (?id=, ?certificateId=, dst).
// Error-nya sudah berupa *fiber.Error 400 siap dikembalikan ke caller.
func ParseIDQuery(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, fiber.NewError(fiber.StatusBadRequest, name+" wajib diisi")
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, name+" tidak valid")
	}
	return uint(n), nil
}

// ParseIDForm seperti ParseIDQuery tapi membaca dari form body
// (testimonial lama mengirim id di body, bukan query).
func ParseIDForm(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	if raw == "" {
		return 0, fiber.NewError(fiber.StatusBadRequest, name+" wajib diisi")
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, name+" tidak valid")
	}
	return uint(n), nil
}

// BlobToken mengambil token hasil resolve middleware.
func BlobToken(c *fiber.Ctx) string {
	if v, ok := c.Locals("blob_token").(string); ok {
		return v
	}
	return ""
}

// RequireBlobToken: handler mutasi menolak request tanpa token sama sekali
// (tidak di form/header/query dan ENV fallback kosong).
func RequireBlobToken(c *fiber.Ctx) (string, error) {
	token := BlobToken(c)
	if token == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "Token blob wajib diisi")
	}
	return token, nil
}
