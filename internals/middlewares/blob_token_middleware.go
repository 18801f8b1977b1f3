package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"profilku_backend/internals/configs"
)

// Kunci Locals untuk token blob hasil resolve.
const BlobTokenLocal = "blob_token"

// BlobTokenMiddleware menyatukan sumber token blob yang dulunya beda-beda
// per entity (form field / header / query) menjadi satu urutan baku:
//  1. form field "blobToken" (multipart / urlencoded)
//  2. header "X-Blob-Token"
//  3. query "?blobToken="
//  4. fallback BLOB_READ_WRITE_TOKEN dari ENV
//
// Token disimpan di c.Locals(BlobTokenLocal); handler mutasi yang wajib token
// tinggal baca lewat helper.BlobToken(c).
func BlobTokenMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := strings.TrimSpace(c.FormValue("blobToken"))
		if token == "" {
			token = strings.TrimSpace(c.Get("X-Blob-Token"))
		}
		if token == "" {
			token = strings.TrimSpace(c.Query("blobToken"))
		}
		if token == "" {
			token = configs.DefaultBlobToken
		}
		c.Locals(BlobTokenLocal, token)
		return c.Next()
	}
}
