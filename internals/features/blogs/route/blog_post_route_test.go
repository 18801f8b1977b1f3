package route

import (
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	helperOSS "profilku_backend/internals/helpers/oss"
)

// endpoint upload blog dipasangi limiter khusus upload (20/menit per IP)
func TestBlogUploadEndpointsRateLimited(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	app := fiber.New()
	api := app.Group("/api")
	BlogPostRoutes(api, db, &helperOSS.MockBlobService{})

	last := 0
	for i := 0; i < 21; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/api/blogs", nil))
		require.NoError(t, err)
		last = resp.StatusCode
	}
	assert.Equal(t, fiber.StatusTooManyRequests, last)
}
