package route

import (
	"profilku_backend/internals/features/blogs/controller"
	helperOSS "profilku_backend/internals/helpers/oss"
	"profilku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func BlogPostRoutes(api fiber.Router, db *gorm.DB, blob helperOSS.BlobService) {
	ctrl := controller.NewBlogPostController(db, blob)

	blog := api.Group("/blogs")
	blog.Get("/", ctrl.GetAll)                                    // 📄 Semua blog post (terbaru duluan)
	blog.Post("/", middlewares.UploadRateLimiter(), ctrl.Create)  // ➕ Buat blog post
	blog.Put("/", middlewares.UploadRateLimiter(), ctrl.Update)   // 🔄 Update blog post (?id=)
	blog.Delete("/", ctrl.Delete)                                 // 🗑️ Hapus blog post (?id=)
}
