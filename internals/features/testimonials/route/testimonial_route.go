package route

import (
	"profilku_backend/internals/features/testimonials/controller"
	helperOSS "profilku_backend/internals/helpers/oss"
	"profilku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func TestimonialRoutes(api fiber.Router, db *gorm.DB, blob helperOSS.BlobService) {
	ctrl := controller.NewTestimonialController(db, blob)

	testimonial := api.Group("/testimonials")
	testimonial.Get("/", ctrl.GetAll)                                    // 📄 Semua testimonial
	testimonial.Post("/", middlewares.UploadRateLimiter(), ctrl.Create)  // ➕ Buat testimonial
	testimonial.Put("/", middlewares.UploadRateLimiter(), ctrl.Update)   // 🔄 Update (?id= atau id di form)
	testimonial.Delete("/", ctrl.Delete)                                 // 🗑️ Hapus (?id= atau id di form)
}
