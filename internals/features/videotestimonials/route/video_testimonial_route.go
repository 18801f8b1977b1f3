package route

import (
	"profilku_backend/internals/features/videotestimonials/controller"
	helperOSS "profilku_backend/internals/helpers/oss"
	middlewares "profilku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func VideoTestimonialRoutes(api fiber.Router, db *gorm.DB, blob helperOSS.BlobService) {
	ctrl := controller.NewVideoTestimonialController(db, blob)

	vt := api.Group("/video-testimonials")
	vt.Get("/", ctrl.GetAll)                                     // 📄 Semua video testimonial
	vt.Post("/", middlewares.UploadRateLimiter(), ctrl.Create)   // ➕ Buat (upload video, dibatasi)
	vt.Patch("/", middlewares.UploadRateLimiter(), ctrl.Update)  // 🔄 Update parsial (?id=)
	vt.Delete("/", ctrl.Delete)                                  // 🗑️ Hapus (?id=)
}
