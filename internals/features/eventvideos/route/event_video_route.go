package route

import (
	"profilku_backend/internals/features/eventvideos/controller"
	helperOSS "profilku_backend/internals/helpers/oss"
	"profilku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EventVideoRoutes mendaftarkan endpoint CRUD video event.
func EventVideoRoutes(api fiber.Router, db *gorm.DB, blob helperOSS.BlobService) {
	ctrl := controller.NewEventVideoController(db, blob)

	group := api.Group("/event-videos")
	group.Get("/", ctrl.GetAll)
	group.Post("/", middlewares.UploadRateLimiter(), ctrl.Create)
	group.Patch("/", middlewares.UploadRateLimiter(), ctrl.Update)
	group.Delete("/", ctrl.Delete)
}
