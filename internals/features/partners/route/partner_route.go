package route

import (
	"profilku_backend/internals/features/partners/controller"
	helperOSS "profilku_backend/internals/helpers/oss"
	"profilku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PartnerRoutes(api fiber.Router, db *gorm.DB, blob helperOSS.BlobService) {
	ctrl := controller.NewPartnerController(db, blob)

	group := api.Group("/partners")
	group.Get("/", ctrl.GetAll)
	group.Post("/", middlewares.UploadRateLimiter(), ctrl.Create)
	group.Put("/", middlewares.UploadRateLimiter(), ctrl.Update)
	group.Delete("/", ctrl.Delete)
}
