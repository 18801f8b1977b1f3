package route

import (
	"profilku_backend/internals/features/solutions/controller"
	helperOSS "profilku_backend/internals/helpers/oss"
	"profilku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SolutionRoutes(api fiber.Router, db *gorm.DB, blob helperOSS.BlobService) {
	ctrl := controller.NewSolutionController(db, blob)

	group := api.Group("/solutions")
	group.Get("/", ctrl.GetAll)
	group.Post("/", middlewares.UploadRateLimiter(), ctrl.Create)
	group.Put("/", middlewares.UploadRateLimiter(), ctrl.Update)
	group.Delete("/", ctrl.Delete)
}
