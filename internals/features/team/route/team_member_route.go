package route

import (
	"profilku_backend/internals/features/team/controller"
	helperOSS "profilku_backend/internals/helpers/oss"
	"profilku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func TeamMemberRoutes(api fiber.Router, db *gorm.DB, blob helperOSS.BlobService) {
	ctrl := controller.NewTeamMemberController(db, blob)

	group := api.Group("/team")
	group.Get("/", ctrl.Get)
	group.Post("/", middlewares.UploadRateLimiter(), ctrl.Create)
	group.Put("/", middlewares.UploadRateLimiter(), ctrl.Update)
	group.Delete("/", ctrl.Delete)
}
