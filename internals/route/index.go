package route

import (
	"log"

	blogRoute "profilku_backend/internals/features/blogs/route"
	eventVideoRoute "profilku_backend/internals/features/eventvideos/route"
	partnerRoute "profilku_backend/internals/features/partners/route"
	serviceRoute "profilku_backend/internals/features/services/route"
	solutionRoute "profilku_backend/internals/features/solutions/route"
	teamRoute "profilku_backend/internals/features/team/route"
	testimonialRoute "profilku_backend/internals/features/testimonials/route"
	videoTestimonialRoute "profilku_backend/internals/features/videotestimonials/route"
	helperOSS "profilku_backend/internals/helpers/oss"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes mendaftarkan semua endpoint konten di bawah /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	var blob helperOSS.BlobService
	if svc, err := helperOSS.NewOSSBlobServiceFromEnv(""); err != nil {
		// server tetap jalan; endpoint upload akan balas 500 sampai ENV diisi
		log.Printf("[OSS] blob storage belum terkonfigurasi: %v", err)
	} else {
		blob = svc
	}

	api := app.Group("/api")

	blogRoute.BlogPostRoutes(api, db, blob)
	testimonialRoute.TestimonialRoutes(api, db, blob)
	videoTestimonialRoute.VideoTestimonialRoutes(api, db, blob)
	eventVideoRoute.EventVideoRoutes(api, db, blob)
	partnerRoute.PartnerRoutes(api, db, blob)
	serviceRoute.ServiceRoutes(api, db, blob)
	solutionRoute.SolutionRoutes(api, db, blob)
	teamRoute.TeamMemberRoutes(api, db, blob)
}
