package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"profilku_backend/internals/configs"
	blogModel "profilku_backend/internals/features/blogs/model"
	eventVideoModel "profilku_backend/internals/features/eventvideos/model"
	partnerModel "profilku_backend/internals/features/partners/model"
	serviceModel "profilku_backend/internals/features/services/model"
	solutionModel "profilku_backend/internals/features/solutions/model"
	teamModel "profilku_backend/internals/features/team/model"
	testimonialModel "profilku_backend/internals/features/testimonials/model"
	videoTestimonialModel "profilku_backend/internals/features/videotestimonials/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=profilku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan AutoMigrate untuk semua model konten.
// Certificate ikut ter-migrasi lewat relasi TeamMember (FK cascade).
func Migrate() {
	if err := DB.AutoMigrate(
		&blogModel.BlogPostModel{},
		&testimonialModel.TestimonialModel{},
		&videoTestimonialModel.VideoTestimonialModel{},
		&eventVideoModel.EventVideoModel{},
		&partnerModel.PartnerModel{},
		&serviceModel.ServiceModel{},
		&solutionModel.SolutionModel{},
		&teamModel.TeamMemberModel{},
		&teamModel.CertificateModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrasi: %v", err)
	}
	log.Println("✅ Migrasi selesai.")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
