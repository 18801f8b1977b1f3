package controller

import (
	"mime/multipart"

	"profilku_backend/internals/features/videotestimonials/dto"
	"profilku_backend/internals/features/videotestimonials/model"
	helper "profilku_backend/internals/helpers"
	helperOSS "profilku_backend/internals/helpers/oss"
	"profilku_backend/internals/storecrud"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateVideoTestimonial = validator.New()

type VideoTestimonialController struct {
	Store *storecrud.Store[model.VideoTestimonialModel]
}

func NewVideoTestimonialController(db *gorm.DB, blob helperOSS.BlobService) *VideoTestimonialController {
	st := storecrud.New(db, blob, []storecrud.AssetField[model.VideoTestimonialModel]{
		{
			Field:    "videoUrl",
			Dir:      "videos",
			Kind:     storecrud.AssetRaw,
			Required: true,
			Label:    "Video",
			Get:      func(m *model.VideoTestimonialModel) string { return m.VideoTestimonialVideoURL },
			Set:      func(m *model.VideoTestimonialModel, u string) { m.VideoTestimonialVideoURL = u },
		},
		{
			Field:    "thumbnailUrl",
			Dir:      "thumbnails",
			Kind:     storecrud.AssetImage,
			Required: true,
			Label:    "Thumbnail",
			Get:      func(m *model.VideoTestimonialModel) string { return m.VideoTestimonialThumbnail },
			Set:      func(m *model.VideoTestimonialModel, u string) { m.VideoTestimonialThumbnail = u },
		},
	})
	return &VideoTestimonialController{Store: st}
}

func collectVideoFiles(c *fiber.Ctx) map[string]*multipart.FileHeader {
	files := map[string]*multipart.FileHeader{}
	if fh, _ := helperOSS.GetFile(c, "videoUrl"); fh != nil {
		files["videoUrl"] = fh
	}
	if fh, _ := helperOSS.GetFile(c, "thumbnailUrl"); fh != nil {
		files["thumbnailUrl"] = fh
	}
	return files
}

// =============================
// 📄 Get All Video Testimonials
// =============================
func (ctrl *VideoTestimonialController) GetAll(c *fiber.Ctx) error {
	items, err := ctrl.Store.List(c.Context())
	if err != nil {
		return helper.FromError(c, err)
	}
	result := make([]dto.VideoTestimonialResponse, 0, len(items))
	for _, it := range items {
		result = append(result, dto.ToVideoTestimonialResponse(it))
	}
	return helper.JsonList(c, "", result)
}

// =============================
// ➕ Create Video Testimonial
// =============================
func (ctrl *VideoTestimonialController) Create(c *fiber.Ctx) error {
	var req dto.CreateVideoTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateVideoTestimonial.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	token, err := helper.RequireBlobToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.Store.Create(c.Context(), &m, collectVideoFiles(c), token); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Video testimonial berhasil dibuat", dto.ToVideoTestimonialResponse(m))
}

// =============================
// 🔄 Update Video Testimonial (PATCH — semua field opsional)
// =============================
func (ctrl *VideoTestimonialController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDQuery(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.UpdateVideoTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	token, err := helper.RequireBlobToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	m, err := ctrl.Store.Update(c.Context(), id, req.ApplyPatch, collectVideoFiles(c), token)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Video testimonial berhasil diperbarui", dto.ToVideoTestimonialResponse(*m))
}

// =============================
// 🗑️ Delete Video Testimonial
// =============================
func (ctrl *VideoTestimonialController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDQuery(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	token, err := helper.RequireBlobToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := ctrl.Store.Delete(c.Context(), id, token); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonDeleted(c, "Video testimonial berhasil dihapus", fiber.Map{"video_testimonial_id": id})
}
