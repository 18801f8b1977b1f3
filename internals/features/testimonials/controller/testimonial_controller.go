package controller

import (
	"mime/multipart"

	"profilku_backend/internals/features/testimonials/dto"
	"profilku_backend/internals/features/testimonials/model"
	helper "profilku_backend/internals/helpers"
	helperOSS "profilku_backend/internals/helpers/oss"
	"profilku_backend/internals/storecrud"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateTestimonial = validator.New()

type TestimonialController struct {
	Store *storecrud.Store[model.TestimonialModel]
}

func NewTestimonialController(db *gorm.DB, blob helperOSS.BlobService) *TestimonialController {
	st := storecrud.New(db, blob, []storecrud.AssetField[model.TestimonialModel]{{
		Field:    "image",
		Dir:      "uploads",
		Kind:     storecrud.AssetImage,
		Required: true,
		Label:    "Foto",
		Get:      func(m *model.TestimonialModel) string { return m.TestimonialImageURL },
		Set:      func(m *model.TestimonialModel, u string) { m.TestimonialImageURL = u },
	}})
	return &TestimonialController{Store: st}
}

// id testimonial boleh datang dari query ATAU form body (kontrak form admin lama)
func testimonialID(c *fiber.Ctx) (uint, error) {
	if id, err := helper.ParseIDQuery(c, "id"); err == nil {
		return id, nil
	}
	return helper.ParseIDForm(c, "id")
}

// =============================
// 📄 Get All Testimonials
// =============================
func (ctrl *TestimonialController) GetAll(c *fiber.Ctx) error {
	items, err := ctrl.Store.List(c.Context())
	if err != nil {
		return helper.FromError(c, err)
	}
	result := make([]dto.TestimonialResponse, 0, len(items))
	for _, it := range items {
		result = append(result, dto.ToTestimonialResponse(it))
	}
	return helper.JsonList(c, "", result)
}

// =============================
// ➕ Create Testimonial
// =============================
func (ctrl *TestimonialController) Create(c *fiber.Ctx) error {
	var req dto.CreateTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateTestimonial.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	token, err := helper.RequireBlobToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	files := map[string]*multipart.FileHeader{}
	if fh, _ := helperOSS.GetFile(c, "image"); fh != nil {
		files["image"] = fh
	}

	m := req.ToModel()
	if err := ctrl.Store.Create(c.Context(), &m, files, token); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Testimonial berhasil dibuat", dto.ToTestimonialResponse(m))
}

// =============================
// 🔄 Update Testimonial
// =============================
func (ctrl *TestimonialController) Update(c *fiber.Ctx) error {
	id, err := testimonialID(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.UpdateTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateTestimonial.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	token, err := helper.RequireBlobToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	files := map[string]*multipart.FileHeader{}
	if fh, _ := helperOSS.GetFile(c, "image"); fh != nil {
		files["image"] = fh
	}

	m, err := ctrl.Store.Update(c.Context(), id, req.ApplyPatch, files, token)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Testimonial berhasil diperbarui", dto.ToTestimonialResponse(*m))
}

// =============================
// 🗑️ Delete Testimonial
// =============================
func (ctrl *TestimonialController) Delete(c *fiber.Ctx) error {
	id, err := testimonialID(c)
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
	return helper.JsonDeleted(c, "Testimonial berhasil dihapus", fiber.Map{"testimonial_id": id})
}
