package controller

import (
	"mime/multipart"

	"profilku_backend/internals/features/solutions/dto"
	"profilku_backend/internals/features/solutions/model"
	helper "profilku_backend/internals/helpers"
	helperOSS "profilku_backend/internals/helpers/oss"
	"profilku_backend/internals/storecrud"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateSolution = validator.New()

type SolutionController struct {
	Store *storecrud.Store[model.SolutionModel]
}

func NewSolutionController(db *gorm.DB, blob helperOSS.BlobService) *SolutionController {
	st := storecrud.New(db, blob, []storecrud.AssetField[model.SolutionModel]{
		{
			Field:    "imageFile",
			Dir:      "uploads",
			Kind:     storecrud.AssetImage,
			Required: true,
			Label:    "Gambar solusi",
			Get:      func(m *model.SolutionModel) string { return m.SolutionImageURL },
			Set:      func(m *model.SolutionModel, u string) { m.SolutionImageURL = u },
		},
	})
	return &SolutionController{Store: st}
}

func collectSolutionFiles(c *fiber.Ctx) map[string]*multipart.FileHeader {
	files := map[string]*multipart.FileHeader{}
	if fh, _ := helperOSS.GetFile(c, "imageFile"); fh != nil {
		files["imageFile"] = fh
	}
	return files
}

// =============================
// 📄 Get All Solutions
// =============================
func (ctrl *SolutionController) GetAll(c *fiber.Ctx) error {
	items, err := ctrl.Store.List(c.Context())
	if err != nil {
		return helper.FromError(c, err)
	}
	result := make([]dto.SolutionResponse, 0, len(items))
	for _, it := range items {
		result = append(result, dto.ToSolutionResponse(it))
	}
	return helper.JsonList(c, "", result)
}

// =============================
// ➕ Create Solution
// =============================
func (ctrl *SolutionController) Create(c *fiber.Ctx) error {
	var req dto.CreateSolutionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateSolution.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	token, err := helper.RequireBlobToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.Store.Create(c.Context(), &m, collectSolutionFiles(c), token); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Solusi berhasil dibuat", dto.ToSolutionResponse(m))
}

// =============================
// 🔄 Update Solution
// =============================
func (ctrl *SolutionController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDQuery(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.UpdateSolutionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	token, err := helper.RequireBlobToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	m, err := ctrl.Store.Update(c.Context(), id, req.ApplyPatch, collectSolutionFiles(c), token)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Solusi berhasil diperbarui", dto.ToSolutionResponse(*m))
}

// =============================
// 🗑️ Delete Solution
// =============================
func (ctrl *SolutionController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "Solusi berhasil dihapus", fiber.Map{"solution_id": id})
}
