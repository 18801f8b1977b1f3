package controller

import (
	"mime/multipart"

	"profilku_backend/internals/features/partners/dto"
	"profilku_backend/internals/features/partners/model"
	helper "profilku_backend/internals/helpers"
	helperOSS "profilku_backend/internals/helpers/oss"
	"profilku_backend/internals/storecrud"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PartnerController struct {
	Store *storecrud.Store[model.PartnerModel]
}

func NewPartnerController(db *gorm.DB, blob helperOSS.BlobService) *PartnerController {
	st := storecrud.New(db, blob, []storecrud.AssetField[model.PartnerModel]{
		{
			Field:    "imageFile",
			Dir:      "uploads",
			Kind:     storecrud.AssetImage,
			Required: true,
			Label:    "Logo partner",
			Get:      func(m *model.PartnerModel) string { return m.PartnerImageURL },
			Set:      func(m *model.PartnerModel, u string) { m.PartnerImageURL = u },
		},
	})
	return &PartnerController{Store: st}
}

func collectPartnerFiles(c *fiber.Ctx) map[string]*multipart.FileHeader {
	files := map[string]*multipart.FileHeader{}
	if fh, _ := helperOSS.GetFile(c, "imageFile"); fh != nil {
		files["imageFile"] = fh
	}
	return files
}

// =============================
// 📄 Get All Partners
// =============================
func (ctrl *PartnerController) GetAll(c *fiber.Ctx) error {
	items, err := ctrl.Store.List(c.Context())
	if err != nil {
		return helper.FromError(c, err)
	}
	result := make([]dto.PartnerResponse, 0, len(items))
	for _, it := range items {
		result = append(result, dto.ToPartnerResponse(it))
	}
	return helper.JsonList(c, "", result)
}

// =============================
// ➕ Create Partner (hanya logo, tanpa field teks)
// =============================
func (ctrl *PartnerController) Create(c *fiber.Ctx) error {
	token, err := helper.RequireBlobToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	var m model.PartnerModel
	if err := ctrl.Store.Create(c.Context(), &m, collectPartnerFiles(c), token); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Partner berhasil dibuat", dto.ToPartnerResponse(m))
}

// =============================
// 🔄 Update Partner (ganti logo)
// =============================
func (ctrl *PartnerController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDQuery(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	token, err := helper.RequireBlobToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	m, err := ctrl.Store.Update(c.Context(), id, nil, collectPartnerFiles(c), token)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Partner berhasil diperbarui", dto.ToPartnerResponse(*m))
}

// =============================
// 🗑️ Delete Partner
// =============================
func (ctrl *PartnerController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "Partner berhasil dihapus", fiber.Map{"partner_id": id})
}
