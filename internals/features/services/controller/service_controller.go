package controller

import (
	"mime/multipart"

	"profilku_backend/internals/features/services/dto"
	"profilku_backend/internals/features/services/model"
	helper "profilku_backend/internals/helpers"
	helperOSS "profilku_backend/internals/helpers/oss"
	"profilku_backend/internals/storecrud"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateService = validator.New()

type ServiceController struct {
	Store *storecrud.Store[model.ServiceModel]
}

func NewServiceController(db *gorm.DB, blob helperOSS.BlobService) *ServiceController {
	st := storecrud.New(db, blob, []storecrud.AssetField[model.ServiceModel]{
		{
			Field:    "image",
			Dir:      "uploads",
			Kind:     storecrud.AssetImage,
			Required: true,
			Label:    "Gambar layanan",
			Get:      func(m *model.ServiceModel) string { return m.ServiceImageURL },
			Set:      func(m *model.ServiceModel, u string) { m.ServiceImageURL = u },
		},
	})
	return &ServiceController{Store: st}
}

func collectServiceFiles(c *fiber.Ctx) map[string]*multipart.FileHeader {
	files := map[string]*multipart.FileHeader{}
	if fh, _ := helperOSS.GetFile(c, "image"); fh != nil {
		files["image"] = fh
	}
	return files
}

// =============================
// 📄 Get All Services
// =============================
func (ctrl *ServiceController) GetAll(c *fiber.Ctx) error {
	items, err := ctrl.Store.List(c.Context())
	if err != nil {
		return helper.FromError(c, err)
	}
	result := make([]dto.ServiceResponse, 0, len(items))
	for _, it := range items {
		result = append(result, dto.ToServiceResponse(it))
	}
	return helper.JsonList(c, "", result)
}

// =============================
// ➕ Create Service
// =============================
func (ctrl *ServiceController) Create(c *fiber.Ctx) error {
	var req dto.CreateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateService.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	token, err := helper.RequireBlobToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.Store.Create(c.Context(), &m, collectServiceFiles(c), token); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Layanan berhasil dibuat", dto.ToServiceResponse(m))
}

// =============================
// 🔄 Update Service
// =============================
func (ctrl *ServiceController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDQuery(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.UpdateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	token, err := helper.RequireBlobToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	m, err := ctrl.Store.Update(c.Context(), id, req.ApplyPatch, collectServiceFiles(c), token)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Layanan berhasil diperbarui", dto.ToServiceResponse(*m))
}

// =============================
// 🗑️ Delete Service
// =============================
func (ctrl *ServiceController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "Layanan berhasil dihapus", fiber.Map{"service_id": id})
}
