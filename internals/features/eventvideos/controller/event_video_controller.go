package controller

import (
	"mime/multipart"

	"profilku_backend/internals/features/eventvideos/dto"
	"profilku_backend/internals/features/eventvideos/model"
	helper "profilku_backend/internals/helpers"
	helperOSS "profilku_backend/internals/helpers/oss"
	"profilku_backend/internals/storecrud"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateEventVideo = validator.New()

type EventVideoController struct {
	Store *storecrud.Store[model.EventVideoModel]
}

func NewEventVideoController(db *gorm.DB, blob helperOSS.BlobService) *EventVideoController {
	st := storecrud.New(db, blob, []storecrud.AssetField[model.EventVideoModel]{
		{
			Field:    "videoUrl",
			Dir:      "videos",
			Kind:     storecrud.AssetRaw,
			Required: true,
			Label:    "Video",
			Get:      func(m *model.EventVideoModel) string { return m.EventVideoVideoURL },
			Set:      func(m *model.EventVideoModel, u string) { m.EventVideoVideoURL = u },
		},
		{
			Field:    "thumbnailUrl",
			Dir:      "thumbnails",
			Kind:     storecrud.AssetImage,
			Required: true,
			Label:    "Thumbnail",
			Get:      func(m *model.EventVideoModel) string { return m.EventVideoThumbnail },
			Set:      func(m *model.EventVideoModel, u string) { m.EventVideoThumbnail = u },
		},
	})
	return &EventVideoController{Store: st}
}

func collectEventVideoFiles(c *fiber.Ctx) map[string]*multipart.FileHeader {
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
// 📄 Get All Event Videos
// =============================
func (ctrl *EventVideoController) GetAll(c *fiber.Ctx) error {
	items, err := ctrl.Store.List(c.Context())
	if err != nil {
		return helper.FromError(c, err)
	}
	result := make([]dto.EventVideoResponse, 0, len(items))
	for _, it := range items {
		result = append(result, dto.ToEventVideoResponse(it))
	}
	return helper.JsonList(c, "", result)
}

// =============================
// ➕ Create Event Video
// =============================
func (ctrl *EventVideoController) Create(c *fiber.Ctx) error {
	var req dto.CreateEventVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateEventVideo.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	token, err := helper.RequireBlobToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.Store.Create(c.Context(), &m, collectEventVideoFiles(c), token); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Video event berhasil dibuat", dto.ToEventVideoResponse(m))
}

// =============================
// 🔄 Update Event Video (PATCH — semua field opsional)
// =============================
func (ctrl *EventVideoController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDQuery(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.UpdateEventVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	token, err := helper.RequireBlobToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	m, err := ctrl.Store.Update(c.Context(), id, req.ApplyPatch, collectEventVideoFiles(c), token)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Video event berhasil diperbarui", dto.ToEventVideoResponse(*m))
}

// =============================
// 🗑️ Delete Event Video
// =============================
func (ctrl *EventVideoController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "Video event berhasil dihapus", fiber.Map{"event_video_id": id})
}
