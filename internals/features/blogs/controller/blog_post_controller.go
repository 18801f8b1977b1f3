package controller

import (
	"mime/multipart"

	"profilku_backend/internals/features/blogs/dto"
	"profilku_backend/internals/features/blogs/model"
	helper "profilku_backend/internals/helpers"
	helperOSS "profilku_backend/internals/helpers/oss"
	"profilku_backend/internals/storecrud"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateBlogPost = validator.New()

type BlogPostController struct {
	Store *storecrud.Store[model.BlogPostModel]
}

func NewBlogPostController(db *gorm.DB, blob helperOSS.BlobService) *BlogPostController {
	st := storecrud.New(db, blob, []storecrud.AssetField[model.BlogPostModel]{{
		Field:    "imageFile",
		Dir:      "uploads",
		Kind:     storecrud.AssetImage,
		Required: true,
		Label:    "Gambar",
		Get:      func(m *model.BlogPostModel) string { return m.BlogPostImageURL },
		Set:      func(m *model.BlogPostModel, u string) { m.BlogPostImageURL = u },
	}})
	st.DefaultOrder = "blog_post_date DESC" // terbaru duluan
	return &BlogPostController{Store: st}
}

// =============================
// 📄 Get All Blog Posts
// =============================
func (ctrl *BlogPostController) GetAll(c *fiber.Ctx) error {
	posts, err := ctrl.Store.List(c.Context())
	if err != nil {
		return helper.FromError(c, err)
	}
	result := make([]dto.BlogPostResponse, 0, len(posts))
	for _, p := range posts {
		result = append(result, dto.ToBlogPostResponse(p))
	}
	return helper.JsonList(c, "", result)
}

// =============================
// ➕ Create Blog Post
// =============================
func (ctrl *BlogPostController) Create(c *fiber.Ctx) error {
	var req dto.CreateBlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateBlogPost.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	token, err := helper.RequireBlobToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	files := map[string]*multipart.FileHeader{}
	if fh, _ := helperOSS.GetFile(c, "imageFile"); fh != nil {
		files["imageFile"] = fh
	}

	m := req.ToModel()
	if err := ctrl.Store.Create(c.Context(), &m, files, token); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Blog post berhasil dibuat", dto.ToBlogPostResponse(m))
}

// =============================
// 🔄 Update Blog Post
// =============================
func (ctrl *BlogPostController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDQuery(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.UpdateBlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateBlogPost.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	token, err := helper.RequireBlobToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	files := map[string]*multipart.FileHeader{}
	if fh, _ := helperOSS.GetFile(c, "imageFile"); fh != nil {
		files["imageFile"] = fh
	}

	m, err := ctrl.Store.Update(c.Context(), id, req.ApplyPatch, files, token)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Blog post berhasil diperbarui", dto.ToBlogPostResponse(*m))
}

// =============================
// 🗑️ Delete Blog Post
// =============================
func (ctrl *BlogPostController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "Blog post dan gambarnya berhasil dihapus", fiber.Map{"blog_post_id": id})
}
