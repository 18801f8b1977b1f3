package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"profilku_backend/internals/features/blogs/model"
	helperOSS "profilku_backend/internals/helpers/oss"
	"profilku_backend/internals/middlewares"
)

func newBlogTestApp(t *testing.T, blob helperOSS.BlobService) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.BlogPostModel{}))

	ctrl := NewBlogPostController(db, blob)

	app := fiber.New()
	app.Use(middlewares.BlobTokenMiddleware())
	app.Get("/api/blogs", ctrl.GetAll)
	app.Post("/api/blogs", ctrl.Create)
	app.Put("/api/blogs", ctrl.Update)
	app.Delete("/api/blogs", ctrl.Delete)
	return app, db
}

func blogMultipartReq(t *testing.T, method, target string, fields map[string]string, files map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for field, filename := range files {
		fw, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte("dummy-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("X-Blob-Token", "test-token")
	return req
}

func decodeData(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &env), "body=%s", body)
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func TestBlogList_NewestFirst(t *testing.T) {
	app, db := newBlogTestApp(t, &helperOSS.MockBlobService{})

	older := model.BlogPostModel{
		BlogPostTitle: "Lama", BlogPostContent: "isi", BlogPostAuthorName: "a",
		BlogPostImageURL: "https://cdn.example/uploads/1.webp",
		BlogPostDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := model.BlogPostModel{
		BlogPostTitle: "Baru", BlogPostContent: "isi", BlogPostAuthorName: "a",
		BlogPostImageURL: "https://cdn.example/uploads/2.webp",
		BlogPostDate:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/blogs", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var list []struct {
		BlogPostTitle string `json:"blog_post_title"`
	}
	decodeData(t, resp, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "Baru", list[0].BlogPostTitle)
	assert.Equal(t, "Lama", list[1].BlogPostTitle)
}

func TestBlogUpdate_WithoutNewImageKeepsURL(t *testing.T) {
	deletes := 0
	blob := &helperOSS.MockBlobService{
		DeleteByPublicURLFn: func(ctx context.Context, token, publicURL string) error {
			deletes++
			return nil
		},
	}
	app, db := newBlogTestApp(t, blob)

	seed := model.BlogPostModel{
		BlogPostTitle: "Judul", BlogPostContent: "isi", BlogPostAuthorName: "a",
		BlogPostImageURL: "https://cdn.example/uploads/tetap.webp",
	}
	require.NoError(t, db.Create(&seed).Error)

	resp, err := app.Test(blogMultipartReq(t, fiber.MethodPut,
		fmt.Sprintf("/api/blogs?id=%d", seed.BlogPostID),
		map[string]string{"title": "Judul Baru", "content": "isi baru", "authorName": "b"},
		nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, deletes, "tanpa file baru tidak ada aset yang dihapus")

	var got model.BlogPostModel
	require.NoError(t, db.First(&got, seed.BlogPostID).Error)
	assert.Equal(t, "Judul Baru", got.BlogPostTitle)
	assert.Equal(t, "https://cdn.example/uploads/tetap.webp", got.BlogPostImageURL)
}

func TestBlogUpdate_WithNewImageRotatesAsset(t *testing.T) {
	var deleted []string
	blob := &helperOSS.MockBlobService{
		UploadImageFn: func(ctx context.Context, token, dir string, fh *multipart.FileHeader) (string, error) {
			return "https://cdn.example/uploads/baru.webp", nil
		},
		DeleteByPublicURLFn: func(ctx context.Context, token, publicURL string) error {
			deleted = append(deleted, publicURL)
			return nil
		},
	}
	app, db := newBlogTestApp(t, blob)

	seed := model.BlogPostModel{
		BlogPostTitle: "Judul", BlogPostContent: "isi", BlogPostAuthorName: "a",
		BlogPostImageURL: "https://cdn.example/uploads/lama.webp",
	}
	require.NoError(t, db.Create(&seed).Error)

	resp, err := app.Test(blogMultipartReq(t, fiber.MethodPut,
		fmt.Sprintf("/api/blogs?id=%d", seed.BlogPostID),
		map[string]string{"title": "Judul", "content": "isi", "authorName": "a"},
		map[string]string{"imageFile": "baru.png"}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"https://cdn.example/uploads/lama.webp"}, deleted)

	var got model.BlogPostModel
	require.NoError(t, db.First(&got, seed.BlogPostID).Error)
	assert.Equal(t, "https://cdn.example/uploads/baru.webp", got.BlogPostImageURL)
}

func TestBlogCreate_ValidationBeforeUpload(t *testing.T) {
	uploads := 0
	blob := &helperOSS.MockBlobService{
		UploadImageFn: func(ctx context.Context, token, dir string, fh *multipart.FileHeader) (string, error) {
			uploads++
			return "https://cdn.example/uploads/x.webp", nil
		},
	}
	app, db := newBlogTestApp(t, blob)

	// title terlalu pendek → validasi gagal sebelum upload
	resp, err := app.Test(blogMultipartReq(t, fiber.MethodPost, "/api/blogs",
		map[string]string{"title": "ab", "content": "isi", "authorName": "a"},
		map[string]string{"imageFile": "x.png"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, uploads)

	var count int64
	db.Model(&model.BlogPostModel{}).Count(&count)
	assert.EqualValues(t, 0, count)
}
