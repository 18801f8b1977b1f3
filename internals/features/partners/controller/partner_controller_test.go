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

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"profilku_backend/internals/configs"
	"profilku_backend/internals/features/partners/model"
	helperOSS "profilku_backend/internals/helpers/oss"
	"profilku_backend/internals/middlewares"
)

func newPartnerTestApp(t *testing.T, blob helperOSS.BlobService) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.PartnerModel{}))

	ctrl := NewPartnerController(db, blob)

	app := fiber.New()
	app.Use(middlewares.BlobTokenMiddleware())
	app.Get("/api/partners", ctrl.GetAll)
	app.Post("/api/partners", ctrl.Create)
	app.Put("/api/partners", ctrl.Update)
	app.Delete("/api/partners", ctrl.Delete)
	return app, db
}

// multipartReq menyusun request multipart dengan field teks + file dummy.
func multipartReq(t *testing.T, method, target string, fields map[string]string, files map[string]string) *http.Request {
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

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeBody(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(body, &env), "body=%s", body)
	return env
}

func TestPartnerLifecycle(t *testing.T) {
	uploaded := "https://cdn.example/uploads/logo_1.webp"
	var deleted []string
	blob := &helperOSS.MockBlobService{
		UploadImageFn: func(ctx context.Context, token, dir string, fh *multipart.FileHeader) (string, error) {
			assert.Equal(t, "test-token", token)
			return uploaded, nil
		},
		DeleteByPublicURLFn: func(ctx context.Context, token, publicURL string) error {
			deleted = append(deleted, publicURL)
			return nil
		},
	}
	app, _ := newPartnerTestApp(t, blob)

	// create
	resp, err := app.Test(multipartReq(t, fiber.MethodPost, "/api/partners", nil, map[string]string{
		"imageFile": "logo.png",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	env := decodeBody(t, resp)
	assert.True(t, env.Success)
	var created struct {
		PartnerID       uint   `json:"partner_id"`
		PartnerImageURL string `json:"partner_image_url"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, uploaded, created.PartnerImageURL)
	require.NotZero(t, created.PartnerID)

	// list
	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/api/partners", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	env = decodeBody(t, resp)
	var list []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)

	// delete
	resp, err = app.Test(multipartReq(t, fiber.MethodDelete,
		fmt.Sprintf("/api/partners?id=%d", created.PartnerID), nil, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{uploaded}, deleted)

	// list kosong lagi
	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/api/partners", nil))
	require.NoError(t, err)
	env = decodeBody(t, resp)
	list = nil
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 0)
}

func TestPartnerCreate_MissingImage(t *testing.T) {
	app, db := newPartnerTestApp(t, &helperOSS.MockBlobService{})

	resp, err := app.Test(multipartReq(t, fiber.MethodPost, "/api/partners", nil, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var count int64
	db.Model(&model.PartnerModel{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestPartnerCreate_MissingToken(t *testing.T) {
	prev := configs.DefaultBlobToken
	configs.DefaultBlobToken = ""
	t.Cleanup(func() { configs.DefaultBlobToken = prev })

	app, _ := newPartnerTestApp(t, &helperOSS.MockBlobService{})

	req := multipartReq(t, fiber.MethodPost, "/api/partners", nil, map[string]string{
		"imageFile": "logo.png",
	})
	req.Header.Del("X-Blob-Token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPartnerUpdate_NotFound(t *testing.T) {
	app, _ := newPartnerTestApp(t, &helperOSS.MockBlobService{
		UploadImageFn: func(ctx context.Context, token, dir string, fh *multipart.FileHeader) (string, error) {
			return "https://cdn.example/uploads/x.webp", nil
		},
	})

	resp, err := app.Test(multipartReq(t, fiber.MethodPut, "/api/partners?id=999", nil, map[string]string{
		"imageFile": "logo.png",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
