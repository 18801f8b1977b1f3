// internals/helpers/oss/oss_file_service.go
package helper

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/*
BlobService adalah facade upload/hapus yang seragam untuk storecrud & controller.

Semua method menerima token per-request (hasil resolve middleware); token
kosong berarti pakai kredensial default ENV. Error yang keluar sudah berupa
*fiber.Error dengan status siap-pakai.
*/

type BlobService interface {
	UploadImage(ctx context.Context, token, dir string, fh *multipart.FileHeader) (publicURL string, err error)
	UploadRaw(ctx context.Context, token, dir string, fh *multipart.FileHeader) (publicURL string, err error)
	DeleteByPublicURL(ctx context.Context, token, publicURL string) error
}

// --------------------------------------------------
// Implementasi berbasis Aliyun OSS (OSSService)
// --------------------------------------------------

type OSSBlobService struct {
	svc *OSSService
}

// Buat instance dari ENV. prefix opsional (contoh: "cms/")
func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

func (b *OSSBlobService) UploadImage(ctx context.Context, token, dir string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan")
	}
	url, err := b.svc.UploadImage(ctx, token, dir, fh)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "tidak didukung") {
			return "", fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		log.Printf("[OSS] upload image gagal: %v", err)
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal upload gambar")
	}
	return url, nil
}

func (b *OSSBlobService) UploadRaw(ctx context.Context, token, dir string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan")
	}
	url, err := b.svc.UploadRaw(ctx, token, dir, fh)
	if err != nil {
		log.Printf("[OSS] upload gagal: %v", err)
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal upload ke OSS")
	}
	return url, nil
}

func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, token, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "URL kosong")
	}
	if err := b.svc.DeleteByPublicURL(ctx, token, publicURL); err != nil {
		log.Printf("[OSS] hapus object gagal: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal hapus object")
	}
	return nil
}

// --------------------------------------------------
// Helper kecil untuk controller
// --------------------------------------------------

// IsMultipart menilai request multipart/form-data
func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, "multipart/form-data")
}

// GetFile mencari satu file dari beberapa kemungkinan nama field form.
// Tidak ada file → (nil, nil) supaya controller bisa memutuskan sendiri.
func GetFile(c *fiber.Ctx, fieldNames ...string) (*multipart.FileHeader, error) {
	if !IsMultipart(c) {
		return nil, nil
	}
	for _, fn := range fieldNames {
		if fh, err := c.FormFile(fn); err == nil && fh != nil {
			return fh, nil
		}
	}
	return nil, nil
}

// GetFiles mengumpulkan semua file pada satu field (mis. certificateFiles).
func GetFiles(c *fiber.Ctx, field string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil || form.File == nil {
		return nil
	}
	var out []*multipart.FileHeader
	for _, fh := range form.File[field] {
		if fh != nil && fh.Filename != "" {
			out = append(out, fh)
		}
	}
	return out
}

// --------------------------------------------------
// Mock untuk unit test
// --------------------------------------------------

type MockBlobService struct {
	UploadImageFn       func(ctx context.Context, token, dir string, fh *multipart.FileHeader) (string, error)
	UploadRawFn         func(ctx context.Context, token, dir string, fh *multipart.FileHeader) (string, error)
	DeleteByPublicURLFn func(ctx context.Context, token, publicURL string) error
}

func (m *MockBlobService) UploadImage(ctx context.Context, token, dir string, fh *multipart.FileHeader) (string, error) {
	if m.UploadImageFn == nil {
		return "", errors.New("not implemented")
	}
	return m.UploadImageFn(ctx, token, dir, fh)
}

func (m *MockBlobService) UploadRaw(ctx context.Context, token, dir string, fh *multipart.FileHeader) (string, error) {
	if m.UploadRawFn == nil {
		return "", errors.New("not implemented")
	}
	return m.UploadRawFn(ctx, token, dir, fh)
}

func (m *MockBlobService) DeleteByPublicURL(ctx context.Context, token, publicURL string) error {
	if m.DeleteByPublicURLFn == nil {
		return errors.New("not implemented")
	}
	return m.DeleteByPublicURLFn(ctx, token, publicURL)
}
