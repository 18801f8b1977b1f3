// internals/storecrud/store.go
package storecrud

import (
	"context"
	"errors"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helperOSS "profilku_backend/internals/helpers/oss"
)

/*
Store[M] memfaktorkan siklus CRUD yang dulunya diduplikasi per entity:
validasi kehadiran aset → upload ke OSS → tulis row. Satu instance per
entity, dikonfigurasi dengan pemetaan field aset dan direktori objeknya.

Kebijakan yang diseragamkan di sini (dulu beda-beda per entity):
  - Update: upload aset baru dulu, baru hapus aset lama. Upload gagal →
    aset lama utuh, row tidak disentuh.
  - Delete: hapus aset best-effort (gagal cuma dicatat di log), hapus row
    tetap jalan — row yang hilang adalah sumber kebenaran.
  - Tidak ada retry; orphan object saat gagal di tengah diterima.
*/

type AssetKind int

const (
	AssetImage AssetKind = iota // re-encode WebP sebelum upload
	AssetRaw                    // upload apa adanya (video dsb)
)

// AssetField memetakan satu field file multipart ke kolom URL di model.
type AssetField[M any] struct {
	Field    string // nama field multipart, mis. "imageFile"
	Dir      string // direktori objek: "uploads", "videos", "thumbnails"
	Kind     AssetKind
	Required bool // wajib ada saat Create
	Label    string
	Get      func(*M) string
	Set      func(*M, string)
}

// ErrNothingToUpdate dikembalikan Update bila patch skalar tidak mengubah
// apa pun dan tidak ada file baru. Caller yang punya sumber perubahan lain
// (mis. sertifikat team) mencocokkan dengan errors.Is, bukan status code —
// upload gagal juga 400 tapi tidak boleh tertelan.
var ErrNothingToUpdate = fiber.NewError(fiber.StatusBadRequest, "Tidak ada data yang diupdate")

type Store[M any] struct {
	DB     *gorm.DB
	Blob   helperOSS.BlobService
	Assets []AssetField[M]

	// DefaultOrder opsional, mis. "blog_post_date DESC"
	DefaultOrder string
}

func New[M any](db *gorm.DB, blob helperOSS.BlobService, assets []AssetField[M]) *Store[M] {
	return &Store[M]{DB: db, Blob: blob, Assets: assets}
}

/* =========================
   Read
========================= */

func (s *Store[M]) List(ctx context.Context) ([]M, error) {
	q := s.DB.WithContext(ctx)
	if s.DefaultOrder != "" {
		q = q.Order(s.DefaultOrder)
	}
	var out []M
	if err := q.Find(&out).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return out, nil
}

func (s *Store[M]) Get(ctx context.Context, id uint) (*M, error) {
	var m M
	if err := s.DB.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return &m, nil
}

/* =========================
   Create
========================= */

// Create meng-upload semua aset lalu insert row. Aset Required yang tidak
// ada → 400 tanpa side effect; upload gagal → tidak ada row yang dibuat.
func (s *Store[M]) Create(ctx context.Context, m *M, files map[string]*multipart.FileHeader, token string) error {
	for _, a := range s.Assets {
		if a.Required && files[a.Field] == nil {
			return fiber.NewError(fiber.StatusBadRequest, a.label()+" wajib diisi")
		}
	}

	for _, a := range s.Assets {
		fh := files[a.Field]
		if fh == nil {
			continue
		}
		url, err := s.upload(ctx, a, fh, token)
		if err != nil {
			return err
		}
		a.Set(m, url)
	}

	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		// upload sudah jalan → object jadi orphan, diterima (lihat catatan paket)
		log.Printf("[STORE] insert gagal setelah upload: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan data")
	}
	return nil
}

/* =========================
   Update
========================= */

// Update menerapkan patch skalar + rotasi aset (upload-then-delete-old).
// patch mengembalikan true bila ada field skalar yang berubah; tanpa
// perubahan skalar dan tanpa file baru → 400 "tidak ada yang diupdate".
func (s *Store[M]) Update(ctx context.Context, id uint, patch func(*M) bool, files map[string]*multipart.FileHeader, token string) (*M, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := false
	if patch != nil && patch(m) {
		changed = true
	}

	var oldURLs []string
	for _, a := range s.Assets {
		fh := files[a.Field]
		if fh == nil {
			continue
		}
		url, err := s.upload(ctx, a, fh, token)
		if err != nil {
			return nil, err
		}
		if prev := a.Get(m); prev != "" {
			oldURLs = append(oldURLs, prev)
		}
		a.Set(m, url)
		changed = true
	}

	if !changed {
		return nil, ErrNothingToUpdate
	}

	if err := s.DB.WithContext(ctx).Save(m).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}

	// aset lama dihapus SETELAH row tersimpan; gagal cuma dicatat
	for _, u := range oldURLs {
		if err := s.deleteBlob(ctx, token, u); err != nil {
			log.Printf("[STORE] hapus aset lama gagal (%s): %v", u, err)
		}
	}
	return m, nil
}

/* =========================
   Delete
========================= */

// Delete menghapus aset best-effort lalu row. Gagal hapus aset tidak
// membatalkan penghapusan row.
func (s *Store[M]) Delete(ctx context.Context, id uint, token string) error {
	m, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	for _, a := range s.Assets {
		if u := a.Get(m); u != "" {
			if err := s.deleteBlob(ctx, token, u); err != nil {
				log.Printf("[STORE] hapus aset gagal (%s): %v", u, err)
			}
		}
	}

	if err := s.DB.WithContext(ctx).Delete(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	return nil
}

/* =========================
   internals
========================= */

func (s *Store[M]) upload(ctx context.Context, a AssetField[M], fh *multipart.FileHeader, token string) (string, error) {
	if s.Blob == nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Blob storage belum terkonfigurasi")
	}
	var (
		url string
		err error
	)
	switch a.Kind {
	case AssetImage:
		url, err = s.Blob.UploadImage(ctx, token, a.Dir, fh)
	default:
		url, err = s.Blob.UploadRaw(ctx, token, a.Dir, fh)
	}
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return "", fe
		}
		log.Printf("[STORE] upload %s gagal: %v", a.Field, err)
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal mengunggah "+a.label())
	}
	return url, nil
}

func (s *Store[M]) deleteBlob(ctx context.Context, token, publicURL string) error {
	if s.Blob == nil {
		return errors.New("blob storage belum terkonfigurasi")
	}
	return s.Blob.DeleteByPublicURL(ctx, token, publicURL)
}

func (a AssetField[M]) label() string {
	if a.Label != "" {
		return a.Label
	}
	return a.Field
}
