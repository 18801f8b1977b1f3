package storecrud

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	helperOSS "profilku_backend/internals/helpers/oss"
)

type itemModel struct {
	ItemID       uint   `gorm:"column:item_id;primaryKey;autoIncrement"`
	ItemName     string `gorm:"column:item_name"`
	ItemImageURL string `gorm:"column:item_image_url"`
}

func (itemModel) TableName() string { return "items" }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&itemModel{}))
	return db
}

func newItemStore(db *gorm.DB, blob helperOSS.BlobService, required bool) *Store[itemModel] {
	return New(db, blob, []AssetField[itemModel]{
		{
			Field:    "imageFile",
			Dir:      "uploads",
			Kind:     AssetImage,
			Required: required,
			Label:    "Gambar",
			Get:      func(m *itemModel) string { return m.ItemImageURL },
			Set:      func(m *itemModel, u string) { m.ItemImageURL = u },
		},
	})
}

func fakeFile(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name}
}

func TestCreate_RequiredAssetMissing(t *testing.T) {
	db := newTestDB(t)
	uploads := 0
	blob := &helperOSS.MockBlobService{
		UploadImageFn: func(ctx context.Context, token, dir string, fh *multipart.FileHeader) (string, error) {
			uploads++
			return "https://cdn.example/uploads/x.webp", nil
		},
	}
	st := newItemStore(db, blob, true)

	m := itemModel{ItemName: "tanpa gambar"}
	err := st.Create(context.Background(), &m, map[string]*multipart.FileHeader{}, "tok")

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Equal(t, 0, uploads, "validasi gagal tidak boleh upload")

	var count int64
	db.Model(&itemModel{}).Count(&count)
	assert.EqualValues(t, 0, count, "validasi gagal tidak boleh insert")
}

func TestCreate_WritesUploadedURL(t *testing.T) {
	db := newTestDB(t)
	blob := &helperOSS.MockBlobService{
		UploadImageFn: func(ctx context.Context, token, dir string, fh *multipart.FileHeader) (string, error) {
			assert.Equal(t, "uploads", dir)
			assert.Equal(t, "tok", token)
			return "https://cdn.example/uploads/logo.webp", nil
		},
	}
	st := newItemStore(db, blob, true)

	m := itemModel{ItemName: "partner"}
	err := st.Create(context.Background(), &m, map[string]*multipart.FileHeader{
		"imageFile": fakeFile("logo.png"),
	}, "tok")
	require.NoError(t, err)
	assert.NotZero(t, m.ItemID)
	assert.Equal(t, "https://cdn.example/uploads/logo.webp", m.ItemImageURL)

	var got itemModel
	require.NoError(t, db.First(&got, m.ItemID).Error)
	assert.Equal(t, m.ItemImageURL, got.ItemImageURL)
}

func TestCreate_UploadFailureNoRow(t *testing.T) {
	db := newTestDB(t)
	blob := &helperOSS.MockBlobService{
		UploadImageFn: func(ctx context.Context, token, dir string, fh *multipart.FileHeader) (string, error) {
			return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal upload gambar")
		},
	}
	st := newItemStore(db, blob, true)

	m := itemModel{ItemName: "gagal"}
	err := st.Create(context.Background(), &m, map[string]*multipart.FileHeader{
		"imageFile": fakeFile("x.png"),
	}, "tok")

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusInternalServerError, fe.Code)

	var count int64
	db.Model(&itemModel{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestGet_NotFound(t *testing.T) {
	db := newTestDB(t)
	st := newItemStore(db, &helperOSS.MockBlobService{}, true)

	_, err := st.Get(context.Background(), 99)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestUpdate_NotFound(t *testing.T) {
	db := newTestDB(t)
	st := newItemStore(db, &helperOSS.MockBlobService{}, true)

	_, err := st.Update(context.Background(), 42, func(m *itemModel) bool { return true }, nil, "tok")
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestUpdate_NothingToUpdate(t *testing.T) {
	db := newTestDB(t)
	st := newItemStore(db, &helperOSS.MockBlobService{}, true)
	seed := itemModel{ItemName: "lama", ItemImageURL: "https://cdn.example/uploads/old.webp"}
	require.NoError(t, db.Create(&seed).Error)

	_, err := st.Update(context.Background(), seed.ItemID, func(m *itemModel) bool { return false }, nil, "tok")
	require.ErrorIs(t, err, ErrNothingToUpdate)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestUpdate_UploadFailureIsNotNothingToUpdate(t *testing.T) {
	db := newTestDB(t)
	seed := itemModel{ItemName: "lama", ItemImageURL: "https://cdn.example/uploads/old.webp"}
	require.NoError(t, db.Create(&seed).Error)

	blob := &helperOSS.MockBlobService{
		UploadImageFn: func(ctx context.Context, token, dir string, fh *multipart.FileHeader) (string, error) {
			return "", fiber.NewError(fiber.StatusBadRequest, "format gambar tidak didukung (pakai jpg/png/webp)")
		},
	}
	st := newItemStore(db, blob, true)

	_, err := st.Update(context.Background(), seed.ItemID, nil, map[string]*multipart.FileHeader{
		"imageFile": fakeFile("rusak.gif"),
	}, "tok")
	require.Error(t, err)
	// sama-sama 400, tapi bukan sentinel "tidak ada yang diupdate"
	assert.NotErrorIs(t, err, ErrNothingToUpdate)
}

func TestUpdate_ReplacesExactlyPriorAsset(t *testing.T) {
	db := newTestDB(t)
	seed := itemModel{ItemName: "lama", ItemImageURL: "https://cdn.example/uploads/old.webp"}
	require.NoError(t, db.Create(&seed).Error)

	var deleted []string
	blob := &helperOSS.MockBlobService{
		UploadImageFn: func(ctx context.Context, token, dir string, fh *multipart.FileHeader) (string, error) {
			return "https://cdn.example/uploads/new.webp", nil
		},
		DeleteByPublicURLFn: func(ctx context.Context, token, publicURL string) error {
			deleted = append(deleted, publicURL)
			return nil
		},
	}
	st := newItemStore(db, blob, true)

	m, err := st.Update(context.Background(), seed.ItemID, nil, map[string]*multipart.FileHeader{
		"imageFile": fakeFile("new.png"),
	}, "tok")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/uploads/new.webp", m.ItemImageURL)
	assert.Equal(t, []string{"https://cdn.example/uploads/old.webp"}, deleted,
		"hanya aset lama entity ini yang dihapus")

	var got itemModel
	require.NoError(t, db.First(&got, seed.ItemID).Error)
	assert.Equal(t, "https://cdn.example/uploads/new.webp", got.ItemImageURL)
}

func TestUpdate_UploadFailureKeepsOldAsset(t *testing.T) {
	db := newTestDB(t)
	seed := itemModel{ItemName: "lama", ItemImageURL: "https://cdn.example/uploads/old.webp"}
	require.NoError(t, db.Create(&seed).Error)

	deletes := 0
	blob := &helperOSS.MockBlobService{
		UploadImageFn: func(ctx context.Context, token, dir string, fh *multipart.FileHeader) (string, error) {
			return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal upload gambar")
		},
		DeleteByPublicURLFn: func(ctx context.Context, token, publicURL string) error {
			deletes++
			return nil
		},
	}
	st := newItemStore(db, blob, true)

	_, err := st.Update(context.Background(), seed.ItemID, nil, map[string]*multipart.FileHeader{
		"imageFile": fakeFile("new.png"),
	}, "tok")
	require.Error(t, err)
	assert.Equal(t, 0, deletes, "upload gagal → aset lama tidak disentuh")

	var got itemModel
	require.NoError(t, db.First(&got, seed.ItemID).Error)
	assert.Equal(t, "https://cdn.example/uploads/old.webp", got.ItemImageURL)
}

func TestDelete_RemovesRowEvenIfAssetDeleteFails(t *testing.T) {
	db := newTestDB(t)
	seed := itemModel{ItemName: "target", ItemImageURL: "https://cdn.example/uploads/x.webp"}
	require.NoError(t, db.Create(&seed).Error)

	blob := &helperOSS.MockBlobService{
		DeleteByPublicURLFn: func(ctx context.Context, token, publicURL string) error {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal hapus object")
		},
	}
	st := newItemStore(db, blob, true)

	require.NoError(t, st.Delete(context.Background(), seed.ItemID, "tok"))

	var count int64
	db.Model(&itemModel{}).Count(&count)
	assert.EqualValues(t, 0, count, "row tetap terhapus walau aset gagal dihapus")
}

func TestDelete_NotFound(t *testing.T) {
	db := newTestDB(t)
	st := newItemStore(db, &helperOSS.MockBlobService{}, true)

	err := st.Delete(context.Background(), 7, "tok")
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}
