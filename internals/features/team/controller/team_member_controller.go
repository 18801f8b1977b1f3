package controller

import (
	"errors"
	"log"
	"mime/multipart"

	"profilku_backend/internals/features/team/dto"
	"profilku_backend/internals/features/team/model"
	helper "profilku_backend/internals/helpers"
	helperOSS "profilku_backend/internals/helpers/oss"
	"profilku_backend/internals/storecrud"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateTeam = validator.New()

// TeamMemberController menggabungkan CRUD anggota (lewat Store) dengan
// pengelolaan sertifikat yang menempel pada anggota.
type TeamMemberController struct {
	DB    *gorm.DB
	Blob  helperOSS.BlobService
	Store *storecrud.Store[model.TeamMemberModel]
}

func NewTeamMemberController(db *gorm.DB, blob helperOSS.BlobService) *TeamMemberController {
	st := storecrud.New(db, blob, []storecrud.AssetField[model.TeamMemberModel]{
		{
			Field:    "imageFile",
			Dir:      "uploads",
			Kind:     storecrud.AssetImage,
			Required: true,
			Label:    "Foto anggota",
			Get:      func(m *model.TeamMemberModel) string { return m.TeamMemberImageURL },
			Set:      func(m *model.TeamMemberModel, u string) { m.TeamMemberImageURL = u },
		},
	})
	return &TeamMemberController{DB: db, Blob: blob, Store: st}
}

func collectTeamFiles(c *fiber.Ctx) map[string]*multipart.FileHeader {
	files := map[string]*multipart.FileHeader{}
	if fh, _ := helperOSS.GetFile(c, "imageFile"); fh != nil {
		files["imageFile"] = fh
	}
	return files
}

// =============================
// 📄 Get Team
// =============================
// Tanpa ?id: semua anggota beserta sertifikatnya.
// Dengan ?id: hanya daftar sertifikat milik anggota itu.
func (ctrl *TeamMemberController) Get(c *fiber.Ctx) error {
	if c.Query("id") == "" {
		var members []model.TeamMemberModel
		if err := ctrl.DB.WithContext(c.Context()).
			Preload("Certificates").
			Find(&members).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
		}
		result := make([]dto.TeamMemberResponse, 0, len(members))
		for _, m := range members {
			result = append(result, dto.ToTeamMemberResponse(m))
		}
		return helper.JsonList(c, "", result)
	}

	id, err := helper.ParseIDQuery(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	if _, err := ctrl.Store.Get(c.Context(), id); err != nil {
		return helper.FromError(c, err)
	}

	var certs []model.CertificateModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("certificate_team_member_id = ?", id).
		Find(&certs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	result := make([]dto.CertificateResponse, 0, len(certs))
	for _, cert := range certs {
		result = append(result, dto.ToCertificateResponse(cert))
	}
	return helper.JsonList(c, "", result)
}

// =============================
// ➕ Create
// =============================
// Dua mode: field "id" terisi → tambah sertifikat ke anggota yang sudah
// ada (hanya certificateFiles); tanpa "id" → buat anggota baru, boleh
// sekalian melampirkan certificateFiles.
func (ctrl *TeamMemberController) Create(c *fiber.Ctx) error {
	token, err := helper.RequireBlobToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	certFiles := helperOSS.GetFiles(c, "certificateFiles")

	if c.FormValue("id") != "" {
		memberID, err := helper.ParseIDForm(c, "id")
		if err != nil {
			return helper.FromError(c, err)
		}
		if _, err := ctrl.Store.Get(c.Context(), memberID); err != nil {
			return helper.FromError(c, err)
		}
		if len(certFiles) == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "File sertifikat wajib diisi")
		}
		certs, err := ctrl.addCertificates(c, memberID, certFiles, token)
		if err != nil {
			return helper.FromError(c, err)
		}
		return helper.JsonCreated(c, "Sertifikat berhasil ditambahkan", certs)
	}

	var req dto.CreateTeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateTeam.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := model.TeamMemberModel{
		TeamMemberName:        req.Name,
		TeamMemberTitle:       req.Title,
		TeamMemberCredentials: dto.CredentialsToJSON(req.Credentials),
	}
	if err := ctrl.Store.Create(c.Context(), &m, collectTeamFiles(c), token); err != nil {
		return helper.FromError(c, err)
	}

	if len(certFiles) > 0 {
		certs, err := ctrl.addCertificates(c, m.TeamMemberID, certFiles, token)
		if err != nil {
			// anggota sudah tersimpan; kegagalan sertifikat dilaporkan apa adanya
			return helper.FromError(c, err)
		}
		for _, cr := range certs {
			m.Certificates = append(m.Certificates, model.CertificateModel{
				CertificateID:           cr.CertificateID,
				CertificateTeamMemberID: cr.CertificateTeamMemberID,
				CertificateImageURL:     cr.CertificateImageURL,
			})
		}
	}
	return helper.JsonCreated(c, "Anggota tim berhasil dibuat", dto.ToTeamMemberResponse(m))
}

// =============================
// 🔄 Update
// =============================
// Patch skalar + rotasi foto lewat Store; certificateFiles baru (kalau
// ada) ditambahkan setelahnya.
func (ctrl *TeamMemberController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDQuery(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.UpdateTeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	token, err := helper.RequireBlobToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	certFiles := helperOSS.GetFiles(c, "certificateFiles")

	if _, err := ctrl.Store.Update(c.Context(), id, req.ApplyPatch, collectTeamFiles(c), token); err != nil {
		// sertifikat baru saja juga dihitung sebagai perubahan; error lain
		// (termasuk upload foto gagal) tetap diteruskan
		if !(errors.Is(err, storecrud.ErrNothingToUpdate) && len(certFiles) > 0) {
			return helper.FromError(c, err)
		}
	}

	if len(certFiles) > 0 {
		if _, err := ctrl.addCertificates(c, id, certFiles, token); err != nil {
			return helper.FromError(c, err)
		}
	}

	var out model.TeamMemberModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Certificates").
		First(&out, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonUpdated(c, "Anggota tim berhasil diperbarui", dto.ToTeamMemberResponse(out))
}

// =============================
// 🗑️ Delete
// =============================
// ?id&certificateId → hapus satu sertifikat saja (aset + row), anggota
// tetap utuh. Hanya ?id → hapus semua sertifikat lalu anggotanya.
func (ctrl *TeamMemberController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDQuery(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	token, err := helper.RequireBlobToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	if c.Query("certificateId") != "" {
		certID, err := helper.ParseIDQuery(c, "certificateId")
		if err != nil {
			return helper.FromError(c, err)
		}
		return ctrl.deleteCertificate(c, id, certID, token)
	}

	var m model.TeamMemberModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Certificates").
		First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	// aset dihapus best-effort; row tetap dihapus walau aset gagal
	for _, cert := range m.Certificates {
		ctrl.deleteAsset(c, token, cert.CertificateImageURL)
	}
	if len(m.Certificates) > 0 {
		if err := ctrl.DB.WithContext(c.Context()).
			Where("certificate_team_member_id = ?", id).
			Delete(&model.CertificateModel{}).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus sertifikat")
		}
	}

	ctrl.deleteAsset(c, token, m.TeamMemberImageURL)
	if err := ctrl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	return helper.JsonDeleted(c, "Anggota tim berhasil dihapus", fiber.Map{"team_member_id": id})
}

/* =========================
   internals
========================= */

// deleteAsset menghapus satu objek best-effort; blob nil atau gagal hapus
// hanya dicatat di log.
func (ctrl *TeamMemberController) deleteAsset(c *fiber.Ctx, token, publicURL string) {
	if publicURL == "" {
		return
	}
	if ctrl.Blob == nil {
		log.Printf("[TEAM] blob storage belum terkonfigurasi, aset tidak dihapus (%s)", publicURL)
		return
	}
	if err := ctrl.Blob.DeleteByPublicURL(c.Context(), token, publicURL); err != nil {
		log.Printf("[TEAM] hapus aset gagal (%s): %v", publicURL, err)
	}
}

func (ctrl *TeamMemberController) addCertificates(c *fiber.Ctx, memberID uint, files []*multipart.FileHeader, token string) ([]dto.CertificateResponse, error) {
	if ctrl.Blob == nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Blob storage belum terkonfigurasi")
	}
	out := make([]dto.CertificateResponse, 0, len(files))
	for _, fh := range files {
		url, err := ctrl.Blob.UploadImage(c.Context(), token, "uploads", fh)
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				return nil, fe
			}
			log.Printf("[TEAM] upload sertifikat gagal: %v", err)
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengunggah sertifikat")
		}
		cert := model.CertificateModel{
			CertificateTeamMemberID: memberID,
			CertificateImageURL:     url,
		}
		if err := ctrl.DB.WithContext(c.Context()).Create(&cert).Error; err != nil {
			log.Printf("[TEAM] insert sertifikat gagal setelah upload: %v", err)
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan sertifikat")
		}
		out = append(out, dto.ToCertificateResponse(cert))
	}
	return out, nil
}

func (ctrl *TeamMemberController) deleteCertificate(c *fiber.Ctx, memberID, certID uint, token string) error {
	var cert model.CertificateModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("certificate_id = ? AND certificate_team_member_id = ?", certID, memberID).
		First(&cert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sertifikat tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	ctrl.deleteAsset(c, token, cert.CertificateImageURL)
	if err := ctrl.DB.WithContext(c.Context()).Delete(&cert).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus sertifikat")
	}
	return helper.JsonDeleted(c, "Sertifikat berhasil dihapus", fiber.Map{"certificate_id": certID})
}
