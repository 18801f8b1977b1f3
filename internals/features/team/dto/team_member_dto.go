package dto

import (
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"

	"profilku_backend/internals/features/team/model"
)

type CertificateResponse struct {
	CertificateID           uint      `json:"certificate_id"`
	CertificateTeamMemberID uint      `json:"certificate_team_member_id"`
	CertificateImageURL     string    `json:"certificate_image_url"`
	CreatedAt               time.Time `json:"created_at"`
}

type TeamMemberResponse struct {
	TeamMemberID          uint                  `json:"team_member_id"`
	TeamMemberName        string                `json:"team_member_name"`
	TeamMemberTitle       string                `json:"team_member_title"`
	TeamMemberImageURL    string                `json:"team_member_image_url"`
	TeamMemberCredentials []string              `json:"team_member_credentials"`
	Certificates          []CertificateResponse `json:"certificates"`
	CreatedAt             time.Time             `json:"created_at"`
	UpdatedAt             time.Time             `json:"updated_at"`
}

type CreateTeamMemberRequest struct {
	Name  string `form:"name" validate:"required,max=100"`
	Title string `form:"title" validate:"required,max=150"`
	// Credentials dikirim sebagai satu string dipisah koma,
	// mis. "CCNA, CISSP" → ["CCNA","CISSP"].
	Credentials string `form:"credentials"`
}

type UpdateTeamMemberRequest struct {
	Name        string `form:"name"`
	Title       string `form:"title"`
	Credentials string `form:"credentials"`
}

func (r UpdateTeamMemberRequest) ApplyPatch(m *model.TeamMemberModel) bool {
	changed := false
	if r.Name != "" {
		m.TeamMemberName = r.Name
		changed = true
	}
	if r.Title != "" {
		m.TeamMemberTitle = r.Title
		changed = true
	}
	if r.Credentials != "" {
		m.TeamMemberCredentials = CredentialsToJSON(r.Credentials)
		changed = true
	}
	return changed
}

// CredentialsToJSON memecah daftar dipisah koma menjadi array JSON,
// entri kosong dibuang.
func CredentialsToJSON(raw string) datatypes.JSON {
	var creds []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			creds = append(creds, p)
		}
	}
	if creds == nil {
		creds = []string{}
	}
	b, _ := sonic.Marshal(creds)
	return datatypes.JSON(b)
}

func ToCertificateResponse(m model.CertificateModel) CertificateResponse {
	return CertificateResponse{
		CertificateID:           m.CertificateID,
		CertificateTeamMemberID: m.CertificateTeamMemberID,
		CertificateImageURL:     m.CertificateImageURL,
		CreatedAt:               m.CreatedAt,
	}
}

func ToTeamMemberResponse(m model.TeamMemberModel) TeamMemberResponse {
	creds := []string{}
	if len(m.TeamMemberCredentials) > 0 {
		_ = sonic.Unmarshal(m.TeamMemberCredentials, &creds)
	}
	certs := make([]CertificateResponse, 0, len(m.Certificates))
	for _, cert := range m.Certificates {
		certs = append(certs, ToCertificateResponse(cert))
	}
	return TeamMemberResponse{
		TeamMemberID:          m.TeamMemberID,
		TeamMemberName:        m.TeamMemberName,
		TeamMemberTitle:       m.TeamMemberTitle,
		TeamMemberImageURL:    m.TeamMemberImageURL,
		TeamMemberCredentials: creds,
		Certificates:          certs,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}
