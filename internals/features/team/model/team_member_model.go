package model

import (
	"time"

	"gorm.io/datatypes"
)

type TeamMemberModel struct {
	TeamMemberID          uint           `gorm:"column:team_member_id;primaryKey;autoIncrement" json:"team_member_id"`
	TeamMemberName        string         `gorm:"column:team_member_name;type:varchar(100);not null" json:"team_member_name"`
	TeamMemberTitle       string         `gorm:"column:team_member_title;type:varchar(150);not null" json:"team_member_title"`
	TeamMemberImageURL    string         `gorm:"column:team_member_image_url;type:text;not null" json:"team_member_image_url"`
	TeamMemberCredentials datatypes.JSON `gorm:"column:team_member_credentials;type:jsonb" json:"team_member_credentials"`

	// Sertifikat dimiliki oleh tepat satu anggota; row ikut terhapus
	// bersama anggotanya.
	Certificates []CertificateModel `gorm:"foreignKey:CertificateTeamMemberID;constraint:OnDelete:CASCADE" json:"certificates,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TeamMemberModel) TableName() string {
	return "team_members"
}

type CertificateModel struct {
	CertificateID           uint      `gorm:"column:certificate_id;primaryKey;autoIncrement" json:"certificate_id"`
	CertificateTeamMemberID uint      `gorm:"column:certificate_team_member_id;not null;index" json:"certificate_team_member_id"`
	CertificateImageURL     string    `gorm:"column:certificate_image_url;type:text;not null" json:"certificate_image_url"`
	CreatedAt               time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt               time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CertificateModel) TableName() string {
	return "certificates"
}
