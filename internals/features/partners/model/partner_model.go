package model

import "time"

// PartnerModel hanya menyimpan logo partner, tanpa field teks.
type PartnerModel struct {
	PartnerID       uint      `gorm:"column:partner_id;primaryKey;autoIncrement" json:"partner_id"`
	PartnerImageURL string    `gorm:"column:partner_image_url;type:text;not null" json:"partner_image_url"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PartnerModel) TableName() string {
	return "partners"
}
