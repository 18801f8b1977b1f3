package dto

import (
	"time"

	"profilku_backend/internals/features/partners/model"
)

type PartnerResponse struct {
	PartnerID       uint      `json:"partner_id"`
	PartnerImageURL string    `json:"partner_image_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToPartnerResponse(m model.PartnerModel) PartnerResponse {
	return PartnerResponse{
		PartnerID:       m.PartnerID,
		PartnerImageURL: m.PartnerImageURL,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
