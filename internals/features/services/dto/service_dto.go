package dto

import (
	"time"

	"profilku_backend/internals/features/services/model"
)

type ServiceResponse struct {
	ServiceID          uint      `json:"service_id"`
	ServiceTitle       string    `json:"service_title"`
	ServiceDescription string    `json:"service_description"`
	ServiceImageURL    string    `json:"service_image_url"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type CreateServiceRequest struct {
	Title       string `form:"title" validate:"required,max=150"`
	Description string `form:"description" validate:"required"`
}

func (r CreateServiceRequest) ToModel() model.ServiceModel {
	return model.ServiceModel{
		ServiceTitle:       r.Title,
		ServiceDescription: r.Description,
	}
}

// UpdateServiceRequest: semua field opsional, kosong berarti tidak diubah.
type UpdateServiceRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

func (r UpdateServiceRequest) ApplyPatch(m *model.ServiceModel) bool {
	changed := false
	if r.Title != "" {
		m.ServiceTitle = r.Title
		changed = true
	}
	if r.Description != "" {
		m.ServiceDescription = r.Description
		changed = true
	}
	return changed
}

func ToServiceResponse(m model.ServiceModel) ServiceResponse {
	return ServiceResponse{
		ServiceID:          m.ServiceID,
		ServiceTitle:       m.ServiceTitle,
		ServiceDescription: m.ServiceDescription,
		ServiceImageURL:    m.ServiceImageURL,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
