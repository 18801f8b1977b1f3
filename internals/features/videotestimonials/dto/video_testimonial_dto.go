package dto

import (
	"strings"

	"profilku_backend/internals/features/videotestimonials/model"
)

// ============================
// Response DTO
// ============================

type VideoTestimonialResponse struct {
	VideoTestimonialID         uint   `json:"video_testimonial_id"`
	VideoTestimonialClientName string `json:"video_testimonial_client_name"`
	VideoTestimonialVideoURL   string `json:"video_testimonial_video_url"`
	VideoTestimonialThumbnail  string `json:"video_testimonial_thumbnail"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateVideoTestimonialRequest struct {
	VideoTestimonialClientName string `form:"clientName" validate:"required"`
}

// Update: semua opsional; clientName kosong = tidak diubah.
type UpdateVideoTestimonialRequest struct {
	VideoTestimonialClientName string `form:"clientName"`
}

// ============================
// Converter
// ============================

func (r CreateVideoTestimonialRequest) ToModel() model.VideoTestimonialModel {
	return model.VideoTestimonialModel{
		VideoTestimonialClientName: r.VideoTestimonialClientName,
	}
}

func (r UpdateVideoTestimonialRequest) ApplyPatch(m *model.VideoTestimonialModel) bool {
	if v := strings.TrimSpace(r.VideoTestimonialClientName); v != "" {
		m.VideoTestimonialClientName = v
		return true
	}
	return false
}

func ToVideoTestimonialResponse(m model.VideoTestimonialModel) VideoTestimonialResponse {
	return VideoTestimonialResponse{
		VideoTestimonialID:         m.VideoTestimonialID,
		VideoTestimonialClientName: m.VideoTestimonialClientName,
		VideoTestimonialVideoURL:   m.VideoTestimonialVideoURL,
		VideoTestimonialThumbnail:  m.VideoTestimonialThumbnail,
	}
}
