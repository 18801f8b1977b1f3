package dto

import (
	"profilku_backend/internals/features/testimonials/model"
)

// ============================
// Response DTO
// ============================

type TestimonialResponse struct {
	TestimonialID       uint   `json:"testimonial_id"`
	TestimonialName     string `json:"testimonial_name"`
	TestimonialPosition string `json:"testimonial_position"`
	TestimonialCompany  string `json:"testimonial_company"`
	TestimonialFeedback string `json:"testimonial_feedback"`
	TestimonialImageURL string `json:"testimonial_image_url"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateTestimonialRequest struct {
	TestimonialName     string `form:"name" validate:"required"`
	TestimonialPosition string `form:"position" validate:"required"`
	TestimonialCompany  string `form:"company" validate:"required"`
	TestimonialFeedback string `form:"feedback" validate:"required"`
}

type UpdateTestimonialRequest struct {
	TestimonialName     string `form:"name" validate:"required"`
	TestimonialPosition string `form:"position" validate:"required"`
	TestimonialCompany  string `form:"company" validate:"required"`
	TestimonialFeedback string `form:"feedback" validate:"required"`
}

// ============================
// Converter
// ============================

func (r CreateTestimonialRequest) ToModel() model.TestimonialModel {
	return model.TestimonialModel{
		TestimonialName:     r.TestimonialName,
		TestimonialPosition: r.TestimonialPosition,
		TestimonialCompany:  r.TestimonialCompany,
		TestimonialFeedback: r.TestimonialFeedback,
	}
}

func (r UpdateTestimonialRequest) ApplyPatch(m *model.TestimonialModel) bool {
	m.TestimonialName = r.TestimonialName
	m.TestimonialPosition = r.TestimonialPosition
	m.TestimonialCompany = r.TestimonialCompany
	m.TestimonialFeedback = r.TestimonialFeedback
	return true
}

func ToTestimonialResponse(m model.TestimonialModel) TestimonialResponse {
	return TestimonialResponse{
		TestimonialID:       m.TestimonialID,
		TestimonialName:     m.TestimonialName,
		TestimonialPosition: m.TestimonialPosition,
		TestimonialCompany:  m.TestimonialCompany,
		TestimonialFeedback: m.TestimonialFeedback,
		TestimonialImageURL: m.TestimonialImageURL,
	}
}
