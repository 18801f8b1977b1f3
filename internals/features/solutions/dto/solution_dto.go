package dto

import (
	"time"

	"profilku_backend/internals/features/solutions/model"
)

type SolutionResponse struct {
	SolutionID       uint      `json:"solution_id"`
	SolutionName     string    `json:"solution_name"`
	SolutionLink     string    `json:"solution_link"`
	SolutionImageURL string    `json:"solution_image_url"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type CreateSolutionRequest struct {
	Name string `form:"name" validate:"required,max=150"`
	Link string `form:"link" validate:"required"`
}

func (r CreateSolutionRequest) ToModel() model.SolutionModel {
	return model.SolutionModel{
		SolutionName: r.Name,
		SolutionLink: r.Link,
	}
}

type UpdateSolutionRequest struct {
	Name string `form:"name"`
	Link string `form:"link"`
}

func (r UpdateSolutionRequest) ApplyPatch(m *model.SolutionModel) bool {
	changed := false
	if r.Name != "" {
		m.SolutionName = r.Name
		changed = true
	}
	if r.Link != "" {
		m.SolutionLink = r.Link
		changed = true
	}
	return changed
}

func ToSolutionResponse(m model.SolutionModel) SolutionResponse {
	return SolutionResponse{
		SolutionID:       m.SolutionID,
		SolutionName:     m.SolutionName,
		SolutionLink:     m.SolutionLink,
		SolutionImageURL: m.SolutionImageURL,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
