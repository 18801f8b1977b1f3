package dto

import (
	"strings"

	"profilku_backend/internals/features/eventvideos/model"
)

type EventVideoResponse struct {
	EventVideoID        uint   `json:"event_video_id"`
	EventVideoTitle     string `json:"event_video_title"`
	EventVideoVideoURL  string `json:"event_video_video_url"`
	EventVideoThumbnail string `json:"event_video_thumbnail"`
}

type CreateEventVideoRequest struct {
	EventVideoTitle string `form:"title" validate:"required"`
}

type UpdateEventVideoRequest struct {
	EventVideoTitle string `form:"title"`
}

func (r CreateEventVideoRequest) ToModel() model.EventVideoModel {
	return model.EventVideoModel{EventVideoTitle: r.EventVideoTitle}
}

func (r UpdateEventVideoRequest) ApplyPatch(m *model.EventVideoModel) bool {
	if v := strings.TrimSpace(r.EventVideoTitle); v != "" {
		m.EventVideoTitle = v
		return true
	}
	return false
}

func ToEventVideoResponse(m model.EventVideoModel) EventVideoResponse {
	return EventVideoResponse{
		EventVideoID:        m.EventVideoID,
		EventVideoTitle:     m.EventVideoTitle,
		EventVideoVideoURL:  m.EventVideoVideoURL,
		EventVideoThumbnail: m.EventVideoThumbnail,
	}
}
