package model

import "time"

type EventVideoModel struct {
	EventVideoID        uint      `gorm:"column:event_video_id;primaryKey;autoIncrement" json:"event_video_id"`
	EventVideoTitle     string    `gorm:"column:event_video_title;type:varchar(255);not null" json:"event_video_title"`
	EventVideoVideoURL  string    `gorm:"column:event_video_video_url;type:text;not null" json:"event_video_video_url"`
	EventVideoThumbnail string    `gorm:"column:event_video_thumbnail;type:text;not null" json:"event_video_thumbnail"`
	EventVideoCreatedAt time.Time `gorm:"column:event_video_created_at;autoCreateTime" json:"event_video_created_at"`
	EventVideoUpdatedAt time.Time `gorm:"column:event_video_updated_at;autoUpdateTime" json:"event_video_updated_at"`
}

// TableName sets the table name for EventVideoModel
func (EventVideoModel) TableName() string {
	return "event_videos"
}
