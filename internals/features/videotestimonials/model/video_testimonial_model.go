package model

import "time"

type VideoTestimonialModel struct {
	VideoTestimonialID         uint      `gorm:"column:video_testimonial_id;primaryKey;autoIncrement" json:"video_testimonial_id"`
	VideoTestimonialClientName string    `gorm:"column:video_testimonial_client_name;type:varchar(100);not null" json:"video_testimonial_client_name"`
	VideoTestimonialVideoURL   string    `gorm:"column:video_testimonial_video_url;type:text;not null" json:"video_testimonial_video_url"`
	VideoTestimonialThumbnail  string    `gorm:"column:video_testimonial_thumbnail;type:text;not null" json:"video_testimonial_thumbnail"`
	VideoTestimonialCreatedAt  time.Time `gorm:"column:video_testimonial_created_at;autoCreateTime" json:"video_testimonial_created_at"`
	VideoTestimonialUpdatedAt  time.Time `gorm:"column:video_testimonial_updated_at;autoUpdateTime" json:"video_testimonial_updated_at"`
}

// TableName sets the table name for VideoTestimonialModel
func (VideoTestimonialModel) TableName() string {
	return "video_testimonials"
}
