package model

import "time"

type TestimonialModel struct {
	TestimonialID        uint      `gorm:"column:testimonial_id;primaryKey;autoIncrement" json:"testimonial_id"`
	TestimonialName      string    `gorm:"column:testimonial_name;type:varchar(100);not null" json:"testimonial_name"`
	TestimonialPosition  string    `gorm:"column:testimonial_position;type:varchar(100);not null" json:"testimonial_position"`
	TestimonialCompany   string    `gorm:"column:testimonial_company;type:varchar(100);not null" json:"testimonial_company"`
	TestimonialFeedback  string    `gorm:"column:testimonial_feedback;type:text;not null" json:"testimonial_feedback"`
	TestimonialImageURL  string    `gorm:"column:testimonial_image_url;type:text" json:"testimonial_image_url"`
	TestimonialCreatedAt time.Time `gorm:"column:testimonial_created_at;autoCreateTime" json:"testimonial_created_at"`
	TestimonialUpdatedAt time.Time `gorm:"column:testimonial_updated_at;autoUpdateTime" json:"testimonial_updated_at"`
}

// TableName sets the table name for TestimonialModel
func (TestimonialModel) TableName() string {
	return "testimonials"
}
