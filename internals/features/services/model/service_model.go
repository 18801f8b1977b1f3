package model

import "time"

type ServiceModel struct {
	ServiceID          uint      `gorm:"column:service_id;primaryKey;autoIncrement" json:"service_id"`
	ServiceTitle       string    `gorm:"column:service_title;type:varchar(150);not null" json:"service_title"`
	ServiceDescription string    `gorm:"column:service_description;type:text;not null" json:"service_description"`
	ServiceImageURL    string    `gorm:"column:service_image_url;type:text;not null" json:"service_image_url"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ServiceModel) TableName() string {
	return "services"
}
