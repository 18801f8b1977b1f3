package model

import "time"

type SolutionModel struct {
	SolutionID       uint      `gorm:"column:solution_id;primaryKey;autoIncrement" json:"solution_id"`
	SolutionName     string    `gorm:"column:solution_name;type:varchar(150);not null" json:"solution_name"`
	SolutionLink     string    `gorm:"column:solution_link;type:text;not null" json:"solution_link"`
	SolutionImageURL string    `gorm:"column:solution_image_url;type:text;not null" json:"solution_image_url"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SolutionModel) TableName() string {
	return "solutions"
}
