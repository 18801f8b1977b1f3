package model

import "time"

type BlogPostModel struct {
	BlogPostID         uint      `gorm:"column:blog_post_id;primaryKey;autoIncrement" json:"blog_post_id"`
	BlogPostTitle      string    `gorm:"column:blog_post_title;type:varchar(255);not null" json:"blog_post_title"`
	BlogPostContent    string    `gorm:"column:blog_post_content;type:text;not null" json:"blog_post_content"`
	BlogPostAuthorName string    `gorm:"column:blog_post_author_name;type:varchar(100);not null" json:"blog_post_author_name"`
	BlogPostImageURL   string    `gorm:"column:blog_post_image_url;type:text" json:"blog_post_image_url"`
	BlogPostDate       time.Time `gorm:"column:blog_post_date;autoCreateTime" json:"blog_post_date"`
	BlogPostCreatedAt  time.Time `gorm:"column:blog_post_created_at;autoCreateTime" json:"blog_post_created_at"`
	BlogPostUpdatedAt  time.Time `gorm:"column:blog_post_updated_at;autoUpdateTime" json:"blog_post_updated_at"`
}

// TableName sets the table name for BlogPostModel
func (BlogPostModel) TableName() string {
	return "blog_posts"
}
