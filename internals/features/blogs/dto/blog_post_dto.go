package dto

import (
	"time"

	"profilku_backend/internals/features/blogs/model"
)

// ============================
// Response DTO
// ============================

type BlogPostResponse struct {
	BlogPostID         uint      `json:"blog_post_id"`
	BlogPostTitle      string    `json:"blog_post_title"`
	BlogPostContent    string    `json:"blog_post_content"`
	BlogPostAuthorName string    `json:"blog_post_author_name"`
	BlogPostImageURL   string    `json:"blog_post_image_url"`
	BlogPostDate       time.Time `json:"blog_post_date"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateBlogPostRequest struct {
	BlogPostTitle      string `form:"title" validate:"required,min=3"`
	BlogPostContent    string `form:"content" validate:"required"`
	BlogPostAuthorName string `form:"authorName" validate:"required"`
}

type UpdateBlogPostRequest struct {
	BlogPostTitle      string `form:"title" validate:"required,min=3"`
	BlogPostContent    string `form:"content" validate:"required"`
	BlogPostAuthorName string `form:"authorName" validate:"required"`
}

// ============================
// Converter
// ============================

func (r CreateBlogPostRequest) ToModel() model.BlogPostModel {
	return model.BlogPostModel{
		BlogPostTitle:      r.BlogPostTitle,
		BlogPostContent:    r.BlogPostContent,
		BlogPostAuthorName: r.BlogPostAuthorName,
	}
}

// ApplyPatch menimpa field skalar; selalu dianggap berubah karena
// semua field wajib dikirim saat update (kontrak lama form admin).
func (r UpdateBlogPostRequest) ApplyPatch(m *model.BlogPostModel) bool {
	m.BlogPostTitle = r.BlogPostTitle
	m.BlogPostContent = r.BlogPostContent
	m.BlogPostAuthorName = r.BlogPostAuthorName
	return true
}

func ToBlogPostResponse(m model.BlogPostModel) BlogPostResponse {
	return BlogPostResponse{
		BlogPostID:         m.BlogPostID,
		BlogPostTitle:      m.BlogPostTitle,
		BlogPostContent:    m.BlogPostContent,
		BlogPostAuthorName: m.BlogPostAuthorName,
		BlogPostImageURL:   m.BlogPostImageURL,
		BlogPostDate:       m.BlogPostDate,
	}
}
