package dto

import "github.com/Maruf-rahman11/threadhub-web-server/internal/models"

type CreatePostDTO struct {
	AuthorImage string `json:"authorImage" example:"https://i.ibb.co/avatar.png"`
	AuthorName  string `json:"authorName" example:"Ann Lee"`
	AuthorEmail string `json:"authorEmail" example:"ann@example.com"`
	Title       string `json:"title" example:"Welcome to ThreadHub"`
	Description string `json:"description" example:"Say hi below"`
	Tag         string `json:"tag" example:"general"`
	UpVote      *int64 `json:"upVote,omitempty"`
	DownVote    *int64 `json:"downVote,omitempty"`
}

type CommentDTO struct {
	Comment string `json:"comment" example:"Nice post"`
}

type PostsPageResponse struct {
	Posts      []models.Post `json:"posts"`
	TotalPages int64         `json:"totalPages" example:"2"`
}
