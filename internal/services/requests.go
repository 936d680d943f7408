package services

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type ListPostsRequest struct {
	Page             int
	Tag              string
	SortByPopularity bool
}

type CreatePostRequest struct {
	AuthorImage string `validate:"required"`
	AuthorName  string `validate:"required"`
	AuthorEmail string `validate:"required"`
	Title       string `validate:"required"`
	Description string `validate:"required"`
	Tag         string `validate:"required"`
	UpVote      *int64 `validate:"omitempty,min=0"`
	DownVote    *int64 `validate:"omitempty,min=0"`
}

func (r *CreatePostRequest) normalize() {
	r.AuthorImage = strings.TrimSpace(r.AuthorImage)
	r.AuthorName = strings.TrimSpace(r.AuthorName)
	r.AuthorEmail = strings.TrimSpace(r.AuthorEmail)
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Tag = strings.TrimSpace(r.Tag)
}

type CreateAnnouncementRequest struct {
	Title     string `validate:"required"`
	Message   string `validate:"required"`
	CreatedBy string `validate:"required"`
}

type UpsertUserRequest struct {
	Email string `validate:"required,email"`
	Name  string
	Photo string
}

type UpdateUserStatusRequest struct {
	Email  string `validate:"required"`
	Status string `validate:"required"`
}

type CreatePaymentIntentRequest struct {
	Amount         int64  `validate:"gt=0"`
	Currency       string `validate:"omitempty,len=3,alpha"`
	IdempotencyKey string
}
