package dto

type CreateAnnouncementDTO struct {
	Title     string `json:"title" example:"Maintenance"`
	Message   string `json:"message" example:"Read-only mode tonight"`
	CreatedBy string `json:"createdBy" example:"admin@example.com"`
}
