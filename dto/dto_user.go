package dto

type UpsertUserDTO struct {
	Email string `json:"email" example:"ann@example.com"`
	Name  string `json:"name" example:"Ann Lee"`
	Photo string `json:"photo" example:"https://i.ibb.co/avatar.png"`
}

type UpdateStatusDTO struct {
	Status string `json:"status" example:"gold"`
}
