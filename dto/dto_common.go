package dto

type ErrorResponse struct {
	Message string `json:"message" example:"Post not found"`
}

type InsertedResponse struct {
	InsertedID string `json:"insertedId" example:"665f1c2a9b1e8a3d4c5b6a70"`
}
