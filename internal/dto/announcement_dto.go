package dto

import (
	"github.com/google/uuid"
)

type CreateAnnouncementRequest struct {
	Title    string  `json:"title" validate:"required"`
	Content  string  `json:"content" validate:"required"`
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	IsPublic *bool   `json:"is_public"`
	ImageUrl *string `json:"image_url"`
}

type UpdateAnnouncementRequest struct {
	Id       uuid.UUID `json:"-"`
	Title    string    `json:"title" validate:"required"`
	Content  string    `json:"content" validate:"required"`
	Date     string    `json:"date" validate:"required,datetime=2006-01-02"`
	IsPublic *bool     `json:"is_public"`
	ImageUrl *string   `json:"image_url"`
}

type AnnouncementResponse struct {
	Id       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Date     string    `json:"date"`
	IsPublic bool      `json:"is_public"`
	ImageUrl *string   `json:"image_url,omitempty"`
}
