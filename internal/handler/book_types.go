package handler

import (
	"github.com/google/uuid"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/model"
)

type CreateBookRequest struct {
	Name        string `json:"name" binding:"required,notblank"`
	Author      string `json:"author" binding:"required,notblank"`
	Category    string `json:"category" binding:"omitempty,max=100"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	ISBN        string `json:"isbn" binding:"omitempty,max=32"`
	PublishYear int    `json:"publish_year" binding:"omitempty,min=0,max=9999"`
	CoverImage  string `json:"cover_image" binding:"omitempty,url"`
	Num         int    `json:"num"`
}

type UpdateBookRequest struct {
	Name        *string `json:"name" binding:"omitempty,notblank"`
	Author      *string `json:"author" binding:"omitempty,notblank"`
	Category    *string `json:"category" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	ISBN        *string `json:"isbn" binding:"omitempty,max=32"`
	PublishYear *int    `json:"publish_year" binding:"omitempty,min=0,max=9999"`
	CoverImage  *string `json:"cover_image" binding:"omitempty,url"`
}

// AdjustStatusRequest carries signed counter changes.
type AdjustStatusRequest struct {
	Num       int `json:"num"`
	Available int `json:"available"`
	Loaned    int `json:"loaned"`
	Disabled  int `json:"disabled"`
	Renovated int `json:"renovated"`
}

type BookStatus struct {
	Available int `json:"available"`
	Loaned    int `json:"loaned"`
	Disabled  int `json:"disabled"`
	Renovated int `json:"renovated"`
}

type Book struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Author      string          `json:"author"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	ISBN        string          `json:"isbn,omitempty"`
	PublishYear int             `json:"publish_year,omitempty"`
	CoverImage  string          `json:"cover_image,omitempty"`
	Num         int             `json:"num"`
	Status      BookStatus      `json:"status"`
	Version     int64           `json:"version"`
	CreatedAt   model.Timestamp `json:"created_at" swaggertype:"string" example:"2025-11-24T09:30:00Z"`
	UpdatedAt   model.Timestamp `json:"updated_at" swaggertype:"string" example:"2025-11-24T09:30:00Z"`
}

type BookResponse struct {
	Data Book `json:"data"`
}

type Pagination struct {
	Page       int   `json:"page" binding:"omitempty,min=1"`
	PageSize   int   `json:"page_size" binding:"omitempty,min=1"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type ListBooksResponse struct {
	Data       []Book     `json:"data"`
	Pagination Pagination `json:"pagination"`
}
