package handler

import (
	"github.com/google/uuid"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/model"
)

type DonationEntryRequest struct {
	BookTitle   string `json:"book_title" binding:"required,notblank"`
	Author      string `json:"author" binding:"required,notblank"`
	Category    string `json:"category" binding:"omitempty,max=100"`
	Num         int    `json:"num"`
	PublishYear int    `json:"publish_year" binding:"omitempty,min=0,max=9999"`
	CoverImage  string `json:"cover_image" binding:"omitempty,url"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Notes       string `json:"notes" binding:"omitempty,max=2000"`
	HasExist    bool   `json:"has_exist"`
}

type CreateDonationsRequest struct {
	Entries []DonationEntryRequest `json:"entries" binding:"required,min=1,dive"`
}

type ValidateDonationsRequest struct {
	Entries     []DonationEntryRequest `json:"entries" binding:"required,min=1,dive"`
	ExcludingID *uuid.UUID             `json:"excluding_id"`
}

type EntryResult struct {
	Index     int    `json:"index"`
	BookTitle string `json:"book_title"`
	Code      string `json:"code"`
}

type ValidateDonationsResponse struct {
	Valid   bool          `json:"valid"`
	Entries []EntryResult `json:"entries"`
}

type Donation struct {
	ID            uuid.UUID        `json:"id"`
	DonorName     string           `json:"donationer_name"`
	BookTitle     string           `json:"book_title"`
	Author        string           `json:"author"`
	Category      string           `json:"category,omitempty"`
	Num           int              `json:"num"`
	PublishYear   int              `json:"publish_year,omitempty"`
	CoverImage    string           `json:"cover_image,omitempty"`
	Description   string           `json:"description,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	HasExist      bool             `json:"has_exist"`
	Status        string           `json:"status"`
	ConfirmerName string           `json:"confirmer_name,omitempty"`
	ReceiverName  string           `json:"receiver_name,omitempty"`
	DonationDate  model.Timestamp  `json:"donation_date" swaggertype:"string" example:"2025-11-24T09:30:00Z"`
	ConfirmDate   *model.Timestamp `json:"confirm_date,omitempty" swaggertype:"string" example:"2025-11-24T09:30:00Z"`
	SendDate      *model.Timestamp `json:"send_date,omitempty" swaggertype:"string" example:"2025-11-24T09:30:00Z"`
	ReceiveDate   *model.Timestamp `json:"receive_date,omitempty" swaggertype:"string" example:"2025-11-24T09:30:00Z"`
	CanceledAt    *model.Timestamp `json:"canceled_at,omitempty" swaggertype:"string" example:"2025-11-24T09:30:00Z"`
	Version       int64            `json:"version"`
}

type DonationResponse struct {
	Data Donation `json:"data"`
}

type ListDonationsResponse struct {
	Data []Donation `json:"data"`
}
