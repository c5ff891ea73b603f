package handler

import (
	"github.com/google/uuid"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/model"
)

type CreateLoanRequest struct {
	BookTitle string `json:"book_title" binding:"required,notblank"`
	Quantity  int    `json:"quantity"`
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required,notblank"`
}

type Loan struct {
	ID                  uuid.UUID        `json:"id"`
	BorrowerName        string           `json:"borrower_name"`
	BookTitle           string           `json:"book_title"`
	Quantity            int              `json:"quantity"`
	Status              string           `json:"status"`
	DelivererName       string           `json:"deliverer_name,omitempty"`
	ReturnConfirmerName string           `json:"return_confirmer_name,omitempty"`
	BorrowedAt          model.Timestamp  `json:"borrowed_at" swaggertype:"string" example:"2025-11-24T09:30:00Z"`
	DeliveredAt         *model.Timestamp `json:"delivered_at,omitempty" swaggertype:"string" example:"2025-11-24T09:30:00Z"`
	ReceivedAt          *model.Timestamp `json:"received_at,omitempty" swaggertype:"string" example:"2025-11-24T09:30:00Z"`
	ReturnedAt          *model.Timestamp `json:"returned_at,omitempty" swaggertype:"string" example:"2025-11-24T09:30:00Z"`
	ReturnConfirmedAt   *model.Timestamp `json:"return_confirmed_at,omitempty" swaggertype:"string" example:"2025-11-24T09:30:00Z"`
	CanceledAt          *model.Timestamp `json:"canceled_at,omitempty" swaggertype:"string" example:"2025-11-24T09:30:00Z"`
	Version             int64            `json:"version"`
}

type LoanResponse struct {
	Data Loan `json:"data"`
}

type ListLoansResponse struct {
	Data []Loan `json:"data"`
}
