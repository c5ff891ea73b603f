package model

import "time"

type LoanStatus string

const (
	LoanPending   LoanStatus = "pending"
	LoanDelivered LoanStatus = "delivered"
	LoanReceived  LoanStatus = "received"
	LoanReturned  LoanStatus = "returned"
	LoanCompleted LoanStatus = "completed"
	LoanCanceled  LoanStatus = "canceled"
)

// OpenLoanStatuses hold stock reserved against a book.
var OpenLoanStatuses = []LoanStatus{LoanPending, LoanDelivered, LoanReceived, LoanReturned}

func (s LoanStatus) Terminal() bool {
	return s == LoanCompleted || s == LoanCanceled
}

func (s LoanStatus) Valid() bool {
	switch s {
	case LoanPending, LoanDelivered, LoanReceived, LoanReturned, LoanCompleted, LoanCanceled:
		return true
	}
	return false
}

type LoanRecord struct {
	Base
	BorrowerName        string `gorm:"not null;index"`
	BookTitle           string `gorm:"not null;index"`
	Quantity            int    `gorm:"not null"`
	DelivererName       string
	ReturnConfirmerName string
	BorrowedAt          time.Time
	DeliveredAt         *time.Time
	ReceivedAt          *time.Time
	ReturnedAt          *time.Time
	ReturnConfirmedAt   *time.Time
	CanceledAt          *time.Time
	Status              LoanStatus `gorm:"type:varchar(16);not null;index"`
}
