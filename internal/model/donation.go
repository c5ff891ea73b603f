package model

import "time"

type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationConfirmed DonationStatus = "confirmed"
	DonationSent      DonationStatus = "sent"
	DonationReceived  DonationStatus = "received"
	DonationCanceled  DonationStatus = "canceled"
)

func (s DonationStatus) Terminal() bool {
	return s == DonationReceived || s == DonationCanceled
}

func (s DonationStatus) Valid() bool {
	switch s {
	case DonationPending, DonationConfirmed, DonationSent, DonationReceived, DonationCanceled:
		return true
	}
	return false
}

type DonationRecord struct {
	Base
	DonationerName string `gorm:"not null;index"`
	BookTitle      string `gorm:"not null;index"`
	Author         string `gorm:"not null"`
	Category       string
	Num            int `gorm:"not null"`
	PublishYear    int
	CoverImage     string
	Description    string
	Notes          string
	HasExist       bool
	ConfirmerName  string
	ReceiverName   string
	DonationDate   time.Time
	ConfirmDate    *time.Time
	SendDate       *time.Time
	ReceiveDate    *time.Time
	CanceledAt     *time.Time
	Status         DonationStatus `gorm:"type:varchar(16);not null;index"`
}
