package circulation

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EventLoanCreated        = "loan.created"
	EventDonationCreated    = "donation.created"
	EventDonationUpdated    = "donation.updated"
	EventBookStatusAdjusted = "book.status_adjusted"
)

// Event describes a committed change, published for notification consumers.
type Event struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	RecordID   uuid.UUID `json:"record_id"`
	BookTitle  string    `json:"book_title"`
	Status     string    `json:"status,omitempty"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

func loanEventType(status string) string     { return "loan." + status }
func donationEventType(status string) string { return "donation." + status }
