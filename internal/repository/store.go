package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/model"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrConflict means the row changed between read and write.
	ErrConflict = errors.New("record was modified concurrently")
)

// Store is the CRUD contract the circulation core depends on, one per entity.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	Insert(ctx context.Context, rec *T) error
	// Update loads the record, applies patch and writes it back if its
	// version is unchanged. An error from patch aborts the write.
	Update(ctx context.Context, id uuid.UUID, patch func(*T) error) (*T, error)
	Remove(ctx context.Context, id uuid.UUID) (*T, error)
}

type Stores struct {
	Books     Store[model.Book]
	Loans     Store[model.LoanRecord]
	Donations Store[model.DonationRecord]
}

// UnitOfWork runs fn against stores bound to a single transaction. The
// transaction commits only when fn returns nil.
type UnitOfWork interface {
	Stores() Stores
	Within(ctx context.Context, fn func(ctx context.Context, s Stores) error) error
}
