package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/model"
)

type recordPtr[T any] interface {
	*T
	model.Record
}

type GormStore[T any, P recordPtr[T]] struct {
	db *gorm.DB
}

func NewGormStore[T any, P recordPtr[T]](db *gorm.DB) *GormStore[T, P] {
	return &GormStore[T, P]{db: db}
}

func (s *GormStore[T, P]) List(ctx context.Context) ([]T, error) {
	var recs []T
	if err := s.db.WithContext(ctx).Order("created_at asc").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *GormStore[T, P]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var rec T
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

func (s *GormStore[T, P]) Insert(ctx context.Context, rec *T) error {
	return s.db.WithContext(ctx).Create(rec).Error
}

func (s *GormStore[T, P]) Update(ctx context.Context, id uuid.UUID, patch func(*T) error) (*T, error) {
	var rec T
	if err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&rec, "id = ?", id).Error; err != nil {

		return nil, translate(err)
	}

	p := P(&rec)
	version := p.Revision()

	if err := patch(&rec); err != nil {
		return nil, err
	}
	p.SetRevision(version + 1)

	result := s.db.WithContext(ctx).
		Model(&rec).
		Where("version = ?", version).
		Select("*").
		Updates(&rec)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrConflict
	}
	return &rec, nil
}

func (s *GormStore[T, P]) Remove(ctx context.Context, id uuid.UUID) (*T, error) {
	var rec T
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}

	result := s.db.WithContext(ctx).Delete(&rec, "id = ?", id)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &rec, nil
}

// Postgres reports lost races under row locks as one of these.
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgSerializationFailure, pgDeadlockDetected:
			return fmt.Errorf("%w: %s", ErrConflict, pgErr.Message)
		}
	}
	return err
}

func NewGormStores(db *gorm.DB) Stores {
	return Stores{
		Books:     NewGormStore[model.Book](db),
		Loans:     NewGormStore[model.LoanRecord](db),
		Donations: NewGormStore[model.DonationRecord](db),
	}
}

type GormUnitOfWork struct {
	db *gorm.DB
}

func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

func (u *GormUnitOfWork) Stores() Stores {
	return NewGormStores(u.db)
}

func (u *GormUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, s Stores) error) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, NewGormStores(tx))
	})
	if err != nil {
		return translate(err)
	}
	return nil
}
