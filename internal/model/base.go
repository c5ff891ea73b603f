package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the identity and optimistic-concurrency version shared by
// every persisted record.
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Version   int64     `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b *Base) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Version == 0 {
		b.Version = 1
	}
	return
}

func (b *Base) Key() uuid.UUID { return b.ID }

func (b *Base) Revision() int64 { return b.Version }

func (b *Base) SetRevision(v int64) { b.Version = v }

// Record is implemented by pointers to every entity embedding Base.
type Record interface {
	Key() uuid.UUID
	Revision() int64
	SetRevision(v int64)
}
