// Package circulation keeps the book inventory consistent with the loan and
// donation lifecycles. Every operation that changes a record and its book
// runs as one unit of work and either commits completely or not at all.
package circulation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/logging"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/repository"
)

type Service struct {
	uow       repository.UnitOfWork
	publisher Publisher
	now       func() time.Time
	retry     retryConfig
}

type Option func(*Service)

func WithPublisher(p Publisher) Option {
	return func(s *Service) {
		if p != nil {
			s.publisher = p
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRetry sets how often a unit of work is retried after a version conflict.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(s *Service) {
		s.retry.maxAttempts = maxAttempts
		s.retry.baseDelay = baseDelay
	}
}

func NewService(uow repository.UnitOfWork, opts ...Option) *Service {
	s := &Service{
		uow:       uow,
		publisher: NopPublisher{},
		now:       func() time.Time { return time.Now().UTC() },
		retry: retryConfig{
			maxAttempts:  defaultMaxAttempts,
			baseDelay:    defaultBaseDelay,
			jitterFactor: defaultJitterFactor,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// atomically runs fn in a transaction, retrying on version conflicts.
func (s *Service) atomically(ctx context.Context, fn func(ctx context.Context, st repository.Stores) error) error {
	return retryOnConflict(ctx, s.retry, func(ctx context.Context) error {
		return s.uow.Within(ctx, fn)
	})
}

// publish runs after commit; a failure is logged and never undoes the change.
func (s *Service) publish(ctx context.Context, ev Event) {
	ev.ID = uuid.New()
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = s.now()
	}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		logging.FromContext(ctx).
			WithError(err).
			WithFields(logrus.Fields{"event": ev.Type, "record_id": ev.RecordID}).
			Warn("failed to publish circulation event")
	}
}

func (s *Service) stamp() *time.Time {
	t := s.now()
	return &t
}
