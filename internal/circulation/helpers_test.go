package circulation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/testutil"
)

var (
	admin = Actor{Email: "librarian@example.com", Role: RoleAdmin}
	ana   = Actor{Email: "ana@example.com", Role: RoleUser}
	ben   = Actor{Email: "ben@example.com", Role: RoleUser}
)

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

type recordingPublisher struct {
	mu     sync.Mutex
	events []Event
}

func (p *recordingPublisher) Publish(_ context.Context, ev Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Type)
	}
	return out
}

func newTestService(t *testing.T) (*Service, *gorm.DB, *recordingPublisher) {
	t.Helper()

	db := testutil.NewTestDB(t)
	pub := &recordingPublisher{}
	svc := NewService(
		repository.NewGormUnitOfWork(db),
		WithPublisher(pub),
		WithClock(func() time.Time { return fixedNow }),
		WithRetry(3, time.Millisecond),
	)
	return svc, db, pub
}

func requireCode(t *testing.T, err error, code Code) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, CodeOf(err), "unexpected error: %v", err)
}

func requireStatus(t *testing.T, db *gorm.DB, book model.Book, want model.BookStatus) model.Book {
	t.Helper()
	fresh := testutil.ReloadBook(t, db, book)
	require.Equal(t, want, fresh.Status)
	require.Equal(t, fresh.Num, fresh.Status.Total(), "counters must sum to num")
	return fresh
}
