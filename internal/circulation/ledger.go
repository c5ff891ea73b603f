package circulation

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/logging"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/repository"
)

// StatusDelta holds signed changes to a book's copy counters. Num changes the
// total number of copies owned and must be balanced by the counters.
type StatusDelta struct {
	Num       int
	Available int
	Loaned    int
	Disabled  int
	Renovated int
}

func (d StatusDelta) IsZero() bool {
	return d == StatusDelta{}
}

// applyDelta mutates b only if the result keeps every counter non-negative
// and the counters summing to Num.
func applyDelta(b *model.Book, d StatusDelta) error {
	next := model.BookStatus{
		Available: b.Status.Available + d.Available,
		Loaned:    b.Status.Loaned + d.Loaned,
		Disabled:  b.Status.Disabled + d.Disabled,
		Renovated: b.Status.Renovated + d.Renovated,
	}
	num := b.Num + d.Num

	if num < 0 || next.Available < 0 || next.Loaned < 0 || next.Disabled < 0 || next.Renovated < 0 {
		return newError(CodeNegativeCounter, "adjustment would leave a negative counter on %q", b.Name)
	}
	if next.Total() != num {
		return newError(CodeSumMismatch,
			"counters of %q would sum to %d but the book owns %d copies", b.Name, next.Total(), num)
	}

	b.Status = next
	b.Num = num
	return nil
}

func adjustBook(ctx context.Context, books repository.Store[model.Book], id uuid.UUID, d StatusDelta) (*model.Book, error) {
	book, err := books.Update(ctx, id, func(b *model.Book) error {
		return applyDelta(b, d)
	})
	if err != nil {
		return nil, storeError(err, "book")
	}
	return book, nil
}

// reserveCopies moves quantity copies from available to loaned. Stock is
// checked against the locked row, not an earlier read.
func reserveCopies(ctx context.Context, books repository.Store[model.Book], id uuid.UUID, quantity int) (*model.Book, error) {
	book, err := books.Update(ctx, id, func(b *model.Book) error {
		if quantity > b.Status.Available {
			return newError(CodeInsufficientStock,
				"%d copies of %q requested but only %d available", quantity, b.Name, b.Status.Available)
		}
		return applyDelta(b, StatusDelta{Available: -quantity, Loaned: quantity})
	})
	if err != nil {
		return nil, storeError(err, "book")
	}
	return book, nil
}

// Admission is the book data a received donation brings into the catalog.
type Admission struct {
	Title       string
	Author      string
	Category    string
	Num         int
	Description string
	PublishYear int
	CoverImage  string
}

// mergeOrCreate adds n copies to the title if the catalog has it, otherwise
// creates the title with every copy available.
func mergeOrCreate(ctx context.Context, books repository.Store[model.Book], a Admission) (*model.Book, error) {
	if a.Num <= 0 {
		return nil, newError(CodeInvalidQuantity, "admission needs a positive number of copies")
	}

	existing, err := resolveBookByTitle(ctx, books, a.Title)
	if err == nil {
		return adjustBook(ctx, books, existing.ID, StatusDelta{Num: a.Num, Available: a.Num})
	}
	if CodeOf(err) != CodeNotFound {
		return nil, err
	}

	book := model.Book{
		Name:        strings.TrimSpace(a.Title),
		Author:      a.Author,
		Category:    a.Category,
		Description: a.Description,
		PublishYear: a.PublishYear,
		CoverImage:  a.CoverImage,
		Num:         a.Num,
		Status:      model.BookStatus{Available: a.Num},
	}
	if err := books.Insert(ctx, &book); err != nil {
		return nil, storeError(err, "book")
	}
	return &book, nil
}

// AdjustBookStatus applies an admin correction to a book's counters, e.g.
// moving damaged copies from available to renovated.
func (s *Service) AdjustBookStatus(ctx context.Context, actor Actor, bookID uuid.UUID, d StatusDelta) (*model.Book, error) {
	if err := requireAdmin(actor, "adjust book status"); err != nil {
		return nil, err
	}
	if d.IsZero() {
		return nil, newError(CodeInvalidDelta, "status adjustment is empty")
	}

	var book *model.Book
	err := s.atomically(ctx, func(ctx context.Context, st repository.Stores) error {
		var err error
		book, err = adjustBook(ctx, st.Books, bookID, d)
		return err
	})
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).WithFields(logrus.Fields{
		"book_id":   book.ID,
		"actor":     actor.Email,
		"available": book.Status.Available,
		"loaned":    book.Status.Loaned,
		"disabled":  book.Status.Disabled,
		"renovated": book.Status.Renovated,
	}).Info("book status adjusted")

	s.publish(ctx, Event{
		Type:      EventBookStatusAdjusted,
		RecordID:  book.ID,
		BookTitle: book.Name,
		Actor:     actor.Email,
	})
	return book, nil
}
