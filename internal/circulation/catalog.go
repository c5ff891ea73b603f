package circulation

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/logging"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/repository"
)

type BookInput struct {
	Name        string
	Author      string
	Category    string
	Description string
	ISBN        string
	PublishYear int
	CoverImage  string
	Num         int
}

// BookPatch holds metadata edits; nil fields are left alone. Copy counts
// change only through AdjustBookStatus.
type BookPatch struct {
	Name        *string
	Author      *string
	Category    *string
	Description *string
	ISBN        *string
	PublishYear *int
	CoverImage  *string
}

func (p BookPatch) IsEmpty() bool {
	return p == BookPatch{}
}

func (s *Service) GetBook(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	book, err := s.uow.Stores().Books.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "book")
	}
	return book, nil
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	books, err := s.uow.Stores().Books.List(ctx)
	if err != nil {
		return nil, storeError(err, "books")
	}
	return books, nil
}

// CreateBook adds a title directly, with every copy available.
func (s *Service) CreateBook(ctx context.Context, actor Actor, in BookInput) (*model.Book, error) {
	if err := requireAdmin(actor, "create books"); err != nil {
		return nil, err
	}
	if in.Num <= 0 {
		return nil, newError(CodeInvalidQuantity, "a book needs at least one copy")
	}

	book := model.Book{
		Name:        strings.TrimSpace(in.Name),
		Author:      in.Author,
		Category:    in.Category,
		Description: in.Description,
		ISBN:        in.ISBN,
		PublishYear: in.PublishYear,
		CoverImage:  in.CoverImage,
		Num:         in.Num,
		Status:      model.BookStatus{Available: in.Num},
	}

	err := s.atomically(ctx, func(ctx context.Context, st repository.Stores) error {
		all, err := st.Books.List(ctx)
		if err != nil {
			return storeError(err, "books")
		}
		if _, taken := findBook(all, book.Name); taken {
			return newError(CodeDuplicateTitle, "a book titled %q already exists", book.Name)
		}
		book.ID = uuid.Nil
		return storeError(st.Books.Insert(ctx, &book), "book")
	})
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).WithField("book_id", book.ID).WithField("actor", actor.Email).Info("book created")
	return &book, nil
}

// UpdateBook edits metadata. Renaming is refused while open loans or
// donations still refer to the current title.
func (s *Service) UpdateBook(ctx context.Context, actor Actor, id uuid.UUID, p BookPatch) (*model.Book, error) {
	if err := requireAdmin(actor, "edit books"); err != nil {
		return nil, err
	}

	var book *model.Book
	err := s.atomically(ctx, func(ctx context.Context, st repository.Stores) error {
		current, err := st.Books.GetByID(ctx, id)
		if err != nil {
			return storeError(err, "book")
		}

		if p.Name != nil && normalizeTitle(*p.Name) != normalizeTitle(current.Name) {
			all, err := st.Books.List(ctx)
			if err != nil {
				return storeError(err, "books")
			}
			if _, taken := findBook(all, *p.Name); taken {
				return newError(CodeDuplicateTitle, "a book titled %q already exists", strings.TrimSpace(*p.Name))
			}
			inUse, err := openReferences(ctx, st, current.Name)
			if err != nil {
				return err
			}
			if inUse {
				return newError(CodeBookInUse, "%q has open loans or donations and cannot be renamed", current.Name)
			}
		}

		book, err = st.Books.Update(ctx, id, func(b *model.Book) error {
			if p.Name != nil {
				b.Name = strings.TrimSpace(*p.Name)
			}
			if p.Author != nil {
				b.Author = *p.Author
			}
			if p.Category != nil {
				b.Category = *p.Category
			}
			if p.Description != nil {
				b.Description = *p.Description
			}
			if p.ISBN != nil {
				b.ISBN = *p.ISBN
			}
			if p.PublishYear != nil {
				b.PublishYear = *p.PublishYear
			}
			if p.CoverImage != nil {
				b.CoverImage = *p.CoverImage
			}
			return nil
		})
		return storeError(err, "book")
	})
	if err != nil {
		return nil, err
	}
	return book, nil
}

// DeleteBook removes a title that no open loan or donation refers to.
func (s *Service) DeleteBook(ctx context.Context, actor Actor, id uuid.UUID) (*model.Book, error) {
	if err := requireAdmin(actor, "delete books"); err != nil {
		return nil, err
	}

	var removed *model.Book
	err := s.atomically(ctx, func(ctx context.Context, st repository.Stores) error {
		current, err := st.Books.GetByID(ctx, id)
		if err != nil {
			return storeError(err, "book")
		}
		inUse, err := openReferences(ctx, st, current.Name)
		if err != nil {
			return err
		}
		if inUse {
			return newError(CodeBookInUse, "%q has open loans or donations and cannot be deleted", current.Name)
		}
		removed, err = st.Books.Remove(ctx, id)
		return storeError(err, "book")
	})
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).WithField("book_id", id).WithField("actor", actor.Email).Info("book deleted")
	return removed, nil
}
