package circulation

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/logging"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/repository"
)

type loanStep struct {
	adminOnly bool
	// release hands the reserved copies back to available.
	release bool
	record  func(l *model.LoanRecord, actor Actor, at *time.Time)
}

var loanSteps = map[model.LoanStatus]map[model.LoanStatus]loanStep{
	model.LoanPending: {
		model.LoanDelivered: {
			adminOnly: true,
			record: func(l *model.LoanRecord, actor Actor, at *time.Time) {
				l.DeliveredAt = at
				l.DelivererName = actor.Email
			},
		},
		model.LoanCanceled: {
			adminOnly: true,
			release:   true,
			record: func(l *model.LoanRecord, _ Actor, at *time.Time) {
				l.CanceledAt = at
			},
		},
	},
	model.LoanDelivered: {
		model.LoanReceived: {
			record: func(l *model.LoanRecord, _ Actor, at *time.Time) {
				l.ReceivedAt = at
			},
		},
	},
	model.LoanReceived: {
		model.LoanReturned: {
			record: func(l *model.LoanRecord, _ Actor, at *time.Time) {
				l.ReturnedAt = at
			},
		},
	},
	model.LoanReturned: {
		model.LoanCompleted: {
			adminOnly: true,
			release:   true,
			record: func(l *model.LoanRecord, actor Actor, at *time.Time) {
				l.ReturnConfirmedAt = at
				l.ReturnConfirmerName = actor.Email
			},
		},
	},
}

// CreateLoan reserves quantity copies of the title for the borrower. The
// copies leave available stock immediately, while the loan is still pending.
func (s *Service) CreateLoan(ctx context.Context, borrowerName, bookTitle string, quantity int) (*model.LoanRecord, error) {
	borrowerName = strings.TrimSpace(borrowerName)
	if borrowerName == "" {
		return nil, newError(CodeUnauthorizedActor, "a loan needs a borrower")
	}
	if quantity <= 0 {
		return nil, newError(CodeInvalidQuantity, "quantity must be positive, got %d", quantity)
	}

	var loan model.LoanRecord
	err := s.atomically(ctx, func(ctx context.Context, st repository.Stores) error {
		book, err := resolveBookByTitle(ctx, st.Books, bookTitle)
		if err != nil {
			return err
		}
		if _, err := reserveCopies(ctx, st.Books, book.ID, quantity); err != nil {
			return err
		}

		loan = model.LoanRecord{
			BorrowerName: borrowerName,
			BookTitle:    book.Name,
			Quantity:     quantity,
			BorrowedAt:   s.now(),
			Status:       model.LoanPending,
		}
		return storeError(st.Loans.Insert(ctx, &loan), "loan")
	})
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).WithFields(logrus.Fields{
		"loan_id":  loan.ID,
		"book":     loan.BookTitle,
		"quantity": loan.Quantity,
		"borrower": loan.BorrowerName,
	}).Info("loan created")

	s.publish(ctx, Event{
		Type:      EventLoanCreated,
		RecordID:  loan.ID,
		BookTitle: loan.BookTitle,
		Status:    string(loan.Status),
		Actor:     loan.BorrowerName,
	})
	return &loan, nil
}

// TransitionLoan moves a loan to target if the lifecycle allows it from the
// current status and actor is entitled to make the move.
func (s *Service) TransitionLoan(ctx context.Context, id uuid.UUID, target model.LoanStatus, actor Actor) (*model.LoanRecord, error) {
	var (
		updated *model.LoanRecord
		from    model.LoanStatus
	)
	err := s.atomically(ctx, func(ctx context.Context, st repository.Stores) error {
		current, err := st.Loans.GetByID(ctx, id)
		if err != nil {
			return storeError(err, "loan")
		}
		from = current.Status

		step, ok := loanSteps[from][target]
		if !ok {
			return newError(CodeInvalidTransition, "loan cannot move from %s to %s", from, target)
		}
		if step.adminOnly {
			err = requireAdmin(actor, "mark a loan "+string(target))
		} else {
			err = requireSelf(actor, current.BorrowerName, "mark this loan "+string(target))
		}
		if err != nil {
			return err
		}

		at := s.stamp()
		updated, err = st.Loans.Update(ctx, id, func(l *model.LoanRecord) error {
			if l.Status != from {
				return repository.ErrConflict
			}
			l.Status = target
			step.record(l, actor, at)
			return nil
		})
		if err != nil {
			return storeError(err, "loan")
		}

		if step.release {
			book, err := resolveBookByTitle(ctx, st.Books, updated.BookTitle)
			if err != nil {
				return err
			}
			if _, err := adjustBook(ctx, st.Books, book.ID, StatusDelta{
				Available: updated.Quantity,
				Loaned:    -updated.Quantity,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).WithFields(logrus.Fields{
		"loan_id": updated.ID,
		"from":    from,
		"to":      updated.Status,
		"actor":   actor.Email,
	}).Info("loan transitioned")

	s.publish(ctx, Event{
		Type:      loanEventType(string(updated.Status)),
		RecordID:  updated.ID,
		BookTitle: updated.BookTitle,
		Status:    string(updated.Status),
		Actor:     actor.Email,
	})
	return updated, nil
}

type LoanFilter struct {
	Borrower string
	Status   model.LoanStatus
}

// ListLoans returns loans matching f. Non-admins only ever see their own.
func (s *Service) ListLoans(ctx context.Context, actor Actor, f LoanFilter) ([]model.LoanRecord, error) {
	owner, err := scopeOwner(actor)
	if err != nil {
		return nil, err
	}
	if owner != "" {
		f.Borrower = owner
	}

	loans, err := s.uow.Stores().Loans.List(ctx)
	if err != nil {
		return nil, storeError(err, "loans")
	}

	return lo.Filter(loans, func(l model.LoanRecord, _ int) bool {
		if f.Borrower != "" && !strings.EqualFold(l.BorrowerName, strings.TrimSpace(f.Borrower)) {
			return false
		}
		return f.Status == "" || l.Status == f.Status
	}), nil
}

func (s *Service) GetLoan(ctx context.Context, actor Actor, id uuid.UUID) (*model.LoanRecord, error) {
	loan, err := s.uow.Stores().Loans.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "loan")
	}
	if !actor.IsAdmin() && !actor.Is(loan.BorrowerName) {
		return nil, newError(CodeUnauthorizedActor, "loan belongs to another borrower")
	}
	return loan, nil
}
