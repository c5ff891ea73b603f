package circulation

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/repository"
)

// normalizeTitle is the comparison key for every title match.
func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

func findBook(books []model.Book, title string) (model.Book, bool) {
	key := normalizeTitle(title)
	return lo.Find(books, func(b model.Book) bool {
		return normalizeTitle(b.Name) == key
	})
}

// resolveBookByTitle is the only place records are joined to books. The
// oldest matching title wins.
func resolveBookByTitle(ctx context.Context, books repository.Store[model.Book], title string) (*model.Book, error) {
	all, err := books.List(ctx)
	if err != nil {
		return nil, storeError(err, "books")
	}
	book, ok := findBook(all, title)
	if !ok {
		return nil, &Error{
			Code:    CodeNotFound,
			Message: "no book titled " + strings.TrimSpace(title),
			Err:     repository.ErrNotFound,
		}
	}
	return &book, nil
}

// openReferences reports whether a non-terminal loan or donation still
// points at title.
func openReferences(ctx context.Context, st repository.Stores, title string) (bool, error) {
	key := normalizeTitle(title)

	loans, err := st.Loans.List(ctx)
	if err != nil {
		return false, storeError(err, "loans")
	}
	if lo.ContainsBy(loans, func(l model.LoanRecord) bool {
		return !l.Status.Terminal() && normalizeTitle(l.BookTitle) == key
	}) {
		return true, nil
	}

	donations, err := st.Donations.List(ctx)
	if err != nil {
		return false, storeError(err, "donations")
	}
	return lo.ContainsBy(donations, func(d model.DonationRecord) bool {
		return !d.Status.Terminal() && normalizeTitle(d.BookTitle) == key
	}), nil
}

// checkDonationTitle applies the catalog and pending-donation rules to a
// single title. It returns "" when the title is acceptable.
func checkDonationTitle(
	title string,
	claimsExists bool,
	excludingID uuid.UUID,
	books []model.Book,
	donations []model.DonationRecord,
) Code {
	_, exists := findBook(books, title)

	if claimsExists && !exists {
		return CodeExistsMismatchTrue
	}
	if !claimsExists && exists {
		return CodeExistsMismatchFalse
	}

	key := normalizeTitle(title)
	pendingElsewhere := lo.ContainsBy(donations, func(d model.DonationRecord) bool {
		return d.ID != excludingID &&
			!d.Status.Terminal() &&
			normalizeTitle(d.BookTitle) == key
	})
	if pendingElsewhere && !exists {
		return CodePendingElsewhere
	}

	return ""
}

// validateDonationBatch checks every entry of one submission. All failures
// are collected, one EntryError per failing entry.
func validateDonationBatch(
	ctx context.Context,
	st repository.Stores,
	entries []DonationInput,
	excludingID uuid.UUID,
) error {
	books, err := st.Books.List(ctx)
	if err != nil {
		return storeError(err, "books")
	}
	donations, err := st.Donations.List(ctx)
	if err != nil {
		return storeError(err, "donations")
	}

	counts := make(map[string]int, len(entries))
	for _, in := range entries {
		counts[normalizeTitle(in.BookTitle)]++
	}

	var merr *multierror.Error
	var first Code
	for i, in := range entries {
		var code Code
		switch {
		case in.Num <= 0:
			code = CodeInvalidQuantity
		case counts[normalizeTitle(in.BookTitle)] > 1:
			code = CodeDuplicateInForm
		default:
			code = checkDonationTitle(in.BookTitle, in.HasExist, excludingID, books, donations)
		}
		if code == "" {
			continue
		}
		if first == "" {
			first = code
		}
		merr = multierror.Append(merr, &EntryError{
			Index: i,
			Title: strings.TrimSpace(in.BookTitle),
			Code:  code,
		})
	}

	if merr == nil {
		return nil
	}
	return &Error{Code: first, Message: "donation validation failed", Err: merr.ErrorOrNil()}
}

// ValidateDonationTitle runs the title checks for one entry without writing
// anything. excludingID skips the record being edited.
func (s *Service) ValidateDonationTitle(ctx context.Context, title string, claimsExists bool, excludingID uuid.UUID) error {
	return s.ValidateDonations(ctx, []DonationInput{{BookTitle: title, HasExist: claimsExists, Num: 1}}, excludingID)
}

// ValidateDonations is the dry run of a submission.
func (s *Service) ValidateDonations(ctx context.Context, entries []DonationInput, excludingID uuid.UUID) error {
	if len(entries) == 0 {
		return newError(CodeInvalidQuantity, "a donation needs at least one entry")
	}
	return validateDonationBatch(ctx, s.uow.Stores(), entries, excludingID)
}
