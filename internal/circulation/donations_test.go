package circulation

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/logging"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/testutil"
)

func donation(title string, num int, hasExist bool) DonationInput {
	return DonationInput{
		BookTitle: title,
		Author:    "Someone",
		Category:  "fiction",
		Num:       num,
		HasExist:  hasExist,
	}
}

func receive(t *testing.T, svc *Service, id uuid.UUID, donor Actor) *model.DonationRecord {
	t.Helper()
	ctx := context.Background()

	_, err := svc.TransitionDonation(ctx, id, model.DonationConfirmed, admin)
	require.NoError(t, err)
	_, err = svc.TransitionDonation(ctx, id, model.DonationSent, donor)
	require.NoError(t, err)
	rec, err := svc.TransitionDonation(ctx, id, model.DonationReceived, admin)
	require.NoError(t, err)
	return rec
}

func Test_Donation_NewTitleIsCreatedOnReceipt(t *testing.T) {
	svc, _, pub := newTestService(t)
	ctx := context.Background()

	rec, err := svc.CreateDonation(ctx, ana.Email, donation("Y", 5, false))
	require.NoError(t, err)
	assert.Equal(t, model.DonationPending, rec.Status)
	assert.Equal(t, fixedNow, rec.DonationDate.UTC())

	books, err := svc.ListBooks(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)

	rec = receive(t, svc, rec.ID, ana)
	assert.Equal(t, model.DonationReceived, rec.Status)
	assert.Equal(t, admin.Email, rec.ConfirmerName)
	assert.Equal(t, admin.Email, rec.ReceiverName)
	require.NotNil(t, rec.ConfirmDate)
	require.NotNil(t, rec.SendDate)
	require.NotNil(t, rec.ReceiveDate)

	books, err = svc.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Y", books[0].Name)
	assert.Equal(t, 5, books[0].Num)
	assert.Equal(t, model.BookStatus{Available: 5}, books[0].Status)

	assert.Equal(t, []string{
		EventDonationCreated,
		"donation.confirmed",
		"donation.sent",
		"donation.received",
	}, pub.types())
}

func Test_Donation_ExistingTitleIsMergedOnReceipt(t *testing.T) {
	svc, db, _ := newTestService(t)
	book := testutil.SeedBook(t, db, "X", 10)
	ctx := context.Background()

	_, err := svc.CreateLoan(ctx, ben.Email, "X", 2)
	require.NoError(t, err)
	_, err = svc.AdjustBookStatus(ctx, admin, book.ID, StatusDelta{Available: -1, Disabled: 1})
	require.NoError(t, err)

	rec, err := svc.CreateDonation(ctx, ana.Email, donation("x", 3, true))
	require.NoError(t, err)
	receive(t, svc, rec.ID, ana)

	fresh := requireStatus(t, db, book, model.BookStatus{Available: 10, Loaned: 2, Disabled: 1})
	assert.Equal(t, 13, fresh.Num)

	books, err := svc.ListBooks(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 1)
}

func Test_Donation_PendingElsewhere(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateDonation(ctx, ana.Email, donation("The Hobbit", 1, false))
	require.NoError(t, err)

	_, err = svc.CreateDonation(ctx, ben.Email, donation(" the hobbit ", 2, false))
	requireCode(t, err, CodePendingElsewhere)

	_, err = svc.TransitionDonation(ctx, first.ID, model.DonationCanceled, admin)
	require.NoError(t, err)

	_, err = svc.CreateDonation(ctx, ben.Email, donation(" the hobbit ", 2, false))
	require.NoError(t, err)
}

func Test_Donation_ExistsClaimMustMatchCatalog(t *testing.T) {
	svc, db, _ := newTestService(t)
	testutil.SeedBook(t, db, "Dune", 1)
	ctx := context.Background()

	_, err := svc.CreateDonation(ctx, ana.Email, donation("Emma", 1, true))
	requireCode(t, err, CodeExistsMismatchTrue)

	_, err = svc.CreateDonation(ctx, ana.Email, donation("DUNE", 1, false))
	requireCode(t, err, CodeExistsMismatchFalse)

	_, err = svc.CreateDonation(ctx, ana.Email, donation("DUNE", 1, true))
	require.NoError(t, err)

	// a pending donation of an owned title does not block another one
	_, err = svc.CreateDonation(ctx, ben.Email, donation("dune", 2, true))
	require.NoError(t, err)
}

func Test_CreateDonations_RejectsTheWholeBatch(t *testing.T) {
	svc, db, _ := newTestService(t)
	testutil.SeedBook(t, db, "Dune", 1)
	ctx := context.Background()

	_, err := svc.CreateDonations(ctx, ana.Email, []DonationInput{
		donation("Emma", 1, false),
		donation("The Hobbit", 1, false),
		donation("Dune", 0, true),
		donation(" the hobbit", 1, false),
		donation("Dune", 1, false),
	})
	requireCode(t, err, CodeDuplicateInForm)

	entries := EntryErrors(err)
	require.Len(t, entries, 4)
	assert.Equal(t, 1, entries[0].Index)
	assert.Equal(t, CodeDuplicateInForm, entries[0].Code)
	assert.Equal(t, 2, entries[1].Index)
	assert.Equal(t, CodeInvalidQuantity, entries[1].Code)
	assert.Equal(t, 3, entries[2].Index)
	assert.Equal(t, CodeDuplicateInForm, entries[2].Code)
	assert.Equal(t, "the hobbit", entries[2].Title)
	assert.Equal(t, 4, entries[3].Index)
	assert.Equal(t, CodeDuplicateInForm, entries[3].Code)

	donations, err := svc.ListDonations(ctx, admin, DonationFilter{})
	require.NoError(t, err)
	assert.Empty(t, donations)
}

func Test_CreateDonations_StoresEveryEntry(t *testing.T) {
	svc, _, pub := newTestService(t)
	ctx := context.Background()

	recs, err := svc.CreateDonations(ctx, ana.Email, []DonationInput{
		donation("Emma", 1, false),
		donation("Persuasion", 2, false),
	})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Emma", recs[0].BookTitle)
	assert.Equal(t, "Persuasion", recs[1].BookTitle)
	assert.Equal(t, []string{EventDonationCreated, EventDonationCreated}, pub.types())

	_, err = svc.CreateDonations(ctx, ana.Email, nil)
	requireCode(t, err, CodeInvalidQuantity)

	_, err = svc.CreateDonations(ctx, "", []DonationInput{donation("Other", 1, false)})
	requireCode(t, err, CodeUnauthorizedActor)
}

func Test_ValidateDonations_DoesNotWrite(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.ValidateDonations(ctx, []DonationInput{donation("Emma", 1, false)}, uuid.Nil))

	rec, err := svc.CreateDonation(ctx, ana.Email, donation("Emma", 1, false))
	require.NoError(t, err)

	err = svc.ValidateDonationTitle(ctx, "emma", false, uuid.Nil)
	requireCode(t, err, CodePendingElsewhere)

	require.NoError(t, svc.ValidateDonationTitle(ctx, "emma", false, rec.ID))

	donations, err := svc.ListDonations(ctx, admin, DonationFilter{})
	require.NoError(t, err)
	assert.Len(t, donations, 1)
}

func Test_UpdateDonation(t *testing.T) {
	svc, _, pub := newTestService(t)
	ctx := context.Background()

	rec, err := svc.CreateDonation(ctx, ana.Email, donation("Emma", 1, false))
	require.NoError(t, err)
	other, err := svc.CreateDonation(ctx, ben.Email, donation("Persuasion", 1, false))
	require.NoError(t, err)

	edit := donation(" Emma ", 4, false)
	edit.Notes = "hardcover"
	updated, err := svc.UpdateDonation(ctx, ana, rec.ID, edit)
	require.NoError(t, err)
	assert.Equal(t, "Emma", updated.BookTitle)
	assert.Equal(t, 4, updated.Num)
	assert.Equal(t, "hardcover", updated.Notes)
	assert.Equal(t, rec.Version+1, updated.Version)

	_, err = svc.UpdateDonation(ctx, ana, rec.ID, donation("persuasion", 1, false))
	requireCode(t, err, CodePendingElsewhere)

	_, err = svc.UpdateDonation(ctx, ana, other.ID, donation("Sanditon", 1, false))
	requireCode(t, err, CodeUnauthorizedActor)

	_, err = svc.TransitionDonation(ctx, rec.ID, model.DonationConfirmed, admin)
	require.NoError(t, err)
	_, err = svc.UpdateDonation(ctx, ana, rec.ID, edit)
	requireCode(t, err, CodeInvalidTransition)

	assert.Contains(t, pub.types(), EventDonationUpdated)
}

func Test_TransitionDonation_Rules(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	rec, err := svc.CreateDonation(ctx, ana.Email, donation("Emma", 1, false))
	require.NoError(t, err)

	_, err = svc.TransitionDonation(ctx, rec.ID, model.DonationConfirmed, ana)
	requireCode(t, err, CodeUnauthorizedActor)

	_, err = svc.TransitionDonation(ctx, rec.ID, model.DonationSent, ana)
	requireCode(t, err, CodeInvalidTransition)

	_, err = svc.TransitionDonation(ctx, rec.ID, model.DonationConfirmed, admin)
	require.NoError(t, err)

	_, err = svc.TransitionDonation(ctx, rec.ID, model.DonationCanceled, admin)
	requireCode(t, err, CodeInvalidTransition)

	_, err = svc.TransitionDonation(ctx, rec.ID, model.DonationSent, ben)
	requireCode(t, err, CodeUnauthorizedActor)

	_, err = svc.TransitionDonation(ctx, rec.ID, model.DonationSent, ana)
	require.NoError(t, err)

	_, err = svc.TransitionDonation(ctx, rec.ID, model.DonationReceived, ana)
	requireCode(t, err, CodeUnauthorizedActor)

	_, err = svc.TransitionDonation(ctx, uuid.New(), model.DonationReceived, admin)
	requireCode(t, err, CodeNotFound)

	books, err := svc.ListBooks(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func Test_ListDonations_Visibility(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	anaRec, err := svc.CreateDonation(ctx, ana.Email, donation("Emma", 1, false))
	require.NoError(t, err)
	_, err = svc.CreateDonation(ctx, ben.Email, donation("Persuasion", 1, false))
	require.NoError(t, err)

	all, err := svc.ListDonations(ctx, admin, DonationFilter{Status: model.DonationPending})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := svc.ListDonations(ctx, ana, DonationFilter{})
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, anaRec.ID, own[0].ID)

	_, err = svc.GetDonation(ctx, ben, anaRec.ID)
	requireCode(t, err, CodeUnauthorizedActor)

	got, err := svc.GetDonation(ctx, admin, anaRec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Emma", got.BookTitle)
}

func Test_ListDonations_AnonymousUserSeesNothing(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateDonation(ctx, ana.Email, donation("Emma", 1, false))
	require.NoError(t, err)
	_, err = svc.CreateDonation(ctx, ben.Email, donation("Persuasion", 1, false))
	require.NoError(t, err)

	for _, actor := range []Actor{{Role: RoleUser}, {Email: "   ", Role: RoleUser}} {
		donations, err := svc.ListDonations(ctx, actor, DonationFilter{})
		requireCode(t, err, CodeUnauthorizedActor)
		assert.Empty(t, donations)
	}
}

func Test_UpdateDonation_LogsCommit(t *testing.T) {
	svc, _, _ := newTestService(t)
	logger, hook := logtest.NewNullLogger()
	ctx := logging.WithLogger(context.Background(), logrus.NewEntry(logger))

	rec, err := svc.CreateDonation(ctx, ana.Email, donation("Emma", 1, false))
	require.NoError(t, err)
	hook.Reset()

	_, err = svc.UpdateDonation(ctx, ana, rec.ID, donation("Emma", 2, false))
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "donation updated", entry.Message)
	assert.Equal(t, rec.ID, entry.Data["donation_id"])
	assert.Equal(t, 2, entry.Data["num"])
	assert.Equal(t, ana.Email, entry.Data["actor"])
}
