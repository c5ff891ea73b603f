package handler

import (
	"net/http"
	"testing"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/testutil"
)

func entry(title string, num int, hasExist bool) DonationEntryRequest {
	return DonationEntryRequest{BookTitle: title, Author: "Someone", Num: num, HasExist: hasExist}
}

func TestDonation_ReceiveCreatesBook(t *testing.T) {
	router, db := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/donations", anaEmail, "", CreateDonationsRequest{
		Entries: []DonationEntryRequest{entry("Y", 5, false)},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}
	created := decode[ListDonationsResponse](t, w)
	if len(created.Data) != 1 || created.Data[0].Status != "pending" {
		t.Fatalf("unexpected donations %+v", created.Data)
	}
	path := "/api/donations/" + created.Data[0].ID.String() + "/transitions"

	steps := []struct {
		status, email, role string
	}{
		{"confirmed", adminEmail, "admin"},
		{"sent", anaEmail, ""},
		{"received", adminEmail, "admin"},
	}
	for _, s := range steps {
		w = doJSON(t, router, http.MethodPost, path, s.email, s.role, TransitionRequest{Status: s.status})
		if w.Code != http.StatusOK {
			t.Fatalf("expected %s to succeed, got %d, body=%s", s.status, w.Code, w.Body.String())
		}
	}

	var book model.Book
	if err := db.First(&book, "name = ?", "Y").Error; err != nil {
		t.Fatalf("expected book Y in db, got error: %v", err)
	}
	if book.Num != 5 || book.Status != (model.BookStatus{Available: 5}) {
		t.Errorf("unexpected book %+v", book)
	}
}

func TestCreateDonations_ValidationFailures(t *testing.T) {
	router, db := newTestRouter(t)
	testutil.SeedBook(t, db, "Dune", 1)

	w := doJSON(t, router, http.MethodPost, "/api/donations", anaEmail, "", CreateDonationsRequest{
		Entries: []DonationEntryRequest{
			entry("The Hobbit", 1, false),
			entry(" the hobbit ", 1, false),
			entry("Dune", 1, false),
		},
	})
	resp := expectError(t, w, http.StatusUnprocessableEntity, "DUPLICATE_IN_FORM")
	if len(resp.Errors) != 3 {
		t.Fatalf("expected 3 entry errors, got %+v", resp.Errors)
	}
	if resp.Errors[2].Field != "entries[2].book_title" || resp.Errors[2].Rule != "EXISTS_MISMATCH_FALSE" {
		t.Errorf("unexpected third entry error %+v", resp.Errors[2])
	}

	var count int64
	if err := db.Model(&model.DonationRecord{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count donations: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no donation to be stored, got %d", count)
	}

	w = doJSON(t, router, http.MethodPost, "/api/donations", anaEmail, "", CreateDonationsRequest{})
	expectError(t, w, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestDonation_PendingElsewhere(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/donations", anaEmail, "", CreateDonationsRequest{
		Entries: []DonationEntryRequest{entry("The Hobbit", 1, false)},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, "/api/donations", benEmail, "", CreateDonationsRequest{
		Entries: []DonationEntryRequest{entry(" the hobbit ", 2, false)},
	})
	expectError(t, w, http.StatusUnprocessableEntity, "PENDING_ELSEWHERE")
}

func TestValidateDonations(t *testing.T) {
	router, db := newTestRouter(t)
	testutil.SeedBook(t, db, "Dune", 1)

	w := doJSON(t, router, http.MethodPost, "/api/donations/validate", anaEmail, "", ValidateDonationsRequest{
		Entries: []DonationEntryRequest{entry("Dune", 1, true), entry("Emma", 1, true)},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	resp := decode[ValidateDonationsResponse](t, w)
	if resp.Valid {
		t.Errorf("expected the batch to be invalid")
	}
	if len(resp.Entries) != 1 || resp.Entries[0].Index != 1 || resp.Entries[0].Code != "EXISTS_MISMATCH_TRUE" {
		t.Errorf("unexpected entries %+v", resp.Entries)
	}

	w = doJSON(t, router, http.MethodPost, "/api/donations/validate", anaEmail, "", ValidateDonationsRequest{
		Entries: []DonationEntryRequest{entry("Dune", 1, true)},
	})
	if ok := decode[ValidateDonationsResponse](t, w); !ok.Valid || len(ok.Entries) != 0 {
		t.Errorf("expected a valid batch, got %+v", ok)
	}
}

func TestUpdateDonation(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/donations", anaEmail, "", CreateDonationsRequest{
		Entries: []DonationEntryRequest{entry("Emma", 1, false)},
	})
	id := decode[ListDonationsResponse](t, w).Data[0].ID
	path := "/api/donations/" + id.String()

	edit := entry("Emma", 3, false)
	edit.Notes = "signed copy"
	w = doJSON(t, router, http.MethodPatch, path, anaEmail, "", edit)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	updated := decode[DonationResponse](t, w).Data
	if updated.Num != 3 || updated.Notes != "signed copy" || updated.Version != 2 {
		t.Errorf("unexpected update %+v", updated)
	}

	w = doJSON(t, router, http.MethodPatch, path, benEmail, "", edit)
	expectError(t, w, http.StatusForbidden, "UNAUTHORIZED_ACTOR")

	w = doJSON(t, router, http.MethodPost, path+"/transitions", adminEmail, "admin", TransitionRequest{Status: "canceled"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected cancel to succeed, got %d, body=%s", w.Code, w.Body.String())
	}
	if canceled := decode[DonationResponse](t, w).Data; canceled.CanceledAt == nil {
		t.Errorf("expected canceled_at to be set")
	}

	w = doJSON(t, router, http.MethodPatch, path, anaEmail, "", edit)
	expectError(t, w, http.StatusConflict, "INVALID_TRANSITION")
}

func TestListDonations_Visibility(t *testing.T) {
	router, _ := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/donations", anaEmail, "", CreateDonationsRequest{
		Entries: []DonationEntryRequest{entry("Emma", 1, false)},
	})
	doJSON(t, router, http.MethodPost, "/api/donations", benEmail, "", CreateDonationsRequest{
		Entries: []DonationEntryRequest{entry("Persuasion", 1, false)},
	})

	w := doJSON(t, router, http.MethodGet, "/api/donations?status=pending", adminEmail, "admin", nil)
	if all := decode[ListDonationsResponse](t, w); len(all.Data) != 2 {
		t.Errorf("expected 2 donations, got %d", len(all.Data))
	}

	w = doJSON(t, router, http.MethodGet, "/api/donations", benEmail, "", nil)
	own := decode[ListDonationsResponse](t, w)
	if len(own.Data) != 1 || own.Data[0].BookTitle != "Persuasion" {
		t.Errorf("expected only ben's donation, got %+v", own.Data)
	}

	w = doJSON(t, router, http.MethodGet, "/api/donations?status=lost", adminEmail, "admin", nil)
	expectError(t, w, http.StatusBadRequest, "INVALID_STATUS")
}
