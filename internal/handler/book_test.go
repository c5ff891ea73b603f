package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/testutil"
)

func TestCreateBook_Success(t *testing.T) {
	router, db := newTestRouter(t)

	body := CreateBookRequest{
		Name:     "Clean Code",
		Author:   "Robert C. Martin",
		Category: "software",
		Num:      3,
	}

	w := doJSON(t, router, http.MethodPost, "/api/books", adminEmail, "admin", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[BookResponse](t, w)
	if resp.Data.ID == uuid.Nil {
		t.Errorf("expected non-empty ID")
	}
	if resp.Data.Name != body.Name {
		t.Errorf("expected name %q, got %q", body.Name, resp.Data.Name)
	}
	if resp.Data.Num != 3 || resp.Data.Status.Available != 3 {
		t.Errorf("expected 3 available copies, got num=%d status=%+v", resp.Data.Num, resp.Data.Status)
	}
	if resp.Data.Version != 1 {
		t.Errorf("expected version 1, got %d", resp.Data.Version)
	}

	var stored model.Book
	if err := db.First(&stored, "id = ?", resp.Data.ID).Error; err != nil {
		t.Fatalf("expected book in db, got error: %v", err)
	}
	if stored.Category != "software" {
		t.Errorf("expected stored category software, got %q", stored.Category)
	}
}

func TestCreateBook_Rejections(t *testing.T) {
	router, db := newTestRouter(t)
	testutil.SeedBook(t, db, "Dune", 1)

	tests := []struct {
		name   string
		role   string
		body   any
		status int
		code   string
	}{
		{
			name:   "not an admin",
			role:   "user",
			body:   CreateBookRequest{Name: "Emma", Author: "Austen", Num: 1},
			status: http.StatusForbidden,
			code:   "UNAUTHORIZED_ACTOR",
		},
		{
			name:   "blank name",
			role:   "admin",
			body:   map[string]any{"name": "  ", "author": "Austen", "num": 1},
			status: http.StatusBadRequest,
			code:   "VALIDATION_FAILED",
		},
		{
			name:   "no copies",
			role:   "admin",
			body:   CreateBookRequest{Name: "Emma", Author: "Austen"},
			status: http.StatusBadRequest,
			code:   "INVALID_QUANTITY",
		},
		{
			name:   "duplicate title",
			role:   "admin",
			body:   CreateBookRequest{Name: " dune ", Author: "Herbert", Num: 1},
			status: http.StatusConflict,
			code:   "DUPLICATE_TITLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/api/books", adminEmail, tt.role, tt.body)
			expectError(t, w, tt.status, tt.code)
		})
	}
}

func TestListBooks_SearchAndFilters(t *testing.T) {
	router, db := newTestRouter(t)

	testutil.SeedBook(t, db, "Dune", 2)
	emma := testutil.SeedBook(t, db, "Emma", 1)
	testutil.SeedBook(t, db, "Persuasion", 1)

	if err := db.Model(&model.Book{}).Where("id = ?", emma.ID).
		Updates(map[string]any{"status_available": 0, "status_disabled": 1}).Error; err != nil {
		t.Fatalf("failed to disable copies: %v", err)
	}

	w := doJSON(t, router, http.MethodGet, "/api/books?page_size=2&sort=name_asc", anaEmail, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	page := decode[ListBooksResponse](t, w)
	if page.Pagination.Total != 3 || page.Pagination.TotalPages != 2 {
		t.Errorf("unexpected pagination %+v", page.Pagination)
	}
	if len(page.Data) != 2 || page.Data[0].Name != "Dune" || page.Data[1].Name != "Emma" {
		t.Errorf("unexpected first page %+v", page.Data)
	}

	w = doJSON(t, router, http.MethodGet, "/api/books?q=PERSU", anaEmail, "", nil)
	found := decode[ListBooksResponse](t, w)
	if len(found.Data) != 1 || found.Data[0].Name != "Persuasion" {
		t.Errorf("expected only Persuasion, got %+v", found.Data)
	}

	w = doJSON(t, router, http.MethodGet, "/api/books?available_only=true", anaEmail, "", nil)
	available := decode[ListBooksResponse](t, w)
	if available.Pagination.Total != 2 {
		t.Errorf("expected 2 titles with available copies, got %d", available.Pagination.Total)
	}

	w = doJSON(t, router, http.MethodGet, "/api/books?available_only=maybe", anaEmail, "", nil)
	expectError(t, w, http.StatusBadRequest, "INVALID_AVAILABLE_ONLY")
}

func TestGetBookByID(t *testing.T) {
	router, db := newTestRouter(t)
	book := testutil.SeedBook(t, db, "Dune", 2)

	w := doJSON(t, router, http.MethodGet, "/api/books/"+book.ID.String(), anaEmail, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if got := decode[BookResponse](t, w); got.Data.Name != "Dune" {
		t.Errorf("expected Dune, got %q", got.Data.Name)
	}

	w = doJSON(t, router, http.MethodGet, "/api/books/not-a-uuid", anaEmail, "", nil)
	expectError(t, w, http.StatusBadRequest, "INVALID_BOOK_ID")

	w = doJSON(t, router, http.MethodGet, "/api/books/"+uuid.NewString(), anaEmail, "", nil)
	expectError(t, w, http.StatusNotFound, "NOT_FOUND")
}

func TestUpdateBook(t *testing.T) {
	router, db := newTestRouter(t)
	book := testutil.SeedBook(t, db, "Dune", 2)
	path := "/api/books/" + book.ID.String()

	w := doJSON(t, router, http.MethodPatch, path, adminEmail, "admin", map[string]any{})
	expectError(t, w, http.StatusBadRequest, "NO_FIELDS_TO_UPDATE")

	w = doJSON(t, router, http.MethodPatch, path, adminEmail, "admin", map[string]any{"author": "Frank Herbert"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	resp := decode[BookResponse](t, w)
	if resp.Data.Author != "Frank Herbert" {
		t.Errorf("expected updated author, got %q", resp.Data.Author)
	}
	if resp.Data.Version != 2 {
		t.Errorf("expected version 2, got %d", resp.Data.Version)
	}

	w = doJSON(t, router, http.MethodPost, "/api/loans", anaEmail, "", CreateLoanRequest{BookTitle: "Dune", Quantity: 1})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected loan to be created, got %d, body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodPatch, path, adminEmail, "admin", map[string]any{"name": "Dune Messiah"})
	expectError(t, w, http.StatusConflict, "BOOK_IN_USE")
}

func TestDeleteBook(t *testing.T) {
	router, db := newTestRouter(t)
	book := testutil.SeedBook(t, db, "Dune", 2)
	path := "/api/books/" + book.ID.String()

	w := doJSON(t, router, http.MethodDelete, path, anaEmail, "user", nil)
	expectError(t, w, http.StatusForbidden, "UNAUTHORIZED_ACTOR")

	w = doJSON(t, router, http.MethodDelete, path, adminEmail, "admin", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d, body=%s", w.Code, w.Body.String())
	}

	var count int64
	if err := db.Model(&model.Book{}).Where("id = ?", book.ID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count books: %v", err)
	}
	if count != 0 {
		t.Errorf("expected book to be deleted")
	}

	w = doJSON(t, router, http.MethodDelete, path, adminEmail, "admin", nil)
	expectError(t, w, http.StatusNotFound, "NOT_FOUND")
}

func TestAdjustStatus(t *testing.T) {
	router, db := newTestRouter(t)
	book := testutil.SeedBook(t, db, "Dune", 4)
	path := "/api/books/" + book.ID.String() + "/status"

	w := doJSON(t, router, http.MethodPost, path, adminEmail, "admin", AdjustStatusRequest{Available: -1, Renovated: 1})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	resp := decode[BookResponse](t, w)
	if resp.Data.Status != (BookStatus{Available: 3, Renovated: 1}) {
		t.Errorf("unexpected status %+v", resp.Data.Status)
	}

	w = doJSON(t, router, http.MethodPost, path, adminEmail, "admin", AdjustStatusRequest{Loaned: -1, Available: 1})
	expectError(t, w, http.StatusUnprocessableEntity, "NEGATIVE_COUNTER")

	w = doJSON(t, router, http.MethodPost, path, adminEmail, "admin", AdjustStatusRequest{Disabled: 1})
	expectError(t, w, http.StatusUnprocessableEntity, "SUM_MISMATCH")

	w = doJSON(t, router, http.MethodPost, path, adminEmail, "admin", AdjustStatusRequest{})
	expectError(t, w, http.StatusBadRequest, "INVALID_DELTA")

	stored := testutil.ReloadBook(t, db, book)
	if stored.Status != (model.BookStatus{Available: 3, Renovated: 1}) {
		t.Errorf("rejected adjustments must not change the book, got %+v", stored.Status)
	}
}
