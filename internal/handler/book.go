package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/circulation"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/validation"
)

type BookHandler struct {
	svc    *circulation.Service
	search repository.BookSearcher
}

func NewBookHandler(svc *circulation.Service, search repository.BookSearcher) *BookHandler {
	return &BookHandler{svc: svc, search: search}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.GET("/:id", h.GetBookByID)
		books.POST("", h.CreateBook)
		books.PATCH("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
		books.POST("/:id/status", h.AdjustStatus)
	}
}

// CreateBook godoc
// @Summary      Create a book
// @Description  Add a title to the catalog with every copy available. Admin only.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        X-User-Email  header    string                     true  "Caller email"
// @Param        X-User-Role   header    string                     false "Caller role" Enums(admin,user)
// @Param        payload       body      CreateBookRequest          true  "Book to create"
// @Success      201           {object}  BookResponse
// @Failure      400           {object}  validation.ErrorResponse   "Validation error"
// @Failure      403           {object}  validation.ErrorResponse   "Not an admin"
// @Failure      409           {object}  validation.ErrorResponse   "Title already in the catalog"
// @Failure      500           {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	book, err := h.svc.CreateBook(c.Request.Context(), actorFrom(c), circulation.BookInput{
		Name:        req.Name,
		Author:      req.Author,
		Category:    req.Category,
		Description: req.Description,
		ISBN:        req.ISBN,
		PublishYear: req.PublishYear,
		CoverImage:  req.CoverImage,
		Num:         req.Num,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookResponse(*book))
}

// ListBooks godoc
// @Summary      List books
// @Description  Search the catalog
// @Tags         books
// @Produce      json
// @Param        X-User-Email    header    string  true   "Caller email"
// @Param        page            query     int     false  "Page number"      default(1) minimum(1)
// @Param        page_size       query     int     false  "Items per page"   default(20) minimum(1) maximum(100)
// @Param        sort            query     string  false  "Sort field and direction" Enums(created_at_desc,created_at_asc,name_asc,name_desc,publish_year_desc,publish_year_asc)
// @Param        q               query     string  false  "Search in name, author and description"
// @Param        category        query     string  false  "Filter by category"
// @Param        available_only  query     bool    false  "Only titles with an available copy"
// @Success      200  {object}  ListBooksResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid query parameters"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	page := parseIntQuery(c, "page", 1)
	pageSize := parseIntQuery(c, "page_size", 20)
	if pageSize > 100 {
		pageSize = 100
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	availableOnly, err := parseBoolQuery(c, "available_only")
	if err != nil {
		writeError(c, http.StatusBadRequest,
			"INVALID_AVAILABLE_ONLY",
			"available_only must be a boolean",
		)
		return
	}

	params := repository.BookListParams{
		Page:          page,
		PageSize:      pageSize,
		Sort:          c.DefaultQuery("sort", "created_at_desc"),
		Query:         c.Query("q"),
		Category:      c.Query("category"),
		AvailableOnly: availableOnly,
	}

	result, err := h.search.Search(c.Request.Context(), params)
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"BOOK_LIST_FAILED",
			"failed to fetch books",
		)
		return
	}

	totalPages := int((result.Total + int64(params.PageSize) - 1) / int64(params.PageSize))

	c.JSON(http.StatusOK, toListBooksResponse(result.Books, params.Page, params.PageSize, result.Total, totalPages))
}

// GetBookByID godoc
// @Summary      Get a book by ID
// @Tags         books
// @Produce      json
// @Param        X-User-Email  header    string  true  "Caller email"
// @Param        id            path      string  true  "Book ID (UUID)"
// @Success      200  {object}  BookResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	bookID, ok := parseIDParam(c, "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	book, err := h.svc.GetBook(c.Request.Context(), bookID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*book))
}

// UpdateBook godoc
// @Summary      Update a book
// @Description  Partially update book metadata. Copy counts change only through the status endpoint. Admin only.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        X-User-Email  header    string              true  "Caller email"
// @Param        X-User-Role   header    string              false "Caller role" Enums(admin,user)
// @Param        id            path      string              true  "Book ID (UUID)"
// @Param        payload       body      UpdateBookRequest   true  "Fields to update"
// @Success      200      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse   "Invalid ID or payload"
// @Failure      403      {object}  validation.ErrorResponse   "Not an admin"
// @Failure      404      {object}  validation.ErrorResponse   "Book not found"
// @Failure      409      {object}  validation.ErrorResponse   "Title taken or in use"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [patch]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	bookID, ok := parseIDParam(c, "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	var req UpdateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	patch := circulation.BookPatch{
		Name:        req.Name,
		Author:      req.Author,
		Category:    req.Category,
		Description: req.Description,
		ISBN:        req.ISBN,
		PublishYear: req.PublishYear,
		CoverImage:  req.CoverImage,
	}
	if patch.IsEmpty() {
		writeError(c, http.StatusBadRequest,
			"NO_FIELDS_TO_UPDATE",
			"at least one field must be provided to update",
		)
		return
	}

	book, err := h.svc.UpdateBook(c.Request.Context(), actorFrom(c), bookID, patch)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*book))
}

// DeleteBook godoc
// @Summary      Delete a book
// @Description  Delete a title no open loan or donation refers to. Admin only.
// @Tags         books
// @Produce      json
// @Param        X-User-Email  header    string  true  "Caller email"
// @Param        X-User-Role   header    string  false "Caller role" Enums(admin,user)
// @Param        id            path      string  true  "Book ID (UUID)"
// @Success      204  {string}  string  "No content"
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      403  {object}  validation.ErrorResponse   "Not an admin"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      409  {object}  validation.ErrorResponse   "Book in use"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	bookID, ok := parseIDParam(c, "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	if _, err := h.svc.DeleteBook(c.Request.Context(), actorFrom(c), bookID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AdjustStatus godoc
// @Summary      Adjust copy counters
// @Description  Apply signed changes to a book's counters, e.g. moving copies to renovation. The counters must stay non-negative and sum to num. Admin only.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        X-User-Email  header    string               true  "Caller email"
// @Param        X-User-Role   header    string               false "Caller role" Enums(admin,user)
// @Param        id            path      string               true  "Book ID (UUID)"
// @Param        payload       body      AdjustStatusRequest  true  "Counter changes"
// @Success      200  {object}  BookResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID or empty delta"
// @Failure      403  {object}  validation.ErrorResponse   "Not an admin"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      422  {object}  validation.ErrorResponse   "Delta breaks the ledger"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id}/status [post]
func (h *BookHandler) AdjustStatus(c *gin.Context) {
	bookID, ok := parseIDParam(c, "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	var req AdjustStatusRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	book, err := h.svc.AdjustBookStatus(c.Request.Context(), actorFrom(c), bookID, circulation.StatusDelta{
		Num:       req.Num,
		Available: req.Available,
		Loaned:    req.Loaned,
		Disabled:  req.Disabled,
		Renovated: req.Renovated,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*book))
}
