package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/circulation"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/validation"
)

type LoanHandler struct {
	svc *circulation.Service
}

func NewLoanHandler(svc *circulation.Service) *LoanHandler {
	return &LoanHandler{svc: svc}
}

func (h *LoanHandler) RegisterRoutes(r *gin.RouterGroup) {
	loans := r.Group("/loans")
	{
		loans.GET("", h.ListLoans)
		loans.GET("/:id", h.GetLoanByID)
		loans.POST("", h.CreateLoan)
		loans.POST("/:id/transitions", h.TransitionLoan)
	}
}

// CreateLoan godoc
// @Summary      Borrow copies of a title
// @Description  Reserve copies for the caller. The copies leave available stock immediately.
// @Tags         loans
// @Accept       json
// @Produce      json
// @Param        X-User-Email  header    string             true  "Caller email"
// @Param        payload       body      CreateLoanRequest  true  "Title and quantity"
// @Success      201  {object}  LoanResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid payload or quantity"
// @Failure      404  {object}  validation.ErrorResponse   "No such title"
// @Failure      409  {object}  validation.ErrorResponse   "Not enough copies available"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /loans [post]
func (h *LoanHandler) CreateLoan(c *gin.Context) {
	var req CreateLoanRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	loan, err := h.svc.CreateLoan(c.Request.Context(), actorFrom(c).Email, req.BookTitle, req.Quantity)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, LoanResponse{Data: toLoan(*loan)})
}

// ListLoans godoc
// @Summary      List loans
// @Description  Admins see every loan, other callers only their own.
// @Tags         loans
// @Produce      json
// @Param        X-User-Email  header    string  true   "Caller email"
// @Param        X-User-Role   header    string  false  "Caller role" Enums(admin,user)
// @Param        borrower      query     string  false  "Filter by borrower (admin only)"
// @Param        status        query     string  false  "Filter by status" Enums(pending,delivered,received,returned,completed,canceled)
// @Success      200  {object}  ListLoansResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid status"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /loans [get]
func (h *LoanHandler) ListLoans(c *gin.Context) {
	status := model.LoanStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		writeError(c, http.StatusBadRequest,
			"INVALID_STATUS",
			"unknown loan status "+string(status),
		)
		return
	}

	loans, err := h.svc.ListLoans(c.Request.Context(), actorFrom(c), circulation.LoanFilter{
		Borrower: c.Query("borrower"),
		Status:   status,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListLoansResponse{
		Data: lo.Map(loans, func(l model.LoanRecord, _ int) Loan { return toLoan(l) }),
	})
}

// GetLoanByID godoc
// @Summary      Get a loan by ID
// @Tags         loans
// @Produce      json
// @Param        X-User-Email  header    string  true   "Caller email"
// @Param        X-User-Role   header    string  false  "Caller role" Enums(admin,user)
// @Param        id            path      string  true   "Loan ID (UUID)"
// @Success      200  {object}  LoanResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      403  {object}  validation.ErrorResponse   "Loan of another borrower"
// @Failure      404  {object}  validation.ErrorResponse   "Loan not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /loans/{id} [get]
func (h *LoanHandler) GetLoanByID(c *gin.Context) {
	loanID, ok := parseIDParam(c, "INVALID_LOAN_ID", "invalid loan id")
	if !ok {
		return
	}

	loan, err := h.svc.GetLoan(c.Request.Context(), actorFrom(c), loanID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoanResponse{Data: toLoan(*loan)})
}

// TransitionLoan godoc
// @Summary      Move a loan to its next status
// @Description  pending to delivered or canceled and returned to completed are admin steps. delivered to received and received to returned belong to the borrower.
// @Tags         loans
// @Accept       json
// @Produce      json
// @Param        X-User-Email  header    string             true   "Caller email"
// @Param        X-User-Role   header    string             false  "Caller role" Enums(admin,user)
// @Param        id            path      string             true   "Loan ID (UUID)"
// @Param        payload       body      TransitionRequest  true   "Target status"
// @Success      200  {object}  LoanResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID or payload"
// @Failure      403  {object}  validation.ErrorResponse   "Caller may not make this move"
// @Failure      404  {object}  validation.ErrorResponse   "Loan not found"
// @Failure      409  {object}  validation.ErrorResponse   "Transition not allowed"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /loans/{id}/transitions [post]
func (h *LoanHandler) TransitionLoan(c *gin.Context) {
	loanID, ok := parseIDParam(c, "INVALID_LOAN_ID", "invalid loan id")
	if !ok {
		return
	}

	var req TransitionRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	loan, err := h.svc.TransitionLoan(c.Request.Context(), loanID, model.LoanStatus(req.Status), actorFrom(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoanResponse{Data: toLoan(*loan)})
}
