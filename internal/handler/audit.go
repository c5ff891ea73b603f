package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/circulation"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/logging"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/report"
)

type LedgerAuditor interface {
	Ledger(ctx context.Context) (report.LedgerReport, error)
}

type AuditHandler struct {
	auditor LedgerAuditor
}

func NewAuditHandler(auditor LedgerAuditor) *AuditHandler {
	return &AuditHandler{auditor: auditor}
}

func (h *AuditHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/audit/ledger", h.Ledger)
}

type LedgerReportResponse struct {
	Data       report.LedgerReport `json:"data"`
	Consistent bool                `json:"consistent"`
}

// Ledger godoc
// @Summary      Audit the inventory ledger
// @Description  Recompute every book's loaned count from open loans and list the books whose counters disagree. Admin only.
// @Tags         audit
// @Produce      json
// @Param        X-User-Email  header    string  true   "Caller email"
// @Param        X-User-Role   header    string  false  "Caller role" Enums(admin,user)
// @Success      200  {object}  LedgerReportResponse
// @Failure      403  {object}  validation.ErrorResponse   "Not an admin"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /audit/ledger [get]
func (h *AuditHandler) Ledger(c *gin.Context) {
	if !actorFrom(c).IsAdmin() {
		writeError(c, http.StatusForbidden,
			string(circulation.CodeUnauthorizedActor),
			"only an admin may audit the ledger",
		)
		return
	}

	rep, err := h.auditor.Ledger(c.Request.Context())
	if err != nil {
		logging.FromContext(c.Request.Context()).WithError(err).Error("ledger audit failed")
		writeError(c, http.StatusInternalServerError,
			"AUDIT_FAILED",
			"failed to audit the ledger",
		)
		return
	}

	c.JSON(http.StatusOK, LedgerReportResponse{Data: rep, Consistent: rep.Consistent()})
}
