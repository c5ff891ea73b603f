package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/circulation"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/validation"
)

type DonationHandler struct {
	svc *circulation.Service
}

func NewDonationHandler(svc *circulation.Service) *DonationHandler {
	return &DonationHandler{svc: svc}
}

func (h *DonationHandler) RegisterRoutes(r *gin.RouterGroup) {
	donations := r.Group("/donations")
	{
		donations.GET("", h.ListDonations)
		donations.GET("/:id", h.GetDonationByID)
		donations.POST("", h.CreateDonations)
		donations.POST("/validate", h.ValidateDonations)
		donations.PATCH("/:id", h.UpdateDonation)
		donations.POST("/:id/transitions", h.TransitionDonation)
	}
}

// CreateDonations godoc
// @Summary      Submit a donation
// @Description  Validate every entry together and store them as pending donations. One failing entry rejects the whole submission.
// @Tags         donations
// @Accept       json
// @Produce      json
// @Param        X-User-Email  header    string                  true  "Caller email"
// @Param        payload       body      CreateDonationsRequest  true  "Entries to donate"
// @Success      201  {object}  ListDonationsResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid payload or quantity"
// @Failure      422  {object}  validation.ErrorResponse   "Entries failed validation"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /donations [post]
func (h *DonationHandler) CreateDonations(c *gin.Context) {
	var req CreateDonationsRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	recs, err := h.svc.CreateDonations(c.Request.Context(), actorFrom(c).Email, toDonationInputs(req.Entries))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ListDonationsResponse{
		Data: lo.Map(recs, func(d model.DonationRecord, _ int) Donation { return toDonation(d) }),
	})
}

// ValidateDonations godoc
// @Summary      Validate donation entries
// @Description  Run the submission checks without storing anything and report a code per failing entry.
// @Tags         donations
// @Accept       json
// @Produce      json
// @Param        X-User-Email  header    string                    true  "Caller email"
// @Param        payload       body      ValidateDonationsRequest  true  "Entries to check"
// @Success      200  {object}  ValidateDonationsResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid payload"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /donations/validate [post]
func (h *DonationHandler) ValidateDonations(c *gin.Context) {
	var req ValidateDonationsRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	excluding := uuid.Nil
	if req.ExcludingID != nil {
		excluding = *req.ExcludingID
	}

	err := h.svc.ValidateDonations(c.Request.Context(), toDonationInputs(req.Entries), excluding)
	entries := circulation.EntryErrors(err)
	if err != nil && len(entries) == 0 {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ValidateDonationsResponse{
		Valid: err == nil,
		Entries: lo.Map(entries, func(ee *circulation.EntryError, _ int) EntryResult {
			return EntryResult{Index: ee.Index, BookTitle: ee.Title, Code: string(ee.Code)}
		}),
	})
}

// ListDonations godoc
// @Summary      List donations
// @Description  Admins see every donation, other callers only their own.
// @Tags         donations
// @Produce      json
// @Param        X-User-Email  header    string  true   "Caller email"
// @Param        X-User-Role   header    string  false  "Caller role" Enums(admin,user)
// @Param        donor         query     string  false  "Filter by donor (admin only)"
// @Param        status        query     string  false  "Filter by status" Enums(pending,confirmed,sent,received,canceled)
// @Success      200  {object}  ListDonationsResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid status"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /donations [get]
func (h *DonationHandler) ListDonations(c *gin.Context) {
	status := model.DonationStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		writeError(c, http.StatusBadRequest,
			"INVALID_STATUS",
			"unknown donation status "+string(status),
		)
		return
	}

	recs, err := h.svc.ListDonations(c.Request.Context(), actorFrom(c), circulation.DonationFilter{
		Donor:  c.Query("donor"),
		Status: status,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListDonationsResponse{
		Data: lo.Map(recs, func(d model.DonationRecord, _ int) Donation { return toDonation(d) }),
	})
}

// GetDonationByID godoc
// @Summary      Get a donation by ID
// @Tags         donations
// @Produce      json
// @Param        X-User-Email  header    string  true   "Caller email"
// @Param        X-User-Role   header    string  false  "Caller role" Enums(admin,user)
// @Param        id            path      string  true   "Donation ID (UUID)"
// @Success      200  {object}  DonationResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      403  {object}  validation.ErrorResponse   "Donation of another donor"
// @Failure      404  {object}  validation.ErrorResponse   "Donation not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /donations/{id} [get]
func (h *DonationHandler) GetDonationByID(c *gin.Context) {
	donationID, ok := parseIDParam(c, "INVALID_DONATION_ID", "invalid donation id")
	if !ok {
		return
	}

	rec, err := h.svc.GetDonation(c.Request.Context(), actorFrom(c), donationID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, DonationResponse{Data: toDonation(*rec)})
}

// UpdateDonation godoc
// @Summary      Edit a pending donation
// @Description  The donor may replace the entry while it is still pending. The entry is validated again, ignoring the donation itself.
// @Tags         donations
// @Accept       json
// @Produce      json
// @Param        X-User-Email  header    string                true  "Caller email"
// @Param        id            path      string                true  "Donation ID (UUID)"
// @Param        payload       body      DonationEntryRequest  true  "Replacement entry"
// @Success      200  {object}  DonationResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID or payload"
// @Failure      403  {object}  validation.ErrorResponse   "Not the donor"
// @Failure      404  {object}  validation.ErrorResponse   "Donation not found"
// @Failure      409  {object}  validation.ErrorResponse   "Donation no longer pending"
// @Failure      422  {object}  validation.ErrorResponse   "Entry failed validation"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /donations/{id} [patch]
func (h *DonationHandler) UpdateDonation(c *gin.Context) {
	donationID, ok := parseIDParam(c, "INVALID_DONATION_ID", "invalid donation id")
	if !ok {
		return
	}

	var req DonationEntryRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	rec, err := h.svc.UpdateDonation(c.Request.Context(), actorFrom(c), donationID, toDonationInput(req))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, DonationResponse{Data: toDonation(*rec)})
}

// TransitionDonation godoc
// @Summary      Move a donation to its next status
// @Description  Confirming, canceling and receiving are admin steps. Sending belongs to the donor. Receiving adds the copies to the catalog.
// @Tags         donations
// @Accept       json
// @Produce      json
// @Param        X-User-Email  header    string             true   "Caller email"
// @Param        X-User-Role   header    string             false  "Caller role" Enums(admin,user)
// @Param        id            path      string             true   "Donation ID (UUID)"
// @Param        payload       body      TransitionRequest  true   "Target status"
// @Success      200  {object}  DonationResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID or payload"
// @Failure      403  {object}  validation.ErrorResponse   "Caller may not make this move"
// @Failure      404  {object}  validation.ErrorResponse   "Donation not found"
// @Failure      409  {object}  validation.ErrorResponse   "Transition not allowed"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /donations/{id}/transitions [post]
func (h *DonationHandler) TransitionDonation(c *gin.Context) {
	donationID, ok := parseIDParam(c, "INVALID_DONATION_ID", "invalid donation id")
	if !ok {
		return
	}

	var req TransitionRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	rec, err := h.svc.TransitionDonation(c.Request.Context(), donationID, model.DonationStatus(req.Status), actorFrom(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, DonationResponse{Data: toDonation(*rec)})
}
