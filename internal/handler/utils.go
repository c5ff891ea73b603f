package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/circulation"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/model"
)

func parseIntQuery(c *gin.Context, key string, def int) int {
	if s := c.Query(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
	}
	return def
}

func parseBoolQuery(c *gin.Context, key string) (bool, error) {
	s := c.Query(key)
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}

// parseIDParam writes a 400 and returns false when the path id is not a UUID.
func parseIDParam(c *gin.Context, code, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, code, message)
		return uuid.Nil, false
	}
	return id, true
}

func toBook(b model.Book) Book {
	return Book{
		ID:          b.ID,
		Name:        b.Name,
		Author:      b.Author,
		Category:    b.Category,
		Description: b.Description,
		ISBN:        b.ISBN,
		PublishYear: b.PublishYear,
		CoverImage:  b.CoverImage,
		Num:         b.Num,
		Status: BookStatus{
			Available: b.Status.Available,
			Loaned:    b.Status.Loaned,
			Disabled:  b.Status.Disabled,
			Renovated: b.Status.Renovated,
		},
		Version:   b.Version,
		CreatedAt: model.Timestamp{Time: b.CreatedAt},
		UpdatedAt: model.Timestamp{Time: b.UpdatedAt},
	}
}

func toBookResponse(b model.Book) BookResponse {
	return BookResponse{Data: toBook(b)}
}

func toListBooksResponse(books []model.Book, page, pageSize int, total int64, totalPages int) ListBooksResponse {
	return ListBooksResponse{
		Data: lo.Map(books, func(b model.Book, _ int) Book { return toBook(b) }),
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}

func toLoan(l model.LoanRecord) Loan {
	return Loan{
		ID:                  l.ID,
		BorrowerName:        l.BorrowerName,
		BookTitle:           l.BookTitle,
		Quantity:            l.Quantity,
		Status:              string(l.Status),
		DelivererName:       l.DelivererName,
		ReturnConfirmerName: l.ReturnConfirmerName,
		BorrowedAt:          model.Timestamp{Time: l.BorrowedAt},
		DeliveredAt:         model.TimestampPtr(l.DeliveredAt),
		ReceivedAt:          model.TimestampPtr(l.ReceivedAt),
		ReturnedAt:          model.TimestampPtr(l.ReturnedAt),
		ReturnConfirmedAt:   model.TimestampPtr(l.ReturnConfirmedAt),
		CanceledAt:          model.TimestampPtr(l.CanceledAt),
		Version:             l.Version,
	}
}

func toDonation(d model.DonationRecord) Donation {
	return Donation{
		ID:            d.ID,
		DonorName:     d.DonationerName,
		BookTitle:     d.BookTitle,
		Author:        d.Author,
		Category:      d.Category,
		Num:           d.Num,
		PublishYear:   d.PublishYear,
		CoverImage:    d.CoverImage,
		Description:   d.Description,
		Notes:         d.Notes,
		HasExist:      d.HasExist,
		Status:        string(d.Status),
		ConfirmerName: d.ConfirmerName,
		ReceiverName:  d.ReceiverName,
		DonationDate:  model.Timestamp{Time: d.DonationDate},
		ConfirmDate:   model.TimestampPtr(d.ConfirmDate),
		SendDate:      model.TimestampPtr(d.SendDate),
		ReceiveDate:   model.TimestampPtr(d.ReceiveDate),
		CanceledAt:    model.TimestampPtr(d.CanceledAt),
		Version:       d.Version,
	}
}

func toDonationInputs(entries []DonationEntryRequest) []circulation.DonationInput {
	return lo.Map(entries, func(e DonationEntryRequest, _ int) circulation.DonationInput {
		return toDonationInput(e)
	})
}

func toDonationInput(e DonationEntryRequest) circulation.DonationInput {
	return circulation.DonationInput{
		BookTitle:   e.BookTitle,
		Author:      e.Author,
		Category:    e.Category,
		Num:         e.Num,
		PublishYear: e.PublishYear,
		CoverImage:  e.CoverImage,
		Description: e.Description,
		Notes:       e.Notes,
		HasExist:    e.HasExist,
	}
}
