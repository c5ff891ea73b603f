package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/model"
)

type BookListParams struct {
	Page          int
	PageSize      int
	Sort          string
	Query         string
	Category      string
	AvailableOnly bool
}

type BookListResult struct {
	Books []model.Book
	Total int64
}

// BookSearcher serves the paginated catalog listing.
type BookSearcher interface {
	Search(ctx context.Context, params BookListParams) (BookListResult, error)
}

var bookSortColumns = map[string]string{
	"created_at_desc":   "created_at desc",
	"created_at_asc":    "created_at asc",
	"name_asc":          "name asc",
	"name_desc":         "name desc",
	"publish_year_desc": "publish_year desc",
	"publish_year_asc":  "publish_year asc",
}

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func (r *GormBookRepository) Search(ctx context.Context, params BookListParams) (BookListResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = 20
	}

	q := r.db.WithContext(ctx).Model(&model.Book{})

	if s := strings.TrimSpace(params.Query); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(author) LIKE ? OR LOWER(description) LIKE ?",
			like, like, like,
		)
	}
	if params.Category != "" {
		q = q.Where("LOWER(category) = ?", strings.ToLower(params.Category))
	}
	if params.AvailableOnly {
		q = q.Where("status_available > 0")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return BookListResult{}, err
	}

	order, ok := bookSortColumns[params.Sort]
	if !ok {
		order = bookSortColumns["created_at_desc"]
	}

	var books []model.Book
	if err := q.
		Order(order).
		Offset((params.Page - 1) * params.PageSize).
		Limit(params.PageSize).
		Find(&books).Error; err != nil {

		return BookListResult{}, err
	}

	return BookListResult{Books: books, Total: total}, nil
}
