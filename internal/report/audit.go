// Package report reads the ledger back with plain SQL and checks it against
// the open loans, independently of the circulation code that maintains it.
package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"  // dialect registration
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/config"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/model"
)

const (
	tableBooks = "books"
	tableLoans = "loan_records"

	dialectPostgres = "postgres"
	dialectSQLite   = "sqlite3"
)

var ErrBuildingQueryFailed = errors.New("failed to build audit query")

// BookLedger is one book's counters next to the copies its open loans hold.
type BookLedger struct {
	ID         string `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	Num        int    `db:"num" json:"num"`
	Available  int    `db:"status_available" json:"available"`
	Loaned     int    `db:"status_loaned" json:"loaned"`
	Disabled   int    `db:"status_disabled" json:"disabled"`
	Renovated  int    `db:"status_renovated" json:"renovated"`
	OpenLoaned int    `db:"open_loaned" json:"open_loaned"`
}

// Problems lists every way the row breaks the ledger rules.
func (b BookLedger) Problems() []string {
	var out []string
	if b.Available < 0 || b.Loaned < 0 || b.Disabled < 0 || b.Renovated < 0 {
		out = append(out, "negative counter")
	}
	if sum := b.Available + b.Loaned + b.Disabled + b.Renovated; sum != b.Num {
		out = append(out, fmt.Sprintf("counters sum to %d but num is %d", sum, b.Num))
	}
	if b.Loaned != b.OpenLoaned {
		out = append(out, fmt.Sprintf("loaned is %d but open loans hold %d", b.Loaned, b.OpenLoaned))
	}
	return out
}

type Finding struct {
	Book     BookLedger `json:"book"`
	Problems []string   `json:"problems"`
}

type LedgerReport struct {
	Books    int       `json:"books"`
	Findings []Finding `json:"findings"`
}

func (r LedgerReport) Consistent() bool { return len(r.Findings) == 0 }

type Auditor struct {
	db      *sqlx.DB
	dialect string
}

func NewAuditor(db *sqlx.DB, dialect string) *Auditor {
	return &Auditor{db: db, dialect: dialect}
}

// FromGorm shares the gorm connection pool with an sqlx handle.
func FromGorm(gdb *gorm.DB, driver string) (*Auditor, error) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}

	switch driver {
	case config.DriverSQLite:
		return NewAuditor(sqlx.NewDb(sqlDB, "sqlite3"), dialectSQLite), nil
	case config.DriverPostgres:
		return NewAuditor(sqlx.NewDb(sqlDB, "pgx"), dialectPostgres), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

func (a *Auditor) buildLedgerQuery() (string, error) {
	open := make([]any, 0, len(model.OpenLoanStatuses))
	for _, s := range model.OpenLoanStatuses {
		open = append(open, string(s))
	}

	stmt := goqu.Dialect(a.dialect).
		From(goqu.T(tableBooks).As("b")).
		LeftJoin(
			goqu.T(tableLoans).As("l"),
			goqu.On(
				goqu.L("LOWER(TRIM(?)) = LOWER(TRIM(?))", goqu.I("l.book_title"), goqu.I("b.name")),
				goqu.I("l.status").In(open...),
			),
		).
		Select(
			goqu.I("b.id"),
			goqu.I("b.name"),
			goqu.I("b.num"),
			goqu.I("b.status_available"),
			goqu.I("b.status_loaned"),
			goqu.I("b.status_disabled"),
			goqu.I("b.status_renovated"),
			goqu.COALESCE(goqu.SUM(goqu.I("l.quantity")), 0).As("open_loaned"),
		).
		GroupBy(
			goqu.I("b.id"),
			goqu.I("b.name"),
			goqu.I("b.num"),
			goqu.I("b.status_available"),
			goqu.I("b.status_loaned"),
			goqu.I("b.status_disabled"),
			goqu.I("b.status_renovated"),
		).
		Order(goqu.I("b.name").Asc())

	query, _, err := stmt.ToSQL()
	if err != nil {
		return "", errors.Join(ErrBuildingQueryFailed, err)
	}
	return query, nil
}

// Ledger recomputes every book's loaned count from the open loans and reports
// the books whose stored counters disagree.
func (a *Auditor) Ledger(ctx context.Context) (LedgerReport, error) {
	query, err := a.buildLedgerQuery()
	if err != nil {
		return LedgerReport{}, err
	}

	var rows []BookLedger
	if err := a.db.SelectContext(ctx, &rows, query); err != nil {
		return LedgerReport{}, fmt.Errorf("audit ledger: %w", err)
	}

	report := LedgerReport{Books: len(rows), Findings: []Finding{}}
	for _, row := range rows {
		if problems := row.Problems(); len(problems) > 0 {
			report.Findings = append(report.Findings, Finding{Book: row, Problems: problems})
		}
	}
	return report, nil
}
