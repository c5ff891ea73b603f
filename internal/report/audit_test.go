package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/config"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/testutil"
)

func Test_BookLedger_Problems(t *testing.T) {
	ok := BookLedger{Num: 5, Available: 3, Loaned: 2, OpenLoaned: 2}
	assert.Empty(t, ok.Problems())

	bad := BookLedger{Num: 5, Available: -1, Loaned: 2, OpenLoaned: 3}
	assert.Len(t, bad.Problems(), 3)
}

func Test_BuildLedgerQuery(t *testing.T) {
	a := NewAuditor(nil, dialectPostgres)

	query, err := a.buildLedgerQuery()
	require.NoError(t, err)
	assert.Contains(t, query, `LEFT JOIN "loan_records"`)
	assert.Contains(t, query, `'returned'`)
	assert.NotContains(t, query, `'completed'`)
	assert.Contains(t, query, `"open_loaned"`)
}

func Test_Ledger_SQLite(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	ctx := context.Background()

	dune := testutil.SeedBook(t, gdb, "Dune", 5)
	emma := testutil.SeedBook(t, gdb, "Emma", 2)

	loans := []model.LoanRecord{
		{BorrowerName: "ana@example.com", BookTitle: "dune", Quantity: 2, Status: model.LoanDelivered},
		{BorrowerName: "ben@example.com", BookTitle: "Dune", Quantity: 1, Status: model.LoanCompleted},
		{BorrowerName: "ben@example.com", BookTitle: "Emma", Quantity: 1, Status: model.LoanPending},
	}
	require.NoError(t, gdb.Create(&loans).Error)

	require.NoError(t, gdb.Model(&model.Book{}).Where("id = ?", dune.ID).
		Updates(map[string]any{"status_available": 3, "status_loaned": 2}).Error)
	require.NoError(t, gdb.Model(&model.Book{}).Where("id = ?", emma.ID).
		Updates(map[string]any{"status_available": 2, "status_loaned": 0}).Error)

	a, err := FromGorm(gdb, config.DriverSQLite)
	require.NoError(t, err)

	report, err := a.Ledger(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Books)
	assert.False(t, report.Consistent())
	require.Len(t, report.Findings, 1)

	finding := report.Findings[0]
	assert.Equal(t, "Emma", finding.Book.Name)
	assert.Equal(t, 1, finding.Book.OpenLoaned)
	assert.Contains(t, finding.Problems, "loaned is 0 but open loans hold 1")
}

func Test_FromGorm_UnknownDriver(t *testing.T) {
	_, err := FromGorm(testutil.NewTestDB(t), "oracle")
	assert.Error(t, err)
}
