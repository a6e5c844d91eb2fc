package repositories

import (
	"context"
	"time"

	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the read-only aggregate queries behind the
// reporting engine. All period parameters are inclusive calendar dates: a
// transaction dated exactly on the end date is included regardless of its
// time-of-day component.
type ReportingRepository interface {
	// GetLifetimeTotals returns the income and expense sums over the entire
	// transaction history of the mosque.
	GetLifetimeTotals(ctx context.Context, mosqueID string) (income, expense decimal.Decimal, err error)

	// GetPeriodTotals returns the income and expense sums within [from, to].
	GetPeriodTotals(ctx context.Context, mosqueID string, from, to time.Time) (income, expense decimal.Decimal, err error)

	// GetDailyTotals returns per-day sums within [from, to]. Only days with at
	// least one transaction appear; callers fill the gaps.
	GetDailyTotals(ctx context.Context, mosqueID string, from, to time.Time) ([]domain.PeriodTotal, error)

	// GetMonthlyTotals returns per-month sums within [from, to], one grouped
	// query for the whole span. Only months with data appear.
	GetMonthlyTotals(ctx context.Context, mosqueID string, from, to time.Time) ([]domain.PeriodTotal, error)

	// GetCategoryTotals returns per-category sums within [from, to] for one
	// transaction type, ordered by total descending then category name
	// ascending so equal totals come out in a deterministic order.
	GetCategoryTotals(ctx context.Context, mosqueID string, from, to time.Time, txType domain.TransactionType) ([]domain.CategoryTotal, error)

	// GetExportRows returns transactions within [from, to] joined with their
	// category and creator, oldest first. Deleted creators come back as "System".
	GetExportRows(ctx context.Context, mosqueID string, from, to time.Time) ([]domain.ExportRow, error)
}
