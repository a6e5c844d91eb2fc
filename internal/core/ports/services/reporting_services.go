package services

import (
	"context"
	"time"

	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
)

// ReportingSvcFacade defines the financial reporting engine. All periods are
// inclusive calendar-date ranges; callers validate that from <= to before
// invoking. Empty periods yield zero-valued structures, never errors, except
// for GetExportRows which signals apperrors.ErrNoData.
type ReportingSvcFacade interface {
	// GetBalance computes opening balance + lifetime income - lifetime expense.
	GetBalance(ctx context.Context) (domain.BalanceSummary, error)

	// GetPeriodSummary computes period totals plus percent change versus the
	// immediately preceding period of equal duration (0 when there is no baseline).
	GetPeriodSummary(ctx context.Context, from, to time.Time) (domain.PeriodSummary, error)

	// GetDailySeries returns exactly one bucket per calendar day in [from, to],
	// zero-filled for days without transactions.
	GetDailySeries(ctx context.Context, from, to time.Time) ([]domain.SeriesPoint, error)

	// GetMonthlySeries returns exactly 6 buckets for the 6 months ending at
	// the current month, oldest first.
	GetMonthlySeries(ctx context.Context) ([]domain.SeriesPoint, error)

	// GetCategoryBreakdown returns per-category sums sorted descending by value.
	GetCategoryBreakdown(ctx context.Context, from, to time.Time, txType domain.TransactionType) ([]domain.CategoryTotal, error)

	// GetTopExpenses returns the 5 largest expense categories of the period.
	GetTopExpenses(ctx context.Context, from, to time.Time) ([]domain.CategoryTotal, error)

	// GetExportRows returns flat rows for the writers, or apperrors.ErrNoData
	// when the period holds no transactions.
	GetExportRows(ctx context.Context, from, to time.Time) ([]domain.ExportRow, error)

	// GetDashboard composes balance, current-month summary, 6-month trend and
	// top expenses in one call.
	GetDashboard(ctx context.Context, now time.Time) (domain.Dashboard, error)
}
