package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	portsrepo "github.com/DKMApps/masjid_kas_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface. All
// per-period queries treat the end date as inclusive by comparing against the
// start of the following day, so a row dated exactly on the end date is always
// counted regardless of its time component.
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// exclusiveEnd converts an inclusive end date into the exclusive boundary used
// in SQL comparisons.
func exclusiveEnd(to time.Time) time.Time {
	return to.AddDate(0, 0, 1)
}

func (r *reportingRepository) GetLifetimeTotals(ctx context.Context, mosqueID string) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'INCOME' THEN amount ELSE 0 END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN type = 'EXPENSE' THEN amount ELSE 0 END), 0) AS total_expense
		FROM transactions
		WHERE mosque_id = $1;
	`
	var income, expense decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, mosqueID).Scan(&income, &expense); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("error querying lifetime totals: %w", err)
	}
	return income, expense, nil
}

func (r *reportingRepository) GetPeriodTotals(ctx context.Context, mosqueID string, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'INCOME' THEN amount ELSE 0 END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN type = 'EXPENSE' THEN amount ELSE 0 END), 0) AS total_expense
		FROM transactions
		WHERE mosque_id = $1
			AND transaction_date >= $2
			AND transaction_date < $3;
	`
	var income, expense decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, mosqueID, from, exclusiveEnd(to)).Scan(&income, &expense); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("error querying period totals: %w", err)
	}
	return income, expense, nil
}

func (r *reportingRepository) GetDailyTotals(ctx context.Context, mosqueID string, from, to time.Time) ([]domain.PeriodTotal, error) {
	query := `
		SELECT
			transaction_date::date AS bucket,
			COALESCE(SUM(CASE WHEN type = 'INCOME' THEN amount ELSE 0 END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN type = 'EXPENSE' THEN amount ELSE 0 END), 0) AS total_expense
		FROM transactions
		WHERE mosque_id = $1
			AND transaction_date >= $2
			AND transaction_date < $3
		GROUP BY transaction_date::date
		ORDER BY bucket ASC;
	`
	return r.queryPeriodTotals(ctx, query, mosqueID, from, exclusiveEnd(to))
}

func (r *reportingRepository) GetMonthlyTotals(ctx context.Context, mosqueID string, from, to time.Time) ([]domain.PeriodTotal, error) {
	// One grouped query covers the whole span; callers fill missing months.
	query := `
		SELECT
			date_trunc('month', transaction_date)::date AS bucket,
			COALESCE(SUM(CASE WHEN type = 'INCOME' THEN amount ELSE 0 END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN type = 'EXPENSE' THEN amount ELSE 0 END), 0) AS total_expense
		FROM transactions
		WHERE mosque_id = $1
			AND transaction_date >= $2
			AND transaction_date < $3
		GROUP BY date_trunc('month', transaction_date)
		ORDER BY bucket ASC;
	`
	return r.queryPeriodTotals(ctx, query, mosqueID, from, exclusiveEnd(to))
}

func (r *reportingRepository) queryPeriodTotals(ctx context.Context, query string, args ...any) ([]domain.PeriodTotal, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying bucketed totals: %w", err)
	}
	defer rows.Close()

	totals := []domain.PeriodTotal{}
	for rows.Next() {
		var t domain.PeriodTotal
		if err := rows.Scan(&t.Bucket, &t.Income, &t.Expense); err != nil {
			return nil, fmt.Errorf("error scanning bucketed totals row: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bucketed totals rows: %w", err)
	}

	return totals, nil
}

func (r *reportingRepository) GetCategoryTotals(ctx context.Context, mosqueID string, from, to time.Time, txType domain.TransactionType) ([]domain.CategoryTotal, error) {
	// Equal totals are ordered by name so two runs over the same data always
	// produce the same chart.
	query := `
		SELECT
			c.category_id,
			c.name,
			c.color,
			COALESCE(SUM(t.amount), 0) AS total
		FROM transactions t
		JOIN categories c ON t.category_id = c.category_id
		WHERE t.mosque_id = $1
			AND t.transaction_date >= $2
			AND t.transaction_date < $3
			AND t.type = $4
		GROUP BY c.category_id, c.name, c.color
		ORDER BY total DESC, c.name ASC;
	`
	rows, err := r.Pool.Query(ctx, query, mosqueID, from, exclusiveEnd(to), txType)
	if err != nil {
		return nil, fmt.Errorf("error querying category totals: %w", err)
	}
	defer rows.Close()

	totals := []domain.CategoryTotal{}
	for rows.Next() {
		var t domain.CategoryTotal
		if err := rows.Scan(&t.CategoryID, &t.CategoryName, &t.Color, &t.Total); err != nil {
			return nil, fmt.Errorf("error scanning category totals row: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category totals rows: %w", err)
	}

	return totals, nil
}

func (r *reportingRepository) GetExportRows(ctx context.Context, mosqueID string, from, to time.Time) ([]domain.ExportRow, error) {
	query := `
		SELECT
			t.transaction_date,
			t.type,
			c.name AS category_name,
			t.amount,
			t.description,
			COALESCE(u.full_name, 'System') AS user_name
		FROM transactions t
		JOIN categories c ON t.category_id = c.category_id
		LEFT JOIN users u ON t.created_by = u.user_id
		WHERE t.mosque_id = $1
			AND t.transaction_date >= $2
			AND t.transaction_date < $3
		ORDER BY t.transaction_date ASC, t.created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, mosqueID, from, exclusiveEnd(to))
	if err != nil {
		return nil, fmt.Errorf("error querying export rows: %w", err)
	}
	defer rows.Close()

	result := []domain.ExportRow{}
	for rows.Next() {
		var row domain.ExportRow
		if err := rows.Scan(
			&row.TransactionDate,
			&row.Type,
			&row.CategoryName,
			&row.Amount,
			&row.Description,
			&row.UserName,
		); err != nil {
			return nil, fmt.Errorf("error scanning export row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating export rows: %w", err)
	}

	return result, nil
}
