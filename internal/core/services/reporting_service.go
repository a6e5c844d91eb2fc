package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DKMApps/masjid_kas_app/internal/apperrors"
	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	portsrepo "github.com/DKMApps/masjid_kas_app/internal/core/ports/repositories"
	portssvc "github.com/DKMApps/masjid_kas_app/internal/core/ports/services"
	"github.com/DKMApps/masjid_kas_app/internal/utils"
	"github.com/shopspring/decimal"
)

const (
	topExpensesLimit = 5
	monthlyTrendSpan = 6
	percentPrecision = 2
	dailyLabelFormat = "2006-01-02"
)

var oneHundred = decimal.NewFromInt(100)

// reportingService implements the financial reporting engine. All arithmetic
// stays in decimal form end to end; floats never touch an amount.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	mosqueReader  portssvc.MosqueReaderSvc
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, mosqueReader portssvc.MosqueReaderSvc) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo, mosqueReader: mosqueReader}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetBalance(ctx context.Context) (domain.BalanceSummary, error) {
	mosque, err := s.mosqueReader.ActiveMosque(ctx)
	if err != nil {
		return domain.BalanceSummary{}, err
	}

	income, expense, err := s.reportingRepo.GetLifetimeTotals(ctx, mosque.MosqueID)
	if err != nil {
		return domain.BalanceSummary{}, fmt.Errorf("failed to retrieve lifetime totals: %w", err)
	}

	return domain.BalanceSummary{
		OpeningBalance: mosque.OpeningBalance,
		TotalIncome:    income,
		TotalExpense:   expense,
		CurrentBalance: mosque.OpeningBalance.Add(income).Sub(expense),
	}, nil
}

func (s *reportingService) GetPeriodSummary(ctx context.Context, from, to time.Time) (domain.PeriodSummary, error) {
	if err := validatePeriod(from, to); err != nil {
		return domain.PeriodSummary{}, err
	}

	mosque, err := s.mosqueReader.ActiveMosque(ctx)
	if err != nil {
		return domain.PeriodSummary{}, err
	}

	income, expense, err := s.reportingRepo.GetPeriodTotals(ctx, mosque.MosqueID, from, to)
	if err != nil {
		return domain.PeriodSummary{}, fmt.Errorf("failed to retrieve period totals: %w", err)
	}

	// The comparison window is the immediately preceding stretch of the same
	// number of calendar days. A 1-31 January query compares against 1-31
	// December, a single day against the day before.
	days := daysInPeriod(from, to)
	prevTo := from.AddDate(0, 0, -1)
	prevFrom := from.AddDate(0, 0, -days)

	prevIncome, prevExpense, err := s.reportingRepo.GetPeriodTotals(ctx, mosque.MosqueID, prevFrom, prevTo)
	if err != nil {
		return domain.PeriodSummary{}, fmt.Errorf("failed to retrieve preceding period totals: %w", err)
	}

	summary := domain.PeriodSummary{
		Income:        income,
		Expense:       expense,
		Balance:       income.Sub(expense),
		IncomeChange:  percentChange(income, prevIncome),
		ExpenseChange: percentChange(expense, prevExpense),
	}

	s.LogDebug(ctx, "Period summary computed",
		slog.String("from", from.Format(dailyLabelFormat)),
		slog.String("to", to.Format(dailyLabelFormat)),
		slog.String("income", income.String()),
		slog.String("expense", expense.String()))
	return summary, nil
}

func (s *reportingService) GetDailySeries(ctx context.Context, from, to time.Time) ([]domain.SeriesPoint, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}

	mosque, err := s.mosqueReader.ActiveMosque(ctx)
	if err != nil {
		return nil, err
	}

	totals, err := s.reportingRepo.GetDailyTotals(ctx, mosque.MosqueID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve daily totals: %w", err)
	}

	byDay := make(map[string]domain.PeriodTotal, len(totals))
	for _, t := range totals {
		byDay[t.Bucket.Format(dailyLabelFormat)] = t
	}

	// One bucket per calendar day in the range, zero-filled where the store
	// returned nothing, so charts never have gaps.
	points := make([]domain.SeriesPoint, 0, daysInPeriod(from, to))
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		label := day.Format(dailyLabelFormat)
		point := domain.SeriesPoint{Label: label, Income: decimal.Zero, Expense: decimal.Zero}
		if t, ok := byDay[label]; ok {
			point.Income = t.Income
			point.Expense = t.Expense
		}
		points = append(points, point)
	}
	return points, nil
}

func (s *reportingService) GetMonthlySeries(ctx context.Context) ([]domain.SeriesPoint, error) {
	mosque, err := s.mosqueReader.ActiveMosque(ctx)
	if err != nil {
		return nil, err
	}
	return s.monthlySeries(ctx, mosque.MosqueID, time.Now())
}

// monthlySeries builds the trend of the monthlyTrendSpan months ending at the
// month of ref, oldest first, from a single grouped query.
func (s *reportingService) monthlySeries(ctx context.Context, mosqueID string, ref time.Time) ([]domain.SeriesPoint, error) {
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	from := monthStart.AddDate(0, -(monthlyTrendSpan - 1), 0)
	to := monthStart.AddDate(0, 1, -1)

	totals, err := s.reportingRepo.GetMonthlyTotals(ctx, mosqueID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve monthly totals: %w", err)
	}

	byMonth := make(map[string]domain.PeriodTotal, len(totals))
	for _, t := range totals {
		byMonth[t.Bucket.Format("2006-01")] = t
	}

	points := make([]domain.SeriesPoint, 0, monthlyTrendSpan)
	for month := from; !month.After(monthStart); month = month.AddDate(0, 1, 0) {
		point := domain.SeriesPoint{Label: utils.FormatMonthID(month), Income: decimal.Zero, Expense: decimal.Zero}
		if t, ok := byMonth[month.Format("2006-01")]; ok {
			point.Income = t.Income
			point.Expense = t.Expense
		}
		points = append(points, point)
	}
	return points, nil
}

func (s *reportingService) GetCategoryBreakdown(ctx context.Context, from, to time.Time, txType domain.TransactionType) ([]domain.CategoryTotal, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}
	if !txType.Valid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, txType)
	}

	mosque, err := s.mosqueReader.ActiveMosque(ctx)
	if err != nil {
		return nil, err
	}

	totals, err := s.reportingRepo.GetCategoryTotals(ctx, mosque.MosqueID, from, to, txType)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve category totals: %w", err)
	}
	if totals == nil {
		totals = []domain.CategoryTotal{}
	}
	return totals, nil
}

func (s *reportingService) GetTopExpenses(ctx context.Context, from, to time.Time) ([]domain.CategoryTotal, error) {
	totals, err := s.GetCategoryBreakdown(ctx, from, to, domain.Expense)
	if err != nil {
		return nil, err
	}
	if len(totals) > topExpensesLimit {
		totals = totals[:topExpensesLimit]
	}
	return totals, nil
}

func (s *reportingService) GetExportRows(ctx context.Context, from, to time.Time) ([]domain.ExportRow, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}

	mosque, err := s.mosqueReader.ActiveMosque(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.GetExportRows(ctx, mosque.MosqueID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve export rows: %w", err)
	}
	if len(rows) == 0 {
		// Callers render a proper "nothing to export" message instead of
		// producing an empty document.
		return nil, apperrors.ErrNoData
	}

	s.LogInfo(ctx, "Export rows generated",
		slog.String("from", from.Format(dailyLabelFormat)),
		slog.String("to", to.Format(dailyLabelFormat)),
		slog.Int("row_count", len(rows)))
	return rows, nil
}

func (s *reportingService) GetDashboard(ctx context.Context, now time.Time) (domain.Dashboard, error) {
	mosque, err := s.mosqueReader.ActiveMosque(ctx)
	if err != nil {
		return domain.Dashboard{}, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	balance, err := s.GetBalance(ctx)
	if err != nil {
		return domain.Dashboard{}, err
	}

	monthSummary, err := s.GetPeriodSummary(ctx, monthStart, monthEnd)
	if err != nil {
		return domain.Dashboard{}, err
	}

	trend, err := s.monthlySeries(ctx, mosque.MosqueID, now)
	if err != nil {
		return domain.Dashboard{}, err
	}

	topExpenses, err := s.GetTopExpenses(ctx, monthStart, monthEnd)
	if err != nil {
		return domain.Dashboard{}, err
	}

	return domain.Dashboard{
		Balance:      balance,
		MonthSummary: monthSummary,
		MonthlyTrend: trend,
		TopExpenses:  topExpenses,
	}, nil
}

// percentChange returns (current - previous) / previous * 100 rounded to two
// decimal places. A zero baseline yields zero, never a division error.
func percentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(oneHundred).Round(percentPrecision)
}

// daysInPeriod counts the calendar days in the inclusive range [from, to].
func daysInPeriod(from, to time.Time) int {
	return int(to.Sub(from).Hours()/24) + 1
}

func validatePeriod(from, to time.Time) error {
	if from.After(to) {
		return fmt.Errorf("%w: from date is after to date", apperrors.ErrValidation)
	}
	return nil
}
