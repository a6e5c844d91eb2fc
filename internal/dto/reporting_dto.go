package dto

import (
	"time"

	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	"github.com/DKMApps/masjid_kas_app/internal/utils"
	"github.com/shopspring/decimal"
)

// ReportPeriodParams defines the from/to query parameters shared by the
// period-scoped reports.
type ReportPeriodParams struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

// BalanceResponse is the current cash position report.
type BalanceResponse struct {
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	TotalExpense   decimal.Decimal `json:"totalExpense"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}

// PeriodSummaryResponse is the period totals report.
type PeriodSummaryResponse struct {
	FromDate      string          `json:"fromDate"`
	ToDate        string          `json:"toDate"`
	Income        decimal.Decimal `json:"income"`
	Expense       decimal.Decimal `json:"expense"`
	Balance       decimal.Decimal `json:"balance"`
	IncomeChange  decimal.Decimal `json:"incomeChange"`
	ExpenseChange decimal.Decimal `json:"expenseChange"`
}

// SeriesPointResponse is one chart bucket.
type SeriesPointResponse struct {
	Label   string          `json:"label"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// SeriesResponse wraps an ordered chart series.
type SeriesResponse struct {
	Points []SeriesPointResponse `json:"points"`
}

// CategoryTotalResponse is one slice of a breakdown chart.
type CategoryTotalResponse struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
	Color string          `json:"color"`
}

// BreakdownResponse wraps a category breakdown with its grand total.
type BreakdownResponse struct {
	FromDate string                  `json:"fromDate"`
	ToDate   string                  `json:"toDate"`
	Type     string                  `json:"type"`
	Items    []CategoryTotalResponse `json:"items"`
	Total    decimal.Decimal         `json:"total"`
}

// ExportRowResponse is one flat row consumed by the PDF and spreadsheet writers.
type ExportRowResponse struct {
	Date          string          `json:"date"`          // ISO calendar date
	FormattedDate string          `json:"formattedDate"` // id-ID display form
	Type          string          `json:"type"`
	CategoryName  string          `json:"categoryName"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	UserName      string          `json:"userName"`
}

// ExportResponse wraps export rows for a period.
type ExportResponse struct {
	FromDate string              `json:"fromDate"`
	ToDate   string              `json:"toDate"`
	Rows     []ExportRowResponse `json:"rows"`
}

// DashboardResponse composes everything the dashboard page renders.
type DashboardResponse struct {
	Balance      BalanceResponse         `json:"balance"`
	MonthSummary PeriodSummaryResponse   `json:"monthSummary"`
	MonthlyTrend []SeriesPointResponse   `json:"monthlyTrend"`
	TopExpenses  []CategoryTotalResponse `json:"topExpenses"`
}

// ToBalanceResponse converts a domain.BalanceSummary to its DTO.
func ToBalanceResponse(b domain.BalanceSummary) BalanceResponse {
	return BalanceResponse{
		OpeningBalance: b.OpeningBalance,
		TotalIncome:    b.TotalIncome,
		TotalExpense:   b.TotalExpense,
		CurrentBalance: b.CurrentBalance,
	}
}

// ToPeriodSummaryResponse converts a domain.PeriodSummary to its DTO.
func ToPeriodSummaryResponse(s domain.PeriodSummary, from, to time.Time) PeriodSummaryResponse {
	return PeriodSummaryResponse{
		FromDate:      from.Format("2006-01-02"),
		ToDate:        to.Format("2006-01-02"),
		Income:        s.Income,
		Expense:       s.Expense,
		Balance:       s.Balance,
		IncomeChange:  s.IncomeChange,
		ExpenseChange: s.ExpenseChange,
	}
}

// ToSeriesResponse converts a domain series to its DTO.
func ToSeriesResponse(points []domain.SeriesPoint) SeriesResponse {
	return SeriesResponse{Points: toSeriesPointResponses(points)}
}

func toSeriesPointResponses(points []domain.SeriesPoint) []SeriesPointResponse {
	responses := make([]SeriesPointResponse, len(points))
	for i, p := range points {
		responses[i] = SeriesPointResponse{Label: p.Label, Income: p.Income, Expense: p.Expense}
	}
	return responses
}

// ToBreakdownResponse converts category totals to the breakdown DTO, summing
// the grand total while mapping.
func ToBreakdownResponse(items []domain.CategoryTotal, from, to time.Time, txType domain.TransactionType) BreakdownResponse {
	response := BreakdownResponse{
		FromDate: from.Format("2006-01-02"),
		ToDate:   to.Format("2006-01-02"),
		Type:     string(txType),
		Items:    toCategoryTotalResponses(items),
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Total)
	}
	response.Total = total

	return response
}

func toCategoryTotalResponses(items []domain.CategoryTotal) []CategoryTotalResponse {
	responses := make([]CategoryTotalResponse, len(items))
	for i, item := range items {
		responses[i] = CategoryTotalResponse{Name: item.CategoryName, Value: item.Total, Color: item.Color}
	}
	return responses
}

// ToExportResponse converts export rows to their DTO, attaching the id-ID
// display date alongside the ISO date.
func ToExportResponse(rows []domain.ExportRow, from, to time.Time) ExportResponse {
	response := ExportResponse{
		FromDate: from.Format("2006-01-02"),
		ToDate:   to.Format("2006-01-02"),
		Rows:     make([]ExportRowResponse, len(rows)),
	}

	for i, row := range rows {
		response.Rows[i] = ExportRowResponse{
			Date:          row.TransactionDate.Format("2006-01-02"),
			FormattedDate: utils.FormatDateID(row.TransactionDate),
			Type:          string(row.Type),
			CategoryName:  row.CategoryName,
			Amount:        row.Amount,
			Description:   row.Description,
			UserName:      row.UserName,
		}
	}

	return response
}

// ToDashboardResponse converts a domain.Dashboard to its DTO.
func ToDashboardResponse(d domain.Dashboard, monthStart, monthEnd time.Time) DashboardResponse {
	return DashboardResponse{
		Balance:      ToBalanceResponse(d.Balance),
		MonthSummary: ToPeriodSummaryResponse(d.MonthSummary, monthStart, monthEnd),
		MonthlyTrend: toSeriesPointResponses(d.MonthlyTrend),
		TopExpenses:  toCategoryTotalResponses(d.TopExpenses),
	}
}
