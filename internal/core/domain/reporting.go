package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceSummary is the current cash position over the whole transaction history.
type BalanceSummary struct {
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	TotalExpense   decimal.Decimal `json:"totalExpense"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}

// PeriodSummary holds totals for an inclusive calendar-date range plus the
// percent change versus the immediately preceding period of equal duration.
// Balance is the period net (income minus expense), not the running total.
type PeriodSummary struct {
	Income        decimal.Decimal `json:"income"`
	Expense       decimal.Decimal `json:"expense"`
	Balance       decimal.Decimal `json:"balance"`
	IncomeChange  decimal.Decimal `json:"incomeChange"`
	ExpenseChange decimal.Decimal `json:"expenseChange"`
}

// SeriesPoint is one bucket of a time-series chart.
type SeriesPoint struct {
	Label   string          `json:"label"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// PeriodTotal is a raw per-bucket aggregate as returned by the store: only
// buckets with at least one transaction appear. Services fill the gaps.
type PeriodTotal struct {
	Bucket  time.Time       `json:"bucket"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// CategoryTotal is a per-category sum within a period and type.
type CategoryTotal struct {
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"name"`
	Color        string          `json:"color"`
	Total        decimal.Decimal `json:"value"`
}

// ExportRow flattens a transaction joined with its category and creator into
// the tabular shape consumed by the PDF and spreadsheet writers.
type ExportRow struct {
	TransactionDate time.Time       `json:"date"`
	Type            TransactionType `json:"type"`
	CategoryName    string          `json:"categoryName"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	UserName        string          `json:"userName"` // "System" when the creator was deleted
}

// Dashboard aggregates everything the dashboard page renders in one shape.
type Dashboard struct {
	Balance      BalanceSummary  `json:"balance"`
	MonthSummary PeriodSummary   `json:"monthSummary"`
	MonthlyTrend []SeriesPoint   `json:"monthlyTrend"`
	TopExpenses  []CategoryTotal `json:"topExpenses"`
}
