package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/DKMApps/masjid_kas_app/internal/apperrors"
	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	portssvc "github.com/DKMApps/masjid_kas_app/internal/core/ports/services"
	"github.com/DKMApps/masjid_kas_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo         *MockReportingRepository
	mockMosqueReader *MockMosqueReader
	service          portssvc.ReportingSvcFacade
	mosque           *domain.Mosque
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.mockMosqueReader = new(MockMosqueReader)
	suite.service = services.NewReportingService(suite.mockRepo, suite.mockMosqueReader)
	suite.mosque = &domain.Mosque{
		MosqueID:       "mosque-1",
		Name:           "Masjid Al-Ikhlas",
		OpeningBalance: decimal.NewFromInt(50000000),
		OpeningDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:       true,
	}
}

// --- GetBalance Tests ---

func (suite *ReportingServiceTestSuite) TestGetBalance_Success() {
	ctx := context.Background()
	income := decimal.RequireFromString("12500000.50")
	expense := decimal.RequireFromString("3200000.25")

	suite.mockMosqueReader.On("ActiveMosque", ctx).Return(suite.mosque, nil).Once()
	suite.mockRepo.On("GetLifetimeTotals", ctx, "mosque-1").Return(income, expense, nil).Once()

	balance, err := suite.service.GetBalance(ctx)

	suite.Require().NoError(err)
	suite.True(balance.OpeningBalance.Equal(decimal.NewFromInt(50000000)))
	suite.True(balance.TotalIncome.Equal(income))
	suite.True(balance.TotalExpense.Equal(expense))
	suite.True(balance.CurrentBalance.Equal(decimal.RequireFromString("59300000.25")))
	suite.mockRepo.AssertExpectations(suite.T())
}

// Ten additions of 0.10 must sum to exactly 1.00, which is where float
// arithmetic would drift.
func (suite *ReportingServiceTestSuite) TestGetBalance_DecimalExactness() {
	ctx := context.Background()
	tenth := decimal.RequireFromString("0.10")
	income := decimal.Zero
	for i := 0; i < 10; i++ {
		income = income.Add(tenth)
	}

	mosque := &domain.Mosque{MosqueID: "mosque-1", OpeningBalance: decimal.Zero, IsActive: true}
	suite.mockMosqueReader.On("ActiveMosque", ctx).Return(mosque, nil).Once()
	suite.mockRepo.On("GetLifetimeTotals", ctx, "mosque-1").Return(income, decimal.Zero, nil).Once()

	balance, err := suite.service.GetBalance(ctx)

	suite.Require().NoError(err)
	suite.True(balance.CurrentBalance.Equal(decimal.RequireFromString("1.00")),
		"expected exactly 1.00, got %s", balance.CurrentBalance)
}

func (suite *ReportingServiceTestSuite) TestGetBalance_NotConfigured() {
	ctx := context.Background()
	suite.mockMosqueReader.On("ActiveMosque", ctx).Return(nil, apperrors.ErrNotConfigured).Once()

	_, err := suite.service.GetBalance(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotConfigured)
	suite.mockRepo.AssertNotCalled(suite.T(), "GetLifetimeTotals")
}

// --- GetPeriodSummary Tests ---

func (suite *ReportingServiceTestSuite) TestGetPeriodSummary_PercentChange() {
	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	// 31-day January compares against 1-31 December.
	prevFrom := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	prevTo := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	suite.mockMosqueReader.On("ActiveMosque", ctx).Return(suite.mosque, nil).Once()
	suite.mockRepo.On("GetPeriodTotals", ctx, "mosque-1", from, to).
		Return(decimal.NewFromInt(150), decimal.NewFromInt(50), nil).Once()
	suite.mockRepo.On("GetPeriodTotals", ctx, "mosque-1", prevFrom, prevTo).
		Return(decimal.NewFromInt(100), decimal.NewFromInt(200), nil).Once()

	summary, err := suite.service.GetPeriodSummary(ctx, from, to)

	suite.Require().NoError(err)
	suite.True(summary.Income.Equal(decimal.NewFromInt(150)))
	suite.True(summary.Expense.Equal(decimal.NewFromInt(50)))
	suite.True(summary.Balance.Equal(decimal.NewFromInt(100)))
	suite.True(summary.IncomeChange.Equal(decimal.NewFromInt(50)), "150 vs 100 is +50%%, got %s", summary.IncomeChange)
	suite.True(summary.ExpenseChange.Equal(decimal.NewFromInt(-75)), "50 vs 200 is -75%%, got %s", summary.ExpenseChange)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetPeriodSummary_ZeroBaseline() {
	ctx := context.Background()
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	prevDay := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	suite.mockMosqueReader.On("ActiveMosque", ctx).Return(suite.mosque, nil).Once()
	suite.mockRepo.On("GetPeriodTotals", ctx, "mosque-1", from, to).
		Return(decimal.NewFromInt(500), decimal.NewFromInt(100), nil).Once()
	suite.mockRepo.On("GetPeriodTotals", ctx, "mosque-1", prevDay, prevDay).
		Return(decimal.Zero, decimal.Zero, nil).Once()

	summary, err := suite.service.GetPeriodSummary(ctx, from, to)

	suite.Require().NoError(err)
	suite.True(summary.IncomeChange.IsZero(), "zero baseline must yield zero change, got %s", summary.IncomeChange)
	suite.True(summary.ExpenseChange.IsZero())
}

func (suite *ReportingServiceTestSuite) TestGetPeriodSummary_InvertedRange() {
	ctx := context.Background()
	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := suite.service.GetPeriodSummary(ctx, from, to)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMosqueReader.AssertNotCalled(suite.T(), "ActiveMosque")
}

// --- GetDailySeries Tests ---

func (suite *ReportingServiceTestSuite) TestGetDailySeries_ZeroFilled() {
	ctx := context.Background()
	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)

	suite.mockMosqueReader.On("ActiveMosque", ctx).Return(suite.mosque, nil).Once()
	suite.mockRepo.On("GetDailyTotals", ctx, "mosque-1", from, to).Return([]domain.PeriodTotal{
		{Bucket: time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC), Income: decimal.NewFromInt(1000), Expense: decimal.NewFromInt(250)},
	}, nil).Once()

	points, err := suite.service.GetDailySeries(ctx, from, to)

	suite.Require().NoError(err)
	suite.Require().Len(points, 7, "one bucket per calendar day in the range")
	suite.Equal("2025-04-01", points[0].Label)
	suite.Equal("2025-04-07", points[6].Label)
	suite.True(points[0].Income.IsZero())
	suite.True(points[2].Income.Equal(decimal.NewFromInt(1000)))
	suite.True(points[2].Expense.Equal(decimal.NewFromInt(250)))
	suite.True(points[3].Expense.IsZero())
}

func (suite *ReportingServiceTestSuite) TestGetDailySeries_SingleDay() {
	ctx := context.Background()
	day := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)

	suite.mockMosqueReader.On("ActiveMosque", ctx).Return(suite.mosque, nil).Once()
	suite.mockRepo.On("GetDailyTotals", ctx, "mosque-1", day, day).Return([]domain.PeriodTotal{}, nil).Once()

	points, err := suite.service.GetDailySeries(ctx, day, day)

	suite.Require().NoError(err)
	suite.Require().Len(points, 1)
	suite.True(points[0].Income.IsZero())
}

// --- GetMonthlySeries Tests ---

func (suite *ReportingServiceTestSuite) TestGetMonthlySeries_SixBuckets() {
	ctx := context.Background()

	suite.mockMosqueReader.On("ActiveMosque", ctx).Return(suite.mosque, nil).Once()
	// Whatever months come back, the series always spans exactly six buckets.
	suite.mockRepo.On("GetMonthlyTotals", ctx, "mosque-1",
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]domain.PeriodTotal{}, nil).Once()

	points, err := suite.service.GetMonthlySeries(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(points, 6)
	for _, p := range points {
		suite.True(p.Income.IsZero())
		suite.True(p.Expense.IsZero())
		suite.NotEmpty(p.Label)
	}
}

// --- GetCategoryBreakdown / GetTopExpenses Tests ---

func (suite *ReportingServiceTestSuite) TestGetCategoryBreakdown_EmptyIsNotError() {
	ctx := context.Background()
	from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)

	suite.mockMosqueReader.On("ActiveMosque", ctx).Return(suite.mosque, nil).Once()
	suite.mockRepo.On("GetCategoryTotals", ctx, "mosque-1", from, to, domain.Income).
		Return(nil, nil).Once()

	totals, err := suite.service.GetCategoryBreakdown(ctx, from, to, domain.Income)

	suite.Require().NoError(err)
	suite.Require().NotNil(totals)
	suite.Empty(totals)
}

func (suite *ReportingServiceTestSuite) TestGetCategoryBreakdown_InvalidType() {
	ctx := context.Background()
	from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)

	_, err := suite.service.GetCategoryBreakdown(ctx, from, to, domain.TransactionType("TRANSFER"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestGetTopExpenses_TruncatesToFive() {
	ctx := context.Background()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	totals := make([]domain.CategoryTotal, 8)
	for i := range totals {
		totals[i] = domain.CategoryTotal{
			CategoryID:   string(rune('a' + i)),
			CategoryName: string(rune('A' + i)),
			Total:        decimal.NewFromInt(int64(800 - i*100)),
		}
	}

	suite.mockMosqueReader.On("ActiveMosque", ctx).Return(suite.mosque, nil).Once()
	suite.mockRepo.On("GetCategoryTotals", ctx, "mosque-1", from, to, domain.Expense).
		Return(totals, nil).Once()

	top, err := suite.service.GetTopExpenses(ctx, from, to)

	suite.Require().NoError(err)
	suite.Require().Len(top, 5)
	// The descending order from the store is preserved.
	for i := 1; i < len(top); i++ {
		suite.True(top[i].Total.LessThanOrEqual(top[i-1].Total))
	}
	suite.True(top[0].Total.Equal(decimal.NewFromInt(800)))
	suite.True(top[4].Total.Equal(decimal.NewFromInt(400)))
}

// --- GetExportRows Tests ---

func (suite *ReportingServiceTestSuite) TestGetExportRows_EmptySignalsNoData() {
	ctx := context.Background()
	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	suite.mockMosqueReader.On("ActiveMosque", ctx).Return(suite.mosque, nil).Once()
	suite.mockRepo.On("GetExportRows", ctx, "mosque-1", from, to).
		Return([]domain.ExportRow{}, nil).Once()

	rows, err := suite.service.GetExportRows(ctx, from, to)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNoData)
	suite.Nil(rows)
}

func (suite *ReportingServiceTestSuite) TestGetExportRows_Success() {
	ctx := context.Background()
	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)
	expected := []domain.ExportRow{
		{
			TransactionDate: time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
			Type:            domain.Income,
			CategoryName:    "Infaq Jumat",
			Amount:          decimal.NewFromInt(750000),
			Description:     "Kotak amal Jumat",
			UserName:        "System",
		},
	}

	suite.mockMosqueReader.On("ActiveMosque", ctx).Return(suite.mosque, nil).Once()
	suite.mockRepo.On("GetExportRows", ctx, "mosque-1", from, to).Return(expected, nil).Once()

	rows, err := suite.service.GetExportRows(ctx, from, to)

	suite.Require().NoError(err)
	suite.Equal(expected, rows)
}

// --- GetDashboard Tests ---

func (suite *ReportingServiceTestSuite) TestGetDashboard_Composition() {
	ctx := context.Background()
	now := time.Date(2025, 8, 20, 10, 30, 0, 0, time.UTC)
	monthStart := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)
	prevStart := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	prevEnd := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	suite.mockMosqueReader.On("ActiveMosque", ctx).Return(suite.mosque, nil)
	suite.mockRepo.On("GetLifetimeTotals", ctx, "mosque-1").
		Return(decimal.NewFromInt(10000000), decimal.NewFromInt(4000000), nil).Once()
	suite.mockRepo.On("GetPeriodTotals", ctx, "mosque-1", monthStart, monthEnd).
		Return(decimal.NewFromInt(2000000), decimal.NewFromInt(500000), nil).Once()
	suite.mockRepo.On("GetPeriodTotals", ctx, "mosque-1", prevStart, prevEnd).
		Return(decimal.NewFromInt(1000000), decimal.NewFromInt(500000), nil).Once()
	suite.mockRepo.On("GetMonthlyTotals", ctx, "mosque-1",
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), monthEnd).
		Return([]domain.PeriodTotal{
			{Bucket: monthStart, Income: decimal.NewFromInt(2000000), Expense: decimal.NewFromInt(500000)},
		}, nil).Once()
	suite.mockRepo.On("GetCategoryTotals", ctx, "mosque-1", monthStart, monthEnd, domain.Expense).
		Return([]domain.CategoryTotal{
			{CategoryName: "Listrik", Total: decimal.NewFromInt(300000)},
		}, nil).Once()

	dashboard, err := suite.service.GetDashboard(ctx, now)

	suite.Require().NoError(err)
	suite.True(dashboard.Balance.CurrentBalance.Equal(decimal.NewFromInt(56000000)))
	suite.True(dashboard.MonthSummary.Income.Equal(decimal.NewFromInt(2000000)))
	suite.True(dashboard.MonthSummary.IncomeChange.Equal(decimal.NewFromInt(100)))
	suite.True(dashboard.MonthSummary.ExpenseChange.IsZero())
	suite.Require().Len(dashboard.MonthlyTrend, 6)
	last := dashboard.MonthlyTrend[5]
	suite.True(last.Income.Equal(decimal.NewFromInt(2000000)), "current month lands in the last bucket")
	suite.Require().Len(dashboard.TopExpenses, 1)
	suite.Equal("Listrik", dashboard.TopExpenses[0].CategoryName)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

// percentChange rounding is visible through the summary path.
func TestPercentChangeRounding(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockReportingRepository)
	mockReader := new(MockMosqueReader)
	svc := services.NewReportingService(mockRepo, mockReader)
	mosque := &domain.Mosque{MosqueID: "m", OpeningBalance: decimal.Zero, IsActive: true}

	from := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	prev := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mockReader.On("ActiveMosque", ctx).Return(mosque, nil).Once()
	mockRepo.On("GetPeriodTotals", ctx, "m", from, to).
		Return(decimal.NewFromInt(1), decimal.Zero, nil).Once()
	mockRepo.On("GetPeriodTotals", ctx, "m", prev, prev).
		Return(decimal.NewFromInt(3), decimal.Zero, nil).Once()

	summary, err := svc.GetPeriodSummary(ctx, from, to)

	assert.NoError(t, err)
	// (1-3)/3*100 = -66.666..., rounded to two decimals.
	assert.True(t, summary.IncomeChange.Equal(decimal.RequireFromString("-66.67")),
		"got %s", summary.IncomeChange)
}
