package services_test

import (
	"context"
	"time"

	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	portsrepo "github.com/DKMApps/masjid_kas_app/internal/core/ports/repositories"
	portssvc "github.com/DKMApps/masjid_kas_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock MosqueRepository ---

type MockMosqueRepository struct {
	mock.Mock
}

func (m *MockMosqueRepository) SaveMosque(ctx context.Context, mosque domain.Mosque) error {
	args := m.Called(ctx, mosque)
	return args.Error(0)
}

func (m *MockMosqueRepository) FindActiveMosque(ctx context.Context) (*domain.Mosque, error) {
	args := m.Called(ctx)
	var mosque *domain.Mosque
	if args.Get(0) != nil {
		mosque = args.Get(0).(*domain.Mosque)
	}
	return mosque, args.Error(1)
}

var _ portsrepo.MosqueRepository = (*MockMosqueRepository)(nil)

// --- Mock MosqueReaderSvc ---

type MockMosqueReader struct {
	mock.Mock
}

func (m *MockMosqueReader) ActiveMosque(ctx context.Context) (*domain.Mosque, error) {
	args := m.Called(ctx)
	var mosque *domain.Mosque
	if args.Get(0) != nil {
		mosque = args.Get(0).(*domain.Mosque)
	}
	return mosque, args.Error(1)
}

var _ portssvc.MosqueReaderSvc = (*MockMosqueReader)(nil)

// --- Stub AuditSvcFacade ---

// stubAuditService records the actions it sees so tests can assert that a
// mutation left a trail without mocking every Record argument.
type stubAuditService struct {
	recorded []domain.AuditAction
}

func (s *stubAuditService) Record(ctx context.Context, action domain.AuditAction, userID, entityType, entityID string, before, after any) {
	s.recorded = append(s.recorded, action)
}

func (s *stubAuditService) ListAuditLogs(ctx context.Context, limit, offset int) ([]domain.AuditLog, error) {
	return nil, nil
}

var _ portssvc.AuditSvcFacade = (*stubAuditService)(nil)

// --- Mock CategoryRepository ---

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	var category *domain.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, mosqueID string, txType *domain.TransactionType, includeInactive bool) ([]domain.Category, error) {
	args := m.Called(ctx, mosqueID, txType, includeInactive)
	var categories []domain.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

func (m *MockCategoryRepository) CountTransactionsForCategory(ctx context.Context, categoryID string) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

var _ portsrepo.CategoryRepository = (*MockCategoryRepository)(nil)

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, mosqueID string, filter portsrepo.ListTransactionsFilter) ([]domain.Transaction, string, error) {
	args := m.Called(ctx, mosqueID, filter)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.String(1), args.Error(2)
}

func (m *MockTransactionRepository) ResetAll(ctx context.Context, mosqueID string, openingBalance decimal.Decimal, openingDate time.Time, updatedBy string) (int64, error) {
	args := m.Called(ctx, mosqueID, openingBalance, openingDate, updatedBy)
	return args.Get(0).(int64), args.Error(1)
}

var _ portsrepo.TransactionRepository = (*MockTransactionRepository)(nil)

// --- Mock EventRepository ---

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	args := m.Called(ctx, eventID)
	var event *domain.Event
	if args.Get(0) != nil {
		event = args.Get(0).(*domain.Event)
	}
	return event, args.Error(1)
}

func (m *MockEventRepository) ListEvents(ctx context.Context, mosqueID string, filter portsrepo.ListEventsFilter) ([]domain.Event, error) {
	args := m.Called(ctx, mosqueID, filter)
	var events []domain.Event
	if args.Get(0) != nil {
		events = args.Get(0).([]domain.Event)
	}
	return events, args.Error(1)
}

func (m *MockEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

var _ portsrepo.EventRepository = (*MockEventRepository)(nil)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime *time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiryTime)
	return args.Error(0)
}

var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetLifetimeTotals(ctx context.Context, mosqueID string) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, mosqueID)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockReportingRepository) GetPeriodTotals(ctx context.Context, mosqueID string, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, mosqueID, from, to)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockReportingRepository) GetDailyTotals(ctx context.Context, mosqueID string, from, to time.Time) ([]domain.PeriodTotal, error) {
	args := m.Called(ctx, mosqueID, from, to)
	var totals []domain.PeriodTotal
	if args.Get(0) != nil {
		totals = args.Get(0).([]domain.PeriodTotal)
	}
	return totals, args.Error(1)
}

func (m *MockReportingRepository) GetMonthlyTotals(ctx context.Context, mosqueID string, from, to time.Time) ([]domain.PeriodTotal, error) {
	args := m.Called(ctx, mosqueID, from, to)
	var totals []domain.PeriodTotal
	if args.Get(0) != nil {
		totals = args.Get(0).([]domain.PeriodTotal)
	}
	return totals, args.Error(1)
}

func (m *MockReportingRepository) GetCategoryTotals(ctx context.Context, mosqueID string, from, to time.Time, txType domain.TransactionType) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, mosqueID, from, to, txType)
	var totals []domain.CategoryTotal
	if args.Get(0) != nil {
		totals = args.Get(0).([]domain.CategoryTotal)
	}
	return totals, args.Error(1)
}

func (m *MockReportingRepository) GetExportRows(ctx context.Context, mosqueID string, from, to time.Time) ([]domain.ExportRow, error) {
	args := m.Called(ctx, mosqueID, from, to)
	var rows []domain.ExportRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.ExportRow)
	}
	return rows, args.Error(1)
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)
