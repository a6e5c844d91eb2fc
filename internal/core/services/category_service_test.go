package services_test

import (
	"context"
	"testing"

	"github.com/DKMApps/masjid_kas_app/internal/apperrors"
	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	portssvc "github.com/DKMApps/masjid_kas_app/internal/core/ports/services"
	"github.com/DKMApps/masjid_kas_app/internal/core/services"
	"github.com/DKMApps/masjid_kas_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	mockCategoryRepo *MockCategoryRepository
	mockMosqueReader *MockMosqueReader
	audit            *stubAuditService
	service          portssvc.CategorySvcFacade
	mosque           *domain.Mosque
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockMosqueReader = new(MockMosqueReader)
	suite.audit = &stubAuditService{}
	suite.service = services.NewCategoryService(suite.mockCategoryRepo, suite.mockMosqueReader, suite.audit)
	suite.mosque = &domain.Mosque{MosqueID: "mosque-1", IsActive: true}
}

// --- CreateCategory Tests ---

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	req := dto.CreateCategoryRequest{
		Name:  "Infaq Jumat",
		Type:  "INCOME",
		Color: "#22C55E",
		Icon:  "hand-coins",
	}
	creatorID := uuid.NewString()

	suite.mockMosqueReader.On("ActiveMosque", ctx).Return(suite.mosque, nil).Once()
	suite.mockCategoryRepo.On("SaveCategory", ctx, mock.MatchedBy(func(category domain.Category) bool {
		return category.Name == "Infaq Jumat" &&
			category.Type == domain.Income &&
			category.MosqueID == "mosque-1" &&
			category.IsActive &&
			category.CreatedBy == creatorID
	})).Return(nil).Once()

	category, err := suite.service.CreateCategory(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(category)
	suite.NotEmpty(category.CategoryID)
	suite.Contains(suite.audit.recorded, domain.EntityAction("CREATE", "CATEGORY"))
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_InvalidType() {
	ctx := context.Background()
	req := dto.CreateCategoryRequest{Name: "Transfer", Type: "TRANSFER"}

	category, err := suite.service.CreateCategory(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(category)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMosqueReader.AssertNotCalled(suite.T(), "ActiveMosque")
}

// --- UpdateCategory Tests ---

func (suite *CategoryServiceTestSuite) TestUpdateCategory_PartialUpdate() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	existing := &domain.Category{
		CategoryID: categoryID,
		MosqueID:   "mosque-1",
		Name:       "Listrik",
		Type:       domain.Expense,
		Color:      "#EF4444",
		IsActive:   true,
	}
	newName := "Listrik dan Air"
	inactive := false
	req := dto.UpdateCategoryRequest{Name: &newName, IsActive: &inactive}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).Return(existing, nil).Once()
	suite.mockCategoryRepo.On("UpdateCategory", ctx, mock.MatchedBy(func(category domain.Category) bool {
		return category.Name == "Listrik dan Air" &&
			!category.IsActive &&
			category.Color == "#EF4444" &&
			category.Type == domain.Expense
	})).Return(nil).Once()

	updated, err := suite.service.UpdateCategory(ctx, categoryID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("Listrik dan Air", updated.Name)
	suite.False(updated.IsActive)
	suite.Contains(suite.audit.recorded, domain.EntityAction("UPDATE", "CATEGORY"))
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_NotFound() {
	ctx := context.Background()
	categoryID := uuid.NewString()

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateCategory(ctx, categoryID, dto.UpdateCategoryRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "UpdateCategory", mock.Anything, mock.Anything)
}

// --- DeleteCategory Tests ---

func (suite *CategoryServiceTestSuite) TestDeleteCategory_Success() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	existing := &domain.Category{CategoryID: categoryID, Name: "Lomba", Type: domain.Expense}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).Return(existing, nil).Once()
	suite.mockCategoryRepo.On("CountTransactionsForCategory", ctx, categoryID).Return(int64(0), nil).Once()
	suite.mockCategoryRepo.On("DeleteCategory", ctx, categoryID).Return(nil).Once()

	err := suite.service.DeleteCategory(ctx, categoryID, uuid.NewString())

	suite.Require().NoError(err)
	suite.Contains(suite.audit.recorded, domain.EntityAction("DELETE", "CATEGORY"))
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_ReferencedByTransactions() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	existing := &domain.Category{CategoryID: categoryID, Name: "Infaq", Type: domain.Income}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).Return(existing, nil).Once()
	suite.mockCategoryRepo.On("CountTransactionsForCategory", ctx, categoryID).Return(int64(3), nil).Once()

	err := suite.service.DeleteCategory(ctx, categoryID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "DeleteCategory", mock.Anything, mock.Anything)
	suite.Empty(suite.audit.recorded)
}

// --- ListCategories Tests ---

func (suite *CategoryServiceTestSuite) TestListCategories_TypeFilter() {
	ctx := context.Background()
	expected := []domain.Category{{CategoryID: uuid.NewString(), Type: domain.Income}}

	suite.mockMosqueReader.On("ActiveMosque", ctx).Return(suite.mosque, nil).Once()
	suite.mockCategoryRepo.On("ListCategories", ctx, "mosque-1", mock.MatchedBy(func(t *domain.TransactionType) bool {
		return t != nil && *t == domain.Income
	}), false).Return(expected, nil).Once()

	categories, err := suite.service.ListCategories(ctx, dto.ListCategoriesParams{Type: "INCOME"})

	suite.Require().NoError(err)
	suite.Equal(expected, categories)
}

func (suite *CategoryServiceTestSuite) TestListCategories_InvalidType() {
	ctx := context.Background()

	suite.mockMosqueReader.On("ActiveMosque", ctx).Return(suite.mosque, nil).Once()

	_, err := suite.service.ListCategories(ctx, dto.ListCategoriesParams{Type: "BOTH"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "ListCategories",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCategoryService(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
