package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/DKMApps/masjid_kas_app/internal/apperrors"
	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	portssvc "github.com/DKMApps/masjid_kas_app/internal/core/ports/services"
	"github.com/DKMApps/masjid_kas_app/internal/core/services"
	"github.com/DKMApps/masjid_kas_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MosqueServiceTestSuite struct {
	suite.Suite
	mockMosqueRepo *MockMosqueRepository
	audit          *stubAuditService
	service        portssvc.MosqueSvcFacade
}

func (suite *MosqueServiceTestSuite) SetupTest() {
	suite.mockMosqueRepo = new(MockMosqueRepository)
	suite.audit = &stubAuditService{}
	suite.service = services.NewMosqueService(suite.mockMosqueRepo, suite.audit)
}

// --- ActiveMosque Tests ---

func (suite *MosqueServiceTestSuite) TestActiveMosque_Success() {
	ctx := context.Background()
	mosque := &domain.Mosque{MosqueID: uuid.NewString(), Name: "Masjid Al-Ikhlas", IsActive: true}

	suite.mockMosqueRepo.On("FindActiveMosque", ctx).Return(mosque, nil).Once()

	found, err := suite.service.ActiveMosque(ctx)

	suite.Require().NoError(err)
	suite.Equal(mosque.MosqueID, found.MosqueID)
}

func (suite *MosqueServiceTestSuite) TestActiveMosque_NotConfigured() {
	ctx := context.Background()

	suite.mockMosqueRepo.On("FindActiveMosque", ctx).Return(nil, apperrors.ErrNotFound).Once()

	found, err := suite.service.ActiveMosque(ctx)

	suite.Require().Error(err)
	suite.Nil(found)
	suite.ErrorIs(err, apperrors.ErrNotConfigured)
}

// --- UpdateMosque Tests ---

func (suite *MosqueServiceTestSuite) TestUpdateMosque_BootstrapsSingleton() {
	ctx := context.Background()
	updaterID := uuid.NewString()
	req := dto.UpdateMosqueRequest{
		Name:           "Masjid Al-Ikhlas",
		Address:        "Jl. Melati No. 5, Bandung",
		OpeningBalance: decimal.NewFromInt(50000000),
		OpeningDate:    "2024-01-01",
	}

	suite.mockMosqueRepo.On("FindActiveMosque", ctx).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockMosqueRepo.On("SaveMosque", ctx, mock.MatchedBy(func(mosque domain.Mosque) bool {
		return mosque.MosqueID != "" &&
			mosque.IsActive &&
			mosque.Name == "Masjid Al-Ikhlas" &&
			mosque.OpeningBalance.Equal(decimal.NewFromInt(50000000)) &&
			mosque.OpeningDate.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			mosque.CreatedBy == updaterID
	})).Return(nil).Once()

	mosque, err := suite.service.UpdateMosque(ctx, req, updaterID)

	suite.Require().NoError(err)
	suite.Require().NotNil(mosque)
	suite.NotEmpty(mosque.MosqueID)
	suite.Contains(suite.audit.recorded, domain.EntityAction("CREATE", "MOSQUE"))
	suite.mockMosqueRepo.AssertExpectations(suite.T())
}

func (suite *MosqueServiceTestSuite) TestUpdateMosque_PreservesExistingID() {
	ctx := context.Background()
	existingID := uuid.NewString()
	existing := &domain.Mosque{
		MosqueID:       existingID,
		Name:           "Masjid Al-Ikhlas",
		IsActive:       true,
		OpeningBalance: decimal.NewFromInt(10000000),
		OpeningDate:    time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	req := dto.UpdateMosqueRequest{
		Name:           "Masjid Al-Ikhlas Baru",
		OpeningBalance: decimal.NewFromInt(75000000),
		OpeningDate:    "2024-01-01",
	}

	suite.mockMosqueRepo.On("FindActiveMosque", ctx).Return(existing, nil).Once()
	suite.mockMosqueRepo.On("SaveMosque", ctx, mock.MatchedBy(func(mosque domain.Mosque) bool {
		return mosque.MosqueID == existingID &&
			mosque.Name == "Masjid Al-Ikhlas Baru" &&
			mosque.OpeningBalance.Equal(decimal.NewFromInt(75000000))
	})).Return(nil).Once()

	mosque, err := suite.service.UpdateMosque(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(existingID, mosque.MosqueID)
	suite.Contains(suite.audit.recorded, domain.EntityAction("UPDATE", "MOSQUE"))
	suite.mockMosqueRepo.AssertExpectations(suite.T())
}

func (suite *MosqueServiceTestSuite) TestUpdateMosque_InvalidOpeningDate() {
	ctx := context.Background()
	req := dto.UpdateMosqueRequest{
		Name:           "Masjid Al-Ikhlas",
		OpeningBalance: decimal.NewFromInt(1000),
		OpeningDate:    "01-01-2024",
	}

	_, err := suite.service.UpdateMosque(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMosqueRepo.AssertNotCalled(suite.T(), "FindActiveMosque", mock.Anything)
}

func (suite *MosqueServiceTestSuite) TestUpdateMosque_NegativeOpeningBalance() {
	ctx := context.Background()
	req := dto.UpdateMosqueRequest{
		Name:           "Masjid Al-Ikhlas",
		OpeningBalance: decimal.NewFromInt(-500),
		OpeningDate:    "2024-01-01",
	}

	_, err := suite.service.UpdateMosque(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMosqueRepo.AssertNotCalled(suite.T(), "SaveMosque", mock.Anything, mock.Anything)
}

func TestMosqueService(t *testing.T) {
	suite.Run(t, new(MosqueServiceTestSuite))
}
