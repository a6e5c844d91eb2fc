package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DKMApps/masjid_kas_app/internal/apperrors"
	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	mockTxnService  *MockTransactionService
	mockUserService *MockUserService
	router          *gin.Engine
	userID          string
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockTxnService = new(MockTransactionService)
	suite.mockUserService = new(MockUserService)
	suite.userID = uuid.NewString()

	suite.router = gin.New()
	rg := suite.router.Group("/api/v1", func(c *gin.Context) {
		c.Set("userID", suite.userID)
	})
	registerTransactionRoutes(rg, suite.mockTxnService, suite.mockUserService)
}

func (suite *TransactionHandlerTestSuite) postReset() *httptest.ResponseRecorder {
	body := `{"openingBalance": 50000000, "openingDate": "2025-01-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/reset", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TransactionHandlerTestSuite) TestResetTransactions_AdminAllowed() {
	admin := &domain.User{UserID: suite.userID, Role: domain.RoleAdmin, IsActive: true}
	suite.mockUserService.On("GetUserByID", mock.Anything, suite.userID).Return(admin, nil).Once()
	suite.mockTxnService.On("ResetTransactions", mock.Anything, mock.Anything, suite.userID).
		Return(int64(42), nil).Once()

	w := suite.postReset()

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"deletedCount":42`)
	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestResetTransactions_TreasurerRefused() {
	// A treasurer holds the transactions delete capability, so a plain
	// capability gate would let the reset through. The route must refuse
	// every role except admin.
	treasurer := &domain.User{UserID: suite.userID, Role: domain.RoleBendahara, IsActive: true}
	suite.Require().True(treasurer.Can(domain.PageTransactions, domain.ActionDelete))

	suite.mockUserService.On("GetUserByID", mock.Anything, suite.userID).Return(treasurer, nil).Once()

	w := suite.postReset()

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockTxnService.AssertNotCalled(suite.T(), "ResetTransactions",
		mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestResetTransactions_ViewerRefused() {
	viewer := &domain.User{UserID: suite.userID, Role: domain.RoleViewer, IsActive: true}
	suite.mockUserService.On("GetUserByID", mock.Anything, suite.userID).Return(viewer, nil).Once()

	w := suite.postReset()

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockTxnService.AssertNotCalled(suite.T(), "ResetTransactions",
		mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestResetTransactions_MosqueNotConfigured() {
	admin := &domain.User{UserID: suite.userID, Role: domain.RoleAdmin, IsActive: true}
	suite.mockUserService.On("GetUserByID", mock.Anything, suite.userID).Return(admin, nil).Once()
	suite.mockTxnService.On("ResetTransactions", mock.Anything, mock.Anything, suite.userID).
		Return(int64(0), apperrors.ErrNotConfigured).Once()

	w := suite.postReset()

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "not been configured")
}

func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
