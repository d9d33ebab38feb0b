package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lucasaveiro/gestor_espacos_app/internal/apperrors"
	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	portssvc "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/services"
	"github.com/lucasaveiro/gestor_espacos_app/internal/dto"
	"github.com/lucasaveiro/gestor_espacos_app/internal/handlers"
	"github.com/lucasaveiro/gestor_espacos_app/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock FinanceService ---
type MockFinanceService struct {
	mock.Mock
}

func (m *MockFinanceService) Summarize(ctx context.Context, start, end *time.Time) (*domain.FinancialSummary, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialSummary), args.Error(1)
}

func (m *MockFinanceService) Ledger(ctx context.Context, filters domain.LedgerFilters) ([]domain.LedgerEntry, domain.LedgerSummary, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, domain.LedgerSummary{}, args.Error(2)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Get(1).(domain.LedgerSummary), args.Error(2)
}

func (m *MockFinanceService) AllEntries(ctx context.Context, start, end *time.Time) ([]domain.FinancialEntry, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialEntry), args.Error(1)
}

func (m *MockFinanceService) Forecast(ctx context.Context, start, end time.Time) (domain.ForecastSummary, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(domain.ForecastSummary), args.Error(1)
}

var _ portssvc.FinanceService = (*MockFinanceService)(nil)

// --- Test Suite ---
type FinanceHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockFinanceService *MockFinanceService
	jwtSecret          string
}

func (suite *FinanceHandlerTestSuite) generateTestToken() string {
	claims := jwt.RegisteredClaims{
		Issuer:    "gea-test",
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *FinanceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockFinanceService = new(MockFinanceService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterFinanceRoutes(v1, suite.mockFinanceService)
}

func (suite *FinanceHandlerTestSuite) doRequest(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *FinanceHandlerTestSuite) TestGetSummary_Success() {
	expected := &domain.FinancialSummary{
		EventIncome: domain.EventIncomeSummary{
			Total:            decimal.NewFromInt(500),
			DepositsReceived: decimal.NewFromInt(500),
			PendingPayments:  decimal.Zero,
			PaidEvents:       1,
			EventCount:       1,
		},
		ManualIncome:  decimal.Zero,
		ManualExpense: decimal.NewFromInt(80),
		TotalIncome:   decimal.NewFromInt(500),
		TotalExpense:  decimal.NewFromInt(80),
		Balance:       decimal.NewFromInt(420),
	}

	suite.mockFinanceService.On("Summarize",
		mock.Anything,
		mock.MatchedBy(func(start *time.Time) bool {
			return start != nil && start.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		}),
		mock.MatchedBy(func(end *time.Time) bool {
			// End of range is pushed to the last instant of the day
			return end != nil && end.After(time.Date(2026, 1, 31, 23, 59, 0, 0, time.UTC))
		}),
	).Return(expected, nil).Once()

	w := suite.doRequest("/api/v1/finance/summary?start=2026-01-01&end=2026-01-31")

	suite.Equal(http.StatusOK, w.Code)

	var body domain.FinancialSummary
	err := json.Unmarshal(w.Body.Bytes(), &body)
	suite.NoError(err)
	suite.True(body.Balance.Equal(decimal.NewFromInt(420)))
	suite.Equal(1, body.EventIncome.PaidEvents)

	suite.mockFinanceService.AssertExpectations(suite.T())
}

func (suite *FinanceHandlerTestSuite) TestGetSummary_NoRangeMeansAllTime() {
	suite.mockFinanceService.On("Summarize",
		mock.Anything, (*time.Time)(nil), (*time.Time)(nil),
	).Return(&domain.FinancialSummary{}, nil).Once()

	w := suite.doRequest("/api/v1/finance/summary")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockFinanceService.AssertExpectations(suite.T())
}

func (suite *FinanceHandlerTestSuite) TestGetSummary_InvalidDate() {
	w := suite.doRequest("/api/v1/finance/summary?start=31-01-2026")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockFinanceService.AssertNotCalled(suite.T(), "Summarize")
}

func (suite *FinanceHandlerTestSuite) TestGetSummary_ValidationError() {
	suite.mockFinanceService.On("Summarize",
		mock.Anything, mock.Anything, mock.Anything,
	).Return(nil, apperrors.ErrValidation).Once()

	w := suite.doRequest("/api/v1/finance/summary?start=2026-02-01&end=2026-01-01")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockFinanceService.AssertExpectations(suite.T())
}

func (suite *FinanceHandlerTestSuite) TestGetLedger_PassesFilters() {
	entries := []domain.LedgerEntry{
		{
			Transaction: domain.Transaction{
				TransactionID: 7,
				Type:          domain.Expense,
				Category:      domain.CategoryCleaning,
				Description:   "Limpeza pós-evento",
				Amount:        decimal.NewFromInt(150),
				Date:          time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
				Status:        domain.StatusPending,
			},
			Reference: "Casamento Ana",
			SpaceName: "Salão de Festas",
		},
	}
	summary := domain.LedgerSummary{
		PendingExpense:      decimal.NewFromInt(150),
		ServicePendingTotal: decimal.NewFromInt(150),
	}

	suite.mockFinanceService.On("Ledger",
		mock.Anything,
		mock.MatchedBy(func(f domain.LedgerFilters) bool {
			return f.Type == "expense" && f.Status == "pending" && f.Search == "limpeza"
		}),
	).Return(entries, summary, nil).Once()

	w := suite.doRequest("/api/v1/finance/ledger?type=expense&status=pending&search=limpeza")

	suite.Equal(http.StatusOK, w.Code)

	var body dto.LedgerResponse
	err := json.Unmarshal(w.Body.Bytes(), &body)
	suite.NoError(err)
	suite.Len(body.Entries, 1)
	suite.Equal("Casamento Ana", body.Entries[0].Reference)
	suite.Equal("Salão de Festas", body.Entries[0].SpaceName)
	suite.True(body.Summary.ServicePendingTotal.Equal(decimal.NewFromInt(150)))

	suite.mockFinanceService.AssertExpectations(suite.T())
}

func (suite *FinanceHandlerTestSuite) TestGetForecast_DefaultsToCurrentMonth() {
	suite.mockFinanceService.On("Forecast",
		mock.Anything,
		mock.MatchedBy(func(start time.Time) bool { return start.Day() == 1 }),
		mock.MatchedBy(func(end time.Time) bool { return end.After(time.Now().UTC()) || end.Day() >= 28 }),
	).Return(domain.ForecastSummary{
		TotalForecastIncome:  decimal.NewFromInt(900),
		TotalForecastExpense: decimal.NewFromInt(200),
	}, nil).Once()

	w := suite.doRequest("/api/v1/finance/forecast")

	suite.Equal(http.StatusOK, w.Code)

	var body domain.ForecastSummary
	err := json.Unmarshal(w.Body.Bytes(), &body)
	suite.NoError(err)
	suite.True(body.TotalForecastIncome.Equal(decimal.NewFromInt(900)))

	suite.mockFinanceService.AssertExpectations(suite.T())
}

func (suite *FinanceHandlerTestSuite) TestUnauthenticatedRequestIsRejected() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/finance/summary", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockFinanceService.AssertNotCalled(suite.T(), "Summarize")
}

// --- Run Test Suite ---
func TestFinanceHandler(t *testing.T) {
	suite.Run(t, new(FinanceHandlerTestSuite))
}
