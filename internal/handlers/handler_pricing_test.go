package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
	portssvc "github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports/services"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/dto"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPricingService implements portssvc.PricingSvcFacade.
type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) DetectLocation(ctx context.Context, ip string) domain.Location {
	args := m.Called(ctx, ip)
	return args.Get(0).(domain.Location)
}

func (m *MockPricingService) FetchAllRates(ctx context.Context) (map[string]decimal.Decimal, bool) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]decimal.Decimal), args.Bool(1)
}

func (m *MockPricingService) GetRate(ctx context.Context, currency string) decimal.Decimal {
	args := m.Called(ctx, currency)
	return args.Get(0).(decimal.Decimal)
}

func (m *MockPricingService) Convert(ctx context.Context, amount decimal.Decimal, from, to string) decimal.Decimal {
	args := m.Called(ctx, amount, from, to)
	return args.Get(0).(decimal.Decimal)
}

func (m *MockPricingService) FormatAmount(amount decimal.Decimal, currency string) string {
	return utils.FormatCurrency(amount, currency)
}

func (m *MockPricingService) PreferredCurrency(ctx context.Context, userID, ip string) portssvc.ResolvedCurrency {
	args := m.Called(ctx, userID, ip)
	return args.Get(0).(portssvc.ResolvedCurrency)
}

func (m *MockPricingService) SupportedCurrencies() []string {
	return []string{"USD", "EUR", "INR"}
}

func (m *MockPricingService) SetPreferredCurrency(ctx context.Context, userID, currency string) error {
	args := m.Called(ctx, userID, currency)
	return args.Error(0)
}

func setupPricingRouter(svc portssvc.PricingSvcFacade) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerPricingRoutes(r.Group("/api/v1"), svc)
	return r
}

func TestGetPreferredCurrency_Anonymous(t *testing.T) {
	svc := new(MockPricingService)
	svc.On("PreferredCurrency", mock.Anything, "", mock.Anything).
		Return(portssvc.ResolvedCurrency{Currency: "INR", CountryCode: "IN", Source: portssvc.CurrencySourceGeo}).Once()

	r := setupPricingRouter(svc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/pricing/currency", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.PreferredCurrencyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INR", resp.Currency)
	assert.Equal(t, "geo", resp.Source)
}

func TestConvert_Success(t *testing.T) {
	svc := new(MockPricingService)
	svc.On("Convert", mock.Anything, mock.Anything, "USD", "INR").
		Return(decimal.RequireFromString("8325.00")).Once()
	svc.On("FetchAllRates", mock.Anything).
		Return(map[string]decimal.Decimal{"INR": decimal.RequireFromString("83.25")}, false).Once()

	r := setupPricingRouter(svc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/pricing/convert?amount=100&from=USD&to=INR", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ConvertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, decimal.RequireFromString("8325.00").Equal(resp.Converted))
	assert.False(t, resp.FallbackRates)
	assert.NotEmpty(t, resp.DisplayText)
}

func TestConvert_MissingParams(t *testing.T) {
	svc := new(MockPricingService)
	r := setupPricingRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/pricing/convert?amount=100&from=USD", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConvert_ReportsFallback(t *testing.T) {
	svc := new(MockPricingService)
	svc.On("Convert", mock.Anything, mock.Anything, "USD", "EUR").
		Return(decimal.RequireFromString("92.00")).Once()
	svc.On("FetchAllRates", mock.Anything).
		Return(map[string]decimal.Decimal{"EUR": decimal.RequireFromString("0.92")}, true).Once()

	r := setupPricingRouter(svc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/pricing/convert?amount=100&from=USD&to=EUR", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ConvertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.FallbackRates)
}

func TestListCurrencies(t *testing.T) {
	svc := new(MockPricingService)
	r := setupPricingRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/pricing/currencies", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["currencies"], "USD")
}
