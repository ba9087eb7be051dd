package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/apperrors"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
	portssvc "github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports/services"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/services"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/dto"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockPricingReader implements portssvc.PricingReaderSvc for order tests.
type MockPricingReader struct {
	mock.Mock
}

func (m *MockPricingReader) DetectLocation(ctx context.Context, ip string) domain.Location {
	args := m.Called(ctx, ip)
	return args.Get(0).(domain.Location)
}

func (m *MockPricingReader) FetchAllRates(ctx context.Context) (map[string]decimal.Decimal, bool) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]decimal.Decimal), args.Bool(1)
}

func (m *MockPricingReader) GetRate(ctx context.Context, currency string) decimal.Decimal {
	args := m.Called(ctx, currency)
	return args.Get(0).(decimal.Decimal)
}

func (m *MockPricingReader) Convert(ctx context.Context, amount decimal.Decimal, from, to string) decimal.Decimal {
	args := m.Called(ctx, amount, from, to)
	return args.Get(0).(decimal.Decimal)
}

func (m *MockPricingReader) FormatAmount(amount decimal.Decimal, currency string) string {
	return utils.FormatCurrency(amount, currency)
}

func (m *MockPricingReader) PreferredCurrency(ctx context.Context, userID, ip string) portssvc.ResolvedCurrency {
	args := m.Called(ctx, userID, ip)
	return args.Get(0).(portssvc.ResolvedCurrency)
}

func (m *MockPricingReader) SupportedCurrencies() []string {
	return []string{"USD", "EUR", "INR"}
}

type OrderServiceTestSuite struct {
	suite.Suite
	orderRepo    *MockOrderRepository
	offeringRepo *MockOfferingRepository
	userRepo     *MockUserRepository
	invoicing    *MockInvoicingProvider
	pricing      *MockPricingReader
	service      portssvc.OrderSvcFacade

	userID     string
	offeringID string
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.orderRepo = new(MockOrderRepository)
	suite.offeringRepo = new(MockOfferingRepository)
	suite.userRepo = new(MockUserRepository)
	suite.invoicing = new(MockInvoicingProvider)
	suite.pricing = new(MockPricingReader)
	suite.service = services.NewOrderService(
		suite.orderRepo,
		suite.offeringRepo,
		suite.userRepo,
		suite.invoicing,
		suite.pricing,
	)
	suite.userID = uuid.NewString()
	suite.offeringID = uuid.NewString()
}

func (suite *OrderServiceTestSuite) pendingOrder() *domain.Order {
	return &domain.Order{
		OrderID:     uuid.NewString(),
		UserID:      suite.userID,
		OfferingID:  suite.offeringID,
		Description: "Managed backup rollout",
		AmountUSD:   decimal.RequireFromString("1500.00"),
		Status:      domain.OrderPending,
	}
}

func (suite *OrderServiceTestSuite) TestCreateOrder_Success() {
	req := dto.CreateOrderRequest{
		UserID:      suite.userID,
		OfferingID:  suite.offeringID,
		Description: "Managed backup rollout",
		AmountUSD:   decimal.RequireFromString("1500.00"),
	}
	suite.offeringRepo.On("FindOfferingByID", mock.Anything, suite.offeringID).
		Return(&domain.ServiceOffering{OfferingID: suite.offeringID, Active: true}, nil).Once()
	suite.orderRepo.On("SaveOrder", mock.Anything, mock.MatchedBy(func(o domain.Order) bool {
		return o.UserID == suite.userID && o.Status == domain.OrderPending
	})).Return(nil).Once()

	order, err := suite.service.CreateOrder(context.Background(), req, suite.userID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.OrderPending, order.Status)
	suite.orderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_RejectsNonPositiveAmount() {
	req := dto.CreateOrderRequest{
		UserID:      suite.userID,
		OfferingID:  suite.offeringID,
		Description: "x",
		AmountUSD:   decimal.Zero,
	}
	_, err := suite.service.CreateOrder(context.Background(), req, suite.userID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_UnknownOffering() {
	req := dto.CreateOrderRequest{
		UserID:      suite.userID,
		OfferingID:  suite.offeringID,
		Description: "x",
		AmountUSD:   decimal.NewFromInt(100),
	}
	suite.offeringRepo.On("FindOfferingByID", mock.Anything, suite.offeringID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateOrder(context.Background(), req, suite.userID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func (suite *OrderServiceTestSuite) TestGetOrder_EnforcesOwnership() {
	order := suite.pendingOrder()
	suite.orderRepo.On("FindOrderByID", mock.Anything, order.OrderID).Return(order, nil).Once()

	_, err := suite.service.GetOrder(context.Background(), order.OrderID, "someone-else")
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *OrderServiceTestSuite) TestInvoiceOrder_Success() {
	order := suite.pendingOrder()
	user := &domain.User{UserID: suite.userID, Name: "Priya", Email: "priya@example.com"}
	converted := decimal.RequireFromString("124875.00")

	suite.orderRepo.On("FindOrderByID", mock.Anything, order.OrderID).Return(order, nil).Once()
	suite.userRepo.On("FindUserByID", mock.Anything, suite.userID).Return(user, nil).Once()
	suite.invoicing.On("EnsureContact", mock.Anything, "Priya", "priya@example.com", "").
		Return("contact-42", nil).Once()
	suite.pricing.On("PreferredCurrency", mock.Anything, suite.userID, "").
		Return(portssvc.ResolvedCurrency{Currency: "INR", Source: portssvc.CurrencySourcePreference}).Once()
	suite.pricing.On("Convert", mock.Anything, order.AmountUSD, "USD", "INR").
		Return(converted).Once()
	suite.invoicing.On("CreateInvoice", mock.Anything, "contact-42", "INR", mock.MatchedBy(func(items []domain.InvoiceLineItem) bool {
		return len(items) == 1 && items[0].UnitPrice.Equal(converted)
	})).Return(&domain.Invoice{InvoiceID: "inv-7", CurrencyCode: "INR"}, nil).Once()
	suite.orderRepo.On("MarkInvoiced", mock.Anything, order.OrderID, "inv-7", suite.userID).
		Return(nil).Once()

	invoice, err := suite.service.InvoiceOrder(context.Background(), order.OrderID, suite.userID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "inv-7", invoice.InvoiceID)
	suite.invoicing.AssertExpectations(suite.T())
	suite.orderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestInvoiceOrder_RejectsNonPendingOrder() {
	order := suite.pendingOrder()
	order.Status = domain.OrderInvoiced
	suite.orderRepo.On("FindOrderByID", mock.Anything, order.OrderID).Return(order, nil).Once()

	_, err := suite.service.InvoiceOrder(context.Background(), order.OrderID, suite.userID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.invoicing.AssertNotCalled(suite.T(), "CreateInvoice", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestInvoiceOrder_ProviderFailureLeavesOrderPending() {
	order := suite.pendingOrder()
	user := &domain.User{UserID: suite.userID, Name: "Priya", Email: "priya@example.com"}

	suite.orderRepo.On("FindOrderByID", mock.Anything, order.OrderID).Return(order, nil).Once()
	suite.userRepo.On("FindUserByID", mock.Anything, suite.userID).Return(user, nil).Once()
	suite.invoicing.On("EnsureContact", mock.Anything, "Priya", "priya@example.com", "").
		Return("contact-42", nil).Once()
	suite.pricing.On("PreferredCurrency", mock.Anything, suite.userID, "").
		Return(portssvc.ResolvedCurrency{Currency: "USD", Source: portssvc.CurrencySourceDefault}).Once()
	suite.pricing.On("Convert", mock.Anything, order.AmountUSD, "USD", "USD").
		Return(order.AmountUSD).Once()
	suite.invoicing.On("CreateInvoice", mock.Anything, "contact-42", "USD", mock.Anything).
		Return(nil, fmt.Errorf("provider 500: %w", apperrors.ErrUpstream)).Once()

	_, err := suite.service.InvoiceOrder(context.Background(), order.OrderID, suite.userID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUpstream)
	suite.orderRepo.AssertNotCalled(suite.T(), "MarkInvoiced", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestListOrders_ClampsLimit() {
	suite.orderRepo.On("ListOrdersByUser", mock.Anything, suite.userID, 20, "").
		Return([]domain.Order{}, "", nil).Once()

	_, _, err := suite.service.ListOrders(context.Background(), suite.userID, -5, "")
	assert.NoError(suite.T(), err)
	suite.orderRepo.AssertExpectations(suite.T())
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
