package services_test

import (
	"context"
	"time"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiresAt *time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

// --- Mock PreferenceRepository ---

type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) FindPreference(ctx context.Context, userID string) (*domain.CurrencyPreference, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyPreference), args.Error(1)
}

func (m *MockPreferenceRepository) SavePreference(ctx context.Context, pref domain.CurrencyPreference) error {
	args := m.Called(ctx, pref)
	return args.Error(0)
}

// --- Mock OfferingRepository ---

type MockOfferingRepository struct {
	mock.Mock
}

func (m *MockOfferingRepository) SaveOffering(ctx context.Context, offering domain.ServiceOffering) error {
	args := m.Called(ctx, offering)
	return args.Error(0)
}

func (m *MockOfferingRepository) FindOfferingBySlug(ctx context.Context, slug string) (*domain.ServiceOffering, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceOffering), args.Error(1)
}

func (m *MockOfferingRepository) FindOfferingByID(ctx context.Context, offeringID string) (*domain.ServiceOffering, error) {
	args := m.Called(ctx, offeringID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceOffering), args.Error(1)
}

func (m *MockOfferingRepository) ListOfferings(ctx context.Context, activeOnly bool) ([]domain.ServiceOffering, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceOffering), args.Error(1)
}

// --- Mock OrderRepository ---

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListOrdersByUser(ctx context.Context, userID string, limit int, nextToken string) ([]domain.Order, string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Order), args.String(1), args.Error(2)
}

func (m *MockOrderRepository) MarkInvoiced(ctx context.Context, orderID, invoiceID, updaterUserID string) error {
	args := m.Called(ctx, orderID, invoiceID, updaterUserID)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus, updaterUserID string) error {
	args := m.Called(ctx, orderID, status, updaterUserID)
	return args.Error(0)
}

// --- Mock QuoteRepository ---

type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) SaveQuoteRequest(ctx context.Context, quote domain.QuoteRequest) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuoteRepository) ListQuotesByUser(ctx context.Context, userID string) ([]domain.QuoteRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuoteRequest), args.Error(1)
}

func (m *MockQuoteRepository) SaveContactMessage(ctx context.Context, msg domain.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// --- Mock GeoLocator ---

type MockGeoLocator struct {
	mock.Mock
}

func (m *MockGeoLocator) Locate(ctx context.Context, ip string) (domain.Location, error) {
	args := m.Called(ctx, ip)
	return args.Get(0).(domain.Location), args.Error(1)
}

// --- Mock RateSource ---

type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) FetchRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

// --- Mock InvoicingProvider ---

type MockInvoicingProvider struct {
	mock.Mock
}

func (m *MockInvoicingProvider) EnsureContact(ctx context.Context, name, email, company string) (string, error) {
	args := m.Called(ctx, name, email, company)
	return args.String(0), args.Error(1)
}

func (m *MockInvoicingProvider) CreateInvoice(ctx context.Context, contactID, currency string, items []domain.InvoiceLineItem) (*domain.Invoice, error) {
	args := m.Called(ctx, contactID, currency, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoicingProvider) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoicingProvider) ListInvoices(ctx context.Context, contactID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

// --- Mock Mailer ---

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}
