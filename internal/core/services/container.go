package services

import (
	"log/slog"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports"
	portsrepo "github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports/repositories"
	portssvc "github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports/services"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/platform/config"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/platform/currencydata"
)

// ProviderSet bundles the external-service adapters the services depend on.
type ProviderSet struct {
	Geo       ports.GeoLocator
	Rates     ports.RateSource
	Invoicing ports.InvoicingProvider
	Mailer    ports.Mailer
}

// NewContainer wires all services with their dependencies.
func NewContainer(
	cfg *config.Config,
	repos *portsrepo.RepositoryProvider,
	providers ProviderSet,
	tables *currencydata.Tables,
	logger *slog.Logger,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	container.Pricing = NewPricingService(
		providers.Geo,
		providers.Rates,
		repos.PreferenceRepo,
		tables,
		cfg.LocationCacheTTL,
		cfg.RatesCacheTTL,
		nil, // real clock
	)

	container.Offering = NewOfferingService(repos.OfferingRepo)
	container.Order = NewOrderService(
		repos.OrderRepo,
		repos.OfferingRepo,
		repos.UserRepo,
		providers.Invoicing,
		container.Pricing,
	)
	container.Quote = NewQuoteService(repos.QuoteRepo, providers.Mailer, cfg.SalesInbox, logger)
	container.Invoicing = NewInvoicingService(repos.UserRepo, providers.Invoicing)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.UserSvcFacade      = (*userService)(nil)
	_ portssvc.TokenSvcFacade     = (*tokenService)(nil)
	_ portssvc.PricingSvcFacade   = (*pricingService)(nil)
	_ portssvc.OfferingSvcFacade  = (*offeringService)(nil)
	_ portssvc.OrderSvcFacade     = (*orderService)(nil)
	_ portssvc.QuoteSvcFacade     = (*quoteService)(nil)
	_ portssvc.InvoicingSvcFacade = (*invoicingService)(nil)
)
