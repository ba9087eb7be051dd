package repositories

// RepositoryProvider bundles all repositories for dependency injection into
// the service container.
type RepositoryProvider struct {
	UserRepo       UserRepository
	PreferenceRepo PreferenceRepository
	OfferingRepo   OfferingRepository
	OrderRepo      OrderRepository
	QuoteRepo      QuoteRepository
}
