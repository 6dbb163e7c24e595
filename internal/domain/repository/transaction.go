package repository

import "context"

// TransactionManager runs use case steps atomically. fn gets repositories bound to the
// transaction; an error from fn rolls everything back. The document store has no cross-collection
// transactions and runs fn against its plain repositories.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out the repositories that take part in transactions.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewOfferRepository() OfferRepository
	NewAuthorizationRepository() AuthorizationRepository
}
