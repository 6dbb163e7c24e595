package document

import (
	"context"

	"market/internal/domain/repository"

	"cloud.google.com/go/firestore"
)

// sequentialTransactionManager runs the callback against the plain repositories. Firestore
// transactions require every read before the first write, which the repository calls do not
// guarantee, so multi-document work here is not atomic: writes made before a failure remain.
type sequentialTransactionManager struct {
	factory *documentRepositoryFactory
}

type documentRepositoryFactory struct {
	client *firestore.Client
}

func (f *documentRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.client)
}

func (f *documentRepositoryFactory) NewOfferRepository() repository.OfferRepository {
	return NewOfferRepository(f.client)
}

func (f *documentRepositoryFactory) NewAuthorizationRepository() repository.AuthorizationRepository {
	return NewAuthorizationRepository(f.client)
}

// NewTransactionManager is the constructor for the document store's TransactionManager.
func NewTransactionManager(client *firestore.Client) repository.TransactionManager {
	return &sequentialTransactionManager{factory: &documentRepositoryFactory{client: client}}
}

// Execute calls fn once and returns its error.
func (tm *sequentialTransactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(tm.factory)
}
