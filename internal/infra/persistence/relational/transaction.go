package relational

import (
	"context"

	"market/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type transactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &transactionManager{db: db}
}

// Execute runs fn in one transaction. gorm rolls back when fn returns an error or panics; fn's
// error is returned as is.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	if err != nil && !errors.Is(err, fnErr) {
		return errors.Wrap(err, "transaction")
	}

	return err
}

// txRepositories builds repositories on one transaction. Repositories that issue several
// statements open savepoints inside it.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewUserRepository() repository.UserRepository {
	return NewUserRepository(r.tx)
}

func (r txRepositories) NewOfferRepository() repository.OfferRepository {
	return NewOfferRepository(r.tx)
}

func (r txRepositories) NewAuthorizationRepository() repository.AuthorizationRepository {
	return NewAuthorizationRepository(r.tx)
}
