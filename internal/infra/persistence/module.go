// Package persistence selects the repository backend named by store.driver.
package persistence

import (
	"market/internal/domain/constants"
	"market/internal/errors"
	"market/internal/infra/persistence/document"
	"market/internal/infra/persistence/relational"

	"go.uber.org/fx"
)

// Module returns the FX module of the store backend for driver.
func Module(driver string) (fx.Option, error) {
	switch driver {
	case constants.StoreDriverFirestore:
		return document.Module, nil
	case constants.StoreDriverPostgres, constants.StoreDriverSQLite:
		return relational.Module, nil
	default:
		return nil, errors.Errorf("unknown store driver %q", driver)
	}
}
