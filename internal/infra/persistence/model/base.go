// Package model holds the GORM persistence models of the relational store.
// IDs are generated in Go so the same models work on PostgreSQL and SQLite.
package model

import "github.com/google/uuid"

// ensureID fills an empty string primary key with a new UUID.
func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// All lists every model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&CertificationModel{},
		&ProductModel{},
		&ProductVarietyModel{},
		&AuthorizedProductModel{},
		&OfferModel{},
		&OfferProductModel{},
		&DailyQuantityModel{},
		&AlertModel{},
		&NewsModel{},
	}
}
