package relational

import "go.uber.org/fx"

// Module provides the relational store: the database handle, every repository, the transaction
// manager and the polling feeds.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		NewTransactionManager,
		NewUserRepository,
		NewOfferRepository,
		NewProductRepository,
		NewAuthorizationRepository,
		NewAlertRepository,
		NewNewsRepository,
		NewFeeds,
	),
)
