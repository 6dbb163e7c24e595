package document

import "go.uber.org/fx"

// Module provides the Firestore store: the client, every repository, the transaction manager
// and the snapshot feeds.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewClient,
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
