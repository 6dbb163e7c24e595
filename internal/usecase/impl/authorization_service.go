package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/constants"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/errors"
	"market/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// AuthorizationServiceParams holds dependencies for the authorization service, injected by Fx
type AuthorizationServiceParams struct {
	fx.In

	Authorizations repository.AuthorizationRepository
	Products       repository.ProductRepository
	Notifier       service.Notifier
	Tracker        service.ActivityTracker
	Logger         *slog.Logger
}

// authorizationService implements the AuthorizationUsecase interface.
type authorizationService struct {
	authorizations repository.AuthorizationRepository
	products       repository.ProductRepository
	notifier       service.Notifier
	tracker        service.ActivityTracker
	logger         *slog.Logger
	now            func() time.Time
}

// NewAuthorizationService is the constructor for authorizationService.
func NewAuthorizationService(params AuthorizationServiceParams) usecase.AuthorizationUsecase {
	return &authorizationService{
		authorizations: params.Authorizations,
		products:       params.Products,
		notifier:       params.Notifier,
		tracker:        params.Tracker,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *authorizationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// AddAuthorization grants a product to a producer unless the grant already exists.
func (srv *authorizationService) AddAuthorization(ctx context.Context, userID, productID string) (err error) {
	defer trackCall(srv.tracker, constants.StoreAuthorizations, "add")(&err)
	defer func() {
		notifyOutcome(ctx, srv.notifier, err, "Product authorized successfully", "Failed to authorize product")
	}()

	if err := validateGrant(userID, productID); err != nil {
		return err
	}

	existing, err := srv.authorizations.Find(ctx, userID, productID)
	if err != nil {
		return errors.Wrap(err, "failed to check existing authorization")
	}

	if len(existing) > 0 {
		srv.log(ctx).Debug("Authorization already exists",
			slog.String("user_id", userID),
			slog.String("product_id", productID),
		)

		return nil
	}

	grant := &entity.Authorization{
		UserID:       userID,
		ProductID:    productID,
		AuthorizedAt: srv.now().UTC(),
	}
	if err := srv.authorizations.Create(ctx, grant); err != nil {
		// A concurrent grant for the same pair is still a success.
		if errors.Is(err, domainerrors.ErrConflict) {
			return nil
		}

		return errors.Wrap(err, "failed to create authorization")
	}

	srv.log(ctx).Info("Product authorized",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
	)

	return nil
}

// RemoveAuthorization deletes every grant for the pair. The deletes run concurrently and are
// not rolled back if one of them fails.
func (srv *authorizationService) RemoveAuthorization(ctx context.Context, userID, productID string) (err error) {
	defer trackCall(srv.tracker, constants.StoreAuthorizations, "remove")(&err)
	defer func() {
		notifyOutcome(ctx, srv.notifier, err, "Authorization removed successfully", "Failed to remove authorization")
	}()

	if err := validateGrant(userID, productID); err != nil {
		return err
	}

	grants, err := srv.authorizations.Find(ctx, userID, productID)
	if err != nil {
		return errors.Wrap(err, "failed to find authorizations")
	}

	var group errgroup.Group
	for _, grant := range grants {
		group.Go(func() error {
			return srv.authorizations.Delete(ctx, grant)
		})
	}

	if err := group.Wait(); err != nil {
		return errors.Wrap(err, "failed to delete authorization")
	}

	srv.log(ctx).Info("Authorization removed",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
		slog.Int("grants", len(grants)),
	)

	return nil
}

// ListAuthorizations lists the grants of userID, or every grant when userID is empty.
func (srv *authorizationService) ListAuthorizations(ctx context.Context, userID string) (_ []*entity.Authorization, err error) {
	defer trackCall(srv.tracker, constants.StoreAuthorizations, "list")(&err)

	var grants []*entity.Authorization
	if userID == "" {
		grants, err = srv.authorizations.FindAll(ctx)
	} else {
		grants, err = srv.authorizations.FindByUser(ctx, userID)
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed to load authorizations")
	}

	return grants, nil
}

// AuthorizedProducts resolves the products granted to userID. Grants for products that no
// longer exist are skipped.
func (srv *authorizationService) AuthorizedProducts(ctx context.Context, userID string) (_ []*entity.Product, err error) {
	defer trackCall(srv.tracker, constants.StoreAuthorizations, "authorized_products")(&err)

	if userID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("Invalid user ID")
	}

	grants, err := srv.authorizations.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load authorizations")
	}

	products := make([]*entity.Product, 0, len(grants))
	seen := make(map[string]struct{}, len(grants))
	for _, grant := range grants {
		if _, ok := seen[grant.ProductID]; ok {
			continue
		}
		seen[grant.ProductID] = struct{}{}

		product, err := srv.products.FindByID(ctx, grant.ProductID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrProductNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to load product")
		}

		products = append(products, product)
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})

	return products, nil
}

func validateGrant(userID, productID string) error {
	if userID == "" || productID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("Invalid user or product ID")
	}

	return nil
}
