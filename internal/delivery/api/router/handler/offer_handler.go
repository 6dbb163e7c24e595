package handler

import (
	"log/slog"
	"net/http"

	"market/internal/delivery/api/middleware"
	"market/internal/delivery/api/response"
	"market/internal/domain/entity"
	"market/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	OfferUC usecase.OfferUsecase
	Logger  *slog.Logger
}

// OfferHandler serves the offer lifecycle endpoints.
type OfferHandler struct {
	offerUC usecase.OfferUsecase
	logger  *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{
		offerUC: params.OfferUC,
		logger:  params.Logger,
	}
}

// OfferProductRequest is one line item of an offer request
type OfferProductRequest struct {
	ProductID       string                     `json:"productId" validate:"required"`
	Variety         string                     `json:"variety,omitempty" validate:"max=100"`
	Price           decimal.Decimal            `json:"price"`
	TotalQuantity   decimal.Decimal            `json:"totalQuantity"`
	DailyQuantities map[string]decimal.Decimal `json:"dailyQuantities"`
}

// SubmitOfferRequest represents the request body for submitting an offer.
// ProducerID is honored for admins only; producers always submit for themselves.
type SubmitOfferRequest struct {
	ProducerID  string                `json:"producerId,omitempty"`
	WeekNumber  int                   `json:"weekNumber" validate:"required,min=1,max=55"`
	Description string                `json:"description,omitempty" validate:"max=1000"`
	Products    []OfferProductRequest `json:"products" validate:"required,min=1,dive"`
}

// UpdateOfferRequest represents a partial offer change
type UpdateOfferRequest struct {
	WeekNumber  *int                  `json:"weekNumber,omitempty" validate:"omitempty,min=1,max=55"`
	Description *string               `json:"description,omitempty" validate:"omitempty,max=1000"`
	Products    []OfferProductRequest `json:"products,omitempty" validate:"omitempty,min=1,dive"`
}

// UpdateOfferStatusRequest represents a review decision
type UpdateOfferStatusRequest struct {
	Status              string                     `json:"status" validate:"required,oneof=submitted approved rejected needs_revision"`
	Feedback            *string                    `json:"feedback,omitempty" validate:"omitempty,max=1000"`
	DeliveryAllocations entity.DeliveryAllocations `json:"deliveryAllocations,omitempty"`
}

// UpdateAllocationsRequest replaces an offer's delivery allocations
type UpdateAllocationsRequest struct {
	DeliveryAllocations entity.DeliveryAllocations `json:"deliveryAllocations"`
}

// ScanOfferRequest carries the text decoded from an offer label
type ScanOfferRequest struct {
	Data string `json:"data" validate:"required"`
}

// ListOffersQuery filters the offer listing
type ListOffersQuery struct {
	ProducerID string `query:"producerId"`
	Status     string `query:"status" validate:"omitempty,oneof=submitted approved rejected needs_revision"`
}

func toOfferProducts(lines []OfferProductRequest) []entity.OfferProduct {
	if lines == nil {
		return nil
	}

	products := make([]entity.OfferProduct, 0, len(lines))
	for _, line := range lines {
		products = append(products, entity.OfferProduct{
			ProductID:       line.ProductID,
			Variety:         line.Variety,
			Price:           line.Price,
			TotalQuantity:   line.TotalQuantity,
			DailyQuantities: entity.DailyQuantities(line.DailyQuantities),
		})
	}

	return products
}

// SubmitOffer handles offer submission
func (h *OfferHandler) SubmitOffer(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SubmitOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	producerID := userID
	if req.ProducerID != "" && middleware.HasRole(c, entity.RoleAdmin) {
		producerID = req.ProducerID
	}

	offer, err := h.offerUC.SubmitOffer(c.Request().Context(), &usecase.SubmitOfferInput{
		ProducerID:  producerID,
		WeekNumber:  req.WeekNumber,
		Description: req.Description,
		Products:    toOfferProducts(req.Products),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, offer)
}

// ListOffers lists offers. Producers see their own offers, supermarkets see approved ones.
func (h *OfferHandler) ListOffers(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var query ListOffersQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer filter")
	}

	if err := c.Validate(&query); err != nil {
		return response.HandleAppError(c, err)
	}

	filter := entity.OfferFilter{
		ProducerID: query.ProducerID,
		Status:     entity.OfferStatus(query.Status),
	}

	switch {
	case middleware.HasRole(c, entity.RoleAdmin):
	case middleware.HasRole(c, entity.RoleProducer):
		filter.ProducerID = userID
	default:
		filter.Status = entity.OfferStatusApproved
	}

	offers, err := h.offerUC.GetOffers(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, offers)
}

// GetOffer returns one offer the caller may see
func (h *OfferHandler) GetOffer(c echo.Context) error {
	offer, err := h.visibleOffer(c)
	if err != nil || offer == nil {
		return err
	}

	return response.OK(c, offer)
}

// UpdateOffer applies a producer's partial change to an offer
func (h *OfferHandler) UpdateOffer(c echo.Context) error {
	offer, err := h.ownedOffer(c)
	if err != nil || offer == nil {
		return err
	}

	var req UpdateOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	update := &entity.OfferUpdate{
		WeekNumber:  req.WeekNumber,
		Description: req.Description,
		Products:    toOfferProducts(req.Products),
	}
	if err := h.offerUC.UpdateOffer(c.Request().Context(), offer.ID, update); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Offer updated successfully")
}

// UpdateOfferStatus records an admin review decision
func (h *OfferHandler) UpdateOfferStatus(c echo.Context) error {
	var req UpdateOfferStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.UpdateOfferStatusInput{
		Status:              entity.OfferStatus(req.Status),
		Feedback:            req.Feedback,
		DeliveryAllocations: req.DeliveryAllocations,
	}
	if err := h.offerUC.UpdateOfferStatus(c.Request().Context(), c.Param("id"), input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Offer status updated successfully")
}

// UpdateDeliveryAllocations replaces the delivery allocations of an offer
func (h *OfferHandler) UpdateDeliveryAllocations(c echo.Context) error {
	var req UpdateAllocationsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid allocation input")
	}

	if err := h.offerUC.UpdateDeliveryAllocations(c.Request().Context(), c.Param("id"), req.DeliveryAllocations); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Delivery allocations updated successfully")
}

// DeleteOffer deletes an offer owned by the caller, or any offer for admins
func (h *OfferHandler) DeleteOffer(c echo.Context) error {
	offer, err := h.ownedOffer(c)
	if err != nil || offer == nil {
		return err
	}

	if err := h.offerUC.DeleteOffer(c.Request().Context(), offer.ID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Offer deleted successfully")
}

// OfferQRCode renders the offer's QR label as PNG
func (h *OfferHandler) OfferQRCode(c echo.Context) error {
	offer, err := h.visibleOffer(c)
	if err != nil || offer == nil {
		return err
	}

	png, err := h.offerUC.OfferQRCode(c.Request().Context(), offer.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ScanOffer resolves a scanned offer label to the offer it points at
func (h *OfferHandler) ScanOffer(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ScanOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid label input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	offer, err := h.offerUC.ResolveQRCode(c.Request().Context(), req.Data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !canSee(c, userID, offer) {
		return response.NotFound(c, "OFFER_NOT_FOUND", "Offer not found")
	}

	return response.OK(c, offer)
}

// canSee reports whether the caller may read offer: admins, its producer, and supermarkets once
// it is approved.
func canSee(c echo.Context, userID string, offer *entity.Offer) bool {
	switch {
	case middleware.HasRole(c, entity.RoleAdmin):
		return true
	case offer.ProducerID == userID:
		return true
	default:
		return middleware.HasRole(c, entity.RoleSupermarket) && offer.Status == entity.OfferStatusApproved
	}
}

// visibleOffer loads the offer named by the path and checks that the caller may read it.
// A nil offer means a response was already written.
func (h *OfferHandler) visibleOffer(c echo.Context) (*entity.Offer, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	offer, err := h.offerUC.GetOffer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return nil, response.HandleAppError(c, err)
	}

	if !canSee(c, userID, offer) {
		return nil, response.NotFound(c, "OFFER_NOT_FOUND", "Offer not found")
	}

	return offer, nil
}

// ownedOffer loads the offer named by the path and checks that the caller may change it.
func (h *OfferHandler) ownedOffer(c echo.Context) (*entity.Offer, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	offer, err := h.offerUC.GetOffer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return nil, response.HandleAppError(c, err)
	}

	if offer.ProducerID != userID && !middleware.HasRole(c, entity.RoleAdmin) {
		return nil, response.Forbidden(c, "FORBIDDEN", "Only the producer of an offer may change it")
	}

	return offer, nil
}
