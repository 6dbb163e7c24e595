package handler

import (
	"log/slog"

	"market/internal/delivery/api/middleware"
	"market/internal/delivery/api/response"
	"market/internal/domain/entity"
	"market/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	NewsUC    usecase.NewsUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the product catalog and news endpoints.
type CatalogHandler struct {
	productUC usecase.ProductUsecase
	newsUC    usecase.NewsUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		productUC: params.ProductUC,
		newsUC:    params.NewsUC,
		logger:    params.Logger,
	}
}

// ProductRequest represents the request body for creating or replacing a product
type ProductRequest struct {
	Name      string   `json:"name" validate:"required,max=100"`
	Category  string   `json:"category" validate:"required,max=50"`
	Unit      string   `json:"unit" validate:"required,max=20"`
	BoxSize   string   `json:"boxSize,omitempty" validate:"max=50"`
	Varieties []string `json:"varieties,omitempty" validate:"omitempty,dive,required,max=100"`
}

// CreateNewsRequest represents the request body for publishing news
type CreateNewsRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
	Active  *bool  `json:"active,omitempty"`
}

// UpdateNewsRequest represents a partial news change
type UpdateNewsRequest struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Content *string `json:"content,omitempty"`
	Active  *bool   `json:"active,omitempty"`
}

func (req *ProductRequest) input() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:      req.Name,
		Category:  req.Category,
		Unit:      req.Unit,
		BoxSize:   req.BoxSize,
		Varieties: req.Varieties,
	}
}

// ListProducts lists the catalog by name
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.productUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, products)
}

// GetProduct returns one catalog entry
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.productUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

// CreateProduct adds a catalog entry
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.AddProduct(c.Request().Context(), req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, product)
}

// UpdateProduct replaces the editable fields of a catalog entry
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

// DeleteProduct removes a catalog entry
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	if err := h.productUC.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Product deleted successfully")
}

// ListNews lists announcements, newest first. Non-admins only see active ones.
func (h *CatalogHandler) ListNews(c echo.Context) error {
	news, err := h.newsUC.ListNews(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !middleware.HasRole(c, entity.RoleAdmin) {
		active := make([]*entity.News, 0, len(news))
		for _, item := range news {
			if item.Active {
				active = append(active, item)
			}
		}
		news = active
	}

	return response.OK(c, news)
}

// CreateNews publishes an announcement authored by the caller
func (h *CatalogHandler) CreateNews(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateNewsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid news input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	news, err := h.newsUC.AddNews(c.Request().Context(), &usecase.NewsInput{
		Title:     req.Title,
		Content:   req.Content,
		Active:    req.Active,
		CreatedBy: userID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, news)
}

// UpdateNews applies a partial change to an announcement
func (h *CatalogHandler) UpdateNews(c echo.Context) error {
	var req UpdateNewsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid news input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	update := &entity.NewsUpdate{
		Title:   req.Title,
		Content: req.Content,
		Active:  req.Active,
	}
	if err := h.newsUC.UpdateNews(c.Request().Context(), c.Param("id"), update); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "News updated successfully")
}

// DeleteNews removes an announcement
func (h *CatalogHandler) DeleteNews(c echo.Context) error {
	if err := h.newsUC.DeleteNews(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "News deleted successfully")
}
