package handler

import (
	"net/http"

	"pricing/internal/delivery/api/response"
	"pricing/internal/domain/entity"
	"pricing/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ProductHandler serves the read-only catalog views
type ProductHandler struct {
	productUC usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(productUC usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{productUC: productUC}
}

// ListProducts handles listing products, optionally filtered by ?category=
func (h *ProductHandler) ListProducts(c echo.Context) error {
	category := entity.Category(c.QueryParam("category"))
	if !category.IsValidFilter() {
		return response.BadRequest(c, "INVALID_QUERY", "category must be one of fresh, frozen, canned, other or all")
	}

	products, err := h.productUC.ListProducts(c.Request().Context(), category)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct handles fetching a single product
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}
