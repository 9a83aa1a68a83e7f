package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ferreo/internal/core/apperror"
	"ferreo/internal/core/id"
	"ferreo/internal/domain"
	"ferreo/internal/domain/stock"
	"ferreo/internal/infrastructure/http/v1/dto"
)

// StockHandler serves the stock movement journal.
type StockHandler struct {
	*BaseHandler
	repo stock.Repository
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(base *BaseHandler, repo stock.Repository) *StockHandler {
	return &StockHandler{BaseHandler: base, repo: repo}
}

// Movements handles GET /stock/movements/:productId. Newest first.
func (h *StockHandler) Movements(c *gin.Context) {
	ctx := c.Request.Context()

	productID, err := id.Parse(c.Param("productId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid productId format"))
		return
	}

	filter := domain.ListFilter{
		Limit:  h.ParseIntQuery(c, "limit", 50),
		Offset: h.ParseIntQuery(c, "offset", 0),
	}

	result, err := h.repo.ListByProduct(ctx, productID, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i := range result.Items {
		items[i] = result.Items[i]
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}
