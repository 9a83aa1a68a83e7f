package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"ferreo/internal/core/apperror"
	"ferreo/internal/core/id"
	"ferreo/internal/domain/reports"
	"ferreo/internal/infrastructure/http/v1/dto"
)

// ReportsHandler serves read-only reporting endpoints.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{BaseHandler: base, service: service}
}

// CustomerStatement handles GET /reports/customer-statement/:customerId.
// The period defaults to the current month when from/to are omitted.
func (h *ReportsHandler) CustomerStatement(c *gin.Context) {
	ctx := c.Request.Context()

	customerID, err := id.Parse(c.Param("customerId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid customerId format"))
		return
	}

	from, ok := h.parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := h.parseDateQuery(c, "to")
	if !ok {
		return
	}

	now := time.Now()
	filter := reports.Filter{
		CustomerID: customerID,
		From:       time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
		To:         now,
	}
	if from != nil {
		filter.From = *from
	}
	if to != nil {
		filter.To = *to
	}

	if filter.To.Before(filter.From) {
		h.Error(c, apperror.NewValidation("the period end precedes its start"))
		return
	}

	statement, err := h.service.CustomerStatement(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromStatement(statement))
}
