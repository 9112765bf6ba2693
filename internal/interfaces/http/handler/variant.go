package handler

import (
	"context"

	variantapp "github.com/erp/variants/internal/application/variant"
	"github.com/erp/variants/internal/infrastructure/event"
	"github.com/erp/variants/internal/infrastructure/logger"
	"github.com/erp/variants/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VariantPreviewer recomputes variant lists from editor state
type VariantPreviewer interface {
	Preview(ctx context.Context, req variantapp.PreviewRequest) (*variantapp.ProjectionResponse, error)
	Suggestions() *variantapp.SuggestionsResponse
}

// EventLog exposes recently published variant events
type EventLog interface {
	Recent(limit int) []event.JournalEntry
	Len() int
}

// VariantHandler serves the variant preview endpoints
type VariantHandler struct {
	BaseHandler
	previewer VariantPreviewer
	events    EventLog
}

// NewVariantHandler creates a new VariantHandler. events may be nil, in
// which case the event listing is always empty.
func NewVariantHandler(previewer VariantPreviewer, events EventLog) *VariantHandler {
	return &VariantHandler{
		previewer: previewer,
		events:    events,
	}
}

// Preview recomputes the variant list for the posted editor state
func (h *VariantHandler) Preview(c *gin.Context) {
	var req variantapp.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.previewer.Preview(c.Request.Context(), req)
	if err != nil {
		logger.FromGin(c).Info("Variant preview rejected", zap.Error(err))
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Suggestions returns the suggested colors and sizes
func (h *VariantHandler) Suggestions(c *gin.Context) {
	h.Success(c, h.previewer.Suggestions())
}

// RecentEvents lists the most recent variant events, newest first
func (h *VariantHandler) RecentEvents(c *gin.Context) {
	query := dto.DefaultEventsQuery()
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindError(c, err)
		return
	}

	if h.events == nil {
		h.SuccessWithMeta(c, []event.JournalEntry{}, 0, query.Limit)
		return
	}
	h.SuccessWithMeta(c, h.events.Recent(query.Limit), h.events.Len(), query.Limit)
}
