package handler

import (
	"errors"
	"net/http"

	"github.com/erp/variants/internal/domain/shared"
	"github.com/erp/variants/internal/interfaces/http/dto"
	"github.com/erp/variants/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// BaseHandler writes the response envelope for the concrete handlers
type BaseHandler struct{}

func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta answers with a bounded list and its total size
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total, limit int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, limit))
}

// ErrorWithCode answers with code, taking the status from the code table.
// Domain codes are translated to API codes first.
func (h *BaseHandler) ErrorWithCode(c *gin.Context, code, message string) {
	code = dto.NormalizeErrorCode(code)
	c.JSON(dto.GetHTTPStatus(code), dto.NewErrorResponseWithRequestID(code, message, middleware.GetRequestID(c)))
}

// BindError answers a failed ShouldBind call with field-level details
func (h *BaseHandler) BindError(c *gin.Context, err error) {
	middleware.HandleValidationError(c, err)
}

// HandleError answers a service error. Domain errors keep their code and
// message; anything else is recorded on the context and hidden behind a 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	switch {
	case err == nil:
		return
	case errors.As(err, &domainErr):
		h.ErrorWithCode(c, domainErr.Code, domainErr.Message)
	default:
		_ = c.Error(err)
		h.ErrorWithCode(c, dto.ErrCodeInternal, "An unexpected error occurred")
	}
}
