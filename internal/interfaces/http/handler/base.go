package handler

import (
	"errors"
	"net/http"

	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/kenhgt247/me-be-sub001/internal/infrastructure/logger"
	"github.com/kenhgt247/me-be-sub001/internal/interfaces/http/dto"
	"github.com/kenhgt247/me-be-sub001/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	if id := c.GetHeader("X-Request-ID"); id != "" {
		return id
	}
	return ""
}

// getUserID extracts the authenticated user ID from JWT claims
func getUserID(c *gin.Context) (uuid.UUID, error) {
	userIDStr := middleware.GetJWTUserID(c)
	if userIDStr == "" {
		return uuid.Nil, errors.New("user ID not found in context")
	}
	return uuid.Parse(userIDStr)
}

// getOptionalUserID returns the user ID when a valid token was presented,
// nil otherwise. Used by endpoints that adjust visibility per viewer.
func getOptionalUserID(c *gin.Context) *uuid.UUID {
	userIDStr := middleware.GetJWTUserID(c)
	if userIDStr == "" {
		return nil
	}
	id, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil
	}
	return &id
}

// bindPageRequest binds cursor pagination query parameters
func (h *BaseHandler) bindPageRequest(c *gin.Context) (shared.PageRequest, bool) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid pagination parameters")
		return shared.PageRequest{}, false
	}
	return shared.PageRequest{
		After:    shared.Cursor(req.After),
		PageSize: req.PageSize,
		Search:   req.Search,
	}, true
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Page sends a cursor-paged listing response
func Page[T any](h *BaseHandler, c *gin.Context, page shared.Page[T], pageSize int) {
	c.JSON(http.StatusOK, dto.NewPageResponse(page.Items, string(page.NextCursor), page.HasMore, pageSize))
}

// PageOrEmpty sends the page, masking infrastructure failures as an empty
// page so list navigation keeps rendering. Domain errors (malformed cursor,
// bad input) still surface with their mapped status.
func PageOrEmpty[T any](h *BaseHandler, c *gin.Context, page *shared.Page[T], pageSize int, err error) {
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			h.HandleDomainError(c, err)
			return
		}
		logger.GetGinLogger(c).Warn("List query failed, returning empty page", zap.Error(err))
		Page(h, c, shared.Page[T]{Items: []T{}}, pageSize)
		return
	}
	Page(h, c, *page, pageSize)
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	requestID := getRequestID(c)
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, requestID))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeValidation, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// Unauthorized sends a 401 unauthorized response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, message)
}

// Forbidden sends a 403 forbidden response
func (h *BaseHandler) Forbidden(c *gin.Context, message string) {
	h.Error(c, http.StatusForbidden, dto.ErrCodeForbidden, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleDomainError converts domain errors to HTTP responses
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	requestID := getRequestID(c)

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		statusCode := dto.GetHTTPStatus(domainErr.Code)
		c.JSON(statusCode, dto.NewErrorResponseWithRequestID(domainErr.Code, domainErr.Message, requestID))
		return
	}

	h.InternalError(c, "An unexpected error occurred")
}

// HandleError is a generic error handler that handles both domain and standard errors
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	h.HandleDomainError(c, err)
}
