// File: internal/property/handler.go
package property

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/AymenS02/united-real-estate/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for listing handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new listing handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger.Named("property.handler")}
}

// CreatePropertyResponse is the body returned by a successful create.
type CreatePropertyResponse struct {
	Message  string   `json:"message"`
	Property *Listing `json:"property"`
}

// UpdatePropertyResponse is the body returned by a successful status update.
type UpdatePropertyResponse struct {
	Message  string   `json:"message"`
	Property *Listing `json:"property"`
}

// RegisterRoutes sets up the routes for listing operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	propertyGroup := router.Group("/properties")
	{
		propertyGroup.GET("", h.listProperties)
		propertyGroup.POST("", h.createProperty)
		propertyGroup.DELETE("", h.deleteProperty)
		propertyGroup.GET("/:id", h.getProperty)
		propertyGroup.PATCH("/:id", h.updateProperty)
	}
}

func (h *Handler) listProperties(c *gin.Context) {
	listings, err := h.service.ListProperties(c.Request.Context())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, listings)
}

func (h *Handler) getProperty(c *gin.Context) {
	listing, err := h.service.GetProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, listing)
}

func (h *Handler) createProperty(c *gin.Context) {
	var req CreatePropertyRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		h.logger.Warn("Create property: unreadable body", zap.Error(err))
		common.RespondWithError(c, common.ErrInternalServer.WithMessage(MsgCreateFailed).WithDetails(err.Error()))
		return
	}

	listing, err := h.service.CreateProperty(c.Request.Context(), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CreatePropertyResponse{Message: MsgCreated, Property: listing})
}

func (h *Handler) deleteProperty(c *gin.Context) {
	var req DeletePropertyRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("Delete property: unreadable body", zap.Error(err))
		common.RespondWithError(c, common.ErrInternalServer.WithMessage(MsgDeleteFailed).WithDetails(err.Error()))
		return
	}

	if err := h.service.DeleteProperty(c.Request.Context(), req.ID); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondMessage(c, http.StatusOK, MsgDeleted)
}

func (h *Handler) updateProperty(c *gin.Context) {
	var req UpdatePropertyRequest
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithMessage(MsgInvalidUpdateInput).WithDetails(err.Error()))
		return
	}

	listing, err := h.service.UpdateProperty(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, UpdatePropertyResponse{Message: MsgUpdated, Property: listing})
}
