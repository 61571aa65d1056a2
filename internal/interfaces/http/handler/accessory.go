package handler

import (
	garageapp "github.com/garagehub/backend/internal/application/garage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AccessoryHandler handles accessory management endpoints
type AccessoryHandler struct {
	BaseHandler
	accessoryService *garageapp.AccessoryService
}

// NewAccessoryHandler creates a new accessory handler
func NewAccessoryHandler(accessoryService *garageapp.AccessoryService) *AccessoryHandler {
	return &AccessoryHandler{accessoryService: accessoryService}
}

// RegisterRoutes registers accessory routes
func (h *AccessoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	accessories := rg.Group("/accessories")
	{
		accessories.POST("/vehicle/:vehicleId", h.Add)
		accessories.GET("/vehicle/:vehicleId", h.ListByVehicle)
		accessories.GET("/:id", h.GetByID)
		accessories.PUT("/:id", h.Update)
		accessories.DELETE("/:id", h.Delete)
	}
}

// Add handles POST /accessories/vehicle/:vehicleId
func (h *AccessoryHandler) Add(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("vehicleId"))
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID format")
		return
	}

	var req garageapp.CreateAccessoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.accessoryService.Add(c.Request.Context(), vehicleID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListByVehicle handles GET /accessories/vehicle/:vehicleId
func (h *AccessoryHandler) ListByVehicle(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("vehicleId"))
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID format")
		return
	}

	accessories, err := h.accessoryService.ListByVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, accessories)
}

// GetByID handles GET /accessories/:id
func (h *AccessoryHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid accessory ID format")
		return
	}

	resp, err := h.accessoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update handles PUT /accessories/:id
func (h *AccessoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid accessory ID format")
		return
	}

	var req garageapp.UpdateAccessoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.accessoryService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles DELETE /accessories/:id
// Deleting a missing accessory succeeds with no effect
func (h *AccessoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid accessory ID format")
		return
	}

	if err := h.accessoryService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
