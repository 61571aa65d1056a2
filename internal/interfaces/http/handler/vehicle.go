package handler

import (
	garageapp "github.com/garagehub/backend/internal/application/garage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VehicleHandler handles vehicle management endpoints
type VehicleHandler struct {
	BaseHandler
	vehicleService *garageapp.VehicleService
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicleService *garageapp.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// RegisterRoutes registers vehicle routes
func (h *VehicleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	vehicles := rg.Group("/vehicles")
	{
		vehicles.POST("/garage/:garageId", h.Add)
		vehicles.GET("/garage/:garageId", h.ListByGarage)
		vehicles.GET("/model/:model", h.ListByModel)
		vehicles.GET("/:id", h.GetByID)
		vehicles.PUT("/:id", h.Update)
		vehicles.DELETE("/:id", h.Delete)
	}
}

// Add handles POST /vehicles/garage/:garageId
func (h *VehicleHandler) Add(c *gin.Context) {
	garageID, err := uuid.Parse(c.Param("garageId"))
	if err != nil {
		h.BadRequest(c, "Invalid garage ID format")
		return
	}

	var req garageapp.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.vehicleService.Add(c.Request.Context(), garageID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListByGarage handles GET /vehicles/garage/:garageId
func (h *VehicleHandler) ListByGarage(c *gin.Context) {
	garageID, err := uuid.Parse(c.Param("garageId"))
	if err != nil {
		h.BadRequest(c, "Invalid garage ID format")
		return
	}

	vehicles, err := h.vehicleService.ListByGarage(c.Request.Context(), garageID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, vehicles)
}

// ListByModel handles GET /vehicles/model/:model
func (h *VehicleHandler) ListByModel(c *gin.Context) {
	vehicles, err := h.vehicleService.ListByModel(c.Request.Context(), c.Param("model"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, vehicles)
}

// GetByID handles GET /vehicles/:id
func (h *VehicleHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID format")
		return
	}

	resp, err := h.vehicleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update handles PUT /vehicles/:id
func (h *VehicleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID format")
		return
	}

	var req garageapp.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.vehicleService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles DELETE /vehicles/:id
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID format")
		return
	}

	if err := h.vehicleService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
