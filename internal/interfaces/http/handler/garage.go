package handler

import (
	garageapp "github.com/garagehub/backend/internal/application/garage"
	"github.com/garagehub/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GarageHandler handles garage management endpoints
type GarageHandler struct {
	BaseHandler
	garageService *garageapp.GarageService
}

// NewGarageHandler creates a new garage handler
func NewGarageHandler(garageService *garageapp.GarageService) *GarageHandler {
	return &GarageHandler{garageService: garageService}
}

// RegisterRoutes registers garage routes
func (h *GarageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	garages := rg.Group("/garages")
	{
		garages.POST("", h.Create)
		garages.GET("", h.List)
		garages.GET("/search", h.Search)
		garages.GET("/:id", h.GetByID)
		garages.PUT("/:id", h.Update)
		garages.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /garages
func (h *GarageHandler) Create(c *gin.Context) {
	var req garageapp.CreateGarageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.garageService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// List handles GET /garages
func (h *GarageHandler) List(c *gin.Context) {
	var filter garageapp.GarageListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	result, err := h.garageService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, dto.Meta{
		Page:       result.Page,
		PageSize:   result.PageSize,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

// Search handles GET /garages/search
func (h *GarageHandler) Search(c *gin.Context) {
	var criteria garageapp.SearchCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	garages, err := h.garageService.Search(c.Request.Context(), criteria)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, garages)
}

// GetByID handles GET /garages/:id
func (h *GarageHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid garage ID format")
		return
	}

	resp, err := h.garageService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update handles PUT /garages/:id
func (h *GarageHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid garage ID format")
		return
	}

	var req garageapp.UpdateGarageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.garageService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles DELETE /garages/:id
func (h *GarageHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid garage ID format")
		return
	}

	if err := h.garageService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
