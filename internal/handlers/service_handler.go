package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barberbook/barbershop-api/internal/directory"
	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/httpresp"
	"github.com/barberbook/barbershop-api/internal/models"
)

type ServiceHandler struct {
	db  *gorm.DB
	dir *directory.GormDirectory
	log *zap.Logger
}

func NewServiceHandler(db *gorm.DB, dir *directory.GormDirectory, log *zap.Logger) *ServiceHandler {
	return &ServiceHandler{db: db, dir: dir, log: log}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required,max=50"`
	DurationMin     int     `json:"duration_min" binding:"required,min=1"`
	Price           float64 `json:"price" binding:"required,min=0"`
	Category        string  `json:"category" binding:"max=50"`
	Description     string  `json:"description" binding:"max=255"`
	PopularityScore int     `json:"popularity_score"`
}

type UpdateServiceRequest struct {
	Name            *string  `json:"name"`
	DurationMin     *int     `json:"duration_min"`
	Price           *float64 `json:"price"`
	Category        *string  `json:"category"`
	Description     *string  `json:"description"`
	PopularityScore *int     `json:"popularity_score"`
}

// --------- Handlers ---------

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service payload.")
		return
	}

	service := models.Service{
		Name:            req.Name,
		DurationMin:     req.DurationMin,
		Price:           req.Price,
		Category:        req.Category,
		Description:     req.Description,
		PopularityScore: req.PopularityScore,
	}

	if err := h.db.Create(&service).Error; err != nil {
		h.log.Error("service create failed", zap.Error(err))
		httperr.Internal(c, "failed_to_create_service", "Failed to create service.")
		return
	}

	httpresp.Created(c, service)
}

func (h *ServiceHandler) List(c *gin.Context) {
	page, limit := pagination(c)

	var services []models.Service
	if err := h.db.
		Order("popularity_score DESC, service_id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&services).Error; err != nil {
		h.log.Error("service list failed", zap.Error(err))
		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	httpresp.List(c, page, limit, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		h.log.Error("service get failed", zap.Uint("service_id", id), zap.Error(err))
		httperr.Internal(c, "failed_to_get_service", "Failed to fetch service.")
		return
	}

	httpresp.OK(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service payload.")
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		h.log.Error("service get failed", zap.Uint("service_id", id), zap.Error(err))
		httperr.Internal(c, "failed_to_get_service", "Failed to fetch service.")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.DurationMin != nil {
		service.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Category != nil {
		service.Category = *req.Category
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.PopularityScore != nil {
		service.PopularityScore = *req.PopularityScore
	}

	if err := h.db.Save(&service).Error; err != nil {
		h.log.Error("service update failed", zap.Uint("service_id", id), zap.Error(err))
		httperr.Internal(c, "failed_to_update_service", "Failed to update service.")
		return
	}

	httpresp.OK(c, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		h.log.Error("service get failed", zap.Uint("service_id", id), zap.Error(err))
		httperr.Internal(c, "failed_to_get_service", "Failed to fetch service.")
		return
	}

	if err := h.db.Delete(&service).Error; err != nil {
		h.log.Error("service delete failed", zap.Uint("service_id", id), zap.Error(err))
		httperr.Internal(c, "failed_to_delete_service", "Failed to delete service.")
		return
	}

	h.dir.Invalidate(c.Request.Context(), "service", id)

	httpresp.OK(c, gin.H{"deleted": true})
}
