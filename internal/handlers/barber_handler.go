package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/httpresp"
	"github.com/barberbook/barbershop-api/internal/models"
)

// Barbers are created from existing users and removed through user
// deletion; there is no standalone barber delete.
type BarberHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewBarberHandler(db *gorm.DB, log *zap.Logger) *BarberHandler {
	return &BarberHandler{db: db, log: log}
}

type CreateBarberRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid barber payload.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("user_id = ?", req.UserID).Count(&count)
	if count == 0 {
		httperr.BadRequest(c, httperr.CodeInvalidUser, "User not found with provided ID.")
		return
	}

	h.db.Model(&models.Barber{}).Where("user_id = ?", req.UserID).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "user_already_barber", "User is already a barber.")
		return
	}

	barber := models.Barber{UserID: req.UserID}
	if err := h.db.Create(&barber).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "user_already_barber", "User is already a barber.")
			return
		}
		h.log.Error("barber create failed", zap.Error(err))
		httperr.Internal(c, "failed_to_create_barber", "Failed to create barber.")
		return
	}

	if err := h.db.Preload("User").First(&barber, barber.BarberID).Error; err != nil {
		h.log.Error("barber reload failed", zap.Error(err))
		httperr.Internal(c, "failed_to_create_barber", "Failed to create barber.")
		return
	}

	httpresp.Created(c, barber)
}

func (h *BarberHandler) List(c *gin.Context) {
	page, limit := pagination(c)

	var barbers []models.Barber
	if err := h.db.
		Preload("User").
		Order("barber_id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&barbers).Error; err != nil {
		h.log.Error("barber list failed", zap.Error(err))
		httperr.Internal(c, "failed_to_list_barbers", "Failed to list barbers.")
		return
	}

	httpresp.List(c, page, limit, barbers)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var barber models.Barber
	if err := h.db.Preload("User").First(&barber, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "barber_not_found", "Barber not found.")
			return
		}
		h.log.Error("barber get failed", zap.Uint("barber_id", id), zap.Error(err))
		httperr.Internal(c, "failed_to_get_barber", "Failed to fetch barber.")
		return
	}

	httpresp.OK(c, barber)
}
