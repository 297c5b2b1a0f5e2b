package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/httpresp"
	"github.com/barberbook/barbershop-api/internal/middleware"
	"github.com/barberbook/barbershop-api/internal/models"
)

// MeHandler resolves the authenticated subject to its user row.
type MeHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewMeHandler(db *gorm.DB, log *zap.Logger) *MeHandler {
	return &MeHandler{db: db, log: log}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		httperr.Unauthorized(c, "user_not_in_context", "Authentication required.")
		return
	}

	userID, ok := userIDVal.(uint)
	if !ok || userID == 0 {
		httperr.Unauthorized(c, "invalid_subject", "Authentication required.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		h.log.Error("me lookup failed", zap.Uint("user_id", userID), zap.Error(err))
		httperr.Internal(c, "failed_to_get_user", "Failed to fetch user.")
		return
	}

	httpresp.OK(c, user)
}
