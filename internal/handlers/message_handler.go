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

type MessageHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewMessageHandler(db *gorm.DB, log *zap.Logger) *MessageHandler {
	return &MessageHandler{db: db, log: log}
}

type CreateMessageRequest struct {
	ThreadID         uint   `json:"thread_id" binding:"required"`
	Text             string `json:"text" binding:"required"`
	HasActiveMessage *bool  `json:"has_active_message"`
}

type UpdateMessageActiveRequest struct {
	HasActiveMessage *bool `json:"has_active_message" binding:"required"`
}

func (h *MessageHandler) Create(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid message payload.")
		return
	}

	var count int64
	h.db.Model(&models.Thread{}).Where("thread_id = ?", req.ThreadID).Count(&count)
	if count == 0 {
		httperr.BadRequest(c, "invalid_thread", "No thread exists with the provided ID.")
		return
	}

	msg := models.Message{
		ThreadID:         req.ThreadID,
		Text:             req.Text,
		HasActiveMessage: true,
	}
	if req.HasActiveMessage != nil {
		msg.HasActiveMessage = *req.HasActiveMessage
	}

	if err := h.db.Create(&msg).Error; err != nil {
		h.log.Error("message create failed", zap.Error(err))
		httperr.Internal(c, "failed_to_create_message", "Failed to create message.")
		return
	}

	httpresp.Created(c, msg)
}

func (h *MessageHandler) UpdateActive(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateMessageActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.HasActiveMessage == nil {
		httperr.BadRequest(c, "invalid_request", "has_active_message is required.")
		return
	}

	var msg models.Message
	if err := h.db.First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "message_not_found", "Message not found.")
			return
		}
		h.log.Error("message get failed", zap.Uint("message_id", id), zap.Error(err))
		httperr.Internal(c, "failed_to_get_message", "Failed to fetch message.")
		return
	}

	msg.HasActiveMessage = *req.HasActiveMessage

	if err := h.db.Save(&msg).Error; err != nil {
		h.log.Error("message update failed", zap.Uint("message_id", id), zap.Error(err))
		httperr.Internal(c, "failed_to_update_message", "Failed to update message.")
		return
	}

	httpresp.OK(c, msg)
}
