package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/httpresp"
	"github.com/barberbook/barbershop-api/internal/models"
)

type ThreadHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewThreadHandler(db *gorm.DB, log *zap.Logger) *ThreadHandler {
	return &ThreadHandler{db: db, log: log}
}

type CreateThreadRequest struct {
	SendingUserID   uint `json:"sending_user_id" binding:"required"`
	ReceivingUserID uint `json:"receiving_user_id" binding:"required"`
}

func (h *ThreadHandler) Create(c *gin.Context) {
	var req CreateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid thread payload.")
		return
	}

	for _, userID := range []uint{req.SendingUserID, req.ReceivingUserID} {
		var count int64
		h.db.Model(&models.User{}).Where("user_id = ?", userID).Count(&count)
		if count == 0 {
			httperr.BadRequest(c, httperr.CodeInvalidUser, "User does not exist.")
			return
		}
	}

	thread := models.Thread{
		SendingUserID:   req.SendingUserID,
		ReceivingUserID: req.ReceivingUserID,
	}

	if err := h.db.Create(&thread).Error; err != nil {
		h.log.Error("thread create failed", zap.Error(err))
		httperr.Internal(c, "failed_to_create_thread", "Failed to create thread.")
		return
	}

	httpresp.Created(c, thread)
}

// List returns a user's threads with their messages, in both
// directions, so a conversation renders whole. With other_user_id it
// narrows to the threads those two users share; without it, it lists
// every conversation the user participates in.
func (h *ThreadHandler) List(c *gin.Context) {
	page, limit := pagination(c)

	userID, err := strconv.ParseUint(c.Query("user_id"), 10, 64)
	if err != nil || userID == 0 {
		httperr.BadRequest(c, "invalid_user_id", "user_id is required.")
		return
	}

	var otherID uint64
	if raw := c.Query("other_user_id"); raw != "" {
		otherID, err = strconv.ParseUint(raw, 10, 64)
		if err != nil || otherID == 0 {
			httperr.BadRequest(c, "invalid_other_user_id", "Invalid other_user_id filter.")
			return
		}
	}

	ids := []uint64{userID}
	if otherID != 0 {
		ids = append(ids, otherID)
	}
	for _, id := range ids {
		var count int64
		h.db.Model(&models.User{}).Where("user_id = ?", id).Count(&count)
		if count == 0 {
			httperr.BadRequest(c, httperr.CodeInvalidUser, "User does not exist.")
			return
		}
	}

	q := h.db.
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		})

	if otherID != 0 {
		q = q.Where(
			"(sending_user_id = ? AND receiving_user_id = ?) OR (sending_user_id = ? AND receiving_user_id = ?)",
			userID, otherID, otherID, userID,
		)
	} else {
		q = q.Where("sending_user_id = ? OR receiving_user_id = ?", userID, userID)
	}

	var threads []models.Thread
	if err := q.
		Order("thread_id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&threads).Error; err != nil {
		h.log.Error("thread list failed", zap.Error(err))
		httperr.Internal(c, "failed_to_list_threads", "Failed to list threads.")
		return
	}

	httpresp.List(c, page, limit, threads)
}
