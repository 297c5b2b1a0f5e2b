package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barberbook/barbershop-api/internal/directory"
	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/httpresp"
	"github.com/barberbook/barbershop-api/internal/models"
	"github.com/barberbook/barbershop-api/internal/validators"
)

// UserHandler is plain CRUD over the user table. Account credentials
// live with the external identity provider; the password stored here
// only seeds that provider during onboarding.
type UserHandler struct {
	db  *gorm.DB
	dir *directory.GormDirectory
	log *zap.Logger
}

func NewUserHandler(db *gorm.DB, dir *directory.GormDirectory, log *zap.Logger) *UserHandler {
	return &UserHandler{db: db, dir: dir, log: log}
}

// --------- Requests ---------

type CreateUserRequest struct {
	FirstName   string `json:"first_name" binding:"required,max=50"`
	LastName    string `json:"last_name" binding:"required,max=50"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	PhoneNumber string `json:"phone_number" binding:"required,max=10"`
	IsAdmin     bool   `json:"is_admin"`
}

type UpdateUserRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	IsAdmin     *bool   `json:"is_admin"`
}

// --------- Handlers ---------

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid user payload.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "email_already_exists", "A user already exists with the provided email.")
		return
	}

	h.db.Model(&models.User{}).Where("phone_number = ?", req.PhoneNumber).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "phone_already_exists", "A user already exists with the provided phone number.")
		return
	}

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not appear to be valid.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.log.Error("password hash failed", zap.Error(err))
		httperr.Internal(c, "failed_to_hash_password", "Failed to create user.")
		return
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		PasswordHash: string(hashed),
		PhoneNumber:  req.PhoneNumber,
		IsAdmin:      req.IsAdmin,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "user_already_exists", "A user already exists with these details.")
			return
		}
		h.log.Error("user create failed", zap.Error(err))
		httperr.Internal(c, "failed_to_create_user", "Failed to create user.")
		return
	}

	httpresp.Created(c, user)
}

func (h *UserHandler) List(c *gin.Context) {
	page, limit := pagination(c)

	var users []models.User
	if err := h.db.
		Order("user_id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error; err != nil {
		h.log.Error("user list failed", zap.Error(err))
		httperr.Internal(c, "failed_to_list_users", "Failed to list users.")
		return
	}

	httpresp.List(c, page, limit, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		h.log.Error("user get failed", zap.Uint("user_id", id), zap.Error(err))
		httperr.Internal(c, "failed_to_get_user", "Failed to fetch user.")
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid user payload.")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		h.log.Error("user get failed", zap.Uint("user_id", id), zap.Error(err))
		httperr.Internal(c, "failed_to_get_user", "Failed to fetch user.")
		return
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))

		var count int64
		h.db.Model(&models.User{}).
			Where("email = ? AND user_id <> ?", email, id).
			Count(&count)
		if count > 0 {
			httperr.Conflict(c, "email_already_exists", "A user already exists with the provided email.")
			return
		}
		user.Email = email
	}
	if req.PhoneNumber != nil {
		if len(*req.PhoneNumber) > 10 {
			httperr.BadRequest(c, "invalid_phone_number", "Phone number must be 10 digits or less.")
			return
		}

		var count int64
		h.db.Model(&models.User{}).
			Where("phone_number = ? AND user_id <> ?", *req.PhoneNumber, id).
			Count(&count)
		if count > 0 {
			httperr.Conflict(c, "phone_already_exists", "A user already exists with the provided phone number.")
			return
		}
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}

	if err := h.db.Save(&user).Error; err != nil {
		h.log.Error("user update failed", zap.Uint("user_id", id), zap.Error(err))
		httperr.Internal(c, "failed_to_update_user", "Failed to update user.")
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		h.log.Error("user get failed", zap.Uint("user_id", id), zap.Error(err))
		httperr.Internal(c, "failed_to_get_user", "Failed to fetch user.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		// The barber row, if any, goes with the user.
		var barber models.Barber
		if err := tx.Where("user_id = ?", id).First(&barber).Error; err == nil {
			if err := tx.Delete(&barber).Error; err != nil {
				return err
			}
			h.dir.Invalidate(c.Request.Context(), "barber", barber.BarberID)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Delete(&user).Error
	})
	if err != nil {
		h.log.Error("user delete failed", zap.Uint("user_id", id), zap.Error(err))
		httperr.Internal(c, "failed_to_delete_user", "Failed to delete user.")
		return
	}

	h.dir.Invalidate(c.Request.Context(), "user", id)

	httpresp.OK(c, gin.H{"deleted": true})
}
