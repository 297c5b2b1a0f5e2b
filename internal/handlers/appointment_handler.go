package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/barberbook/barbershop-api/internal/domain/booking"
	"github.com/barberbook/barbershop-api/internal/dto"
	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/httpresp"
	ucAppointment "github.com/barberbook/barbershop-api/internal/usecase/appointment"
)

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	getUC    *ucAppointment.GetAppointment
	listUC   *ucAppointment.ListAppointments
	updateUC *ucAppointment.UpdateAppointment
	deleteUC *ucAppointment.DeleteAppointment
	log      *zap.Logger
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	getUC *ucAppointment.GetAppointment,
	listUC *ucAppointment.ListAppointments,
	updateUC *ucAppointment.UpdateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	log *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		log:      log,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	UserID     uint   `json:"user_id" binding:"required"`
	BarberID   uint   `json:"barber_id" binding:"required"`
	Status     string `json:"status" binding:"required"`
	SlotIDs    []uint `json:"slot_ids" binding:"required"`
	ServiceIDs []uint `json:"service_ids"`
}

type UpdateAppointmentRequest struct {
	UserID     *uint   `json:"user_id"`
	BarberID   *uint   `json:"barber_id"`
	Status     *string `json:"status"`
	SlotIDs    *[]uint `json:"slot_ids"`
	ServiceIDs *[]uint `json:"service_ids"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment payload.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		UserID:     req.UserID,
		BarberID:   req.BarberID,
		Status:     domain.Status(req.Status),
		SlotIDs:    req.SlotIDs,
		ServiceIDs: req.ServiceIDs,
	})
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		h.log.Error("appointment create failed", zap.Error(err))
		httperr.Internal(c, "failed_to_create_appointment", "Failed to create appointment.")
		return
	}

	httpresp.Created(c, dto.NewAppointmentDTO(ap))
}

func (h *AppointmentHandler) List(c *gin.Context) {
	page, limit := pagination(c)

	f := domain.ListFilter{Page: page, Limit: limit}
	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_user_id", "Invalid user_id filter.")
			return
		}
		userID := uint(id)
		f.UserID = &userID
	}
	if raw := c.Query("barber_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Invalid barber_id filter.")
			return
		}
		barberID := uint(id)
		f.BarberID = &barberID
	}

	aps, err := h.listUC.Execute(c.Request.Context(), f)
	if err != nil {
		h.log.Error("appointment list failed", zap.Error(err))
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments.")
		return
	}

	httpresp.List(c, page, limit, dto.NewAppointmentDTOs(aps))
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		h.log.Error("appointment get failed", zap.Uint("appointment_id", id), zap.Error(err))
		httperr.Internal(c, "failed_to_get_appointment", "Failed to fetch appointment.")
		return
	}
	if ap == nil {
		httperr.NotFound(c, httperr.CodeAppointmentNotFound, "Appointment not found.")
		return
	}

	httpresp.OK(c, dto.NewAppointmentDTO(ap))
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment payload.")
		return
	}

	in := domain.UpdateInput{
		UserID:     req.UserID,
		BarberID:   req.BarberID,
		SlotIDs:    req.SlotIDs,
		ServiceIDs: req.ServiceIDs,
	}
	if req.Status != nil {
		status := domain.Status(*req.Status)
		in.Status = &status
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), id, in)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		h.log.Error("appointment update failed", zap.Uint("appointment_id", id), zap.Error(err))
		httperr.Internal(c, "failed_to_update_appointment", "Failed to update appointment.")
		return
	}

	httpresp.OK(c, dto.NewAppointmentDTO(ap))
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		if writeBusinessError(c, err) {
			return
		}
		h.log.Error("appointment delete failed", zap.Uint("appointment_id", id), zap.Error(err))
		httperr.Internal(c, "failed_to_delete_appointment", "Failed to delete appointment.")
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}
