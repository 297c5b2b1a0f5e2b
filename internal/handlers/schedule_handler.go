package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/barberbook/barbershop-api/internal/domain/schedule"
	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/httpresp"
	ucSchedule "github.com/barberbook/barbershop-api/internal/usecase/schedule"
)

type ScheduleHandler struct {
	createUC *ucSchedule.CreateSchedule
	getUC    *ucSchedule.GetSchedule
	listUC   *ucSchedule.ListSchedules
	updateUC *ucSchedule.UpdateSchedule
	deleteUC *ucSchedule.DeleteSchedule
	log      *zap.Logger
}

func NewScheduleHandler(
	createUC *ucSchedule.CreateSchedule,
	getUC *ucSchedule.GetSchedule,
	listUC *ucSchedule.ListSchedules,
	updateUC *ucSchedule.UpdateSchedule,
	deleteUC *ucSchedule.DeleteSchedule,
	log *zap.Logger,
) *ScheduleHandler {
	return &ScheduleHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		log:      log,
	}
}

// --------- Requests ---------

type TimeSlotRequest struct {
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	IsAvailable *bool  `json:"is_available"`
}

type GenerateSlotsRequest struct {
	DayStart    string `json:"day_start" binding:"required"`
	DayEnd      string `json:"day_end" binding:"required"`
	StepMinutes int    `json:"step_minutes" binding:"required,min=1"`
}

type CreateScheduleRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	IsWorking *bool  `json:"is_working"`

	TimeSlots []TimeSlotRequest     `json:"time_slots"`
	Generate  *GenerateSlotsRequest `json:"generate"`
}

type TimeSlotPatchRequest struct {
	SlotID      uint    `json:"slot_id"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	IsAvailable *bool   `json:"is_available"`
}

type UpdateScheduleRequest struct {
	Date      *string                `json:"date"`
	IsWorking *bool                  `json:"is_working"`
	TimeSlots []TimeSlotPatchRequest `json:"time_slots"`
}

// --------- Handlers ---------

func (h *ScheduleHandler) Create(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid schedule payload.")
		return
	}

	in := ucSchedule.CreateScheduleInput{
		BarberID:  req.BarberID,
		Date:      req.Date,
		IsWorking: req.IsWorking,
	}
	for _, ts := range req.TimeSlots {
		in.TimeSlots = append(in.TimeSlots, ucSchedule.SlotInput{
			StartTime:   ts.StartTime,
			EndTime:     ts.EndTime,
			IsAvailable: ts.IsAvailable,
		})
	}
	if req.Generate != nil {
		in.Generate = &ucSchedule.GenerateInput{
			DayStart:    req.Generate.DayStart,
			DayEnd:      req.Generate.DayEnd,
			StepMinutes: req.Generate.StepMinutes,
		}
	}

	s, err := h.createUC.Execute(c.Request.Context(), in)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		h.log.Error("schedule create failed", zap.Error(err))
		httperr.Internal(c, "failed_to_create_schedule", "Failed to create schedule.")
		return
	}

	httpresp.Created(c, s)
}

func (h *ScheduleHandler) List(c *gin.Context) {
	page, limit := pagination(c)

	f := domain.ListFilter{Page: page, Limit: limit}
	if date := c.Query("date"); date != "" {
		f.Date = &date
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

	schedules, err := h.listUC.Execute(c.Request.Context(), f)
	if err != nil {
		h.log.Error("schedule list failed", zap.Error(err))
		httperr.Internal(c, "failed_to_list_schedules", "Failed to list schedules.")
		return
	}

	httpresp.List(c, page, limit, schedules)
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		h.log.Error("schedule get failed", zap.Uint("schedule_id", id), zap.Error(err))
		httperr.Internal(c, "failed_to_get_schedule", "Failed to fetch schedule.")
		return
	}

	httpresp.OK(c, s)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid schedule payload.")
		return
	}

	p := domain.Patch{
		Date:      req.Date,
		IsWorking: req.IsWorking,
	}
	for _, ts := range req.TimeSlots {
		p.TimeSlots = append(p.TimeSlots, domain.SlotPatch{
			SlotID:      ts.SlotID,
			StartTime:   ts.StartTime,
			EndTime:     ts.EndTime,
			IsAvailable: ts.IsAvailable,
		})
	}

	s, err := h.updateUC.Execute(c.Request.Context(), id, p)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		h.log.Error("schedule update failed", zap.Uint("schedule_id", id), zap.Error(err))
		httperr.Internal(c, "failed_to_update_schedule", "Failed to update schedule.")
		return
	}

	httpresp.OK(c, s)
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		if writeBusinessError(c, err) {
			return
		}
		h.log.Error("schedule delete failed", zap.Uint("schedule_id", id), zap.Error(err))
		httperr.Internal(c, "failed_to_delete_schedule", "Failed to delete schedule.")
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}
