package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/barberbook/barbershop-api/internal/domain/booking"
	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/models"
	ucAppointment "github.com/barberbook/barbershop-api/internal/usecase/appointment"
)

type fakeBookingRepo struct {
	createFn func(ctx context.Context, in domain.CreateInput) (*models.Appointment, error)
	getFn    func(ctx context.Context, id uint) (*models.Appointment, error)
	listFn   func(ctx context.Context, f domain.ListFilter) ([]models.Appointment, error)
	updateFn func(ctx context.Context, id uint, in domain.UpdateInput) (*models.Appointment, error)
	deleteFn func(ctx context.Context, id uint) (bool, error)
}

func (f *fakeBookingRepo) Create(ctx context.Context, in domain.CreateInput) (*models.Appointment, error) {
	return f.createFn(ctx, in)
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	return f.getFn(ctx, id)
}

func (f *fakeBookingRepo) List(ctx context.Context, fl domain.ListFilter) ([]models.Appointment, error) {
	return f.listFn(ctx, fl)
}

func (f *fakeBookingRepo) Update(ctx context.Context, id uint, in domain.UpdateInput) (*models.Appointment, error) {
	return f.updateFn(ctx, id, in)
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id uint) (bool, error) {
	return f.deleteFn(ctx, id)
}

type fakeDirectory struct {
	users    map[uint]bool
	barbers  map[uint]bool
	services map[uint]bool
}

func (f *fakeDirectory) UserExists(ctx context.Context, id uint) (bool, error) {
	return f.users[id], nil
}

func (f *fakeDirectory) BarberExists(ctx context.Context, id uint) (bool, error) {
	return f.barbers[id], nil
}

func (f *fakeDirectory) ServiceExists(ctx context.Context, id uint) (bool, error) {
	return f.services[id], nil
}

func appointmentRouter(repo *fakeBookingRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	dir := &fakeDirectory{
		users:    map[uint]bool{1: true},
		barbers:  map[uint]bool{2: true},
		services: map[uint]bool{7: true},
	}
	log := zap.NewNop()

	h := NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(repo, dir, nil, nil),
		ucAppointment.NewGetAppointment(repo),
		ucAppointment.NewListAppointments(repo),
		ucAppointment.NewUpdateAppointment(repo, dir, nil),
		ucAppointment.NewDeleteAppointment(repo, nil),
		log,
	)

	r := gin.New()
	r.POST("/appointments", h.Create)
	r.GET("/appointments", h.List)
	r.GET("/appointments/:id", h.Get)
	r.PUT("/appointments/:id", h.Update)
	r.PATCH("/appointments/:id", h.Update)
	r.DELETE("/appointments/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestAppointmentCreateHandler(t *testing.T) {
	repo := &fakeBookingRepo{
		createFn: func(ctx context.Context, in domain.CreateInput) (*models.Appointment, error) {
			return &models.Appointment{
				AppointmentID:   42,
				AppointmentDate: "2026-03-15",
				Status:          string(in.Status),
				TimeSlotLinks: []models.AppointmentTimeSlot{
					{SlotID: 10, TimeSlot: models.TimeSlot{SlotID: 10, StartTime: "09:00", EndTime: "09:30", IsBooked: true}},
				},
			}, nil
		},
	}

	resp := doJSON(t, appointmentRouter(repo), http.MethodPost, "/appointments", gin.H{
		"user_id":     1,
		"barber_id":   2,
		"status":      "pending",
		"slot_ids":    []uint{10},
		"service_ids": []uint{7},
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var got struct {
		AppointmentID uint `json:"appointment_id"`
		TimeSlots     []struct {
			SlotID   uint `json:"slot_id"`
			IsBooked bool `json:"is_booked"`
		} `json:"time_slots"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.AppointmentID != 42 {
		t.Fatalf("appointment_id = %d, want 42", got.AppointmentID)
	}
	if len(got.TimeSlots) != 1 || !got.TimeSlots[0].IsBooked {
		t.Fatalf("time_slots not flattened: %+v", got.TimeSlots)
	}
}

func TestAppointmentCreateHandlerConflict(t *testing.T) {
	repo := &fakeBookingRepo{
		createFn: func(ctx context.Context, in domain.CreateInput) (*models.Appointment, error) {
			return nil, httperr.ErrBusiness(httperr.CodeSlotAlreadyBooked)
		},
	}

	resp := doJSON(t, appointmentRouter(repo), http.MethodPost, "/appointments", gin.H{
		"user_id":   1,
		"barber_id": 2,
		"status":    "pending",
		"slot_ids":  []uint{10},
	})
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}

	var body httperr.HTTPError
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Code != httperr.CodeSlotAlreadyBooked {
		t.Fatalf("error_code = %q, want %q", body.Code, httperr.CodeSlotAlreadyBooked)
	}
}

func TestAppointmentCreateHandlerUnknownUser(t *testing.T) {
	resp := doJSON(t, appointmentRouter(&fakeBookingRepo{}), http.MethodPost, "/appointments", gin.H{
		"user_id":   99,
		"barber_id": 2,
		"status":    "pending",
		"slot_ids":  []uint{10},
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestAppointmentGetHandlerNotFound(t *testing.T) {
	repo := &fakeBookingRepo{
		getFn: func(ctx context.Context, id uint) (*models.Appointment, error) {
			return nil, nil
		},
	}

	resp := doJSON(t, appointmentRouter(repo), http.MethodGet, "/appointments/404", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestAppointmentGetHandlerBadID(t *testing.T) {
	resp := doJSON(t, appointmentRouter(&fakeBookingRepo{}), http.MethodGet, "/appointments/abc", nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestAppointmentListHandlerEmptyPage(t *testing.T) {
	repo := &fakeBookingRepo{
		listFn: func(ctx context.Context, f domain.ListFilter) ([]models.Appointment, error) {
			return nil, nil
		},
	}

	resp := doJSON(t, appointmentRouter(repo), http.MethodGet, "/appointments?page=3&limit=5", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var body struct {
		Data  []json.RawMessage `json:"data"`
		Page  int               `json:"page"`
		Limit int               `json:"limit"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Data == nil {
		t.Fatal("data should serialize as [], not null")
	}
	if body.Page != 3 || body.Limit != 5 {
		t.Fatalf("pagination echo = page %d limit %d, want 3/5", body.Page, body.Limit)
	}
}

func TestAppointmentUpdateHandlerAcceptsPut(t *testing.T) {
	repo := &fakeBookingRepo{
		updateFn: func(ctx context.Context, id uint, in domain.UpdateInput) (*models.Appointment, error) {
			if in.Status == nil {
				t.Fatal("status patch not forwarded")
			}
			return &models.Appointment{
				AppointmentID: id,
				Status:        string(*in.Status),
			}, nil
		},
	}
	r := appointmentRouter(repo)

	resp := doJSON(t, r, http.MethodPut, "/appointments/42", gin.H{
		"status": "confirmed",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestAppointmentDeleteHandler(t *testing.T) {
	repo := &fakeBookingRepo{
		deleteFn: func(ctx context.Context, id uint) (bool, error) {
			return id == 42, nil
		},
	}
	r := appointmentRouter(repo)

	if resp := doJSON(t, r, http.MethodDelete, "/appointments/42", nil); resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if resp := doJSON(t, r, http.MethodDelete, "/appointments/404", nil); resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}
