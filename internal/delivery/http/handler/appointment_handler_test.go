package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medichain-backend/internal/delivery/dto"
	"medichain-backend/internal/usecase"
	"medichain-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type stubAppointmentUsecase struct {
	createFn       func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	listFn         func(ctx context.Context) (*dto.AppointmentListResponse, error)
	updateStatusFn func(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	settleFn       func(ctx context.Context, id uuid.UUID, req *dto.SettlePaymentRequest) (*dto.AppointmentResponse, error)
}

func (s *stubAppointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return s.createFn(ctx, req)
}

func (s *stubAppointmentUsecase) List(ctx context.Context) (*dto.AppointmentListResponse, error) {
	return s.listFn(ctx)
}

func (s *stubAppointmentUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	return s.updateStatusFn(ctx, id, req)
}

func (s *stubAppointmentUsecase) SettlePayment(ctx context.Context, id uuid.UUID, req *dto.SettlePaymentRequest) (*dto.AppointmentResponse, error) {
	return s.settleFn(ctx, id, req)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body
}

func TestAppointmentHandlerCreate(t *testing.T) {
	doctorID := uuid.New()

	stub := &stubAppointmentUsecase{
		createFn: func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			if req.DoctorID != doctorID {
				t.Errorf("expected doctor ID %s, got %s", doctorID, req.DoctorID)
			}
			return &dto.AppointmentResponse{
				ID:              uuid.New(),
				DoctorID:        req.DoctorID,
				AppointmentDate: time.Now().Add(24 * time.Hour),
				Status:          "pending",
				ConsultationFee: "150.00",
				PaymentStatus:   "pending",
			}, nil
		},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	payload := fmt.Sprintf(`{"doctor_id":%q,"appointment_date":%q,"symptoms":"headache"}`,
		doctorID, time.Now().Add(24*time.Hour).Format(time.RFC3339))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	if body["success"] != true {
		t.Errorf("expected success=true, got %v", body["success"])
	}
}

func TestAppointmentHandlerCreateValidation(t *testing.T) {
	stub := &stubAppointmentUsecase{
		createFn: func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			t.Fatal("usecase should not be called on validation failure")
			return nil, nil
		},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewBufferString(`{"symptoms":"headache"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestAppointmentHandlerCreateDoctorNotFound(t *testing.T) {
	stub := &stubAppointmentUsecase{
		createFn: func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrDoctorNotFound
		},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	payload := fmt.Sprintf(`{"doctor_id":%q,"appointment_date":%q}`,
		uuid.New(), time.Now().Format(time.RFC3339))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestAppointmentHandlerUpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "success", err: nil, wantStatus: http.StatusOK},
		{name: "not found", err: usecase.ErrAppointmentNotFound, wantStatus: http.StatusNotFound},
		{name: "not owned", err: usecase.ErrAppointmentNotOwned, wantStatus: http.StatusForbidden},
		{name: "unknown status", err: usecase.ErrUnknownStatus, wantStatus: http.StatusBadRequest},
		{name: "invalid transition", err: usecase.ErrInvalidTransition, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubAppointmentUsecase{
				updateStatusFn: func(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return &dto.AppointmentResponse{ID: id, Status: req.Status}, nil
				},
			}
			h := NewAppointmentHandler(stub, validator.NewValidator())

			appointmentID := uuid.New()
			req := httptest.NewRequest(http.MethodPatch,
				"/api/v1/appointments/"+appointmentID.String()+"/status",
				bytes.NewBufferString(`{"status":"approved"}`))
			req = mux.SetURLVars(req, map[string]string{"id": appointmentID.String()})
			rec := httptest.NewRecorder()

			h.UpdateStatus(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAppointmentHandlerUpdateStatusBadID(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/not-a-uuid/status",
		bytes.NewBufferString(`{"status":"approved"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "not-a-uuid"})
	rec := httptest.NewRecorder()

	h.UpdateStatus(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestAppointmentHandlerSettlePayment(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "success", err: nil, wantStatus: http.StatusOK},
		{name: "not found", err: usecase.ErrAppointmentNotFound, wantStatus: http.StatusNotFound},
		{name: "not owned", err: usecase.ErrAppointmentNotOwned, wantStatus: http.StatusForbidden},
		{name: "already settled", err: usecase.ErrPaymentAlreadySettled, wantStatus: http.StatusConflict},
		{name: "not confirmed", err: usecase.ErrPaymentNotConfirmed, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubAppointmentUsecase{
				settleFn: func(ctx context.Context, id uuid.UUID, req *dto.SettlePaymentRequest) (*dto.AppointmentResponse, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return &dto.AppointmentResponse{
						ID:              id,
						PaymentStatus:   "completed",
						TransactionHash: req.TransactionHash,
					}, nil
				},
			}
			h := NewAppointmentHandler(stub, validator.NewValidator())

			appointmentID := uuid.New()
			req := httptest.NewRequest(http.MethodPost,
				"/api/v1/appointments/"+appointmentID.String()+"/payment",
				bytes.NewBufferString(`{"transaction_hash":"0xabc123"}`))
			req = mux.SetURLVars(req, map[string]string{"id": appointmentID.String()})
			rec := httptest.NewRecorder()

			h.SettlePayment(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAppointmentHandlerList(t *testing.T) {
	stub := &stubAppointmentUsecase{
		listFn: func(ctx context.Context) (*dto.AppointmentListResponse, error) {
			return &dto.AppointmentListResponse{
				Appointments: []dto.AppointmentResponse{{ID: uuid.New(), Status: "pending"}},
				Total:        1,
			}, nil
		},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected data object, got %v", body["data"])
	}
	if data["total"] != float64(1) {
		t.Errorf("expected total 1, got %v", data["total"])
	}
}
