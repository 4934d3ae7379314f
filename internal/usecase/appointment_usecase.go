package usecase

import (
	"context"
	"errors"
	"time"

	"medichain-backend/internal/converter"
	"medichain-backend/internal/delivery/dto"
	"medichain-backend/internal/delivery/http/middleware"
	"medichain-backend/internal/domain/entity"
	"medichain-backend/internal/domain/repository"
	"medichain-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound   = errors.New("appointment not found")
	ErrAppointmentNotOwned   = errors.New("appointment does not belong to you")
	ErrDoctorNotFound        = errors.New("doctor not found")
	ErrPatientNotFound       = errors.New("patient not found")
	ErrUnknownStatus         = errors.New("unknown appointment status")
	ErrInvalidTransition     = errors.New("status transition not allowed")
	ErrInvalidDateFormat     = errors.New("invalid appointment date, use RFC3339")
	ErrPaymentAlreadySettled = errors.New("payment already completed")
	ErrPaymentNotConfirmed   = errors.New("transfer could not be confirmed on chain")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	List(ctx context.Context) (*dto.AppointmentListResponse, error)
	UpdateStatus(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	SettlePayment(ctx context.Context, appointmentID uuid.UUID, req *dto.SettlePaymentRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	patientRepo     repository.PatientRepository
	// nil disables on-chain verification; the settlement write is then
	// recorded without consulting the chain.
	settlement service.SettlementVerifier
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	settlement service.SettlementVerifier,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		settlement:      settlement,
	}
}

// Create books an appointment for the calling patient. The consultation fee
// is snapshotted from the doctor's current fee and never changes afterwards,
// whatever the client sent.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointmentDate, err := time.Parse(time.RFC3339, req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	patient, err := u.patientRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find patient for user %s: %+v", userID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointment := &entity.Appointment{
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		AppointmentDate: appointmentDate,
		Status:          entity.AppointmentStatusPending,
		Symptoms:        req.Symptoms,
		Description:     req.Description,
		ConsultationFee: doctor.ConsultationFee,
		PaymentStatus:   entity.PaymentStatusPending,
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment created: id=%s, patient=%s, doctor=%s, fee=%s",
		appointment.ID, patient.ID, doctor.ID, appointment.ConsultationFee)

	appointment.Doctor = *doctor
	return converter.AppointmentToResponse(appointment), nil
}

// List returns the caller's appointments with the counterparty's public
// profile. Patients see newest scheduled first, doctors soonest first.
func (u *appointmentUsecase) List(ctx context.Context) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	userType, _ := middleware.GetUserTypeFromContext(ctx)

	var appointments []entity.Appointment

	switch userType {
	case entity.UserTypeDoctor:
		doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), userID)
		if err != nil {
			u.log.Warnf("Failed to find doctor for user %s: %+v", userID, err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrDoctorNotFound
		}
		appointments, err = u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), doctor.ID)
		if err != nil {
			u.log.Warnf("Failed to list appointments for doctor %s: %+v", doctor.ID, err)
			return nil, err
		}
	default:
		patient, err := u.patientRepo.FindByUserID(u.db.WithContext(ctx), userID)
		if err != nil {
			u.log.Warnf("Failed to find patient for user %s: %+v", userID, err)
			return nil, err
		}
		if patient == nil {
			return nil, ErrPatientNotFound
		}
		appointments, err = u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patient.ID)
		if err != nil {
			u.log.Warnf("Failed to list appointments for patient %s: %+v", patient.ID, err)
			return nil, err
		}
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// UpdateStatus performs a doctor triage transition. Ownership and the edge
// set are both enforced here, not left to the client.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	next, ok := entity.ParseAppointmentStatus(req.Status)
	if !ok {
		return nil, ErrUnknownStatus
	}

	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor for user %s: %+v", userID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if appointment.DoctorID != doctor.ID {
		return nil, ErrAppointmentNotOwned
	}

	if !appointment.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	if err := u.appointmentRepo.UpdateStatus(u.db.WithContext(ctx), appointmentID, next); err != nil {
		u.log.Warnf("Failed to update appointment %s status: %+v", appointmentID, err)
		return nil, err
	}

	u.log.Infof("Appointment status updated: id=%s, %s -> %s", appointmentID, appointment.Status, next)

	appointment.Status = next
	return converter.AppointmentToResponse(appointment), nil
}

// SettlePayment records the outcome of the external transfer. Only the
// owning patient may settle, a completed payment cannot be overwritten, and
// the lifecycle status is never touched.
func (u *appointmentUsecase) SettlePayment(ctx context.Context, appointmentID uuid.UUID, req *dto.SettlePaymentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	patient, err := u.patientRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find patient for user %s: %+v", userID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if appointment.PatientID != patient.ID {
		return nil, ErrAppointmentNotOwned
	}

	if appointment.IsPaid() {
		return nil, ErrPaymentAlreadySettled
	}

	if u.settlement != nil {
		err := u.settlement.VerifyTransfer(ctx, req.TransactionHash,
			appointment.Doctor.User.WalletAddress, appointment.ConsultationFee)
		switch {
		case errors.Is(err, service.ErrTransferReverted),
			errors.Is(err, service.ErrTransferWrongAccount),
			errors.Is(err, service.ErrTransferUnderpaid):
			// Confirmed bad transfer: record the failure with the hash
			// kept for audit.
			if updErr := u.appointmentRepo.UpdatePayment(u.db.WithContext(ctx), appointmentID,
				entity.PaymentStatusFailed, req.TransactionHash); updErr != nil {
				u.log.Warnf("Failed to record failed payment for %s: %+v", appointmentID, updErr)
				return nil, updErr
			}
			u.log.Infof("Payment rejected: appointment=%s, tx=%s, reason=%v", appointmentID, req.TransactionHash, err)
			return nil, ErrPaymentNotConfirmed
		case errors.Is(err, service.ErrTransferNotFound):
			return nil, ErrPaymentNotConfirmed
		case err != nil:
			u.log.Warnf("Settlement verification error for %s: %+v", appointmentID, err)
			return nil, err
		}
	}

	if err := u.appointmentRepo.UpdatePayment(u.db.WithContext(ctx), appointmentID,
		entity.PaymentStatusCompleted, req.TransactionHash); err != nil {
		u.log.Warnf("Failed to record payment for %s: %+v", appointmentID, err)
		return nil, err
	}

	u.log.Infof("Payment settled: appointment=%s, tx=%s", appointmentID, req.TransactionHash)

	appointment.PaymentStatus = entity.PaymentStatusCompleted
	appointment.TransactionHash = req.TransactionHash
	return converter.AppointmentToResponse(appointment), nil
}
