package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID        uuid.UUID `json:"doctor_id" validate:"required"`
	AppointmentDate string    `json:"appointment_date" validate:"required"` // RFC3339
	Symptoms        string    `json:"symptoms" validate:"omitempty"`
	Description     string    `json:"description" validate:"omitempty"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type SettlePaymentRequest struct {
	TransactionHash string `json:"transaction_hash" validate:"required"`
}

// Response DTOs

// AppointmentDoctorInfo is the counterparty view a patient sees on their
// appointment rows. The wallet address is what the payment transfer is
// sent to.
type AppointmentDoctorInfo struct {
	FullName       string `json:"full_name"`
	WalletAddress  string `json:"wallet_address"`
	Specialization string `json:"specialization"`
}

// AppointmentPatientInfo is the counterparty view a doctor sees.
type AppointmentPatientInfo struct {
	FullName   string `json:"full_name"`
	Gender     string `json:"gender,omitempty"`
	BloodGroup string `json:"blood_group,omitempty"`
}

type AppointmentResponse struct {
	ID              uuid.UUID               `json:"id"`
	PatientID       uuid.UUID               `json:"patient_id"`
	DoctorID        uuid.UUID               `json:"doctor_id"`
	AppointmentDate time.Time               `json:"appointment_date"`
	Status          string                  `json:"status"`
	Symptoms        string                  `json:"symptoms,omitempty"`
	Description     string                  `json:"description,omitempty"`
	ConsultationFee string                  `json:"consultation_fee"`
	PaymentStatus   string                  `json:"payment_status"`
	TransactionHash string                  `json:"transaction_hash,omitempty"`
	Doctor          *AppointmentDoctorInfo  `json:"doctor,omitempty"`
	Patient         *AppointmentPatientInfo `json:"patient,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
