package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus is the doctor-controlled triage state of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusPending  AppointmentStatus = "pending"
	AppointmentStatusApproved AppointmentStatus = "approved"
	AppointmentStatusRejected AppointmentStatus = "rejected"
	AppointmentStatusHeld     AppointmentStatus = "held"
	// Declared in the schema constraint but not produced by any API
	// transition; kept so stored rows always round-trip.
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// PaymentStatus tracks whether the external transfer has been recorded.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// statusTransitions is the full set of legal doctor-driven edges.
// approved and rejected are terminal.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending: {AppointmentStatusApproved, AppointmentStatusHeld, AppointmentStatusRejected},
	AppointmentStatusHeld:    {AppointmentStatusApproved, AppointmentStatusRejected},
}

// ParseAppointmentStatus maps a raw string onto a known status value.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case AppointmentStatusPending, AppointmentStatusApproved, AppointmentStatusRejected,
		AppointmentStatusHeld, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return AppointmentStatus(s), true
	}
	return "", false
}

// Appointment is the central booking record. The consultation fee is a
// snapshot of the doctor's fee at creation time and never changes.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	AppointmentDate time.Time         `gorm:"not null;index" json:"appointment_date"`
	Status          AppointmentStatus `gorm:"type:varchar(50);not null;default:'pending';index" json:"status"`
	Symptoms        string            `gorm:"type:text" json:"symptoms,omitempty"`
	Description     string            `gorm:"type:text" json:"description,omitempty"`
	ConsultationFee decimal.Decimal   `gorm:"type:numeric(10,2)" json:"consultation_fee"`
	PaymentStatus   PaymentStatus     `gorm:"type:varchar(50);not null;default:'pending'" json:"payment_status"`
	TransactionHash string            `gorm:"type:varchar(255)" json:"transaction_hash,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// CanTransitionTo reports whether the doctor may move the appointment from
// its current status to next.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range statusTransitions[a.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsPaid checks whether the settlement write has already landed.
func (a *Appointment) IsPaid() bool {
	return a.PaymentStatus == PaymentStatusCompleted
}
