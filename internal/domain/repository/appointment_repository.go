package repository

import (
	"medichain-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindByPatientID returns the patient's appointments newest
	// appointment_date first.
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	// FindByDoctorID returns the doctor's appointments soonest
	// appointment_date first.
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error
	UpdatePayment(db *gorm.DB, id uuid.UUID, paymentStatus entity.PaymentStatus, transactionHash string) error
}
