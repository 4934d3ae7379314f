package repository

import (
	"medichain-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error)
	// FindAvailable lists available doctors, optionally narrowed to an
	// exact specialization match.
	FindAvailable(db *gorm.DB, specialization string) ([]entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
}
