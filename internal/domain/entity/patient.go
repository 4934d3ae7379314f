package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a patient's medical profile, owned 1:1 by a User with
// user_type=patient. Registration creates the row empty; the patient fills
// it in later through the profile endpoints.
type Patient struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	DateOfBirth    *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender         string     `gorm:"type:varchar(50)" json:"gender,omitempty"`
	BloodGroup     string     `gorm:"type:varchar(10)" json:"blood_group,omitempty"`
	Allergies      string     `gorm:"type:text" json:"allergies,omitempty"`
	MedicalHistory string     `gorm:"type:text" json:"medical_history,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
