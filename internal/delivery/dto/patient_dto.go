package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type UpdatePatientProfileRequest struct {
	DateOfBirth    string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender         string `json:"gender" validate:"omitempty,oneof=male female other"`
	BloodGroup     string `json:"blood_group" validate:"omitempty,max=10"`
	Allergies      string `json:"allergies" validate:"omitempty"`
	MedicalHistory string `json:"medical_history" validate:"omitempty"`
}

// Response DTOs

type PatientResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	FullName       string    `json:"full_name"`
	DateOfBirth    string    `json:"date_of_birth,omitempty"`
	Gender         string    `json:"gender,omitempty"`
	BloodGroup     string    `json:"blood_group,omitempty"`
	Allergies      string    `json:"allergies,omitempty"`
	MedicalHistory string    `json:"medical_history,omitempty"`
}
