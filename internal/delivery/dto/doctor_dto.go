package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type UpdateDoctorProfileRequest struct {
	Specialization  string `json:"specialization" validate:"omitempty,min=2"`
	Bio             string `json:"bio" validate:"omitempty"`
	ExperienceYears *int   `json:"experience_years" validate:"omitempty,gte=0"`
	ConsultationFee string `json:"consultation_fee" validate:"omitempty"`
	IsAvailable     *bool  `json:"is_available" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	FullName        string    `json:"full_name"`
	WalletAddress   string    `json:"wallet_address"`
	Specialization  string    `json:"specialization"`
	Bio             string    `json:"bio,omitempty"`
	ExperienceYears int       `json:"experience_years"`
	ConsultationFee string    `json:"consultation_fee"`
	Rating          string    `json:"rating"`
	IsAvailable     *bool     `json:"is_available"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
