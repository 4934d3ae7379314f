package converter

import (
	"medichain-backend/internal/delivery/dto"
	"medichain-backend/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:              doctor.ID,
		UserID:          doctor.UserID,
		FullName:        doctor.User.FullName,
		WalletAddress:   doctor.User.WalletAddress,
		Specialization:  doctor.Specialization,
		Bio:             doctor.Bio,
		ExperienceYears: doctor.ExperienceYears,
		ConsultationFee: doctor.ConsultationFee.StringFixed(2),
		Rating:          doctor.Rating.StringFixed(2),
		IsAvailable:     doctor.IsAvailable,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		resp := DoctorToResponse(&doctor)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
