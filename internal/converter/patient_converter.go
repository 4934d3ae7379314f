package converter

import (
	"medichain-backend/internal/delivery/dto"
	"medichain-backend/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:             patient.ID,
		UserID:         patient.UserID,
		FullName:       patient.User.FullName,
		Gender:         patient.Gender,
		BloodGroup:     patient.BloodGroup,
		Allergies:      patient.Allergies,
		MedicalHistory: patient.MedicalHistory,
	}

	if patient.DateOfBirth != nil {
		response.DateOfBirth = patient.DateOfBirth.Format("2006-01-02")
	}

	return response
}
