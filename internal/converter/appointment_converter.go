package converter

import (
	"medichain-backend/internal/delivery/dto"
	"medichain-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to its DTO.
// Counterparty blocks are attached only when the relation rows were
// preloaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		AppointmentDate: appointment.AppointmentDate,
		Status:          string(appointment.Status),
		Symptoms:        appointment.Symptoms,
		Description:     appointment.Description,
		ConsultationFee: appointment.ConsultationFee.StringFixed(2),
		PaymentStatus:   string(appointment.PaymentStatus),
		TransactionHash: appointment.TransactionHash,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	if appointment.Doctor.ID != uuid.Nil {
		response.Doctor = &dto.AppointmentDoctorInfo{
			FullName:       appointment.Doctor.User.FullName,
			WalletAddress:  appointment.Doctor.User.WalletAddress,
			Specialization: appointment.Doctor.Specialization,
		}
	}

	if appointment.Patient.ID != uuid.Nil {
		response.Patient = &dto.AppointmentPatientInfo{
			FullName:   appointment.Patient.User.FullName,
			Gender:     appointment.Patient.Gender,
			BloodGroup: appointment.Patient.BloodGroup,
		}
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
