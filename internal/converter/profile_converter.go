package converter

import (
	"medical-profile-qr/internal/delivery/dto"
	"medical-profile-qr/internal/domain/entity"
)

// ProfileToResponse converts a MedicalProfile entity to its public DTO
func ProfileToResponse(profile *entity.MedicalProfile) *dto.ProfileResponse {
	if profile == nil {
		return nil
	}

	checkupDate := ""
	if profile.LastCheckupDate != nil {
		checkupDate = profile.LastCheckupDate.Format("2006-01-02")
	}

	return &dto.ProfileResponse{
		Username:           profile.Username,
		Name:               profile.Name,
		BloodType:          profile.BloodType,
		Allergy:            profile.Allergy,
		Condition:          profile.Condition,
		EmergencyContact:   profile.EmergencyContact,
		LastCheckupDate:    checkupDate,
		LastCheckupDetails: profile.LastCheckupDetails,
		DoctorNotes:        profile.DoctorNotes,
		CreatedAt:          profile.CreatedAt,
		UpdatedAt:          profile.UpdatedAt,
	}
}
