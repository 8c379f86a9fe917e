package dto

import "time"

// CreateProfileRequest carries the registration form fields. Every
// field is optional; absent values get documented defaults (blank name
// becomes "Anonymous User", blank username is synthesized).
type CreateProfileRequest struct {
	Username           string `validate:"max=50"`
	Name               string `validate:"max=100"`
	BloodType          string `validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergy            string `validate:"max=2000"`
	Condition          string `validate:"max=2000"`
	EmergencyContact   string `validate:"max=200"`
	LastCheckupDate    string
	LastCheckupDetails string `validate:"max=2000"`
}

// UpdateCheckupRequest carries the doctor edit form fields. Checkup
// details always overwrite; doctor notes, blood type, allergy and
// condition only overwrite when non-empty.
type UpdateCheckupRequest struct {
	LastCheckupDate    string
	LastCheckupDetails string `validate:"max=2000"`
	DoctorNotes        string `validate:"max=2000"`
	BloodType          string `validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergy            string `validate:"max=2000"`
	Condition          string `validate:"max=2000"`
}

// ProfileResponse is the public projection of a profile, shared by the
// HTML views and the JSON API.
type ProfileResponse struct {
	Username           string    `json:"username"`
	Name               string    `json:"name"`
	BloodType          string    `json:"blood_type,omitempty"`
	Allergy            string    `json:"allergy,omitempty"`
	Condition          string    `json:"condition,omitempty"`
	EmergencyContact   string    `json:"emergency_contact,omitempty"`
	LastCheckupDate    string    `json:"last_checkup_date,omitempty"`
	LastCheckupDetails string    `json:"last_checkup_details,omitempty"`
	DoctorNotes        string    `json:"doctor_notes,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
