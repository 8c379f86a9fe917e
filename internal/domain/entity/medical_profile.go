package entity

import (
	"time"
)

// MedicalProfile represents one person's emergency medical information,
// publicly reachable through the username embedded in their QR code.
type MedicalProfile struct {
	ID                 uint       `gorm:"primaryKey" json:"-"`
	Username           string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Name               string     `gorm:"type:varchar(100);not null" json:"name"`
	BloodType          string     `gorm:"type:varchar(5)" json:"blood_type,omitempty"`
	Allergy            string     `gorm:"type:text" json:"allergy,omitempty"`
	Condition          string     `gorm:"type:text" json:"condition,omitempty"`
	EmergencyContact   string     `gorm:"type:varchar(200)" json:"emergency_contact,omitempty"`
	LastCheckupDate    *time.Time `gorm:"type:date" json:"last_checkup_date,omitempty"`
	LastCheckupDetails string     `gorm:"type:text" json:"last_checkup_details,omitempty"`
	DoctorNotes        string     `gorm:"type:text" json:"doctor_notes,omitempty"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MedicalProfile) TableName() string {
	return "medical_profiles"
}

// BloodTypes lists the accepted blood type values, in form display order.
var BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
