package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"medical-profile-qr/internal/delivery/dto"
	"medical-profile-qr/internal/domain/entity"
	"medical-profile-qr/internal/domain/repository"
	"medical-profile-qr/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound = errors.New("medical profile not found")
	// ErrProfileCorrupted marks an unexpected storage failure during a
	// read; handlers render it as a server error, not a missing page.
	ErrProfileCorrupted = errors.New("medical profile data corrupted")
)

const defaultProfileName = "Anonymous User"

type MedicalProfileUsecase interface {
	Create(ctx context.Context, req *dto.CreateProfileRequest) (string, error)
	Get(ctx context.Context, username string) (*entity.MedicalProfile, error)
	UpdateCheckup(ctx context.Context, username string, req *dto.UpdateCheckupRequest) error
}

type medicalProfileUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	profileRepo     repository.MedicalProfileRepository
	identityService service.IdentityService
}

func NewMedicalProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	profileRepo repository.MedicalProfileRepository,
	identityService service.IdentityService,
) MedicalProfileUsecase {
	return &medicalProfileUsecase{
		db:              db,
		log:             log,
		profileRepo:     profileRepo,
		identityService: identityService,
	}
}

// Create registers a new profile and returns the assigned username.
// Username resolution and the insert share one transaction, so a failed
// insert leaves no partial record behind.
func (u *medicalProfileUsecase) Create(ctx context.Context, req *dto.CreateProfileRequest) (string, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	username, err := u.identityService.Resolve(ctx, tx, req.Username, time.Now())
	if err != nil {
		u.log.Warnf("Failed to resolve username: %+v", err)
		return "", err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = defaultProfileName
	}

	profile := &entity.MedicalProfile{
		Username:           username,
		Name:               name,
		BloodType:          req.BloodType,
		Allergy:            strings.TrimSpace(req.Allergy),
		Condition:          strings.TrimSpace(req.Condition),
		EmergencyContact:   strings.TrimSpace(req.EmergencyContact),
		LastCheckupDate:    parseCheckupDate(req.LastCheckupDate),
		LastCheckupDetails: strings.TrimSpace(req.LastCheckupDetails),
	}

	if err := u.profileRepo.Create(ctx, tx, profile); err != nil {
		u.log.Warnf("Failed to create profile for %s: %+v", username, err)
		return "", err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit profile creation for %s: %+v", username, err)
		return "", err
	}

	u.log.Infof("Profile created successfully for user: %s", username)
	return username, nil
}

// Get looks up a profile by its exact stored username.
func (u *medicalProfileUsecase) Get(ctx context.Context, username string) (*entity.MedicalProfile, error) {
	profile, err := u.profileRepo.FindByUsername(ctx, u.db, username)
	if err != nil {
		u.log.Warnf("Failed to load profile for %s: %+v", username, err)
		return nil, ErrProfileCorrupted
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// UpdateCheckup applies the doctor edit form to an existing profile.
//
// Checkup date and details are always overwritten (an unparseable date
// stores as absent). Doctor notes, blood type, allergy and condition
// keep their stored value when the submitted one is blank.
func (u *medicalProfileUsecase) UpdateCheckup(ctx context.Context, username string, req *dto.UpdateCheckupRequest) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.profileRepo.FindByUsername(ctx, tx, username)
	if err != nil {
		u.log.Warnf("Failed to load profile for %s: %+v", username, err)
		return err
	}
	if profile == nil {
		return ErrProfileNotFound
	}

	profile.LastCheckupDate = parseCheckupDate(req.LastCheckupDate)
	profile.LastCheckupDetails = strings.TrimSpace(req.LastCheckupDetails)

	if notes := strings.TrimSpace(req.DoctorNotes); notes != "" {
		profile.DoctorNotes = notes
	}
	if bloodType := strings.TrimSpace(req.BloodType); bloodType != "" {
		profile.BloodType = bloodType
	}
	if allergy := strings.TrimSpace(req.Allergy); allergy != "" {
		profile.Allergy = allergy
	}
	if condition := strings.TrimSpace(req.Condition); condition != "" {
		profile.Condition = condition
	}

	if err := u.profileRepo.Update(ctx, tx, profile); err != nil {
		u.log.Warnf("Failed to update checkup for %s: %+v", username, err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit checkup update for %s: %+v", username, err)
		return err
	}

	u.log.Infof("Checkup updated for user: %s", username)
	return nil
}

// parseCheckupDate parses an ISO calendar date, treating anything
// unparseable as absent rather than an error.
func parseCheckupDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &date
}
