package repository

import (
	"context"
	"errors"

	"medical-profile-qr/internal/domain/entity"
	domainRepo "medical-profile-qr/internal/domain/repository"

	"gorm.io/gorm"
)

type medicalProfileRepository struct{}

func NewMedicalProfileRepository() domainRepo.MedicalProfileRepository {
	return &medicalProfileRepository{}
}

func (r *medicalProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *entity.MedicalProfile) error {
	return db.WithContext(ctx).Create(profile).Error
}

func (r *medicalProfileRepository) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*entity.MedicalProfile, error) {
	var profile entity.MedicalProfile
	err := db.WithContext(ctx).Where("username = ?", username).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *medicalProfileRepository) ExistsByUsername(ctx context.Context, db *gorm.DB, username string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.MedicalProfile{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *medicalProfileRepository) Update(ctx context.Context, db *gorm.DB, profile *entity.MedicalProfile) error {
	return db.WithContext(ctx).Save(profile).Error
}
