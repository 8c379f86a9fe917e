package repository

import (
	"context"

	"medical-profile-qr/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicalProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *entity.MedicalProfile) error
	FindByUsername(ctx context.Context, db *gorm.DB, username string) (*entity.MedicalProfile, error)
	ExistsByUsername(ctx context.Context, db *gorm.DB, username string) (bool, error)
	Update(ctx context.Context, db *gorm.DB, profile *entity.MedicalProfile) error
}
