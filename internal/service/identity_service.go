package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"medical-profile-qr/internal/domain/repository"

	"gorm.io/gorm"
)

type IdentityService interface {
	Resolve(ctx context.Context, db *gorm.DB, raw string, now time.Time) (string, error)
}

type identityService struct {
	profileRepo repository.MedicalProfileRepository
}

func NewIdentityService(profileRepo repository.MedicalProfileRepository) IdentityService {
	return &identityService{
		profileRepo: profileRepo,
	}
}

// Resolve derives the storage username for a new profile: trimmed,
// lowercased, synthesized from the clock when empty, and suffixed with
// a timestamp when the name is already taken. The suffixed candidate is
// not re-checked; the unique index on username is the backstop, and a
// violation surfaces to the caller as a plain creation error.
func (s *identityService) Resolve(ctx context.Context, db *gorm.DB, raw string, now time.Time) (string, error) {
	username := strings.ToLower(strings.TrimSpace(raw))
	if username == "" {
		username = fmt.Sprintf("profile_%d", now.Unix())
	}

	exists, err := s.profileRepo.ExistsByUsername(ctx, db, username)
	if err != nil {
		return "", err
	}
	if exists {
		username = fmt.Sprintf("%s_%d", username, now.Unix())
	}

	return username, nil
}
