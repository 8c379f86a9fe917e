package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"medical-profile-qr/internal/domain/entity"
	"medical-profile-qr/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.MedicalProfile{}))

	return db
}

func TestIdentityService_Resolve(t *testing.T) {
	now := time.Unix(1700000000, 0)

	tests := []struct {
		name     string
		existing []string
		raw      string
		expected string
	}{
		{
			name:     "trims and lowercases",
			raw:      "  Jane.Doe  ",
			expected: "jane.doe",
		},
		{
			name:     "synthesizes when empty",
			raw:      "",
			expected: fmt.Sprintf("profile_%d", now.Unix()),
		},
		{
			name:     "synthesizes when whitespace only",
			raw:      "   ",
			expected: fmt.Sprintf("profile_%d", now.Unix()),
		},
		{
			name:     "suffixes on collision",
			existing: []string{"jane"},
			raw:      "Jane",
			expected: fmt.Sprintf("jane_%d", now.Unix()),
		},
		{
			name:     "no suffix without collision",
			existing: []string{"john"},
			raw:      "jane",
			expected: "jane",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			for _, username := range tt.existing {
				require.NoError(t, db.Create(&entity.MedicalProfile{
					Username: username,
					Name:     "Seeded",
				}).Error)
			}

			identityService := NewIdentityService(repository.NewMedicalProfileRepository())

			username, err := identityService.Resolve(context.Background(), db, tt.raw, now)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, username)
		})
	}
}
