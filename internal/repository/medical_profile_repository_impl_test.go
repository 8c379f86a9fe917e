package repository

import (
	"context"
	"path/filepath"
	"testing"

	"medical-profile-qr/internal/domain/entity"

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

func TestMedicalProfileRepository_FindByUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMedicalProfileRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, db, &entity.MedicalProfile{
		Username: "jane",
		Name:     "Jane Doe",
	}))

	profile, err := repo.FindByUsername(ctx, db, "jane")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Jane Doe", profile.Name)

	// Lookups are exact; stored usernames are already normalized.
	profile, err = repo.FindByUsername(ctx, db, "Jane")
	require.NoError(t, err)
	assert.Nil(t, profile)

	profile, err = repo.FindByUsername(ctx, db, "missing")
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestMedicalProfileRepository_ExistsByUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMedicalProfileRepository()
	ctx := context.Background()

	exists, err := repo.ExistsByUsername(ctx, db, "jane")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, db, &entity.MedicalProfile{
		Username: "jane",
		Name:     "Jane Doe",
	}))

	exists, err = repo.ExistsByUsername(ctx, db, "jane")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMedicalProfileRepository_DuplicateUsernameRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMedicalProfileRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, db, &entity.MedicalProfile{Username: "jane", Name: "First"}))

	err := repo.Create(ctx, db, &entity.MedicalProfile{Username: "jane", Name: "Second"})
	assert.Error(t, err, "unique index on username is the backstop for the resolver race")
}
