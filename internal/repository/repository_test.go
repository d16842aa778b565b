package repository

import (
	"context"
	"fmt"
	"testing"

	"ideaboard/internal/database"
	"ideaboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var dbCounter int

// setupDB opens a fresh in-memory SQLite database with FK enforcement on.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbCounter++
	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared&_foreign_keys=on", dbCounter)
	db, err := database.ConnectSQLite(dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Test User", Email: email}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func TestUserCreateAndGet(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	bio := "Building things"
	user := &models.User{
		Name:   "Ada Lovelace",
		Email:  "ada@example.com",
		Bio:    &bio,
		Skills: datatypes.JSONSlice[string]{"Math", "Go"},
	}
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.Name)
	assert.Equal(t, datatypes.JSONSlice[string]{"Math", "Go"}, got.Skills)
	require.NotNil(t, got.Bio)
	assert.Equal(t, "Building things", *got.Bio)
}

func TestUserDuplicateEmailConflict(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createUser(t, db, "dup@example.com")

	err := repo.Create(ctx, &models.User{Name: "Other", Email: "dup@example.com"})
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestUserGetByIDNotFound(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), 12345)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestUserSkillsNeverNull(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Name: "No Skills", Email: "none@example.com"}
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Skills)
	assert.Empty(t, got.Skills)
}

func TestUserUpdateFields(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createUser(t, db, "update@example.com")

	updated, err := repo.UpdateFields(ctx, user.ID, map[string]any{
		"name": "New Name",
		"bio":  "New bio",
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "New bio", *updated.Bio)

	// Partial update leaves other columns untouched.
	updated, err = repo.UpdateFields(ctx, user.ID, map[string]any{
		"skills": datatypes.JSONSlice[string]{"Go"},
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, datatypes.JSONSlice[string]{"Go"}, updated.Skills)

	// Explicit nil clears the bio.
	updated, err = repo.UpdateFields(ctx, user.ID, map[string]any{"bio": nil})
	require.NoError(t, err)
	assert.Nil(t, updated.Bio)
}

func TestUserUpdateFieldsEmptyIsARead(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createUser(t, db, "noop@example.com")

	got, err := repo.UpdateFields(ctx, user.ID, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = repo.UpdateFields(ctx, 9999, map[string]any{})
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestUserUpdateFieldsUnknownID(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	_, err := repo.UpdateFields(context.Background(), 9999, map[string]any{"name": "Ghost"})
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestIdeaCreateTranslatesMissingOwner(t *testing.T) {
	db := setupDB(t)
	repo := NewIdeaRepository(db)

	err := repo.Create(context.Background(), &models.Idea{
		Title:            "Orphan",
		Description:      "No such owner",
		OwnerID:          777,
		DevelopmentStage: models.StageConcept,
	})
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.Contains(t, appErr.Message, "User with id 777 not found")
}

func TestIdeaPriceRoundTrip(t *testing.T) {
	db := setupDB(t)
	repo := NewIdeaRepository(db)
	ctx := context.Background()

	owner := createUser(t, db, "seller@example.com")

	forSale := true
	reasoning := "Includes a working prototype"
	price := models.NewPrice(1499.90)
	idea := &models.Idea{
		Title:            "For sale",
		Description:      "A priced idea",
		OwnerID:          owner.ID,
		DevelopmentStage: models.StagePrototype,
		IsForSale:        &forSale,
		Price:            &price,
		PriceReasoning:   &reasoning,
	}
	require.NoError(t, repo.Create(ctx, idea))

	got, err := repo.GetByID(ctx, idea.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Price)
	assert.Equal(t, "1499.90", got.Price.String())
	require.NotNil(t, got.IsForSale)
	assert.True(t, *got.IsForSale)
}

func TestIdeaExplicitNotForSale(t *testing.T) {
	db := setupDB(t)
	repo := NewIdeaRepository(db)
	ctx := context.Background()

	owner := createUser(t, db, "keeper@example.com")

	notForSale := false
	idea := &models.Idea{
		Title:            "Keeping it",
		Description:      "Explicitly not for sale",
		OwnerID:          owner.ID,
		DevelopmentStage: models.StageMVP,
		IsForSale:        &notForSale,
	}
	require.NoError(t, repo.Create(ctx, idea))

	got, err := repo.GetByID(ctx, idea.ID)
	require.NoError(t, err)
	require.NotNil(t, got.IsForSale)
	assert.False(t, *got.IsForSale)
	assert.Nil(t, got.Price)
}

func TestIdeaListEmpty(t *testing.T) {
	db := setupDB(t)
	repo := NewIdeaRepository(db)

	ideas, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ideas)
}

func TestIdeaListReturnsAll(t *testing.T) {
	db := setupDB(t)
	repo := NewIdeaRepository(db)
	ctx := context.Background()

	owner := createUser(t, db, "prolific@example.com")
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &models.Idea{
			Title:            fmt.Sprintf("Idea %d", i),
			Description:      "One of several",
			OwnerID:          owner.ID,
			DevelopmentStage: models.StageConcept,
		}))
	}

	ideas, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, ideas, 3)
}

func TestRoleCreateTranslatesMissingIdea(t *testing.T) {
	db := setupDB(t)
	repo := NewRoleRepository(db)

	err := repo.Create(context.Background(), &models.Role{
		IdeaID:           555,
		Title:            "Ghost role",
		Description:      "Attached to nothing",
		CompensationType: models.CompensationVolunteer,
	})
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.Contains(t, appErr.Message, "Idea with id 555 not found")
}

func TestFullChainPersists(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	userRepo := NewUserRepository(db)
	ideaRepo := NewIdeaRepository(db)
	roleRepo := NewRoleRepository(db)
	appRepo := NewApplicationRepository(db)

	owner := createUser(t, db, "founder@example.com")
	applicant := createUser(t, db, "joiner@example.com")

	idea := &models.Idea{
		Title:            "Marketplace",
		Description:      "Connect founders and builders",
		OwnerID:          owner.ID,
		DevelopmentStage: models.StageLaunched,
	}
	require.NoError(t, ideaRepo.Create(ctx, idea))

	role := &models.Role{
		IdeaID:           idea.ID,
		Title:            "Designer",
		Description:      "Own the product design",
		CompensationType: models.CompensationCompensated,
	}
	require.NoError(t, roleRepo.Create(ctx, role))

	application := &models.Application{
		RoleID:      role.ID,
		ApplicantID: applicant.ID,
		Motivation:  "Ten years of design experience",
		Status:      models.StatusPending,
	}
	require.NoError(t, appRepo.Create(ctx, application))

	got, err := appRepo.GetByID(ctx, application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Equal(t, role.ID, got.RoleID)
	assert.Equal(t, applicant.ID, got.ApplicantID)

	_, err = userRepo.GetByID(ctx, owner.ID)
	require.NoError(t, err)
}
