package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"fixnow/internal/database"
	"fixnow/internal/domain"
)

func setupProfessionalRepo(t *testing.T) *ProfessionalRepository {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewProfessionalRepository(db)
}

// A profile update carrying a stale struct must not revert the derived
// rating columns or the verification status written concurrently.
func TestProfessionalUpdate_PreservesDerivedColumns(t *testing.T) {
	repo := setupProfessionalRepo(t)
	ctx := context.Background()

	p := &domain.Professional{
		UserID:             10,
		BusinessName:       "Pat's Plumbing",
		ServiceIDs:         []int64{1},
		VerificationStatus: domain.VerificationPending,
		IsActive:           true,
	}
	require.NoError(t, repo.Create(ctx, p))

	// Loaded before the rating and verification writes land.
	stale, err := repo.GetByUserID(ctx, 10)
	require.NoError(t, err)

	require.NoError(t, repo.SetRating(ctx, p.ID, 4.5, 9))
	require.NoError(t, repo.UpdateVerificationStatus(ctx, p.ID, domain.VerificationVerified))

	stale.BusinessName = "Pat's Plumbing & Heating"
	require.NoError(t, repo.Update(ctx, stale))

	after, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "Pat's Plumbing & Heating", after.BusinessName)
	require.Equal(t, 4.5, after.Rating)
	require.Equal(t, 9, after.ReviewCount)
	require.Equal(t, domain.VerificationVerified, after.VerificationStatus)
}

func TestProfessionalSetRating_WritesDerivedColumns(t *testing.T) {
	repo := setupProfessionalRepo(t)
	ctx := context.Background()

	p := &domain.Professional{UserID: 11, BusinessName: "Wiring Co", ServiceIDs: []int64{2}}
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, repo.SetRating(ctx, p.ID, 3.7, 12))

	after, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 3.7, after.Rating)
	require.Equal(t, 12, after.ReviewCount)
}
