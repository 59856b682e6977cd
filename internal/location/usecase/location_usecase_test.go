package usecase

import (
	"testing"

	"safeguardian-backend/internal/location/domain"
	"safeguardian-backend/internal/location/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLocationUsecase(t *testing.T) LocationUsecase {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Location{}))
	return NewLocationUsecase(repository.NewLocationRepository(db))
}

func ptr(v float64) *float64 { return &v }

func TestRecordLocationValidation(t *testing.T) {
	uc := newLocationUsecase(t)

	for _, req := range []*RecordLocationRequest{
		{Latitude: ptr(91), Longitude: ptr(0)},
		{Latitude: ptr(0), Longitude: ptr(-181)},
		{Longitude: ptr(0)},
		{Latitude: ptr(0)},
	} {
		_, err := uc.RecordLocation("owner-1", req)
		assert.ErrorIs(t, err, ErrInvalidCoordinates)
	}

	loc, err := uc.RecordLocation("owner-1", &RecordLocationRequest{
		Latitude:  ptr(48.8566),
		Longitude: ptr(2.3522),
		Accuracy:  ptr(4.5),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, loc.ID)
	require.NotNil(t, loc.Accuracy)
	assert.Equal(t, 4.5, *loc.Accuracy)
	assert.Nil(t, loc.Altitude)
}

func TestHistoryNewestFirstWithLimit(t *testing.T) {
	uc := newLocationUsecase(t)

	for i := 0; i < 5; i++ {
		_, err := uc.RecordLocation("owner-1", &RecordLocationRequest{
			Latitude:  ptr(float64(i)),
			Longitude: ptr(0),
		})
		require.NoError(t, err)
	}

	history, err := uc.History("owner-1", 3)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, 4.0, history[0].Latitude)
	assert.Equal(t, 2.0, history[2].Latitude)

	// Out-of-range limits fall back to the default.
	history, err = uc.History("owner-1", -1)
	require.NoError(t, err)
	assert.Len(t, history, 5)
}

func TestLast(t *testing.T) {
	uc := newLocationUsecase(t)

	_, err := uc.Last("owner-1")
	assert.ErrorIs(t, err, ErrNoLocation)

	_, err = uc.RecordLocation("owner-1", &RecordLocationRequest{Latitude: ptr(1), Longitude: ptr(1)})
	require.NoError(t, err)
	latest, err := uc.RecordLocation("owner-1", &RecordLocationRequest{Latitude: ptr(2), Longitude: ptr(2)})
	require.NoError(t, err)

	got, err := uc.Last("owner-1")
	require.NoError(t, err)
	assert.Equal(t, latest.ID, got.ID)

	// Scoped per user.
	_, err = uc.Last("owner-2")
	assert.ErrorIs(t, err, ErrNoLocation)
}
