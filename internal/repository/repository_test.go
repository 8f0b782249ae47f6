package repository

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/stagebook/stagebook/internal/models"
)

// testNow is the fixed instant the repositories classify shows against.
var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A pooled in-memory sqlite connection would be a separate empty
	// database, so pin the pool to one connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.Migrate(db))
	return db
}

func createVenue(t *testing.T, db *gorm.DB, name, city, state string) *models.Venue {
	t.Helper()
	venue := &models.Venue{Name: name, City: city, State: state}
	require.NoError(t, db.Create(venue).Error)
	return venue
}

func createArtist(t *testing.T, db *gorm.DB, name string) *models.Artist {
	t.Helper()
	artist := &models.Artist{Name: name, ImageLink: "https://images.example.com/" + name + ".jpg"}
	require.NoError(t, db.Create(artist).Error)
	return artist
}

func createShow(t *testing.T, db *gorm.DB, venueID, artistID uint, start time.Time) *models.Show {
	t.Helper()
	show := &models.Show{VenueID: venueID, ArtistID: artistID, StartTime: start}
	require.NoError(t, db.Create(show).Error)
	return show
}
