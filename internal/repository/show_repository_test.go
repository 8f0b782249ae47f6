package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagebook/stagebook/internal/models"
)

func TestShowPartitionByVenue(t *testing.T) {
	db := newTestDB(t)
	repo := NewShowRepository(db, fixedNow)

	venue := createVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	artist := createArtist(t, db, "Guns N Petals")

	createShow(t, db, venue.ID, artist.ID, testNow.Add(48*time.Hour))
	createShow(t, db, venue.ID, artist.ID, testNow.Add(-48*time.Hour))
	// A show starting exactly now is not upcoming.
	createShow(t, db, venue.ID, artist.ID, testNow)

	upcoming, past, err := repo.PartitionByVenue(venue.ID)
	require.NoError(t, err)
	assert.Len(t, upcoming, 1)
	assert.Len(t, past, 2)

	require.NotEmpty(t, upcoming)
	assert.Equal(t, artist.ID, upcoming[0].ArtistID)
	assert.Equal(t, "Guns N Petals", upcoming[0].ArtistName)
	assert.Equal(t, artist.ImageLink, upcoming[0].ArtistImageLink)
}

func TestShowPartitionByVenueIgnoresOtherVenues(t *testing.T) {
	db := newTestDB(t)
	repo := NewShowRepository(db, fixedNow)

	mine := createVenue(t, db, "Mine", "A", "AA")
	other := createVenue(t, db, "Other", "B", "BB")
	artist := createArtist(t, db, "Someone")
	createShow(t, db, other.ID, artist.ID, testNow.Add(time.Hour))

	upcoming, past, err := repo.PartitionByVenue(mine.ID)
	require.NoError(t, err)
	assert.Empty(t, upcoming)
	assert.Empty(t, past)
}

func TestShowPartitionByArtist(t *testing.T) {
	db := newTestDB(t)
	repo := NewShowRepository(db, fixedNow)

	venue := createVenue(t, db, "Park Square", "San Francisco", "CA")
	artist := createArtist(t, db, "The Wild Sax Band")
	createShow(t, db, venue.ID, artist.ID, testNow.Add(time.Hour))
	createShow(t, db, venue.ID, artist.ID, testNow.Add(-time.Hour))

	upcoming, past, err := repo.PartitionByArtist(artist.ID)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	require.Len(t, past, 1)
	assert.Equal(t, venue.ID, upcoming[0].VenueID)
	assert.Equal(t, "Park Square", upcoming[0].VenueName)
}

func TestShowListAllJoinsArtistAndVenue(t *testing.T) {
	db := newTestDB(t)
	repo := NewShowRepository(db, fixedNow)

	venue := createVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	artist := createArtist(t, db, "Matt Quevedo")
	start := testNow.Add(72 * time.Hour)
	createShow(t, db, venue.ID, artist.ID, start)

	listings, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, venue.ID, listings[0].VenueID)
	assert.Equal(t, "The Musical Hop", listings[0].VenueName)
	assert.Equal(t, artist.ID, listings[0].ArtistID)
	assert.Equal(t, "Matt Quevedo", listings[0].ArtistName)
	assert.Equal(t, artist.ImageLink, listings[0].ArtistImageLink)
	assert.True(t, listings[0].StartTime.Equal(start))
}

func TestShowCreatePersists(t *testing.T) {
	db := newTestDB(t)
	repo := NewShowRepository(db, fixedNow)

	venue := createVenue(t, db, "V", "A", "AA")
	artist := createArtist(t, db, "A")

	show := &models.Show{VenueID: venue.ID, ArtistID: artist.ID, StartTime: testNow.Add(time.Hour)}
	require.NoError(t, repo.Create(show))
	assert.NotZero(t, show.ID)
}

func TestShowCreateRejectsMissingArtist(t *testing.T) {
	db := newTestDB(t)
	repo := NewShowRepository(db, fixedNow)

	venue := createVenue(t, db, "V", "A", "AA")

	show := &models.Show{VenueID: venue.ID, ArtistID: 99, StartTime: testNow.Add(time.Hour)}
	assert.ErrorIs(t, repo.Create(show), ErrConflict)

	// Nothing was written.
	var count int64
	require.NoError(t, db.Model(&models.Show{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestShowCreateRejectsMissingVenue(t *testing.T) {
	db := newTestDB(t)
	repo := NewShowRepository(db, fixedNow)

	artist := createArtist(t, db, "A")

	show := &models.Show{VenueID: 99, ArtistID: artist.ID, StartTime: testNow.Add(time.Hour)}
	assert.ErrorIs(t, repo.Create(show), ErrConflict)
}
