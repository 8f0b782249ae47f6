package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/stagebook/stagebook/internal/models"
)

// ShowListing is a flat row of the shows page, joined with artist and
// venue names.
type ShowListing struct {
	VenueID         uint
	VenueName       string
	ArtistID        uint
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// VenueShow is one show on a venue detail page, resolved to its artist.
type VenueShow struct {
	ArtistID        uint
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ArtistShow is one show on an artist detail page, resolved to its venue.
type ArtistShow struct {
	VenueID        uint
	VenueName      string
	VenueImageLink string
	StartTime      time.Time
}

type ShowRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewShowRepository wires a repository to db. The now func classifies
// shows as upcoming or past; pass nil for wall-clock time.
func NewShowRepository(db *gorm.DB, now func() time.Time) *ShowRepository {
	if now == nil {
		now = time.Now
	}
	return &ShowRepository{db: db, now: now}
}

// ListAll returns every show joined with its artist and venue.
func (r *ShowRepository) ListAll() ([]ShowListing, error) {
	var listings []ShowListing
	err := r.db.Model(&models.Show{}).
		Select("shows.venue_id, venues.name AS venue_name, shows.artist_id, artists.name AS artist_name, artists.image_link AS artist_image_link, shows.start_time").
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Order("shows.id").
		Scan(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// PartitionByVenue splits a venue's shows into upcoming (start_time
// strictly after now) and past, each resolved to its artist.
func (r *ShowRepository) PartitionByVenue(venueID uint) (upcoming, past []VenueShow, err error) {
	var shows []VenueShow
	err = r.db.Model(&models.Show{}).
		Select("shows.artist_id, artists.name AS artist_name, artists.image_link AS artist_image_link, shows.start_time").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Where("shows.venue_id = ?", venueID).
		Order("shows.start_time").
		Scan(&shows).Error
	if err != nil {
		return nil, nil, err
	}

	now := r.now()
	for _, show := range shows {
		if show.StartTime.After(now) {
			upcoming = append(upcoming, show)
		} else {
			past = append(past, show)
		}
	}
	return upcoming, past, nil
}

// PartitionByArtist splits an artist's shows into upcoming and past,
// each resolved to its venue.
func (r *ShowRepository) PartitionByArtist(artistID uint) (upcoming, past []ArtistShow, err error) {
	var shows []ArtistShow
	err = r.db.Model(&models.Show{}).
		Select("shows.venue_id, venues.name AS venue_name, venues.image_link AS venue_image_link, shows.start_time").
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Where("shows.artist_id = ?", artistID).
		Order("shows.start_time").
		Scan(&shows).Error
	if err != nil {
		return nil, nil, err
	}

	now := r.now()
	for _, show := range shows {
		if show.StartTime.After(now) {
			upcoming = append(upcoming, show)
		} else {
			past = append(past, show)
		}
	}
	return upcoming, past, nil
}

// Create persists a new show in a single transaction. Both referenced
// rows must exist; a dangling reference fails with ErrConflict before
// anything is written.
func (r *ShowRepository) Create(show *models.Show) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var artist models.Artist
		if err := tx.First(&artist, show.ArtistID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrConflict
			}
			return err
		}

		var venue models.Venue
		if err := tx.First(&venue, show.VenueID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrConflict
			}
			return err
		}

		return tx.Create(show).Error
	})
}
