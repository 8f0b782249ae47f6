package repository

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/stagebook/stagebook/internal/models"
)

// VenueSummary is the per-venue row of the grouped listing page.
type VenueSummary struct {
	ID               uint
	Name             string
	NumUpcomingShows int64
}

// Area groups venues sharing a city/state pair.
type Area struct {
	City   string
	State  string
	Venues []VenueSummary
}

type VenueRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewVenueRepository wires a repository to db. The now func classifies
// shows as upcoming or past; pass nil for wall-clock time.
func NewVenueRepository(db *gorm.DB, now func() time.Time) *VenueRepository {
	if now == nil {
		now = time.Now
	}
	return &VenueRepository{db: db, now: now}
}

// ListAreas returns all venues grouped by distinct city/state pairs,
// each venue annotated with its count of upcoming shows.
func (r *VenueRepository) ListAreas() ([]Area, error) {
	var areas []Area
	err := r.db.Model(&models.Venue{}).
		Distinct("city", "state").
		Order("city, state").
		Find(&areas).Error
	if err != nil {
		return nil, err
	}

	for i := range areas {
		var venues []models.Venue
		err := r.db.Where("city = ? AND state = ?", areas[i].City, areas[i].State).
			Find(&venues).Error
		if err != nil {
			return nil, err
		}

		for _, venue := range venues {
			var upcoming int64
			err := r.db.Model(&models.Show{}).
				Where("venue_id = ? AND start_time > ?", venue.ID, r.now()).
				Count(&upcoming).Error
			if err != nil {
				return nil, err
			}
			areas[i].Venues = append(areas[i].Venues, VenueSummary{
				ID:               venue.ID,
				Name:             venue.Name,
				NumUpcomingShows: upcoming,
			})
		}
	}

	return areas, nil
}

// Search matches name case-insensitively by substring. An empty term
// matches every venue.
func (r *VenueRepository) Search(term string) ([]models.Venue, error) {
	var venues []models.Venue
	pattern := "%" + strings.ToLower(term) + "%"
	err := r.db.Where("LOWER(name) LIKE ?", pattern).Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *VenueRepository) GetByID(id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.First(&venue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &venue, nil
}

// Create persists a new venue in a single transaction; on failure
// nothing is written.
func (r *VenueRepository) Create(venue *models.Venue) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(venue).Error
	})
}

// Update writes back every field of a previously loaded venue. Edits
// are full-record overwrites, not partial patches.
func (r *VenueRepository) Update(venue *models.Venue) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(venue).Error
	})
}

// Delete removes the venue. Deletion is blocked with ErrConflict while
// dependent shows exist, so a show can never dangle.
func (r *VenueRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var venue models.Venue
		if err := tx.First(&venue, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var dependents int64
		if err := tx.Model(&models.Show{}).Where("venue_id = ?", id).Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return ErrConflict
		}

		return tx.Delete(&venue).Error
	})
}
