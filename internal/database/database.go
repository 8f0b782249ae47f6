package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/stagebook/stagebook/internal/config"
	"github.com/stagebook/stagebook/internal/models"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Run migrations
	if err := models.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func SeedData(db *gorm.DB) error {
	// Check if data already exists
	var count int64
	db.Model(&models.Venue{}).Count(&count)
	if count > 0 {
		return nil
	}

	venues := []models.Venue{
		{
			Name:               "The Musical Hop",
			City:               "San Francisco",
			State:              "CA",
			Address:            "1015 Folsom Street",
			Phone:              "123-123-1234",
			Genres:             models.Genres{"Jazz", "Reggae", "Classical", "Folk"},
			Website:            "https://www.themusicalhop.com",
			FacebookLink:       "https://www.facebook.com/TheMusicalHop",
			SeekingTalent:      true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
			ImageLink:          "https://images.example.com/musical-hop.jpg",
		},
		{
			Name:         "Park Square Live Music & Coffee",
			City:         "San Francisco",
			State:        "CA",
			Address:      "34 Whiskey Moore Ave",
			Phone:        "415-000-1234",
			Genres:       models.Genres{"Rock n Roll", "Jazz", "Classical", "Folk"},
			Website:      "https://www.parksquarelivemusicandcoffee.com",
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			ImageLink:    "https://images.example.com/park-square.jpg",
		},
		{
			Name:         "The Dueling Pianos Bar",
			City:         "New York",
			State:        "NY",
			Address:      "335 Delancey Street",
			Phone:        "914-003-1132",
			Genres:       models.Genres{"Classical", "R&B", "Hip-Hop"},
			Website:      "https://www.theduelingpianos.com",
			FacebookLink: "https://www.facebook.com/theduelingpianos",
			ImageLink:    "https://images.example.com/dueling-pianos.jpg",
		},
	}

	for i := range venues {
		if err := db.Create(&venues[i]).Error; err != nil {
			return fmt.Errorf("failed to create venue: %w", err)
		}
	}

	artists := []models.Artist{
		{
			Name:               "Guns N Petals",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "326-123-5000",
			Genres:             models.Genres{"Rock n Roll"},
			Website:            "https://www.gunsnpetalsband.com",
			FacebookLink:       "https://www.facebook.com/GunsNPetals",
			SeekingVenue:       true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
			ImageLink:          "https://images.example.com/guns-n-petals.jpg",
		},
		{
			Name:      "Matt Quevedo",
			City:      "New York",
			State:     "NY",
			Phone:     "300-400-5000",
			Genres:    models.Genres{"Jazz"},
			ImageLink: "https://images.example.com/matt-quevedo.jpg",
		},
		{
			Name:      "The Wild Sax Band",
			City:      "San Francisco",
			State:     "CA",
			Phone:     "432-325-5432",
			Genres:    models.Genres{"Jazz", "Classical"},
			ImageLink: "https://images.example.com/wild-sax-band.jpg",
		},
	}

	for i := range artists {
		if err := db.Create(&artists[i]).Error; err != nil {
			return fmt.Errorf("failed to create artist: %w", err)
		}
	}

	shows := []models.Show{
		{VenueID: venues[0].ID, ArtistID: artists[0].ID, StartTime: parseDate("2019-05-21T21:30:00Z")},
		{VenueID: venues[1].ID, ArtistID: artists[1].ID, StartTime: parseDate("2019-06-15T23:00:00Z")},
		{VenueID: venues[1].ID, ArtistID: artists[2].ID, StartTime: parseDate("2035-04-01T20:00:00Z")},
		{VenueID: venues[1].ID, ArtistID: artists[2].ID, StartTime: parseDate("2035-04-08T20:00:00Z")},
		{VenueID: venues[1].ID, ArtistID: artists[2].ID, StartTime: parseDate("2035-04-15T20:00:00Z")},
	}

	for i := range shows {
		if err := db.Create(&shows[i]).Error; err != nil {
			return fmt.Errorf("failed to create show: %w", err)
		}
	}

	return nil
}

func parseDate(dateStr string) time.Time {
	t, _ := time.Parse(time.RFC3339, dateStr)
	return t
}
