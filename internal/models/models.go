package models

import (
	"time"

	"gorm.io/gorm"
)

type Venue struct {
	gorm.Model
	Name               string `gorm:"not null"` // required
	City               string
	State              string
	Address            string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Genres             Genres `gorm:"type:text"`
	Website            string
	SeekingTalent      bool
	SeekingDescription string

	// Relationships
	Shows []Show `gorm:"foreignKey:VenueID"`
}

type Artist struct {
	gorm.Model
	Name               string `gorm:"not null"` // required
	City               string
	State              string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Genres             Genres `gorm:"type:text"`
	Website            string
	SeekingVenue       bool
	SeekingDescription string

	// Relationships
	Shows []Show `gorm:"foreignKey:ArtistID"`
}

// Show is a fact record linking one venue, one artist and a start time.
// It is never edited or deleted once created; upcoming vs past is derived
// at query time from StartTime.
type Show struct {
	gorm.Model
	VenueID   uint      `gorm:"not null"`
	ArtistID  uint      `gorm:"not null"`
	StartTime time.Time `gorm:"not null"`

	// Relationships
	Venue  Venue  `gorm:"foreignKey:VenueID"`
	Artist Artist `gorm:"foreignKey:ArtistID"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Venue{},
		&Artist{},
		&Show{},
	)
}
