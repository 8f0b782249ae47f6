package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/stagebook/stagebook/internal/models"
)

type ArtistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

// ListAll returns every artist in primary-key order.
func (r *ArtistRepository) ListAll() ([]models.Artist, error) {
	var artists []models.Artist
	if err := r.db.Order("id").Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

// Search matches name case-insensitively by substring. An empty term
// matches every artist.
func (r *ArtistRepository) Search(term string) ([]models.Artist, error) {
	var artists []models.Artist
	pattern := "%" + strings.ToLower(term) + "%"
	err := r.db.Where("LOWER(name) LIKE ?", pattern).Find(&artists).Error
	if err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *ArtistRepository) GetByID(id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.First(&artist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &artist, nil
}

func (r *ArtistRepository) Create(artist *models.Artist) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(artist).Error
	})
}

// Update writes back every field of a previously loaded artist.
func (r *ArtistRepository) Update(artist *models.Artist) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(artist).Error
	})
}
