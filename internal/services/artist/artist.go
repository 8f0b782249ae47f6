package artist

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stagebook/stagebook/internal/flash"
	"github.com/stagebook/stagebook/internal/models"
	"github.com/stagebook/stagebook/internal/repository"
	"github.com/stagebook/stagebook/internal/web"
)

type Service struct {
	artists *repository.ArtistRepository
	shows   *repository.ShowRepository
	flash   *flash.Store
	logger  *zap.SugaredLogger
}

func NewService(artists *repository.ArtistRepository, shows *repository.ShowRepository, flashStore *flash.Store, logger *zap.SugaredLogger) *Service {
	return &Service{artists: artists, shows: shows, flash: flashStore, logger: logger}
}

func (s *Service) SetupRoutes(r *gin.Engine) {
	r.GET("/artists", s.List)
	r.POST("/artists/search", s.Search)
	r.GET("/artists/create", s.CreateForm)
	r.POST("/artists/create", s.Create)
	r.GET("/artists/:id", s.Detail)
	r.GET("/artists/:id/edit", s.EditForm)
	r.POST("/artists/:id/edit", s.Edit)
}

// Form carries the editable artist fields. The seeking flag is a
// checkbox, so presence of the field means true.
type Form struct {
	Name               string   `form:"name" binding:"required"`
	City               string   `form:"city" binding:"required"`
	State              string   `form:"state" binding:"required"`
	Phone              string   `form:"phone"`
	Genres             []string `form:"genres"`
	ImageLink          string   `form:"image_link"`
	FacebookLink       string   `form:"facebook_link"`
	Website            string   `form:"website_link"`
	SeekingVenue       string   `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description"`
}

func formFromArtist(artist *models.Artist) Form {
	form := Form{
		Name:               artist.Name,
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Genres:             artist.Genres,
		ImageLink:          artist.ImageLink,
		FacebookLink:       artist.FacebookLink,
		Website:            artist.Website,
		SeekingDescription: artist.SeekingDescription,
	}
	if artist.SeekingVenue {
		form.SeekingVenue = "y"
	}
	return form
}

func (f Form) apply(artist *models.Artist) {
	artist.Name = f.Name
	artist.City = f.City
	artist.State = f.State
	artist.Phone = f.Phone
	artist.Genres = f.Genres
	artist.ImageLink = f.ImageLink
	artist.FacebookLink = f.FacebookLink
	artist.Website = f.Website
	artist.SeekingVenue = f.SeekingVenue != ""
	artist.SeekingDescription = f.SeekingDescription
}

func (s *Service) List(c *gin.Context) {
	artists, err := s.artists.ListAll()
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "artists.html", gin.H{
		"Artists": artists,
		"Flashes": s.flash.Messages(c),
	})
}

func (s *Service) Search(c *gin.Context) {
	term := c.PostForm("search_term")
	results, err := s.artists.Search(term)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "search_artists.html", gin.H{
		"Count":      len(results),
		"Results":    results,
		"SearchTerm": term,
		"Flashes":    s.flash.Messages(c),
	})
}

func (s *Service) Detail(c *gin.Context) {
	artist, ok := s.lookup(c)
	if !ok {
		return
	}

	upcoming, past, err := s.shows.PartitionByArtist(artist.ID)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "show_artist.html", gin.H{
		"Artist":             artist,
		"UpcomingShows":      upcoming,
		"PastShows":          past,
		"UpcomingShowsCount": len(upcoming),
		"PastShowsCount":     len(past),
		"Flashes":            s.flash.Messages(c),
	})
}

func (s *Service) CreateForm(c *gin.Context) {
	s.renderForm(c, http.StatusOK, "new_artist.html", Form{}, nil)
}

func (s *Service) Create(c *gin.Context) {
	var form Form
	if err := c.ShouldBind(&form); err != nil {
		for _, msg := range web.ValidationMessages(err) {
			s.flash.Flash(c, msg)
		}
		s.renderForm(c, http.StatusBadRequest, "new_artist.html", form, nil)
		return
	}

	var artist models.Artist
	form.apply(&artist)

	if err := s.artists.Create(&artist); err != nil {
		s.logger.Errorw("artist not created", "error", err)
		s.flash.Flash(c, fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
		s.renderForm(c, http.StatusInternalServerError, "new_artist.html", form, nil)
		return
	}

	s.flash.Flash(c, fmt.Sprintf("Artist %s was successfully listed!", artist.Name))
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/artists/%d", artist.ID))
}

func (s *Service) EditForm(c *gin.Context) {
	artist, ok := s.lookup(c)
	if !ok {
		return
	}
	s.renderForm(c, http.StatusOK, "edit_artist.html", formFromArtist(artist), artist)
}

func (s *Service) Edit(c *gin.Context) {
	artist, ok := s.lookup(c)
	if !ok {
		return
	}

	var form Form
	if err := c.ShouldBind(&form); err != nil {
		for _, msg := range web.ValidationMessages(err) {
			s.flash.Flash(c, msg)
		}
		s.renderForm(c, http.StatusBadRequest, "edit_artist.html", form, artist)
		return
	}

	// Full overwrite of every editable field, not a partial patch.
	form.apply(artist)

	if err := s.artists.Update(artist); err != nil {
		s.logger.Errorw("artist not updated", "error", err)
		s.flash.Flash(c, fmt.Sprintf("An error occurred. Artist %s could not be updated.", form.Name))
	} else {
		s.flash.Flash(c, fmt.Sprintf("Artist %s was successfully updated!", artist.Name))
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/artists/%d", artist.ID))
}

func (s *Service) lookup(c *gin.Context) (*models.Artist, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		s.renderNotFound(c)
		return nil, false
	}

	artist, err := s.artists.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.renderNotFound(c)
			return nil, false
		}
		s.renderError(c, err)
		return nil, false
	}
	return artist, true
}

func (s *Service) renderForm(c *gin.Context, status int, page string, form Form, artist *models.Artist) {
	data := gin.H{
		"Form":         form,
		"GenreOptions": web.GenreChoices,
		"Flashes":      s.flash.Messages(c),
	}
	if artist != nil {
		data["Artist"] = artist
	}
	c.HTML(status, page, data)
}

func (s *Service) renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{})
}

func (s *Service) renderError(c *gin.Context, err error) {
	s.logger.Errorw("artist request failed", "error", err)
	c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
}
