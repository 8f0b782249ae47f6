package venue

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
	venues *repository.VenueRepository
	shows  *repository.ShowRepository
	flash  *flash.Store
	logger *zap.SugaredLogger
}

func NewService(venues *repository.VenueRepository, shows *repository.ShowRepository, flashStore *flash.Store, logger *zap.SugaredLogger) *Service {
	return &Service{venues: venues, shows: shows, flash: flashStore, logger: logger}
}

func (s *Service) SetupRoutes(r *gin.Engine) {
	r.GET("/venues", s.List)
	r.POST("/venues/search", s.Search)
	r.GET("/venues/create", s.CreateForm)
	r.POST("/venues/create", s.Create)
	r.GET("/venues/:id", s.Detail)
	r.DELETE("/venues/:id", s.Delete)
	r.GET("/venues/:id/edit", s.EditForm)
	r.POST("/venues/:id/edit", s.Edit)
}

// Form carries the editable venue fields. The seeking flag is a
// checkbox, so presence of the field means true.
type Form struct {
	Name               string   `form:"name" binding:"required"`
	City               string   `form:"city" binding:"required"`
	State              string   `form:"state" binding:"required"`
	Address            string   `form:"address" binding:"required"`
	Phone              string   `form:"phone"`
	Genres             []string `form:"genres"`
	ImageLink          string   `form:"image_link"`
	FacebookLink       string   `form:"facebook_link"`
	Website            string   `form:"website_link"`
	SeekingTalent      string   `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description"`
}

func formFromVenue(venue *models.Venue) Form {
	form := Form{
		Name:               venue.Name,
		City:               venue.City,
		State:              venue.State,
		Address:            venue.Address,
		Phone:              venue.Phone,
		Genres:             venue.Genres,
		ImageLink:          venue.ImageLink,
		FacebookLink:       venue.FacebookLink,
		Website:            venue.Website,
		SeekingDescription: venue.SeekingDescription,
	}
	if venue.SeekingTalent {
		form.SeekingTalent = "y"
	}
	return form
}

func (f Form) apply(venue *models.Venue) {
	venue.Name = f.Name
	venue.City = f.City
	venue.State = f.State
	venue.Address = f.Address
	venue.Phone = f.Phone
	venue.Genres = f.Genres
	venue.ImageLink = f.ImageLink
	venue.FacebookLink = f.FacebookLink
	venue.Website = f.Website
	venue.SeekingTalent = f.SeekingTalent != ""
	venue.SeekingDescription = f.SeekingDescription
}

func (s *Service) List(c *gin.Context) {
	areas, err := s.venues.ListAreas()
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "venues.html", gin.H{
		"Areas":   areas,
		"Flashes": s.flash.Messages(c),
	})
}

func (s *Service) Search(c *gin.Context) {
	term := c.PostForm("search_term")
	results, err := s.venues.Search(term)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "search_venues.html", gin.H{
		"Count":      len(results),
		"Results":    results,
		"SearchTerm": term,
		"Flashes":    s.flash.Messages(c),
	})
}

func (s *Service) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		s.renderNotFound(c)
		return
	}

	venue, err := s.venues.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.renderNotFound(c)
			return
		}
		s.renderError(c, err)
		return
	}

	upcoming, past, err := s.shows.PartitionByVenue(venue.ID)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "show_venue.html", gin.H{
		"Venue":              venue,
		"UpcomingShows":      upcoming,
		"PastShows":          past,
		"UpcomingShowsCount": len(upcoming),
		"PastShowsCount":     len(past),
		"Flashes":            s.flash.Messages(c),
	})
}

func (s *Service) CreateForm(c *gin.Context) {
	s.renderForm(c, http.StatusOK, "new_venue.html", Form{}, nil)
}

func (s *Service) Create(c *gin.Context) {
	var form Form
	if err := c.ShouldBind(&form); err != nil {
		for _, msg := range web.ValidationMessages(err) {
			s.flash.Flash(c, msg)
		}
		s.renderForm(c, http.StatusBadRequest, "new_venue.html", form, nil)
		return
	}

	var venue models.Venue
	form.apply(&venue)

	if err := s.venues.Create(&venue); err != nil {
		s.logger.Errorw("venue not created", "error", err)
		s.flash.Flash(c, fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
		s.renderForm(c, http.StatusInternalServerError, "new_venue.html", form, nil)
		return
	}

	s.flash.Flash(c, fmt.Sprintf("Venue %s was successfully listed!", venue.Name))
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/venues/%d", venue.ID))
}

func (s *Service) EditForm(c *gin.Context) {
	venue, ok := s.lookup(c)
	if !ok {
		return
	}
	s.renderForm(c, http.StatusOK, "edit_venue.html", formFromVenue(venue), venue)
}

func (s *Service) Edit(c *gin.Context) {
	venue, ok := s.lookup(c)
	if !ok {
		return
	}

	var form Form
	if err := c.ShouldBind(&form); err != nil {
		for _, msg := range web.ValidationMessages(err) {
			s.flash.Flash(c, msg)
		}
		s.renderForm(c, http.StatusBadRequest, "edit_venue.html", form, venue)
		return
	}

	// Full overwrite of every editable field, not a partial patch.
	form.apply(venue)

	if err := s.venues.Update(venue); err != nil {
		s.logger.Errorw("venue not updated", "error", err)
		s.flash.Flash(c, fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name))
	} else {
		s.flash.Flash(c, fmt.Sprintf("Venue %s was successfully updated!", venue.Name))
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/venues/%d", venue.ID))
}

// Delete is invoked via fetch from the detail page, so it answers JSON
// with the redirect target instead of rendering a page.
func (s *Service) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue ID",
		})
		return
	}

	if err := s.venues.Delete(uint(id)); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Venue not found",
			})
		case errors.Is(err, repository.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Venue still has shows scheduled and cannot be deleted",
			})
		default:
			s.logger.Errorw("venue not deleted", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to delete venue",
			})
		}
		return
	}

	s.flash.Flash(c, "Venue was deleted.")
	c.JSON(http.StatusOK, gin.H{
		"redirect": "/",
	})
}

// lookup resolves the :id param to a venue, rendering the 404 page on
// a malformed id or a missing row.
func (s *Service) lookup(c *gin.Context) (*models.Venue, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		s.renderNotFound(c)
		return nil, false
	}

	venue, err := s.venues.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.renderNotFound(c)
			return nil, false
		}
		s.renderError(c, err)
		return nil, false
	}
	return venue, true
}

func (s *Service) renderForm(c *gin.Context, status int, page string, form Form, venue *models.Venue) {
	data := gin.H{
		"Form":         form,
		"GenreOptions": web.GenreChoices,
		"Flashes":      s.flash.Messages(c),
	}
	if venue != nil {
		data["Venue"] = venue
	}
	c.HTML(status, page, data)
}

func (s *Service) renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{})
}

func (s *Service) renderError(c *gin.Context, err error) {
	s.logger.Errorw("venue request failed", "error", err)
	c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
}
