package show

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stagebook/stagebook/internal/datefmt"
	"github.com/stagebook/stagebook/internal/flash"
	"github.com/stagebook/stagebook/internal/models"
	"github.com/stagebook/stagebook/internal/repository"
	"github.com/stagebook/stagebook/internal/web"
)

type Service struct {
	shows  *repository.ShowRepository
	flash  *flash.Store
	logger *zap.SugaredLogger
}

func NewService(shows *repository.ShowRepository, flashStore *flash.Store, logger *zap.SugaredLogger) *Service {
	return &Service{shows: shows, flash: flashStore, logger: logger}
}

func (s *Service) SetupRoutes(r *gin.Engine) {
	r.GET("/shows", s.List)
	r.GET("/shows/create", s.CreateForm)
	r.POST("/shows/create", s.Create)
}

type Form struct {
	ArtistID  string `form:"artist_id" binding:"required"`
	VenueID   string `form:"venue_id" binding:"required"`
	StartTime string `form:"start_time" binding:"required"`
}

func (s *Service) List(c *gin.Context) {
	shows, err := s.shows.ListAll()
	if err != nil {
		s.logger.Errorw("show listing failed", "error", err)
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
		return
	}

	c.HTML(http.StatusOK, "shows.html", gin.H{
		"Shows":   shows,
		"Flashes": s.flash.Messages(c),
	})
}

func (s *Service) CreateForm(c *gin.Context) {
	s.renderForm(c, http.StatusOK, Form{})
}

func (s *Service) Create(c *gin.Context) {
	var form Form
	if err := c.ShouldBind(&form); err != nil {
		for _, msg := range web.ValidationMessages(err) {
			s.flash.Flash(c, msg)
		}
		s.renderForm(c, http.StatusBadRequest, form)
		return
	}

	artistID, err := strconv.ParseUint(form.ArtistID, 10, 32)
	if err != nil {
		s.flash.Flash(c, "Artist ID must be a number.")
		s.renderForm(c, http.StatusBadRequest, form)
		return
	}

	venueID, err := strconv.ParseUint(form.VenueID, 10, 32)
	if err != nil {
		s.flash.Flash(c, "Venue ID must be a number.")
		s.renderForm(c, http.StatusBadRequest, form)
		return
	}

	startTime, err := datefmt.Parse(form.StartTime)
	if err != nil {
		s.flash.Flash(c, "Start time is not a valid timestamp.")
		s.renderForm(c, http.StatusBadRequest, form)
		return
	}

	newShow := models.Show{
		ArtistID:  uint(artistID),
		VenueID:   uint(venueID),
		StartTime: startTime,
	}
	if err := s.shows.Create(&newShow); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			s.flash.Flash(c, "An error occurred. The referenced artist or venue does not exist.")
			s.renderForm(c, http.StatusConflict, form)
			return
		}
		s.logger.Errorw("show not created", "error", err)
		s.flash.Flash(c, "An error occurred. Show could not be listed.")
		s.renderForm(c, http.StatusInternalServerError, form)
		return
	}

	s.flash.Flash(c, "Show was successfully listed!")
	c.Redirect(http.StatusSeeOther, "/shows")
}

func (s *Service) renderForm(c *gin.Context, status int, form Form) {
	c.HTML(status, "new_show.html", gin.H{
		"Form":    form,
		"Flashes": s.flash.Messages(c),
	})
}
