// Package router assembles the gin engine: templates, middleware and
// every page route.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stagebook/stagebook/internal/flash"
	"github.com/stagebook/stagebook/internal/middleware"
	"github.com/stagebook/stagebook/internal/repository"
	"github.com/stagebook/stagebook/internal/services/artist"
	"github.com/stagebook/stagebook/internal/services/show"
	"github.com/stagebook/stagebook/internal/services/venue"
	"github.com/stagebook/stagebook/internal/web"
)

// New builds the engine. The now func drives upcoming/past show
// classification; pass nil for wall-clock time.
func New(db *gorm.DB, flashStore *flash.Store, logger *zap.SugaredLogger, now func() time.Time) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
	}))
	r.Use(cors.Default())

	r.SetHTMLTemplate(web.Templates())

	venues := repository.NewVenueRepository(db, now)
	artists := repository.NewArtistRepository(db)
	shows := repository.NewShowRepository(db, now)

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "home.html", gin.H{
			"Flashes": flashStore.Messages(c),
		})
	})

	venue.NewService(venues, shows, flashStore, logger).SetupRoutes(r)
	artist.NewService(artists, shows, flashStore, logger).SetupRoutes(r)
	show.NewService(shows, flashStore, logger).SetupRoutes(r)

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", gin.H{})
	})

	return r
}
