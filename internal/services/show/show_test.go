package show_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stagebook/stagebook/internal/config"
	"github.com/stagebook/stagebook/internal/flash"
	"github.com/stagebook/stagebook/internal/models"
	"github.com/stagebook/stagebook/internal/router"
)

var testNow = time.Date(2026, time.January, 2, 12, 0, 0, 0, time.UTC)

func newServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, models.Migrate(db))

	logger := zap.NewNop().Sugar()
	store := flash.NewStore(&config.Config{RedisHost: "localhost", RedisPort: "0"}, logger)

	engine := router.New(db, store, logger, func() time.Time { return testNow })
	return engine, db
}

func doGet(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func doPostForm(engine *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func seedVenueAndArtist(t *testing.T, db *gorm.DB) (*models.Venue, *models.Artist) {
	t.Helper()
	venue := &models.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA"}
	require.NoError(t, db.Create(venue).Error)
	artist := &models.Artist{Name: "Guns N Petals", ImageLink: "https://images.example.com/gnp.jpg"}
	require.NoError(t, db.Create(artist).Error)
	return venue, artist
}

func TestShowCreateAppearsInListingAndVenueDetail(t *testing.T) {
	engine, db := newServer(t)
	seedVenueAndArtist(t, db)

	w := doPostForm(engine, "/shows/create", url.Values{
		"artist_id":  {"1"},
		"venue_id":   {"1"},
		"start_time": {"2030-01-01 20:00:00"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/shows", w.Header().Get("Location"))

	listing := doGet(engine, "/shows")
	require.Equal(t, http.StatusOK, listing.Code)
	body := listing.Body.String()
	assert.Contains(t, body, "Guns N Petals")
	assert.Contains(t, body, "The Musical Hop")

	detail := doGet(engine, "/venues/1")
	require.Equal(t, http.StatusOK, detail.Code)
	assert.Contains(t, detail.Body.String(), "1 Upcoming Shows")
}

func TestShowCreateRejectsMalformedStartTime(t *testing.T) {
	engine, db := newServer(t)
	seedVenueAndArtist(t, db)

	w := doPostForm(engine, "/shows/create", url.Values{
		"artist_id":  {"1"},
		"venue_id":   {"1"},
		"start_time": {"whenever"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Show{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestShowCreateRejectsMalformedArtistID(t *testing.T) {
	engine, db := newServer(t)
	seedVenueAndArtist(t, db)

	w := doPostForm(engine, "/shows/create", url.Values{
		"artist_id":  {"abc"},
		"venue_id":   {"1"},
		"start_time": {"2030-01-01 20:00:00"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShowCreateRejectsDanglingReference(t *testing.T) {
	engine, db := newServer(t)
	seedVenueAndArtist(t, db)

	w := doPostForm(engine, "/shows/create", url.Values{
		"artist_id":  {"99"},
		"venue_id":   {"1"},
		"start_time": {"2030-01-01 20:00:00"},
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Show{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestShowListingFormatsStartTime(t *testing.T) {
	engine, db := newServer(t)
	venue, artist := seedVenueAndArtist(t, db)
	start := time.Date(2030, time.January, 1, 20, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Show{VenueID: venue.ID, ArtistID: artist.ID, StartTime: start}).Error)

	w := doGet(engine, "/shows")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Tue Jan, 01, 2030 8:00PM")
}

func TestUnmatchedRouteRendersNotFoundPage(t *testing.T) {
	engine, _ := newServer(t)

	w := doGet(engine, "/no/such/page")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "404")
}

func TestHomePageRenders(t *testing.T) {
	engine, _ := newServer(t)

	w := doGet(engine, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Stagebook")
}
