package competitions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"competition-portal-server/handlers/auth"
	"competition-portal-server/models"
	"competition-portal-server/utils"
)

func setupCompetitionsTest(t *testing.T) (*gin.Engine, models.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Competition{}))
	utils.DB = db
	utils.JwtSecret = []byte("test-secret")

	admin := models.User{Name: "Root", Email: "root@example.com", Password: "x", IsAdmin: true}
	require.NoError(t, db.Create(&admin).Error)

	r := gin.New()
	public := r.Group("/")
	protected := r.Group("/")
	protected.Use(auth.AuthMiddleware())
	RegisterCompetitionsRoutes(public, protected)

	return r, admin
}

func adminRequest(t *testing.T, method, path string, body interface{}, admin models.User) *http.Request {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	token, err := utils.GenerateAccessToken(admin.ID)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestCreateCompetitionPersistsHidden(t *testing.T) {
	r, admin := setupCompetitionsTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(t, http.MethodPost, "/competitions", gin.H{
		"title":   "Secret round",
		"visible": false,
	}, admin))
	require.Equal(t, http.StatusCreated, w.Code)

	// The explicit false must survive the round trip through the store
	var stored models.Competition
	require.NoError(t, utils.DB.Where("title = ?", "Secret round").First(&stored).Error)
	assert.False(t, stored.Visible)

	// And the public listing must not include it
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/competitions", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Competitions []models.Competition `json:"competitions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Competitions)
}

func TestCreateCompetitionDefaultsVisible(t *testing.T) {
	r, admin := setupCompetitionsTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(t, http.MethodPost, "/competitions", gin.H{
		"title": "Open round",
	}, admin))
	require.Equal(t, http.StatusCreated, w.Code)

	var stored models.Competition
	require.NoError(t, utils.DB.Where("title = ?", "Open round").First(&stored).Error)
	assert.True(t, stored.Visible)
}

func TestHiddenCompetitionDetailAccess(t *testing.T) {
	r, admin := setupCompetitionsTest(t)

	hidden := models.Competition{Title: "Secret round", Visible: false}
	require.NoError(t, utils.DB.Create(&hidden).Error)
	path := fmt.Sprintf("/competitions/%d", hidden.ID)

	// Anonymous callers get a 404
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// An admin with a bearer token can open it
	w = httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(t, http.MethodGet, path, nil, admin))
	assert.Equal(t, http.StatusOK, w.Code)
}
