package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"competition-portal-server/models"
	"competition-portal-server/utils"
)

func setupAuthTest(t *testing.T) (*gin.Engine, models.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}))
	utils.DB = db
	utils.JwtSecret = []byte("test-secret")

	user := models.User{Name: "Ada", Email: "ada@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	r := gin.New()
	r.GET("/me", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r, user
}

func bearerRequest(t *testing.T, userID uint) *http.Request {
	t.Helper()
	token, err := utils.GenerateAccessToken(userID)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	r, user := setupAuthTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, bearerRequest(t, user.ID))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareRejectsTokenIssuedBeforeLogout(t *testing.T) {
	r, user := setupAuthTest(t)

	req := bearerRequest(t, user.ID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Logging out invalidates every token issued up to that point
	logoutAt := time.Now().Add(time.Minute)
	require.NoError(t, utils.DB.Model(&user).Update("last_logout_at", logoutAt).Error)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	r, _ := setupAuthTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuthContinuesAnonymously(t *testing.T) {
	r, user := setupAuthTest(t)

	r.GET("/maybe", OptionalAuth(), func(c *gin.Context) {
		_, authenticated := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": authenticated})
	})

	// No header: anonymous, not an error
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/maybe", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)

	// Garbage token: still anonymous
	req := httptest.NewRequest(http.MethodGet, "/maybe", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)

	// Valid token: user present
	token, err := utils.GenerateAccessToken(user.ID)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/maybe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)
}
