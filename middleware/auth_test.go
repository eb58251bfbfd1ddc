package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Memoriestore01/memoriestore-api/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func setupAuthRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	r := gin.New()
	r.GET("/whoami", ValidateToken, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"email": c.GetString(CtxUserEmail),
			"name":  c.GetString(CtxUserName),
			"role":  c.GetString(CtxUserRole),
		})
	})
	r.GET("/admin/ping", ValidateToken, RequireAdmin(db), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, db
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestValidateToken(t *testing.T) {
	r, _ := setupAuthRouter(t)

	// No header
	w := get(r, "/whoami", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token
	w = get(r, "/whoami", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Expired token
	w = get(r, "/whoami", signToken(t, jwt.MapClaims{
		"email": "asha@example.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Token without an email claim
	w = get(r, "/whoami", signToken(t, jwt.MapClaims{
		"role": "user",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid token flows identity onto the context
	w = get(r, "/whoami", signToken(t, jwt.MapClaims{
		"email": "asha@example.com",
		"name":  "Asha",
		"role":  "user",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"asha@example.com","name":"Asha","role":"user"}`, w.Body.String())
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	r, _ := setupAuthRouter(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "asha@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("someone-elses-secret"))
	require.NoError(t, err)

	w := get(r, "/whoami", signed)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminChecksStoredRole(t *testing.T) {
	r, db := setupAuthRouter(t)

	require.NoError(t, db.Create(&models.User{
		ID: "u1", Email: "asha@example.com", Name: "Asha", Role: models.RoleUser,
	}).Error)
	require.NoError(t, db.Create(&models.User{
		ID: "u2", Email: "admin@memoriestore.in", Name: "Admin", Role: models.RoleAdmin,
	}).Error)

	// The token claims admin but the stored record says user: rejected.
	w := get(r, "/admin/ping", signToken(t, jwt.MapClaims{
		"email": "asha@example.com",
		"role":  "admin",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Unknown user
	w = get(r, "/admin/ping", signToken(t, jwt.MapClaims{
		"email": "ghost@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Real admin
	w = get(r, "/admin/ping", signToken(t, jwt.MapClaims{
		"email": "admin@memoriestore.in",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}))
	assert.Equal(t, http.StatusOK, w.Code)
}
