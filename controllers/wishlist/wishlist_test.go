package wishlistControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Memoriestore01/memoriestore-api/middleware"
	"github.com/Memoriestore01/memoriestore-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupWishlistRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Wishlist{}, &models.WishlistItem{}))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if email := c.GetHeader("X-Test-Email"); email != "" {
			c.Set(middleware.CtxUserEmail, email)
		}
		c.Next()
	})
	r.GET("/user/wishlist", GetWishlist(db))
	r.POST("/user/wishlist", AddWishlistItem(db))
	r.DELETE("/user/wishlist", RemoveWishlistItem(db))
	return r, db
}

func doWishlist(t *testing.T, r *gin.Engine, method, path, email string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if email != "" {
		req.Header.Set("X-Test-Email", email)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func wishlistItems(t *testing.T, w *httptest.ResponseRecorder) []models.WishlistItem {
	t.Helper()
	var resp struct {
		Items []models.WishlistItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Items
}

func TestWishlistEmptyShape(t *testing.T) {
	r, _ := setupWishlistRouter(t)

	w := doWishlist(t, r, http.MethodGet, "/user/wishlist", "asha@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, wishlistItems(t, w))
}

func TestWishlistAddAndGet(t *testing.T) {
	r, _ := setupWishlistRouter(t)
	email := "asha@example.com"

	w := doWishlist(t, r, http.MethodPost, "/user/wishlist", email, gin.H{
		"productId": "p1",
		"name":      "Anniversary Invite",
		"price":     450,
		"category":  "anniversary",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doWishlist(t, r, http.MethodGet, "/user/wishlist", email, nil)
	items := wishlistItems(t, w)
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, "anniversary", items[0].Category)
}

func TestWishlistDuplicateAddRejected(t *testing.T) {
	r, db := setupWishlistRouter(t)
	email := "asha@example.com"

	body := gin.H{"productId": "p1", "name": "Invite", "price": 450}
	w := doWishlist(t, r, http.MethodPost, "/user/wishlist", email, body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doWishlist(t, r, http.MethodPost, "/user/wishlist", email, body)
	assert.Equal(t, http.StatusConflict, w.Code)

	// The wishlist is unchanged by the rejected add
	var count int64
	require.NoError(t, db.Model(&models.WishlistItem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestWishlistRemove(t *testing.T) {
	r, _ := setupWishlistRouter(t)
	email := "asha@example.com"

	doWishlist(t, r, http.MethodPost, "/user/wishlist", email, gin.H{
		"productId": "p1", "name": "Invite", "price": 450,
	})

	w := doWishlist(t, r, http.MethodDelete, "/user/wishlist?product_id=p1", email, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doWishlist(t, r, http.MethodGet, "/user/wishlist", email, nil)
	assert.Empty(t, wishlistItems(t, w))

	// Removing an absent item succeeds silently
	w = doWishlist(t, r, http.MethodDelete, "/user/wishlist?product_id=p1", email, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWishlistRequiresAuth(t *testing.T) {
	r, _ := setupWishlistRouter(t)

	w := doWishlist(t, r, http.MethodGet, "/user/wishlist", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
