package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Memoriestore01/memoriestore-api/models"
	"gorm.io/gorm"
)

// GoogleLoginHandler verifies a Firebase ID token, upserts the user, and
// returns a session JWT. Wrapped as a gin handler in routes/auth.go.
func GoogleLoginHandler(w http.ResponseWriter, r *http.Request, db *gorm.DB) {
	var req struct {
		IDToken string `json:"idToken"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IDToken == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	initFirebase()
	if firebaseAuth == nil {
		http.Error(w, "Google sign-in is not configured", http.StatusInternalServerError)
		return
	}

	ctx := context.Background()

	token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(ctx, req.IDToken)
	if err != nil {
		http.Error(w, "Invalid Firebase ID token", http.StatusUnauthorized)
		return
	}
	if token.Audience != projectID {
		http.Error(w, "Invalid token audience", http.StatusUnauthorized)
		return
	}

	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)
	picture, _ := token.Claims["picture"].(string)
	firebaseUserID := token.UID

	if email == "" {
		http.Error(w, "Token has no email claim", http.StatusUnauthorized)
		return
	}

	// Fetch or create the user. Existing users keep their stored role; new
	// users always start as plain customers.
	var user models.User
	err = db.Where("email = ?", email).First(&user).Error

	if err == gorm.ErrRecordNotFound {
		user = models.User{
			ID:       firebaseUserID,
			Email:    email,
			Name:     name,
			Picture:  picture,
			Provider: "google",
			Role:     models.RoleUser,
		}
		if err := db.Create(&user).Error; err != nil {
			http.Error(w, "Failed to create user", http.StatusInternalServerError)
			return
		}
	} else if err == nil {
		db.Model(&user).Updates(models.User{
			Name:    name,
			Picture: picture,
		})
	} else {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{
		"message": "Login successful",
		"user":    user,
		"token":   issueJWT(user.Email, user.Role, user.ID, user.Name, user.Picture),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
