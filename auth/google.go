package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Iyedchebbi/SofaSteam2026/models"
	"gorm.io/gorm"
)

// ---------------------------------------------
// GOOGLE LOGIN
// ---------------------------------------------
// Verifies the Firebase ID token, provisions the profile lazily on first
// login, syncs Google display name/avatar into empty profile fields once, and
// hands back an app session JWT.
func GoogleLoginHandler(w http.ResponseWriter, r *http.Request, db *gorm.DB) {
	var req struct {
		IDToken string `json:"idToken"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IDToken == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
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
	uid := token.UID

	// ---------------------------------------------
	// 1️⃣ Fetch or create profile
	// ---------------------------------------------
	var profile models.Profile
	err = db.Where("id = ?", uid).First(&profile).Error

	if err == gorm.ErrRecordNotFound {
		profile = models.Profile{
			ID:        uid,
			Email:     email,
			Role:      models.RoleCustomer,
			FullName:  name,
			AvatarURL: picture,
		}
		if err := db.Create(&profile).Error; err != nil {
			http.Error(w, "Failed to create profile", http.StatusInternalServerError)
			return
		}
	} else if err == nil {
		// One-time metadata sync: only fill fields the profile lacks, never
		// overwrite what the user has set themselves.
		updates := map[string]interface{}{}
		if profile.FullName == "" && name != "" {
			updates["full_name"] = name
		}
		if profile.AvatarURL == "" && picture != "" {
			updates["avatar_url"] = picture
		}
		if len(updates) > 0 {
			// Best-effort sync; Updates writes the map values back into profile.
			db.Model(&profile).Updates(updates)
		}
	} else {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	// ---------------------------------------------
	// 2️⃣ Auth response
	// ---------------------------------------------
	resp := map[string]interface{}{
		"message": "Login successful",
		"profile": profile,
		"token":   issueJWT(profile.ID, profile.Email),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// issueJWT mints the app session token carried in the Authorization header.
func issueJWT(userID, email string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return ""
	}
	return signed
}
