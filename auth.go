package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func GenerateToken(secret string, userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ========================
// LOGIN HANDLER
// ========================

func (a *API) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Username & password required")
		return
	}
	if req.Username == "" || req.Password == "" {
		jsonError(c, http.StatusBadRequest, "Username & password required")
		return
	}

	// Same 401 whether the username is unknown or the password is wrong.
	var user User
	if err := a.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		jsonError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		jsonError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := GenerateToken(a.cfg.JWTSecret, user.ID)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
		"token":    token,
	})
}

// ========================
// REGISTER HANDLER
// ========================

func (a *API) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "All fields required")
		return
	}

	if req.FirstName == "" || req.LastName == "" || req.Username == "" || req.Email == "" || req.Password == "" {
		jsonError(c, http.StatusBadRequest, "All fields required")
		return
	}

	role := req.Role
	if role != "admin" && role != "user" && role != "photographer" {
		role = "user"
	}

	var count int64
	if err := a.db.Model(&User{}).
		Where("username = ? OR email = ?", req.Username, req.Email).
		Count(&count).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "DB error")
		return
	}
	if count > 0 {
		jsonError(c, http.StatusConflict, "Username or email already taken")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "DB error")
		return
	}

	user := User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  string(hash),
		Role:      role,
	}
	if err := a.db.Create(&user).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "DB error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": user.ID})
}

// ========================
// CURRENT USER
// ========================

// Me returns the account behind the bearer token. AuthMiddleware has already
// stored "user_id" in the context.
func (a *API) Me(c *gin.Context) {
	uid, exists := c.Get("user_id")
	if !exists {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var user User
	if err := a.db.First(&user, uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			jsonError(c, http.StatusNotFound, "User not found")
			return
		}
		jsonError(c, http.StatusInternalServerError, "DB error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}
