package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/qrvault/qrvault-backend/auth"
	"github.com/qrvault/qrvault-backend/auth/middleware"
	"github.com/qrvault/qrvault-backend/models"
	"github.com/qrvault/qrvault-backend/stores"
)

type registerRequest struct {
	FullName        string `json:"fullName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Full name, a valid email and a password of at least 6 characters are required")
		return
	}
	if req.Password != req.ConfirmPassword {
		respondError(c, http.StatusBadRequest, "Passwords do not match")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.Logger.WithError(err).Error("failed to hash password")
		respondError(c, http.StatusInternalServerError, "An error occurred during registration")
		return
	}

	user := models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := h.Users.Create(&user); err != nil {
		if errors.Is(err, stores.ErrDuplicateEmail) {
			respondError(c, http.StatusBadRequest, "Email already in use")
			return
		}
		h.Logger.WithError(err).Error("failed to create user")
		respondError(c, http.StatusInternalServerError, "An error occurred during registration")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful!",
		"type":    "success",
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	// Unknown email and wrong password answer identically so accounts
	// cannot be enumerated.
	user, err := h.Users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, stores.ErrUserNotFound) {
			respondError(c, http.StatusBadRequest, "Invalid email or password")
			return
		}
		h.Logger.WithError(err).Error("failed to look up user")
		respondError(c, http.StatusInternalServerError, "An error occurred during login")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid email or password")
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Email, []byte(h.Cfg.JWTSecret), h.Cfg.TokenTTL)
	if err != nil {
		h.Logger.WithError(err).Error("failed to sign session token")
		respondError(c, http.StatusInternalServerError, "An error occurred during login")
		return
	}

	c.SetCookie(middleware.CookieName, token, int(h.Cfg.TokenTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"type":    "success",
	})
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful",
		"type":    "success",
	})
}
