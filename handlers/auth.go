package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tailorcv/backend/auth"
	"github.com/tailorcv/backend/models"
	"github.com/tailorcv/backend/storage"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	firestoreClient *storage.FirestoreClient
	storageClient   *storage.CloudStorageClient
	jwtService      *auth.JWTService
	googleAuth      *auth.GoogleAuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	firestoreClient *storage.FirestoreClient,
	storageClient *storage.CloudStorageClient,
	jwtService *auth.JWTService,
	googleAuth *auth.GoogleAuthService,
) *AuthHandler {
	return &AuthHandler{
		firestoreClient: firestoreClient,
		storageClient:   storageClient,
		jwtService:      jwtService,
		googleAuth:      googleAuth,
	}
}

func authError(c *gin.Context, status int, message string, err error) {
	resp := models.ErrorResponse{Error: message, Code: status}
	if err != nil {
		resp.Details = err.Error()
	}
	c.JSON(status, resp)
}

// issueToken signs a JWT for the user and writes the auth response.
func (h *AuthHandler) issueToken(c *gin.Context, status int, user *models.User, message string) {
	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		log.Printf("[AuthHandler] Failed to generate token: %v", err)
		authError(c, http.StatusInternalServerError, "Failed to generate token", nil)
		return
	}

	c.JSON(status, models.AuthResponse{
		Token:   token,
		User:    user,
		Message: message,
	})
}

// Register handles user registration with email/password
// @Summary Register a new user
// @Description Register a new user with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration request"
// @Success 201 {object} models.AuthResponse "Registration successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 409 {object} models.ErrorResponse "User already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		authError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("[AuthHandler] Failed to hash password: %v", err)
		authError(c, http.StatusInternalServerError, "Failed to process registration", nil)
		return
	}

	user := &models.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: hashedPassword,
		Provider: "email",
	}
	if err := h.firestoreClient.CreateUser(c.Request.Context(), user); err != nil {
		log.Printf("[AuthHandler] Failed to create user: %v", err)
		authError(c, http.StatusConflict, "Registration failed", err)
		return
	}

	log.Printf("[AuthHandler] User registered: %s", user.Email)
	h.issueToken(c, http.StatusCreated, user, "Registration successful")
}

// Login handles user login with email/password
// @Summary Login user
// @Description Login with email and password to get JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		authError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.firestoreClient.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		authError(c, http.StatusUnauthorized, "Invalid email or password", nil)
		return
	}

	// Accounts created through Google SSO have no password to check.
	if user.Provider == "google" {
		authError(c, http.StatusUnauthorized, "This account uses Google Sign-In. Please login with Google.", nil)
		return
	}
	if !auth.CheckPassword(req.Password, user.Password) {
		authError(c, http.StatusUnauthorized, "Invalid email or password", nil)
		return
	}

	log.Printf("[AuthHandler] User logged in: %s", user.Email)
	h.issueToken(c, http.StatusOK, user, "Login successful")
}

// GoogleLogin handles Google SSO authentication
// @Summary Login with Google
// @Description Login or register using Google SSO ID token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.GoogleAuthRequest true "Google auth request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid Google token"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/google [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req models.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		authError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	googleUser, err := h.googleAuth.VerifyIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		log.Printf("[AuthHandler] Failed to verify Google token: %v", err)
		authError(c, http.StatusUnauthorized, "Invalid Google token", err)
		return
	}

	user, err := h.firestoreClient.GetUserByEmail(c.Request.Context(), googleUser.Email)
	switch {
	case err != nil:
		// First Google sign-in creates the account.
		user = &models.User{
			Email:    googleUser.Email,
			Name:     googleUser.Name,
			Provider: "google",
			GoogleID: googleUser.GoogleID,
		}
		if err := h.firestoreClient.CreateUser(c.Request.Context(), user); err != nil {
			log.Printf("[AuthHandler] Failed to create Google user: %v", err)
			authError(c, http.StatusInternalServerError, "Failed to create account", err)
			return
		}
		log.Printf("[AuthHandler] New Google user created: %s", user.Email)
	case user.GoogleID == "":
		// Email/password account linking Google for the first time.
		h.firestoreClient.UpdateUser(c.Request.Context(), user.Email, map[string]interface{}{
			"googleId": googleUser.GoogleID,
			"provider": "google",
		})
	}

	log.Printf("[AuthHandler] Google user logged in: %s", user.Email)
	h.issueToken(c, http.StatusOK, user, "Login successful")
}

// GetProfile retrieves the current user's profile
// @Summary Get user profile
// @Description Get the authenticated user's profile including their parsed resume fields and saved job ads
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ProfileResponse "User profile"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		authError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	user, err := h.firestoreClient.GetUserByEmail(c.Request.Context(), claims.Email)
	if err != nil {
		authError(c, http.StatusNotFound, "User not found", nil)
		return
	}

	c.JSON(http.StatusOK, models.ProfileResponse{User: user})
}

// UpdateProfile updates the current user's profile
// @Summary Update user profile
// @Description Update the authenticated user's profile (name)
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateProfileRequest true "Update profile request"
// @Success 200 {object} models.ProfileResponse "Profile updated"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		authError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		authError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.firestoreClient.UpdateUserProfile(c.Request.Context(), claims.Email, req.Name); err != nil {
		log.Printf("[AuthHandler] Failed to update profile: %v", err)
		authError(c, http.StatusInternalServerError, "Failed to update profile", nil)
		return
	}

	user, err := h.firestoreClient.GetUserByEmail(c.Request.Context(), claims.Email)
	if err != nil {
		authError(c, http.StatusNotFound, "User not found", nil)
		return
	}

	log.Printf("[AuthHandler] Profile updated: %s", claims.Email)
	c.JSON(http.StatusOK, models.ProfileResponse{
		User:    user,
		Message: "Profile updated successfully",
	})
}

// UploadResume uploads a source resume document for the authenticated user
// @Summary Upload resume document
// @Description Upload a resume file (PDF, DOC, DOCX, TXT) to user's profile
// @Tags Auth
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param resume_file formData file true "Resume file (PDF, DOC, DOCX, TXT)"
// @Success 200 {object} models.ResumeUploadResponse "Resume uploaded successfully"
// @Failure 400 {object} models.ErrorResponse "Invalid file"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/resume-upload [post]
func (h *AuthHandler) UploadResume(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		authError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	file, header, err := c.Request.FormFile("resume_file")
	if err != nil {
		authError(c, http.StatusBadRequest, "Resume file is required", err)
		return
	}
	defer file.Close()

	resumeURL, err := h.storageClient.UploadSourceResume(c.Request.Context(), claims.Email, file, header)
	if err != nil {
		log.Printf("[AuthHandler] Failed to upload resume: %v", err)
		authError(c, http.StatusInternalServerError, "Failed to upload resume", err)
		return
	}

	// Keep the profile pointing at the latest uploaded document.
	if err := h.firestoreClient.UpdateUserResumeURL(c.Request.Context(), claims.Email, resumeURL); err != nil {
		log.Printf("[AuthHandler] Failed to update resume URL: %v", err)
		authError(c, http.StatusInternalServerError, "Failed to save resume reference", nil)
		return
	}

	log.Printf("[AuthHandler] Resume uploaded for user: %s", claims.Email)
	c.JSON(http.StatusOK, models.ResumeUploadResponse{
		ResumeURL: resumeURL,
		Message:   "Resume uploaded successfully",
	})
}
