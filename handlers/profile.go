package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tailorcv/backend/auth"
	"github.com/tailorcv/backend/gemini"
	"github.com/tailorcv/backend/models"
	"github.com/tailorcv/backend/storage"
	"github.com/tailorcv/backend/utils"
)

// ProfileHandler handles resume profile parsing and updates
type ProfileHandler struct {
	firestoreClient *storage.FirestoreClient
	geminiClient    *gemini.Client
	extractor       *utils.DocumentExtractor
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(firestoreClient *storage.FirestoreClient, geminiClient *gemini.Client) *ProfileHandler {
	return &ProfileHandler{
		firestoreClient: firestoreClient,
		geminiClient:    geminiClient,
		extractor:       utils.NewDocumentExtractor(),
	}
}

// ParseResume parses a free-form resume corpus into structured fields and
// saves them to the user's profile
// @Summary Parse resume corpus
// @Description Extract structured resume fields (contact, experience, education, skills) from pasted resume text and save them to the user's profile
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ParseResumeRequest true "Resume corpus"
// @Success 200 {object} models.ParseResumeResponse "Parsed resume profile"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Parsing failed"
// @Router /profile/parse [post]
func (h *ProfileHandler) ParseResume(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	var req models.ParseResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	fields, err := h.geminiClient.ParseResumeCorpus(c.Request.Context(), req.Corpus)
	if err != nil {
		log.Printf("[ProfileHandler] Failed to parse resume corpus: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to parse resume",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	if err := h.firestoreClient.UpdateResumeFields(c.Request.Context(), claims.Email, fields); err != nil {
		log.Printf("[ProfileHandler] Failed to save resume fields: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to save resume profile",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[ProfileHandler] Resume profile saved for %s", claims.Email)
	c.JSON(http.StatusOK, models.ParseResumeResponse{
		ResumeFields: *fields,
		Message:      "Resume profile saved",
	})
}

// ParseResumeFile extracts text from an uploaded resume document, parses it
// into structured fields, and saves them to the user's profile
// @Summary Parse resume file
// @Description Extract structured resume fields from an uploaded resume file (PDF, DOC, DOCX, TXT) and save them to the user's profile
// @Tags Profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param resume_file formData file true "Resume file"
// @Success 200 {object} models.ParseResumeResponse "Parsed resume profile"
// @Failure 400 {object} models.ErrorResponse "Invalid or unsupported file"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Parsing failed"
// @Router /profile/parse-file [post]
func (h *ProfileHandler) ParseResumeFile(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	file, header, err := c.Request.FormFile("resume_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Resume file is required",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}
	defer file.Close()

	if !h.extractor.IsSupportedFormat(header.Filename) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Unsupported file format. Use PDF, DOC, DOCX, or TXT.",
			Code:  http.StatusBadRequest,
		})
		return
	}

	corpus, err := h.extractor.ExtractText(file, header)
	if err != nil {
		log.Printf("[ProfileHandler] Failed to extract text from %s: %v", header.Filename, err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Failed to read resume file",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	fields, err := h.geminiClient.ParseResumeCorpus(c.Request.Context(), corpus)
	if err != nil {
		log.Printf("[ProfileHandler] Failed to parse resume file: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to parse resume",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	if err := h.firestoreClient.UpdateResumeFields(c.Request.Context(), claims.Email, fields); err != nil {
		log.Printf("[ProfileHandler] Failed to save resume fields: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to save resume profile",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[ProfileHandler] Resume profile saved from file for %s", claims.Email)
	c.JSON(http.StatusOK, models.ParseResumeResponse{
		ResumeFields: *fields,
		Message:      "Resume profile saved",
	})
}

// GetResumeFields returns the user's saved resume profile
// @Summary Get resume profile
// @Description Get the authenticated user's parsed resume fields
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ParseResumeResponse "Resume profile"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "No resume profile saved"
// @Router /profile/resume [get]
func (h *ProfileHandler) GetResumeFields(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	fields, err := h.firestoreClient.GetResumeFields(c.Request.Context(), claims.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "No resume profile saved",
			Code:    http.StatusNotFound,
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ParseResumeResponse{
		ResumeFields: *fields,
	})
}

// UpdateResumeFields replaces the user's saved resume profile with edited
// fields
// @Summary Update resume profile
// @Description Replace the authenticated user's resume fields with manually edited values
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ResumeFields true "Edited resume fields"
// @Success 200 {object} models.ParseResumeResponse "Resume profile updated"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /profile/resume [put]
func (h *ProfileHandler) UpdateResumeFields(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	var fields models.ResumeFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	if err := h.firestoreClient.UpdateResumeFields(c.Request.Context(), claims.Email, &fields); err != nil {
		log.Printf("[ProfileHandler] Failed to update resume fields: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to update resume profile",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[ProfileHandler] Resume profile updated for %s", claims.Email)
	c.JSON(http.StatusOK, models.ParseResumeResponse{
		ResumeFields: fields,
		Message:      "Resume profile updated",
	})
}
