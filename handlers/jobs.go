package handlers

import (
	"encoding/base64"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tailorcv/backend/auth"
	"github.com/tailorcv/backend/gemini"
	"github.com/tailorcv/backend/models"
	"github.com/tailorcv/backend/storage"
)

// JobsHandler handles saved job ad operations
type JobsHandler struct {
	firestoreClient *storage.FirestoreClient
	storageClient   *storage.CloudStorageClient
	geminiClient    *gemini.Client
}

// NewJobsHandler creates a new jobs handler
func NewJobsHandler(
	firestoreClient *storage.FirestoreClient,
	storageClient *storage.CloudStorageClient,
	geminiClient *gemini.Client,
) *JobsHandler {
	return &JobsHandler{
		firestoreClient: firestoreClient,
		storageClient:   storageClient,
		geminiClient:    geminiClient,
	}
}

// ListJobAds returns the user's saved job ads
// @Summary List saved job ads
// @Description Get all job ads the authenticated user has saved
// @Tags Jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.JobAd "Saved job ads"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /jobs [get]
func (h *JobsHandler) ListJobAds(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	jobAds, err := h.firestoreClient.GetJobAds(c.Request.Context(), claims.Email)
	if err != nil {
		log.Printf("[JobsHandler] Failed to list job ads: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to list job ads",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, jobAds)
}

// ParseJobAd parses raw job ad text into structured fields and saves the
// result to the user's job list
// @Summary Parse and save a job ad
// @Description Extract company name, job title, and description from raw job ad text, then save it
// @Tags Jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ParseJobAdRequest true "Raw job ad text"
// @Success 201 {object} models.JobAd "Saved job ad"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Parsing failed"
// @Router /jobs [post]
func (h *JobsHandler) ParseJobAd(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	var req models.ParseJobAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	jobAd, err := h.geminiClient.ParseJobAd(c.Request.Context(), req.JobAdText)
	if err != nil {
		log.Printf("[JobsHandler] Failed to parse job ad: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to parse job ad",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	jobAd.JobID = uuid.NewString()
	jobAd.DateSubmitted = time.Now().UTC().Format(time.RFC3339)
	jobAd.Applied = false

	if err := h.firestoreClient.AddJobAd(c.Request.Context(), claims.Email, jobAd); err != nil {
		log.Printf("[JobsHandler] Failed to save job ad: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to save job ad",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[JobsHandler] Job ad saved for %s: %s at %s", claims.Email, jobAd.JobTitle, jobAd.CompanyName)
	c.JSON(http.StatusCreated, jobAd)
}

// UpdateJobAd edits a saved job ad
// @Summary Update a saved job ad
// @Description Edit the fields of a saved job ad. Ads that have been applied to cannot be edited.
// @Tags Jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param jobID path string true "Job ad ID"
// @Param request body models.UpdateJobAdRequest true "Edited job ad fields"
// @Success 200 {object} models.JobAd "Updated job ad"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Job ad not found"
// @Failure 409 {object} models.ErrorResponse "Job ad already applied to"
// @Router /jobs/{jobID} [put]
func (h *JobsHandler) UpdateJobAd(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	var req models.UpdateJobAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	jobAd := &models.JobAd{
		JobID:          c.Param("jobID"),
		CompanyName:    req.CompanyName,
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
	}

	if err := h.firestoreClient.UpdateJobAd(c.Request.Context(), claims.Email, jobAd); err != nil {
		h.jobAdError(c, err, "update")
		return
	}

	log.Printf("[JobsHandler] Job ad %s updated for %s", jobAd.JobID, claims.Email)
	c.JSON(http.StatusOK, jobAd)
}

// DeleteJobAd removes a saved job ad
// @Summary Delete a saved job ad
// @Description Remove a saved job ad. Ads that have been applied to cannot be deleted.
// @Tags Jobs
// @Produce json
// @Security BearerAuth
// @Param jobID path string true "Job ad ID"
// @Success 204 "Job ad deleted"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Job ad not found"
// @Failure 409 {object} models.ErrorResponse "Job ad already applied to"
// @Router /jobs/{jobID} [delete]
func (h *JobsHandler) DeleteJobAd(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	jobID := c.Param("jobID")
	if err := h.firestoreClient.DeleteJobAd(c.Request.Context(), claims.Email, jobID); err != nil {
		h.jobAdError(c, err, "delete")
		return
	}

	log.Printf("[JobsHandler] Job ad %s deleted for %s", jobID, claims.Email)
	c.Status(http.StatusNoContent)
}

// MarkApplied flags a job ad as applied and archives the exact resume used
// @Summary Mark a job ad as applied
// @Description Flag a saved job ad as applied, storing the submitted resume file. Applied ads become immutable.
// @Tags Jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param jobID path string true "Job ad ID"
// @Param request body models.MarkAppliedRequest true "Resume used for the application"
// @Success 200 {object} models.JobAd "Job ad marked as applied"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Job ad not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /jobs/{jobID}/applied [post]
func (h *JobsHandler) MarkApplied(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	var req models.MarkAppliedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	content, err := base64.StdEncoding.DecodeString(req.ResumeContent)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Resume content must be base64-encoded",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	jobID := c.Param("jobID")
	ext := req.FileExtension
	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}

	// Archive the submitted resume before flipping the applied flag, so a
	// storage failure never leaves an applied ad without its resume.
	if _, err := h.storageClient.UploadAppliedResume(c.Request.Context(), claims.Email, content, req.ResumeID, jobID, ext); err != nil {
		log.Printf("[JobsHandler] Failed to archive applied resume: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to store applied resume",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	if err := h.firestoreClient.MarkJobApplied(c.Request.Context(), claims.Email, jobID); err != nil {
		h.jobAdError(c, err, "mark applied")
		return
	}

	jobAd, err := h.firestoreClient.GetJobAd(c.Request.Context(), claims.Email, jobID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Job ad not found",
			Code:  http.StatusNotFound,
		})
		return
	}

	log.Printf("[JobsHandler] Job ad %s marked as applied for %s", jobID, claims.Email)
	c.JSON(http.StatusOK, jobAd)
}

func (h *JobsHandler) jobAdError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, storage.ErrJobAdNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Job ad not found",
			Code:  http.StatusNotFound,
		})
	case errors.Is(err, storage.ErrJobAdApplied):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error: "Job ad has already been applied to",
			Code:  http.StatusConflict,
		})
	default:
		log.Printf("[JobsHandler] Failed to %s job ad: %v", op, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to " + op + " job ad",
			Code:  http.StatusInternalServerError,
		})
	}
}
