package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tailorcv/backend/auth"
	"github.com/tailorcv/backend/gemini"
	"github.com/tailorcv/backend/models"
	"github.com/tailorcv/backend/storage"
	"github.com/tailorcv/backend/typeset"
)

// ResumesHandler handles tailored resume generation and retrieval
type ResumesHandler struct {
	firestoreClient *storage.FirestoreClient
	storageClient   *storage.CloudStorageClient
	geminiClient    *gemini.Client
	typesetClient   *typeset.Client
}

// NewResumesHandler creates a new resumes handler
func NewResumesHandler(
	firestoreClient *storage.FirestoreClient,
	storageClient *storage.CloudStorageClient,
	geminiClient *gemini.Client,
	typesetClient *typeset.Client,
) *ResumesHandler {
	return &ResumesHandler{
		firestoreClient: firestoreClient,
		storageClient:   storageClient,
		geminiClient:    geminiClient,
		typesetClient:   typesetClient,
	}
}

// GenerateResume generates a job-tailored resume in the requested format
// @Summary Generate a tailored resume
// @Description Generate a resume tailored to one of the user's saved job ads, as structured JSON, plain text, or LaTeX
// @Tags Resumes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.GenerateResumeRequest true "Generation request"
// @Success 200 {object} models.GenerateResumeResponse "Generated resume"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Job ad or resume profile not found"
// @Failure 500 {object} models.ErrorResponse "Generation failed"
// @Router /resumes/generate [post]
func (h *ResumesHandler) GenerateResume(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	var req models.GenerateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	switch req.Format {
	case models.ResumeFormatText, models.ResumeFormatJSON, models.ResumeFormatLaTeX:
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Format must be one of: text, json, latex",
			Code:  http.StatusBadRequest,
		})
		return
	}
	if req.Format == models.ResumeFormatLaTeX && req.TemplateID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "templateID is required for the latex format",
			Code:  http.StatusBadRequest,
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

	jobAd, err := h.firestoreClient.GetJobAd(c.Request.Context(), claims.Email, req.JobID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Job ad not found",
			Code:  http.StatusNotFound,
		})
		return
	}

	tailored, err := h.geminiClient.GenerateTailoredResume(c.Request.Context(), fields, jobAd.JobDescription)
	if err != nil {
		log.Printf("[ResumesHandler] Failed to generate tailored resume: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to generate resume",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	resp := models.GenerateResumeResponse{
		ResumeID: uuid.NewString(),
		Format:   req.Format,
	}

	switch req.Format {
	case models.ResumeFormatJSON:
		resp.Resume = tailored

	case models.ResumeFormatText:
		tailoredJSON, err := json.Marshal(tailored)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: "Failed to generate resume",
				Code:  http.StatusInternalServerError,
			})
			return
		}
		content, err := h.geminiClient.GeneratePlainTextResume(c.Request.Context(), string(tailoredJSON))
		if err != nil {
			log.Printf("[ResumesHandler] Failed to render plain text resume: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "Failed to generate resume",
				Code:    http.StatusInternalServerError,
				Details: err.Error(),
			})
			return
		}
		resp.Content = content

	case models.ResumeFormatLaTeX:
		templateText, err := h.storageClient.GetTemplateText(c.Request.Context(), claims.Email, req.TemplateID)
		if err != nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "Template not found",
				Code:    http.StatusNotFound,
				Details: err.Error(),
			})
			return
		}
		tailoredJSON, err := json.Marshal(tailored)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: "Failed to generate resume",
				Code:  http.StatusInternalServerError,
			})
			return
		}
		content, err := h.geminiClient.GenerateLaTeXResume(c.Request.Context(), string(tailoredJSON), templateText)
		if err != nil {
			log.Printf("[ResumesHandler] Failed to render LaTeX resume: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "Failed to generate resume",
				Code:    http.StatusInternalServerError,
				Details: err.Error(),
			})
			return
		}
		resp.Content = content
	}

	log.Printf("[ResumesHandler] Resume %s generated for %s (format=%s, job=%s)",
		resp.ResumeID, claims.Email, req.Format, req.JobID)
	c.JSON(http.StatusOK, resp)
}

// FormatResume compiles LaTeX source into a PDF and stores the template
// @Summary Render a LaTeX resume to PDF
// @Description Compile LaTeX resume source into a PDF, saving the template for reuse
// @Tags Resumes
// @Accept json
// @Produce application/pdf
// @Security BearerAuth
// @Param request body models.FormatResumeRequest true "LaTeX source"
// @Success 200 {file} binary "Compiled PDF"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 422 {object} models.ErrorResponse "LaTeX compilation failed"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /resumes/format [post]
func (h *ResumesHandler) FormatResume(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	var req models.FormatResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}
	if req.TemplateID == "" || req.TemplateText == "" || req.TemplateName == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "templateID, templateText, templateName, or userID field is missing",
			Code:  http.StatusBadRequest,
		})
		return
	}

	pdf, err := h.typesetClient.CompilePDF(c.Request.Context(), req.TemplateText)
	if err != nil {
		if errors.Is(err, typeset.ErrCompilationFailed) {
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
				Error: "LaTeX compilation failed",
				Code:  http.StatusUnprocessableEntity,
			})
			return
		}
		log.Printf("[ResumesHandler] Typesetting failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to render PDF",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	// Persist the template so it can be reused for future generations
	if _, err := h.storageClient.UploadTemplate(c.Request.Context(), claims.Email, req.TemplateName, req.TemplateID, req.TemplateText); err != nil {
		log.Printf("[ResumesHandler] Failed to store template %s: %v", req.TemplateID, err)
	}

	c.Header("Content-Disposition", `attachment; filename="resume.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// ListApplications lists the resumes used in submitted job applications
// @Summary List application resumes
// @Description List the archived resumes the user submitted with job applications
// @Tags Resumes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.UsedResume "Archived resumes"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /user/job-applications [get]
func (h *ResumesHandler) ListApplications(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	resumes, err := h.storageClient.ListAppliedResumes(c.Request.Context(), claims.Email)
	if err != nil {
		log.Printf("[ResumesHandler] Failed to list applications: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to list applications",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, resumes)
}

// ListTemplates lists the user's stored LaTeX templates
// @Summary List LaTeX templates
// @Description List the LaTeX resume templates the user has stored
// @Tags Resumes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.LatexTemplate "Stored templates"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /templates [get]
func (h *ResumesHandler) ListTemplates(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	templates, err := h.storageClient.ListTemplates(c.Request.Context(), claims.Email)
	if err != nil {
		log.Printf("[ResumesHandler] Failed to list templates: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to list templates",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, templates)
}

// DownloadFile streams a stored object (an archived resume or template)
// belonging to the authenticated user
// @Summary Download a stored file
// @Description Stream a stored resume or template by its object path
// @Tags Resumes
// @Produce application/octet-stream
// @Security BearerAuth
// @Param file query string true "Object path"
// @Success 200 {file} binary "File content"
// @Failure 400 {object} models.ErrorResponse "Missing path"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Path belongs to another user"
// @Failure 404 {object} models.ErrorResponse "File not found"
// @Router /blob-proxy [get]
func (h *ResumesHandler) DownloadFile(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	path := c.Query("file")
	if path == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "file query parameter is required",
			Code:  http.StatusBadRequest,
		})
		return
	}

	if !storage.OwnsObjectPath(claims.Email, path) {
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Error: "Access denied",
			Code:  http.StatusForbidden,
		})
		return
	}

	data, err := h.storageClient.DownloadUserFile(c.Request.Context(), path)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "File not found",
				Code:  http.StatusNotFound,
			})
			return
		}
		log.Printf("[ResumesHandler] Failed to download %s: %v", path, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to download file",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filepath.Base(path)+`"`)
	c.Data(http.StatusOK, contentTypeFor(path), data)
}

func contentTypeFor(path string) string {
	switch filepath.Ext(path) {
	case ".pdf":
		return "application/pdf"
	case ".tex":
		return "application/x-tex"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
