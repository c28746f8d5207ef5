package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tailorcv/backend/advice"
	"github.com/tailorcv/backend/models"
)

// AdviceHandler handles career advice requests
type AdviceHandler struct{}

// NewAdviceHandler creates a new advice handler
func NewAdviceHandler() *AdviceHandler {
	return &AdviceHandler{}
}

// GenerateAdvice produces a tailored career advice report for a job ad
// @Summary Generate career advice
// @Description Analyze a job ad against the user's resume text and generate a tailored advice report with a match score, skill gaps, and interview questions
// @Tags Advice
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.AdviceRequest true "Advice request"
// @Success 200 {object} models.AdviceResponse "Generated advice"
// @Failure 400 {object} map[string]string "Missing required fields"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /jobs/advice [post]
func (h *AdviceHandler) GenerateAdvice(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[AdviceHandler] Panic while generating advice: %v", r)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
	}()

	var req models.AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required fields: jobAd, resumeText, or userId",
		})
		return
	}

	if req.JobAd == nil || req.ResumeText == "" || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required fields: jobAd, resumeText, or userId",
		})
		return
	}

	report := advice.GenerateAdvice(*req.JobAd, req.ResumeText)

	log.Printf("[AdviceHandler] Advice generated for user %s, job %s", req.UserID, req.JobAd.JobID)
	c.JSON(http.StatusOK, models.AdviceResponse{
		Advice:    report,
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
	})
}
