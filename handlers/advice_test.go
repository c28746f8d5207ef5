package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailorcv/backend/models"
)

func adviceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/jobs/advice", NewAdviceHandler().GenerateAdvice)
	return router
}

func postAdvice(t *testing.T, router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, "/api/jobs/advice", &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateAdvice_Success(t *testing.T) {
	router := adviceRouter()

	w := postAdvice(t, router, models.AdviceRequest{
		JobAd: &models.JobAd{
			JobID:          "job-1",
			CompanyName:    "Acme Corp",
			JobTitle:       "Backend Engineer",
			JobDescription: "We need a Python developer with AWS experience",
		},
		ResumeText: "Experienced Python developer, also skilled in SQL",
		UserID:     "uid123",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AdviceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Contains(t, resp.Advice, "Career Advice for Backend Engineer at Acme Corp")
	assert.Contains(t, resp.Advice, "INTERVIEW PREPARATION")
	assert.Contains(t, resp.Advice, "Key Questions to Prepare For:")
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`), resp.Timestamp)
}

func TestGenerateAdvice_MissingFields(t *testing.T) {
	router := adviceRouter()

	jobAd := &models.JobAd{
		CompanyName:    "Acme Corp",
		JobTitle:       "Backend Engineer",
		JobDescription: "Python and AWS",
	}

	tests := []struct {
		name string
		body models.AdviceRequest
	}{
		{
			name: "missing job ad",
			body: models.AdviceRequest{ResumeText: "Python developer", UserID: "uid123"},
		},
		{
			name: "missing resume text",
			body: models.AdviceRequest{JobAd: jobAd, UserID: "uid123"},
		},
		{
			name: "missing user id",
			body: models.AdviceRequest{JobAd: jobAd, ResumeText: "Python developer"},
		},
		{
			name: "empty request",
			body: models.AdviceRequest{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postAdvice(t, router, tt.body)

			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "Missing required fields: jobAd, resumeText, or userId", resp["error"])
			assert.Len(t, resp, 1)
		})
	}
}

func TestGenerateAdvice_MalformedBody(t *testing.T) {
	router := adviceRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/jobs/advice", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required fields: jobAd, resumeText, or userId", resp["error"])
}

func TestGenerateAdvice_EmptyJobFields(t *testing.T) {
	// A job ad with empty strings is still a present job ad; the engine
	// falls back to its neutral score instead of rejecting the request.
	router := adviceRouter()

	w := postAdvice(t, router, models.AdviceRequest{
		JobAd:      &models.JobAd{},
		ResumeText: "some resume text without any known keywords xyzzy",
		UserID:     "uid123",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AdviceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Advice, "Your Match Score: 50% alignment")
}

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", HealthCheck)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.NotEmpty(t, resp.Timestamp)
}
