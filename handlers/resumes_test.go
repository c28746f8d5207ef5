package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailorcv/backend/auth"
	"github.com/tailorcv/backend/config"
	"github.com/tailorcv/backend/models"
	"github.com/tailorcv/backend/typeset"
)

func formatRouter(typesetClient *typeset.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewResumesHandler(nil, nil, nil, typesetClient)

	router := gin.New()
	router.POST("/api/resumes/format", func(c *gin.Context) {
		c.Set(auth.AuthClaimsKey, &auth.Claims{UserID: "user-1", Email: "user@example.com"})
	}, handler.FormatResume)
	return router
}

func postFormat(t *testing.T, router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, "/api/resumes/format", &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestFormatResume_MissingFields(t *testing.T) {
	router := formatRouter(nil)

	tests := []struct {
		name string
		req  models.FormatResumeRequest
	}{
		{
			name: "missing templateID",
			req:  models.FormatResumeRequest{TemplateName: "modern", TemplateText: `\documentclass{article}`},
		},
		{
			name: "missing templateText",
			req:  models.FormatResumeRequest{TemplateName: "modern", TemplateID: "tpl-1"},
		},
		{
			name: "missing templateName",
			req:  models.FormatResumeRequest{TemplateID: "tpl-1", TemplateText: `\documentclass{article}`},
		},
		{
			name: "empty request",
			req:  models.FormatResumeRequest{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postFormat(t, router, tt.req)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "templateID, templateText, templateName, or userID field is missing", resp.Error)
		})
	}
}

func TestFormatResume_Unauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewResumesHandler(nil, nil, nil, nil)
	router := gin.New()
	router.POST("/api/resumes/format", handler.FormatResume)

	w := postFormat(t, router, models.FormatResumeRequest{
		TemplateName: "modern",
		TemplateID:   "tpl-1",
		TemplateText: `\documentclass{article}`,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFormatResume_CompilationFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	router := formatRouter(typeset.NewClient(&config.Config{
		TypesetURL:            server.URL,
		TypesetTimeoutSeconds: 5,
	}))

	w := postFormat(t, router, models.FormatResumeRequest{
		TemplateName: "modern",
		TemplateID:   "tpl-1",
		TemplateText: `\documentclass{article}\begin{document}\end{document}`,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "LaTeX compilation failed", resp.Error)
}
