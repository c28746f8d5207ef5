package typeset

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailorcv/backend/config"
)

func testClient(serverURL string) *Client {
	return NewClient(&config.Config{
		TypesetURL:            serverURL,
		TypesetTimeoutSeconds: 5,
	})
}

func TestCompilePDF_Success(t *testing.T) {
	var gotBody string
	var gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotContentType = r.Header.Get("Content-Type")

		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.5 fake pdf bytes"))
	}))
	defer server.Close()

	client := testClient(server.URL)
	pdf, err := client.CompilePDF(context.Background(), `\documentclass{article}\begin{document}hi\end{document}`)

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.5 fake pdf bytes"), pdf)
	assert.Equal(t, "application/x-tex", gotContentType)
	assert.Contains(t, gotBody, `\documentclass{article}`)
}

func TestCompilePDF_CompilationFailed(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnprocessableEntity} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		client := testClient(server.URL)
		_, err := client.CompilePDF(context.Background(), `\broken{`)
		server.Close()

		assert.ErrorIs(t, err, ErrCompilationFailed)
	}
}

func TestCompilePDF_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.CompilePDF(context.Background(), `\documentclass{article}`)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCompilationFailed)
	assert.Contains(t, err.Error(), "500")
}

func TestCompilePDF_EmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.CompilePDF(context.Background(), `\documentclass{article}`)

	assert.ErrorIs(t, err, ErrCompilationFailed)
}

func TestCompilePDF_Unreachable(t *testing.T) {
	client := testClient("http://127.0.0.1:1")
	_, err := client.CompilePDF(context.Background(), `\documentclass{article}`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "typesetting service")
}
