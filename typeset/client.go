package typeset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tailorcv/backend/config"
	"github.com/tailorcv/backend/utils"
)

// ErrCompilationFailed is returned when the typesetting service rejects the
// LaTeX source.
var ErrCompilationFailed = errors.New("LaTeX compilation failed")

// Client sends LaTeX documents to an external typesetting service and
// returns the compiled PDF
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a typesetting client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: utils.NewHTTPClient(time.Duration(cfg.TypesetTimeoutSeconds) * time.Second),
		baseURL:    cfg.TypesetURL,
	}
}

// CompilePDF submits LaTeX source for compilation and returns the PDF bytes
func (c *Client) CompilePDF(ctx context.Context, latexSource string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/compile", bytes.NewBufferString(latexSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-tex")
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach typesetting service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnprocessableEntity || resp.StatusCode == http.StatusBadRequest {
		return nil, ErrCompilationFailed
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("typesetting service returned status %d", resp.StatusCode)
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF response: %w", err)
	}
	if len(pdf) == 0 {
		return nil, ErrCompilationFailed
	}

	return pdf, nil
}
