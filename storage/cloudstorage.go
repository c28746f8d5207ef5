package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/tailorcv/backend/config"
	"github.com/tailorcv/backend/models"
)

// ErrObjectNotFound is returned when the requested object does not exist in
// the bucket.
var ErrObjectNotFound = errors.New("object not found")

// CloudStorageClient wraps Google Cloud Storage operations
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

// NewCloudStorageClient creates a new Cloud Storage client
func NewCloudStorageClient(ctx context.Context, cfg *config.Config) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: cfg.ResumeBucketName,
	}, nil
}

// Close closes the Cloud Storage client
func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

func sanitizeUserID(userID string) string {
	s := strings.ReplaceAll(userID, "@", "_at_")
	return strings.ReplaceAll(s, ".", "_")
}

// OwnsObjectPath reports whether an object path falls under the given
// user's storage prefix
func OwnsObjectPath(userID, objectPath string) bool {
	return strings.HasPrefix(objectPath, fmt.Sprintf("users/%s/", sanitizeUserID(userID)))
}

// UploadSourceResume uploads the user's original resume document
func (c *CloudStorageClient) UploadSourceResume(ctx context.Context, userID string, file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(header.Filename)
	timestamp := time.Now().Unix()

	objectName := fmt.Sprintf("users/%s/source/%d%s", sanitizeUserID(userID), timestamp, ext)

	bucket := c.client.Bucket(c.bucketName)
	obj := bucket.Object(objectName)

	wc := obj.NewWriter(ctx)
	wc.ContentType = header.Header.Get("Content-Type")
	if wc.ContentType == "" {
		wc.ContentType = getContentType(ext)
	}

	if _, err := io.Copy(wc, file); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	url := fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName)
	return url, nil
}

// UploadAppliedResume stores the exact resume file submitted for a job
// application, keyed to both the resume ID and the job ad it was used for
func (c *CloudStorageClient) UploadAppliedResume(ctx context.Context, userID string, content []byte, resumeID, jobID, ext string) (string, error) {
	objectName := fmt.Sprintf("users/%s/resumes/%s%s", sanitizeUserID(userID), resumeID, ext)

	bucket := c.client.Bucket(c.bucketName)
	obj := bucket.Object(objectName)

	wc := obj.NewWriter(ctx)
	wc.ContentType = getContentType(ext)
	wc.Metadata = map[string]string{
		"resumeID": resumeID,
		"jobID":    jobID,
	}

	if _, err := wc.Write(content); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to write content: %w", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return objectName, nil
}

// ListAppliedResumes lists the resumes the user has submitted with job
// applications, including the job ad each was used for
func (c *CloudStorageClient) ListAppliedResumes(ctx context.Context, userID string) ([]models.UsedResume, error) {
	prefix := fmt.Sprintf("users/%s/resumes/", sanitizeUserID(userID))

	bucket := c.client.Bucket(c.bucketName)
	it := bucket.Objects(ctx, &storage.Query{Prefix: prefix})

	resumes := []models.UsedResume{}
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list resumes: %w", err)
		}

		resumes = append(resumes, models.UsedResume{
			Name:     filepath.Base(attrs.Name),
			Path:     attrs.Name,
			ResumeID: attrs.Metadata["resumeID"],
			JobID:    attrs.Metadata["jobID"],
		})
	}

	return resumes, nil
}

// UploadTemplate stores a LaTeX resume template for the user
func (c *CloudStorageClient) UploadTemplate(ctx context.Context, userID, templateName, templateID, templateText string) (string, error) {
	objectName := fmt.Sprintf("users/%s/templates/%s.tex", sanitizeUserID(userID), templateID)

	bucket := c.client.Bucket(c.bucketName)
	obj := bucket.Object(objectName)

	wc := obj.NewWriter(ctx)
	wc.ContentType = "application/x-tex"
	wc.Metadata = map[string]string{
		"templateID":   templateID,
		"templateName": templateName,
	}

	if _, err := wc.Write([]byte(templateText)); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to write template: %w", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return objectName, nil
}

// ListTemplates lists the user's stored LaTeX templates
func (c *CloudStorageClient) ListTemplates(ctx context.Context, userID string) ([]models.LatexTemplate, error) {
	prefix := fmt.Sprintf("users/%s/templates/", sanitizeUserID(userID))

	bucket := c.client.Bucket(c.bucketName)
	it := bucket.Objects(ctx, &storage.Query{Prefix: prefix})

	templates := []models.LatexTemplate{}
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list templates: %w", err)
		}

		name := attrs.Metadata["templateName"]
		if name == "" {
			name = filepath.Base(attrs.Name)
		}

		templates = append(templates, models.LatexTemplate{
			TemplateName: name,
			TemplateID:   attrs.Metadata["templateID"],
			Path:         attrs.Name,
		})
	}

	return templates, nil
}

// GetTemplateText downloads a stored template by ID and returns its LaTeX
// source
func (c *CloudStorageClient) GetTemplateText(ctx context.Context, userID, templateID string) (string, error) {
	objectName := fmt.Sprintf("users/%s/templates/%s.tex", sanitizeUserID(userID), templateID)

	data, err := c.DownloadUserFile(ctx, objectName)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DownloadUserFile downloads a stored object by its full path
func (c *CloudStorageClient) DownloadUserFile(ctx context.Context, objectName string) ([]byte, error) {
	bucket := c.client.Bucket(c.bucketName)
	obj := bucket.Object(objectName)

	rc, err := obj.NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to create reader: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read object: %w", err)
	}

	return data, nil
}

// DeleteObject removes a stored object by its full path
func (c *CloudStorageClient) DeleteObject(ctx context.Context, objectName string) error {
	bucket := c.client.Bucket(c.bucketName)
	obj := bucket.Object(objectName)

	if err := obj.Delete(ctx); err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return ErrObjectNotFound
		}
		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}

// GetSignedURL generates a signed URL for temporary access
func (c *CloudStorageClient) GetSignedURL(ctx context.Context, objectName string, expiration time.Duration) (string, error) {
	opts := &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(expiration),
	}

	url, err := c.client.Bucket(c.bucketName).SignedURL(objectName, opts)
	if err != nil {
		return "", fmt.Errorf("failed to generate signed URL: %w", err)
	}

	return url, nil
}

func getContentType(ext string) string {
	switch strings.ToLower(ext) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".tex":
		return "application/x-tex"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
