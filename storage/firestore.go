package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tailorcv/backend/config"
	"github.com/tailorcv/backend/models"
)

const usersCollection = "users"

// ErrUserNotFound is returned when no user document exists for the given key.
var ErrUserNotFound = errors.New("user not found")

// ErrJobAdNotFound is returned when a job ad ID does not exist for the user.
var ErrJobAdNotFound = errors.New("job ad not found")

// ErrJobAdApplied is returned when attempting to modify a job ad that has
// already been applied to.
var ErrJobAdApplied = errors.New("job ad has already been applied to")

// FirestoreClient wraps Firestore operations
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient creates a new Firestore client
func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*FirestoreClient, error) {
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreClient{client: client}, nil
}

// Close closes the Firestore client
func (f *FirestoreClient) Close() error {
	return f.client.Close()
}

// CreateUser creates a new user in Firestore
func (f *FirestoreClient) CreateUser(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	// Use email as document ID for uniqueness
	docRef := f.client.Collection(usersCollection).Doc(user.Email)

	// Check if user already exists
	_, err := docRef.Get(ctx)
	if err == nil {
		return errors.New("user with this email already exists")
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to check user existence: %w", err)
	}

	// Create user
	_, err = docRef.Set(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = user.Email
	return nil
}

// GetUserByEmail retrieves a user by email
func (f *FirestoreClient) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	docRef := f.client.Collection(usersCollection).Doc(email)
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// GetUserByGoogleID retrieves a user by Google ID
func (f *FirestoreClient) GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	iter := f.client.Collection(usersCollection).Where("googleId", "==", googleID).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// UpdateUser updates user data
func (f *FirestoreClient) UpdateUser(ctx context.Context, email string, updates map[string]interface{}) error {
	updates["updatedAt"] = time.Now()

	docRef := f.client.Collection(usersCollection).Doc(email)
	_, err := docRef.Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// UpdateUserResumeURL updates the URL of the user's uploaded source resume
func (f *FirestoreClient) UpdateUserResumeURL(ctx context.Context, email, resumeURL string) error {
	return f.UpdateUser(ctx, email, map[string]interface{}{
		"resumeUrl": resumeURL,
	})
}

// UpdateUserProfile updates user's display name
func (f *FirestoreClient) UpdateUserProfile(ctx context.Context, email string, name string) error {
	updates := map[string]interface{}{}
	if name != "" {
		updates["name"] = name
	}

	if len(updates) == 0 {
		return nil
	}

	return f.UpdateUser(ctx, email, updates)
}

// UpdateResumeFields replaces the user's structured resume profile
func (f *FirestoreClient) UpdateResumeFields(ctx context.Context, email string, fields *models.ResumeFields) error {
	return f.UpdateUser(ctx, email, map[string]interface{}{
		"resumeFields": fields,
	})
}

// GetResumeFields retrieves the user's structured resume profile
func (f *FirestoreClient) GetResumeFields(ctx context.Context, email string) (*models.ResumeFields, error) {
	user, err := f.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user.ResumeFields == nil {
		return nil, errors.New("no resume profile saved for user")
	}
	return user.ResumeFields, nil
}

// GetJobAds retrieves all saved job ads for a user
func (f *FirestoreClient) GetJobAds(ctx context.Context, email string) ([]models.JobAd, error) {
	user, err := f.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user.JobAds == nil {
		return []models.JobAd{}, nil
	}
	return user.JobAds, nil
}

// GetJobAd retrieves a single saved job ad by ID
func (f *FirestoreClient) GetJobAd(ctx context.Context, email, jobID string) (*models.JobAd, error) {
	jobAds, err := f.GetJobAds(ctx, email)
	if err != nil {
		return nil, err
	}

	for i := range jobAds {
		if jobAds[i].JobID == jobID {
			return &jobAds[i], nil
		}
	}
	return nil, ErrJobAdNotFound
}

// AddJobAd appends a job ad to the user's saved list
func (f *FirestoreClient) AddJobAd(ctx context.Context, email string, jobAd *models.JobAd) error {
	jobAds, err := f.GetJobAds(ctx, email)
	if err != nil {
		return err
	}

	jobAds = append(jobAds, *jobAd)
	return f.UpdateUser(ctx, email, map[string]interface{}{
		"jobAds": jobAds,
	})
}

// UpdateJobAd replaces the fields of a saved job ad. Ads that have been
// applied to are immutable.
func (f *FirestoreClient) UpdateJobAd(ctx context.Context, email string, jobAd *models.JobAd) error {
	jobAds, err := f.GetJobAds(ctx, email)
	if err != nil {
		return err
	}

	for i := range jobAds {
		if jobAds[i].JobID != jobAd.JobID {
			continue
		}
		if jobAds[i].Applied {
			return ErrJobAdApplied
		}
		jobAd.DateSubmitted = jobAds[i].DateSubmitted
		jobAds[i] = *jobAd
		return f.UpdateUser(ctx, email, map[string]interface{}{
			"jobAds": jobAds,
		})
	}
	return ErrJobAdNotFound
}

// DeleteJobAd removes a saved job ad. Ads that have been applied to cannot
// be deleted.
func (f *FirestoreClient) DeleteJobAd(ctx context.Context, email, jobID string) error {
	jobAds, err := f.GetJobAds(ctx, email)
	if err != nil {
		return err
	}

	for i := range jobAds {
		if jobAds[i].JobID != jobID {
			continue
		}
		if jobAds[i].Applied {
			return ErrJobAdApplied
		}
		jobAds = append(jobAds[:i], jobAds[i+1:]...)
		return f.UpdateUser(ctx, email, map[string]interface{}{
			"jobAds": jobAds,
		})
	}
	return ErrJobAdNotFound
}

// MarkJobApplied flags a saved job ad as applied, freezing it from further
// edits or deletion
func (f *FirestoreClient) MarkJobApplied(ctx context.Context, email, jobID string) error {
	jobAds, err := f.GetJobAds(ctx, email)
	if err != nil {
		return err
	}

	for i := range jobAds {
		if jobAds[i].JobID != jobID {
			continue
		}
		jobAds[i].Applied = true
		return f.UpdateUser(ctx, email, map[string]interface{}{
			"jobAds": jobAds,
		})
	}
	return ErrJobAdNotFound
}

// DeleteUser deletes a user
func (f *FirestoreClient) DeleteUser(ctx context.Context, email string) error {
	docRef := f.client.Collection(usersCollection).Doc(email)
	_, err := docRef.Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
