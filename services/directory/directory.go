// File: services/directory/directory.go
package directory

import (
	"context"
	"sync"

	"mindnest/models"

	"go.uber.org/zap"
)

// TherapistAPI is the slice of the therapist service the directory uses.
type TherapistAPI interface {
	Search(ctx context.Context, token string, filters models.TherapistSearchFilters) ([]models.TherapistSummary, error)
	GetPublic(ctx context.Context, token, therapistID string) (*models.TherapistProfile, error)
	ListSpecializations(ctx context.Context, token string) ([]models.Specialization, error)
	ListApproaches(ctx context.Context, token string) ([]models.Approach, error)
}

// BrowseResult is the search screen payload: the matching therapists plus the
// filter taxonomies.
type BrowseResult struct {
	Therapists      []models.TherapistSummary `json:"therapists"`
	Specializations []models.Specialization   `json:"specializations"`
	Approaches      []models.Approach         `json:"approaches"`
}

// Service backs the patient-facing therapist search screens.
type Service interface {
	Browse(ctx context.Context, token string, filters models.TherapistSearchFilters) (*BrowseResult, error)
	PublicProfile(ctx context.Context, token, therapistID string) (*models.TherapistProfile, error)
}

// DefaultService implements Service.
type DefaultService struct {
	Therapist TherapistAPI
	Logger    *zap.Logger
}

// Browse runs the search and the two taxonomy fetches concurrently and joins
// the results. The first error wins.
func (s *DefaultService) Browse(ctx context.Context, token string, filters models.TherapistSearchFilters) (*BrowseResult, error) {
	var (
		wg     sync.WaitGroup
		result BrowseResult
		errCh  = make(chan error, 3)
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		therapists, err := s.Therapist.Search(ctx, token, filters)
		if err != nil {
			errCh <- err
			return
		}
		result.Therapists = therapists
	}()
	go func() {
		defer wg.Done()
		specs, err := s.Therapist.ListSpecializations(ctx, token)
		if err != nil {
			errCh <- err
			return
		}
		result.Specializations = specs
	}()
	go func() {
		defer wg.Done()
		approaches, err := s.Therapist.ListApproaches(ctx, token)
		if err != nil {
			errCh <- err
			return
		}
		result.Approaches = approaches
	}()
	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *DefaultService) PublicProfile(ctx context.Context, token, therapistID string) (*models.TherapistProfile, error) {
	return s.Therapist.GetPublic(ctx, token, therapistID)
}
