package directory

import (
	"context"
	"errors"
	"testing"

	"mindnest/models"

	"go.uber.org/zap"
)

type fakeTherapistAPI struct {
	therapists      []models.TherapistSummary
	specializations []models.Specialization
	approaches      []models.Approach
	searchErr       error
	taxonomyErr     error
	lastFilters     models.TherapistSearchFilters
}

func (f *fakeTherapistAPI) Search(ctx context.Context, token string, filters models.TherapistSearchFilters) ([]models.TherapistSummary, error) {
	f.lastFilters = filters
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.therapists, nil
}

func (f *fakeTherapistAPI) GetPublic(ctx context.Context, token, therapistID string) (*models.TherapistProfile, error) {
	return &models.TherapistProfile{UserID: therapistID}, nil
}

func (f *fakeTherapistAPI) ListSpecializations(ctx context.Context, token string) ([]models.Specialization, error) {
	if f.taxonomyErr != nil {
		return nil, f.taxonomyErr
	}
	return f.specializations, nil
}

func (f *fakeTherapistAPI) ListApproaches(ctx context.Context, token string) ([]models.Approach, error) {
	if f.taxonomyErr != nil {
		return nil, f.taxonomyErr
	}
	return f.approaches, nil
}

func TestBrowseJoinsSearchAndTaxonomies(t *testing.T) {
	api := &fakeTherapistAPI{
		therapists: []models.TherapistSummary{
			{UserID: "th-1", FullName: "Ada Mwangi", Verified: true},
		},
		specializations: []models.Specialization{{ID: "sp-1", Name: "anxiety"}},
		approaches:      []models.Approach{{ID: "ap-1", Name: "CBT"}},
	}
	svc := &DefaultService{Therapist: api, Logger: zap.NewNop()}

	filters := models.TherapistSearchFilters{Specialization: "anxiety", VerifiedOnly: true}
	result, err := svc.Browse(context.Background(), "tok", filters)
	if err != nil {
		t.Fatalf("Browse failed: %v", err)
	}
	if len(result.Therapists) != 1 || result.Therapists[0].UserID != "th-1" {
		t.Fatalf("unexpected therapists: %+v", result.Therapists)
	}
	if len(result.Specializations) != 1 || len(result.Approaches) != 1 {
		t.Fatalf("expected both taxonomies loaded, got %+v", result)
	}
	if api.lastFilters != filters {
		t.Fatalf("filters not passed through: %+v", api.lastFilters)
	}
}

func TestBrowsePropagatesSearchError(t *testing.T) {
	api := &fakeTherapistAPI{searchErr: errors.New("search index offline")}
	svc := &DefaultService{Therapist: api, Logger: zap.NewNop()}

	if _, err := svc.Browse(context.Background(), "tok", models.TherapistSearchFilters{}); err == nil {
		t.Fatal("expected the search error propagated")
	}
}

func TestBrowsePropagatesTaxonomyError(t *testing.T) {
	api := &fakeTherapistAPI{taxonomyErr: errors.New("taxonomy service offline")}
	svc := &DefaultService{Therapist: api, Logger: zap.NewNop()}

	if _, err := svc.Browse(context.Background(), "tok", models.TherapistSearchFilters{}); err == nil {
		t.Fatal("expected the taxonomy error propagated")
	}
}

func TestPublicProfilePassesThrough(t *testing.T) {
	svc := &DefaultService{Therapist: &fakeTherapistAPI{}, Logger: zap.NewNop()}

	profile, err := svc.PublicProfile(context.Background(), "tok", "th-7")
	if err != nil {
		t.Fatalf("PublicProfile failed: %v", err)
	}
	if profile.UserID != "th-7" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}
