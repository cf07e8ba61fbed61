package repositories

import (
	"context"
	"errors"

	"medication-dashboard/internal/models"
)

var ErrDatasetNotLoaded = errors.New("dataset not loaded")

// memoryClaimRepository scans the immutable dataset slice directly
type memoryClaimRepository struct {
	dataset *models.Dataset
}

// NewMemoryClaimRepository creates a repository backed by the loaded dataset
func NewMemoryClaimRepository(dataset *models.Dataset) ClaimRepositoryInterface {
	return &memoryClaimRepository{dataset: dataset}
}

func (r *memoryClaimRepository) All(ctx context.Context) ([]models.ClaimLine, error) {
	if r.dataset == nil {
		return nil, ErrDatasetNotLoaded
	}
	lines := make([]models.ClaimLine, len(r.dataset.Lines))
	copy(lines, r.dataset.Lines)
	return lines, nil
}

// FindByPair returns the lines matching the pair; an empty value applies no filter
func (r *memoryClaimRepository) FindByPair(ctx context.Context, treatment, provider string) ([]models.ClaimLine, error) {
	if r.dataset == nil {
		return nil, ErrDatasetNotLoaded
	}
	var lines []models.ClaimLine
	for i := range r.dataset.Lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if r.dataset.Lines[i].Matches(treatment, provider) {
			lines = append(lines, r.dataset.Lines[i])
		}
	}
	return lines, nil
}

func (r *memoryClaimRepository) DistinctTreatmentPlaces(ctx context.Context) ([]string, error) {
	return r.distinct(func(l *models.ClaimLine) string { return l.TreatmentPlace })
}

func (r *memoryClaimRepository) DistinctGroupProviders(ctx context.Context) ([]string, error) {
	return r.distinct(func(l *models.ClaimLine) string { return l.GroupProvider })
}

func (r *memoryClaimRepository) Count(ctx context.Context) (int64, error) {
	if r.dataset == nil {
		return 0, ErrDatasetNotLoaded
	}
	return int64(len(r.dataset.Lines)), nil
}

func (r *memoryClaimRepository) Ping(ctx context.Context) error {
	if r.dataset == nil {
		return ErrDatasetNotLoaded
	}
	return nil
}

// distinct collects non-missing values in first-seen order
func (r *memoryClaimRepository) distinct(field func(*models.ClaimLine) string) ([]string, error) {
	if r.dataset == nil {
		return nil, ErrDatasetNotLoaded
	}
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for i := range r.dataset.Lines {
		v := field(&r.dataset.Lines[i])
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values, nil
}
