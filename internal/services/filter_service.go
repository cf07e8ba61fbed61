package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"medication-dashboard/internal/models"
	"medication-dashboard/internal/repositories"
)

// ErrUnknownFilterValue is returned when a selection holds a value the dataset does not offer
var ErrUnknownFilterValue = errors.New("unknown filter value")

const (
	DimensionTreatment = "treatments"
	DimensionProvider  = "providers"
)

// UnknownFilterValueError names the rejected value and its dimension
type UnknownFilterValueError struct {
	Dimension string
	Value     string
}

func (e *UnknownFilterValueError) Error() string {
	return fmt.Sprintf("%s: %q is not a known %s value", ErrUnknownFilterValue, e.Value, e.Dimension)
}

func (e *UnknownFilterValueError) Unwrap() error {
	return ErrUnknownFilterValue
}

type FilterService struct {
	claimRepo repositories.ClaimRepositoryInterface
	logger    DashboardLoggerInterface
}

func NewFilterService(claimRepo repositories.ClaimRepositoryInterface, logger DashboardLoggerInterface) FilterServiceInterface {
	return &FilterService{
		claimRepo: claimRepo,
		logger:    logger,
	}
}

// Options lists the distinct non-missing values of each dimension in first-seen order
func (s *FilterService) Options(ctx context.Context) (models.FilterOptions, error) {
	treatments, err := s.claimRepo.DistinctTreatmentPlaces(ctx)
	if err != nil {
		return models.FilterOptions{}, fmt.Errorf("failed to list treatment places: %w", err)
	}
	providers, err := s.claimRepo.DistinctGroupProviders(ctx)
	if err != nil {
		return models.FilterOptions{}, fmt.Errorf("failed to list group providers: %w", err)
	}
	return models.FilterOptions{
		TreatmentPlaces: treatments,
		GroupProviders:  providers,
	}, nil
}

// DefaultSelection preselects the first option of each list
func (s *FilterService) DefaultSelection(ctx context.Context) (models.FilterSelection, error) {
	options, err := s.Options(ctx)
	if err != nil {
		return models.FilterSelection{}, err
	}
	selection := models.FilterSelection{
		Treatments: []string{},
		Providers:  []string{},
	}
	if len(options.TreatmentPlaces) > 0 {
		selection.Treatments = append(selection.Treatments, options.TreatmentPlaces[0])
	}
	if len(options.GroupProviders) > 0 {
		selection.Providers = append(selection.Providers, options.GroupProviders[0])
	}
	return selection, nil
}

// Normalize drops empty values and duplicates keeping the first occurrence,
// and rejects anything not offered by Options. Values are compared exactly.
func (s *FilterService) Normalize(ctx context.Context, selection models.FilterSelection) (models.FilterSelection, error) {
	options, err := s.Options(ctx)
	if err != nil {
		return models.FilterSelection{}, err
	}

	treatments, err := s.normalizeDimension(ctx, DimensionTreatment, selection.Treatments, options.TreatmentPlaces)
	if err != nil {
		return models.FilterSelection{}, err
	}
	providers, err := s.normalizeDimension(ctx, DimensionProvider, selection.Providers, options.GroupProviders)
	if err != nil {
		return models.FilterSelection{}, err
	}

	return models.FilterSelection{
		Treatments: treatments,
		Providers:  providers,
	}, nil
}

func (s *FilterService) normalizeDimension(ctx context.Context, dimension string, values, allowed []string) ([]string, error) {
	known := make(map[string]struct{}, len(allowed))
	for _, v := range allowed {
		known[v] = struct{}{}
	}

	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := known[v]; !ok {
			// Browsers submit line breaks inside option values as CRLF.
			if unfolded := strings.ReplaceAll(v, "\r\n", "\n"); unfolded != v {
				if _, ok := known[unfolded]; ok {
					v = unfolded
				}
			}
		}
		if _, dup := seen[v]; dup {
			continue
		}
		if _, ok := known[v]; !ok {
			if s.logger != nil {
				s.logger.LogSelectionRejected(ctx, dimension, v)
			}
			return nil, &UnknownFilterValueError{Dimension: dimension, Value: v}
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}
