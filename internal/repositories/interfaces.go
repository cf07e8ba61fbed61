package repositories

import (
	"context"

	"medication-dashboard/internal/models"
)

// ClaimRepositoryInterface defines the read-only queries served over the loaded dataset.
// Results always follow source row order.
type ClaimRepositoryInterface interface {
	All(ctx context.Context) ([]models.ClaimLine, error)
	FindByPair(ctx context.Context, treatment, provider string) ([]models.ClaimLine, error)
	DistinctTreatmentPlaces(ctx context.Context) ([]string, error)
	DistinctGroupProviders(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}
