package repositories

import (
	"context"
	"fmt"

	"medication-dashboard/internal/models"

	"gorm.io/gorm"
)

const importBatchSize = 500

// claimRepository answers dataset queries through the in-memory SQLite store
type claimRepository struct {
	db *gorm.DB
}

// NewClaimRepository creates a gorm-backed repository over an already populated claim_lines table
func NewClaimRepository(db *gorm.DB) ClaimRepositoryInterface {
	return &claimRepository{db: db}
}

// ImportDataset copies every dataset line into claim_lines in one transaction.
// It runs once at startup; the table is read-only afterwards.
func ImportDataset(ctx context.Context, db *gorm.DB, dataset *models.Dataset) error {
	if dataset == nil {
		return ErrDatasetNotLoaded
	}
	if len(dataset.Lines) == 0 {
		return nil
	}
	lines := append([]models.ClaimLine(nil), dataset.Lines...)
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(lines, importBatchSize).Error; err != nil {
			return fmt.Errorf("failed to import claim lines: %w", err)
		}
		return nil
	})
}

func (r *claimRepository) All(ctx context.Context) ([]models.ClaimLine, error) {
	var lines []models.ClaimLine
	if err := r.db.WithContext(ctx).Order("ordinal").Find(&lines).Error; err != nil {
		return nil, fmt.Errorf("failed to list claim lines: %w", err)
	}
	return lines, nil
}

// FindByPair returns the lines matching the pair; an empty value applies no filter
func (r *claimRepository) FindByPair(ctx context.Context, treatment, provider string) ([]models.ClaimLine, error) {
	query := r.db.WithContext(ctx).Model(&models.ClaimLine{})
	if treatment != "" {
		query = query.Where("treatment_place = ?", treatment)
	}
	if provider != "" {
		query = query.Where("group_provider = ?", provider)
	}

	var lines []models.ClaimLine
	if err := query.Order("ordinal").Find(&lines).Error; err != nil {
		return nil, fmt.Errorf("failed to find claim lines by pair: %w", err)
	}
	return lines, nil
}

func (r *claimRepository) DistinctTreatmentPlaces(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "treatment_place")
}

func (r *claimRepository) DistinctGroupProviders(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "group_provider")
}

func (r *claimRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ClaimLine{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count claim lines: %w", err)
	}
	return count, nil
}

func (r *claimRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// distinct returns non-missing values of column ordered by first appearance
func (r *claimRepository) distinct(ctx context.Context, column string) ([]string, error) {
	values := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&models.ClaimLine{}).
		Where(column+" <> ''").
		Group(column).
		Order("MIN(ordinal)").
		Pluck(column, &values).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct %s: %w", column, err)
	}
	return values, nil
}
