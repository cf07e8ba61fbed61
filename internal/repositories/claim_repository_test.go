package repositories

import (
	"context"
	"testing"
	"time"

	"medication-dashboard/internal/database"
	"medication-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func amount(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}

func fixtureDataset() *models.Dataset {
	return &models.Dataset{
		SourcePath: "claims.xlsx",
		Sheet:      "Sheet1",
		Columns:    models.RequiredColumns,
		LoadedAt:   time.Now().UTC(),
		Lines: []models.ClaimLine{
			{Row: 2, TreatmentPlace: "RS B", GroupProvider: "Y", ItemName: "Ibuprofen", Qty: amount(3), AmountBill: amount(30000)},
			{Row: 3, TreatmentPlace: "RS A", GroupProvider: "X", ItemName: "Paracetamol", Qty: amount(2), AmountBill: amount(50000)},
			{Row: 4, TreatmentPlace: "RS A", GroupProvider: "Z", ItemName: "Vitamin C", Qty: amount(1), AmountBill: decimal.NullDecimal{}},
			{Row: 5, TreatmentPlace: "RS A", GroupProvider: "X", ItemName: "Amoxicillin", Qty: decimal.NullDecimal{}, AmountBill: amount(70000)},
			{Row: 6, TreatmentPlace: "", GroupProvider: "Y", ItemName: "Antasida", Qty: amount(1), AmountBill: amount(15000)},
		},
	}
}

// ClaimRepositorySuite runs the same behaviour checks against every backend
type ClaimRepositorySuite struct {
	suite.Suite
	newRepo func(t *testing.T, ds *models.Dataset) ClaimRepositoryInterface
	repo    ClaimRepositoryInterface
	ctx     context.Context
}

func (s *ClaimRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.newRepo(s.T(), fixtureDataset())
}

func TestMemoryClaimRepositorySuite(t *testing.T) {
	suite.Run(t, &ClaimRepositorySuite{
		newRepo: func(t *testing.T, ds *models.Dataset) ClaimRepositoryInterface {
			return NewMemoryClaimRepository(ds)
		},
	})
}

func TestSQLiteClaimRepositorySuite(t *testing.T) {
	suite.Run(t, &ClaimRepositorySuite{
		newRepo: func(t *testing.T, ds *models.Dataset) ClaimRepositoryInterface {
			db := database.SetupTestDB(t)
			if err := ImportDataset(context.Background(), db.DB, ds); err != nil {
				t.Fatalf("failed to import dataset: %v", err)
			}
			return NewClaimRepository(db.DB)
		},
	})
}

func (s *ClaimRepositorySuite) itemNames(lines []models.ClaimLine) []string {
	names := make([]string, len(lines))
	for i, l := range lines {
		names[i] = l.ItemName
	}
	return names
}

func (s *ClaimRepositorySuite) TestAll_RowOrder() {
	lines, err := s.repo.All(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Ibuprofen", "Paracetamol", "Vitamin C", "Amoxicillin", "Antasida"}, s.itemNames(lines))
}

func (s *ClaimRepositorySuite) TestFindByPair_Match() {
	lines, err := s.repo.FindByPair(s.ctx, "RS A", "X")
	s.Require().NoError(err)
	s.Equal([]string{"Paracetamol", "Amoxicillin"}, s.itemNames(lines))

	s.True(lines[0].AmountBill.Valid)
	s.True(lines[0].AmountBill.Decimal.Equal(decimal.NewFromInt(50000)))
	s.False(lines[1].Qty.Valid, "missing quantity stays missing")
}

func (s *ClaimRepositorySuite) TestFindByPair_NoMatch() {
	lines, err := s.repo.FindByPair(s.ctx, "RS A", "Y")
	s.Require().NoError(err)
	s.Empty(lines)
}

func (s *ClaimRepositorySuite) TestFindByPair_EmptyValueAppliesNoFilter() {
	lines, err := s.repo.FindByPair(s.ctx, "", "Y")
	s.Require().NoError(err)
	s.Equal([]string{"Ibuprofen", "Antasida"}, s.itemNames(lines))

	lines, err = s.repo.FindByPair(s.ctx, "RS A", "")
	s.Require().NoError(err)
	s.Len(lines, 3)
}

func (s *ClaimRepositorySuite) TestDistinct_FirstSeenOrderWithoutMissing() {
	treatments, err := s.repo.DistinctTreatmentPlaces(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"RS B", "RS A"}, treatments)

	providers, err := s.repo.DistinctGroupProviders(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Y", "X", "Z"}, providers)
}

func (s *ClaimRepositorySuite) TestCountAndPing() {
	count, err := s.repo.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(5), count)
	s.NoError(s.repo.Ping(s.ctx))
}

func (s *ClaimRepositorySuite) TestFindByPair_ExactEquality() {
	repo := s.newRepo(s.T(), &models.Dataset{
		Lines: []models.ClaimLine{
			{Row: 2, TreatmentPlace: "RS B ", GroupProvider: "Y", ItemName: "Ibuprofen"},
			{Row: 3, TreatmentPlace: "RS B", GroupProvider: "Y", ItemName: "Paracetamol"},
			{Row: 4, TreatmentPlace: "RS A\nCabang", GroupProvider: "Y", ItemName: "Antasida"},
		},
	})

	places, err := repo.DistinctTreatmentPlaces(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"RS B ", "RS B", "RS A\nCabang"}, places)

	lines, err := repo.FindByPair(s.ctx, "RS B", "Y")
	s.Require().NoError(err)
	s.Equal([]string{"Paracetamol"}, s.itemNames(lines))

	lines, err = repo.FindByPair(s.ctx, "RS A\nCabang", "Y")
	s.Require().NoError(err)
	s.Equal([]string{"Antasida"}, s.itemNames(lines))
}

func TestMemoryClaimRepository_NotLoaded(t *testing.T) {
	repo := NewMemoryClaimRepository(nil)
	ctx := context.Background()

	_, err := repo.All(ctx)
	assert.ErrorIs(t, err, ErrDatasetNotLoaded)
	_, err = repo.FindByPair(ctx, "RS A", "X")
	assert.ErrorIs(t, err, ErrDatasetNotLoaded)
	assert.ErrorIs(t, repo.Ping(ctx), ErrDatasetNotLoaded)
}

func TestMemoryClaimRepository_AllReturnsCopy(t *testing.T) {
	ds := fixtureDataset()
	repo := NewMemoryClaimRepository(ds)

	lines, err := repo.All(context.Background())
	require.NoError(t, err)
	lines[0].ItemName = "changed"
	assert.Equal(t, "Ibuprofen", ds.Lines[0].ItemName)
}

func TestImportDataset(t *testing.T) {
	db := database.SetupTestDB(t)
	ds := fixtureDataset()

	require.NoError(t, ImportDataset(context.Background(), db.DB, ds))
	assert.Equal(t, "Ibuprofen", ds.Lines[0].ItemName)

	assert.ErrorIs(t, ImportDataset(context.Background(), db.DB, nil), ErrDatasetNotLoaded)
	assert.NoError(t, ImportDataset(context.Background(), db.DB, &models.Dataset{}))
}

func TestClaimRepository_OrdersByRowRegardlessOfInsertOrder(t *testing.T) {
	db := database.SetupTestDB(t)
	lines := fixtureDataset().Lines
	reversed := make([]models.ClaimLine, 0, len(lines))
	for i := len(lines) - 1; i >= 0; i-- {
		reversed = append(reversed, lines[i])
	}
	database.SeedClaimLines(t, db, reversed)

	repo := NewClaimRepository(db.DB)
	all, err := repo.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, len(lines))
	for i := range lines {
		assert.Equal(t, lines[i].Row, all[i].Row)
	}

	database.CleanupTestDB(t, db)
	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}
