package dataset

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"medication-dashboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

type LoaderTestSuite struct {
	suite.Suite
	dir string
}

func (s *LoaderTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func TestLoaderTestSuite(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}

// writeWorkbook saves rows to Sheet1 of a new workbook and returns its path
func (s *LoaderTestSuite) writeWorkbook(name string, rows [][]interface{}) string {
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		s.Require().NoError(err)
		s.Require().NoError(f.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(s.dir, name)
	s.Require().NoError(f.SaveAs(path))
	return path
}

func header() []interface{} {
	return []interface{}{"No", "TreatmentPlace", "GroupProvider", "Nama Item Garda Medika", "Qty", "Amount Bill"}
}

func (s *LoaderTestSuite) TestLoad_ScenarioWorkbook() {
	path := s.writeWorkbook("claims.xlsx", [][]interface{}{
		header(),
		{1, "RS A", "X", "Paracetamol", 2, 50000},
		{2, "RS A", "X", "Amoxicillin", 1, 70000},
		{3, "RS B", "Y", "Ibuprofen", 3, 30000},
	})

	ds, err := Load(context.Background(), path, "")
	s.Require().NoError(err)

	s.Equal("Sheet1", ds.Sheet)
	s.Equal(3, ds.Len())
	s.Contains(ds.Columns, models.ColumnItemName)
	s.False(ds.LoadedAt.IsZero())

	first := ds.Lines[0]
	s.Equal("RS A", first.TreatmentPlace)
	s.Equal("X", first.GroupProvider)
	s.Equal("Paracetamol", first.ItemName)
	s.True(first.Qty.Valid)
	s.Equal("2", first.Qty.Decimal.String())
	s.Equal("50000", first.AmountBill.Decimal.String())
	s.Equal("Ibuprofen", ds.Lines[2].ItemName)
}

func (s *LoaderTestSuite) TestLoad_PreservesRowOrder() {
	rows := [][]interface{}{header()}
	names := make([]string, 0, 25)
	for i := 0; i < 25; i++ {
		name := gofakeit.ProductName()
		names = append(names, name)
		rows = append(rows, []interface{}{i + 1, "RS " + gofakeit.City(), gofakeit.Company(), name, gofakeit.Number(1, 10), gofakeit.Number(1000, 500000)})
	}
	path := s.writeWorkbook("ordered.xlsx", rows)

	ds, err := Load(context.Background(), path, "")
	s.Require().NoError(err)
	s.Require().Equal(25, ds.Len())
	for i, line := range ds.Lines {
		s.Equal(names[i], line.ItemName)
	}
	s.Less(ds.Lines[0].Row, ds.Lines[24].Row)
}

func (s *LoaderTestSuite) TestLoad_MissingValues() {
	path := s.writeWorkbook("gaps.xlsx", [][]interface{}{
		header(),
		{1, "RS A", "", "Paracetamol", nil, 50000},
		{2, "", "X", "", 1, "n/a"},
	})

	ds, err := Load(context.Background(), path, "")
	s.Require().NoError(err)
	s.Require().Equal(2, ds.Len())

	s.Equal("", ds.Lines[0].GroupProvider)
	s.False(ds.Lines[0].Qty.Valid)
	s.True(ds.Lines[0].AmountBill.Valid)

	s.Equal("", ds.Lines[1].TreatmentPlace)
	s.Equal("", ds.Lines[1].ItemName)
	s.False(ds.Lines[1].AmountBill.Valid, "non-numeric amount is treated as missing")
}

func (s *LoaderTestSuite) TestLoad_KeepsTextExactly() {
	path := s.writeWorkbook("exact.xlsx", [][]interface{}{
		header(),
		{1, "RS B ", "Y", " Paracetamol", 1, " 1000 "},
		{2, "RS B", "Y", "Amoxicillin", 1, 2000},
		{3, "RS A\nCabang", "X", "Vitamin C", 1, 3000},
	})

	ds, err := Load(context.Background(), path, "")
	s.Require().NoError(err)
	s.Require().Equal(3, ds.Len())

	s.Equal("RS B ", ds.Lines[0].TreatmentPlace)
	s.Equal(" Paracetamol", ds.Lines[0].ItemName)
	s.True(ds.Lines[0].AmountBill.Valid, "numbers are still parsed around padding")
	s.Equal("RS B", ds.Lines[1].TreatmentPlace)
	s.Equal("RS A\nCabang", ds.Lines[2].TreatmentPlace)
}

func (s *LoaderTestSuite) TestLoad_SkipsBlankRowsAndFindsHeader() {
	path := s.writeWorkbook("blank.xlsx", [][]interface{}{
		{},
		header(),
		{},
		{1, "RS A", "X", "Paracetamol", 2, 50000},
	})

	ds, err := Load(context.Background(), path, "")
	s.Require().NoError(err)
	s.Equal(1, ds.Len())
}

func (s *LoaderTestSuite) TestLoad_FileNotFound() {
	_, err := Load(context.Background(), filepath.Join(s.dir, "df_cleaned (1).xlsx"), "")
	s.True(errors.Is(err, ErrFileNotFound))
}

func (s *LoaderTestSuite) TestLoad_SchemaMismatch() {
	path := s.writeWorkbook("schema.xlsx", [][]interface{}{
		{"TreatmentPlace", "Provider", "Nama Item Garda Medika", "Qty"},
		{"RS A", "X", "Paracetamol", 2},
	})

	_, err := Load(context.Background(), path, "")

	var mismatch *SchemaMismatchError
	s.Require().True(errors.As(err, &mismatch))
	s.Equal([]string{models.ColumnGroupProvider, models.ColumnAmountBill}, mismatch.Missing)
	s.Contains(err.Error(), "GroupProvider")
}

func (s *LoaderTestSuite) TestLoad_EmptySheet() {
	path := s.writeWorkbook("empty.xlsx", nil)

	_, err := Load(context.Background(), path, "")

	var mismatch *SchemaMismatchError
	s.Require().True(errors.As(err, &mismatch))
	s.Equal(models.RequiredColumns, mismatch.Missing)
}

func (s *LoaderTestSuite) TestLoad_HeaderOnly() {
	path := s.writeWorkbook("header.xlsx", [][]interface{}{header()})

	ds, err := Load(context.Background(), path, "")
	s.Require().NoError(err)
	s.Equal(0, ds.Len())
}

func (s *LoaderTestSuite) TestLoad_NamedSheet() {
	f := excelize.NewFile()
	_, err := f.NewSheet("Claims")
	s.Require().NoError(err)
	row := header()
	s.Require().NoError(f.SetSheetRow("Claims", "A1", &row))
	data := []interface{}{1, "RS A", "X", "Paracetamol", 2, 50000}
	s.Require().NoError(f.SetSheetRow("Claims", "A2", &data))
	path := filepath.Join(s.dir, "named.xlsx")
	s.Require().NoError(f.SaveAs(path))
	s.Require().NoError(f.Close())

	ds, err := Load(context.Background(), path, "claims")
	s.Require().NoError(err)
	s.Equal("Claims", ds.Sheet)
	s.Equal(1, ds.Len())

	_, err = Load(context.Background(), path, "Missing")
	s.True(errors.Is(err, ErrNoWorksheet))
}

func (s *LoaderTestSuite) TestLoad_CancelledContext() {
	path := s.writeWorkbook("cancel.xlsx", [][]interface{}{
		header(),
		{1, "RS A", "X", "Paracetamol", 2, 50000},
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, path, "")
	s.True(errors.Is(err, context.Canceled))
}
