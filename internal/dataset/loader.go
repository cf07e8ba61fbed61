package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"medication-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var (
	// ErrFileNotFound is returned when the workbook path does not resolve
	ErrFileNotFound = errors.New("dataset file not found")
	// ErrNoWorksheet is returned when the workbook has no sheets or the named sheet is absent
	ErrNoWorksheet = errors.New("worksheet not found")
)

// SchemaMismatchError reports required columns absent from the header row
type SchemaMismatchError struct {
	Required []string
	Missing  []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("dataset is missing required columns %s (required: %s)",
		strings.Join(e.Missing, ", "), strings.Join(e.Required, ", "))
}

// Load reads the workbook at path into an immutable Dataset. An empty sheet
// selects the first worksheet. The header row is the first non-empty row.
func Load(ctx context.Context, path, sheet string) (*models.Dataset, error) {
	start := time.Now()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("stat dataset: %w", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("failed to close workbook", "path", path, "error", cerr)
		}
	}()

	sheetName, err := resolveSheet(f, sheet)
	if err != nil {
		return nil, err
	}

	rows, err := f.Rows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	defer rows.Close()

	ds := &models.Dataset{
		SourcePath: path,
		Sheet:      sheetName,
	}

	var (
		index     columnIndex
		rowNumber int
		invalid   int
	)

	for rows.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rowNumber++

		cells, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", rowNumber, err)
		}
		if isBlankRow(cells) {
			continue
		}

		if index == nil {
			ds.Columns = trimAll(cells)
			index, err = buildColumnIndex(ds.Columns)
			if err != nil {
				return nil, err
			}
			continue
		}

		line, bad := index.parse(rowNumber, cells)
		invalid += bad
		ds.Lines = append(ds.Lines, line)
	}
	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	if index == nil {
		// No header row at all: every required column is missing.
		return nil, &SchemaMismatchError{Required: models.RequiredColumns, Missing: models.RequiredColumns}
	}

	if invalid > 0 {
		slog.Warn("non-numeric cells treated as missing",
			"path", filepath.Base(path),
			"sheet", sheetName,
			"cells", invalid)
	}

	ds.LoadedAt = time.Now().UTC()

	slog.Info("dataset loaded",
		"path", path,
		"sheet", sheetName,
		"rows", len(ds.Lines),
		"columns", len(ds.Columns),
		"duration_ms", time.Since(start).Milliseconds())

	return ds, nil
}

func resolveSheet(f *excelize.File, sheet string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", ErrNoWorksheet
	}
	if sheet == "" {
		return sheets[0], nil
	}
	for _, name := range sheets {
		if strings.EqualFold(name, sheet) {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %q (available: %s)", ErrNoWorksheet, sheet, strings.Join(sheets, ", "))
}

// columnIndex maps each required column to its position in the header row
type columnIndex map[string]int

func buildColumnIndex(header []string) (columnIndex, error) {
	index := make(columnIndex, len(models.RequiredColumns))
	for i, name := range header {
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range models.RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaMismatchError{Required: models.RequiredColumns, Missing: missing}
	}
	return index, nil
}

// cell returns the text exactly as stored; only an empty cell is missing
func (ix columnIndex) cell(cells []string, column string) string {
	pos := ix[column]
	if pos >= len(cells) {
		return ""
	}
	return cells[pos]
}

// parse converts one data row. The second return value counts numeric cells
// that could not be parsed and were treated as missing.
func (ix columnIndex) parse(rowNumber int, cells []string) (models.ClaimLine, int) {
	qty, qtyOK := parseNumber(ix.cell(cells, models.ColumnQty))
	amount, amountOK := parseNumber(ix.cell(cells, models.ColumnAmountBill))

	invalid := 0
	if !qtyOK {
		invalid++
	}
	if !amountOK {
		invalid++
	}

	return models.ClaimLine{
		Row:            rowNumber,
		TreatmentPlace: ix.cell(cells, models.ColumnTreatmentPlace),
		GroupProvider:  ix.cell(cells, models.ColumnGroupProvider),
		ItemName:       ix.cell(cells, models.ColumnItemName),
		Qty:            qty,
		AmountBill:     amount,
	}, invalid
}

// parseNumber returns a missing value for an empty cell. ok is false only when
// the cell held text that is not a number.
func parseNumber(raw string) (value decimal.NullDecimal, ok bool) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	if raw == "" {
		return decimal.NullDecimal{}, true
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}, false
	}
	return decimal.NewNullDecimal(d), true
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func trimAll(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(c)
	}
	return out
}
