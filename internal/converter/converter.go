package converter

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/tools4video/bealert/internal/types"

	"github.com/xuri/excelize/v2"
)

// ValidateSchema opens the workbook and checks that the first worksheet's
// header row contains every required column. No rows are mapped and no output
// is written, so it can run before a destination path exists.
func ValidateSchema(inputFile string) error {
	f, err := excelize.OpenFile(inputFile)
	if err != nil {
		return fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	_, _, err = loadWorkbook(f)
	return err
}

// Convert reads the workbook at inputFile and writes the 33-column
// ';'-separated contact file to outputFile. Columns are resolved fresh on
// every call; the output file is only created once validation has passed, so
// a schema failure never leaves a partial file behind. Each mapped record is
// written immediately. progressChan, when non-nil, receives best-effort
// progress fractions.
func Convert(inputFile, outputFile string, progressChan chan<- float64) (*types.ConversionResult, error) {
	f, err := excelize.OpenFile(inputFile)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	index, dataRows, err := loadWorkbook(f)
	if err != nil {
		return nil, err
	}

	outFile, err := os.Create(outputFile)
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}
	defer outFile.Close()

	writer := csv.NewWriter(outFile)
	writer.Comma = ';'

	if err := writer.Write(OutputHeader()); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	totalRows := len(dataRows)
	for i, row := range dataRows {
		if progressChan != nil && totalRows > 0 {
			select {
			case progressChan <- float64(i+1) / float64(totalRows):
			default:
			}
		}

		if err := writer.Write(MapRow(index, row)); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flushing output: %w", err)
	}

	return &types.ConversionResult{
		InputFile:     inputFile,
		OutputFile:    outputFile,
		RowsProcessed: totalRows,
	}, nil
}

// loadWorkbook decodes the first worksheet into typed cells, resolves the
// header and checks the required columns. Returns the column index and the
// data rows (header excluded).
func loadWorkbook(f *excelize.File) (ColumnIndex, [][]Cell, error) {
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, nil, ErrNoSheet
	}

	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("reading rows: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil, ErrEmptyHeader
	}

	rows := make([][]Cell, len(raw))
	for r, rawRow := range raw {
		cells := make([]Cell, len(rawRow))
		for c, value := range rawRow {
			cellName, _ := excelize.CoordinatesToCellName(c+1, r+1)
			cellType, _ := f.GetCellType(sheet, cellName)
			cells[c] = decodeCell(cellType, value)
		}
		rows[r] = cells
	}

	index := ResolveColumns(rows[0])
	if err := index.Require(); err != nil {
		return nil, nil, err
	}

	return index, rows[1:], nil
}
