package timesheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadGrid loads the first sheet of an xlsx workbook as a row-major grid of
// strings. Blank cells come back as empty strings.
func ReadGrid(r io.Reader) ([][]string, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no worksheet found")
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read worksheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("worksheet is empty")
	}

	return rows, nil
}
