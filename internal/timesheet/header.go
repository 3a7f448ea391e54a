package timesheet

import (
	"errors"
	"strings"
)

// ErrHeaderNotFound means the grid has no recognizable date header row, the
// whole sheet is unparseable in that case.
var ErrHeaderNotFound = errors.New("date header row not found")

const (
	// header detection only looks at the top of the sheet
	headerScanLimit = 20
	// day columns start after two label columns on every data row
	dayColumnOffset = 2
)

// HeaderLocator finds the date header row of a raw grid and returns its day
// column labels. The template fingerprint below is specific to one vendor's
// export layout; alternate formats plug in through this interface.
type HeaderLocator interface {
	Locate(rows [][]string) ([]string, bool)
}

// TemplateHeaderLocator matches the stock export template, whose header row
// starts its day labels with "1 St", "2 S", ...
type TemplateHeaderLocator struct{}

func (TemplateHeaderLocator) Locate(rows [][]string) ([]string, bool) {
	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}

	for i := 0; i < limit; i++ {
		row := rows[i]
		if len(row) <= dayColumnOffset+1 {
			continue
		}
		if strings.Contains(row[dayColumnOffset], "St") && strings.Contains(row[dayColumnOffset+1], "S") {
			return row[dayColumnOffset:], true
		}
	}

	return nil, false
}
