package timesheet

import (
	"strings"

	"go.uber.org/zap"
)

// Row marker vocabulary of the export. The first cell of a row decides how
// the rest of the row is interpreted.
const (
	markerEmployeeCode = "Emp. Code:"
	markerStatus       = "Status"
	markerInTime       = "InTime"
	markerOutTime      = "OutTime"
	markerTotal        = "Total"
)

const (
	employeeCodeOffset = 3
	employeeNameOffset = 12
)

// Parser turns a raw cell grid into per-employee timesheets. All state is
// local to one Parse call.
type Parser struct {
	locator HeaderLocator
	logger  *zap.Logger
}

func NewParser(logger ...*zap.Logger) *Parser {
	return NewParserWithLocator(TemplateHeaderLocator{}, logger...)
}

func NewParserWithLocator(locator HeaderLocator, logger ...*zap.Logger) *Parser {
	l := zap.L().Named("timesheet.parser")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timesheet.parser")
	}
	return &Parser{locator: locator, logger: l}
}

// block accumulates the marker rows of one employee until its Total row.
type block struct {
	number  string
	name    string
	status  []string
	inTime  []string
	outTime []string
}

func (b *block) complete() bool {
	return b.status != nil && b.inTime != nil && b.outTime != nil
}

// Parse walks the grid in row order. Blocks missing one of their
// status/in/out rows before the next code marker or their Total row are
// dropped without an emitted timesheet.
func (p *Parser) Parse(rows [][]string) ([]EmployeeTimesheet, error) {
	dayLabels, ok := p.locator.Locate(rows)
	if !ok {
		return nil, ErrHeaderNotFound
	}

	sheets := []EmployeeTimesheet{}
	var current *block

	for _, row := range rows {
		if len(row) == 0 {
			continue
		}

		switch row[0] {
		case markerEmployeeCode:
			code := strings.TrimSpace(cellAt(row, employeeCodeOffset))
			if code == "" {
				continue
			}
			if current != nil && !current.complete() {
				p.logger.Debug("dropping incomplete employee block", zap.String("employee_number", current.number))
			}
			name := strings.TrimSpace(cellAt(row, employeeNameOffset))
			if name == "" {
				name = code
			}
			current = &block{number: code, name: name}

		case markerStatus:
			if current != nil {
				current.status = dayCells(row)
			}

		case markerInTime:
			if current != nil {
				current.inTime = dayCells(row)
			}

		case markerOutTime:
			if current != nil {
				current.outTime = dayCells(row)
			}

		case markerTotal:
			if current == nil {
				continue
			}
			if current.complete() {
				sheets = append(sheets, classifyBlock(current, dayCells(row), dayLabels))
			} else {
				p.logger.Debug("dropping incomplete employee block", zap.String("employee_number", current.number))
			}
			current = nil
		}
	}

	return sheets, nil
}

func dayCells(row []string) []string {
	if len(row) <= dayColumnOffset {
		return []string{}
	}
	return row[dayColumnOffset:]
}

func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
