package timesheet_test

import (
	"bytes"
	"strings"
	"testing"

	"hradmin/internal/timesheet"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			if cell == "" {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			assert.NoError(t, err)
			assert.NoError(t, f.SetCellValue(sheet, ref, cell))
		}
	}

	buf, err := f.WriteToBuffer()
	assert.NoError(t, err)
	return buf
}

func TestReadGrid(t *testing.T) {
	t.Run("round trip through xlsx", func(t *testing.T) {
		buf := writeWorkbook(t, [][]string{
			{"Monthly Attendance Report"},
			{"", "", "1 St", "2 S"},
			{"Emp. Code:", "", "", "EMP-0001"},
		})

		rows, err := timesheet.ReadGrid(buf)

		assert.NoError(t, err)
		assert.GreaterOrEqual(t, len(rows), 3)
		assert.Equal(t, "Monthly Attendance Report", rows[0][0])
		assert.Equal(t, "1 St", rows[1][2])
		assert.Equal(t, "EMP-0001", rows[2][3])
	})

	t.Run("workbook feeds parser end to end", func(t *testing.T) {
		buf := writeWorkbook(t, [][]string{
			{"Monthly Attendance Report"},
			{"", "", "1 St", "2 S"},
			{"Emp. Code:", "", "", "EMP-0001", "", "", "", "", "", "", "", "", "Asep Sunandar"},
			{"Status", "", "P", "A"},
			{"InTime", "", "09:45", ""},
			{"OutTime", "", "18:00", ""},
			{"Total", "", "08:15", ""},
		})

		rows, err := timesheet.ReadGrid(buf)
		assert.NoError(t, err)

		sheets, err := timesheet.NewParser().Parse(rows)

		assert.NoError(t, err)
		assert.Len(t, sheets, 1)
		assert.Equal(t, "Asep Sunandar", sheets[0].EmployeeName)
		assert.Equal(t, 1, sheets[0].HalfDays)
		assert.Equal(t, 1, sheets[0].DaysLeave)
		assert.Equal(t, 2, sheets[0].TotalWorkingDays)
	})

	t.Run("negative not a workbook", func(t *testing.T) {
		_, err := timesheet.ReadGrid(strings.NewReader("plain text"))

		assert.Error(t, err)
	})
}
