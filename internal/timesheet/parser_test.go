package timesheet_test

import (
	"testing"

	"hradmin/internal/timesheet"

	"github.com/stretchr/testify/assert"
)

// buildGrid assembles a minimal export grid: a title row, the date header
// row, then one marker block per employee.
func buildGrid(blocks ...[][]string) [][]string {
	grid := [][]string{
		{"Monthly Attendance Report"},
		{"", "", "1 St", "2 S", "3 M", "4 T"},
	}
	for _, b := range blocks {
		grid = append(grid, b...)
	}
	return grid
}

func employeeBlock(code, name string, status, in, out, total []string) [][]string {
	codeRow := make([]string, 13)
	codeRow[0] = "Emp. Code:"
	codeRow[3] = code
	codeRow[12] = name

	prefix := func(cells []string) []string {
		return append([]string{"", ""}, cells...)
	}

	return [][]string{
		codeRow,
		append([]string{"Status"}, prefix(status)[1:]...),
		append([]string{"InTime"}, prefix(in)[1:]...),
		append([]string{"OutTime"}, prefix(out)[1:]...),
		append([]string{"Total"}, prefix(total)[1:]...),
	}
}

func TestParser_Parse(t *testing.T) {
	parser := timesheet.NewParser()

	t.Run("single employee all present", func(t *testing.T) {
		grid := buildGrid(employeeBlock("EMP-0001", "Asep Sunandar",
			[]string{"P", "P", "P", "P"},
			[]string{"09:00", "08:45", "09:15", "09:30"},
			[]string{"18:00", "18:00", "18:00", "18:00"},
			[]string{"09:00", "09:15", "08:45", "08:30"},
		))

		sheets, err := parser.Parse(grid)

		assert.NoError(t, err)
		assert.Len(t, sheets, 1)

		ts := sheets[0]
		assert.Equal(t, "EMP-0001", ts.EmployeeNumber)
		assert.Equal(t, "Asep Sunandar", ts.EmployeeName)
		assert.Equal(t, 4, ts.DaysPresent)
		assert.Equal(t, 0, ts.DaysLeave)
		assert.Equal(t, 0, ts.HalfDays)
		assert.Equal(t, 4, ts.TotalWorkingDays)
		assert.Len(t, ts.Days, 4)
		assert.Equal(t, "1 St", ts.Days[0].Date)
	})

	t.Run("late arrival downgrades present to half day", func(t *testing.T) {
		grid := buildGrid(employeeBlock("EMP-0002", "Budi Santoso",
			[]string{"P", "P", "P", "P"},
			[]string{"09:31", "10:00", "09:30", "09:29"},
			[]string{"18:00", "18:00", "18:00", "18:00"},
			[]string{"08:29", "08:00", "08:30", "08:31"},
		))

		sheets, err := parser.Parse(grid)

		assert.NoError(t, err)
		assert.Len(t, sheets, 1)

		ts := sheets[0]
		assert.Equal(t, 2, ts.HalfDays)
		assert.Equal(t, 2, ts.DaysPresent)
		assert.Equal(t, timesheet.StatusHalfDay, ts.Days[0].Status)
		assert.True(t, ts.Days[0].IsLate)
		assert.Equal(t, timesheet.StatusHalfDay, ts.Days[1].Status)
		// 09:30 sharp is on time
		assert.Equal(t, timesheet.StatusPresent, ts.Days[2].Status)
		assert.False(t, ts.Days[2].IsLate)
		assert.Equal(t, timesheet.StatusPresent, ts.Days[3].Status)
	})

	t.Run("week off excluded from working days", func(t *testing.T) {
		grid := buildGrid(employeeBlock("EMP-0003", "Citra Dewi",
			[]string{"P", "WO", "A", "WOP"},
			[]string{"09:00", "", "", "09:00"},
			[]string{"18:00", "", "", "17:00"},
			[]string{"09:00", "", "", "08:00"},
		))

		sheets, err := parser.Parse(grid)

		assert.NoError(t, err)
		ts := sheets[0]
		assert.Equal(t, 3, ts.TotalWorkingDays)
		assert.Equal(t, 2, ts.DaysPresent)
		assert.Equal(t, 1, ts.DaysLeave)
		assert.Len(t, ts.Days, 4)
		assert.Equal(t, timesheet.StatusWeekOff, ts.Days[1].Status)
	})

	t.Run("late on worked week off becomes half day", func(t *testing.T) {
		grid := buildGrid(employeeBlock("EMP-0004", "Dani Firmansyah",
			[]string{"WOP", "P", "P", "P"},
			[]string{"11:00", "09:00", "09:00", "09:00"},
			[]string{"17:00", "18:00", "18:00", "18:00"},
			[]string{"06:00", "09:00", "09:00", "09:00"},
		))

		sheets, err := parser.Parse(grid)

		assert.NoError(t, err)
		ts := sheets[0]
		assert.Equal(t, timesheet.StatusHalfDay, ts.Days[0].Status)
		assert.Equal(t, 1, ts.HalfDays)
		assert.Equal(t, 3, ts.DaysPresent)
	})

	t.Run("empty status column skipped", func(t *testing.T) {
		grid := buildGrid(employeeBlock("EMP-0005", "Eka Putri",
			[]string{"P", "", "P", ""},
			[]string{"09:00", "", "09:00", ""},
			[]string{"18:00", "", "18:00", ""},
			[]string{"09:00", "", "09:00", ""},
		))

		sheets, err := parser.Parse(grid)

		assert.NoError(t, err)
		ts := sheets[0]
		assert.Len(t, ts.Days, 2)
		assert.Equal(t, 2, ts.TotalWorkingDays)
		assert.Equal(t, 2, ts.DaysPresent)
	})

	t.Run("empty total defaults to zero hours", func(t *testing.T) {
		grid := buildGrid(employeeBlock("EMP-0006", "Fajar Nugraha",
			[]string{"A", "P", "P", "P"},
			[]string{"", "09:00", "09:00", "09:00"},
			[]string{"", "18:00", "18:00", "18:00"},
			[]string{"", "09:00", "09:00", "09:00"},
		))

		sheets, err := parser.Parse(grid)

		assert.NoError(t, err)
		ts := sheets[0]
		assert.Equal(t, "00:00", ts.Days[0].TotalHours)
		assert.Equal(t, 1, ts.DaysLeave)
		assert.False(t, ts.Days[0].IsLate)
	})

	t.Run("name falls back to code", func(t *testing.T) {
		grid := buildGrid(employeeBlock("EMP-0007", "",
			[]string{"P", "P", "P", "P"},
			[]string{"09:00", "09:00", "09:00", "09:00"},
			[]string{"18:00", "18:00", "18:00", "18:00"},
			[]string{"09:00", "09:00", "09:00", "09:00"},
		))

		sheets, err := parser.Parse(grid)

		assert.NoError(t, err)
		assert.Equal(t, "EMP-0007", sheets[0].EmployeeName)
	})

	t.Run("multiple employees in row order", func(t *testing.T) {
		grid := buildGrid(
			employeeBlock("EMP-0001", "Asep Sunandar",
				[]string{"P", "P", "P", "P"},
				[]string{"09:00", "09:00", "09:00", "09:00"},
				[]string{"18:00", "18:00", "18:00", "18:00"},
				[]string{"09:00", "09:00", "09:00", "09:00"},
			),
			employeeBlock("EMP-0002", "Budi Santoso",
				[]string{"A", "A", "A", "A"},
				[]string{"", "", "", ""},
				[]string{"", "", "", ""},
				[]string{"", "", "", ""},
			),
		)

		sheets, err := parser.Parse(grid)

		assert.NoError(t, err)
		assert.Len(t, sheets, 2)
		assert.Equal(t, "EMP-0001", sheets[0].EmployeeNumber)
		assert.Equal(t, "EMP-0002", sheets[1].EmployeeNumber)
		assert.Equal(t, 4, sheets[1].DaysLeave)
	})

	t.Run("incomplete block dropped", func(t *testing.T) {
		incomplete := [][]string{
			{"Emp. Code:", "", "", "EMP-0008"},
			{"Status", "", "P", "P", "P", "P"},
			// no InTime/OutTime rows before the Total row
			{"Total", "", "09:00", "09:00", "09:00", "09:00"},
		}
		grid := buildGrid(
			incomplete,
			employeeBlock("EMP-0009", "Gita Lestari",
				[]string{"P", "P", "P", "P"},
				[]string{"09:00", "09:00", "09:00", "09:00"},
				[]string{"18:00", "18:00", "18:00", "18:00"},
				[]string{"09:00", "09:00", "09:00", "09:00"},
			),
		)

		sheets, err := parser.Parse(grid)

		assert.NoError(t, err)
		assert.Len(t, sheets, 1)
		assert.Equal(t, "EMP-0009", sheets[0].EmployeeNumber)
	})

	t.Run("negative header missing", func(t *testing.T) {
		grid := [][]string{
			{"Monthly Attendance Report"},
			{"", "", "Jan", "Feb"},
		}

		sheets, err := parser.Parse(grid)

		assert.ErrorIs(t, err, timesheet.ErrHeaderNotFound)
		assert.Nil(t, sheets)
	})
}

func TestTemplateHeaderLocator(t *testing.T) {
	locator := timesheet.TemplateHeaderLocator{}

	t.Run("finds header within scan limit", func(t *testing.T) {
		rows := [][]string{
			{"Report"},
			{},
			{"", "", "1 St", "2 S", "3 M"},
		}

		labels, ok := locator.Locate(rows)

		assert.True(t, ok)
		assert.Equal(t, []string{"1 St", "2 S", "3 M"}, labels)
	})

	t.Run("negative header beyond scan limit", func(t *testing.T) {
		rows := make([][]string, 0, 25)
		for i := 0; i < 22; i++ {
			rows = append(rows, []string{"filler"})
		}
		rows = append(rows, []string{"", "", "1 St", "2 S"})

		_, ok := locator.Locate(rows)

		assert.False(t, ok)
	})

	t.Run("negative short rows ignored", func(t *testing.T) {
		rows := [][]string{
			{"", "St"},
			{"S"},
		}

		_, ok := locator.Locate(rows)

		assert.False(t, ok)
	})
}
