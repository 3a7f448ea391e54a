package timesheet

// Status literals used by the time clock export.
const (
	StatusPresent     = "P"
	StatusAbsent      = "A"
	StatusWeekOff     = "WO"
	StatusWeekOffWork = "WOP"
	StatusHalfDay     = "HD"
)

// DayRecord is one classified day column of an employee block.
type DayRecord struct {
	Date       string `json:"date"`
	Status     string `json:"status"`
	InTime     string `json:"in_time"`
	OutTime    string `json:"out_time"`
	IsLate     bool   `json:"is_late"`
	TotalHours string `json:"total_hours"`
}

// EmployeeTimesheet is the parsed attendance of one employee for one period.
// TotalWorkingDays excludes week-off columns; week-off days still appear in
// Days with their original status.
type EmployeeTimesheet struct {
	EmployeeNumber   string
	EmployeeName     string
	DaysPresent      int
	DaysLeave        int
	HalfDays         int
	TotalWorkingDays int
	Days             []DayRecord
}
