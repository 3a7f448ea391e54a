package attendance

import "hradmin/internal/timesheet"

const (
	RecordStatusSuccess = "success"
	RecordStatusFailed  = "failed"
)

// UploadRecordRequest is the JSON body variant of the import, kept for
// clients that pre-parse attendance themselves.
type UploadRecordRequest struct {
	EmployeeNumber   string `json:"employee_number" binding:"required"`
	DaysPresent      int    `json:"days_present"`
	DaysLeave        int    `json:"days_leave"`
	HalfDays         int    `json:"half_days"`
	TotalWorkingDays int    `json:"total_working_days"`
}

type UploadRecordsRequest struct {
	MonthYear string                `json:"month_year" binding:"required"`
	Records   []UploadRecordRequest `json:"records" binding:"required,min=1"`
}

type ImportRecordResult struct {
	EmployeeNumber string `json:"employee_number"`
	EmployeeName   string `json:"employee_name,omitempty"`
	Status         string `json:"status"`
	Reason         string `json:"reason,omitempty"`
	DaysPresent    *int   `json:"days_present,omitempty"`
	DaysLeave      *int   `json:"days_leave,omitempty"`
	HalfDays       *int   `json:"half_days,omitempty"`
}

type ImportResult struct {
	MonthYear      string               `json:"month_year"`
	TotalProcessed int                  `json:"total_processed"`
	Successful     int                  `json:"successful"`
	Failed         int                  `json:"failed"`
	Results        []ImportRecordResult `json:"results"`
}

type AttendanceResponse struct {
	ID               string                `json:"id"`
	EmployeeID       string                `json:"employee_id"`
	EmployeeNumber   string                `json:"employee_number"`
	EmployeeName     string                `json:"employee_name,omitempty"`
	MonthYear        string                `json:"month_year"`
	DaysPresent      int                   `json:"days_present"`
	DaysLeave        int                   `json:"days_leave"`
	HalfDays         int                   `json:"half_days"`
	TotalWorkingDays int                   `json:"total_working_days"`
	DailyRecords     []timesheet.DayRecord `json:"daily_records,omitempty"`
	VerifiedStatus   string                `json:"verified_status"`
	VerifiedBy       *string               `json:"verified_by,omitempty"`
}

type Query struct {
	MonthYear      string
	EmployeeID     string
	EmployeeNumber string
	VerifiedStatus string
}
