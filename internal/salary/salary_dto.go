package salary

const (
	RecordStatusSuccess = "success"
	RecordStatusFailed  = "failed"
)

type CalculateRequest struct {
	MonthYear string `json:"month_year" binding:"required"`
}

type SalaryBreakdown struct {
	BaseSalary       int `json:"base_salary"`
	HalfDays         int `json:"half_days"`
	ChargeableLeaves int `json:"chargeable_leaves"`
	TotalDeductions  int `json:"total_deductions"`
	NetSalary        int `json:"net_salary"`
}

type CalculationRecordResult struct {
	EmployeeNumber string           `json:"employee_number"`
	EmployeeName   string           `json:"employee_name,omitempty"`
	Status         string           `json:"status"`
	Reason         string           `json:"reason,omitempty"`
	Salary         *SalaryBreakdown `json:"salary,omitempty"`
}

type CalculationResult struct {
	MonthYear      string                    `json:"month_year"`
	TotalProcessed int                       `json:"total_processed"`
	Successful     int                       `json:"successful"`
	Failed         int                       `json:"failed"`
	Results        []CalculationRecordResult `json:"results"`
}

type SalaryResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeNumber string  `json:"employee_number"`
	EmployeeName   string  `json:"employee_name,omitempty"`
	MonthYear      string  `json:"month_year"`
	BaseSalary     int     `json:"base_salary"`
	DaysPresent    int     `json:"days_present"`
	DaysLeave      int     `json:"days_leave"`
	HalfDays       int     `json:"half_days"`
	PerDaySalary   int     `json:"per_day_salary"`
	Deductions     int     `json:"deductions"`
	NetSalary      int     `json:"net_salary"`
	Status         string  `json:"status"`
	ApprovedBy     *string `json:"approved_by,omitempty"`
	CompletedAt    *string `json:"completed_at,omitempty"`
}

type Query struct {
	MonthYear      string
	EmployeeID     string
	EmployeeNumber string
	Status         string
}
