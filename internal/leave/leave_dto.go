package leave

type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id" binding:"omitempty,uuid"`
	LeaveType  string `json:"leave_type" binding:"required,oneof=annual sick unpaid"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	Reason     string `json:"reason"`
}

type ReviewLeaveRequest struct {
	Status         string `json:"status" binding:"required,oneof=approved rejected"`
	ReviewComments string `json:"review_comments"`
}

type LeaveResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeNumber string  `json:"employee_number,omitempty"`
	EmployeeName   string  `json:"employee_name,omitempty"`
	LeaveType      string  `json:"leave_type"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	NumberOfDays   int     `json:"number_of_days"`
	Reason         string  `json:"reason"`
	Status         string  `json:"status"`
	ReviewComments *string `json:"review_comments,omitempty"`
	ReviewedBy     *string `json:"reviewed_by,omitempty"`
	ReviewedAt     *string `json:"reviewed_at,omitempty"`
}

type Query struct {
	EmployeeID string
	Status     string
	LeaveType  string
}
