package employee

type CreateEmployeeRequest struct {
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required"`
	Department     string `json:"department" binding:"required"`
	Position       string `json:"position" binding:"required"`
	BaseSalary     int    `json:"base_salary" binding:"required,gt=0"`
	HireDate       string `json:"hire_date" binding:"required"`
}

type UpdateEmployeeRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	Department string `json:"department" binding:"required"`
	Position   string `json:"position" binding:"required"`
	BaseSalary int    `json:"base_salary" binding:"required,gt=0"`
	HireDate   string `json:"hire_date" binding:"required"`
	Status     string `json:"status" binding:"required,oneof=active inactive"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Department     string `json:"department,omitempty"`
	Position       string `json:"position,omitempty"`
	BaseSalary     int    `json:"base_salary,omitempty"`
	HireDate       string `json:"hire_date,omitempty"`
	Status         string `json:"status,omitempty"`
}
