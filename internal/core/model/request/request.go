package request

import "time"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required"`
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`

	AdminLevel  string `json:"admin_level,omitempty" validate:"max=50"`
	Company     string `json:"company,omitempty" validate:"max=100"`
	ContactInfo string `json:"contact_info,omitempty" validate:"max=200"`
	EmployeeID  string `json:"employee_id,omitempty" validate:"max=20"`
	ManagerID   string `json:"manager_id,omitempty" validate:"max=20"`
	Department  string `json:"department,omitempty" validate:"max=50"`
}

type UpdateUserRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`

	AdminLevel  string `json:"admin_level,omitempty" validate:"max=50"`
	Company     string `json:"company,omitempty" validate:"max=100"`
	ContactInfo string `json:"contact_info,omitempty" validate:"max=200"`
	EmployeeID  string `json:"employee_id,omitempty" validate:"max=20"`
	ManagerID   string `json:"manager_id,omitempty" validate:"max=20"`
	Department  string `json:"department,omitempty" validate:"max=50"`
}

type CreateTaskRequest struct {
	Name             string     `json:"name" validate:"required,max=200"`
	Description      string     `json:"description,omitempty" validate:"max=1000"`
	StartDate        time.Time  `json:"start_date" validate:"required"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	AssignedToUserID int        `json:"assigned_to_user_id" validate:"required"`
}

type UpdateTaskRequest struct {
	Name             string     `json:"name" validate:"required,max=200"`
	Description      string     `json:"description,omitempty" validate:"max=1000"`
	StartDate        time.Time  `json:"start_date" validate:"required"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	Status           string     `json:"status" validate:"required"`
	AssignedToUserID int        `json:"assigned_to_user_id" validate:"required"`
}
