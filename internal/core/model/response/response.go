package response

import "time"

// UserResponse carries the base fields plus the fields of the user's actual
// role variant. Fields belonging to other variants stay nil and are omitted.
type UserResponse struct {
	ID          int        `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	DisplayName string     `json:"display_name"`
	CreatedDate time.Time  `json:"created_date"`
	UpdatedDate *time.Time `json:"updated_date,omitempty"`

	AdminLevel  *string `json:"admin_level,omitempty"`
	Company     *string `json:"company,omitempty"`
	ContactInfo *string `json:"contact_info,omitempty"`
	EmployeeID  *string `json:"employee_id,omitempty"`
	ManagerID   *string `json:"manager_id,omitempty"`
	Department  *string `json:"department,omitempty"`
}

type TaskResponse struct {
	ID                 int        `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	StartDate          time.Time  `json:"start_date"`
	EndDate            *time.Time `json:"end_date,omitempty"`
	Status             string     `json:"status"`
	AssignedToUserID   int        `json:"assigned_to_user_id"`
	AssignedToUsername string     `json:"assigned_to_username"`
	CreatedDate        time.Time  `json:"created_date"`
	UpdatedDate        *time.Time `json:"updated_date,omitempty"`
}

type AuthResponse struct {
	Token     string       `json:"token"`
	User      UserResponse `json:"user"`
	ExpiresAt time.Time    `json:"expires_at"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ResponseError struct {
	Code    string       `json:"code"`
	Errors  []FieldError `json:"errors"`
	Details any          `json:"details,omitempty"`
}

type SuccessResponse struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error ResponseError `json:"error"`
}
