package domain

import (
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin          Role = "Admin"
	RoleClient         Role = "Client"
	RoleEmployee       Role = "Employee"
	RoleProjectManager Role = "ProjectManager"
)

// ParseRole matches a role string case-insensitively against the closed set.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(s) {
	case "admin":
		return RoleAdmin, true
	case "client":
		return RoleClient, true
	case "employee":
		return RoleEmployee, true
	case "projectmanager":
		return RoleProjectManager, true
	default:
		return "", false
	}
}

// RoleProfile is the role-specific payload attached to a User. Exactly one of
// the four implementations below is set at creation and the kind never
// changes afterwards.
type RoleProfile interface {
	Role() Role
}

type AdminProfile struct {
	AdminLevel string
}

func (AdminProfile) Role() Role { return RoleAdmin }

type ClientProfile struct {
	Company     string
	ContactInfo string
}

func (ClientProfile) Role() Role { return RoleClient }

type EmployeeProfile struct {
	EmployeeID string
	Department string
}

func (EmployeeProfile) Role() Role { return RoleEmployee }

type ProjectManagerProfile struct {
	ManagerID  string
	Department string
}

func (ProjectManagerProfile) Role() Role { return RoleProjectManager }

type User struct {
	ID           int
	Username     string `validate:"required,max=50"`
	Email        string `validate:"required,email,max=100"`
	PasswordHash string `validate:"required"`
	Profile      RoleProfile
	CreatedDate  time.Time
	UpdatedDate  *time.Time
}

func (u *User) Role() Role {
	if u.Profile == nil {
		return ""
	}
	return u.Profile.Role()
}

func (u *User) DisplayName() string {
	switch p := u.Profile.(type) {
	case AdminProfile:
		return fmt.Sprintf("Admin: %s", u.Username)
	case ClientProfile:
		return fmt.Sprintf("%s - %s", p.Company, u.Username)
	case EmployeeProfile:
		return fmt.Sprintf("%s: %s", p.EmployeeID, u.Username)
	case ProjectManagerProfile:
		return fmt.Sprintf("PM %s: %s", p.ManagerID, u.Username)
	default:
		return u.Username
	}
}
