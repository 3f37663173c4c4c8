package service

import (
	"strings"
	"time"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/model/request"
)

// BuildUser constructs a role-typed user from a creation request and an
// already-hashed password. It does not persist.
func BuildUser(req request.CreateUserRequest, passwordHash string) (domain.User, error) {
	var profile domain.RoleProfile

	switch strings.ToLower(req.Role) {
	case "admin":
		profile = domain.AdminProfile{
			AdminLevel: req.AdminLevel,
		}
	case "client":
		profile = domain.ClientProfile{
			Company:     req.Company,
			ContactInfo: req.ContactInfo,
		}
	case "employee":
		profile = domain.EmployeeProfile{
			EmployeeID: req.EmployeeID,
			Department: req.Department,
		}
	case "projectmanager":
		profile = domain.ProjectManagerProfile{
			ManagerID:  req.ManagerID,
			Department: req.Department,
		}
	default:
		return domain.User{}, domain.NewValidationError(
			"Invalid role: %s. Valid roles: Admin, Client, Employee, ProjectManager", req.Role)
	}

	return domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Profile:      profile,
		CreatedDate:  time.Now().UTC(),
	}, nil
}
