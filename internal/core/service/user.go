package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/model/request"
	"taskmanager/internal/core/model/response"
	"taskmanager/internal/core/port"
	"taskmanager/internal/core/util"
)

type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo}
}

// Create validates the password policy, checks uniqueness, hashes the
// password and persists a role-typed user. The uniqueness checks are
// advisory; the store's unique indexes are the final authority and the
// repository translates their violation into a ConflictError.
func (us *UserService) Create(ctx context.Context, req request.CreateUserRequest) (*response.UserResponse, error) {
	if violations := domain.ValidatePassword(req.Password); len(violations) > 0 {
		return nil, domain.NewValidationError("%s", strings.Join(violations, ". "))
	}

	taken, err := us.repo.UsernameExists(ctx, req.Username, 0)

	if err != nil {
		return nil, err
	}

	if taken {
		return nil, domain.NewConflictError("Username '%s' is already taken", req.Username)
	}

	taken, err = us.repo.EmailExists(ctx, req.Email, 0)

	if err != nil {
		return nil, err
	}

	if taken {
		return nil, domain.NewConflictError("Email '%s' is already registered", req.Email)
	}

	hash, err := util.HashPassword(req.Password)

	if err != nil {
		return nil, err
	}

	user, err := BuildUser(req, hash)

	if err != nil {
		return nil, err
	}

	if err := us.repo.Create(ctx, &user); err != nil {
		slog.Error("User#Create", "error", err, "username", req.Username)
		return nil, err
	}

	resp := mapUser(&user)

	return &resp, nil
}

// Update overwrites the shared fields and the fields of the user's existing
// role variant. The variant kind itself never changes.
func (us *UserService) Update(ctx context.Context, id int, req request.UpdateUserRequest) (*response.UserResponse, error) {
	user, err := us.repo.GetByID(ctx, id)

	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, domain.NewNotFoundError("User with ID %d not found", id)
	}

	taken, err := us.repo.UsernameExists(ctx, req.Username, id)

	if err != nil {
		return nil, err
	}

	if taken {
		return nil, domain.NewConflictError("Username '%s' is already taken", req.Username)
	}

	taken, err = us.repo.EmailExists(ctx, req.Email, id)

	if err != nil {
		return nil, err
	}

	if taken {
		return nil, domain.NewConflictError("Email '%s' is already registered", req.Email)
	}

	user.Username = req.Username
	user.Email = req.Email

	switch user.Profile.(type) {
	case domain.AdminProfile:
		user.Profile = domain.AdminProfile{
			AdminLevel: req.AdminLevel,
		}
	case domain.ClientProfile:
		user.Profile = domain.ClientProfile{
			Company:     req.Company,
			ContactInfo: req.ContactInfo,
		}
	case domain.EmployeeProfile:
		user.Profile = domain.EmployeeProfile{
			EmployeeID: req.EmployeeID,
			Department: req.Department,
		}
	case domain.ProjectManagerProfile:
		user.Profile = domain.ProjectManagerProfile{
			ManagerID:  req.ManagerID,
			Department: req.Department,
		}
	}

	now := time.Now().UTC()
	user.UpdatedDate = &now

	if err := us.repo.Update(ctx, user); err != nil {
		slog.Error("User#Update", "error", err, "id", id)
		return nil, err
	}

	resp := mapUser(user)

	return &resp, nil
}

// Delete returns false without touching the store when the user does not
// exist. Deleting a user still assigned to a task fails at the storage layer
// (restrict, no cascade) and surfaces as a ConflictError.
func (us *UserService) Delete(ctx context.Context, id int) (bool, error) {
	user, err := us.repo.GetByID(ctx, id)

	if err != nil {
		return false, err
	}

	if user == nil {
		return false, nil
	}

	if err := us.repo.Delete(ctx, id); err != nil {
		return false, err
	}

	return true, nil
}

func (us *UserService) GetByID(ctx context.Context, id int) (*response.UserResponse, error) {
	user, err := us.repo.GetByID(ctx, id)

	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, nil
	}

	resp := mapUser(user)

	return &resp, nil
}

func (us *UserService) GetAll(ctx context.Context) ([]response.UserResponse, error) {
	users, err := us.repo.GetAll(ctx)

	if err != nil {
		return nil, err
	}

	resp := make([]response.UserResponse, 0, len(users))

	for i := range users {
		resp = append(resp, mapUser(&users[i]))
	}

	return resp, nil
}

func (us *UserService) GetByEmail(ctx context.Context, email string) (*response.UserResponse, error) {
	user, err := us.repo.GetByEmail(ctx, email)

	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, nil
	}

	resp := mapUser(user)

	return &resp, nil
}

// GetByRole matches the role case-insensitively; an unrecognized role yields
// an empty collection, not an error.
func (us *UserService) GetByRole(ctx context.Context, role string) ([]response.UserResponse, error) {
	parsed, ok := domain.ParseRole(role)

	if !ok {
		return []response.UserResponse{}, nil
	}

	users, err := us.repo.GetByRole(ctx, parsed)

	if err != nil {
		return nil, err
	}

	resp := make([]response.UserResponse, 0, len(users))

	for i := range users {
		resp = append(resp, mapUser(&users[i]))
	}

	return resp, nil
}

// mapUser includes the base fields plus exactly the fields of the actual
// role variant.
func mapUser(user *domain.User) response.UserResponse {
	resp := response.UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Role:        string(user.Role()),
		DisplayName: user.DisplayName(),
		CreatedDate: user.CreatedDate,
		UpdatedDate: user.UpdatedDate,
	}

	switch p := user.Profile.(type) {
	case domain.AdminProfile:
		resp.AdminLevel = &p.AdminLevel
	case domain.ClientProfile:
		resp.Company = &p.Company
		resp.ContactInfo = &p.ContactInfo
	case domain.EmployeeProfile:
		resp.EmployeeID = &p.EmployeeID
		resp.Department = &p.Department
	case domain.ProjectManagerProfile:
		resp.ManagerID = &p.ManagerID
		resp.Department = &p.Department
	}

	return resp
}
