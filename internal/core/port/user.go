package port

import (
	"context"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/model/request"
	"taskmanager/internal/core/model/response"
)

// UserRepository owns persistence for the User aggregate. Lookups return
// (nil, nil) when no row matches; errors are reserved for store failures and
// constraint violations.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int) error
	UsernameExists(ctx context.Context, username string, excludeID int) (bool, error)
	EmailExists(ctx context.Context, email string, excludeID int) (bool, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}

type UserService interface {
	Create(ctx context.Context, req request.CreateUserRequest) (*response.UserResponse, error)
	Update(ctx context.Context, id int, req request.UpdateUserRequest) (*response.UserResponse, error)
	Delete(ctx context.Context, id int) (bool, error)
	GetByID(ctx context.Context, id int) (*response.UserResponse, error)
	GetAll(ctx context.Context) ([]response.UserResponse, error)
	GetByEmail(ctx context.Context, email string) (*response.UserResponse, error)
	GetByRole(ctx context.Context, role string) ([]response.UserResponse, error)
}
