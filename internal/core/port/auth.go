package port

import (
	"context"
	"time"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/model/request"
	"taskmanager/internal/core/model/response"
)

type AuthService interface {
	Login(ctx context.Context, req request.LoginRequest) (*response.AuthResponse, error)
	Register(ctx context.Context, req request.CreateUserRequest) (*response.AuthResponse, error)
}

// TokenIssuer signs session tokens for authenticated users.
type TokenIssuer interface {
	Issue(user *domain.User) (token string, expiresAt time.Time, err error)
}
