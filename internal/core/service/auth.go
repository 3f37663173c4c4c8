package service

import (
	"context"
	"log/slog"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/model/request"
	"taskmanager/internal/core/model/response"
	"taskmanager/internal/core/port"
	"taskmanager/internal/core/util"
)

type AuthService struct {
	repo   port.UserRepository
	users  port.UserService
	tokens port.TokenIssuer
}

func NewAuthService(repo port.UserRepository, users port.UserService, tokens port.TokenIssuer) *AuthService {
	return &AuthService{repo: repo, users: users, tokens: tokens}
}

// Login authenticates by email (case-insensitive) and password. An unknown
// email and a wrong password fail with the same message on purpose.
func (as *AuthService) Login(ctx context.Context, req request.LoginRequest) (*response.AuthResponse, error) {
	user, err := as.repo.GetByEmail(ctx, req.Email)

	if err != nil {
		return nil, err
	}

	if user == nil || util.ComparePassword(req.Password, user.PasswordHash) != nil {
		return nil, domain.NewAuthenticationError("Invalid email or password")
	}

	return as.authResponse(user)
}

// Register creates the user through the user service, reloads it and issues
// a token via the same path as Login. Creation errors propagate unchanged.
func (as *AuthService) Register(ctx context.Context, req request.CreateUserRequest) (*response.AuthResponse, error) {
	created, err := as.users.Create(ctx, req)

	if err != nil {
		return nil, err
	}

	user, err := as.repo.GetByID(ctx, created.ID)

	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, domain.NewNotFoundError("User with ID %d not found", created.ID)
	}

	return as.authResponse(user)
}

func (as *AuthService) authResponse(user *domain.User) (*response.AuthResponse, error) {
	token, expiresAt, err := as.tokens.Issue(user)

	if err != nil {
		slog.Error("Auth#authResponse", "issue_token", err)
		return nil, err
	}

	return &response.AuthResponse{
		Token:     token,
		User:      mapUser(user),
		ExpiresAt: expiresAt,
	}, nil
}
