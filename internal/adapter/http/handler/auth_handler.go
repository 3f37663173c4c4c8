package handler

import (
	"log/slog"
	"net/http"

	. "taskmanager/internal/adapter/http/helper"
	. "taskmanager/internal/adapter/http/validation"
	"taskmanager/internal/core/model/request"
	"taskmanager/internal/core/port"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc port.AuthService
}

func NewAuthHandler(svc port.AuthService) *AuthHandler {
	return &AuthHandler{
		svc: svc,
	}
}

func (a *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.LoginRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	auth, err := a.svc.Login(ctx, params)

	if err != nil {
		slog.Error("Login failed", "error", err)
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, auth)
}

func (a *AuthHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.CreateUserRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	auth, err := a.svc.Register(ctx, params)

	if err != nil {
		slog.Error("Registration failed", "error", err)
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusCreated, auth)
}
