package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	. "taskmanager/internal/adapter/http/helper"
	. "taskmanager/internal/adapter/http/validation"
	"taskmanager/internal/core/model/request"
	"taskmanager/internal/core/port"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc port.UserService
}

func NewUserHandler(svc port.UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

func (h *UserHandler) Create(c *gin.Context) {
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

	user, err := h.svc.Create(ctx, params)

	if err != nil {
		slog.Error("Error creating user", "error", err)
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusCreated, user)
}

func (h *UserHandler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.svc.GetAll(ctx)

	if err != nil {
		slog.Error("Error listing users", "error", err)
		SendInternalError(c, "Failed to list users")
		return
	}

	SendSuccess(c, http.StatusOK, users)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")

	if !ok {
		return
	}

	user, err := h.svc.GetByID(ctx, id)

	if err != nil {
		slog.Error("Error getting user", "error", err)
		SendInternalError(c, "Failed to get user")
		return
	}

	if user == nil {
		SendNotFoundError(c, fmt.Sprintf("User with ID %d not found", id))
		return
	}

	SendSuccess(c, http.StatusOK, user)
}

func (h *UserHandler) GetByEmail(c *gin.Context) {
	ctx := c.Request.Context()
	email := c.Param("email")

	user, err := h.svc.GetByEmail(ctx, email)

	if err != nil {
		slog.Error("Error getting user by email", "error", err)
		SendInternalError(c, "Failed to get user")
		return
	}

	if user == nil {
		SendNotFoundError(c, fmt.Sprintf("User with email '%s' not found", email))
		return
	}

	SendSuccess(c, http.StatusOK, user)
}

func (h *UserHandler) GetByRole(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.svc.GetByRole(ctx, c.Param("role"))

	if err != nil {
		slog.Error("Error getting users by role", "error", err)
		SendInternalError(c, "Failed to list users")
		return
	}

	SendSuccess(c, http.StatusOK, users)
}

func (h *UserHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")

	if !ok {
		return
	}

	var params request.UpdateUserRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	user, err := h.svc.Update(ctx, id, params)

	if err != nil {
		slog.Error("Error updating user", "error", err)
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")

	if !ok {
		return
	}

	deleted, err := h.svc.Delete(ctx, id)

	if err != nil {
		slog.Error("Error deleting user", "error", err)
		SendDomainError(c, err)
		return
	}

	if !deleted {
		SendNotFoundError(c, fmt.Sprintf("User with ID %d not found", id))
		return
	}

	SendSuccess(c, http.StatusOK, nil, "User deleted successfully")
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))

	if err != nil || id <= 0 {
		SendBadRequestError(c, name, "Invalid identifier")
		return 0, false
	}

	return id, true
}
