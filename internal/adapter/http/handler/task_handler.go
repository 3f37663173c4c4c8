package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	. "taskmanager/internal/adapter/http/helper"
	. "taskmanager/internal/adapter/http/validation"
	"taskmanager/internal/core/model/request"
	"taskmanager/internal/core/port"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	svc port.TaskService
}

func NewTaskHandler(svc port.TaskService) *TaskHandler {
	return &TaskHandler{
		svc: svc,
	}
}

func (h *TaskHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.CreateTaskRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	task, err := h.svc.Create(ctx, params)

	if err != nil {
		slog.Error("Error creating task", "error", err)
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusCreated, task)
}

func (h *TaskHandler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.svc.GetAll(ctx)

	if err != nil {
		slog.Error("Error listing tasks", "error", err)
		SendInternalError(c, "Failed to list tasks")
		return
	}

	SendSuccess(c, http.StatusOK, tasks)
}

func (h *TaskHandler) GetByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")

	if !ok {
		return
	}

	task, err := h.svc.GetByID(ctx, id)

	if err != nil {
		slog.Error("Error getting task", "error", err)
		SendInternalError(c, "Failed to get task")
		return
	}

	if task == nil {
		SendNotFoundError(c, fmt.Sprintf("Task with ID %d not found", id))
		return
	}

	SendSuccess(c, http.StatusOK, task)
}

func (h *TaskHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")

	if !ok {
		return
	}

	var params request.UpdateTaskRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	task, err := h.svc.Update(ctx, id, params)

	if err != nil {
		slog.Error("Error updating task", "error", err)
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, task)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")

	if !ok {
		return
	}

	deleted, err := h.svc.Delete(ctx, id)

	if err != nil {
		slog.Error("Error deleting task", "error", err)
		SendInternalError(c, "Failed to delete task")
		return
	}

	if !deleted {
		SendNotFoundError(c, fmt.Sprintf("Task with ID %d not found", id))
		return
	}

	SendSuccess(c, http.StatusOK, nil, "Task deleted successfully")
}

func (h *TaskHandler) Assign(c *gin.Context) {
	ctx := c.Request.Context()

	taskID, ok := pathID(c, "id")

	if !ok {
		return
	}

	userID, ok := pathID(c, "userId")

	if !ok {
		return
	}

	task, err := h.svc.Assign(ctx, taskID, userID)

	if err != nil {
		slog.Error("Error assigning task", "error", err)
		SendDomainError(c, err)
		return
	}

	if task == nil {
		SendNotFoundError(c, fmt.Sprintf("Task with ID %d not found", taskID))
		return
	}

	SendSuccess(c, http.StatusOK, task)
}

func (h *TaskHandler) ChangeStatus(c *gin.Context) {
	ctx := c.Request.Context()

	taskID, ok := pathID(c, "id")

	if !ok {
		return
	}

	task, err := h.svc.ChangeStatus(ctx, taskID, c.Param("status"))

	if err != nil {
		slog.Error("Error changing task status", "error", err)
		SendDomainError(c, err)
		return
	}

	if task == nil {
		SendNotFoundError(c, fmt.Sprintf("Task with ID %d not found", taskID))
		return
	}

	SendSuccess(c, http.StatusOK, task)
}
