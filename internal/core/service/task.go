package service

import (
	"context"
	"log/slog"
	"time"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/model/request"
	"taskmanager/internal/core/model/response"
	"taskmanager/internal/core/port"
)

type TaskService struct {
	tasks port.TaskRepository
	users port.UserRepository
}

func NewTaskService(tasks port.TaskRepository, users port.UserRepository) *TaskService {
	return &TaskService{tasks: tasks, users: users}
}

// Create persists a new task assigned to an existing user. A missing
// assignee fails with NotFoundError before anything is stored. Status is
// always NotStarted at creation.
func (ts *TaskService) Create(ctx context.Context, req request.CreateTaskRequest) (*response.TaskResponse, error) {
	user, err := ts.users.GetByID(ctx, req.AssignedToUserID)

	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, domain.NewNotFoundError("User with ID %d not found", req.AssignedToUserID)
	}

	task := domain.TaskItem{
		Name:             req.Name,
		Description:      req.Description,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Status:           domain.StatusNotStarted,
		AssignedToUserID: req.AssignedToUserID,
		CreatedDate:      time.Now().UTC(),
	}

	if err := ts.tasks.Create(ctx, &task); err != nil {
		slog.Error("Task#Create", "error", err, "name", req.Name)
		return nil, err
	}

	resp := mapTask(&task, user.Username)

	return &resp, nil
}

// Update overwrites every mutable field, including a possible reassignment.
// Both a missing task and a missing assignee are error-channel failures here.
func (ts *TaskService) Update(ctx context.Context, id int, req request.UpdateTaskRequest) (*response.TaskResponse, error) {
	task, err := ts.tasks.GetByID(ctx, id)

	if err != nil {
		return nil, err
	}

	if task == nil {
		return nil, domain.NewNotFoundError("Task with ID %d not found", id)
	}

	user, err := ts.users.GetByID(ctx, req.AssignedToUserID)

	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, domain.NewNotFoundError("User with ID %d not found", req.AssignedToUserID)
	}

	status, err := domain.ParseTaskStatus(req.Status)

	if err != nil {
		return nil, err
	}

	task.Name = req.Name
	task.Description = req.Description
	task.StartDate = req.StartDate
	task.EndDate = req.EndDate
	task.Status = status
	task.AssignedToUserID = req.AssignedToUserID

	now := time.Now().UTC()
	task.UpdatedDate = &now

	if err := ts.tasks.Update(ctx, task); err != nil {
		slog.Error("Task#Update", "error", err, "id", id)
		return nil, err
	}

	resp := mapTask(task, user.Username)

	return &resp, nil
}

// Delete returns false without touching the store when the task is absent.
func (ts *TaskService) Delete(ctx context.Context, id int) (bool, error) {
	task, err := ts.tasks.GetByID(ctx, id)

	if err != nil {
		return false, err
	}

	if task == nil {
		return false, nil
	}

	if err := ts.tasks.Delete(ctx, id); err != nil {
		return false, err
	}

	return true, nil
}

func (ts *TaskService) GetByID(ctx context.Context, id int) (*response.TaskResponse, error) {
	task, err := ts.tasks.GetByID(ctx, id)

	if err != nil {
		return nil, err
	}

	if task == nil {
		return nil, nil
	}

	resp := mapTask(task, task.AssigneeUsername())

	return &resp, nil
}

func (ts *TaskService) GetAll(ctx context.Context) ([]response.TaskResponse, error) {
	tasks, err := ts.tasks.GetAll(ctx)

	if err != nil {
		return nil, err
	}

	resp := make([]response.TaskResponse, 0, len(tasks))

	for i := range tasks {
		resp = append(resp, mapTask(&tasks[i], tasks[i].AssigneeUsername()))
	}

	return resp, nil
}

// Assign reattaches a task to another user. A missing task is signalled by a
// nil return; a missing target user by a NotFoundError. The distinction is
// deliberate and callers depend on it.
func (ts *TaskService) Assign(ctx context.Context, taskID, userID int) (*response.TaskResponse, error) {
	task, err := ts.tasks.GetByID(ctx, taskID)

	if err != nil {
		return nil, err
	}

	if task == nil {
		return nil, nil
	}

	user, err := ts.users.GetByID(ctx, userID)

	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, domain.NewNotFoundError("User with ID %d not found", userID)
	}

	task.AssignedToUserID = userID

	now := time.Now().UTC()
	task.UpdatedDate = &now

	if err := ts.tasks.Update(ctx, task); err != nil {
		slog.Error("Task#Assign", "error", err, "task_id", taskID, "user_id", userID)
		return nil, err
	}

	resp := mapTask(task, user.Username)

	return &resp, nil
}

// ChangeStatus parses the status against the closed enum and stamps the
// update time. A missing task is a nil return, an unparseable status a
// ValidationError.
func (ts *TaskService) ChangeStatus(ctx context.Context, taskID int, status string) (*response.TaskResponse, error) {
	task, err := ts.tasks.GetByID(ctx, taskID)

	if err != nil {
		return nil, err
	}

	if task == nil {
		return nil, nil
	}

	parsed, err := domain.ParseTaskStatus(status)

	if err != nil {
		return nil, err
	}

	task.Status = parsed

	now := time.Now().UTC()
	task.UpdatedDate = &now

	if err := ts.tasks.Update(ctx, task); err != nil {
		slog.Error("Task#ChangeStatus", "error", err, "task_id", taskID, "status", status)
		return nil, err
	}

	resp := mapTask(task, task.AssigneeUsername())

	return &resp, nil
}

func mapTask(task *domain.TaskItem, assignedToUsername string) response.TaskResponse {
	return response.TaskResponse{
		ID:                 task.ID,
		Name:               task.Name,
		Description:        task.Description,
		StartDate:          task.StartDate,
		EndDate:            task.EndDate,
		Status:             string(task.Status),
		AssignedToUserID:   task.AssignedToUserID,
		AssignedToUsername: assignedToUsername,
		CreatedDate:        task.CreatedDate,
		UpdatedDate:        task.UpdatedDate,
	}
}
