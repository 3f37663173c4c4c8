package port

import (
	"context"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/model/request"
	"taskmanager/internal/core/model/response"
)

// TaskRepository owns persistence for the TaskItem aggregate. GetByID and
// GetAll eagerly resolve the assignee relation.
type TaskRepository interface {
	GetByID(ctx context.Context, id int) (*domain.TaskItem, error)
	GetAll(ctx context.Context) ([]domain.TaskItem, error)
	Create(ctx context.Context, task *domain.TaskItem) error
	Update(ctx context.Context, task *domain.TaskItem) error
	Delete(ctx context.Context, id int) error
}

// TaskService orchestrates task operations. A missing task surfaces as a
// nil/false return; a missing user referenced by an operation surfaces as a
// NotFoundError. Callers must preserve that distinction.
type TaskService interface {
	Create(ctx context.Context, req request.CreateTaskRequest) (*response.TaskResponse, error)
	Update(ctx context.Context, id int, req request.UpdateTaskRequest) (*response.TaskResponse, error)
	Delete(ctx context.Context, id int) (bool, error)
	GetByID(ctx context.Context, id int) (*response.TaskResponse, error)
	GetAll(ctx context.Context) ([]response.TaskResponse, error)
	Assign(ctx context.Context, taskID, userID int) (*response.TaskResponse, error)
	ChangeStatus(ctx context.Context, taskID int, status string) (*response.TaskResponse, error)
}
