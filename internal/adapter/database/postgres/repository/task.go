package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"taskmanager/internal/adapter/database/postgres"
	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/port"
)

var taskColumns = []string{
	"t.id", "t.name", "t.description", "t.start_date", "t.end_date",
	"t.status", "t.assigned_to_user_id", "t.created_date", "t.updated_date",
	"u.username",
}

type TaskRepository struct {
	db *postgres.DB
}

func NewTaskRepository(db *postgres.DB) port.TaskRepository {
	return &TaskRepository{db: db}
}

// GetByID eagerly resolves the assignee relation; the left join keeps the
// task readable even if the relation is unexpectedly absent.
func (tr *TaskRepository) GetByID(ctx context.Context, id int) (*domain.TaskItem, error) {
	stmt, args, err := tr.db.QueryBuilder.Select(taskColumns...).
		From("tasks t").
		LeftJoin("users u ON u.id = t.assigned_to_user_id").
		Where(sq.Eq{"t.id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, err
	}

	task, err := scanTask(tr.db.QueryRow(ctx, stmt, args...))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		slog.Error("Error getting task by id", "error", err)
		return nil, err
	}

	return task, nil
}

func (tr *TaskRepository) GetAll(ctx context.Context) ([]domain.TaskItem, error) {
	stmt, args, err := tr.db.QueryBuilder.Select(taskColumns...).
		From("tasks t").
		LeftJoin("users u ON u.id = t.assigned_to_user_id").
		OrderBy("t.id ASC").
		ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := tr.db.Query(ctx, stmt, args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var tasks []domain.TaskItem

	for rows.Next() {
		task, err := scanTask(rows)

		if err != nil {
			return nil, err
		}

		tasks = append(tasks, *task)
	}

	return tasks, rows.Err()
}

func (tr *TaskRepository) Create(ctx context.Context, task *domain.TaskItem) error {
	stmt, args, err := tr.db.QueryBuilder.Insert("tasks").
		Columns("name", "description", "start_date", "end_date", "status",
			"assigned_to_user_id", "created_date", "updated_date").
		Values(task.Name, task.Description, task.StartDate, task.EndDate, string(task.Status),
			task.AssignedToUserID, task.CreatedDate, task.UpdatedDate).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return err
	}

	if err := tr.db.QueryRow(ctx, stmt, args...).Scan(&task.ID); err != nil {
		return translateTaskConstraint(err, task.AssignedToUserID)
	}

	return nil
}

func (tr *TaskRepository) Update(ctx context.Context, task *domain.TaskItem) error {
	stmt, args, err := tr.db.QueryBuilder.Update("tasks").
		SetMap(map[string]any{
			"name":                task.Name,
			"description":         task.Description,
			"start_date":          task.StartDate,
			"end_date":            task.EndDate,
			"status":              string(task.Status),
			"assigned_to_user_id": task.AssignedToUserID,
			"updated_date":        task.UpdatedDate,
		}).
		Where(sq.Eq{"id": task.ID}).
		ToSql()

	if err != nil {
		return err
	}

	result, err := tr.db.Exec(ctx, stmt, args...)

	if err != nil {
		return translateTaskConstraint(err, task.AssignedToUserID)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("task with id %d not found", task.ID)
	}

	return nil
}

func (tr *TaskRepository) Delete(ctx context.Context, id int) error {
	stmt, args, err := tr.db.QueryBuilder.Delete("tasks").
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return err
	}

	result, err := tr.db.Exec(ctx, stmt, args...)

	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("task with id %d not found", id)
	}

	return nil
}

func scanTask(row rowScanner) (*domain.TaskItem, error) {
	var (
		task     domain.TaskItem
		status   string
		endDate  sql.NullTime
		updated  sql.NullTime
		username sql.NullString
	)

	err := row.Scan(
		&task.ID, &task.Name, &task.Description, &task.StartDate, &endDate,
		&status, &task.AssignedToUserID, &task.CreatedDate, &updated,
		&username,
	)

	if err != nil {
		return nil, err
	}

	task.Status = domain.TaskStatus(status)

	if endDate.Valid {
		t := endDate.Time
		task.EndDate = &t
	}

	if updated.Valid {
		t := updated.Time
		task.UpdatedDate = &t
	}

	if username.Valid {
		task.AssignedTo = &domain.User{
			ID:       task.AssignedToUserID,
			Username: username.String,
		}
	}

	return &task, nil
}

// translateTaskConstraint maps a foreign-key violation on the assignee onto
// the NotFoundError the service layer promises, covering the race between
// its existence check and the write.
func translateTaskConstraint(err error, userID int) error {
	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return domain.NewNotFoundError("User with ID %d not found", userID)
	}

	return err
}
