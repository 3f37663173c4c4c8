package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"taskmanager/internal/adapter/database/postgres"
	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/port"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var userColumns = []string{
	"id", "username", "email", "password_hash", "user_type",
	"admin_level", "company", "contact_info", "employee_id", "manager_id", "department",
	"created_date", "updated_date",
}

type UserRepository struct {
	db *postgres.DB
}

func NewUserRepository(db *postgres.DB) port.UserRepository {
	return &UserRepository{db: db}
}

func (ur *UserRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	query := ur.db.QueryBuilder.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		Limit(1)

	return ur.getOne(ctx, query)
}

func (ur *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := ur.db.QueryBuilder.Select(userColumns...).
		From("users").
		Where(sq.Expr("LOWER(email) = LOWER(?)", email)).
		Limit(1)

	return ur.getOne(ctx, query)
}

func (ur *UserRepository) getOne(ctx context.Context, query sq.SelectBuilder) (*domain.User, error) {
	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	user, err := scanUser(ur.db.QueryRow(ctx, stmt, args...))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		slog.Error("Error getting user", "error", err)
		return nil, err
	}

	return user, nil
}

func (ur *UserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	query := ur.db.QueryBuilder.Select(userColumns...).
		From("users").
		OrderBy("id ASC")

	return ur.getMany(ctx, query)
}

func (ur *UserRepository) GetByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	query := ur.db.QueryBuilder.Select(userColumns...).
		From("users").
		Where(sq.Eq{"user_type": string(role)}).
		OrderBy("id ASC")

	return ur.getMany(ctx, query)
}

func (ur *UserRepository) getMany(ctx context.Context, query sq.SelectBuilder) ([]domain.User, error) {
	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := ur.db.Query(ctx, stmt, args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var users []domain.User

	for rows.Next() {
		user, err := scanUser(rows)

		if err != nil {
			return nil, err
		}

		users = append(users, *user)
	}

	return users, rows.Err()
}

func (ur *UserRepository) Create(ctx context.Context, user *domain.User) error {
	userType, roleValues := profileColumns(user.Profile)

	stmt, args, err := ur.db.QueryBuilder.Insert("users").
		Columns("username", "email", "password_hash", "user_type",
			"admin_level", "company", "contact_info", "employee_id", "manager_id", "department",
			"created_date", "updated_date").
		Values(user.Username, user.Email, user.PasswordHash, userType,
			roleValues[0], roleValues[1], roleValues[2], roleValues[3], roleValues[4], roleValues[5],
			user.CreatedDate, user.UpdatedDate).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return err
	}

	if err := ur.db.QueryRow(ctx, stmt, args...).Scan(&user.ID); err != nil {
		return translateUserConstraint(err, user)
	}

	return nil
}

func (ur *UserRepository) Update(ctx context.Context, user *domain.User) error {
	userType, roleValues := profileColumns(user.Profile)

	stmt, args, err := ur.db.QueryBuilder.Update("users").
		SetMap(map[string]any{
			"username":      user.Username,
			"email":         user.Email,
			"password_hash": user.PasswordHash,
			"user_type":     userType,
			"admin_level":   roleValues[0],
			"company":       roleValues[1],
			"contact_info":  roleValues[2],
			"employee_id":   roleValues[3],
			"manager_id":    roleValues[4],
			"department":    roleValues[5],
			"updated_date":  user.UpdatedDate,
		}).
		Where(sq.Eq{"id": user.ID}).
		ToSql()

	if err != nil {
		return err
	}

	result, err := ur.db.Exec(ctx, stmt, args...)

	if err != nil {
		return translateUserConstraint(err, user)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user with id %d not found", user.ID)
	}

	return nil
}

func (ur *UserRepository) Delete(ctx context.Context, id int) error {
	stmt, args, err := ur.db.QueryBuilder.Delete("users").
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return err
	}

	result, err := ur.db.Exec(ctx, stmt, args...)

	if err != nil {
		var pgErr *pgconn.PgError

		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domain.NewConflictError("User with ID %d is still assigned to tasks", id)
		}

		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user with id %d not found", id)
	}

	return nil
}

func (ur *UserRepository) UsernameExists(ctx context.Context, username string, excludeID int) (bool, error) {
	query := ur.db.QueryBuilder.Select("COUNT(1)").
		From("users").
		Where(sq.Expr("LOWER(username) = LOWER(?)", username))

	if excludeID > 0 {
		query = query.Where(sq.NotEq{"id": excludeID})
	}

	return ur.exists(ctx, query)
}

func (ur *UserRepository) EmailExists(ctx context.Context, email string, excludeID int) (bool, error) {
	query := ur.db.QueryBuilder.Select("COUNT(1)").
		From("users").
		Where(sq.Expr("LOWER(email) = LOWER(?)", email))

	if excludeID > 0 {
		query = query.Where(sq.NotEq{"id": excludeID})
	}

	return ur.exists(ctx, query)
}

func (ur *UserRepository) exists(ctx context.Context, query sq.SelectBuilder) (bool, error) {
	stmt, args, err := query.ToSql()

	if err != nil {
		return false, err
	}

	var count int

	if err := ur.db.QueryRow(ctx, stmt, args...).Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		user     domain.User
		userType string
		updated  sql.NullTime

		adminLevel, company, contactInfo sql.NullString
		employeeID, managerID, dept      sql.NullString
	)

	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &userType,
		&adminLevel, &company, &contactInfo, &employeeID, &managerID, &dept,
		&user.CreatedDate, &updated,
	)

	if err != nil {
		return nil, err
	}

	if updated.Valid {
		t := updated.Time
		user.UpdatedDate = &t
	}

	switch domain.Role(userType) {
	case domain.RoleAdmin:
		user.Profile = domain.AdminProfile{
			AdminLevel: adminLevel.String,
		}
	case domain.RoleClient:
		user.Profile = domain.ClientProfile{
			Company:     company.String,
			ContactInfo: contactInfo.String,
		}
	case domain.RoleEmployee:
		user.Profile = domain.EmployeeProfile{
			EmployeeID: employeeID.String,
			Department: dept.String,
		}
	case domain.RoleProjectManager:
		user.Profile = domain.ProjectManagerProfile{
			ManagerID:  managerID.String,
			Department: dept.String,
		}
	default:
		return nil, fmt.Errorf("unknown user_type %q", userType)
	}

	return &user, nil
}

func profileColumns(profile domain.RoleProfile) (string, [6]any) {
	var values [6]any

	switch p := profile.(type) {
	case domain.AdminProfile:
		values[0] = p.AdminLevel
	case domain.ClientProfile:
		values[1] = p.Company
		values[2] = p.ContactInfo
	case domain.EmployeeProfile:
		values[3] = p.EmployeeID
		values[5] = p.Department
	case domain.ProjectManagerProfile:
		values[4] = p.ManagerID
		values[5] = p.Department
	}

	return string(profile.Role()), values
}

func translateUserConstraint(err error, user *domain.User) error {
	var pgErr *pgconn.PgError

	if !errors.As(err, &pgErr) {
		return err
	}

	if pgErr.Code == pgUniqueViolation {
		if strings.Contains(pgErr.ConstraintName, "username") {
			return domain.NewConflictError("Username '%s' is already taken", user.Username)
		}

		return domain.NewConflictError("Email '%s' is already registered", user.Email)
	}

	return err
}
