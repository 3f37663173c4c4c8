package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	. "taskmanager/pkg/test"

	"taskmanager/internal/adapter/database/sqlite/repository"
	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/port"
)

type TaskRepositoryTestSuite struct {
	suite.Suite
	repo     port.TaskRepository
	userRepo port.UserRepository
}

func (s *TaskRepositoryTestSuite) SetupTest() {
	db := InitTestDB()
	s.repo = repository.NewTaskRepository(db)
	s.userRepo = repository.NewUserRepository(db)
}

func TestTaskRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TaskRepositoryTestSuite))
}

func (s *TaskRepositoryTestSuite) createUser(username string) *domain.User {
	user := employee(username, username+"@test.com")

	assert.NoError(s.T(), s.userRepo.Create(context.Background(), user))

	return user
}

func task(name string, userID int) *domain.TaskItem {
	return &domain.TaskItem{
		Name:             name,
		Description:      "desc",
		StartDate:        time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		Status:           domain.StatusNotStarted,
		AssignedToUserID: userID,
		CreatedDate:      time.Now().UTC(),
	}
}

func (s *TaskRepositoryTestSuite) TestCreate_AssignsID() {
	user := s.createUser("worker")
	item := task("Write report", user.ID)

	err := s.repo.Create(context.Background(), item)

	assert.NoError(s.T(), err)
	assert.Greater(s.T(), item.ID, 0)
}

func (s *TaskRepositoryTestSuite) TestCreate_UnknownAssigneeIsNotFound() {
	err := s.repo.Create(context.Background(), task("Orphan", 9999))

	assert.True(s.T(), domain.IsNotFoundError(err))
	assert.Equal(s.T(), "User with ID 9999 not found", err.Error())
}

func (s *TaskRepositoryTestSuite) TestGetByID_ResolvesAssigneeUsername() {
	user := s.createUser("haaris.i")
	item := task("Write report", user.ID)
	assert.NoError(s.T(), s.repo.Create(context.Background(), item))

	loaded, err := s.repo.GetByID(context.Background(), item.ID)

	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), loaded.AssignedTo)
	assert.Equal(s.T(), "haaris.i", loaded.AssigneeUsername())
	assert.Equal(s.T(), domain.StatusNotStarted, loaded.Status)
}

func (s *TaskRepositoryTestSuite) TestGetByID_MissingIsNilNil() {
	loaded, err := s.repo.GetByID(context.Background(), 9999)

	assert.NoError(s.T(), err)
	assert.Nil(s.T(), loaded)
}

func (s *TaskRepositoryTestSuite) TestGetAll_OrderedByID() {
	user := s.createUser("worker")

	first := task("First", user.ID)
	second := task("Second", user.ID)
	assert.NoError(s.T(), s.repo.Create(context.Background(), first))
	assert.NoError(s.T(), s.repo.Create(context.Background(), second))

	tasks, err := s.repo.GetAll(context.Background())

	assert.NoError(s.T(), err)
	assert.Len(s.T(), tasks, 2)
	assert.Equal(s.T(), "First", tasks[0].Name)
	assert.Equal(s.T(), "Second", tasks[1].Name)
}

func (s *TaskRepositoryTestSuite) TestUpdate_PersistsStatusAndEndDate() {
	user := s.createUser("worker")
	item := task("Task", user.ID)
	assert.NoError(s.T(), s.repo.Create(context.Background(), item))

	end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()

	item.Status = domain.StatusCompleted
	item.EndDate = &end
	item.UpdatedDate = &now

	assert.NoError(s.T(), s.repo.Update(context.Background(), item))

	loaded, err := s.repo.GetByID(context.Background(), item.ID)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), domain.StatusCompleted, loaded.Status)
	assert.NotNil(s.T(), loaded.EndDate)
	assert.NotNil(s.T(), loaded.UpdatedDate)
}

func (s *TaskRepositoryTestSuite) TestUpdate_ReassignToUnknownUserIsNotFound() {
	user := s.createUser("worker")
	item := task("Task", user.ID)
	assert.NoError(s.T(), s.repo.Create(context.Background(), item))

	item.AssignedToUserID = 9999

	err := s.repo.Update(context.Background(), item)

	assert.True(s.T(), domain.IsNotFoundError(err))
}

func (s *TaskRepositoryTestSuite) TestDelete_RemovesRow() {
	user := s.createUser("worker")
	item := task("Task", user.ID)
	assert.NoError(s.T(), s.repo.Create(context.Background(), item))

	assert.NoError(s.T(), s.repo.Delete(context.Background(), item.ID))

	loaded, err := s.repo.GetByID(context.Background(), item.ID)

	assert.NoError(s.T(), err)
	assert.Nil(s.T(), loaded)
}

func (s *TaskRepositoryTestSuite) TestUserDelete_AssignedUserIsRestricted() {
	user := s.createUser("busy")
	assert.NoError(s.T(), s.repo.Create(context.Background(), task("Held", user.ID)))

	err := s.userRepo.Delete(context.Background(), user.ID)

	assert.True(s.T(), domain.IsConflictError(err))
	assert.Contains(s.T(), err.Error(), "still assigned to tasks")
}
