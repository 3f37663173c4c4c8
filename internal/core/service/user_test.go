package service_test

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	. "taskmanager/pkg/test"

	"taskmanager/internal/adapter/database/sqlite/repository"
	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/model/request"
	"taskmanager/internal/core/port"
	"taskmanager/internal/core/service"
)

type UserServiceTestSuite struct {
	suite.Suite
	UseCase  port.UserService
	UserRepo port.UserRepository
}

func (s *UserServiceTestSuite) SetupTest() {
	db := InitTestDB()

	s.UserRepo = repository.NewUserRepository(db)
	s.UseCase = service.NewUserService(s.UserRepo)
}

func TestUserServiceTestSuite(t *testing.T) {
	RegisterTestingT(t)

	suite.Run(t, new(UserServiceTestSuite))
}

func employeeRequest(username, email string) request.CreateUserRequest {
	return request.CreateUserRequest{
		Username:   username,
		Email:      email,
		Password:   "Str0ng!Pass",
		Role:       "Employee",
		EmployeeID: "EMP01",
		Department: "Engineering",
	}
}

func (s *UserServiceTestSuite) TestCreate_Employee() {
	user, err := s.UseCase.Create(context.Background(), employeeRequest("haaris.i", "haaris@test.com"))

	Expect(err).To(BeNil())
	Expect(user.ID).To(BeNumerically(">", 0))
	Expect(user.Role).To(Equal("Employee"))
	Expect(user.DisplayName).To(Equal("EMP01: haaris.i"))
	Expect(*user.EmployeeID).To(Equal("EMP01"))
	Expect(user.AdminLevel).To(BeNil())
	Expect(user.UpdatedDate).To(BeNil())
}

func (s *UserServiceTestSuite) TestCreate_WeakPasswordReportsAllViolations() {
	req := employeeRequest("weak", "weak@test.com")
	req.Password = "short"

	_, err := s.UseCase.Create(context.Background(), req)

	Expect(domain.IsValidationError(err)).To(BeTrue())
	Expect(err.Error()).To(ContainSubstring("Password must be at least 8 characters long"))
	Expect(err.Error()).To(ContainSubstring("Password must contain at least one uppercase letter"))
	Expect(err.Error()).To(ContainSubstring("Password must contain at least one number"))
	Expect(err.Error()).To(ContainSubstring("Password must contain at least one special character"))
}

func (s *UserServiceTestSuite) TestCreate_PasswordIsHashedAtRest() {
	created, err := s.UseCase.Create(context.Background(), employeeRequest("hashed", "hashed@test.com"))

	Expect(err).To(BeNil())

	stored, err := s.UserRepo.GetByID(context.Background(), created.ID)

	Expect(err).To(BeNil())
	Expect(stored.PasswordHash).ToNot(Equal("Str0ng!Pass"))
	Expect(stored.PasswordHash).ToNot(BeEmpty())
}

func (s *UserServiceTestSuite) TestCreate_DuplicateUsernameCaseInsensitive() {
	_, err := s.UseCase.Create(context.Background(), employeeRequest("haaris.i", "first@test.com"))
	Expect(err).To(BeNil())

	_, err = s.UseCase.Create(context.Background(), employeeRequest("HAARIS.I", "second@test.com"))

	Expect(domain.IsConflictError(err)).To(BeTrue())
	Expect(err.Error()).To(Equal("Username 'HAARIS.I' is already taken"))
}

func (s *UserServiceTestSuite) TestCreate_DuplicateEmailCaseInsensitive() {
	_, err := s.UseCase.Create(context.Background(), employeeRequest("first", "haaris@test.com"))
	Expect(err).To(BeNil())

	_, err = s.UseCase.Create(context.Background(), employeeRequest("second", "HAARIS@TEST.COM"))

	Expect(domain.IsConflictError(err)).To(BeTrue())
	Expect(err.Error()).To(Equal("Email 'HAARIS@TEST.COM' is already registered"))
}

func (s *UserServiceTestSuite) TestUpdate_OverwritesSharedAndRoleFields() {
	created, _ := s.UseCase.Create(context.Background(), employeeRequest("before", "before@test.com"))

	updated, err := s.UseCase.Update(context.Background(), created.ID, request.UpdateUserRequest{
		Username:   "after",
		Email:      "after@test.com",
		EmployeeID: "EMP99",
		Department: "Support",
	})

	Expect(err).To(BeNil())
	Expect(updated.Username).To(Equal("after"))
	Expect(updated.Email).To(Equal("after@test.com"))
	Expect(*updated.EmployeeID).To(Equal("EMP99"))
	Expect(*updated.Department).To(Equal("Support"))
	Expect(updated.Role).To(Equal("Employee"))
	Expect(updated.UpdatedDate).ToNot(BeNil())
}

func (s *UserServiceTestSuite) TestUpdate_MissingUserIsNotFound() {
	_, err := s.UseCase.Update(context.Background(), 9999, request.UpdateUserRequest{
		Username: "ghost",
		Email:    "ghost@test.com",
	})

	Expect(domain.IsNotFoundError(err)).To(BeTrue())
	Expect(err.Error()).To(Equal("User with ID 9999 not found"))
}

func (s *UserServiceTestSuite) TestUpdate_KeepingOwnUsernameIsNotAConflict() {
	created, _ := s.UseCase.Create(context.Background(), employeeRequest("same", "same@test.com"))

	_, err := s.UseCase.Update(context.Background(), created.ID, request.UpdateUserRequest{
		Username:   "same",
		Email:      "same@test.com",
		EmployeeID: "EMP01",
		Department: "Engineering",
	})

	Expect(err).To(BeNil())
}

func (s *UserServiceTestSuite) TestUpdate_TakingAnotherUsersUsernameConflicts() {
	s.UseCase.Create(context.Background(), employeeRequest("taken", "taken@test.com"))
	created, _ := s.UseCase.Create(context.Background(), employeeRequest("mine", "mine@test.com"))

	_, err := s.UseCase.Update(context.Background(), created.ID, request.UpdateUserRequest{
		Username: "taken",
		Email:    "mine@test.com",
	})

	Expect(domain.IsConflictError(err)).To(BeTrue())
}

func (s *UserServiceTestSuite) TestDelete_ReturnsFalseForMissingUser() {
	deleted, err := s.UseCase.Delete(context.Background(), 9999)

	Expect(err).To(BeNil())
	Expect(deleted).To(BeFalse())
}

func (s *UserServiceTestSuite) TestDelete_ReturnsTrueAndRemoves() {
	created, _ := s.UseCase.Create(context.Background(), employeeRequest("gone", "gone@test.com"))

	deleted, err := s.UseCase.Delete(context.Background(), created.ID)

	Expect(err).To(BeNil())
	Expect(deleted).To(BeTrue())

	found, err := s.UseCase.GetByID(context.Background(), created.ID)

	Expect(err).To(BeNil())
	Expect(found).To(BeNil())
}

func (s *UserServiceTestSuite) TestGetByEmail_CaseInsensitive() {
	s.UseCase.Create(context.Background(), employeeRequest("mailed", "Mailed@Test.com"))

	found, err := s.UseCase.GetByEmail(context.Background(), "mailed@test.com")

	Expect(err).To(BeNil())
	Expect(found).ToNot(BeNil())
	Expect(found.Username).To(Equal("mailed"))
}

func (s *UserServiceTestSuite) TestGetByRole_CaseInsensitiveAndFiltered() {
	s.UseCase.Create(context.Background(), employeeRequest("emp1", "emp1@test.com"))

	adminReq := employeeRequest("boss", "boss@test.com")
	adminReq.Role = "Admin"
	adminReq.AdminLevel = "Super"
	s.UseCase.Create(context.Background(), adminReq)

	employees, err := s.UseCase.GetByRole(context.Background(), "employee")

	Expect(err).To(BeNil())
	Expect(employees).To(HaveLen(1))
	Expect(employees[0].Username).To(Equal("emp1"))
}

func (s *UserServiceTestSuite) TestGetByRole_UnknownRoleYieldsEmptySet() {
	s.UseCase.Create(context.Background(), employeeRequest("emp1", "emp1@test.com"))

	users, err := s.UseCase.GetByRole(context.Background(), "Supervisor")

	Expect(err).To(BeNil())
	Expect(users).To(BeEmpty())
}
