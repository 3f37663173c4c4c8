package service_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	. "taskmanager/pkg/test"

	"taskmanager/internal/adapter/database/sqlite/repository"
	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/model/request"
	"taskmanager/internal/core/port"
	"taskmanager/internal/core/service"
	"taskmanager/pkg/auth"
)

type AuthServiceTestSuite struct {
	suite.Suite
	UseCase port.AuthService
	JWT     *auth.JWT
}

func (s *AuthServiceTestSuite) SetupTest() {
	db := InitTestDB()

	userRepo := repository.NewUserRepository(db)
	userSvc := service.NewUserService(userRepo)

	s.JWT = &auth.JWT{
		Secret:          "test-secret",
		Issuer:          "taskmanager",
		Audience:        "taskmanager-clients",
		ExpirationHours: 24,
	}

	s.UseCase = service.NewAuthService(userRepo, userSvc, s.JWT)
}

func TestAuthServiceTestSuite(t *testing.T) {
	RegisterTestingT(t)

	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) register(username, email string) {
	_, err := s.UseCase.Register(context.Background(), employeeRequest(username, email))

	Expect(err).To(BeNil())
}

func (s *AuthServiceTestSuite) TestRegister_ReturnsTokenAndUser() {
	resp, err := s.UseCase.Register(context.Background(), employeeRequest("haaris.i", "haaris@test.com"))

	Expect(err).To(BeNil())
	Expect(resp.Token).ToNot(BeEmpty())
	Expect(resp.User.Username).To(Equal("haaris.i"))
	Expect(resp.User.Role).To(Equal("Employee"))
	Expect(resp.ExpiresAt).To(BeTemporally("~", time.Now().UTC().Add(24*time.Hour), time.Minute))
}

func (s *AuthServiceTestSuite) TestRegister_PropagatesConflicts() {
	s.register("haaris.i", "haaris@test.com")

	_, err := s.UseCase.Register(context.Background(), employeeRequest("haaris.i", "other@test.com"))

	Expect(domain.IsConflictError(err)).To(BeTrue())
}

func (s *AuthServiceTestSuite) TestLogin_TokenCarriesIdentityClaims() {
	s.register("haaris.i", "haaris@test.com")

	resp, err := s.UseCase.Login(context.Background(), request.LoginRequest{
		Email:    "haaris@test.com",
		Password: "Str0ng!Pass",
	})

	Expect(err).To(BeNil())

	claims, err := s.JWT.Verify(resp.Token)

	Expect(err).To(BeNil())
	Expect(claims["email"]).To(Equal("haaris@test.com"))
	Expect(claims["username"]).To(Equal("haaris.i"))
	Expect(claims["role"]).To(Equal("Employee"))
	Expect(claims["iss"]).To(Equal("taskmanager"))
	Expect(claims["aud"]).To(Equal("taskmanager-clients"))
	Expect(claims["jti"]).ToNot(BeEmpty())
}

func (s *AuthServiceTestSuite) TestLogin_EmailIsCaseInsensitive() {
	s.register("haaris.i", "haaris@test.com")

	_, err := s.UseCase.Login(context.Background(), request.LoginRequest{
		Email:    "HAARIS@TEST.COM",
		Password: "Str0ng!Pass",
	})

	Expect(err).To(BeNil())
}

func (s *AuthServiceTestSuite) TestLogin_WrongPasswordAndUnknownEmailAreIndistinguishable() {
	s.register("haaris.i", "haaris@test.com")

	_, errWrongPassword := s.UseCase.Login(context.Background(), request.LoginRequest{
		Email:    "haaris@test.com",
		Password: "Wrong!Pass1",
	})

	_, errUnknownEmail := s.UseCase.Login(context.Background(), request.LoginRequest{
		Email:    "nobody@test.com",
		Password: "Str0ng!Pass",
	})

	Expect(domain.IsAuthenticationError(errWrongPassword)).To(BeTrue())
	Expect(domain.IsAuthenticationError(errUnknownEmail)).To(BeTrue())
	Expect(errWrongPassword.Error()).To(Equal(errUnknownEmail.Error()))
	Expect(errWrongPassword.Error()).To(Equal("Invalid email or password"))
}

func (s *AuthServiceTestSuite) TestIssue_DefaultsToTwentyFourHours() {
	issuer := &auth.JWT{Secret: "test-secret"}

	_, expiresAt, err := issuer.Issue(&domain.User{
		ID:       1,
		Username: "x",
		Email:    "x@test.com",
		Profile:  domain.EmployeeProfile{},
	})

	Expect(err).To(BeNil())
	Expect(expiresAt).To(BeTemporally("~", time.Now().UTC().Add(24*time.Hour), time.Minute))
}

func (s *AuthServiceTestSuite) TestVerify_RejectsForeignSignature() {
	other := &auth.JWT{Secret: "other-secret"}

	token, _, err := other.Issue(&domain.User{
		ID:      1,
		Profile: domain.EmployeeProfile{},
	})

	Expect(err).To(BeNil())

	_, err = s.JWT.Verify(token)

	Expect(err).To(HaveOccurred())
}

func (s *AuthServiceTestSuite) TestIssue_SubjectIsUserID() {
	s.register("haaris.i", "haaris@test.com")

	resp, err := s.UseCase.Login(context.Background(), request.LoginRequest{
		Email:    "haaris@test.com",
		Password: "Str0ng!Pass",
	})

	Expect(err).To(BeNil())

	claims, err := s.JWT.Verify(resp.Token)

	Expect(err).To(BeNil())

	sub, err := claims.GetSubject()

	Expect(err).To(BeNil())
	Expect(sub).ToNot(BeEmpty())
}
