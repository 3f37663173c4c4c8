package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	. "taskmanager/pkg/test"

	"taskmanager/internal/adapter/database/sqlite/repository"
	"taskmanager/internal/adapter/http/handler"
	"taskmanager/internal/adapter/http/routes"
	"taskmanager/internal/core/port"
	"taskmanager/internal/core/service"
	"taskmanager/pkg/auth"
)

const registerBody = `{
	"username": "haaris.i",
	"email": "haaris@test.com",
	"password": "Str0ng!Pass",
	"role": "Employee",
	"employee_id": "EMP01",
	"department": "Engineering"
}`

type AuthHandlerSuite struct {
	suite.Suite
	UserRepo port.UserRepository
	Router   *gin.Engine
}

func (s *AuthHandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db := InitTestDB()
	s.UserRepo = repository.NewUserRepository(db)

	jwt := &auth.JWT{Secret: "test-secret", Issuer: "taskmanager", Audience: "taskmanager-clients"}

	userUseCase := service.NewUserService(s.UserRepo)
	authUseCase := service.NewAuthService(s.UserRepo, userUseCase, jwt)

	s.Router = routes.SetupRouterForTests(routes.HandlersConfig{
		AuthHandler: handler.NewAuthHandler(authUseCase),
	})
}

func TestAuthHandlerSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(AuthHandlerSuite))
}

func (s *AuthHandlerSuite) postJSON(path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	return rr
}

func (s *AuthHandlerSuite) TestRegisterSuccess() {
	rr := s.postJSON("/api/auth/register", registerBody)

	body, _ := io.ReadAll(rr.Body)

	data := gin.H{}
	json.Unmarshal(body, &data)

	newData := data["data"].(map[string]any)
	user := newData["user"].(map[string]any)

	Expect(rr.Code).To(Equal(http.StatusCreated))
	Expect(newData["token"]).ToNot(BeEmpty())
	Expect(user["username"]).To(Equal("haaris.i"))
	Expect(user["display_name"]).To(Equal("EMP01: haaris.i"))
}

func (s *AuthHandlerSuite) TestRegisterDuplicateUsernameConflicts() {
	s.postJSON("/api/auth/register", registerBody)

	second := strings.Replace(registerBody, "haaris@test.com", "other@test.com", 1)
	rr := s.postJSON("/api/auth/register", second)

	Expect(rr.Code).To(Equal(http.StatusConflict))
}

func (s *AuthHandlerSuite) TestRegisterWeakPasswordRejected() {
	weak := strings.Replace(registerBody, "Str0ng!Pass", "weak", 1)
	rr := s.postJSON("/api/auth/register", weak)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))
}

func (s *AuthHandlerSuite) TestRegisterValidationError() {
	rr := s.postJSON("/api/auth/register", `{"email": "not-an-email"}`)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))
}

func (s *AuthHandlerSuite) TestLoginSuccess() {
	s.postJSON("/api/auth/register", registerBody)

	rr := s.postJSON("/api/auth/login", `{"email": "haaris@test.com", "password": "Str0ng!Pass"}`)

	body, _ := io.ReadAll(rr.Body)

	data := gin.H{}
	json.Unmarshal(body, &data)

	newData := data["data"].(map[string]any)

	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(newData["token"]).ToNot(BeEmpty())
	Expect(newData["expires_at"]).ToNot(BeEmpty())
}

func (s *AuthHandlerSuite) TestLoginWrongPasswordUnauthorized() {
	s.postJSON("/api/auth/register", registerBody)

	rr := s.postJSON("/api/auth/login", `{"email": "haaris@test.com", "password": "Wrong!Pass1"}`)

	Expect(rr.Code).To(Equal(http.StatusUnauthorized))
}

func (s *AuthHandlerSuite) TestLoginUnknownEmailUnauthorized() {
	rr := s.postJSON("/api/auth/login", `{"email": "nobody@test.com", "password": "Str0ng!Pass"}`)

	Expect(rr.Code).To(Equal(http.StatusUnauthorized))
}
