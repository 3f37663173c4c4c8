package http

import (
	"taskmanager/internal/adapter/http/handler"
	"taskmanager/internal/core/port"
	"taskmanager/internal/core/service"
	"taskmanager/pkg/auth"
	"taskmanager/pkg/config"
)

type Container struct {
	UserRepo port.UserRepository
	TaskRepo port.TaskRepository

	UserUseCase port.UserService
	TaskUseCase port.TaskService
	AuthUseCase port.AuthService

	JWT *auth.JWT

	AuthHandler *handler.AuthHandler
	UserHandler *handler.UserHandler
	TaskHandler *handler.TaskHandler
}

func NewContainer(userRepo port.UserRepository, taskRepo port.TaskRepository, jwtCfg config.JWTConfig) *Container {
	jwt := &auth.JWT{
		Secret:          jwtCfg.Secret,
		Issuer:          jwtCfg.Issuer,
		Audience:        jwtCfg.Audience,
		ExpirationHours: jwtCfg.ExpirationHours,
	}

	userSvc := service.NewUserService(userRepo)
	taskSvc := service.NewTaskService(taskRepo, userRepo)
	authSvc := service.NewAuthService(userRepo, userSvc, jwt)

	return &Container{
		UserRepo: userRepo,
		TaskRepo: taskRepo,

		UserUseCase: userSvc,
		TaskUseCase: taskSvc,
		AuthUseCase: authSvc,

		JWT: jwt,

		AuthHandler: handler.NewAuthHandler(authSvc),
		UserHandler: handler.NewUserHandler(userSvc),
		TaskHandler: handler.NewTaskHandler(taskSvc),
	}
}
