package router

import (
	"github.com/planora/planora-api/internal/application"
	"github.com/planora/planora-api/internal/container"
	pginfra "github.com/planora/planora-api/internal/infrastructure/postgres"
	handlers "github.com/planora/planora-api/internal/interface/http"
	"github.com/planora/planora-api/internal/router/modules"
)

// InitModules builds the services from the container singletons and
// registers every feature module with the router registry. Called once
// during application startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	eventRepo := pginfra.NewEventRepository(container.GetPGPool())

	userSvc := application.NewUserService(
		userRepo,
		eventRepo,
		container.GetRabbitPub(),
		cfg.MailSendEnabled,
		logger,
	)
	eventSvc := application.NewEventService(
		eventRepo,
		container.GetES(),
		cfg.ESEventsIndex,
		logger,
	)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger)))
	r.Add(modules.NewEventModule(handlers.NewEventHandler(eventSvc, logger)))
	r.Add(modules.NewDebugModule(handlers.NewHealthHandler(container.GetPGPool(), container.GetRedis())))
}
