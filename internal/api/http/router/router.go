package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dtroode/tasktracker-server/internal/api/http/handler"
	"github.com/dtroode/tasktracker-server/internal/api/http/middleware"
	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
)

// Router wires handlers and middleware into a fiber application.
type Router struct {
	authService    handler.AuthService
	taskService    handler.TaskService
	tokenService   middleware.TokenService
	db             handler.Pinger
	contextManager model.ContextManager
	logger         *logger.Logger
	bodyLimit      int
}

// New creates new Router instance.
func New(
	authService handler.AuthService,
	taskService handler.TaskService,
	tokenService middleware.TokenService,
	db handler.Pinger,
	contextManager model.ContextManager,
	logger *logger.Logger,
	bodyLimit int,
) *Router {
	return &Router{
		authService:    authService,
		taskService:    taskService,
		tokenService:   tokenService,
		db:             db,
		contextManager: contextManager,
		logger:         logger,
		bodyLimit:      bodyLimit,
	}
}

// Register builds the fiber application with all routes.
//
//	POST   /api/auth/register
//	POST   /api/auth/login
//	POST   /api/tasks
//	GET    /api/tasks
//	GET    /api/tasks/:id
//	PATCH  /api/tasks/:id
//	DELETE /api/tasks/:id
//	GET    /health
func (r *Router) Register() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "tasktracker",
		ErrorHandler:          handler.ErrorHandler,
		BodyLimit:             r.bodyLimit,
		DisableStartupMessage: true,
	})

	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	app.Use(middleware.RequestID, logging.Handle)

	app.Get("/health", handler.NewHealth(r.db, r.logger).Check)

	api := app.Group("/api")
	r.registerAuthRoutes(api)
	r.registerTaskRoutes(api, authenticate)

	return app
}

func (r *Router) registerAuthRoutes(api fiber.Router) {
	authHandler := handler.NewAuth(r.authService, r.logger)

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
}

func (r *Router) registerTaskRoutes(api fiber.Router, authenticate *middleware.Authenticate) {
	taskHandler := handler.NewTask(r.taskService, r.contextManager, r.logger)

	tasks := api.Group("/tasks", authenticate.Handle)
	tasks.Post("/", taskHandler.Create)
	tasks.Get("/", taskHandler.List)
	tasks.Get("/:id", taskHandler.Get)
	tasks.Patch("/:id", taskHandler.Update)
	tasks.Delete("/:id", taskHandler.Delete)
}
