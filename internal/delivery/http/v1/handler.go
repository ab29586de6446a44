package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-manager/internal/services"
)

type Handler interface {
	HandleRequestIDMiddleware(c *gin.Context)

	HandleGetTasks(c *gin.Context)
	HandleGetTask(c *gin.Context)
	HandleCreateTask(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
}

type handlerImpl struct {
	logger zerolog.Logger
	tasks  services.TaskService
}

func New(
	logger zerolog.Logger,
	taskService services.TaskService,
) Handler {
	return &handlerImpl{
		logger: logger,
		tasks:  taskService,
	}
}

// RegisterRoutes mounts the task endpoints under /tasks of the given router.
func RegisterRoutes(router gin.IRouter, h Handler) {
	router.Use(h.HandleRequestIDMiddleware)

	tasksRouter := router.Group("/tasks")
	tasksRouter.GET("", h.HandleGetTasks)
	tasksRouter.GET("/:id", h.HandleGetTask)
	tasksRouter.POST("", h.HandleCreateTask)
	tasksRouter.PUT("/:id", h.HandleUpdateTask)
	tasksRouter.DELETE("/:id", h.HandleDeleteTask)
}
