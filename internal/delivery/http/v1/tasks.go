package v1

import (
	"errors"
	"net/http"
	"path"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-manager/internal/models"
	"github.com/adanyl0v/go-task-manager/internal/services"
)

type getTaskResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	IsCompleted bool   `json:"isCompleted"`
}

func newGetTaskResponse(task *models.Task) getTaskResponse {
	return getTaskResponse{
		ID:          task.ID,
		Description: task.Description,
		IsCompleted: task.IsCompleted,
	}
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	logger := h.requestLogger(c)

	tasks := h.tasks.GetTasks(c)
	response := make([]getTaskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = newGetTaskResponse(task)
	}

	logger.Info().
		Int("count", len(response)).
		Msg("fetched tasks")
	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleGetTask(c *gin.Context) {
	logger := h.requestLogger(c)

	taskID, ok := h.bindTaskID(c)
	if !ok {
		return
	}

	task, err := h.tasks.GetTaskByID(c, taskID)
	if err != nil {
		h.abortWithServiceError(c, taskID, err)
		return
	}

	logger.Info().
		Int64("task_id", task.ID).
		Msg("fetched task")
	c.JSON(http.StatusOK, newGetTaskResponse(task))
}

type createTaskRequest struct {
	Description string `json:"description"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	logger := h.requestLogger(c)

	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	task, err := h.tasks.CreateTask(c, req.Description)
	if err != nil {
		h.abortWithServiceError(c, 0, err)
		return
	}

	c.Header("Location", path.Join(c.FullPath(), strconv.FormatInt(task.ID, 10)))
	logger.Info().
		Int64("task_id", task.ID).
		Msg("created task")
	c.JSON(http.StatusCreated, newGetTaskResponse(task))
}

// Absent fields stay nil so that they are left unchanged.
type updateTaskRequest struct {
	Description *string `json:"description,omitempty"`
	IsCompleted *bool   `json:"isCompleted,omitempty"`
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	logger := h.requestLogger(c)

	taskID, ok := h.bindTaskID(c)
	if !ok {
		return
	}

	var req updateTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	if req.Description == nil && req.IsCompleted == nil {
		logger.Warn().
			Int64("task_id", taskID).
			Msg("no fields to update")
	}

	task, err := h.tasks.UpdateTask(c, services.UpdateTaskParams{
		ID:          taskID,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		h.abortWithServiceError(c, taskID, err)
		return
	}

	logger.Info().
		Int64("task_id", task.ID).
		Msg("updated task")
	c.JSON(http.StatusOK, newGetTaskResponse(task))
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	logger := h.requestLogger(c)

	taskID, ok := h.bindTaskID(c)
	if !ok {
		return
	}

	err := h.tasks.DeleteTask(c, taskID)
	if err != nil {
		h.abortWithServiceError(c, taskID, err)
		return
	}

	logger.Info().
		Int64("task_id", taskID).
		Msg("deleted task")
	c.Status(http.StatusNoContent)
}

func (h *handlerImpl) bindTaskID(c *gin.Context) (int64, bool) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.requestLogger(c).Warn().
			Str("id", c.Param("id")).
			Msg("invalid task id")
		abort(c, newBadRequestError(errInvalidTaskID.Error()))
		return 0, false
	}
	return taskID, true
}

func (h *handlerImpl) abortWithServiceError(c *gin.Context, taskID int64, err error) {
	logger := h.requestLogger(c)
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		logger.Warn().
			Int64("task_id", taskID).
			Msg("task not found")
		abort(c, newTaskNotFoundError(taskID))
	case errors.Is(err, services.ErrInvalidTaskDescription):
		logger.Warn().
			Err(err).
			Msg("invalid task description")
		abort(c, newBadRequestError("Description is required"))
	default:
		logger.Error().
			Err(err).
			Msg("unexpected task service error")
		abort(c, newStatusTextError(http.StatusInternalServerError))
	}
}
