package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/taskmaster/api/internal/api/shared"
	"github.com/taskmaster/api/internal/domain"
	"github.com/taskmaster/api/internal/service"
	"github.com/taskmaster/api/internal/store"
)

const (
	defaultPage    = 1
	defaultPerPage = 100
)

// TaskHandler handles task-related API requests.
type TaskHandler struct {
	taskService *service.TaskService
	comments    store.CommentStore
	users       store.UserStore
	validator   *validator.Validate
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(
	taskService *service.TaskService,
	comments store.CommentStore,
	users store.UserStore,
) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		comments:    comments,
		users:       users,
		validator:   validator.New(),
	}
}

// Create handles POST /routes/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithValidationErrors(w, r, validationFields(err))
		return
	}

	input := service.CreateTaskInput{
		Title:           req.Title,
		Description:     req.Description,
		Priority:        domain.Priority(req.Priority),
		Status:          req.Status,
		AssignedToEmail: req.AssignedToEmail,
	}
	if req.CompletionPercentage != nil {
		input.CompletionPercentage = *req.CompletionPercentage
	}
	if req.DueDate != "" {
		dueDate, err := parseDueDate(req.DueDate)
		if err != nil {
			HandleAPIError(w, r, err)
			return
		}
		input.DueDate = dueDate
	}

	task, err := h.taskService.Create(r.Context(), input, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Assigned user not found")
			return
		}
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreateTaskResponse{
		Message: "Task created",
		TaskID:  task.ID,
	})
}

// List handles GET /routes/tasks. Pagination comes from the page and
// per_page query parameters; out-of-range pages return an empty list,
// not an error.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", defaultPage)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "page must be an integer")
		return
	}
	perPage, err := queryInt(r, "per_page", defaultPerPage)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "per_page must be an integer")
		return
	}
	if page < 1 || perPage < 1 {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity,
			"page and per_page must be greater than 0")
		return
	}

	result, err := h.taskService.List(r.Context(), page, perPage)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	tasks := make([]TaskResponse, 0, len(result.Tasks))
	for _, task := range result.Tasks {
		tasks = append(tasks, taskToResponse(task))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TaskListResponse{
		Tasks:       tasks,
		Total:       result.Total,
		Pages:       result.Pages,
		CurrentPage: result.CurrentPage,
	})
}

// Get handles GET /routes/tasks/{task_id}. The response carries the task
// together with its comment thread and the assignee's email.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	taskID, err := getPathUUID(r, "task_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	task, err := h.taskService.Get(r.Context(), taskID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	comments, err := h.comments.ListByTask(r.Context(), taskID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	resp := TaskDetailResponse{
		Task:     taskToResponse(task),
		Comments: make([]CommentResponse, 0, len(comments)),
	}
	for _, comment := range comments {
		resp.Comments = append(resp.Comments, commentToResponse(comment))
	}

	if task.AssignedTo != nil {
		assignee, err := h.users.GetByID(r.Context(), *task.AssignedTo)
		if err == nil {
			resp.Task.AssignedToEmail = &assignee.Email
		} else if !store.IsNotFoundError(err) {
			HandleAPIError(w, r, err)
			return
		}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Update handles PUT /routes/tasks/{task_id}. Only fields present in the
// body change; everything else keeps its stored value.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	taskID, err := getPathUUID(r, "task_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithValidationErrors(w, r, validationFields(err))
		return
	}

	patch := domain.TaskPatch{
		Title:                req.Title,
		Description:          req.Description,
		CompletionPercentage: req.CompletionPercentage,
		Status:               req.Status,
	}
	if req.Priority != nil {
		priority := domain.Priority(*req.Priority)
		patch.Priority = &priority
	}
	if req.DueDate != nil && *req.DueDate != "" {
		dueDate, err := parseDueDate(*req.DueDate)
		if err != nil {
			HandleAPIError(w, r, err)
			return
		}
		patch.DueDate = dueDate
	}

	task, err := h.taskService.Update(r.Context(), taskID, patch)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// Delete handles DELETE /routes/tasks/{task_id}. Comments on the task go
// with it.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	taskID, err := getPathUUID(r, "task_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.taskService.Delete(r.Context(), taskID); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// queryInt reads an integer query parameter, falling back to def when
// the parameter is absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
