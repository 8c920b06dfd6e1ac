package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gorilla/mux"

	"github.com/Amanchaubey026/Taskopia-FluidAI/pkg/claims"
	"github.com/Amanchaubey026/Taskopia-FluidAI/pkg/task"
)

type TaskHandler struct {
	Service task.ServiceInterface
	Logger  *slog.Logger
}

func NewTaskHandler(service task.ServiceInterface, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		Service: service,
		Logger:  logger,
	}
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var newTask task.Task
	if err := json.NewDecoder(r.Body).Decode(&newTask); err != nil {
		h.Logger.Error("invalid json", "error", err)
		writeError(w, http.StatusBadRequest, typeError, "invalid JSON payload")
		return
	}

	var c claims.Claims
	if ok := getClaimsFromContext(w, r, &c); !ok {
		return
	}

	if err := h.Service.Create(&newTask, c.User.ID); err != nil {
		h.taskError(w, err, "CreateTask")
		return
	}

	if ok := writeJSON(w, h.Logger, newTask, http.StatusCreated); ok {
		h.Logger.Info("new task created", "user", c.User.ID, "task", newTask.ID)
	}
}

func (h *TaskHandler) GetAllTasks(w http.ResponseWriter, r *http.Request) {
	var c claims.Claims
	if ok := getClaimsFromContext(w, r, &c); !ok {
		return
	}

	tasks, err := h.Service.GetAll(c.User.ID)
	if err != nil {
		h.taskError(w, err, "GetAllTasks")
		return
	}
	if tasks == nil {
		tasks = []*task.Task{}
	}

	writeJSON(w, h.Logger, tasks, http.StatusOK)
}

func (h *TaskHandler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	var c claims.Claims
	if ok := getClaimsFromContext(w, r, &c); !ok {
		return
	}

	taskID := mux.Vars(r)[muxVarTaskID]

	t, err := h.Service.GetByID(taskID, c.User.ID)
	if err != nil {
		h.taskError(w, err, "GetTaskByID")
		return
	}

	writeJSON(w, h.Logger, t, http.StatusOK)
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var form task.UpdateForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.Logger.Error("invalid json", "error", err)
		writeError(w, http.StatusBadRequest, typeError, "invalid JSON payload")
		return
	}

	var c claims.Claims
	if ok := getClaimsFromContext(w, r, &c); !ok {
		return
	}

	taskID := mux.Vars(r)[muxVarTaskID]

	t, err := h.Service.Update(taskID, c.User.ID, &form)
	if err != nil {
		h.taskError(w, err, "UpdateTask")
		return
	}

	if ok := writeJSON(w, h.Logger, t, http.StatusOK); ok {
		h.Logger.Info("task updated", "user", c.User.ID, "task", taskID)
	}
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	var c claims.Claims
	if ok := getClaimsFromContext(w, r, &c); !ok {
		return
	}

	taskID := mux.Vars(r)[muxVarTaskID]

	if err := h.Service.Delete(taskID, c.User.ID); err != nil {
		h.taskError(w, err, "DeleteTask")
		return
	}

	if ok := WriteResp(w, h.Logger, map[string]any{typeMsg: "Task deleted successfully"}, http.StatusOK); ok {
		h.Logger.Info("task deleted", "user", c.User.ID, "task", taskID)
	}
}

func (h *TaskHandler) taskError(w http.ResponseWriter, err error, action string) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		writeError(w, http.StatusBadRequest, typeMsg, err.Error())
	case errors.Is(err, task.ErrInvalidID):
		writeError(w, http.StatusBadRequest, typeMsg, "invalid task id")
	case errors.Is(err, task.ErrNotFound):
		writeError(w, http.StatusNotFound, typeMsg, "Task not found")
	default:
		h.Logger.Error(action, "error", err.Error())
		writeError(w, http.StatusInternalServerError, typeMsg, "Server error")
	}
}
