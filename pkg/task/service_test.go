package task_test

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Amanchaubey026/Taskopia-FluidAI/pkg/task"
)

type mockTaskRepo struct {
	mock.Mock
}

func (m *mockTaskRepo) Create(t *task.Task) error {
	return m.Called(t).Error(0)
}

func (m *mockTaskRepo) GetAllByUser(userID string) ([]*task.Task, error) {
	args := m.Called(userID)
	if tasks := args.Get(0); tasks != nil {
		return tasks.([]*task.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTaskRepo) GetByID(id, userID string) (*task.Task, error) {
	args := m.Called(id, userID)
	if t := args.Get(0); t != nil {
		return t.(*task.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTaskRepo) Update(id, userID string, form *task.UpdateForm) (*task.Task, error) {
	args := m.Called(id, userID, form)
	if t := args.Get(0); t != nil {
		return t.(*task.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTaskRepo) Delete(id, userID string) error {
	return m.Called(id, userID).Error(0)
}

func TestServiceCreate(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		repo := new(mockTaskRepo)
		svc := task.NewService(repo)

		repo.On("Create", mock.AnythingOfType("*task.Task")).Return(nil)

		newTask := &task.Task{Title: "Write report"}
		err := svc.Create(newTask, "user123")

		assert.NoError(t, err)
		assert.Equal(t, "user123", newTask.UserID)
		assert.Equal(t, task.PriorityLow, newTask.Priority)
		assert.Equal(t, task.StatusPending, newTask.Status)
		assert.False(t, newTask.CreatedAt.IsZero())
		repo.AssertExpectations(t)
	})

	t.Run("missing title", func(t *testing.T) {
		repo := new(mockTaskRepo)
		svc := task.NewService(repo)

		err := svc.Create(&task.Task{}, "user123")

		var ve validation.Errors
		assert.ErrorAs(t, err, &ve)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("bad priority", func(t *testing.T) {
		svc := task.NewService(new(mockTaskRepo))

		err := svc.Create(&task.Task{Title: "Write report", Priority: "Urgent"}, "user123")

		var ve validation.Errors
		assert.ErrorAs(t, err, &ve)
	})
}

func TestServiceUpdate(t *testing.T) {
	t.Run("valid form reaches repo", func(t *testing.T) {
		repo := new(mockTaskRepo)
		svc := task.NewService(repo)

		status := task.StatusCompleted
		form := &task.UpdateForm{Status: &status}
		repo.On("Update", "id123", "user123", form).Return(&task.Task{ID: "id123", Status: status}, nil)

		got, err := svc.Update("id123", "user123", form)

		assert.NoError(t, err)
		assert.Equal(t, task.StatusCompleted, got.Status)
	})

	t.Run("bad status never reaches repo", func(t *testing.T) {
		repo := new(mockTaskRepo)
		svc := task.NewService(repo)

		status := "Done"
		got, err := svc.Update("id123", "user123", &task.UpdateForm{Status: &status})

		assert.Nil(t, got)
		var ve validation.Errors
		assert.ErrorAs(t, err, &ve)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		svc := task.NewService(new(mockTaskRepo))

		title := ""
		got, err := svc.Update("id123", "user123", &task.UpdateForm{Title: &title})

		assert.Nil(t, got)
		assert.Error(t, err)
	})
}
