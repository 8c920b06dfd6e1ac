package task

import "time"

type ServiceInterface interface {
	Create(task *Task, userID string) error
	GetAll(userID string) ([]*Task, error)
	GetByID(id, userID string) (*Task, error)
	Update(id, userID string, form *UpdateForm) (*Task, error)
	Delete(id, userID string) error
}

type TaskService struct {
	Repo Repository
}

func NewService(repo Repository) *TaskService {
	return &TaskService{Repo: repo}
}

func (s *TaskService) Create(task *Task, userID string) error {
	task.UserID = userID
	if task.Priority == "" {
		task.Priority = PriorityLow
	}
	if task.Status == "" {
		task.Status = StatusPending
	}

	if err := task.Validate(); err != nil {
		return err
	}

	task.CreatedAt = time.Now().UTC()
	task.UpdatedAt = task.CreatedAt

	return s.Repo.Create(task)
}

func (s *TaskService) GetAll(userID string) ([]*Task, error) {
	return s.Repo.GetAllByUser(userID)
}

func (s *TaskService) GetByID(id, userID string) (*Task, error) {
	return s.Repo.GetByID(id, userID)
}

func (s *TaskService) Update(id, userID string, form *UpdateForm) (*Task, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	return s.Repo.Update(id, userID, form)
}

func (s *TaskService) Delete(id, userID string) error {
	return s.Repo.Delete(id, userID)
}
