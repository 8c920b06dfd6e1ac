package task

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"

	StatusPending    = "Pending"
	StatusInProgress = "In-Progress"
	StatusCompleted  = "Completed"
)

var (
	ErrNotFound  = errors.New("task not found")
	ErrInvalidID = errors.New("invalid task id")
)

type Task struct {
	MongoID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID          string             `bson:"-" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	DueDate     *time.Time         `bson:"due_date,omitempty" json:"dueDate,omitempty"`
	Priority    string             `bson:"priority" json:"priority"`
	Status      string             `bson:"status" json:"status"`
	UserID      string             `bson:"user" json:"user"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

func (t Task) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Title, validation.Required),
		validation.Field(&t.Priority, validation.In(PriorityLow, PriorityMedium, PriorityHigh)),
		validation.Field(&t.Status, validation.In(StatusPending, StatusInProgress, StatusCompleted)),
	)
}

// UpdateForm carries only the fields present in the request body, so an
// update leaves the rest of the document alone.
type UpdateForm struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Priority    *string    `json:"priority"`
	Status      *string    `json:"status"`
}

func (f UpdateForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.NilOrNotEmpty),
		validation.Field(&f.Priority, validation.In(PriorityLow, PriorityMedium, PriorityHigh)),
		validation.Field(&f.Status, validation.In(StatusPending, StatusInProgress, StatusCompleted)),
	)
}

type Repository interface {
	Create(task *Task) error
	GetAllByUser(userID string) ([]*Task, error)
	GetByID(id, userID string) (*Task, error)
	Update(id, userID string, form *UpdateForm) (*Task, error)
	Delete(id, userID string) error
}
