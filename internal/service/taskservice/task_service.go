package taskservice

import (
	"context"
	"toDoBoard/internal/domain/ids"
	"toDoBoard/internal/domain/tag/tagmodels"
	"toDoBoard/internal/domain/task/taskerrors"
	"toDoBoard/internal/domain/task/taskmodels"
	"toDoBoard/internal/domain/user/usermodels"

	"github.com/go-playground/validator/v10"
)

type TaskStorage interface {
	LoadTasks(ctx context.Context) ([]taskmodels.Task, error)
	SaveTasks(ctx context.Context, tasks []taskmodels.Task) error
	LoadUsers(ctx context.Context) ([]usermodels.User, error)
	LoadTags(ctx context.Context) ([]tagmodels.Tag, error)
}

type TaskService struct {
	db       TaskStorage
	valid    *validator.Validate
	idPolicy ids.Policy
}

func NewTaskService(db TaskStorage, idPolicy ids.Policy) *TaskService {
	return &TaskService{db: db, valid: validator.New(), idPolicy: idPolicy}
}

func (ts *TaskService) GetAllTasks(ctx context.Context) ([]taskmodels.Task, error) {
	return ts.db.LoadTasks(ctx)
}

func (ts *TaskService) GetTaskByID(ctx context.Context, taskID int) (taskmodels.Task, error) {
	tasks, err := ts.db.LoadTasks(ctx)
	if err != nil {
		return taskmodels.Task{}, err
	}

	for _, task := range tasks {
		if task.ID == taskID {
			return task, nil
		}
	}
	return taskmodels.Task{}, taskerrors.ErrTaskNotFound
}

// CreateTask проверяет, что автор существует. Тег не проверяется, 0 сохраняется как null.
func (ts *TaskService) CreateTask(ctx context.Context, req taskmodels.TaskRequest) (taskmodels.Task, error) {
	if err := ts.valid.Struct(req); err != nil {
		return taskmodels.Task{}, taskerrors.ErrTitleAndUserRequired
	}

	users, err := ts.db.LoadUsers(ctx)
	if err != nil {
		return taskmodels.Task{}, err
	}

	if !userExists(users, req.UserID) {
		return taskmodels.Task{}, taskerrors.ErrUserNotFound
	}

	tasks, err := ts.db.LoadTasks(ctx)
	if err != nil {
		return taskmodels.Task{}, err
	}

	existing := make([]int, 0, len(tasks))
	for _, task := range tasks {
		existing = append(existing, task.ID)
	}

	task := taskmodels.Task{
		ID:        ts.idPolicy.Next(existing),
		Title:     req.Title,
		UserID:    req.UserID,
		Completed: false,
	}
	if req.TagID != nil && *req.TagID != 0 {
		tagID := *req.TagID
		task.TagID = &tagID
	}

	if err = ts.db.SaveTasks(ctx, append(tasks, task)); err != nil {
		return taskmodels.Task{}, err
	}
	return task, nil
}

// UpdateTask не проверяет id_user и id_tag, висячие ссылки допустимы.
func (ts *TaskService) UpdateTask(ctx context.Context, taskID int, patch taskmodels.TaskPatch) (taskmodels.Task, error) {
	tasks, err := ts.db.LoadTasks(ctx)
	if err != nil {
		return taskmodels.Task{}, err
	}

	for i := range tasks {
		if tasks[i].ID != taskID {
			continue
		}

		patch.ApplyTo(&tasks[i])
		if err = ts.db.SaveTasks(ctx, tasks); err != nil {
			return taskmodels.Task{}, err
		}
		return tasks[i], nil
	}

	return taskmodels.Task{}, taskerrors.ErrTaskNotFound
}

func (ts *TaskService) DeleteTaskByID(ctx context.Context, taskID int) error {
	tasks, err := ts.db.LoadTasks(ctx)
	if err != nil {
		return err
	}

	left := make([]taskmodels.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.ID != taskID {
			left = append(left, task)
		}
	}

	return ts.db.SaveTasks(ctx, left)
}

func userExists(users []usermodels.User, userID int) bool {
	for _, user := range users {
		if user.ID == userID {
			return true
		}
	}
	return false
}
