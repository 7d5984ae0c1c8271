package taskservice

import (
	"context"
	"toDoBoard/internal/domain/tag/tagmodels"
	"toDoBoard/internal/domain/task/taskmodels"
	"toDoBoard/internal/domain/user/usermodels"
)

const (
	UnknownUserName = "unknown"
	// NoTagName подставляется в GET /tasks.
	NoTagName = "no tag"
	// WithoutTagName подставляется в GET /users/:id/tasks.
	WithoutTagName = "without tag"
)

// ResolveTaskView подставляет имена пользователя и тега по внешним ключам задачи.
// Если ссылка не находится или имя пустое, используются заглушки.
func ResolveTaskView(
	task taskmodels.Task,
	users []usermodels.User,
	tags []tagmodels.Tag,
	tagPlaceholder string,
) taskmodels.TaskView {
	view := taskmodels.TaskView{
		Task:     task,
		UserName: UnknownUserName,
		TagName:  tagPlaceholder,
	}

	for _, user := range users {
		if user.ID == task.UserID {
			if user.Name != "" {
				view.UserName = user.Name
			}
			break
		}
	}

	if task.TagID == nil {
		return view
	}

	for _, tag := range tags {
		if tag.ID == *task.TagID {
			if tag.Name != "" {
				view.TagName = tag.Name
			}
			break
		}
	}

	return view
}

// GetTaskViews - все задачи с именами, для GET /tasks.
func (ts *TaskService) GetTaskViews(ctx context.Context) ([]taskmodels.TaskView, error) {
	return ts.views(ctx, func(taskmodels.Task) bool { return true }, NoTagName)
}

// GetUserTaskViews - задачи одного пользователя, для GET /users/:id/tasks.
func (ts *TaskService) GetUserTaskViews(ctx context.Context, userID int) ([]taskmodels.TaskView, error) {
	return ts.views(ctx, func(task taskmodels.Task) bool { return task.UserID == userID }, WithoutTagName)
}

func (ts *TaskService) views(
	ctx context.Context,
	keep func(taskmodels.Task) bool,
	tagPlaceholder string,
) ([]taskmodels.TaskView, error) {
	tasks, err := ts.db.LoadTasks(ctx)
	if err != nil {
		return nil, err
	}

	users, err := ts.db.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}

	tags, err := ts.db.LoadTags(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]taskmodels.TaskView, 0, len(tasks))
	for _, task := range tasks {
		if keep(task) {
			views = append(views, ResolveTaskView(task, users, tags, tagPlaceholder))
		}
	}
	return views, nil
}
