package taskmodels

import "encoding/json"

type Task struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	UserID    int    `json:"id_user"`
	TagID     *int   `json:"id_tag"`
	Completed bool   `json:"completed"`
}

// TaskView - задача с подставленными именами пользователя и тега.
type TaskView struct {
	Task
	UserName string `json:"user_name"`
	TagName  string `json:"tag_name"`
}

type TaskRequest struct {
	Title  string `json:"title" validate:"required"`
	UserID int    `json:"id_user" validate:"required"`
	TagID  *int   `json:"id_tag"`
}

// Optional запоминает, было ли поле в JSON вообще, в том числе со значением null.
type Optional[T any] struct {
	Value T
	Set   bool
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	return json.Unmarshal(data, &o.Value)
}

// TaskPatch - тело PUT /tasks/:id.
type TaskPatch struct {
	Title     Optional[string] `json:"title"`
	UserID    Optional[int]    `json:"id_user"`
	TagID     Optional[*int]   `json:"id_tag"`
	Completed Optional[bool]   `json:"completed"`
}

// ApplyTo перезаписывает каждое присутствующее в запросе поле, даже false, 0 или null.
func (p TaskPatch) ApplyTo(task *Task) {
	if p.Title.Set {
		task.Title = p.Title.Value
	}
	if p.UserID.Set {
		task.UserID = p.UserID.Value
	}
	if p.TagID.Set {
		task.TagID = p.TagID.Value
	}
	if p.Completed.Set {
		task.Completed = p.Completed.Value
	}
}
