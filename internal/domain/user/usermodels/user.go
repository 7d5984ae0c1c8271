package usermodels

type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type UserRequest struct {
	Name string `json:"name" validate:"required"`
}

// UserUpdateRequest - тело PUT /users/:id, все поля опциональны.
type UserUpdateRequest struct {
	Name string `json:"name"`
}

// MergeUser переносит в user только непустые поля запроса.
// Пустая строка считается отсутствующим значением и имя не меняет.
func MergeUser(user *User, req UserUpdateRequest) {
	if req.Name != "" {
		user.Name = req.Name
	}
}
