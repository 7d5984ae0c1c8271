package userservice

import (
	"context"
	"toDoBoard/internal/domain/ids"
	"toDoBoard/internal/domain/task/taskmodels"
	"toDoBoard/internal/domain/user/usererrors"
	"toDoBoard/internal/domain/user/usermodels"

	"github.com/go-playground/validator/v10"
)

type UserStorage interface {
	LoadUsers(ctx context.Context) ([]usermodels.User, error)
	SaveUsers(ctx context.Context, users []usermodels.User) error
	LoadTasks(ctx context.Context) ([]taskmodels.Task, error)
}

type UserService struct {
	db       UserStorage
	valid    *validator.Validate
	idPolicy ids.Policy
}

func NewUserService(db UserStorage, idPolicy ids.Policy) *UserService {
	return &UserService{db: db, valid: validator.New(), idPolicy: idPolicy}
}

func (us *UserService) GetAllUsers(ctx context.Context) ([]usermodels.User, error) {
	return us.db.LoadUsers(ctx)
}

func (us *UserService) GetUserByID(ctx context.Context, userID int) (usermodels.User, error) {
	users, err := us.db.LoadUsers(ctx)
	if err != nil {
		return usermodels.User{}, err
	}

	for _, user := range users {
		if user.ID == userID {
			return user, nil
		}
	}
	return usermodels.User{}, usererrors.ErrUserNotFound
}

func (us *UserService) SaveUser(ctx context.Context, newUser usermodels.UserRequest) (usermodels.User, error) {
	if err := us.valid.Struct(newUser); err != nil {
		return usermodels.User{}, usererrors.ErrNameRequired
	}

	users, err := us.db.LoadUsers(ctx)
	if err != nil {
		return usermodels.User{}, err
	}

	existing := make([]int, 0, len(users))
	for _, user := range users {
		existing = append(existing, user.ID)
	}

	user := usermodels.User{
		ID:   us.idPolicy.Next(existing),
		Name: newUser.Name,
	}

	if err = us.db.SaveUsers(ctx, append(users, user)); err != nil {
		return usermodels.User{}, err
	}
	return user, nil
}

func (us *UserService) UpdateUser(ctx context.Context, userID int, req usermodels.UserUpdateRequest) (usermodels.User, error) {
	users, err := us.db.LoadUsers(ctx)
	if err != nil {
		return usermodels.User{}, err
	}

	for i := range users {
		if users[i].ID != userID {
			continue
		}

		usermodels.MergeUser(&users[i], req)
		if err = us.db.SaveUsers(ctx, users); err != nil {
			return usermodels.User{}, err
		}
		return users[i], nil
	}

	return usermodels.User{}, usererrors.ErrUserNotFound
}

// DeleteUser не трогает коллекцию, пока на пользователя ссылается хоть одна задача.
func (us *UserService) DeleteUser(ctx context.Context, userID int) error {
	users, err := us.db.LoadUsers(ctx)
	if err != nil {
		return err
	}

	tasks, err := us.db.LoadTasks(ctx)
	if err != nil {
		return err
	}

	for _, task := range tasks {
		if task.UserID == userID {
			return usererrors.ErrUserHasTasks
		}
	}

	left := make([]usermodels.User, 0, len(users))
	for _, user := range users {
		if user.ID != userID {
			left = append(left, user)
		}
	}

	return us.db.SaveUsers(ctx, left)
}
