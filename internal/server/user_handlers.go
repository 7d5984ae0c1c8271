package server

import (
	"net/http"
	"toDoBoard/internal/domain/task/taskmodels"
	"toDoBoard/internal/domain/user/usererrors"
	"toDoBoard/internal/domain/user/usermodels"
	"toDoBoard/internal/service/taskservice"
	"toDoBoard/internal/service/userservice"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

func (api *ToDoBoardAPI) getAllUsers(ctx *gin.Context) {
	service := userservice.NewUserService(api.db, api.idPolicy)
	users, err := service.GetAllUsers(ctx.Request.Context())
	if err != nil {
		api.internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

func (api *ToDoBoardAPI) getUserByID(ctx *gin.Context) {
	userID, ok := paramID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": usererrors.ErrUserNotFound.Error()})
		return
	}

	service := userservice.NewUserService(api.db, api.idPolicy)
	user, err := service.GetUserByID(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usererrors.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		api.internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (api *ToDoBoardAPI) createUser(ctx *gin.Context) {
	var req usermodels.UserRequest
	if err := bindBody(ctx, &req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	service := userservice.NewUserService(api.db, api.idPolicy)
	user, err := service.SaveUser(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, usererrors.ErrNameRequired) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		api.internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

func (api *ToDoBoardAPI) updateUser(ctx *gin.Context) {
	userID, ok := paramID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": usererrors.ErrUserNotFound.Error()})
		return
	}

	var req usermodels.UserUpdateRequest
	if err := bindBody(ctx, &req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	service := userservice.NewUserService(api.db, api.idPolicy)
	user, err := service.UpdateUser(ctx.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, usererrors.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		api.internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (api *ToDoBoardAPI) deleteUser(ctx *gin.Context) {
	userID, ok := paramID(ctx)
	if !ok {
		ctx.JSON(http.StatusOK, gin.H{"message": "user deleted"})
		return
	}

	service := userservice.NewUserService(api.db, api.idPolicy)
	if err := service.DeleteUser(ctx.Request.Context(), userID); err != nil {
		if errors.Is(err, usererrors.ErrUserHasTasks) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		api.internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

func (api *ToDoBoardAPI) getUserTasks(ctx *gin.Context) {
	userID, ok := paramID(ctx)
	if !ok {
		ctx.JSON(http.StatusOK, []taskmodels.TaskView{})
		return
	}

	service := taskservice.NewTaskService(api.db, api.idPolicy)
	views, err := service.GetUserTaskViews(ctx.Request.Context(), userID)
	if err != nil {
		api.internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, views)
}
