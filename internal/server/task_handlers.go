package server

import (
	"net/http"
	"toDoBoard/internal/domain/task/taskerrors"
	"toDoBoard/internal/domain/task/taskmodels"
	"toDoBoard/internal/service/taskservice"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// обрабатываем для вывода, возвращаем респонсы с ошибками и проч.

func (api *ToDoBoardAPI) getTasks(ctx *gin.Context) {
	service := taskservice.NewTaskService(api.db, api.idPolicy)
	views, err := service.GetTaskViews(ctx.Request.Context())
	if err != nil {
		api.internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, views)
}

func (api *ToDoBoardAPI) getTaskByID(ctx *gin.Context) {
	taskID, ok := paramID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": taskerrors.ErrTaskNotFound.Error()})
		return
	}

	service := taskservice.NewTaskService(api.db, api.idPolicy)
	task, err := service.GetTaskByID(ctx.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, taskerrors.ErrTaskNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		api.internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, task)
}

func (api *ToDoBoardAPI) createTask(ctx *gin.Context) {
	var req taskmodels.TaskRequest
	if err := bindBody(ctx, &req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	service := taskservice.NewTaskService(api.db, api.idPolicy)
	task, err := service.CreateTask(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, taskerrors.ErrTitleAndUserRequired) || errors.Is(err, taskerrors.ErrUserNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		api.internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, task)
}

func (api *ToDoBoardAPI) updateTask(ctx *gin.Context) {
	taskID, ok := paramID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": taskerrors.ErrTaskNotFound.Error()})
		return
	}

	var patch taskmodels.TaskPatch
	if err := bindBody(ctx, &patch); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	service := taskservice.NewTaskService(api.db, api.idPolicy)
	task, err := service.UpdateTask(ctx.Request.Context(), taskID, patch)
	if err != nil {
		if errors.Is(err, taskerrors.ErrTaskNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		api.internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, task)
}

func (api *ToDoBoardAPI) deleteTask(ctx *gin.Context) {
	taskID, ok := paramID(ctx)
	if !ok {
		ctx.JSON(http.StatusOK, gin.H{"message": "task deleted"})
		return
	}

	service := taskservice.NewTaskService(api.db, api.idPolicy)
	if err := service.DeleteTaskByID(ctx.Request.Context(), taskID); err != nil {
		api.internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}
