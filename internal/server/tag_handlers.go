package server

import (
	"net/http"
	"toDoBoard/internal/domain/tag/tagerrors"
	"toDoBoard/internal/domain/tag/tagmodels"
	"toDoBoard/internal/service/tagservice"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

func (api *ToDoBoardAPI) getAllTags(ctx *gin.Context) {
	service := tagservice.NewTagService(api.db, api.idPolicy)
	tags, err := service.GetAllTags(ctx.Request.Context())
	if err != nil {
		api.internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tags)
}

func (api *ToDoBoardAPI) getTagByID(ctx *gin.Context) {
	tagID, ok := paramID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": tagerrors.ErrTagNotFound.Error()})
		return
	}

	service := tagservice.NewTagService(api.db, api.idPolicy)
	tag, err := service.GetTagByID(ctx.Request.Context(), tagID)
	if err != nil {
		if errors.Is(err, tagerrors.ErrTagNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		api.internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tag)
}

func (api *ToDoBoardAPI) createTag(ctx *gin.Context) {
	var req tagmodels.TagRequest
	if err := bindBody(ctx, &req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	service := tagservice.NewTagService(api.db, api.idPolicy)
	tag, err := service.CreateTag(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, tagerrors.ErrNameRequired) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		api.internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, tag)
}

func (api *ToDoBoardAPI) updateTag(ctx *gin.Context) {
	tagID, ok := paramID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": tagerrors.ErrTagNotFound.Error()})
		return
	}

	var req tagmodels.TagUpdateRequest
	if err := bindBody(ctx, &req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	service := tagservice.NewTagService(api.db, api.idPolicy)
	tag, err := service.UpdateTag(ctx.Request.Context(), tagID, req)
	if err != nil {
		if errors.Is(err, tagerrors.ErrTagNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		api.internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tag)
}

func (api *ToDoBoardAPI) deleteTag(ctx *gin.Context) {
	tagID, ok := paramID(ctx)
	if !ok {
		ctx.JSON(http.StatusOK, gin.H{"message": "tag deleted"})
		return
	}

	service := tagservice.NewTagService(api.db, api.idPolicy)
	if err := service.DeleteTag(ctx.Request.Context(), tagID); err != nil {
		api.internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "tag deleted"})
}
