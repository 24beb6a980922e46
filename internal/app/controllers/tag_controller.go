package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models/dto"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/services"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/middleware"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/apperrors"
)

// TagController handles tag endpoints
type TagController struct {
	tagService *services.TagService
}

// NewTagController creates a new TagController
func NewTagController(tagService *services.TagService) *TagController {
	return &TagController{
		tagService: tagService,
	}
}

// GetAll retrieves all tags
// @Summary List tags
// @Description Retrieves all tags
// @Tags tags
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Tag} "Tags retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tags [get]
func (c *TagController) GetAll(ctx *gin.Context) {
	tags, err := c.tagService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      tags,
		Timestamp: time.Now(),
	})
}

// Create handles tag creation
// @Summary Create a new tag
// @Description Creates a tag, administrators only
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTagRequest true "Tag information"
// @Success 201 {object} dto.APIResponse{data=models.Tag} "Tag created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Administrators only"
// @Failure 409 {object} dto.ErrorResponse "Tag already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tags [post]
func (c *TagController) Create(ctx *gin.Context) {
	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	var req dto.CreateTagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	tag, err := c.tagService.Create(ctx, session, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      tag,
		Timestamp: time.Now(),
	})
}

// Update renames a tag
// @Summary Update a tag
// @Description Renames a tag, administrators only
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tag ID"
// @Param request body dto.UpdateTagRequest true "Updated tag information"
// @Success 200 {object} dto.APIResponse{data=models.Tag} "Tag updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Administrators only"
// @Failure 404 {object} dto.ErrorResponse "Tag not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tags/{id} [put]
func (c *TagController) Update(ctx *gin.Context) {
	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	tag, err := c.tagService.Update(ctx, session, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      tag,
		Timestamp: time.Now(),
	})
}

// Delete removes a tag
// @Summary Delete a tag
// @Description Deletes a tag after pruning it from every referencing article, administrators only
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tag ID"
// @Success 204 "Tag deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid tag ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Administrators only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tags/{id} [delete]
func (c *TagController) Delete(ctx *gin.Context) {
	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.tagService.Remove(ctx, session, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}

// BatchRemove removes several tags at once
// @Summary Batch-delete tags
// @Description Deletes the given tags after pruning them from every referencing article, administrators only
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BatchRemoveRequest true "Tag ids"
// @Success 204 "Tags deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Administrators only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tags/batch-remove [post]
func (c *TagController) BatchRemove(ctx *gin.Context) {
	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	var req dto.BatchRemoveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	if err := c.tagService.BatchRemove(ctx, session, req.IDs); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}
