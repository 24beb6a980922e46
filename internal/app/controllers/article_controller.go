package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models/dto"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/services"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/middleware"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/apperrors"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/helpers"
)

// ArticleController handles article endpoints
type ArticleController struct {
	articleService *services.ArticleService
}

// NewArticleController creates a new ArticleController
func NewArticleController(articleService *services.ArticleService) *ArticleController {
	return &ArticleController{
		articleService: articleService,
	}
}

// List returns a cursor-paginated article page
// @Summary List articles
// @Description Retrieves articles with search and cursor pagination
// @Tags articles
// @Produce json
// @Param search query string false "Filter by title"
// @Param limit query int false "Page size, default 10, max 100"
// @Param skip query int false "Offset applied after the cursor"
// @Param cursor query int false "Id to resume from"
// @Success 200 {object} dto.APIResponse{data=dto.ArticleListResponse} "Articles retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /articles [get]
func (c *ArticleController) List(ctx *gin.Context) {
	params := helpers.ParseListParams(ctx)

	page, err := c.articleService.List(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      page,
		Timestamp: time.Now(),
	})
}

// GetByID retrieves an article by id
// @Summary Get article by ID
// @Description Retrieves a single article with its author and tags
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} dto.APIResponse{data=models.Article} "Article retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid article ID"
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /articles/{id} [get]
func (c *ArticleController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	article, err := c.articleService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      article,
		Timestamp: time.Now(),
	})
}

// GetBySlug retrieves an article by slug
// @Summary Get article by slug
// @Description Retrieves an article by its slug; the oldest row wins when several share one
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} dto.APIResponse{data=models.Article} "Article retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /articles/slug/{slug} [get]
func (c *ArticleController) GetBySlug(ctx *gin.Context) {
	article, err := c.articleService.GetBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      article,
		Timestamp: time.Now(),
	})
}

// Create handles article creation
// @Summary Create a new article
// @Description Creates an article for the authenticated user; the slug is derived from the title
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateArticleRequest true "Article information"
// @Success 201 {object} dto.APIResponse{data=models.Article} "Article created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Referenced tag not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /articles [post]
func (c *ArticleController) Create(ctx *gin.Context) {
	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	var req dto.CreateArticleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	article, err := c.articleService.Create(ctx, session, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      article,
		Timestamp: time.Now(),
	})
}

// Update handles a partial article update
// @Summary Update an article
// @Description Updates the given fields; a non-null tag id list fully replaces the tag set
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Param request body dto.UpdateArticleRequest true "Updated article fields"
// @Success 200 {object} dto.APIResponse{data=models.Article} "Article updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Article or referenced tag not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /articles/{id} [put]
func (c *ArticleController) Update(ctx *gin.Context) {
	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateArticleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	article, err := c.articleService.Update(ctx, session, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      article,
		Timestamp: time.Now(),
	})
}

// Delete removes an article
// @Summary Delete an article
// @Description Deletes an article; only the owner or an administrator may do this
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 204 "Article deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid article ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /articles/{id} [delete]
func (c *ArticleController) Delete(ctx *gin.Context) {
	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.articleService.Remove(ctx, session, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}

// parseIDParam parses a numeric path parameter, responding with 400 on failure
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid id")
		errorDetail = errorDetail.WithDetails(name + " must be a valid number")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
