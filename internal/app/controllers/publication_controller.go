package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models/dto"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/services"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/middleware"
)

// PublicationController handles library publication endpoints
type PublicationController struct {
	publicationService *services.PublicationService
}

// NewPublicationController creates a new PublicationController
func NewPublicationController(publicationService *services.PublicationService) *PublicationController {
	return &PublicationController{
		publicationService: publicationService,
	}
}

// List retrieves library publications
// @Summary List library publications
// @Description Retrieves publications, newest first, optionally filtered by search term
// @Tags library-publications
// @Produce json
// @Param search query string false "Filter by title or publicator"
// @Success 200 {object} dto.APIResponse{data=[]models.LibraryPublication} "Publications retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /library-publications [get]
func (c *PublicationController) List(ctx *gin.Context) {
	publications, err := c.publicationService.List(ctx, ctx.Query("search"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      publications,
		Timestamp: time.Now(),
	})
}

// GetByID retrieves a publication by id
// @Summary Get publication by ID
// @Description Retrieves a single library publication
// @Tags library-publications
// @Produce json
// @Param id path int true "Publication ID"
// @Success 200 {object} dto.APIResponse{data=models.LibraryPublication} "Publication retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid publication ID"
// @Failure 404 {object} dto.ErrorResponse "Publication not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /library-publications/{id} [get]
func (c *PublicationController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	publication, err := c.publicationService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      publication,
		Timestamp: time.Now(),
	})
}

// GetBySlug retrieves a publication by slug
// @Summary Get publication by slug
// @Description Retrieves a publication by its slug; the oldest row wins when several share one
// @Tags library-publications
// @Produce json
// @Param slug path string true "Publication slug"
// @Success 200 {object} dto.APIResponse{data=models.LibraryPublication} "Publication retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Publication not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /library-publications/slug/{slug} [get]
func (c *PublicationController) GetBySlug(ctx *gin.Context) {
	publication, err := c.publicationService.GetBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      publication,
		Timestamp: time.Now(),
	})
}

// Create handles publication creation
// @Summary Create a new publication
// @Description Creates a library publication; the slug is derived from the title
// @Tags library-publications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePublicationRequest true "Publication information"
// @Success 201 {object} dto.APIResponse{data=models.LibraryPublication} "Publication created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /library-publications [post]
func (c *PublicationController) Create(ctx *gin.Context) {
	var req dto.CreatePublicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	publication, err := c.publicationService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      publication,
		Timestamp: time.Now(),
	})
}

// Update handles a partial publication update
// @Summary Update a publication
// @Description Updates the given publication fields; a changed title regenerates the slug
// @Tags library-publications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Publication ID"
// @Param request body dto.UpdatePublicationRequest true "Updated publication fields"
// @Success 200 {object} dto.APIResponse{data=models.LibraryPublication} "Publication updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Publication not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /library-publications/{id} [put]
func (c *PublicationController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdatePublicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	publication, err := c.publicationService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      publication,
		Timestamp: time.Now(),
	})
}

// Delete removes a publication
// @Summary Delete a publication
// @Description Deletes a library publication
// @Tags library-publications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Publication ID"
// @Success 204 "Publication deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid publication ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /library-publications/{id} [delete]
func (c *PublicationController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.publicationService.Remove(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}

// BatchRemove removes several publications at once
// @Summary Batch-delete publications
// @Description Deletes the given library publications
// @Tags library-publications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BatchRemoveRequest true "Publication ids"
// @Success 204 "Publications deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /library-publications/batch-remove [post]
func (c *PublicationController) BatchRemove(ctx *gin.Context) {
	var req dto.BatchRemoveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	if err := c.publicationService.BatchRemove(ctx, req.IDs); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}
