package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models/dto"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/services"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/middleware"
)

// EmployeeController handles department employee endpoints
type EmployeeController struct {
	employeeService *services.EmployeeService
}

// NewEmployeeController creates a new EmployeeController
func NewEmployeeController(employeeService *services.EmployeeService) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
	}
}

// GetAll retrieves all employees
// @Summary List employees
// @Description Retrieves all employees ordered by academic status, highest rank first
// @Tags employees
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Employee} "Employees retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees [get]
func (c *EmployeeController) GetAll(ctx *gin.Context) {
	employees, err := c.employeeService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      employees,
		Timestamp: time.Now(),
	})
}

// GetByID retrieves an employee by id
// @Summary Get employee by ID
// @Description Retrieves a single employee
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} dto.APIResponse{data=models.Employee} "Employee retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid employee ID"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{id} [get]
func (c *EmployeeController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	employee, err := c.employeeService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      employee,
		Timestamp: time.Now(),
	})
}

// Create handles employee creation
// @Summary Create a new employee
// @Description Creates a department employee
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEmployeeRequest true "Employee information"
// @Success 201 {object} dto.APIResponse{data=models.Employee} "Employee created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees [post]
func (c *EmployeeController) Create(ctx *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	employee, err := c.employeeService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      employee,
		Timestamp: time.Now(),
	})
}

// Update handles a partial employee update
// @Summary Update an employee
// @Description Updates the given employee fields
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Employee ID"
// @Param request body dto.UpdateEmployeeRequest true "Updated employee fields"
// @Success 200 {object} dto.APIResponse{data=models.Employee} "Employee updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{id} [put]
func (c *EmployeeController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	employee, err := c.employeeService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      employee,
		Timestamp: time.Now(),
	})
}

// Delete removes an employee
// @Summary Delete an employee
// @Description Deletes an employee after pruning it from every referencing subject
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param id path int true "Employee ID"
// @Success 204 "Employee deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid employee ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{id} [delete]
func (c *EmployeeController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.employeeService.Remove(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}
