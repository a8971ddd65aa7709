package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cohorttools/cohort-tools-api/internal/app/models"
	"github.com/cohorttools/cohort-tools-api/internal/app/services"
	"github.com/cohorttools/cohort-tools-api/internal/middleware"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/apperrors"
)

// StudentController handles student endpoints
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// GetAllStudents lists students with their cohorts
// @Summary Get all students
// @Description Retrieve a list of all students with linked cohorts
// @Tags students
// @Produce json
// @Success 200 {array} dto.StudentResponse "A list of students with linked cohorts"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// GetStudentByID retrieves a student with the linked cohort
// @Summary Get a student by ID
// @Description Retrieve a specific student by ID along with the linked cohort
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.StudentResponse "A single student with the linked cohort"
// @Failure 400 {object} dto.ErrorResponse "Invalid Id"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	student, err := c.studentService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Description Add a new student; cohort holds the id of the linked cohort
// @Tags students
// @Accept json
// @Produce json
// @Param request body models.Student true "Student to create"
// @Success 201 {object} models.Student "A new student is created"
// @Failure 400 {object} dto.ErrorResponse "Validation failed or malformed body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var student models.Student
	if err := ctx.ShouldBindJSON(&student); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError(err.Error()))
		return
	}

	created, err := c.studentService.Create(ctx.Request.Context(), &student)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// UpdateStudent applies a partial update
// @Summary Update a student by ID
// @Description Update the supplied fields of a student; a null or empty cohort clears the reference
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body models.StudentPatch true "Fields to update"
// @Success 200 {object} models.Student "The updated student"
// @Failure 400 {object} dto.ErrorResponse "Invalid Id, validation failed or malformed body"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var patch models.StudentPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError(err.Error()))
		return
	}

	updated, err := c.studentService.Update(ctx.Request.Context(), ctx.Param("id"), &patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// DeleteStudent removes a student
// @Summary Delete a student by ID
// @Description Remove a specific student by ID; deleting an absent student succeeds
// @Tags students
// @Param id path string true "Student ID"
// @Success 204 "Student successfully deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid Id"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
