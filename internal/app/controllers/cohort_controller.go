package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cohorttools/cohort-tools-api/internal/app/models"
	"github.com/cohorttools/cohort-tools-api/internal/app/services"
	"github.com/cohorttools/cohort-tools-api/internal/middleware"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/apperrors"
)

// CohortController handles cohort endpoints
type CohortController struct {
	cohortService services.CohortService
}

// NewCohortController creates a new CohortController
func NewCohortController(cohortService services.CohortService) *CohortController {
	return &CohortController{
		cohortService: cohortService,
	}
}

// GetAllCohorts lists every cohort
// @Summary Get all cohorts
// @Description Retrieve a list of all cohorts in insertion order
// @Tags cohorts
// @Produce json
// @Success 200 {array} models.Cohort "A list of cohorts"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cohorts [get]
func (c *CohortController) GetAllCohorts(ctx *gin.Context) {
	cohorts, err := c.cohortService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cohorts)
}

// GetCohortByID retrieves a cohort by ID
// @Summary Get a cohort by ID
// @Description Retrieve a specific cohort by its ID
// @Tags cohorts
// @Produce json
// @Param id path string true "Cohort ID"
// @Success 200 {object} models.Cohort "A single cohort"
// @Failure 400 {object} dto.ErrorResponse "Invalid Id"
// @Failure 404 {object} dto.ErrorResponse "Cohort not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cohorts/{id} [get]
func (c *CohortController) GetCohortByID(ctx *gin.Context) {
	cohort, err := c.cohortService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cohort)
}

// CreateCohort handles cohort creation
// @Summary Create a new cohort
// @Description Add a new cohort
// @Tags cohorts
// @Accept json
// @Produce json
// @Param request body models.Cohort true "Cohort to create"
// @Success 201 {object} models.Cohort "A new cohort is created"
// @Failure 400 {object} dto.ErrorResponse "Validation failed or malformed body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cohorts [post]
func (c *CohortController) CreateCohort(ctx *gin.Context) {
	var cohort models.Cohort
	if err := ctx.ShouldBindJSON(&cohort); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError(err.Error()))
		return
	}

	created, err := c.cohortService.Create(ctx.Request.Context(), &cohort)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// UpdateCohort applies a partial update
// @Summary Update a cohort by ID
// @Description Update the supplied fields of a cohort; the merged document is re-validated
// @Tags cohorts
// @Accept json
// @Produce json
// @Param id path string true "Cohort ID"
// @Param request body models.CohortPatch true "Fields to update"
// @Success 200 {object} models.Cohort "The updated cohort"
// @Failure 400 {object} dto.ErrorResponse "Invalid Id, validation failed or malformed body"
// @Failure 404 {object} dto.ErrorResponse "Cohort not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cohorts/{id} [put]
func (c *CohortController) UpdateCohort(ctx *gin.Context) {
	var patch models.CohortPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError(err.Error()))
		return
	}

	updated, err := c.cohortService.Update(ctx.Request.Context(), ctx.Param("id"), &patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// DeleteCohort removes a cohort
// @Summary Delete a cohort by ID
// @Description Remove a cohort; students referencing it keep a dangling reference
// @Tags cohorts
// @Param id path string true "Cohort ID"
// @Success 204 "Cohort deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid Id"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cohorts/{id} [delete]
func (c *CohortController) DeleteCohort(ctx *gin.Context) {
	if err := c.cohortService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
