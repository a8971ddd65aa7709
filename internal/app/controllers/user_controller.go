package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cohorttools/cohort-tools-api/internal/app/services"
	"github.com/cohorttools/cohort-tools-api/internal/middleware"
)

// UserController handles user endpoints
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Ping answers the public users root
// @Summary Users liveness
// @Description Public liveness message of the users router
// @Tags users
// @Produce json
// @Success 200 {string} string "all good with users"
// @Router /users [get]
func (c *UserController) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, "all good with users")
}

// GetUserByID retrieves a user by ID
// @Summary Get a user by ID
// @Description Retrieve a user; requires a bearer token
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} models.User "A single user"
// @Failure 400 {object} dto.ErrorResponse "Invalid Id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func (c *UserController) GetUserByID(ctx *gin.Context) {
	user, err := c.userService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}
