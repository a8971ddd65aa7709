package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cohorttools/cohort-tools-api/internal/app/controllers"
	"github.com/cohorttools/cohort-tools-api/internal/app/models/dto"
	"github.com/cohorttools/cohort-tools-api/internal/middleware"
)

const welcomeMessage = "Welcome to the Cohort Tools API. Please visit /docs for the API documentation."

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	cohortController *controllers.CohortController,
	studentController *controllers.StudentController,
	userController *controllers.UserController,
	authMiddleware *middleware.AuthMiddleware,
	storage string,
) {
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, welcomeMessage)
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Storage: storage})
	})

	api := router.Group("/api")

	cohorts := api.Group("/cohorts")
	{
		cohorts.GET("", cohortController.GetAllCohorts)
		cohorts.GET("/:id", cohortController.GetCohortByID)
		cohorts.POST("", cohortController.CreateCohort)
		cohorts.PUT("/:id", cohortController.UpdateCohort)
		cohorts.DELETE("/:id", cohortController.DeleteCohort)
	}

	students := api.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.POST("", studentController.CreateStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	users := api.Group("/users")
	{
		users.GET("", userController.Ping)
		users.GET("/:id", authMiddleware.JWTAuth(), userController.GetUserByID)
	}
}
