package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/studentregistry/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	departmentController *controllers.DepartmentController,
	programController *controllers.ProgramController,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	// API version group
	v1 := router.Group("/api/v1")

	// every collection answers with and without a trailing slash
	handle(v1, http.MethodGet, "/students", studentController.GetStudents)
	handle(v1, http.MethodPost, "/students", studentController.CreateStudent)
	handle(v1, http.MethodGet, "/enrollment-stats", studentController.GetEnrollmentStats)
	handle(v1, http.MethodGet, "/departments", departmentController.GetAllDepartments)
	handle(v1, http.MethodGet, "/programs", programController.GetPrograms)
}

func handle(group *gin.RouterGroup, method, path string, h gin.HandlerFunc) {
	group.Handle(method, path, h)
	group.Handle(method, path+"/", h)
}
