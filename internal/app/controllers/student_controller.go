package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yigit/studentregistry/internal/app/filter"
	"github.com/yigit/studentregistry/internal/app/models/dto"
	"github.com/yigit/studentregistry/internal/app/services"
	"github.com/yigit/studentregistry/internal/middleware"
	"github.com/yigit/studentregistry/internal/pkg/helpers"
)

// StudentController handles student listing, creation and enrollment stats
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// GetStudents lists students matching the query filters
// @Summary List students
// @Description Lists students ordered by last name, first name and id. Every filter is optional; list filters take comma separated values and malformed dates are ignored. expulsion_reasons replaces a bare "expelled" in statuses.
// @Tags students
// @Produce json
// @Param statuses query string false "Statuses" example(active,expelled)
// @Param expulsion_reasons query string false "Expulsion reasons" example(transfer)
// @Param enrollment_date query string false "Exact enrollment date (YYYY-MM-DD)"
// @Param start_date query string false "Enrollment range start, used with end_date (YYYY-MM-DD)"
// @Param end_date query string false "Enrollment range end, used with start_date (YYYY-MM-DD)"
// @Param current_departments query string false "Current department ids" example(1,2)
// @Param current_programs query string false "Current program ids" example(3,4)
// @Param education_types query string false "Education types" example(budget)
// @Param admission_bases query string false "Admission bases" example(general,target)
// @Param in_academic query string false "Only students on academic leave when true"
// @Success 200 {array} dto.StudentResponse "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	params := filter.ParamsFromValues(ctx.Request.URL.Query())

	students, err := c.studentService.ListStudents(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FromStudents(students))
}

// CreateStudent registers a new student
// @Summary Create a student
// @Description Creates a student. Initial department and program default to the current ones; a differing current program is recorded as a transfer.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.StudentResponse "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.CreateStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.FromStudent(student))
}

// GetEnrollmentStats returns the students enrolled on a date
// @Summary Enrollment stats for a day
// @Description Counts and lists the students enrolled on the given date
// @Tags students
// @Produce json
// @Param date query string true "Enrollment date (YYYY-MM-DD)"
// @Success 200 {object} dto.EnrollmentStatsResponse "Enrollment stats"
// @Failure 400 {object} dto.MessageResponse "Missing or malformed date"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollment-stats [get]
func (c *StudentController) GetEnrollmentStats(ctx *gin.Context) {
	raw := ctx.Query("date")
	if strings.TrimSpace(raw) == "" {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Error: "Date parameter is required"})
		return
	}

	day, err := helpers.ParseDate(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Error: "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	students, err := c.studentService.StudentsEnrolledOn(ctx, day)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EnrollmentStatsResponse{
		Date:     raw,
		Count:    len(students),
		Students: dto.FromStudents(students),
	})
}
