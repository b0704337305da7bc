package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/studentregistry/internal/app/models/dto"
	"github.com/yigit/studentregistry/internal/app/services"
	"github.com/yigit/studentregistry/internal/middleware"
)

// ProgramController handles program-related operations
type ProgramController struct {
	programService *services.ProgramService
}

// NewProgramController creates a new ProgramController
func NewProgramController(programService *services.ProgramService) *ProgramController {
	return &ProgramController{
		programService: programService,
	}
}

// GetPrograms lists programs, optionally restricted to departments
// @Summary List programs
// @Description Lists programs ordered by code. department_id takes one id or a comma separated list; a non-numeric id yields an empty list.
// @Tags programs
// @Produce json
// @Param department_id query string false "Department id or comma separated ids" example(1,3)
// @Success 200 {array} dto.ProgramResponse "Programs retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs [get]
func (c *ProgramController) GetPrograms(ctx *gin.Context) {
	programs, err := c.programService.ListPrograms(ctx, ctx.Query("department_id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FromPrograms(programs))
}
