package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/hexadigitall/platform/internal/app/models/dto"
	"github.com/hexadigitall/platform/internal/app/services"
	"github.com/hexadigitall/platform/internal/middleware"
)

// StudentController handles the student dashboard API surface
type StudentController struct {
	enrollmentService *services.EnrollmentService
	logger            zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(enrollmentService *services.EnrollmentService, logger zerolog.Logger) *StudentController {
	return &StudentController{enrollmentService: enrollmentService, logger: logger}
}

// MyEnrollments returns the calling student's enrollments
// @Summary Student's enrollments
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /student/enrollments [get]
func (c *StudentController) MyEnrollments(ctx *gin.Context) {
	studentID := middleware.CallerID(ctx)

	enrollments, err := c.enrollmentService.ListByStudent(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(enrollments))
}

// Renew re-opens payment for one of the caller's own live enrollments
// @Summary Renew enrollment
// @Tags student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RenewEnrollmentRequest true "Enrollment to renew"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Enrollment not found or not owned by caller"
// @Router /student/renew [post]
func (c *StudentController) Renew(ctx *gin.Context) {
	var req dto.RenewEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	studentID := middleware.CallerID(ctx)

	enrollment, err := c.enrollmentService.Renew(ctx.Request.Context(), studentID, req.EnrollmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(enrollment))
}
