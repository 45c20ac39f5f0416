package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/hexadigitall/platform/internal/app/models/dto"
	"github.com/hexadigitall/platform/internal/app/repositories"
	"github.com/hexadigitall/platform/internal/app/services"
	"github.com/hexadigitall/platform/internal/middleware"
)

// TeacherController handles the teacher dashboard API surface. Queries
// are scoped by the caller's own id: a teacher only ever sees courses
// assigned to them and the enrollments on those courses.
type TeacherController struct {
	courseRepo        repositories.ICourseRepository
	enrollmentService *services.EnrollmentService
	logger            zerolog.Logger
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(courseRepo repositories.ICourseRepository, enrollmentService *services.EnrollmentService, logger zerolog.Logger) *TeacherController {
	return &TeacherController{
		courseRepo:        courseRepo,
		enrollmentService: enrollmentService,
		logger:            logger,
	}
}

// MyCourses returns the courses assigned to the calling teacher
// @Summary Teacher's assigned courses
// @Tags teacher
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /teacher/courses [get]
func (c *TeacherController) MyCourses(ctx *gin.Context) {
	teacherID := middleware.CallerID(ctx)

	courses, err := c.courseRepo.GetCoursesByTeacherID(ctx.Request.Context(), teacherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses))
}

// MyStudents returns the roster visible to the calling teacher
// @Summary Teacher's student roster
// @Tags teacher
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /teacher/students [get]
func (c *TeacherController) MyStudents(ctx *gin.Context) {
	teacherID := middleware.CallerID(ctx)

	roster, err := c.enrollmentService.ListByTeacher(ctx.Request.Context(), teacherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(roster))
}
