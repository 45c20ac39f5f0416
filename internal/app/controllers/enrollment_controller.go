package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/hexadigitall/platform/internal/app/models"
	"github.com/hexadigitall/platform/internal/app/models/dto"
	"github.com/hexadigitall/platform/internal/app/services"
	"github.com/hexadigitall/platform/internal/middleware"
	"github.com/hexadigitall/platform/internal/pkg/helpers"
)

// EnrollmentController handles admin enrollment endpoints
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
	logger            zerolog.Logger
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService, logger zerolog.Logger) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService, logger: logger}
}

// ListEnrollments returns a filtered page of enrollments
// @Summary List enrollments
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Param courseId query int false "Filter by course"
// @Param teacherId query int false "Filter by assigned teacher"
// @Param paymentStatus query string false "Filter by payment status"
// @Param courseType query string false "Filter by course type"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /admin/enrollments [get]
func (c *EnrollmentController) ListEnrollments(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	filter := models.EnrollmentFilter{
		PaymentStatus: models.PaymentStatus(ctx.Query("paymentStatus")),
		CourseType:    models.CourseType(ctx.Query("courseType")),
		Page:          page,
		Size:          size,
	}
	if v, err := strconv.ParseInt(ctx.Query("courseId"), 10, 64); err == nil {
		filter.CourseID = v
	}
	if v, err := strconv.ParseInt(ctx.Query("teacherId"), 10, 64); err == nil {
		filter.TeacherID = v
	}

	items, pagination, err := c.enrollmentService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PaginatedResponse{
		Items:      items,
		Pagination: pagination,
	}))
}

// CreateEnrollment records a new enrollment
// @Summary Create enrollment
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEnrollmentRequest true "New enrollment"
// @Success 201 {object} dto.APIResponse
// @Router /admin/enrollments [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	enrollment, err := c.enrollmentService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(enrollment))
}

// AssignTeacher assigns a teacher to a live-course enrollment. The
// teacher id must resolve to a user whose live role is teacher.
// @Summary Assign teacher to enrollment
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Param request body dto.AssignTeacherRequest true "Teacher to assign"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Invalid teacher ID"
// @Failure 404 {object} dto.APIResponse "Enrollment not found"
// @Router /admin/enrollments/{id} [patch]
func (c *EnrollmentController) AssignTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AssignTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.enrollmentService.AssignTeacher(ctx.Request.Context(), id, req.TeacherID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Teacher assigned"))
}
