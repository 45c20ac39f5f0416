package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/hexadigitall/platform/internal/app/models/dto"
	"github.com/hexadigitall/platform/internal/app/services"
	"github.com/hexadigitall/platform/internal/middleware"
	"github.com/hexadigitall/platform/internal/pkg/helpers"
)

// UserController handles admin user management and course-assignment endpoints
type UserController struct {
	userService       *services.UserService
	assignmentService *services.CourseAssignmentService
	logger            zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService, assignmentService *services.CourseAssignmentService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService:       userService,
		assignmentService: assignmentService,
		logger:            logger,
	}
}

// ListUsers returns a page of users
// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /admin/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	users, pagination, err := c.userService.ListUsers(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PaginatedResponse{
		Items:      dto.FromUsers(users),
		Pagination: pagination,
	}))
}

// CreateUser creates a new account
// @Summary Create user
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserRequest true "New user"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 409 {object} dto.APIResponse "Username or email already exists"
// @Router /admin/users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user, err := c.userService.CreateUser(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromUser(user)))
}

// GetUser returns a single user
// @Summary Get user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /admin/users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	user, err := c.userService.GetUser(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromUser(user)))
}

// UpdateUser applies a partial update to a user (role, status, credentials)
// @Summary Update user
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /admin/users/{id} [patch]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user, err := c.userService.UpdateUser(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromUser(user)))
}

// GetAssignedCourses lists the course ids assigned to a teacher
// @Summary Get a teacher's assigned courses
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher user ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Invalid teacher ID"
// @Router /admin/users/{id}/courses [get]
func (c *UserController) GetAssignedCourses(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	courseIDs, err := c.assignmentService.GetAssignedCourses(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"courseIds": courseIDs}))
}

// AssignCourses reconciles a teacher's course assignments toward the
// desired set in a single transaction.
// @Summary Assign courses to a teacher
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher user ID"
// @Param request body dto.AssignCoursesRequest true "Desired course set"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Invalid teacher ID"
// @Router /admin/users/{id}/courses [post]
func (c *UserController) AssignCourses(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AssignCoursesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	added, removed, err := c.assignmentService.AssignCourses(ctx.Request.Context(), id, req.CourseIDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"added":   added,
		"removed": removed,
	}))
}

// parseIDParam parses a numeric path parameter, writing a 400 on failure.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter").WithField(name)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return 0, false
	}
	return id, true
}
