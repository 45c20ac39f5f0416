package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hexadigitall/platform/internal/app/models/dto"
	"github.com/hexadigitall/platform/internal/app/repositories"
	"github.com/hexadigitall/platform/internal/middleware"
)

// CourseController handles public course catalog endpoints
type CourseController struct {
	courseRepo repositories.ICourseRepository
}

// NewCourseController creates a new CourseController
func NewCourseController(courseRepo repositories.ICourseRepository) *CourseController {
	return &CourseController{courseRepo: courseRepo}
}

// ListCourses returns all published catalog entries
// @Summary List published courses
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.courseRepo.GetPublished(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses))
}

// GetCourse returns a single catalog entry by id
// @Summary Get course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseRepo.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}
