package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hexadigitall/platform/internal/app/controllers"
	"github.com/hexadigitall/platform/internal/app/models"
	"github.com/hexadigitall/platform/internal/app/models/dto"
	"github.com/hexadigitall/platform/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	enrollmentController *controllers.EnrollmentController,
	courseController *controllers.CourseController,
	teacherController *controllers.TeacherController,
	studentController *controllers.StudentController,
	siteController *controllers.SiteController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourse)
	}

	v1.POST("/contact", siteController.SubmitContactForm)
	v1.POST("/newsletter", siteController.SubscribeNewsletter)
	v1.POST("/events", siteController.TrackEvent)

	// --- Admin routes ---
	// Every request re-fetches the caller from the user directory, so a
	// suspension or role change takes effect on the next call even while
	// the token is still within its lifetime.
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/auth", authController.Introspect)

		adminUsers := admin.Group("/users")
		{
			adminUsers.GET("", userController.ListUsers)
			adminUsers.POST("", userController.CreateUser)
			adminUsers.GET("/:id", userController.GetUser)
			adminUsers.PATCH("/:id", userController.UpdateUser)
			adminUsers.GET("/:id/courses", userController.GetAssignedCourses)
			adminUsers.POST("/:id/courses", userController.AssignCourses)
		}

		adminEnrollments := admin.Group("/enrollments")
		{
			adminEnrollments.GET("", enrollmentController.ListEnrollments)
			adminEnrollments.POST("", enrollmentController.CreateEnrollment)
			adminEnrollments.PATCH("/:id", enrollmentController.AssignTeacher)
		}
	}

	// --- Teacher routes ---
	teacher := v1.Group("/teacher")
	teacher.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(models.RoleTeacher))
	{
		teacher.GET("/courses", teacherController.MyCourses)
		teacher.GET("/students", teacherController.MyStudents)
	}

	// --- Student routes ---
	student := v1.Group("/student")
	student.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(models.RoleStudent))
	{
		student.GET("/enrollments", studentController.MyEnrollments)
		student.POST("/renew", studentController.Renew)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})

	setupDashboardPages(router, authMiddleware)
}

// setupDashboardPages mounts the dashboard page shells. The gate on each
// section is a coarse cookie check that redirects anonymous or
// wrong-role visitors to the section's login page; the API routes above
// remain the real enforcement point.
func setupDashboardPages(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	sections := []struct {
		prefix string
		role   models.Role
	}{
		{"admin", models.RoleAdmin},
		{"teacher", models.RoleTeacher},
		{"student", models.RoleStudent},
	}

	for _, section := range sections {
		group := router.Group("/" + section.prefix)

		// Login page stays reachable without a session cookie
		group.GET("/login", dashboardPage(section.prefix+" login"))

		protected := group.Group("")
		protected.Use(authMiddleware.DashboardGate(section.prefix, section.role))
		{
			protected.GET("", dashboardPage(section.prefix+" dashboard"))
		}
	}
}

func dashboardPage(title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, "<!DOCTYPE html><html><head><title>%s</title></head><body><div id=\"app\" data-page=\"%s\"></div></body></html>", title, title)
	}
}
