package courseRoutes

import (
	adminController "lms/controllers/admin"
	courseController "lms/controllers/course"
	"lms/middleware"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes registers admin course management, course
// assignments and the reporting endpoints.
func SetupAdminCourseRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/admin/courses", middleware.JWTMiddleware, middleware.RequireAdmin, courseController.AdminGetAllCourses)

	courseGroup := api.Group("/courses", middleware.JWTMiddleware, middleware.RequireAdmin)
	courseGroup.Post("/", courseValidator.SaveCourse(), courseController.AdminCreateCourse)
	courseGroup.Put("/:id", courseValidator.ParseID("courseID"), courseValidator.SaveCourse(), courseController.AdminUpdateCourse)
	courseGroup.Delete("/:id", courseValidator.ParseID("courseID"), courseController.AdminDeleteCourse)

	assignmentGroup := api.Group("/course-assignments", middleware.JWTMiddleware, middleware.RequireAdmin)
	assignmentGroup.Get("/", courseController.AdminGetAssignments)
	assignmentGroup.Post("/", courseValidator.CreateAssignment(), courseController.AdminCreateAssignment)
	assignmentGroup.Delete("/:id", courseValidator.ParseID("assignmentID"), courseController.AdminDeleteAssignment)

	reportGroup := api.Group("/admin", middleware.JWTMiddleware, middleware.RequireAdmin)
	reportGroup.Get("/course-stats", adminController.CourseStats)
	reportGroup.Get("/user-registrations", adminController.UserRegistrations)
}
