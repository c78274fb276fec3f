package courseRoutes

import (
	courseController "lms/controllers/course"
	"lms/middleware"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes registers the public and student-facing course routes.
func SetupCourseRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/courses", courseController.GetAllCourses)
	api.Get("/courses/:id", courseValidator.ParseID("courseID"), courseController.GetCourseDetails)

	api.Get("/student/courses", middleware.JWTMiddleware, courseController.GetStudentCourses)

	enrollGroup := api.Group("/enrollments", middleware.JWTMiddleware)
	enrollGroup.Post("/", courseValidator.Enroll(), courseController.EnrollInCourse)
	enrollGroup.Get("/", middleware.RequireAdmin, courseController.AdminGetEnrollments)
	enrollGroup.Get("/my", courseController.GetMyEnrollments)
	enrollGroup.Get("/:id", courseValidator.ParseID("enrollmentID"), courseController.GetEnrollmentByID)
	enrollGroup.Get("/:id/certificate", courseValidator.ParseID("enrollmentID"), courseController.GetCertificate)
	enrollGroup.Put("/:id/status", middleware.RequireAdmin, courseValidator.ParseID("enrollmentID"), courseValidator.UpdateStatus(), courseController.AdminUpdateStatus)
	enrollGroup.Put("/:id/grade", courseValidator.ParseID("enrollmentID"), courseValidator.UpdateGrade(), courseController.UpdateGrade)
	enrollGroup.Delete("/:id", middleware.RequireAdmin, courseValidator.ParseID("enrollmentID"), courseController.AdminDeleteEnrollment)

	attendanceGroup := api.Group("/attendance", middleware.JWTMiddleware)
	attendanceGroup.Post("/", courseValidator.RecordAttendance(), courseController.RecordAttendance)
	attendanceGroup.Get("/course/:id", courseValidator.ParseID("courseID"), courseController.GetCourseAttendance)
	attendanceGroup.Get("/summary/:courseId/:studentId",
		courseValidator.ParseParam("courseId", "courseID"),
		courseValidator.ParseParam("studentId", "studentID"),
		courseController.GetAttendanceSummary)
}
