package courseValidator

import (
	"lms/middleware"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

type AttendanceRequest struct {
	CourseID    uint   `json:"course_id"`
	StudentID   uint   `json:"student_id"`
	SessionDate string `json:"session_date"`
	Present     *bool  `json:"present"`

	ParsedDate time.Time `json:"-"`
}

// RecordAttendance validates an attendance entry.
func RecordAttendance() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AttendanceRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}
		if reqData.StudentID == 0 {
			errors["student_id"] = "Student ID is required!"
		}
		if reqData.Present == nil {
			errors["present"] = "Present flag is required!"
		}
		if strings.TrimSpace(reqData.SessionDate) == "" {
			errors["session_date"] = "Session date is required!"
		} else {
			date, err := time.Parse("2006-01-02", reqData.SessionDate)
			if err != nil {
				errors["session_date"] = "Session date must be YYYY-MM-DD!"
			} else {
				reqData.ParsedDate = date
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAttendance", reqData)
		return c.Next()
	}
}

type AssignmentRequest struct {
	UserID   uint   `json:"user_id"`
	CourseID uint   `json:"course_id"`
	Role     string `json:"role"`
}

// CreateAssignment validates a course assignment body.
func CreateAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AssignmentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["user_id"] = "User ID is required!"
		}
		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}
		if reqData.Role != "instructor" && reqData.Role != "teaching_assistant" {
			errors["role"] = "Role must be instructor or teaching_assistant!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAssignment", reqData)
		return c.Next()
	}
}
