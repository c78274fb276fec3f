package courseValidator

import (
	"lms/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type EnrollRequest struct {
	CourseID     uint   `json:"course_id"`
	PaymentProof string `json:"payment_proof"`
	BankAccount  string `json:"bank_account"`
}

// Enroll validates the enrollment creation body. Payment proof is
// mandatory; enrollment requests without one are rejected outright.
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}
		if strings.TrimSpace(reqData.PaymentProof) == "" {
			errors["payment_proof"] = "Payment proof is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

type StatusRequest struct {
	Status     string `json:"status"`
	AdminNotes string `json:"admin_notes"`
}

// UpdateStatus validates the status body. Normalization against the three
// valid states happens in the controller so the row is provably untouched
// on a bad value.
func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(StatusRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Status) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"status": "Status is required!"})
		}

		c.Locals("validatedStatus", reqData)
		return c.Next()
	}
}

type GradeRequest struct {
	Grade     string `json:"grade"`
	Completed *bool  `json:"completed"`
}

// UpdateGrade validates the grade body.
func UpdateGrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(GradeRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Grade) == "" {
			errors["grade"] = "Grade is required!"
		}
		if reqData.Completed == nil {
			errors["completed"] = "Completed flag is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGrade", reqData)
		return c.Next()
	}
}
