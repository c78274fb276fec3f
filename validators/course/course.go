package courseValidator

import (
	"lms/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ParseParam validates a positive integer route parameter and stashes it as an int.
func ParseParam(param, local string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params(param))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
		}

		c.Locals(local, id)
		return c.Next()
	}
}

// ParseID validates the :id route parameter.
func ParseID(local string) fiber.Handler {
	return ParseParam("id", local)
}

type CourseRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Price           *float64 `json:"price"`
	Duration        string   `json:"duration"`
	Level           string   `json:"level"`
	ImageURL        string   `json:"image_url"`
	EnrollmentLimit int      `json:"enrollment_limit"`
	IsVisible       *bool    `json:"is_visible"`
}

// SaveCourse validates the create/update course body.
func SaveCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}
		if reqData.Price == nil {
			errors["price"] = "Price is required!"
		} else if *reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}
		if reqData.EnrollmentLimit < 0 {
			errors["enrollment_limit"] = "Enrollment limit must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}
