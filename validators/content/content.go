package contentValidator

import (
	"lms/middleware"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type FAQRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SaveFAQ validates the FAQ body.
func SaveFAQ() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(FAQRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.Question) == "" {
			errors["question"] = "Question is required!"
		}
		if strings.TrimSpace(reqData.Answer) == "" {
			errors["answer"] = "Answer is required!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFAQ", reqData)
		return c.Next()
	}
}

type SliderRequest struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	ButtonText  string `json:"button_text"`
	ButtonLink  string `json:"button_link"`
	IsActive    *bool  `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

// SaveSlider validates the slider body.
func SaveSlider() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SliderRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Title) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title is required!"})
		}

		c.Locals("validatedSlider", reqData)
		return c.Next()
	}
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// SaveContact validates the public contact form body.
func SaveContact() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ContactRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fe := range err.(validator.ValidationErrors) {
				errors[fe.Field()] = "Invalid value for " + fe.Field() + "!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContact", reqData)
		return c.Next()
	}
}

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Subscribe validates the newsletter signup body.
func Subscribe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubscribeRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"email": "Please provide a valid email address!"})
		}

		c.Locals("validatedSubscribe", reqData)
		return c.Next()
	}
}

type AboutRequest struct {
	Content string `json:"content"`
}

// SaveAbout validates the about page body.
func SaveAbout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AboutRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Content) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"content": "Content is required!"})
		}

		c.Locals("validatedAbout", reqData)
		return c.Next()
	}
}
