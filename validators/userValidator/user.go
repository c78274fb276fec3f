package userValidator

import (
	"lms/middleware"
	"lms/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user student instructor teaching_assistant"`
}

// CreateUser validates the admin user-creation body.
func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateUserRequest)
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

		if reqData.Role == "" {
			reqData.Role = models.RoleUser
		}

		c.Locals("validatedCreateUser", reqData)
		return c.Next()
	}
}

type UpdateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// UpdateUser validates the admin user-update body. Empty fields keep their
// current values.
func UpdateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateUserRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedUpdateUser", reqData)
		return c.Next()
	}
}

type RolesRequest struct {
	Roles []string `json:"roles"`
}

var knownRoles = map[string]bool{
	models.RoleAdmin:             true,
	models.RoleUser:              true,
	models.RoleStudent:           true,
	models.RoleInstructor:        true,
	models.RoleTeachingAssistant: true,
}

// UpdateRoles validates a role-set replacement. A user always owns a
// non-empty set, so an empty array is rejected.
func UpdateRoles() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RolesRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Roles) == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"roles": "Roles must be a non-empty array!"})
		}

		seen := make(map[string]bool)
		for _, role := range reqData.Roles {
			if !knownRoles[role] {
				return middleware.ValidationErrorResponse(c, map[string]string{"roles": "Unknown role: " + role + "!"})
			}
			if seen[role] {
				return middleware.ValidationErrorResponse(c, map[string]string{"roles": "Duplicate role: " + role + "!"})
			}
			seen[role] = true
		}

		c.Locals("validatedRoles", reqData)
		return c.Next()
	}
}
