package authRoutes

import (
	authController "lms/controllers/auth"
	"lms/middleware"
	authValidator "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/register", authValidator.Register(), authController.Register)
	api.Post("/login", authValidator.Login(), authController.Login)
	api.Get("/validate-token", middleware.JWTMiddleware, authController.ValidateToken)
	api.Get("/profile", middleware.JWTMiddleware, authController.GetProfile)
	api.Put("/profile", middleware.JWTMiddleware, authValidator.UpdateProfile(), authController.UpdateProfile)
}
