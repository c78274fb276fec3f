package uploadRoutes

import (
	uploadController "lms/controllers/upload"
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUploadRoutes(app *fiber.App) {
	uploadGroup := app.Group("/api/upload", middleware.JWTMiddleware)

	uploadGroup.Post("/image", middleware.RequireAdmin, uploadController.UploadImage)
	uploadGroup.Post("/payment-proof", uploadController.UploadPaymentProof)
}
