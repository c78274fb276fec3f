package bankRoutes

import (
	bankController "lms/controllers/bank"
	"lms/middleware"
	bankValidator "lms/validators/bank"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupBankRoutes(app *fiber.App) {
	bankGroup := app.Group("/api/bank-accounts", middleware.JWTMiddleware)

	bankGroup.Get("/", bankController.GetBankAccounts)
	bankGroup.Get("/:id", courseValidator.ParseID("accountID"), bankController.GetBankAccountByID)
	bankGroup.Post("/", middleware.RequireAdmin, bankValidator.SaveBankAccount(), bankController.AdminCreateBankAccount)
	bankGroup.Put("/:id", middleware.RequireAdmin, courseValidator.ParseID("accountID"), bankValidator.SaveBankAccount(), bankController.AdminUpdateBankAccount)
	bankGroup.Delete("/:id", middleware.RequireAdmin, courseValidator.ParseID("accountID"), bankController.AdminDeleteBankAccount)
}
