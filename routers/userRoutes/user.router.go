package userRoutes

import (
	userController "lms/controllers/userControllers"
	"lms/middleware"
	courseValidator "lms/validators/course"
	userValidator "lms/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users", middleware.JWTMiddleware, middleware.RequireAdmin)

	userGroup.Get("/", userController.AdminGetUsers)
	userGroup.Post("/", userValidator.CreateUser(), userController.AdminCreateUser)
	userGroup.Get("/:id", courseValidator.ParseID("targetUserID"), userController.AdminGetUserByID)
	userGroup.Put("/:id", courseValidator.ParseID("targetUserID"), userValidator.UpdateUser(), userController.AdminUpdateUser)
	userGroup.Delete("/:id", courseValidator.ParseID("targetUserID"), userController.AdminDeleteUser)
	userGroup.Get("/:id/roles", courseValidator.ParseID("targetUserID"), userController.AdminGetUserRoles)
	userGroup.Put("/:id/roles", courseValidator.ParseID("targetUserID"), userValidator.UpdateRoles(), userController.AdminUpdateUserRoles)
}
