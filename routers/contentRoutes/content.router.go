package contentRoutes

import (
	contentController "lms/controllers/content"
	"lms/middleware"
	contentValidator "lms/validators/content"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupContentRoutes(app *fiber.App) {
	api := app.Group("/api")

	faqGroup := api.Group("/faqs")
	faqGroup.Get("/", contentController.GetFAQs)
	faqGroup.Post("/", middleware.JWTMiddleware, middleware.RequireAdmin, contentValidator.SaveFAQ(), contentController.AdminCreateFAQ)
	faqGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireAdmin, courseValidator.ParseID("faqID"), contentValidator.SaveFAQ(), contentController.AdminUpdateFAQ)
	faqGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireAdmin, courseValidator.ParseID("faqID"), contentController.AdminDeleteFAQ)

	sliderGroup := api.Group("/sliders")
	sliderGroup.Get("/", contentController.GetSliders)
	sliderGroup.Get("/all", middleware.JWTMiddleware, middleware.RequireAdmin, contentController.AdminGetSliders)
	sliderGroup.Post("/", middleware.JWTMiddleware, middleware.RequireAdmin, contentValidator.SaveSlider(), contentController.AdminCreateSlider)
	sliderGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireAdmin, courseValidator.ParseID("sliderID"), contentValidator.SaveSlider(), contentController.AdminUpdateSlider)
	sliderGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireAdmin, courseValidator.ParseID("sliderID"), contentController.AdminDeleteSlider)

	contactGroup := api.Group("/contacts")
	contactGroup.Post("/", contentValidator.SaveContact(), contentController.SubmitContact)
	contactGroup.Get("/", middleware.JWTMiddleware, middleware.RequireAdmin, contentController.AdminGetContacts)
	contactGroup.Patch("/:id/read", middleware.JWTMiddleware, middleware.RequireAdmin, courseValidator.ParseID("contactID"), contentController.AdminMarkContactRead)
	contactGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireAdmin, courseValidator.ParseID("contactID"), contentController.AdminDeleteContact)

	subGroup := api.Group("/subscribers")
	subGroup.Post("/subscribe", contentValidator.Subscribe(), contentController.Subscribe)
	subGroup.Get("/", middleware.JWTMiddleware, middleware.RequireAdmin, contentController.AdminGetSubscribers)
	subGroup.Get("/export", middleware.JWTMiddleware, middleware.RequireAdmin, contentController.AdminExportSubscribers)
	subGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireAdmin, courseValidator.ParseID("subscriberID"), contentController.AdminDeleteSubscriber)

	api.Get("/about", contentController.GetAbout)
	api.Put("/about", middleware.JWTMiddleware, middleware.RequireAdmin, contentValidator.SaveAbout(), contentController.AdminUpdateAbout)
}
