package contentController

import (
	"errors"
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"
	contentValidator "lms/validators/content"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const defaultAboutContent = `<h2>About Us</h2><p>Welcome to our academy. This page has not been customized yet.</p>`

// GetAbout returns the about page content, falling back to a default.
func GetAbout(c *fiber.Ctx) error {
	var about models.About
	err := database.Database.Db.First(&about, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "About content fetched successfully!", fiber.Map{
			"content": defaultAboutContent,
		})
	}
	if err != nil {
		log.Println("Failed to fetch about content:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch about content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "About content fetched successfully!", fiber.Map{
		"content": about.Content,
	})
}

// AdminUpdateAbout upserts the single about page row.
func AdminUpdateAbout(c *fiber.Ctx) error {
	reqData := c.Locals("validatedAbout").(*contentValidator.AboutRequest)

	about := models.About{ID: 1}
	err := database.Database.Db.First(&about, 1).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch about content!", nil)
	}

	about.Content = reqData.Content
	if err := database.Database.Db.Save(&about).Error; err != nil {
		log.Println("Failed to update about content:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update about content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "About content updated successfully!", fiber.Map{
		"content": about.Content,
	})
}
