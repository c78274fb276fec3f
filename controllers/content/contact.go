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

// SubmitContact stores a message from the public contact form.
func SubmitContact(c *fiber.Ctx) error {
	reqData := c.Locals("validatedContact").(*contentValidator.ContactRequest)

	contact := models.Contact{
		Name:    reqData.Name,
		Email:   reqData.Email,
		Message: reqData.Message,
	}
	if err := database.Database.Db.Create(&contact).Error; err != nil {
		log.Println("Failed to save contact message:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit message!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Message submitted successfully!", fiber.Map{
		"id": contact.ID,
	})
}

// AdminGetContacts lists contact messages, newest first.
func AdminGetContacts(c *fiber.Ctx) error {
	var contacts []models.Contact
	if err := database.Database.Db.Order("created_at desc").Find(&contacts).Error; err != nil {
		log.Println("Failed to fetch contact messages:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch messages!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Messages fetched successfully!", contacts)
}

// AdminMarkContactRead flags a contact message as handled.
func AdminMarkContactRead(c *fiber.Ctx) error {
	contactID := c.Locals("contactID").(int)

	var contact models.Contact
	if err := database.Database.Db.First(&contact, contactID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Message not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch message!", nil)
	}

	if err := database.Database.Db.Model(&contact).Update("is_read", true).Error; err != nil {
		log.Println("Failed to update contact message:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update message!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Message marked as read!", nil)
}

// AdminDeleteContact removes a contact message.
func AdminDeleteContact(c *fiber.Ctx) error {
	contactID := c.Locals("contactID").(int)

	var contact models.Contact
	if err := database.Database.Db.First(&contact, contactID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Message not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch message!", nil)
	}

	if err := database.Database.Db.Unscoped().Delete(&contact).Error; err != nil {
		log.Println("Failed to delete contact message:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete message!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Message deleted successfully!", nil)
}
