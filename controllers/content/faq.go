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

// GetFAQs returns all FAQ entries for the public site.
func GetFAQs(c *fiber.Ctx) error {
	var faqs []models.FAQ
	if err := database.Database.Db.Order("id asc").Find(&faqs).Error; err != nil {
		log.Println("Failed to fetch FAQs:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch FAQs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "FAQs fetched successfully!", faqs)
}

// AdminCreateFAQ adds a new FAQ entry.
func AdminCreateFAQ(c *fiber.Ctx) error {
	reqData := c.Locals("validatedFAQ").(*contentValidator.FAQRequest)

	faq := models.FAQ{
		Question: reqData.Question,
		Answer:   reqData.Answer,
	}
	if err := database.Database.Db.Create(&faq).Error; err != nil {
		log.Println("Failed to create FAQ:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create FAQ!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "FAQ created successfully!", faq)
}

// AdminUpdateFAQ updates an existing FAQ entry.
func AdminUpdateFAQ(c *fiber.Ctx) error {
	faqID := c.Locals("faqID").(int)
	reqData := c.Locals("validatedFAQ").(*contentValidator.FAQRequest)

	var faq models.FAQ
	if err := database.Database.Db.First(&faq, faqID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "FAQ not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch FAQ!", nil)
	}

	faq.Question = reqData.Question
	faq.Answer = reqData.Answer
	if err := database.Database.Db.Save(&faq).Error; err != nil {
		log.Println("Failed to update FAQ:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update FAQ!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "FAQ updated successfully!", faq)
}

// AdminDeleteFAQ removes an FAQ entry.
func AdminDeleteFAQ(c *fiber.Ctx) error {
	faqID := c.Locals("faqID").(int)

	var faq models.FAQ
	if err := database.Database.Db.First(&faq, faqID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "FAQ not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch FAQ!", nil)
	}

	if err := database.Database.Db.Unscoped().Delete(&faq).Error; err != nil {
		log.Println("Failed to delete FAQ:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete FAQ!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "FAQ deleted successfully!", nil)
}
