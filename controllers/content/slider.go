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

// GetSliders returns active sliders ordered for the public landing page.
func GetSliders(c *fiber.Ctx) error {
	var sliders []models.Slider
	err := database.Database.Db.
		Where("is_active = ?", true).
		Order("sort_order asc, id asc").
		Find(&sliders).Error
	if err != nil {
		log.Println("Failed to fetch sliders:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sliders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sliders fetched successfully!", sliders)
}

// AdminGetSliders returns every slider, active or not.
func AdminGetSliders(c *fiber.Ctx) error {
	var sliders []models.Slider
	if err := database.Database.Db.Order("sort_order asc, id asc").Find(&sliders).Error; err != nil {
		log.Println("Failed to fetch sliders:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sliders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sliders fetched successfully!", sliders)
}

// AdminCreateSlider adds a new slider.
func AdminCreateSlider(c *fiber.Ctx) error {
	reqData := c.Locals("validatedSlider").(*contentValidator.SliderRequest)

	slider := models.Slider{
		Title:       reqData.Title,
		Subtitle:    reqData.Subtitle,
		Description: reqData.Description,
		ImageURL:    reqData.ImageURL,
		ButtonText:  reqData.ButtonText,
		ButtonLink:  reqData.ButtonLink,
		IsActive:    true,
		SortOrder:   reqData.SortOrder,
	}
	if reqData.IsActive != nil {
		slider.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Create(&slider).Error; err != nil {
		log.Println("Failed to create slider:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create slider!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Slider created successfully!", slider)
}

// AdminUpdateSlider updates an existing slider.
func AdminUpdateSlider(c *fiber.Ctx) error {
	sliderID := c.Locals("sliderID").(int)
	reqData := c.Locals("validatedSlider").(*contentValidator.SliderRequest)

	var slider models.Slider
	if err := database.Database.Db.First(&slider, sliderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Slider not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch slider!", nil)
	}

	slider.Title = reqData.Title
	slider.Subtitle = reqData.Subtitle
	slider.Description = reqData.Description
	slider.ImageURL = reqData.ImageURL
	slider.ButtonText = reqData.ButtonText
	slider.ButtonLink = reqData.ButtonLink
	slider.SortOrder = reqData.SortOrder
	if reqData.IsActive != nil {
		slider.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Save(&slider).Error; err != nil {
		log.Println("Failed to update slider:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update slider!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Slider updated successfully!", slider)
}

// AdminDeleteSlider removes a slider.
func AdminDeleteSlider(c *fiber.Ctx) error {
	sliderID := c.Locals("sliderID").(int)

	var slider models.Slider
	if err := database.Database.Db.First(&slider, sliderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Slider not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch slider!", nil)
	}

	if err := database.Database.Db.Unscoped().Delete(&slider).Error; err != nil {
		log.Println("Failed to delete slider:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete slider!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Slider deleted successfully!", nil)
}
