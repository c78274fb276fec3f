package uploadController

import (
	"errors"
	"log"

	"lms/config"
	"lms/middleware"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

func uploadErrorResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, utils.ErrFileTooBig) {
		return middleware.JsonResponse(c, fiber.StatusRequestEntityTooLarge, false, "File exceeds the 5MB upload limit!", nil)
	}
	if errors.Is(err, utils.ErrNotAnImage) {
		return middleware.ValidationErrorResponse(c, map[string]string{"file": "Only image files are allowed!"})
	}
	log.Println("Failed to save uploaded file:", err)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save uploaded file!", nil)
}

// UploadImage stores a site image and returns its public URL. Admin only.
func UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"file": "Image file is required!"})
	}

	if err := utils.ValidateImageUpload(fileHeader); err != nil {
		return uploadErrorResponse(c, err)
	}

	filename, err := utils.SaveUploadedFile(fileHeader, config.AppConfig.UploadDir)
	if err != nil {
		return uploadErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Image uploaded successfully!", fiber.Map{
		"filename": filename,
		"url":      utils.GetFileURL(config.AppConfig.BaseURL, filename),
	})
}

// UploadPaymentProof stores a payment proof image for the requesting user.
func UploadPaymentProof(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"file": "Payment proof file is required!"})
	}

	if err := utils.ValidateImageUpload(fileHeader); err != nil {
		return uploadErrorResponse(c, err)
	}

	filename, err := utils.SaveUploadedFile(fileHeader, config.AppConfig.UploadDir)
	if err != nil {
		return uploadErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment proof uploaded successfully!", fiber.Map{
		"filename": filename,
		"url":      utils.GetFileURL(config.AppConfig.BaseURL, filename),
	})
}
