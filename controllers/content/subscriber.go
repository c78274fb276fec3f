package contentController

import (
	"bytes"
	"encoding/csv"
	"errors"
	"log"
	"strconv"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	contentValidator "lms/validators/content"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Subscribe registers an email for the newsletter and sends a welcome mail.
func Subscribe(c *fiber.Ctx) error {
	reqData := c.Locals("validatedSubscribe").(*contentValidator.SubscribeRequest)

	var existing models.Subscriber
	err := database.Database.Db.Where("email = ?", reqData.Email).First(&existing).Error
	if err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "This email is already subscribed!", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to subscribe!", nil)
	}

	subscriber := models.Subscriber{Email: reqData.Email}
	if err := database.Database.Db.Create(&subscriber).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "This email is already subscribed!", nil)
		}
		log.Println("Failed to create subscriber:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to subscribe!", nil)
	}

	go utils.SendSubscriberWelcomeEmail(subscriber.Email)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Subscribed successfully!", fiber.Map{
		"id":    subscriber.ID,
		"email": subscriber.Email,
	})
}

// AdminGetSubscribers lists subscribers with page/limit pagination.
func AdminGetSubscribers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := database.Database.Db.Model(&models.Subscriber{}).Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subscribers!", nil)
	}

	var subscribers []models.Subscriber
	err := database.Database.Db.
		Order("subscribed_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&subscribers).Error
	if err != nil {
		log.Println("Failed to fetch subscribers:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subscribers!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscribers fetched successfully!", fiber.Map{
		"subscribers": subscribers,
		"total":       total,
		"page":        page,
		"limit":       limit,
	})
}

// AdminExportSubscribers streams the full subscriber list as a CSV file.
func AdminExportSubscribers(c *fiber.Ctx) error {
	var subscribers []models.Subscriber
	if err := database.Database.Db.Order("subscribed_at asc").Find(&subscribers).Error; err != nil {
		log.Println("Failed to export subscribers:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to export subscribers!", nil)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	_ = writer.Write([]string{"id", "email", "subscribed_at"})
	for _, s := range subscribers {
		_ = writer.Write([]string{
			strconv.FormatUint(uint64(s.ID), 10),
			s.Email,
			s.SubscribedAt.Format("2006-01-02 15:04:05"),
		})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to export subscribers!", nil)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="subscribers.csv"`)
	return c.Send(buf.Bytes())
}

// AdminDeleteSubscriber removes a subscriber.
func AdminDeleteSubscriber(c *fiber.Ctx) error {
	subscriberID := c.Locals("subscriberID").(int)

	var subscriber models.Subscriber
	if err := database.Database.Db.First(&subscriber, subscriberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subscriber not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subscriber!", nil)
	}

	if err := database.Database.Db.Delete(&subscriber).Error; err != nil {
		log.Println("Failed to delete subscriber:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete subscriber!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscriber deleted successfully!", nil)
}
