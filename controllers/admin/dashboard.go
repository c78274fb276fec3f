package adminController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CourseStats aggregates course and enrollment figures for the admin
// dashboard.
func CourseStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalCourses, visibleCourses int64
	if err := db.Model(&models.Course{}).Count(&totalCourses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course statistics!", nil)
	}
	db.Model(&models.Course{}).Where("is_visible = ?", true).Count(&visibleCourses)

	type courseCount struct {
		ID              uint   `json:"id"`
		Title           string `json:"title"`
		EnrollmentCount int64  `json:"enrollment_count"`
	}

	var topCourses []courseCount
	db.Model(&models.Course{}).
		Select("courses.id, courses.title, COUNT(enrollments.id) as enrollment_count").
		Joins("LEFT JOIN enrollments ON enrollments.course_id = courses.id").
		Group("courses.id, courses.title").
		Order("enrollment_count desc").
		Limit(10).
		Scan(&topCourses)

	cutoff := time.Now().AddDate(0, 0, -30)

	var recentEnrollments int64
	db.Model(&models.Enrollment{}).Where("created_at >= ?", cutoff).Count(&recentEnrollments)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course statistics fetched successfully.", fiber.Map{
		"total_courses":      totalCourses,
		"visible_courses":    visibleCourses,
		"top_courses":        topCourses,
		"recent_enrollments": recentEnrollments,
	})
}

// UserRegistrations aggregates user counts for the admin dashboard.
func UserRegistrations(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers int64
	if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user statistics!", nil)
	}

	type roleCount struct {
		Role  string `json:"role"`
		Count int64  `json:"count"`
	}

	var usersByRole []roleCount
	db.Model(&models.UserRole{}).
		Select("role, COUNT(*) as count").
		Group("role").
		Scan(&usersByRole)

	cutoff := time.Now().AddDate(0, 0, -30)

	var recentRegistrations int64
	db.Model(&models.User{}).Where("created_at >= ?", cutoff).Count(&recentRegistrations)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User statistics fetched successfully.", fiber.Map{
		"total_users":          totalUsers,
		"users_by_role":        usersByRole,
		"recent_registrations": recentRegistrations,
	})
}
