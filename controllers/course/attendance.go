package courseController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseValidator "lms/validators/course"
	"log"

	"github.com/gofiber/fiber/v2"
)

// RecordAttendance upserts one student's presence for a session. Only the
// course's instructor/TA (or an admin) may record.
func RecordAttendance(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAttendance").(*courseValidator.AttendanceRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if !canManageGrades(db, user, reqData.CourseID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not assigned to this course!", nil)
	}

	var course models.Course
	if err := db.First(&course, reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	var student models.User
	if err := db.First(&student, reqData.StudentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	// Upsert per (course, student, date)
	var record models.Attendance
	err := db.Where("course_id = ? AND student_id = ? AND session_date = ?",
		reqData.CourseID, reqData.StudentID, reqData.ParsedDate).First(&record).Error
	if err == nil {
		record.Present = *reqData.Present
		record.RecordedBy = user.ID
		if err := db.Save(&record).Error; err != nil {
			log.Printf("Error updating attendance: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record attendance!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Attendance updated successfully.", record)
	}

	record = models.Attendance{
		CourseID:    reqData.CourseID,
		StudentID:   reqData.StudentID,
		SessionDate: reqData.ParsedDate,
		Present:     *reqData.Present,
		RecordedBy:  user.ID,
	}
	if err := db.Create(&record).Error; err != nil {
		log.Printf("Error recording attendance: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record attendance!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Attendance recorded successfully.", record)
}

// GetCourseAttendance lists the attendance sheet for one course.
func GetCourseAttendance(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	if !canManageGrades(db, user, uint(courseID)) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not assigned to this course!", nil)
	}

	var records []models.Attendance
	if err := db.Where("course_id = ?", courseID).Order("session_date desc").Find(&records).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attendance!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attendance fetched successfully.", records)
}

// GetAttendanceSummary returns present/total counts and the percentage for
// one (course, student) pair. A student with no recorded sessions gets 0.
func GetAttendanceSummary(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	studentID := c.Locals("studentID").(int)

	// Students may look up their own summary
	if uint(studentID) != user.ID && !canManageGrades(database.Database.Db, user, uint(courseID)) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized!", nil)
	}

	db := database.Database.Db

	var present, total int64
	db.Model(&models.Attendance{}).Where("course_id = ? AND student_id = ?", courseID, studentID).Count(&total)
	db.Model(&models.Attendance{}).Where("course_id = ? AND student_id = ? AND present = ?", courseID, studentID, true).Count(&present)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attendance summary fetched successfully.", fiber.Map{
		"course_id":  courseID,
		"student_id": studentID,
		"present":    present,
		"total":      total,
		"percentage": models.AttendancePercent(present, total),
	})
}
