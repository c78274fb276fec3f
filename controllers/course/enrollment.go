package courseController

import (
	"errors"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	courseValidator "lms/validators/course"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// enrollmentDetail carries the joined user/course display fields the admin
// table and the student dashboard both render.
type enrollmentDetail struct {
	models.Enrollment
	Username          string  `json:"username"`
	Email             string  `json:"email"`
	FullName          string  `json:"full_name"`
	CourseTitle       string  `json:"course_title"`
	CourseDescription string  `json:"course_description"`
	CoursePrice       float64 `json:"course_price"`
	CourseDuration    string  `json:"course_duration"`
}

func toDetail(e models.Enrollment, u models.User, course models.Course) enrollmentDetail {
	return enrollmentDetail{
		Enrollment:        e,
		Username:          u.Username,
		Email:             u.Email,
		FullName:          u.FullName,
		CourseTitle:       course.Title,
		CourseDescription: course.Description,
		CoursePrice:       course.Price,
		CourseDuration:    course.Duration,
	}
}

// EnrollInCourse creates a pending enrollment. The duplicate-pair check is
// repeated inside the transaction; the unique index on (user_id, course_id)
// backstops any race the pre-check loses.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedEnroll").(*courseValidator.EnrollRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var course models.Course
	if err := db.First(&course, reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	enrollment := models.Enrollment{
		UserID:       userID,
		CourseID:     reqData.CourseID,
		Status:       models.EnrollmentPending,
		PaymentProof: reqData.PaymentProof,
		BankAccount:  reqData.BankAccount,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var existing models.Enrollment
		if err := tx.Where("user_id = ? AND course_id = ?", userID, reqData.CourseID).First(&existing).Error; err == nil {
			return gorm.ErrDuplicatedKey
		}
		return tx.Create(&enrollment).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
		}
		log.Printf("Error creating enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrollment request submitted successfully.", enrollment)
}

// AdminGetEnrollments lists all enrollments with optional status, user,
// course and free-text filters.
func AdminGetEnrollments(c *fiber.Ctx) error {
	db := database.Database.Db

	query := db.Model(&models.Enrollment{}).
		Joins("JOIN users ON users.id = enrollments.user_id").
		Joins("JOIN courses ON courses.id = enrollments.course_id")

	if status := c.Query("status"); status != "" && status != "All" {
		if normalized, ok := models.NormalizeEnrollmentStatus(status); ok {
			query = query.Where("enrollments.status = ?", normalized)
		}
	}
	if user := c.Query("user"); user != "" {
		term := "%" + user + "%"
		query = query.Where("users.username LIKE ? OR users.email LIKE ? OR users.full_name LIKE ?", term, term, term)
	}
	if course := c.Query("course"); course != "" {
		query = query.Where("courses.title LIKE ?", "%"+course+"%")
	}
	if search := c.Query("search"); search != "" {
		term := "%" + search + "%"
		query = query.Where(
			"users.username LIKE ? OR users.email LIKE ? OR courses.title LIKE ? OR enrollments.status LIKE ?",
			term, term, term, term)
	}

	var enrollments []models.Enrollment
	if err := query.Preload("User").Preload("Course").Order("enrollments.created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	result := make([]enrollmentDetail, len(enrollments))
	for i, e := range enrollments {
		result[i] = toDetail(e, e.User, e.Course)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully.", result)
}

// GetMyEnrollments lists the caller's enrollments with course fields.
func GetMyEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []models.Enrollment
	err := database.Database.Db.
		Where("user_id = ?", userID).
		Preload("User").Preload("Course").
		Order("created_at desc").
		Find(&enrollments).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	result := make([]enrollmentDetail, len(enrollments))
	for i, e := range enrollments {
		result[i] = toDetail(e, e.User, e.Course)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully.", result)
}

// GetEnrollmentByID returns one enrollment. Only the enrolled user or an
// admin may view it, since it carries the payment proof reference.
func GetEnrollmentByID(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(int)

	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollment models.Enrollment
	err := database.Database.Db.Preload("User").Preload("Course").First(&enrollment, enrollmentID).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	if enrollment.UserID != user.ID && !user.HasRole(models.RoleAdmin) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment fetched successfully.", toDetail(enrollment, enrollment.User, enrollment.Course))
}

// AdminUpdateStatus moves an enrollment between pending, approved and
// rejected. Status and notes are written in one transaction so a failure
// leaves the row exactly as it was.
func AdminUpdateStatus(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(int)

	reqData, ok := c.Locals("validatedStatus").(*courseValidator.StatusRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	status, valid := models.NormalizeEnrollmentStatus(reqData.Status)
	if !valid {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"status": "Invalid status. Must be pending, approved, or rejected!",
		})
	}

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.Preload("User").Preload("Course").First(&enrollment, enrollmentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}
		if reqData.AdminNotes != "" {
			updates["admin_notes"] = reqData.AdminNotes
		}
		return tx.Model(&enrollment).Updates(updates).Error
	})
	if err != nil {
		log.Printf("Error updating enrollment %d status: %v", enrollmentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update enrollment status!", nil)
	}

	if status == models.EnrollmentApproved || status == models.EnrollmentRejected {
		go utils.SendEnrollmentDecisionEmail(enrollment.User.Email, enrollment.User.FullName, enrollment.Course.Title, status)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment "+status+" successfully.", fiber.Map{
		"id":           enrollment.ID,
		"status":       status,
		"user_email":   enrollment.User.Email,
		"course_title": enrollment.Course.Title,
	})
}

// canManageGrades reports whether the actor is an admin or an instructor/TA
// assigned to the course.
func canManageGrades(db *gorm.DB, user *models.User, courseID uint) bool {
	if user.HasRole(models.RoleAdmin) {
		return true
	}
	var assignment models.CourseAssignment
	err := db.Where("user_id = ? AND course_id = ? AND role IN ?",
		user.ID, courseID, []string{models.RoleInstructor, models.RoleTeachingAssistant}).
		First(&assignment).Error
	return err == nil
}

// UpdateGrade records a grade and completion flag. Restricted to admins and
// the instructors/TAs assigned to the enrollment's course.
func UpdateGrade(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(int)

	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedGrade").(*courseValidator.GradeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	grade, valid := models.NormalizeGrade(reqData.Grade)
	if !valid {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"grade": "Invalid grade. Must be one of A, B, C, D, F!",
		})
	}

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.First(&enrollment, enrollmentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	if !canManageGrades(db, user, enrollment.CourseID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not assigned to this course!", nil)
	}

	updates := map[string]interface{}{
		"grade":     grade,
		"completed": *reqData.Completed,
	}
	if err := db.Model(&enrollment).Updates(updates).Error; err != nil {
		log.Printf("Error updating enrollment %d grade: %v", enrollmentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update grade!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Grade updated successfully.", nil)
}

// AdminDeleteEnrollment hard-deletes an enrollment row.
func AdminDeleteEnrollment(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(int)

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.First(&enrollment, enrollmentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	if err := db.Unscoped().Delete(&enrollment).Error; err != nil {
		log.Printf("Error deleting enrollment %d: %v", enrollmentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment deleted successfully.", nil)
}

// GetCertificate checks the single server-side eligibility rule and, when
// it passes, returns the certificate payload for the enrollment.
func GetCertificate(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(int)

	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.Preload("User").Preload("Course").First(&enrollment, enrollmentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	if enrollment.UserID != user.ID && !user.HasRole(models.RoleAdmin) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized!", nil)
	}

	var present, total int64
	db.Model(&models.Attendance{}).
		Where("course_id = ? AND student_id = ?", enrollment.CourseID, enrollment.UserID).
		Count(&total)
	db.Model(&models.Attendance{}).
		Where("course_id = ? AND student_id = ? AND present = ?", enrollment.CourseID, enrollment.UserID, true).
		Count(&present)

	if !models.IsCertificateEligible(&enrollment, present, total) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false,
			"Not eligible for certificate. Course must be completed with a passing grade and at least 50% attendance.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate issued.", fiber.Map{
		"enrollment_id":      enrollment.ID,
		"student_name":       enrollment.User.FullName,
		"course_title":       enrollment.Course.Title,
		"grade":              enrollment.Grade,
		"attendance_percent": models.AttendancePercent(present, total),
		"issued_at":          time.Now().Format(time.RFC3339),
	})
}
