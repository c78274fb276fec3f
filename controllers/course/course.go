package courseController

import (
	"errors"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseValidator "lms/validators/course"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type courseWithEnrollments struct {
	models.Course
	CurrentEnrollments int64 `json:"current_enrollments"`
}

// GetAllCourses lists visible courses with their enrollment counts.
func GetAllCourses(c *fiber.Ctx) error {
	db := database.Database.Db

	var courses []models.Course
	if err := db.Where("is_visible = ?", true).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	result := make([]courseWithEnrollments, len(courses))
	for i, course := range courses {
		var count int64
		db.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&count)
		result[i] = courseWithEnrollments{Course: course, CurrentEnrollments: count}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", result)
}

// GetCourseDetails returns one visible course.
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_visible = ?", courseID, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully.", course)
}

// AdminGetAllCourses lists every course including hidden ones.
func AdminGetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", courses)
}

// AdminCreateCourse inserts a course after a title conflict pre-check.
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("title = ?", reqData.Title).First(&models.Course{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A course with this title already exists!", nil)
	}

	course := models.Course{
		Title:           reqData.Title,
		Description:     reqData.Description,
		Price:           *reqData.Price,
		Duration:        reqData.Duration,
		Level:           reqData.Level,
		ImageURL:        reqData.ImageURL,
		EnrollmentLimit: reqData.EnrollmentLimit,
		IsVisible:       reqData.IsVisible == nil || *reqData.IsVisible,
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&course).Error; err != nil {
			return err
		}
		return tx.First(&course, course.ID).Error
	}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "A course with this title already exists!", nil)
		}
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course added successfully.", course)
}

// AdminUpdateCourse rewrites a course after existence and title checks.
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var conflict models.Course
	if err := db.Where("title = ? AND id != ?", reqData.Title, courseID).First(&conflict).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A course with this title already exists!", nil)
	}

	course.Title = reqData.Title
	course.Description = reqData.Description
	course.Price = *reqData.Price
	course.Duration = reqData.Duration
	course.Level = reqData.Level
	course.ImageURL = reqData.ImageURL
	course.EnrollmentLimit = reqData.EnrollmentLimit
	if reqData.IsVisible != nil {
		course.IsVisible = *reqData.IsVisible
	}

	if err := db.Save(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "A course with this title already exists!", nil)
		}
		log.Printf("Error updating course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully.", course)
}

// AdminDeleteCourse removes a course together with its enrollments in one
// transaction so no orphaned rows survive.
func AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("course_id = ?", courseID).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("course_id = ?", courseID).Delete(&models.Attendance{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("course_id = ?", courseID).Delete(&models.CourseAssignment{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&course).Error
	})
	if err != nil {
		log.Printf("Error deleting course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully.", nil)
}

// GetStudentCourses lists the courses the caller is enrolled in.
func GetStudentCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	type enrolledCourse struct {
		models.Course
		EnrolledAt string `json:"enrolled_at"`
		Status     string `json:"status"`
	}

	var enrollments []models.Enrollment
	if err := database.Database.Db.Where("user_id = ?", userID).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrolled courses!", nil)
	}

	result := make([]enrolledCourse, 0, len(enrollments))
	for _, e := range enrollments {
		var course models.Course
		if err := database.Database.Db.First(&course, e.CourseID).Error; err != nil {
			continue
		}
		result = append(result, enrolledCourse{
			Course:     course,
			EnrolledAt: e.CreatedAt.Format("2006-01-02 15:04:05"),
			Status:     e.Status,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched successfully.", result)
}
