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

type assignmentDetail struct {
	models.CourseAssignment
	UserName    string `json:"user_name"`
	CourseTitle string `json:"course_title"`
}

// AdminGetAssignments lists every instructor/TA course assignment.
func AdminGetAssignments(c *fiber.Ctx) error {
	var assignments []models.CourseAssignment
	err := database.Database.Db.Preload("User").Preload("Course").Order("created_at desc").Find(&assignments).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course assignments!", nil)
	}

	result := make([]assignmentDetail, len(assignments))
	for i, a := range assignments {
		result[i] = assignmentDetail{
			CourseAssignment: a,
			UserName:         a.User.Username,
			CourseTitle:      a.Course.Title,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course assignments fetched successfully.", result)
}

// AdminCreateAssignment links an instructor/TA to a course. The assignee
// must already hold the role being assigned.
func AdminCreateAssignment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAssignment").(*courseValidator.AssignmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Preload("Roles").First(&user, reqData.UserID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if !user.HasRole(models.RoleInstructor) && !user.HasRole(models.RoleTeachingAssistant) {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"user_id": "User must have instructor or teaching_assistant role to be assigned to a course!",
		})
	}

	var course models.Course
	if err := db.First(&course, reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var existing models.CourseAssignment
	err := db.Where("user_id = ? AND course_id = ? AND role = ?", reqData.UserID, reqData.CourseID, reqData.Role).First(&existing).Error
	if err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Assignment already exists for this user, course, and role!", nil)
	}

	assignment := models.CourseAssignment{
		UserID:   reqData.UserID,
		CourseID: reqData.CourseID,
		Role:     reqData.Role,
	}

	if err := db.Create(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Assignment already exists for this user, course, and role!", nil)
		}
		log.Printf("Error creating course assignment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course assignment created successfully.", assignment)
}

// AdminDeleteAssignment removes an instructor/TA assignment.
func AdminDeleteAssignment(c *fiber.Ctx) error {
	assignmentID := c.Locals("assignmentID").(int)

	db := database.Database.Db

	var assignment models.CourseAssignment
	if err := db.First(&assignment, assignmentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course assignment not found!", nil)
	}

	if err := db.Unscoped().Delete(&assignment).Error; err != nil {
		log.Printf("Error deleting course assignment %d: %v", assignmentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course assignment deleted successfully.", nil)
}
