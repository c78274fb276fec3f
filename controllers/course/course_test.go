package courseController_test

import (
	"fmt"
	"testing"

	"lms/database"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicCourseListHidesInvisible(t *testing.T) {
	app := setupApp(t)
	visible := createCourse(t, "Go Fundamentals", true)
	hidden := createCourse(t, "Hidden Draft", false)

	resp := doJSON(t, app, fiber.MethodGet, "/api/courses", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	rows := decodeBody(t, resp)["data"].([]interface{})
	require.Len(t, rows, 1)
	assert.Equal(t, visible.Title, rows[0].(map[string]interface{})["title"])

	// Hidden course details are a 404 for the public
	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/courses/%d", hidden.ID), "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/courses/%d", visible.ID), "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestPublicCourseListCountsEnrollments(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "alice", models.RoleStudent)
	course := createCourse(t, "Go Fundamentals", true)

	enroll(t, app, token, course.ID)

	resp := doJSON(t, app, fiber.MethodGet, "/api/courses", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	rows := decodeBody(t, resp)["data"].([]interface{})
	require.Len(t, rows, 1)
	assert.EqualValues(t, 1, rows[0].(map[string]interface{})["current_enrollments"])
}

func TestAdminCourseListIncludesHidden(t *testing.T) {
	app := setupApp(t)
	_, adminToken := createUser(t, "root", models.RoleAdmin)
	createCourse(t, "Go Fundamentals", true)
	createCourse(t, "Hidden Draft", false)

	resp := doJSON(t, app, fiber.MethodGet, "/api/admin/courses", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	rows := decodeBody(t, resp)["data"].([]interface{})
	assert.Len(t, rows, 2)
}

func TestCreateCourseTitleConflict(t *testing.T) {
	app := setupApp(t)
	_, adminToken := createUser(t, "root", models.RoleAdmin)
	createCourse(t, "Go Fundamentals", true)

	resp := doJSON(t, app, fiber.MethodPost, "/api/courses", adminToken, fiber.Map{
		"title":       "Go Fundamentals",
		"description": "A second course with the same name",
		"price":       10.0,
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/courses", adminToken, fiber.Map{
		"title":       "Advanced Go",
		"description": "Concurrency and internals",
		"price":       199.0,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestCreateCourseValidation(t *testing.T) {
	app := setupApp(t)
	_, adminToken := createUser(t, "root", models.RoleAdmin)

	resp := doJSON(t, app, fiber.MethodPost, "/api/courses", adminToken, fiber.Map{
		"title": "No description or price",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/courses", adminToken, fiber.Map{
		"title":       "Negative",
		"description": "Priced below zero",
		"price":       -5.0,
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestDeleteCourseCascades(t *testing.T) {
	app := setupApp(t)
	student, studentToken := createUser(t, "alice", models.RoleStudent)
	instructor, _ := createUser(t, "ivan", models.RoleInstructor)
	_, adminToken := createUser(t, "root", models.RoleAdmin)
	course := createCourse(t, "Go Fundamentals", true)

	enroll(t, app, studentToken, course.ID)
	require.NoError(t, database.Database.Db.Create(&models.CourseAssignment{
		UserID:   instructor.ID,
		CourseID: course.ID,
		Role:     models.RoleInstructor,
	}).Error)
	recordSessions(t, course.ID, student.ID, instructor.ID, true, false)

	resp := doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/courses/%d", course.ID), adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	for _, model := range []interface{}{&models.Enrollment{}, &models.Attendance{}, &models.CourseAssignment{}} {
		var count int64
		database.Database.Db.Model(model).Where("course_id = ?", course.ID).Count(&count)
		assert.Zero(t, count)
	}

	var count int64
	database.Database.Db.Model(&models.Course{}).Where("id = ?", course.ID).Count(&count)
	assert.Zero(t, count)
}

func TestStudentCoursesListsEnrollments(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "alice", models.RoleStudent)
	course := createCourse(t, "Go Fundamentals", true)
	createCourse(t, "Unenrolled Course", true)

	enroll(t, app, token, course.ID)

	resp := doJSON(t, app, fiber.MethodGet, "/api/student/courses", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	rows := decodeBody(t, resp)["data"].([]interface{})
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, course.Title, row["title"])
	assert.Equal(t, models.EnrollmentPending, row["status"])
}
