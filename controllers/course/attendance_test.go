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

func assignInstructor(t *testing.T, userID, courseID uint) {
	t.Helper()
	require.NoError(t, database.Database.Db.Create(&models.CourseAssignment{
		UserID:   userID,
		CourseID: courseID,
		Role:     models.RoleInstructor,
	}).Error)
}

func TestRecordAttendanceUpserts(t *testing.T) {
	app := setupApp(t)
	student, _ := createUser(t, "alice", models.RoleStudent)
	instructor, instructorToken := createUser(t, "ivan", models.RoleInstructor)
	course := createCourse(t, "Go Fundamentals", true)
	assignInstructor(t, instructor.ID, course.ID)

	body := fiber.Map{
		"course_id":    course.ID,
		"student_id":   student.ID,
		"session_date": "2026-03-02",
		"present":      true,
	}
	resp := doJSON(t, app, fiber.MethodPost, "/api/attendance", instructorToken, body)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Recording the same session again overwrites instead of duplicating
	body["present"] = false
	resp = doJSON(t, app, fiber.MethodPost, "/api/attendance", instructorToken, body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var records []models.Attendance
	require.NoError(t, database.Database.Db.
		Where("course_id = ? AND student_id = ?", course.ID, student.ID).
		Find(&records).Error)
	require.Len(t, records, 1)
	assert.False(t, records[0].Present)
	assert.Equal(t, instructor.ID, records[0].RecordedBy)
}

func TestRecordAttendanceRequiresAssignment(t *testing.T) {
	app := setupApp(t)
	student, studentToken := createUser(t, "alice", models.RoleStudent)
	_, instructorToken := createUser(t, "ivan", models.RoleInstructor)
	course := createCourse(t, "Go Fundamentals", true)

	body := fiber.Map{
		"course_id":    course.ID,
		"student_id":   student.ID,
		"session_date": "2026-03-02",
		"present":      true,
	}

	resp := doJSON(t, app, fiber.MethodPost, "/api/attendance", instructorToken, body)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/attendance", studentToken, body)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAttendanceSummary(t *testing.T) {
	app := setupApp(t)
	student, studentToken := createUser(t, "alice", models.RoleStudent)
	other, otherToken := createUser(t, "bob", models.RoleStudent)
	instructor, instructorToken := createUser(t, "ivan", models.RoleInstructor)
	course := createCourse(t, "Go Fundamentals", true)
	assignInstructor(t, instructor.ID, course.ID)

	recordSessions(t, course.ID, student.ID, instructor.ID, true, true, false, true)

	path := fmt.Sprintf("/api/attendance/summary/%d/%d", course.ID, student.ID)
	resp := doJSON(t, app, fiber.MethodGet, path, instructorToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.EqualValues(t, 3, data["present"])
	assert.EqualValues(t, 4, data["total"])
	assert.InDelta(t, 75.0, data["percentage"].(float64), 0.01)

	// A student may read their own summary
	resp = doJSON(t, app, fiber.MethodGet, path, studentToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// But not someone else's
	resp = doJSON(t, app, fiber.MethodGet, path, otherToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Zero recorded sessions reads as 0%, not an error
	emptyPath := fmt.Sprintf("/api/attendance/summary/%d/%d", course.ID, other.ID)
	resp = doJSON(t, app, fiber.MethodGet, emptyPath, otherToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data = decodeBody(t, resp)["data"].(map[string]interface{})
	assert.EqualValues(t, 0, data["total"])
	assert.InDelta(t, 0.0, data["percentage"].(float64), 0.001)
}

func TestCourseAttendanceSheetPermissions(t *testing.T) {
	app := setupApp(t)
	student, studentToken := createUser(t, "alice", models.RoleStudent)
	instructor, instructorToken := createUser(t, "ivan", models.RoleInstructor)
	course := createCourse(t, "Go Fundamentals", true)
	assignInstructor(t, instructor.ID, course.ID)

	recordSessions(t, course.ID, student.ID, instructor.ID, true, false)

	path := fmt.Sprintf("/api/attendance/course/%d", course.ID)
	resp := doJSON(t, app, fiber.MethodGet, path, instructorToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	rows := decodeBody(t, resp)["data"].([]interface{})
	assert.Len(t, rows, 2)

	resp = doJSON(t, app, fiber.MethodGet, path, studentToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
