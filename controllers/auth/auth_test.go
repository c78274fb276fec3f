package authController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lms/config"
	"lms/database"
	"lms/models"
	"lms/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:      "5000",
		JWTKey:    "test-secret-key",
		SaltRound: bcrypt.MinCost,
		UploadDir: t.TempDir(),
		BaseURL:   "http://localhost:5000",
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload
}

func register(t *testing.T, app *fiber.App, username, role string) map[string]interface{} {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodPost, "/api/register", "", fiber.Map{
		"username":  username,
		"email":     username + "@example.com",
		"password":  "password1234",
		"full_name": username + " Test",
		"role":      role,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decodeBody(t, resp)
}

func tokenClaims(t *testing.T, tokenString string) jwt.MapClaims {
	t.Helper()
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.AppConfig.JWTKey), nil
	})
	require.NoError(t, err)
	return token.Claims.(jwt.MapClaims)
}

func TestRegisterCreatesUserWithRole(t *testing.T) {
	app := setupApp(t)

	body := register(t, app, "alice", "student")
	data := body["data"].(map[string]interface{})
	require.NotEmpty(t, data["token"])

	claims := tokenClaims(t, data["token"].(string))
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, models.RoleStudent, claims["role"])

	var user models.User
	require.NoError(t, database.Database.Db.Preload("Roles").Where("username = ?", "alice").First(&user).Error)
	assert.Equal(t, []string{models.RoleStudent}, user.RoleNames())

	// The password hash never leaves the server
	userPayload := data["user"].(map[string]interface{})
	_, leaked := userPayload["password"]
	assert.False(t, leaked)
}

func TestRegisterConflicts(t *testing.T) {
	app := setupApp(t)
	register(t, app, "alice", "student")

	resp := doJSON(t, app, fiber.MethodPost, "/api/register", "", fiber.Map{
		"username":  "alice",
		"email":     "other@example.com",
		"password":  "password1234",
		"full_name": "Other Alice",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/register", "", fiber.Map{
		"username":  "alice2",
		"email":     "alice@example.com",
		"password":  "password1234",
		"full_name": "Other Alice",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestRegisterValidation(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/register", "", fiber.Map{
		"username":  "al",
		"email":     "not-an-email",
		"password":  "short",
		"full_name": "",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// Admin accounts cannot be self-registered
	resp = doJSON(t, app, fiber.MethodPost, "/api/register", "", fiber.Map{
		"username":  "mallory",
		"email":     "mallory@example.com",
		"password":  "password1234",
		"full_name": "Mallory",
		"role":      "admin",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestLoginByUsernameOrEmail(t *testing.T) {
	app := setupApp(t)
	register(t, app, "alice", "student")

	for _, identifier := range []string{"alice", "alice@example.com"} {
		resp := doJSON(t, app, fiber.MethodPost, "/api/login", "", fiber.Map{
			"login":    identifier,
			"password": "password1234",
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		data := decodeBody(t, resp)["data"].(map[string]interface{})
		claims := tokenClaims(t, data["token"].(string))
		assert.Equal(t, "alice", claims["username"])
		assert.Equal(t, models.RoleStudent, claims["role"])
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := setupApp(t)
	register(t, app, "alice", "student")

	resp := doJSON(t, app, fiber.MethodPost, "/api/login", "", fiber.Map{
		"login":    "alice",
		"password": "wrong-password",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/login", "", fiber.Map{
		"login":    "nobody",
		"password": "password1234",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestValidateTokenAgainstLiveUser(t *testing.T) {
	app := setupApp(t)
	body := register(t, app, "alice", "student")
	token := body["data"].(map[string]interface{})["token"].(string)

	resp := doJSON(t, app, fiber.MethodGet, "/api/validate-token", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// A token for a deleted user stops working immediately
	require.NoError(t, database.Database.Db.Unscoped().Where("username = ?", "alice").Delete(&models.User{}).Error)
	resp = doJSON(t, app, fiber.MethodGet, "/api/validate-token", token, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthHeaderVariants(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/profile", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/profile", "not-a-jwt", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUpdateProfileFields(t *testing.T) {
	app := setupApp(t)
	body := register(t, app, "alice", "student")
	token := body["data"].(map[string]interface{})["token"].(string)

	resp := doJSON(t, app, fiber.MethodPut, "/api/profile", token, fiber.Map{
		"gender":  "female",
		"phone":   "+15550100",
		"dob":     "1999-04-21",
		"country": "NZ",
		"city":    "Wellington",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var user models.User
	require.NoError(t, database.Database.Db.Where("username = ?", "alice").First(&user).Error)
	assert.Equal(t, "+15550100", user.Phone)
	assert.Equal(t, "Wellington", user.City)
	require.NotNil(t, user.DOB)
	assert.Equal(t, "1999-04-21", user.DOB.Format("2006-01-02"))

	// Malformed dates are rejected
	resp = doJSON(t, app, fiber.MethodPut, "/api/profile", token, fiber.Map{
		"dob": "21/04/1999",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
