package bankController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/routers/bankRoutes"

	"github.com/gofiber/fiber/v2"
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
	bankRoutes.SetupBankRoutes(app)
	return app
}

func createUser(t *testing.T, username string, roles ...string) (models.User, string) {
	t.Helper()

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
		FullName: username + " Test",
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	for _, role := range roles {
		require.NoError(t, database.Database.Db.Create(&models.UserRole{UserID: user.ID, Role: role}).Error)
	}
	require.NoError(t, database.Database.Db.Preload("Roles").First(&user, user.ID).Error)

	token, err := middleware.GenerateJWT(&user)
	require.NoError(t, err)
	return user, token
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

func TestBankAccountCreateAndConflict(t *testing.T) {
	app := setupApp(t)
	_, studentToken := createUser(t, "alice", models.RoleStudent)
	_, adminToken := createUser(t, "root", models.RoleAdmin)

	body := fiber.Map{
		"bank_name":           "Kiwibank",
		"bank_number":         "38-9000-0123456-00",
		"account_holder_name": "Noble Guards Academy",
	}

	// Creation is admin only
	resp := doJSON(t, app, fiber.MethodPost, "/api/bank-accounts", studentToken, body)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/bank-accounts", adminToken, body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Same account number is a conflict
	body["bank_name"] = "Another Bank"
	resp = doJSON(t, app, fiber.MethodPost, "/api/bank-accounts", adminToken, body)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// Any authenticated user may read the list
	resp = doJSON(t, app, fiber.MethodGet, "/api/bank-accounts", studentToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// But not anonymous visitors
	resp = doJSON(t, app, fiber.MethodGet, "/api/bank-accounts", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestBankAccountDelete(t *testing.T) {
	app := setupApp(t)
	_, adminToken := createUser(t, "root", models.RoleAdmin)

	account := models.BankAccount{
		BankName:          "Kiwibank",
		BankNumber:        "38-9000-0123456-00",
		AccountHolderName: "Noble Guards Academy",
		IsActive:          true,
	}
	require.NoError(t, database.Database.Db.Create(&account).Error)

	resp := doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/bank-accounts/%d", account.ID), adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.BankAccount{}).Count(&count)
	assert.Zero(t, count)
}
