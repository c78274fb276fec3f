package authController

import (
	"errors"
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	authValidator "lms/validators/auth"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Register creates a user together with its initial role row in one
// transaction, then issues a token so the client is logged in immediately.
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Conflict pre-checks before attempting the write
	if err := db.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username already exists!", nil)
	}
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email already exists!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Username: reqData.Username,
		Email:    reqData.Email,
		Password: string(hashedPassword),
		FullName: reqData.FullName,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserRole{UserID: newUser.ID, Role: reqData.Role}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username or email already exists!", nil)
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	newUser.Roles = []models.UserRole{{UserID: newUser.ID, Role: reqData.Role}}

	token, err := middleware.GenerateJWT(&newUser)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"user":  newUser,
		"token": token,
	})
}

// Login authenticates by username OR email and returns a signed token.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	identifier := reqData.Identifier()

	var user models.User
	err := database.Database.Db.
		Preload("Roles", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Where("username = ? OR email = ?", identifier, identifier).
		First(&user).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	token, err := middleware.GenerateJWT(&user)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// ValidateToken confirms the bearer token still resolves to a live user.
func ValidateToken(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Token is valid.", fiber.Map{
		"valid": true,
		"user":  user,
	})
}

// GetProfile returns the caller's profile with the fresh role set.
func GetProfile(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully.", user)
}

// UpdateProfile updates profile fields and, when provided, the picture.
// Identity fields (username, email, full name) are not editable here.
func UpdateProfile(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*authValidator.UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	updates := map[string]interface{}{
		"gender":      reqData.Gender,
		"phone":       reqData.Phone,
		"country":     reqData.Country,
		"city":        reqData.City,
		"street":      reqData.Street,
		"postal_code": reqData.PostalCode,
	}

	if reqData.DOB != "" {
		dob, err := time.Parse("2006-01-02", reqData.DOB)
		if err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"dob": "Date of birth must be YYYY-MM-DD!"})
		}
		updates["dob"] = dob
	}

	if file, err := c.FormFile("profile_picture"); err == nil {
		filename, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
		if err != nil {
			return uploadErrorResponse(c, err)
		}
		updates["profile_picture"] = utils.GetFileURL(config.AppConfig.BaseURL, filename)
	}

	if err := database.Database.Db.Model(user).Updates(updates).Error; err != nil {
		log.Printf("Error updating profile for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully.", nil)
}

func uploadErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, utils.ErrFileTooBig):
		return middleware.JsonResponse(c, fiber.StatusRequestEntityTooLarge, false, "File too large. Maximum size is 5MB.", nil)
	case errors.Is(err, utils.ErrNotAnImage):
		return middleware.ValidationErrorResponse(c, map[string]string{"file": "Only image files are allowed!"})
	default:
		log.Printf("Error saving uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store file!", nil)
	}
}
