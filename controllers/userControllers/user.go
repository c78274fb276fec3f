package userController

import (
	"errors"
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	userValidator "lms/validators/userValidator"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func sanitize(u *models.User) *models.User {
	u.Password = ""
	return u
}

// AdminGetUsers lists all users with their role sets.
func AdminGetUsers(c *fiber.Ctx) error {
	var users []models.User
	err := database.Database.Db.
		Preload("Roles", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Order("created_at desc").
		Find(&users).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	for i := range users {
		sanitize(&users[i])
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully.", users)
}

// AdminGetUserByID returns one user with roles.
func AdminGetUserByID(c *fiber.Ctx) error {
	userID := c.Locals("targetUserID").(int)

	var user models.User
	err := database.Database.Db.
		Preload("Roles", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		First(&user, userID).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully.", sanitize(&user))
}

// AdminCreateUser creates a user with a chosen role, admin included.
func AdminCreateUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateUser").(*userValidator.CreateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

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
		log.Printf("Error creating user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
	}

	newUser.Roles = []models.UserRole{{UserID: newUser.ID, Role: reqData.Role}}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully.", sanitize(&newUser))
}

// AdminUpdateUser changes identity fields; empty fields keep their values.
func AdminUpdateUser(c *fiber.Ctx) error {
	userID := c.Locals("targetUserID").(int)

	reqData, ok := c.Locals("validatedUpdateUser").(*userValidator.UpdateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	username := reqData.Username
	if username == "" {
		username = user.Username
	}
	email := reqData.Email
	if email == "" {
		email = user.Email
	}

	var conflict models.User
	if err := db.Where("(username = ? OR email = ?) AND id != ?", username, email, userID).First(&conflict).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username or email already exists!", nil)
	}

	user.Username = username
	user.Email = email
	if reqData.FullName != "" {
		user.FullName = reqData.FullName
	}

	if err := db.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username or email already exists!", nil)
		}
		log.Printf("Error updating user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	db.Preload("Roles", func(tx *gorm.DB) *gorm.DB { return tx.Order("id asc") }).First(&user, userID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully.", sanitize(&user))
}

// AdminDeleteUser removes a user with its roles and enrollments in one
// transaction. Admins cannot delete their own account.
func AdminDeleteUser(c *fiber.Ctx) error {
	userID := c.Locals("targetUserID").(int)

	actor, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if uint(userID) == actor.ID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cannot delete your own account!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.CourseAssignment{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&user).Error
	})
	if err != nil {
		log.Printf("Error deleting user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully.", nil)
}

// AdminGetUserRoles returns a user's role tags.
func AdminGetUserRoles(c *fiber.Ctx) error {
	userID := c.Locals("targetUserID").(int)

	var user models.User
	err := database.Database.Db.
		Preload("Roles", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		First(&user, userID).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User roles fetched successfully.", user.RoleNames())
}

// AdminUpdateUserRoles replaces a user's role set in one transaction. The
// primary role is derived from the new set's first element, so nothing else
// needs syncing.
func AdminUpdateUserRoles(c *fiber.Ctx) error {
	userID := c.Locals("targetUserID").(int)

	reqData, ok := c.Locals("validatedRoles").(*userValidator.RolesRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		for _, role := range reqData.Roles {
			if err := tx.Create(&models.UserRole{UserID: uint(userID), Role: role}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("Error updating roles for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user roles!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User roles updated successfully.", fiber.Map{
		"user_id": userID,
		"roles":   reqData.Roles,
	})
}
