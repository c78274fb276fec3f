package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lms/config"
	"lms/database"
	"lms/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	username := flag.String("username", envOr("ADMIN_USERNAME", "admin"), "admin username")
	email := flag.String("email", envOr("ADMIN_EMAIL", ""), "admin email")
	password := flag.String("password", envOr("ADMIN_PASSWORD", ""), "admin password")
	fullName := flag.String("full-name", envOr("ADMIN_FULL_NAME", "Administrator"), "admin full name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("Admin email and password are required (flags or ADMIN_EMAIL / ADMIN_PASSWORD)")
	}

	db := database.Database.Db

	var existing models.User
	err := db.Where("username = ? OR email = ?", *username, *email).First(&existing).Error
	if err == nil {
		log.Printf("User %q already exists (id=%d), ensuring admin role", existing.Username, existing.ID)
		role := models.UserRole{UserID: existing.ID, Role: models.RoleAdmin}
		if err := db.Where("user_id = ? AND role = ?", existing.ID, models.RoleAdmin).FirstOrCreate(&role).Error; err != nil {
			log.Fatalf("Failed to ensure admin role: %v", err)
		}
		log.Println("Done")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to look up existing user: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.User{
		Username: *username,
		Email:    *email,
		Password: string(hashed),
		FullName: *fullName,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserRole{UserID: admin.ID, Role: models.RoleAdmin}).Error
	})
	if err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Printf("Admin user %q created (id=%d)", admin.Username, admin.ID)
}
