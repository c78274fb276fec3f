package bankController

import (
	"errors"
	"fmt"
	"lms/database"
	"lms/middleware"
	"lms/models"
	bankValidator "lms/validators/bank"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetBankAccounts lists all payment destinations. Any authenticated user
// may read these since students need them to pay for courses.
func GetBankAccounts(c *fiber.Ctx) error {
	var accounts []models.BankAccount
	err := database.Database.Db.Order("bank_name, account_holder_name").Find(&accounts).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch bank accounts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bank accounts fetched successfully.", accounts)
}

// GetBankAccountByID returns one bank account.
func GetBankAccountByID(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(int)

	var account models.BankAccount
	if err := database.Database.Db.First(&account, accountID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Bank account not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bank account fetched successfully.", account)
}

// AdminCreateBankAccount inserts an account after an account-number
// conflict pre-check.
func AdminCreateBankAccount(c *fiber.Ctx) error {
	actor, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedBankAccount").(*bankValidator.BankAccountRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var existing models.BankAccount
	if err := db.Where("bank_number = ?", reqData.BankNumber).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false,
			fmt.Sprintf("Bank account number %q is already used by %s (%s)!", reqData.BankNumber, existing.BankName, existing.AccountHolderName), nil)
	}

	account := models.BankAccount{
		BankName:          reqData.BankName,
		BankNumber:        reqData.BankNumber,
		AccountHolderName: reqData.AccountHolderName,
		BranchName:        reqData.BranchName,
		AccountType:       reqData.AccountType,
		IsActive:          reqData.IsActive == nil || *reqData.IsActive,
		CreatedBy:         actor.ID,
		UpdatedBy:         actor.ID,
	}

	if err := db.Create(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Bank account number is already in use!", nil)
		}
		log.Printf("Error creating bank account: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create bank account!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Bank account created successfully.", account)
}

// AdminUpdateBankAccount rewrites an account after existence and
// account-number checks.
func AdminUpdateBankAccount(c *fiber.Ctx) error {
	actor, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	accountID := c.Locals("accountID").(int)

	reqData, ok := c.Locals("validatedBankAccount").(*bankValidator.BankAccountRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var account models.BankAccount
	if err := db.First(&account, accountID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Bank account not found!", nil)
	}

	var conflict models.BankAccount
	if err := db.Where("bank_number = ? AND id != ?", reqData.BankNumber, accountID).First(&conflict).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false,
			fmt.Sprintf("Bank account number %q is already used by %s (%s)!", reqData.BankNumber, conflict.BankName, conflict.AccountHolderName), nil)
	}

	account.BankName = reqData.BankName
	account.BankNumber = reqData.BankNumber
	account.AccountHolderName = reqData.AccountHolderName
	account.BranchName = reqData.BranchName
	account.AccountType = reqData.AccountType
	if reqData.IsActive != nil {
		account.IsActive = *reqData.IsActive
	}
	account.UpdatedBy = actor.ID

	if err := db.Save(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Bank account number is already in use!", nil)
		}
		log.Printf("Error updating bank account %d: %v", accountID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update bank account!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bank account updated successfully.", account)
}

// AdminDeleteBankAccount removes an account. A foreign-key failure means
// the account is referenced somewhere and surfaces as a conflict.
func AdminDeleteBankAccount(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(int)

	db := database.Database.Db

	var account models.BankAccount
	if err := db.First(&account, accountID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Bank account not found!", nil)
	}

	if err := db.Unscoped().Delete(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Cannot delete bank account as it is being used in the system!", nil)
		}
		log.Printf("Error deleting bank account %d: %v", accountID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete bank account!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bank account deleted successfully.", nil)
}
