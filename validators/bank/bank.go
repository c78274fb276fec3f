package bankValidator

import (
	"lms/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type BankAccountRequest struct {
	BankName          string `json:"bank_name"`
	BankNumber        string `json:"bank_number"`
	AccountHolderName string `json:"account_holder_name"`
	BranchName        string `json:"branch_name"`
	AccountType       string `json:"account_type"`
	IsActive          *bool  `json:"is_active"`
}

// SaveBankAccount validates the create/update bank account body.
func SaveBankAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(BankAccountRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.BankName) == "" {
			errors["bank_name"] = "Bank name is required!"
		}
		if strings.TrimSpace(reqData.BankNumber) == "" {
			errors["bank_number"] = "Account number is required!"
		}
		if strings.TrimSpace(reqData.AccountHolderName) == "" {
			errors["account_holder_name"] = "Account holder name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		if reqData.AccountType == "" {
			reqData.AccountType = "savings"
		}

		c.Locals("validatedBankAccount", reqData)
		return c.Next()
	}
}
