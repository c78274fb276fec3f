package models

import "gorm.io/gorm"

// BankAccount is an admin-managed payment destination shown to students
// during enrollment.
type BankAccount struct {
	gorm.Model
	BankName          string `json:"bank_name" gorm:"not null"`
	BankNumber        string `json:"bank_number" gorm:"uniqueIndex;not null"`
	AccountHolderName string `json:"account_holder_name" gorm:"not null"`
	BranchName        string `json:"branch_name" gorm:"default:''"`
	AccountType       string `json:"account_type" gorm:"default:'savings'"`
	IsActive          bool   `json:"is_active" gorm:"not null"`
	CreatedBy         uint   `json:"created_by"`
	UpdatedBy         uint   `json:"updated_by"`
}
