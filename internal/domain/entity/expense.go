// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory represents the spending category of an expense entry.
type ExpenseCategory string

const (
	ExpenseCategoryFood          ExpenseCategory = "food"
	ExpenseCategoryGrocery       ExpenseCategory = "grocery"
	ExpenseCategoryMedical       ExpenseCategory = "medical"
	ExpenseCategoryBills         ExpenseCategory = "bills"
	ExpenseCategoryEducation     ExpenseCategory = "education"
	ExpenseCategoryOnlineOrder   ExpenseCategory = "online_order"
	ExpenseCategoryRent          ExpenseCategory = "rent"
	ExpenseCategoryEntertainment ExpenseCategory = "entertainment"
	ExpenseCategoryShopping      ExpenseCategory = "shopping"
	ExpenseCategoryTravel        ExpenseCategory = "travel"
	ExpenseCategorySports        ExpenseCategory = "sports"
	ExpenseCategoryEMI           ExpenseCategory = "emi"
	ExpenseCategorySavings       ExpenseCategory = "savings"
	ExpenseCategoryDebt          ExpenseCategory = "debt"
	ExpenseCategoryLoan          ExpenseCategory = "loan"
	ExpenseCategoryOthers        ExpenseCategory = "others"
)

// expenseCategories is the set of accepted expense categories.
var expenseCategories = map[ExpenseCategory]struct{}{
	ExpenseCategoryFood:          {},
	ExpenseCategoryGrocery:       {},
	ExpenseCategoryMedical:       {},
	ExpenseCategoryBills:         {},
	ExpenseCategoryEducation:     {},
	ExpenseCategoryOnlineOrder:   {},
	ExpenseCategoryRent:          {},
	ExpenseCategoryEntertainment: {},
	ExpenseCategoryShopping:      {},
	ExpenseCategoryTravel:        {},
	ExpenseCategorySports:        {},
	ExpenseCategoryEMI:           {},
	ExpenseCategorySavings:       {},
	ExpenseCategoryDebt:          {},
	ExpenseCategoryLoan:          {},
	ExpenseCategoryOthers:        {},
}

// ValidExpenseCategory reports whether the given category is a known expense category.
func ValidExpenseCategory(c ExpenseCategory) bool {
	_, ok := expenseCategories[c]
	return ok
}

// PaymentMethod represents how an expense was paid.
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodEWallet    PaymentMethod = "e_wallet"
	PaymentMethodNetBanking PaymentMethod = "net_banking"
	PaymentMethodUPI        PaymentMethod = "upi"
)

// ValidPaymentMethod reports whether the given payment method is accepted.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodDebitCard,
		PaymentMethodEWallet, PaymentMethodNetBanking, PaymentMethodUPI:
		return true
	}
	return false
}

// Expense represents a single expense entry owned by one user.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Category    ExpenseCategory
	Description string
	Date        time.Time
	PaidVia     PaymentMethod
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity with a server-assigned id.
func NewExpense(
	userID uuid.UUID,
	amount decimal.Decimal,
	category ExpenseCategory,
	paidVia PaymentMethod,
	description string,
	date time.Time,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
		PaidVia:     paidVia,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
