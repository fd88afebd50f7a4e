package models

import "time"

type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeProfit     TransactionType = "profit"
	TransactionTypeLoss       TransactionType = "loss"
)

// Transaction is a single immutable ledger entry on a user account.
type Transaction struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time       `gorm:"precision:3" json:"createdAt"`
	UserID      uint            `gorm:"index;not null" json:"userId"`
	Type        TransactionType `gorm:"type:varchar(20);not null" json:"type"`
	Amount      float64         `gorm:"type:decimal(20,8);not null" json:"amount"`
	Description string          `gorm:"type:text" json:"description"`
	Date        time.Time       `json:"date"`
}
