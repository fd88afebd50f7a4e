package models

import (
	"time"

	"gorm.io/datatypes"
)

// Trader is a managed trading account. AssignedUsers holds user IDs as an
// unconstrained JSON list: the references carry no integrity guarantee and
// deleting a user does not touch them.
type Trader struct {
	ID              uint                      `gorm:"primarykey" json:"id"`
	CreatedAt       time.Time                 `json:"createdAt"`
	UpdatedAt       time.Time                 `json:"updatedAt"`
	Name            string                    `gorm:"not null" json:"name"`
	Email           string                    `gorm:"uniqueIndex;not null" json:"email"`
	Phone           string                    `gorm:"type:varchar(50)" json:"phone"`
	Password        string                    `gorm:"not null" json:"-"`
	TotalTrades     int                       `gorm:"not null;default:0" json:"totalTrades"`
	ProfitGenerated float64                   `gorm:"type:decimal(20,8);not null;default:0" json:"profitGenerated"`
	IsVerified      bool                      `gorm:"default:true" json:"isVerified"`
	Role            string                    `gorm:"type:varchar(20);not null;default:'trader'" json:"role"`
	AssignedUsers   datatypes.JSONSlice[uint] `json:"assignedUsers" swaggertype:"array,integer"`
}
