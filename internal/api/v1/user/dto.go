package user

import (
	"time"

	"github.com/ItsMeSoumo/admindashboard/internal/models"
)

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=user trader"`
}

// UpdateUserRequest is the PATCH payload. money/profit overwrite the cached
// balances directly and only apply when no transactionType is present;
// transactionType together with amount appends a ledger entry instead.
type UpdateUserRequest struct {
	Username            *string  `json:"username,omitempty"`
	IsAcceptingMessages *bool    `json:"isAcceptingMessages,omitempty"`
	Money               *float64 `json:"money,omitempty"`
	Profit              *float64 `json:"profit,omitempty"`
	TransactionType     string   `json:"transactionType,omitempty" binding:"omitempty,oneof=deposit withdrawal profit loss"`
	Amount              *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Description         string   `json:"description,omitempty"`
}

type UserResponse struct {
	ID                  uint                 `json:"id"`
	Username            string               `json:"username"`
	Email               string               `json:"email"`
	Role                string               `json:"role"`
	Money               float64              `json:"money"`
	PresentMoney        float64              `json:"presentmoney"`
	Profit              float64              `json:"profit"`
	IsVerified          bool                 `json:"isVerified"`
	IsAcceptingMessages bool                 `json:"isAcceptingMessages"`
	Transactions        []models.Transaction `json:"transactions"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

func toUserResponse(u models.User) UserResponse {
	transactions := u.Transactions
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return UserResponse{
		ID:                  u.ID,
		Username:            u.Username,
		Email:               u.Email,
		Role:                u.Role,
		Money:               u.Money,
		PresentMoney:        u.PresentMoney,
		Profit:              u.Profit,
		IsVerified:          u.IsVerified,
		IsAcceptingMessages: u.IsAcceptingMessages,
		Transactions:        transactions,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}
