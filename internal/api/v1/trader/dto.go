package trader

type CreateTraderRequest struct {
	Name            string  `json:"name" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Phone           string  `json:"phone"`
	Password        string  `json:"password" binding:"required,min=6"`
	TotalTrades     int     `json:"totalTrades" binding:"omitempty,min=0"`
	ProfitGenerated float64 `json:"profitGenerated"`
	IsVerified      *bool   `json:"isVerified"`
	AssignedUsers   []uint  `json:"assignedUsers"`
	Role            string  `json:"role" binding:"omitempty,oneof=user trader"`
}

// UpdateTraderRequest carries a partial update; only non-nil fields are
// written.
type UpdateTraderRequest struct {
	Name            *string  `json:"name,omitempty"`
	Email           *string  `json:"email,omitempty" binding:"omitempty,email"`
	Phone           *string  `json:"phone,omitempty"`
	Password        *string  `json:"password,omitempty" binding:"omitempty,min=6"`
	TotalTrades     *int     `json:"totalTrades,omitempty" binding:"omitempty,min=0"`
	ProfitGenerated *float64 `json:"profitGenerated,omitempty"`
	IsVerified      *bool    `json:"isVerified,omitempty"`
	AssignedUsers   *[]uint  `json:"assignedUsers,omitempty"`
	Role            *string  `json:"role,omitempty" binding:"omitempty,oneof=user trader"`
}
