package models

import "time"

type TradeType string

const (
	TradeTypeBuy  TradeType = "buy"
	TradeTypeSell TradeType = "sell"
)

// DaysOfWeek is the canonical weekday ordering used by the weekly summary.
var DaysOfWeek = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// TradeRecord is one executed trade. Day is caller-supplied and not derived
// from Date; the two can disagree. Trader and User are loaded for listings;
// the references themselves are unconstrained and a record can outlive either.
type TradeRecord struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	TraderID   uint      `gorm:"index;not null" json:"traderId"`
	Trader     *Trader   `gorm:"foreignKey:TraderID" json:"trader,omitempty"`
	UserID     *uint     `gorm:"index" json:"userId"`
	User       *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	TradeType  TradeType `gorm:"type:varchar(10);not null" json:"tradeType"`
	Day        string    `gorm:"type:varchar(10);not null" json:"day"`
	Amount     float64   `gorm:"type:decimal(20,8);not null" json:"amount"`
	ProfitLoss float64   `gorm:"type:decimal(20,8);not null;default:0" json:"profitLoss"`
	Date       time.Time `json:"date"`
}

// TableName overrides the table name
func (TradeRecord) TableName() string {
	return "trade_history"
}

// IsValidDay reports whether day is one of the seven canonical weekday names.
func IsValidDay(day string) bool {
	for _, d := range DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}
