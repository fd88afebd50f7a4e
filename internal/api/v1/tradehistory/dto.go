package tradehistory

import "time"

type CreateTradeRequest struct {
	TraderID   uint       `json:"traderId" binding:"required"`
	TradeType  string     `json:"tradeType" binding:"required,oneof=buy sell"`
	Amount     float64    `json:"amount" binding:"required,gt=0"`
	ProfitLoss float64    `json:"profitLoss"`
	Day        string     `json:"day" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Date       *time.Time `json:"date"`
}
