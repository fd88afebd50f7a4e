package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ItsMeSoumo/admindashboard/internal/database"
	"github.com/ItsMeSoumo/admindashboard/internal/models"
)

var (
	ErrTradeNotFound = errors.New("trade record not found")
	ErrInvalidDay    = errors.New("invalid day of week")
)

// TradeFilter defines criteria for filtering trade records
type TradeFilter struct {
	TraderID *uint
	UserID   *uint
}

// FindTrades retrieves trade records matching the filter, newest first, with
// the owning trader and linked user populated on each record.
func FindTrades(filter TradeFilter) ([]models.TradeRecord, error) {
	query := database.DB.Model(&models.TradeRecord{}).
		Preload("Trader").
		Preload("User")

	if filter.TraderID != nil {
		query = query.Where("trader_id = ?", *filter.TraderID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var records []models.TradeRecord
	if err := query.Order("date DESC, id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// WeeklySummary is one weekday bucket of a trader's aggregated trades.
type WeeklySummary struct {
	Day             string  `json:"day"`
	TotalTrades     int64   `json:"totalTrades"`
	TotalAmount     float64 `json:"totalAmount"`
	TotalProfitLoss float64 `json:"totalProfitLoss"`
}

// SummarizeWeekly folds trade records into a fixed seven-entry list, one per
// canonical weekday name in Monday-to-Sunday order. Days without trades get
// all-zero entries. Records carrying an unknown day label are dropped.
func SummarizeWeekly(records []models.TradeRecord) []WeeklySummary {
	buckets := make(map[string]*WeeklySummary, len(models.DaysOfWeek))
	for _, day := range models.DaysOfWeek {
		buckets[day] = &WeeklySummary{Day: day}
	}

	for _, r := range records {
		b, ok := buckets[r.Day]
		if !ok {
			continue
		}
		b.TotalTrades++
		b.TotalAmount += r.Amount
		b.TotalProfitLoss += r.ProfitLoss
	}

	summary := make([]WeeklySummary, 0, len(models.DaysOfWeek))
	for _, day := range models.DaysOfWeek {
		summary = append(summary, *buckets[day])
	}
	return summary
}

// WeeklySummaryForTrader aggregates all of one trader's trades by weekday.
func WeeklySummaryForTrader(traderID uint) ([]WeeklySummary, error) {
	if _, err := FindTraderByID(traderID); err != nil {
		return nil, err
	}

	var records []models.TradeRecord
	if err := database.DB.Where("trader_id = ?", traderID).Find(&records).Error; err != nil {
		return nil, err
	}

	return SummarizeWeekly(records), nil
}

type CreateTradeInput struct {
	TraderID   uint
	TradeType  models.TradeType
	Day        string
	Amount     float64
	ProfitLoss float64
	Date       *time.Time
}

// CreateTrade records a trade and bumps the owning trader's counters. The
// record is linked to the trader's first assigned user when one exists. Both
// writes happen in one DB transaction.
func CreateTrade(input CreateTradeInput) (*models.TradeRecord, error) {
	if !models.IsValidDay(input.Day) {
		return nil, ErrInvalidDay
	}

	var record models.TradeRecord

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var trader models.Trader
		if err := tx.First(&trader, input.TraderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTraderNotFound
			}
			return err
		}

		var userID *uint
		if len(trader.AssignedUsers) > 0 {
			first := trader.AssignedUsers[0]
			userID = &first
		}

		date := time.Now()
		if input.Date != nil {
			date = *input.Date
		}

		record = models.TradeRecord{
			TraderID:   trader.ID,
			UserID:     userID,
			TradeType:  input.TradeType,
			Day:        input.Day,
			Amount:     input.Amount,
			ProfitLoss: input.ProfitLoss,
			Date:       date,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		return tx.Model(&trader).Updates(map[string]interface{}{
			"total_trades":     trader.TotalTrades + 1,
			"profit_generated": trader.ProfitGenerated + input.ProfitLoss,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	invalidateTraderCache(input.TraderID)
	return &record, nil
}

// DeleteTrade removes a trade record and reverses its effect on the owning
// trader's counters. totalTrades is floored at zero; any effect the trade had
// on a linked user is not reversed.
func DeleteTrade(id uint) error {
	var traderID uint

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var record models.TradeRecord
		if err := tx.First(&record, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTradeNotFound
			}
			return err
		}
		traderID = record.TraderID

		if err := tx.Delete(&record).Error; err != nil {
			return err
		}

		var trader models.Trader
		if err := tx.First(&trader, record.TraderID).Error; err != nil {
			// Trader already gone; nothing to adjust.
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		totalTrades := trader.TotalTrades - 1
		if totalTrades < 0 {
			totalTrades = 0
		}

		return tx.Model(&trader).Updates(map[string]interface{}{
			"total_trades":     totalTrades,
			"profit_generated": trader.ProfitGenerated - record.ProfitLoss,
		}).Error
	})
	if err != nil {
		return err
	}

	invalidateTraderCache(traderID)
	return nil
}

// GenerateTradeCSV renders trade records as a CSV document.
func GenerateTradeCSV(records []models.TradeRecord) ([]byte, error) {
	b := &bytes.Buffer{}
	w := csv.NewWriter(b)

	header := []string{"ID", "Date", "Trader ID", "User ID", "Type", "Day", "Amount", "Profit/Loss"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, r := range records {
		userID := ""
		if r.UserID != nil {
			userID = fmt.Sprintf("%d", *r.UserID)
		}
		row := []string{
			fmt.Sprintf("%d", r.ID),
			r.Date.Format(time.RFC3339),
			fmt.Sprintf("%d", r.TraderID),
			userID,
			string(r.TradeType),
			r.Day,
			fmt.Sprintf("%.2f", r.Amount),
			fmt.Sprintf("%.2f", r.ProfitLoss),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}
