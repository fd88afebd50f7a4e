package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"github.com/ItsMeSoumo/admindashboard/internal/database"
	"github.com/ItsMeSoumo/admindashboard/internal/models"
)

func TestSummarizeWeekly(t *testing.T) {
	records := []models.TradeRecord{
		{Day: "Friday", Amount: 500, ProfitLoss: 25},
		{Day: "Monday", Amount: 100, ProfitLoss: -10},
		{Day: "Friday", Amount: 200, ProfitLoss: 5},
		{Day: "Sunday", Amount: 50, ProfitLoss: 0},
	}

	summary := SummarizeWeekly(records)

	assert.Len(t, summary, 7)
	for i, day := range models.DaysOfWeek {
		assert.Equal(t, day, summary[i].Day)
	}

	var totalTrades int64
	for _, s := range summary {
		totalTrades += s.TotalTrades
	}
	assert.Equal(t, int64(len(records)), totalTrades)

	assert.Equal(t, int64(1), summary[0].TotalTrades) // Monday
	assert.Equal(t, 100.0, summary[0].TotalAmount)
	assert.Equal(t, -10.0, summary[0].TotalProfitLoss)

	assert.Equal(t, int64(2), summary[4].TotalTrades) // Friday
	assert.Equal(t, 700.0, summary[4].TotalAmount)
	assert.Equal(t, 30.0, summary[4].TotalProfitLoss)

	// Days without trades stay zeroed.
	assert.Equal(t, WeeklySummary{Day: "Tuesday"}, summary[1])
	assert.Equal(t, WeeklySummary{Day: "Saturday"}, summary[5])
}

func TestSummarizeWeekly_Empty(t *testing.T) {
	summary := SummarizeWeekly(nil)
	assert.Len(t, summary, 7)
	for i, day := range models.DaysOfWeek {
		assert.Equal(t, WeeklySummary{Day: day}, summary[i])
	}
}

func TestCreateTrade(t *testing.T) {
	setupUserTestDB()

	user := models.User{Username: "client", Email: "client@example.com", Password: "x"}
	database.DB.Create(&user)

	trader := models.Trader{
		Name:          "Trader One",
		Email:         "one@example.com",
		Password:      "x",
		AssignedUsers: datatypes.NewJSONSlice([]uint{user.ID}),
	}
	database.DB.Create(&trader)

	record, err := CreateTrade(CreateTradeInput{
		TraderID:   trader.ID,
		TradeType:  models.TradeTypeBuy,
		Day:        "Monday",
		Amount:     500,
		ProfitLoss: 25,
	})
	assert.NoError(t, err)
	if assert.NotNil(t, record.UserID) {
		assert.Equal(t, user.ID, *record.UserID)
	}
	assert.False(t, record.Date.IsZero())

	var updated models.Trader
	database.DB.First(&updated, trader.ID)
	assert.Equal(t, 1, updated.TotalTrades)
	assert.Equal(t, 25.0, updated.ProfitGenerated)

	_, err = CreateTrade(CreateTradeInput{TraderID: 9999, TradeType: models.TradeTypeSell, Day: "Monday", Amount: 1})
	assert.ErrorIs(t, err, ErrTraderNotFound)
}

func TestCreateTrade_InvalidDay(t *testing.T) {
	setupUserTestDB()

	trader := models.Trader{Name: "Day", Email: "day@example.com", Password: "x"}
	database.DB.Create(&trader)

	_, err := CreateTrade(CreateTradeInput{TraderID: trader.ID, TradeType: models.TradeTypeBuy, Day: "Someday", Amount: 10})
	assert.ErrorIs(t, err, ErrInvalidDay)

	var count int64
	database.DB.Model(&models.TradeRecord{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestFindTrades_PopulatesTraderAndUser(t *testing.T) {
	setupUserTestDB()

	user := models.User{Username: "linked", Email: "linked@example.com", Password: "x", Money: 300}
	database.DB.Create(&user)

	trader := models.Trader{Name: "Populated", Email: "pop@example.com", Password: "x"}
	database.DB.Create(&trader)

	database.DB.Create(&models.TradeRecord{TraderID: trader.ID, UserID: &user.ID, TradeType: models.TradeTypeBuy, Day: "Monday", Amount: 50})

	records, err := FindTrades(TradeFilter{})
	assert.NoError(t, err)
	if assert.Len(t, records, 1) {
		if assert.NotNil(t, records[0].Trader) {
			assert.Equal(t, "Populated", records[0].Trader.Name)
			assert.Equal(t, "pop@example.com", records[0].Trader.Email)
		}
		if assert.NotNil(t, records[0].User) {
			assert.Equal(t, "linked", records[0].User.Username)
			assert.Equal(t, 300.0, records[0].User.Money)
		}
	}
}

func TestCreateTrade_NoAssignedUsers(t *testing.T) {
	setupUserTestDB()

	trader := models.Trader{Name: "Solo", Email: "solo@example.com", Password: "x"}
	database.DB.Create(&trader)

	record, err := CreateTrade(CreateTradeInput{
		TraderID:  trader.ID,
		TradeType: models.TradeTypeSell,
		Day:       "Wednesday",
		Amount:    80,
	})
	assert.NoError(t, err)
	assert.Nil(t, record.UserID)
}

func TestDeleteTrade(t *testing.T) {
	setupUserTestDB()

	trader := models.Trader{
		Name:            "Trader Two",
		Email:           "two@example.com",
		Password:        "x",
		TotalTrades:     5,
		ProfitGenerated: 100,
	}
	database.DB.Create(&trader)

	record := models.TradeRecord{TraderID: trader.ID, TradeType: models.TradeTypeBuy, Day: "Monday", Amount: 500, ProfitLoss: 25}
	database.DB.Create(&record)

	assert.NoError(t, DeleteTrade(record.ID))

	var updated models.Trader
	database.DB.First(&updated, trader.ID)
	assert.Equal(t, 4, updated.TotalTrades)
	assert.Equal(t, 75.0, updated.ProfitGenerated)

	assert.ErrorIs(t, DeleteTrade(record.ID), ErrTradeNotFound)
}

func TestDeleteTrade_FloorsTotalTrades(t *testing.T) {
	setupUserTestDB()

	trader := models.Trader{Name: "Zero", Email: "zero@example.com", Password: "x", TotalTrades: 0, ProfitGenerated: 10}
	database.DB.Create(&trader)

	record := models.TradeRecord{TraderID: trader.ID, TradeType: models.TradeTypeSell, Day: "Tuesday", Amount: 10, ProfitLoss: 4}
	database.DB.Create(&record)

	assert.NoError(t, DeleteTrade(record.ID))

	var updated models.Trader
	database.DB.First(&updated, trader.ID)
	assert.Equal(t, 0, updated.TotalTrades)
	assert.Equal(t, 6.0, updated.ProfitGenerated)
}

func TestDeleteTrade_TraderGone(t *testing.T) {
	setupUserTestDB()

	record := models.TradeRecord{TraderID: 4242, TradeType: models.TradeTypeBuy, Day: "Friday", Amount: 10}
	database.DB.Create(&record)

	// Orphaned record deletes cleanly with no counters to adjust.
	assert.NoError(t, DeleteTrade(record.ID))
}

func TestWeeklySummaryForTrader(t *testing.T) {
	setupUserTestDB()

	trader := models.Trader{Name: "Agg", Email: "agg@example.com", Password: "x"}
	database.DB.Create(&trader)

	database.DB.Create(&models.TradeRecord{TraderID: trader.ID, TradeType: models.TradeTypeBuy, Day: "Monday", Amount: 500})
	database.DB.Create(&models.TradeRecord{TraderID: trader.ID, TradeType: models.TradeTypeSell, Day: "Monday", Amount: 100, ProfitLoss: -5})

	// Another trader's records never leak into the summary.
	other := models.Trader{Name: "Other", Email: "other-t@example.com", Password: "x"}
	database.DB.Create(&other)
	database.DB.Create(&models.TradeRecord{TraderID: other.ID, TradeType: models.TradeTypeBuy, Day: "Monday", Amount: 9999})

	summary, err := WeeklySummaryForTrader(trader.ID)
	assert.NoError(t, err)
	assert.Len(t, summary, 7)
	assert.Equal(t, int64(2), summary[0].TotalTrades)
	assert.Equal(t, 600.0, summary[0].TotalAmount)
	assert.Equal(t, -5.0, summary[0].TotalProfitLoss)

	_, err = WeeklySummaryForTrader(9999)
	assert.ErrorIs(t, err, ErrTraderNotFound)
}

func TestGenerateTradeCSV(t *testing.T) {
	uid := uint(3)
	records := []models.TradeRecord{
		{ID: 1, TraderID: 2, UserID: &uid, TradeType: models.TradeTypeBuy, Day: "Monday", Amount: 500, ProfitLoss: 25},
		{ID: 2, TraderID: 2, TradeType: models.TradeTypeSell, Day: "Friday", Amount: 80, ProfitLoss: -4},
	}

	content, err := GenerateTradeCSV(records)
	assert.NoError(t, err)

	s := string(content)
	assert.Contains(t, s, "ID,Date,Trader ID,User ID,Type,Day,Amount,Profit/Loss")
	assert.Contains(t, s, "buy,Monday,500.00,25.00")
	assert.Contains(t, s, "sell,Friday,80.00,-4.00")
}
