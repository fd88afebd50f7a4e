package tradehistory_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ItsMeSoumo/admindashboard/internal/api/v1/tradehistory"
	"github.com/ItsMeSoumo/admindashboard/internal/database"
	"github.com/ItsMeSoumo/admindashboard/internal/models"
	"github.com/ItsMeSoumo/admindashboard/internal/services"
)

func setupTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.User{}, &models.Transaction{}, &models.Trader{}, &models.TradeRecord{})
	if err := db.AutoMigrate(&models.User{}, &models.Transaction{}, &models.Trader{}, &models.TradeRecord{}); err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
	database.RedisClient = nil
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	tradehistory.RegisterRoutes(&r.RouterGroup)
	return r
}

func TestTradeLifecycle(t *testing.T) {
	setupTestDB()
	r := setupRouter()

	u := models.User{Username: "client", Email: "client@example.com", Password: "x"}
	database.DB.Create(&u)

	trader := models.Trader{
		Name:          "Trader One",
		Email:         "one@example.com",
		Password:      "x",
		AssignedUsers: datatypes.NewJSONSlice([]uint{u.ID}),
	}
	database.DB.Create(&trader)

	// Create a trade; it links to the trader's first assigned user.
	body := fmt.Sprintf(`{"traderId":%d,"tradeType":"buy","amount":500,"day":"Monday"}`, trader.ID)
	req, _ := http.NewRequest(http.MethodPost, "/tradeHistory", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Success bool               `json:"success"`
		Data    models.TradeRecord `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Success)
	if assert.NotNil(t, created.Data.UserID) {
		assert.Equal(t, u.ID, *created.Data.UserID)
	}

	// The weekly summary now shows one Monday trade.
	req, _ = http.NewRequest(http.MethodGet, fmt.Sprintf("/tradeHistory?summary=weekly&traderId=%d", trader.ID), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var summary struct {
		Success bool                     `json:"success"`
		Data    []services.WeeklySummary `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	if assert.Len(t, summary.Data, 7) {
		assert.Equal(t, "Monday", summary.Data[0].Day)
		assert.Equal(t, int64(1), summary.Data[0].TotalTrades)
		assert.Equal(t, 500.0, summary.Data[0].TotalAmount)
	}

	// Deleting the trade reverses the trader's counters.
	req, _ = http.NewRequest(http.MethodDelete, fmt.Sprintf("/tradeHistory?id=%d", created.Data.ID), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Trader
	database.DB.First(&updated, trader.ID)
	assert.Equal(t, 0, updated.TotalTrades)
	assert.Equal(t, 0.0, updated.ProfitGenerated)
}

func TestCreateTradeHandler_Validation(t *testing.T) {
	setupTestDB()
	r := setupRouter()

	trader := models.Trader{Name: "T", Email: "t@example.com", Password: "x"}
	database.DB.Create(&trader)

	// day outside the canonical weekday names
	body := fmt.Sprintf(`{"traderId":%d,"tradeType":"buy","amount":10,"day":"Someday"}`, trader.ID)
	req, _ := http.NewRequest(http.MethodPost, "/tradeHistory", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown trader
	req, _ = http.NewRequest(http.MethodPost, "/tradeHistory", bytes.NewBufferString(`{"traderId":999,"tradeType":"buy","amount":10,"day":"Monday"}`))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// missing required fields
	req, _ = http.NewRequest(http.MethodPost, "/tradeHistory", bytes.NewBufferString(`{"tradeType":"buy"}`))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListTradeHistory_Filters(t *testing.T) {
	setupTestDB()
	r := setupRouter()

	traderA := models.Trader{Name: "A", Email: "a@example.com", Password: "x"}
	traderB := models.Trader{Name: "B", Email: "b@example.com", Password: "x"}
	database.DB.Create(&traderA)
	database.DB.Create(&traderB)

	database.DB.Create(&models.TradeRecord{TraderID: traderA.ID, TradeType: models.TradeTypeBuy, Day: "Monday", Amount: 1})
	database.DB.Create(&models.TradeRecord{TraderID: traderA.ID, TradeType: models.TradeTypeSell, Day: "Friday", Amount: 2})
	database.DB.Create(&models.TradeRecord{TraderID: traderB.ID, TradeType: models.TradeTypeBuy, Day: "Monday", Amount: 3})

	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/tradeHistory?traderId=%d", traderA.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                 `json:"success"`
		Data    []models.TradeRecord `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)

	req, _ = http.NewRequest(http.MethodGet, "/tradeHistory", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 3)
}

func TestListTradeHistory_PopulatesDetails(t *testing.T) {
	setupTestDB()
	r := setupRouter()

	u := models.User{Username: "linked", Email: "linked@example.com", Password: "x"}
	database.DB.Create(&u)

	trader := models.Trader{Name: "Detail Trader", Email: "detail@example.com", Password: "x"}
	database.DB.Create(&trader)

	database.DB.Create(&models.TradeRecord{TraderID: trader.ID, UserID: &u.ID, TradeType: models.TradeTypeBuy, Day: "Monday", Amount: 40})

	req, _ := http.NewRequest(http.MethodGet, "/tradeHistory", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                 `json:"success"`
		Data    []models.TradeRecord `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	if assert.Len(t, resp.Data, 1) {
		if assert.NotNil(t, resp.Data[0].Trader) {
			assert.Equal(t, "Detail Trader", resp.Data[0].Trader.Name)
			assert.Equal(t, "detail@example.com", resp.Data[0].Trader.Email)
		}
		if assert.NotNil(t, resp.Data[0].User) {
			assert.Equal(t, "linked", resp.Data[0].User.Username)
		}
	}

	// Hashed passwords never leave the server.
	assert.NotContains(t, w.Body.String(), `"password"`)
}

func TestWeeklySummaryHandler_TraderNotFound(t *testing.T) {
	setupTestDB()
	r := setupRouter()

	req, _ := http.NewRequest(http.MethodGet, "/tradeHistory?summary=weekly&traderId=42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportTradeHistoryHandler(t *testing.T) {
	setupTestDB()
	r := setupRouter()

	trader := models.Trader{Name: "CSV", Email: "csv@example.com", Password: "x"}
	database.DB.Create(&trader)
	database.DB.Create(&models.TradeRecord{TraderID: trader.ID, TradeType: models.TradeTypeBuy, Day: "Monday", Amount: 500, ProfitLoss: 25})

	req, _ := http.NewRequest(http.MethodGet, "/tradeHistory/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "buy,Monday,500.00,25.00")
}
