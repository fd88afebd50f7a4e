package tradehistory

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ItsMeSoumo/admindashboard/internal/models"
	"github.com/ItsMeSoumo/admindashboard/internal/services"
	"github.com/ItsMeSoumo/admindashboard/internal/utils"
)

// ListTradeHistory godoc
// @Summary List trade history
// @Description Get trade records newest first, optionally filtered by trader or user. With summary=weekly and a traderId, returns the fixed Monday-to-Sunday aggregation instead.
// @Tags tradeHistory
// @Produce json
// @Param traderId query int false "Filter by trader ID"
// @Param userId query int false "Filter by user ID"
// @Param summary query string false "Set to 'weekly' for the weekday aggregation"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /tradeHistory [get]
func ListTradeHistory(c *gin.Context) {
	if c.Query("summary") == "weekly" && c.Query("traderId") != "" {
		traderID, ok := parseIDQuery(c, "traderId")
		if !ok {
			return
		}

		summary, err := services.WeeklySummaryForTrader(traderID)
		if err != nil {
			if errors.Is(err, services.ErrTraderNotFound) {
				c.JSON(http.StatusNotFound, utils.NewErrorResponse("Trader not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, utils.NewInternalErrorResponse("Error fetching trade history", err))
			return
		}

		c.JSON(http.StatusOK, utils.NewSuccessResponse("Weekly trade summary retrieved successfully", summary))
		return
	}

	filter, ok := filterFromQuery(c)
	if !ok {
		return
	}

	records, err := services.FindTrades(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewInternalErrorResponse("Error fetching trade history", err))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Trade history fetched successfully", records))
}

// CreateTrade godoc
// @Summary Create a trade record
// @Description Record a trade for a trader, linking it to the trader's first assigned user when one exists, and bump the trader's counters.
// @Tags tradeHistory
// @Accept json
// @Produce json
// @Param body body CreateTradeRequest true "Trade details"
// @Success 201 {object} utils.Response{data=models.TradeRecord}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /tradeHistory [post]
func CreateTrade(c *gin.Context) {
	var req CreateTradeRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	record, err := services.CreateTrade(services.CreateTradeInput{
		TraderID:   req.TraderID,
		TradeType:  models.TradeType(req.TradeType),
		Day:        req.Day,
		Amount:     req.Amount,
		ProfitLoss: req.ProfitLoss,
		Date:       req.Date,
	})
	if err != nil {
		if errors.Is(err, services.ErrTraderNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Trader not found"))
			return
		}
		if errors.Is(err, services.ErrInvalidDay) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid day of week"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewInternalErrorResponse("Error creating trade record", err))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Trade record created successfully", record))
}

// DeleteTrade godoc
// @Summary Delete a trade record
// @Description Delete a trade record and reverse its effect on the owning trader's counters (totalTrades floored at zero).
// @Tags tradeHistory
// @Produce json
// @Param id query int true "Trade ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /tradeHistory [delete]
func DeleteTrade(c *gin.Context) {
	idStr := c.Query("id")
	if idStr == "" {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Trade ID is required"))
		return
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid trade ID"))
		return
	}

	if err := services.DeleteTrade(uint(id)); err != nil {
		if errors.Is(err, services.ErrTradeNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Trade record not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewInternalErrorResponse("Error deleting trade record", err))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Trade record deleted successfully", nil))
}

// ExportTradeHistory godoc
// @Summary Export trade history
// @Description Download trade records as CSV, with the same filters as the list endpoint.
// @Tags tradeHistory
// @Produce text/csv
// @Param traderId query int false "Filter by trader ID"
// @Param userId query int false "Filter by user ID"
// @Success 200 {string} string "CSV content"
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /tradeHistory/export [get]
func ExportTradeHistory(c *gin.Context) {
	filter, ok := filterFromQuery(c)
	if !ok {
		return
	}

	records, err := services.FindTrades(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewInternalErrorResponse("Error fetching trade history", err))
		return
	}

	csvContent, err := services.GenerateTradeCSV(records)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewInternalErrorResponse("Failed to generate CSV", err))
		return
	}

	filename := fmt.Sprintf("trade_history_%s.csv", time.Now().Format("20060102150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv", csvContent)
}

func filterFromQuery(c *gin.Context) (services.TradeFilter, bool) {
	var filter services.TradeFilter

	if c.Query("traderId") != "" {
		traderID, ok := parseIDQuery(c, "traderId")
		if !ok {
			return filter, false
		}
		filter.TraderID = &traderID
	}
	if c.Query("userId") != "" {
		userID, ok := parseIDQuery(c, "userId")
		if !ok {
			return filter, false
		}
		filter.UserID = &userID
	}

	return filter, true
}

func parseIDQuery(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(c.Query(name))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(fmt.Sprintf("Invalid %s", name)))
		return 0, false
	}
	return uint(id), true
}
