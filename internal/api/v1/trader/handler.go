package trader

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/ItsMeSoumo/admindashboard/internal/services"
	"github.com/ItsMeSoumo/admindashboard/internal/utils"
)

// ListTraders godoc
// @Summary List traders
// @Description Get all traders newest first, or a single trader via the id query parameter.
// @Tags traders
// @Produce json
// @Param id query int false "Trader ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /traders [get]
func ListTraders(c *gin.Context) {
	if idStr := c.Query("id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil || id < 1 {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid trader ID"))
			return
		}
		getTraderByID(c, uint(id))
		return
	}

	traders, err := services.FindTraders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewInternalErrorResponse("Error fetching traders", err))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("All traders fetched", traders))
}

// CreateTrader godoc
// @Summary Create a trader
// @Description Create a trader account. isVerified defaults to true and role to 'trader'.
// @Tags traders
// @Accept json
// @Produce json
// @Param body body CreateTraderRequest true "Trader details"
// @Success 201 {object} utils.Response{data=models.Trader}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /traders [post]
func CreateTrader(c *gin.Context) {
	var req CreateTraderRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	created, err := services.CreateTrader(services.CreateTraderInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		TotalTrades:     req.TotalTrades,
		ProfitGenerated: req.ProfitGenerated,
		IsVerified:      req.IsVerified,
		AssignedUsers:   req.AssignedUsers,
		Role:            req.Role,
	})
	if err != nil {
		if errors.Is(err, services.ErrTraderEmailTaken) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewInternalErrorResponse("Error creating trader", err))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Trader created successfully", created))
}

// GetTrader godoc
// @Summary Get a trader
// @Tags traders
// @Produce json
// @Param id path int true "Trader ID"
// @Success 200 {object} utils.Response{data=models.Trader}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /traders/{id} [get]
func GetTrader(c *gin.Context) {
	id, ok := traderIDFromPath(c)
	if !ok {
		return
	}
	getTraderByID(c, id)
}

// UpdateTrader godoc
// @Summary Update a trader
// @Description Apply a partial update to a trader. A supplied password is re-hashed.
// @Tags traders
// @Accept json
// @Produce json
// @Param id path int true "Trader ID"
// @Param body body UpdateTraderRequest true "Fields to update"
// @Success 200 {object} utils.Response{data=models.Trader}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /traders/{id} [put]
func UpdateTrader(c *gin.Context) {
	id, ok := traderIDFromPath(c)
	if !ok {
		return
	}

	var req UpdateTraderRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Password != nil {
		updates["password"] = *req.Password
	}
	if req.TotalTrades != nil {
		updates["total_trades"] = *req.TotalTrades
	}
	if req.ProfitGenerated != nil {
		updates["profit_generated"] = *req.ProfitGenerated
	}
	if req.IsVerified != nil {
		updates["is_verified"] = *req.IsVerified
	}
	if req.AssignedUsers != nil {
		updates["assigned_users"] = datatypes.NewJSONSlice(*req.AssignedUsers)
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("No valid fields to update"))
		return
	}

	updated, err := services.UpdateTrader(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrTraderNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Trader not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewInternalErrorResponse("Error updating trader", err))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Trader updated successfully", updated))
}

// DeleteTrader godoc
// @Summary Delete a trader
// @Description Delete a trader. Trade records and assigned users are left untouched.
// @Tags traders
// @Produce json
// @Param id path int true "Trader ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /traders/{id} [delete]
func DeleteTrader(c *gin.Context) {
	id, ok := traderIDFromPath(c)
	if !ok {
		return
	}
	deleteTraderByID(c, id)
}

// DeleteTraderByQuery handles DELETE /traders?id= for callers using the
// query-parameter form.
func DeleteTraderByQuery(c *gin.Context) {
	idStr := c.Query("id")
	if idStr == "" {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Trader ID is required"))
		return
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid trader ID"))
		return
	}
	deleteTraderByID(c, uint(id))
}

func getTraderByID(c *gin.Context, id uint) {
	trader, err := services.FindTraderByID(id)
	if err != nil {
		if errors.Is(err, services.ErrTraderNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Trader not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewInternalErrorResponse("Error fetching trader", err))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Trader fetched", trader))
}

func deleteTraderByID(c *gin.Context, id uint) {
	if err := services.DeleteTrader(id); err != nil {
		if errors.Is(err, services.ErrTraderNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Trader not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewInternalErrorResponse("Error deleting trader", err))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Trader deleted successfully", nil))
}

func traderIDFromPath(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid trader ID"))
		return 0, false
	}
	return uint(id), true
}
