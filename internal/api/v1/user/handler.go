package user

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

// ListUsers godoc
// @Summary List all users
// @Description Get all user accounts with their transaction ledgers, newest entry first.
// @Tags users
// @Produce json
// @Success 200 {object} utils.Response{data=[]UserResponse}
// @Failure 500 {object} utils.Response
// @Router /users [get]
func ListUsers(c *gin.Context) {
	users, err := services.FindUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewInternalErrorResponse("Error in fetching users", err))
		return
	}

	items := make([]UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, toUserResponse(u))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("All users fetched", items))
}

// CreateUser godoc
// @Summary Create a user
// @Description Create a user account with zeroed balances and an empty ledger.
// @Tags users
// @Accept json
// @Produce json
// @Param body body CreateUserRequest true "User details"
// @Success 201 {object} utils.Response{data=UserResponse}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /users [post]
func CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	created, err := services.CreateUser(services.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse("User with this email already exists"))
			return
		}
		if errors.Is(err, services.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Username is already taken"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewInternalErrorResponse("Error creating user", err))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("User created successfully", toUserResponse(*created)))
}

// UpdateUser godoc
// @Summary Update a user
// @Description Apply a transaction to the user's ledger or overwrite profile/balance fields directly.
// @Tags users
// @Accept json
// @Produce json
// @Param id query int true "User ID"
// @Param body body UpdateUserRequest true "Fields to update"
// @Success 200 {object} utils.Response{data=UserResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /users [patch]
func UpdateUser(c *gin.Context) {
	id, ok := userIDFromQuery(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	updated, err := services.UpdateUserFinances(id, services.FinanceUpdate{
		Username:            req.Username,
		IsAcceptingMessages: req.IsAcceptingMessages,
		Money:               req.Money,
		Profit:              req.Profit,
		TransactionType:     models.TransactionType(req.TransactionType),
		Amount:              req.Amount,
		Description:         req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("User not found"))
		case errors.Is(err, services.ErrNoFieldsToUpdate):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse("No valid fields to update"))
		case errors.Is(err, services.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewInternalErrorResponse("Error updating user", err))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User updated successfully", toUserResponse(*updated)))
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id query int true "User ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /users [delete]
func DeleteUser(c *gin.Context) {
	id, ok := userIDFromQuery(c)
	if !ok {
		return
	}

	if err := services.DeleteUser(id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("User not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewInternalErrorResponse("Error deleting user", err))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User deleted successfully", nil))
}

// ExportTransactions godoc
// @Summary Export a user's ledger
// @Description Download one user's transaction ledger as CSV, newest entry first.
// @Tags users
// @Produce text/csv
// @Param id query int true "User ID"
// @Success 200 {string} string "CSV content"
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /users/transactions/export [get]
func ExportTransactions(c *gin.Context) {
	id, ok := userIDFromQuery(c)
	if !ok {
		return
	}

	transactions, err := services.FindTransactionsForUser(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("User not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewInternalErrorResponse("Error fetching transactions", err))
		return
	}

	csvContent, err := services.GenerateLedgerCSV(transactions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewInternalErrorResponse("Failed to generate CSV", err))
		return
	}

	filename := fmt.Sprintf("transactions_%d_%s.csv", id, time.Now().Format("20060102150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv", csvContent)
}

func userIDFromQuery(c *gin.Context) (uint, bool) {
	idStr := c.Query("id")
	if idStr == "" {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("User ID is required"))
		return 0, false
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid user ID"))
		return 0, false
	}

	return uint(id), true
}
