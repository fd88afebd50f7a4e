package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ItsMeSoumo/admindashboard/internal/database"
	"github.com/ItsMeSoumo/admindashboard/internal/models"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("user with this email already exists")
var ErrUsernameTaken = errors.New("username is already taken")
var ErrNoFieldsToUpdate = errors.New("no valid fields to update")
var ErrInvalidAmount = errors.New("amount must be a positive number")

// Balances is the trio of cached monetary fields on a user account.
type Balances struct {
	Money        float64
	PresentMoney float64
	Profit       float64
}

// ApplyTransaction computes the balances after applying one ledger entry.
// Withdrawals carry no sufficiency check and may drive money negative.
// PresentMoney is never touched by ledger arithmetic.
func ApplyTransaction(b Balances, typ models.TransactionType, amount float64) (Balances, error) {
	switch typ {
	case models.TransactionTypeDeposit:
		b.Money += amount
	case models.TransactionTypeWithdrawal:
		b.Money -= amount
	case models.TransactionTypeProfit:
		b.Profit += amount
		b.Money += amount
	case models.TransactionTypeLoss:
		b.Profit -= amount
		b.Money -= amount
	default:
		return b, fmt.Errorf("unknown transaction type: %s", typ)
	}
	return b, nil
}

type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// CreateUser creates a user account with zeroed balances and an empty ledger.
func CreateUser(input CreateUserInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	var existing models.User
	if err := database.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := database.DB.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = "user"
	}

	user := models.User{
		Username:            input.Username,
		Email:               email,
		Password:            string(hashedPassword),
		Role:                role,
		Money:               0,
		PresentMoney:        0,
		Profit:              0,
		IsVerified:          true,
		IsAcceptingMessages: true,
		Transactions:        []models.Transaction{},
	}

	if err := database.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// FindUsers retrieves all users with their ledgers, newest entry first.
func FindUsers() ([]models.User, error) {
	var users []models.User
	err := database.DB.
		Preload("Transactions", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC, id DESC")
		}).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// FindUserByID fetches one user, going through the Redis cache when available.
func FindUserByID(userID uint) (models.User, error) {
	cacheKey := fmt.Sprintf("user:%d", userID)
	if database.RedisClient != nil {
		val, err := database.RedisClient.Get(database.Ctx, cacheKey).Result()
		if err == nil {
			var user models.User
			if err := json.Unmarshal([]byte(val), &user); err == nil {
				return user, nil
			}
		}
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, ErrUserNotFound
		}
		return user, err
	}

	if database.RedisClient != nil {
		if data, err := json.Marshal(user); err == nil {
			database.RedisClient.Set(database.Ctx, cacheKey, data, time.Hour)
		}
	}

	return user, nil
}

// FinanceUpdate carries the PATCH payload. Direct Money/Profit overwrites
// apply only when no transaction is requested; a transaction needs both a
// type and an amount.
type FinanceUpdate struct {
	Username            *string
	IsAcceptingMessages *bool
	Money               *float64
	Profit              *float64
	TransactionType     models.TransactionType
	Amount              *float64
	Description         string
}

// UpdateUserFinances applies a profile/ledger update to one user inside a
// single DB transaction and returns the updated account with its ledger.
func UpdateUserFinances(id uint, upd FinanceUpdate) (*models.User, error) {
	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var user models.User
	if err := tx.First(&user, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if upd.Username != nil {
		updates["username"] = *upd.Username
	}
	if upd.IsAcceptingMessages != nil {
		updates["is_accepting_messages"] = *upd.IsAcceptingMessages
	}

	if upd.TransactionType == "" {
		if upd.Money != nil {
			updates["money"] = *upd.Money
		}
		if upd.Profit != nil {
			updates["profit"] = *upd.Profit
		}
	} else if upd.Amount != nil {
		if *upd.Amount <= 0 {
			tx.Rollback()
			return nil, ErrInvalidAmount
		}

		balances := Balances{Money: user.Money, PresentMoney: user.PresentMoney, Profit: user.Profit}
		balances, err := ApplyTransaction(balances, upd.TransactionType, *upd.Amount)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		updates["money"] = balances.Money
		updates["profit"] = balances.Profit

		entry := models.Transaction{
			UserID:      user.ID,
			Type:        upd.TransactionType,
			Amount:      *upd.Amount,
			Description: upd.Description,
			Date:        time.Now(),
		}
		if err := tx.Create(&entry).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if len(updates) == 0 {
		tx.Rollback()
		return nil, ErrNoFieldsToUpdate
	}

	if err := tx.Model(&user).Updates(updates).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	invalidateUserCache(id)

	var updated models.User
	err := database.DB.
		Preload("Transactions", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC, id DESC")
		}).
		First(&updated, id).Error
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteUser removes a user account. Ledger entries are removed with it;
// trader assignedUsers references are left dangling on purpose.
func DeleteUser(id uint) error {
	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := database.DB.Where("user_id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
		return err
	}
	if err := database.DB.Delete(&user).Error; err != nil {
		return err
	}

	invalidateUserCache(id)
	return nil
}

// FindTransactionsForUser returns one user's ledger, newest entry first.
func FindTransactionsForUser(userID uint) ([]models.Transaction, error) {
	if _, err := FindUserByID(userID); err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	err := database.DB.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// GenerateLedgerCSV renders a user's ledger entries as a CSV document.
func GenerateLedgerCSV(transactions []models.Transaction) ([]byte, error) {
	b := &bytes.Buffer{}
	w := csv.NewWriter(b)

	header := []string{"ID", "Date", "Type", "Amount", "Description"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, t := range transactions {
		row := []string{
			fmt.Sprintf("%d", t.ID),
			t.Date.Format(time.RFC3339),
			string(t.Type),
			fmt.Sprintf("%.2f", t.Amount),
			t.Description,
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

func invalidateUserCache(id uint) {
	if database.RedisClient != nil {
		database.RedisClient.Del(database.Ctx, fmt.Sprintf("user:%d", id))
	}
}
