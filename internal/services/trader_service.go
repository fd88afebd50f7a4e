package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ItsMeSoumo/admindashboard/internal/database"
	"github.com/ItsMeSoumo/admindashboard/internal/models"
)

var ErrTraderNotFound = errors.New("trader not found")
var ErrTraderEmailTaken = errors.New("trader with this email already exists")

type CreateTraderInput struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	TotalTrades     int
	ProfitGenerated float64
	IsVerified      *bool
	AssignedUsers   []uint
	Role            string
}

// CreateTrader creates a trader account. isVerified defaults to true and
// role to 'trader' unless the caller says otherwise.
func CreateTrader(input CreateTraderInput) (*models.Trader, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	var existing models.Trader
	if err := database.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrTraderEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	isVerified := true
	if input.IsVerified != nil {
		isVerified = *input.IsVerified
	}

	role := input.Role
	if role == "" {
		role = "trader"
	}

	assigned := input.AssignedUsers
	if assigned == nil {
		assigned = []uint{}
	}

	trader := models.Trader{
		Name:            input.Name,
		Email:           email,
		Phone:           input.Phone,
		Password:        string(hashedPassword),
		TotalTrades:     input.TotalTrades,
		ProfitGenerated: input.ProfitGenerated,
		IsVerified:      isVerified,
		Role:            role,
		AssignedUsers:   datatypes.NewJSONSlice(assigned),
	}

	if err := database.DB.Create(&trader).Error; err != nil {
		return nil, err
	}

	return &trader, nil
}

// FindTraders retrieves all traders, newest first.
func FindTraders() ([]models.Trader, error) {
	var traders []models.Trader
	if err := database.DB.Order("created_at DESC").Find(&traders).Error; err != nil {
		return nil, err
	}
	return traders, nil
}

// FindTraderByID fetches one trader, going through the Redis cache when
// available.
func FindTraderByID(id uint) (models.Trader, error) {
	cacheKey := fmt.Sprintf("trader:%d", id)
	if database.RedisClient != nil {
		val, err := database.RedisClient.Get(database.Ctx, cacheKey).Result()
		if err == nil {
			var trader models.Trader
			if err := json.Unmarshal([]byte(val), &trader); err == nil {
				return trader, nil
			}
		}
	}

	var trader models.Trader
	if err := database.DB.First(&trader, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return trader, ErrTraderNotFound
		}
		return trader, err
	}

	if database.RedisClient != nil {
		if data, err := json.Marshal(trader); err == nil {
			database.RedisClient.Set(database.Ctx, cacheKey, data, time.Hour)
		}
	}

	return trader, nil
}

// UpdateTrader applies a partial update to one trader. A supplied password is
// re-hashed before it is stored.
func UpdateTrader(id uint, updates map[string]interface{}) (*models.Trader, error) {
	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var trader models.Trader
	if err := tx.First(&trader, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTraderNotFound
		}
		return nil, err
	}

	if password, ok := updates["password"].(string); ok && password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		updates["password"] = string(hashedPassword)
	}

	if err := tx.Model(&trader).Updates(updates).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	invalidateTraderCache(id)

	database.DB.First(&trader, id)
	return &trader, nil
}

// DeleteTrader removes a trader. Its trade records and assigned users are
// deliberately left untouched.
func DeleteTrader(id uint) error {
	var trader models.Trader
	if err := database.DB.First(&trader, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTraderNotFound
		}
		return err
	}

	if err := database.DB.Delete(&trader).Error; err != nil {
		return err
	}

	invalidateTraderCache(id)
	return nil
}

func invalidateTraderCache(id uint) {
	if database.RedisClient != nil {
		database.RedisClient.Del(database.Ctx, fmt.Sprintf("trader:%d", id))
	}
}
