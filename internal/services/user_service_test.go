package services

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ItsMeSoumo/admindashboard/internal/database"
	"github.com/ItsMeSoumo/admindashboard/internal/models"
)

func setupUserTestDB() {
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

func setupUserTestRedis() *miniredis.Miniredis {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}
	database.RedisClient = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return mr
}

func TestApplyTransaction(t *testing.T) {
	tests := []struct {
		name    string
		start   Balances
		typ     models.TransactionType
		amount  float64
		want    Balances
		wantErr bool
	}{
		{
			name:   "deposit adds to money",
			start:  Balances{Money: 50},
			typ:    models.TransactionTypeDeposit,
			amount: 100,
			want:   Balances{Money: 150},
		},
		{
			name:   "withdrawal can go negative",
			start:  Balances{Money: 30},
			typ:    models.TransactionTypeWithdrawal,
			amount: 100,
			want:   Balances{Money: -70},
		},
		{
			name:   "profit adds to profit and money",
			start:  Balances{Money: 200, Profit: 10},
			typ:    models.TransactionTypeProfit,
			amount: 40,
			want:   Balances{Money: 240, Profit: 50},
		},
		{
			name:   "loss subtracts from profit and money",
			start:  Balances{Money: 200, Profit: 10},
			typ:    models.TransactionTypeLoss,
			amount: 30,
			want:   Balances{Money: 170, Profit: -20},
		},
		{
			name:   "present money untouched",
			start:  Balances{Money: 100, PresentMoney: 80},
			typ:    models.TransactionTypeDeposit,
			amount: 20,
			want:   Balances{Money: 120, PresentMoney: 80},
		},
		{
			name:    "unknown type rejected",
			start:   Balances{Money: 100},
			typ:     "bonus",
			amount:  5,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyTransaction(tt.start, tt.typ, tt.amount)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateUser(t *testing.T) {
	setupUserTestDB()

	created, err := CreateUser(CreateUserInput{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, "alice@example.com", created.Email)
	assert.Equal(t, "user", created.Role)
	assert.True(t, created.IsVerified)
	assert.True(t, created.IsAcceptingMessages)
	assert.Equal(t, 0.0, created.Money)
	assert.Equal(t, 0.0, created.Profit)

	// Password is stored hashed
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret123")))

	_, err = CreateUser(CreateUserInput{Username: "alice2", Email: "alice@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = CreateUser(CreateUserInput{Username: "alice", Email: "other@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUpdateUserFinances_Transaction(t *testing.T) {
	setupUserTestDB()

	user := models.User{Username: "bob", Email: "bob@example.com", Password: "x", Money: 50}
	database.DB.Create(&user)

	amount := 100.0
	updated, err := UpdateUserFinances(user.ID, FinanceUpdate{
		TransactionType: models.TransactionTypeDeposit,
		Amount:          &amount,
		Description:     "wire transfer",
	})
	assert.NoError(t, err)
	assert.Equal(t, 150.0, updated.Money)
	if assert.Len(t, updated.Transactions, 1) {
		assert.Equal(t, models.TransactionTypeDeposit, updated.Transactions[0].Type)
		assert.Equal(t, 100.0, updated.Transactions[0].Amount)
	}

	// A second transaction lands at the head of the ledger.
	loss := 30.0
	updated, err = UpdateUserFinances(user.ID, FinanceUpdate{
		TransactionType: models.TransactionTypeLoss,
		Amount:          &loss,
	})
	assert.NoError(t, err)
	assert.Equal(t, 120.0, updated.Money)
	assert.Equal(t, -30.0, updated.Profit)
	if assert.Len(t, updated.Transactions, 2) {
		assert.Equal(t, models.TransactionTypeLoss, updated.Transactions[0].Type)
	}
}

func TestUpdateUserFinances_DirectOverwrite(t *testing.T) {
	setupUserTestDB()

	user := models.User{Username: "carol", Email: "carol@example.com", Password: "x", Money: 10, Profit: 5}
	database.DB.Create(&user)

	money := 500.0
	profit := 77.0
	updated, err := UpdateUserFinances(user.ID, FinanceUpdate{Money: &money, Profit: &profit})
	assert.NoError(t, err)
	assert.Equal(t, 500.0, updated.Money)
	assert.Equal(t, 77.0, updated.Profit)
	assert.Empty(t, updated.Transactions)

	// Direct overwrite is ignored when a transaction is requested.
	amount := 10.0
	moneyAgain := 9999.0
	updated, err = UpdateUserFinances(user.ID, FinanceUpdate{
		Money:           &moneyAgain,
		TransactionType: models.TransactionTypeDeposit,
		Amount:          &amount,
	})
	assert.NoError(t, err)
	assert.Equal(t, 510.0, updated.Money)
}

func TestUpdateUserFinances_Errors(t *testing.T) {
	setupUserTestDB()

	user := models.User{Username: "dave", Email: "dave@example.com", Password: "x"}
	database.DB.Create(&user)

	_, err := UpdateUserFinances(user.ID, FinanceUpdate{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)

	// Transaction type without an amount updates nothing.
	_, err = UpdateUserFinances(user.ID, FinanceUpdate{TransactionType: models.TransactionTypeDeposit})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)

	bad := -5.0
	_, err = UpdateUserFinances(user.ID, FinanceUpdate{
		TransactionType: models.TransactionTypeDeposit,
		Amount:          &bad,
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = UpdateUserFinances(9999, FinanceUpdate{TransactionType: models.TransactionTypeDeposit})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByID_Cache(t *testing.T) {
	setupUserTestDB()
	mr := setupUserTestRedis()
	defer mr.Close()

	user := models.User{Username: "erin", Email: "erin@example.com", Password: "x", Money: 42}
	database.DB.Create(&user)

	got, err := FindUserByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 42.0, got.Money)

	// Second read is served from the cache.
	assert.True(t, mr.Exists("user:1"))
	database.DB.Model(&models.User{}).Where("id = ?", user.ID).Update("money", 100)

	got, err = FindUserByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 42.0, got.Money)

	// Mutation through the service invalidates the entry.
	money := 7.0
	_, err = UpdateUserFinances(user.ID, FinanceUpdate{Money: &money})
	assert.NoError(t, err)
	assert.False(t, mr.Exists("user:1"))

	got, err = FindUserByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 7.0, got.Money)
}

func TestDeleteUser(t *testing.T) {
	setupUserTestDB()

	user := models.User{Username: "frank", Email: "frank@example.com", Password: "x"}
	database.DB.Create(&user)
	database.DB.Create(&models.Transaction{UserID: user.ID, Type: models.TransactionTypeDeposit, Amount: 10})

	assert.NoError(t, DeleteUser(user.ID))
	assert.ErrorIs(t, DeleteUser(user.ID), ErrUserNotFound)

	var count int64
	database.DB.Model(&models.Transaction{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestGenerateLedgerCSV(t *testing.T) {
	transactions := []models.Transaction{
		{ID: 1, Type: models.TransactionTypeDeposit, Amount: 100, Description: "initial"},
		{ID: 2, Type: models.TransactionTypeLoss, Amount: 30},
	}

	content, err := GenerateLedgerCSV(transactions)
	assert.NoError(t, err)

	s := string(content)
	assert.Contains(t, s, "ID,Date,Type,Amount,Description")
	assert.Contains(t, s, "deposit,100.00,initial")
	assert.Contains(t, s, "loss,30.00")
}
