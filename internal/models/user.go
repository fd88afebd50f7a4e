package models

import "time"

type User struct {
	ID                  uint          `gorm:"primarykey" json:"id"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`
	Username            string        `gorm:"uniqueIndex;not null" json:"username"`
	Email               string        `gorm:"uniqueIndex;not null" json:"email"`
	Password            string        `gorm:"not null" json:"-"`
	Role                string        `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	Money               float64       `gorm:"type:decimal(20,8);not null;default:0" json:"money"`
	PresentMoney        float64       `gorm:"column:presentmoney;type:decimal(20,8);not null;default:0" json:"presentmoney"`
	Profit              float64       `gorm:"type:decimal(20,8);not null;default:0" json:"profit"`
	IsVerified          bool          `gorm:"default:true" json:"isVerified"`
	IsAcceptingMessages bool          `gorm:"default:true" json:"isAcceptingMessages"`
	Transactions        []Transaction `gorm:"foreignKey:UserID" json:"transactions"`
}
