package models

import (
	"time"

	"gorm.io/datatypes"
)

// Contact is a captured contact-form inquiry. Leads are flat documents with
// no relation to the trading entities.
type Contact struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"not null" json:"email"`
	Phone       string    `gorm:"type:varchar(50)" json:"phone"`
	Company     string    `gorm:"not null" json:"company"`
	ProjectType string    `gorm:"not null" json:"projectType"`
	Message     string    `gorm:"type:text;not null" json:"message"`
}

func (Contact) TableName() string {
	return "contact"
}

// SMMLead is a social-media-marketing inquiry.
type SMMLead struct {
	ID          uint                        `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
	Name        string                      `gorm:"not null" json:"name"`
	Email       string                      `gorm:"not null" json:"email"`
	Phone       string                      `gorm:"type:varchar(50)" json:"phone"`
	Company     string                      `gorm:"not null" json:"company"`
	ProjectType string                      `gorm:"not null" json:"projectType"`
	Message     string                      `gorm:"type:text;not null" json:"message"`
	Platforms   datatypes.JSONSlice[string] `json:"platforms" swaggertype:"array,string"`
	Budget      float64                     `gorm:"type:decimal(20,8);default:0" json:"budget"`
}

func (SMMLead) TableName() string {
	return "smm"
}

// DevLead is a development-project inquiry.
type DevLead struct {
	ID           uint                        `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
	Name         string                      `gorm:"not null" json:"name"`
	Email        string                      `gorm:"not null" json:"email"`
	Phone        string                      `gorm:"type:varchar(50)" json:"phone"`
	Company      string                      `gorm:"not null" json:"company"`
	ProjectType  string                      `gorm:"not null" json:"projectType"`
	Message      string                      `gorm:"type:text;not null" json:"message"`
	Technologies datatypes.JSONSlice[string] `json:"technologies" swaggertype:"array,string"`
	Timeline     string                      `gorm:"type:varchar(100)" json:"timeline"`
	Budget       float64                     `gorm:"type:decimal(20,8);default:0" json:"budget"`
}

func (DevLead) TableName() string {
	return "dev"
}
