package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ItsMeSoumo/admindashboard/internal/database"
	"github.com/ItsMeSoumo/admindashboard/internal/models"
)

var ErrLeadNotFound = errors.New("lead not found")

// Leads are flat capture documents: list, create and delete only, no
// relations to the trading entities.

func FindContacts() ([]models.Contact, error) {
	var contacts []models.Contact
	if err := database.DB.Order("created_at DESC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func CreateContact(contact *models.Contact) error {
	return database.DB.Create(contact).Error
}

func DeleteContact(id uint) error {
	return deleteLead(&models.Contact{}, id)
}

func FindSMMLeads() ([]models.SMMLead, error) {
	var leads []models.SMMLead
	if err := database.DB.Order("created_at DESC").Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

func CreateSMMLead(lead *models.SMMLead) error {
	return database.DB.Create(lead).Error
}

func DeleteSMMLead(id uint) error {
	return deleteLead(&models.SMMLead{}, id)
}

func FindDevLeads() ([]models.DevLead, error) {
	var leads []models.DevLead
	if err := database.DB.Order("created_at DESC").Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

func CreateDevLead(lead *models.DevLead) error {
	return database.DB.Create(lead).Error
}

func DeleteDevLead(id uint) error {
	return deleteLead(&models.DevLead{}, id)
}

func deleteLead(model interface{}, id uint) error {
	if err := database.DB.First(model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLeadNotFound
		}
		return err
	}
	return database.DB.Delete(model, id).Error
}
