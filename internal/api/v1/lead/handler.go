package lead

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/ItsMeSoumo/admindashboard/internal/models"
	"github.com/ItsMeSoumo/admindashboard/internal/services"
	"github.com/ItsMeSoumo/admindashboard/internal/utils"
)

// ListContacts godoc
// @Summary List contact leads
// @Tags leads
// @Produce json
// @Success 200 {object} utils.Response{data=[]models.Contact}
// @Failure 500 {object} utils.Response
// @Router /contact [get]
func ListContacts(c *gin.Context) {
	contacts, err := services.FindContacts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewInternalErrorResponse("Error in fetching contacts", err))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("All contacts fetched", contacts))
}

// CreateContact godoc
// @Summary Create a contact lead
// @Tags leads
// @Accept json
// @Produce json
// @Param body body CreateContactRequest true "Contact details"
// @Success 201 {object} utils.Response{data=models.Contact}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /contact [post]
func CreateContact(c *gin.Context) {
	var req CreateContactRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	contact := models.Contact{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		ProjectType: req.ProjectType,
		Message:     req.Message,
	}
	if err := services.CreateContact(&contact); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewInternalErrorResponse("Error creating contact", err))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Contact created successfully", contact))
}

// DeleteContact godoc
// @Summary Delete a contact lead
// @Tags leads
// @Produce json
// @Param id query int true "Contact ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /contact [delete]
func DeleteContact(c *gin.Context) {
	id, ok := leadIDFromQuery(c, "Contact ID is required")
	if !ok {
		return
	}

	if err := services.DeleteContact(id); err != nil {
		if errors.Is(err, services.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Contact not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewInternalErrorResponse("Error deleting contact", err))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Contact deleted successfully", nil))
}

// ListSMMLeads godoc
// @Summary List SMM leads
// @Tags leads
// @Produce json
// @Success 200 {object} utils.Response{data=[]models.SMMLead}
// @Failure 500 {object} utils.Response
// @Router /smm [get]
func ListSMMLeads(c *gin.Context) {
	leads, err := services.FindSMMLeads()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewInternalErrorResponse("Error in fetching smm leads", err))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("All smm leads fetched", leads))
}

// CreateSMMLead godoc
// @Summary Create an SMM lead
// @Tags leads
// @Accept json
// @Produce json
// @Param body body CreateSMMRequest true "SMM lead details"
// @Success 201 {object} utils.Response{data=models.SMMLead}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /smm [post]
func CreateSMMLead(c *gin.Context) {
	var req CreateSMMRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	platforms := req.Platforms
	if platforms == nil {
		platforms = []string{}
	}

	lead := models.SMMLead{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		ProjectType: req.ProjectType,
		Message:     req.Message,
		Platforms:   datatypes.NewJSONSlice(platforms),
		Budget:      req.Budget,
	}
	if err := services.CreateSMMLead(&lead); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewInternalErrorResponse("Error creating smm lead", err))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("SMM lead created successfully", lead))
}

// DeleteSMMLead godoc
// @Summary Delete an SMM lead
// @Tags leads
// @Produce json
// @Param id query int true "SMM lead ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /smm [delete]
func DeleteSMMLead(c *gin.Context) {
	id, ok := leadIDFromQuery(c, "SMM lead ID is required")
	if !ok {
		return
	}

	if err := services.DeleteSMMLead(id); err != nil {
		if errors.Is(err, services.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("SMM lead not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewInternalErrorResponse("Error deleting smm lead", err))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("SMM lead deleted successfully", nil))
}

// ListDevLeads godoc
// @Summary List dev leads
// @Tags leads
// @Produce json
// @Success 200 {object} utils.Response{data=[]models.DevLead}
// @Failure 500 {object} utils.Response
// @Router /dev [get]
func ListDevLeads(c *gin.Context) {
	leads, err := services.FindDevLeads()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewInternalErrorResponse("Error in fetching dev leads", err))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("All dev leads fetched", leads))
}

// CreateDevLead godoc
// @Summary Create a dev lead
// @Tags leads
// @Accept json
// @Produce json
// @Param body body CreateDevRequest true "Dev lead details"
// @Success 201 {object} utils.Response{data=models.DevLead}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /dev [post]
func CreateDevLead(c *gin.Context) {
	var req CreateDevRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	technologies := req.Technologies
	if technologies == nil {
		technologies = []string{}
	}

	lead := models.DevLead{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Company:      req.Company,
		ProjectType:  req.ProjectType,
		Message:      req.Message,
		Technologies: datatypes.NewJSONSlice(technologies),
		Timeline:     req.Timeline,
		Budget:       req.Budget,
	}
	if err := services.CreateDevLead(&lead); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewInternalErrorResponse("Error creating dev lead", err))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Dev lead created successfully", lead))
}

// DeleteDevLead godoc
// @Summary Delete a dev lead
// @Tags leads
// @Produce json
// @Param id query int true "Dev lead ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /dev [delete]
func DeleteDevLead(c *gin.Context) {
	id, ok := leadIDFromQuery(c, "Dev lead ID is required")
	if !ok {
		return
	}

	if err := services.DeleteDevLead(id); err != nil {
		if errors.Is(err, services.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Dev lead not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewInternalErrorResponse("Error deleting dev lead", err))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Dev lead deleted successfully", nil))
}

func leadIDFromQuery(c *gin.Context, missingMsg string) (uint, bool) {
	idStr := c.Query("id")
	if idStr == "" {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(missingMsg))
		return 0, false
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid lead ID"))
		return 0, false
	}

	return uint(id), true
}
