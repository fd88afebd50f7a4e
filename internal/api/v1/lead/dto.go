package lead

type CreateContactRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	Company     string `json:"company" binding:"required"`
	ProjectType string `json:"projectType" binding:"required"`
	Message     string `json:"message" binding:"required"`
}

type CreateSMMRequest struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Phone       string   `json:"phone"`
	Company     string   `json:"company" binding:"required"`
	ProjectType string   `json:"projectType" binding:"required"`
	Message     string   `json:"message" binding:"required"`
	Platforms   []string `json:"platforms"`
	Budget      float64  `json:"budget" binding:"omitempty,min=0"`
}

type CreateDevRequest struct {
	Name         string   `json:"name" binding:"required"`
	Email        string   `json:"email" binding:"required,email"`
	Phone        string   `json:"phone"`
	Company      string   `json:"company" binding:"required"`
	ProjectType  string   `json:"projectType" binding:"required"`
	Message      string   `json:"message" binding:"required"`
	Technologies []string `json:"technologies"`
	Timeline     string   `json:"timeline"`
	Budget       float64  `json:"budget" binding:"omitempty,min=0"`
}
