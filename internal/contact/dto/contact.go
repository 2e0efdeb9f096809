package dto

import (
	"time"

	"github.com/lsweb/lsweb-api/internal/contact/domain"
)

type ContactRequestCreate struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
	Company     string `json:"company" validate:"omitempty,max=100"`
	ProjectType string `json:"projectType" validate:"required"`
	Budget      string `json:"budget"`
	Timeline    string `json:"timeline"`
	Description string `json:"description" validate:"required,min=10,max=2000"`
}

type ContactRequestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// ContactRequestOutput is the wire form of a stored request; field names
// follow the persisted snake_case layout.
type ContactRequestOutput struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Company     string    `json:"company,omitempty"`
	ProjectType string    `json:"project_type"`
	Budget      string    `json:"budget,omitempty"`
	Timeline    string    `json:"timeline,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	Status      string    `json:"status"`
}

func FromDomain(req *domain.ContactRequest) ContactRequestOutput {
	return ContactRequestOutput{
		ID:          req.ID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		ProjectType: req.ProjectType,
		Budget:      req.Budget,
		Timeline:    req.Timeline,
		Description: req.Description,
		CreatedAt:   req.CreatedAt,
		Status:      req.Status,
	}
}
