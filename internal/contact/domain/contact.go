package domain

import "time"

const StatusPending = "pending"

type ContactRequest struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Company     string
	ProjectType string
	Budget      string
	Timeline    string
	Description string
	CreatedAt   time.Time
	Status      string
}

var projectTypeLabels = map[string]string{
	"web-corporativa":      "Web Corporativa",
	"e-commerce":           "E-commerce",
	"sistema-ventas-bd":    "Sistema de Ventas y Base de Datos",
	"crm-personalizado":    "CRM Personalizado",
	"landing-page":         "Landing Page",
	"blog":                 "Blog/Portfolio",
	"app-web":              "Aplicación Web",
	"marketing-digital":    "Marketing Digital",
	"community-management": "Community Management",
}

// ProjectTypeLabel maps a project type code to its display label, falling
// back to the raw code when unrecognized.
func ProjectTypeLabel(code string) string {
	if label, ok := projectTypeLabels[code]; ok {
		return label
	}
	return code
}
