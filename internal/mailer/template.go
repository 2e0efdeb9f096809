package mailer

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/lsweb/lsweb-api/internal/contact/domain"
)

const notificationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Nueva Solicitud de Web - LS WEB</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #3b82f6, #1d4ed8); color: white; padding: 20px; text-align: center; }
        .content { background: #f8f9fa; padding: 30px; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #2563eb; }
        .value { margin-left: 10px; }
        .footer { text-align: center; padding: 20px; color: #666; font-size: 14px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🌐 LS WEB - Nueva Solicitud</h1>
            <p>Has recibido una nueva solicitud de web personalizada</p>
        </div>
        <div class="content">
            <div class="field">
                <span class="label">👤 Nombre:</span>
                <span class="value">{{.Name}}</span>
            </div>
            <div class="field">
                <span class="label">📧 Email:</span>
                <span class="value">{{.Email}}</span>
            </div>
            {{if .Phone}}<div class="field">
                <span class="label">📱 Teléfono:</span>
                <span class="value">{{.Phone}}</span>
            </div>
            {{end}}{{if .Company}}<div class="field">
                <span class="label">🏢 Empresa:</span>
                <span class="value">{{.Company}}</span>
            </div>
            {{end}}<div class="field">
                <span class="label">🎯 Tipo de Proyecto:</span>
                <span class="value">{{.ProjectTypeLabel}}</span>
            </div>
            {{if .Budget}}<div class="field">
                <span class="label">💰 Presupuesto:</span>
                <span class="value">{{.Budget}}</span>
            </div>
            {{end}}{{if .Timeline}}<div class="field">
                <span class="label">⏰ Tiempo de Entrega:</span>
                <span class="value">{{.Timeline}}</span>
            </div>
            {{end}}<div class="field">
                <span class="label">📝 Descripción del Proyecto:</span>
                <div style="background: white; padding: 15px; border-left: 4px solid #3b82f6; margin-top: 10px;">
                    {{.Description}}
                </div>
            </div>
        </div>
        <div class="footer">
            <p><strong>LS WEB</strong> - Creando experiencias digitales excepcionales</p>
            <p>Fecha: {{.CreatedAt}}</p>
        </div>
    </div>
</body>
</html>
`

var notificationTmpl = template.Must(template.New("notification").Parse(notificationTemplate))

type templateData struct {
	Name             string
	Email            string
	Phone            string
	Company          string
	ProjectTypeLabel string
	Budget           string
	Timeline         string
	Description      string
	CreatedAt        string
}

// Render turns a contact request into a mail subject and HTML body. It has
// no side effects, so the template can be tested without a mail channel.
func Render(req *domain.ContactRequest) (subject, body string, err error) {
	data := templateData{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Company:          req.Company,
		ProjectTypeLabel: domain.ProjectTypeLabel(req.ProjectType),
		Budget:           req.Budget,
		Timeline:         req.Timeline,
		Description:      req.Description,
		CreatedAt:        req.CreatedAt.Format("02/01/2006 15:04"),
	}

	var sb strings.Builder
	if err := notificationTmpl.Execute(&sb, data); err != nil {
		return "", "", fmt.Errorf("failed to render notification: %w", err)
	}

	return fmt.Sprintf("Nueva Solicitud de Web - %s", req.Name), sb.String(), nil
}
