package mailer

import (
	"bytes"
	"html/template"
)

var bodyTmpl = template.Must(template.New("body").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Helvetica, Arial, sans-serif; color: #222;">
	<h2 style="color: #1a6b3c;">FELMART Gesti&oacute;n de Residuos</h2>
	<p>{{.Greeting}}</p>
	{{range .Paragraphs}}<p>{{.}}</p>{{end}}
	{{if .Rows}}
	<table style="border-collapse: collapse;">
		{{range .Rows}}
		<tr>
			<td style="padding: 4px 12px 4px 0; font-weight: bold;">{{.Label}}</td>
			<td style="padding: 4px 0;">{{.Value}}</td>
		</tr>
		{{end}}
	</table>
	{{end}}
	<p style="color: #777; font-size: 12px;">Este es un mensaje autom&aacute;tico, por favor no responda a este correo.</p>
</body>
</html>`))

type bodyRow struct {
	Label string
	Value string
}

type bodyData struct {
	Greeting   string
	Paragraphs []string
	Rows       []bodyRow
}

func renderBody(data bodyData) string {
	var buf bytes.Buffer
	if err := bodyTmpl.Execute(&buf, data); err != nil {
		// Template is static, execution only fails on writer errors.
		return ""
	}
	return buf.String()
}

// QuoteEmailBody builds the HTML body for a quote delivery email.
func QuoteEmailBody(clientName, number, total string) string {
	return renderBody(bodyData{
		Greeting: "Estimado/a " + clientName + ",",
		Paragraphs: []string{
			"Adjuntamos la cotización solicitada. Quedamos atentos a sus comentarios.",
		},
		Rows: []bodyRow{
			{Label: "Cotización", Value: number},
			{Label: "Total", Value: total},
		},
	})
}

// CertificateEmailBody builds the HTML body for a certificate delivery email.
func CertificateEmailBody(clientName, fileName string) string {
	return renderBody(bodyData{
		Greeting: "Estimado/a " + clientName + ",",
		Paragraphs: []string{
			"Adjuntamos su certificado de disposición final de residuos.",
		},
		Rows: []bodyRow{
			{Label: "Archivo", Value: fileName},
		},
	})
}

// ContactEmailBody builds the HTML body forwarded to the configured contact
// recipients.
func ContactEmailBody(name, email, phone, subject, message string) string {
	return renderBody(bodyData{
		Greeting:   "Nuevo mensaje de contacto recibido.",
		Paragraphs: []string{message},
		Rows: []bodyRow{
			{Label: "Nombre", Value: name},
			{Label: "Email", Value: email},
			{Label: "Teléfono", Value: phone},
			{Label: "Asunto", Value: subject},
		},
	})
}

// RequestReceivedEmailBody builds the HTML acknowledgement sent to a
// requester after the intake form is submitted.
func RequestReceivedEmailBody(requesterName, number string) string {
	return renderBody(bodyData{
		Greeting: "Estimado/a " + requesterName + ",",
		Paragraphs: []string{
			"Hemos recibido su solicitud de cotización. Nuestro equipo la revisará y le responderemos a la brevedad.",
		},
		Rows: []bodyRow{
			{Label: "Solicitud", Value: number},
		},
	})
}

// PasswordResetEmailBody builds the HTML body carrying a password reset
// token.
func PasswordResetEmailBody(name, token string) string {
	return renderBody(bodyData{
		Greeting: "Estimado/a " + name + ",",
		Paragraphs: []string{
			"Recibimos una solicitud para restablecer su contraseña. Use el siguiente código dentro de la próxima hora.",
			"Si usted no solicitó el cambio, ignore este correo.",
		},
		Rows: []bodyRow{
			{Label: "Código", Value: token},
		},
	})
}

// VisitScheduledEmailBody builds the HTML body announcing a scheduled visit.
func VisitScheduledEmailBody(clientName, date, timeOfDay string) string {
	return renderBody(bodyData{
		Greeting: "Estimado/a " + clientName + ",",
		Paragraphs: []string{
			"Hemos agendado una visita a sus instalaciones. Desde su cuenta puede confirmarla, rechazarla o proponer otro horario.",
		},
		Rows: []bodyRow{
			{Label: "Fecha", Value: date},
			{Label: "Hora", Value: timeOfDay},
		},
	})
}

// WelcomeEmailBody builds the HTML body for the account created during
// request promotion, carrying the temporary password.
func WelcomeEmailBody(name, email, tempPassword string) string {
	return renderBody(bodyData{
		Greeting: "Estimado/a " + name + ",",
		Paragraphs: []string{
			"Hemos creado una cuenta para que pueda revisar sus cotizaciones, visitas y certificados.",
			"Por seguridad, cambie la contraseña temporal después de su primer ingreso.",
		},
		Rows: []bodyRow{
			{Label: "Usuario", Value: email},
			{Label: "Contraseña temporal", Value: tempPassword},
		},
	})
}
