package mailer

import (
	"bytes"
	"html/template"

	"rewear.backend/internal/domain/entities"
)

const accountStatusSubject = "Your ReWear account status has been updated"

var accountStatusTemplate = template.Must(template.New("account_status").Parse(`<!DOCTYPE html>
<html lang="en">
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2>Hello {{.Name}},</h2>
	{{if eq .Status "active"}}
	<p>Your ReWear account has been approved. You can now sign in and start buying and selling.</p>
	{{else if eq .Status "suspended"}}
	<p>Your ReWear account has been suspended. Contact support if you think this is a mistake.</p>
	{{else}}
	<p>Your ReWear account is pending review. We will email you again once it has been checked.</p>
	{{end}}
	<p>Current status: <strong>{{.Status}}</strong></p>
	{{if .LoginURL}}<p><a href="{{.LoginURL}}">Sign in to ReWear</a></p>{{end}}
</body>
</html>`))

type accountStatusData struct {
	Name     string
	Status   string
	LoginURL string
}

func renderAccountStatus(user *entities.User, loginURL string) (string, error) {
	var buf bytes.Buffer
	err := accountStatusTemplate.Execute(&buf, accountStatusData{
		Name:     user.Name(),
		Status:   string(user.Status),
		LoginURL: loginURL,
	})
	return buf.String(), err
}
