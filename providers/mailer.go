package providers

import (
	"fmt"

	"github.com/median-man/team-tracker/config"
	"github.com/median-man/team-tracker/models"
	mail "github.com/xhit/go-simple-mail/v2"
)

// Mailer sends the account emails. A nil SMTP client yields a no-op
// implementation so the service runs without mail configuration.
type Mailer interface {
	SendWelcome(user *models.User) error
}

func NewMailer(cfg *config.Config, client *mail.SMTPClient) Mailer {
	if client == nil {
		return noopMailer{}
	}
	return &smtpMailer{client: client, from: cfg.EmailConfig.From, appName: cfg.AppName}
}

type noopMailer struct{}

func (noopMailer) SendWelcome(*models.User) error { return nil }

type smtpMailer struct {
	client  *mail.SMTPClient
	from    string
	appName string
}

func (m *smtpMailer) SendWelcome(user *models.User) error {
	msg := mail.NewMSG()
	msg.SetFrom(m.from).
		AddTo(user.Email).
		SetSubject(fmt.Sprintf("Welcome to %s", m.appName))

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your %s account is ready. Log in to create your first team.</p>",
		user.Username, m.appName,
	)
	msg.SetBody(mail.TextHTML, body)

	if msg.Error != nil {
		return msg.Error
	}
	return msg.Send(m.client)
}
