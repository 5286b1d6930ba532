package email

import (
	"fmt"

	"joblink"
	"joblink/internal/api/models"

	"github.com/rs/zerolog"
	"github.com/wneessen/go-mail"
)

// Notifier sends courtesy mails on application activity. A nil *Notifier
// is a valid no-op; send failures are logged and never surfaced to API
// callers.
type Notifier struct {
	client *mail.Client
	from   string
	logger zerolog.Logger
}

// NewNotifier builds a Notifier from the SMTP config, or returns nil when
// SMTP_HOST is not set.
func NewNotifier(cfg joblink.AppConfig, logger zerolog.Logger) *Notifier {
	if cfg.SMTPConfig.Host == "" {
		return nil
	}

	opts := []mail.Option{
		mail.WithPort(cfg.SMTPConfig.Port),
	}
	if cfg.SMTPConfig.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPConfig.Username),
			mail.WithPassword(cfg.SMTPConfig.Password),
		)
	}

	client, err := mail.NewClient(cfg.SMTPConfig.Host, opts...)
	if err != nil {
		logger.Error().Err(err).Msg("smtp client init failed, mail notifications disabled")
		return nil
	}

	return &Notifier{client: client, from: cfg.SMTPConfig.From, logger: logger}
}

// ApplicationReceived notifies the employer of a new applicant.
func (slf *Notifier) ApplicationReceived(to string, job *models.Job, app *models.Application) {
	if slf == nil || to == "" {
		return
	}

	subject := fmt.Sprintf("New application for %q", job.Title)
	body := fmt.Sprintf(
		"%s applied to your posting %q.\n\nSign in to your employer dashboard to review the application.\n",
		app.Name, job.Title,
	)
	slf.send(to, subject, body)
}

// StatusChanged notifies the applicant that the employer moved their
// application.
func (slf *Notifier) StatusChanged(to string, app *models.Application) {
	if slf == nil || to == "" {
		return
	}

	subject := fmt.Sprintf("Your application for %q was updated", app.JobTitle)
	body := fmt.Sprintf(
		"The status of your application for %q at %s is now: %s.\n",
		app.JobTitle, app.Company, app.Status,
	)
	slf.send(to, subject, body)
}

func (slf *Notifier) send(to, subject, body string) {
	msg := mail.NewMsg()
	if err := msg.From(slf.from); err != nil {
		slf.logger.Error().Err(err).Msg("mail from address invalid")
		return
	}
	if err := msg.To(to); err != nil {
		slf.logger.Error().Err(err).Str("to", to).Msg("mail recipient invalid")
		return
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := slf.client.DialAndSend(msg); err != nil {
		slf.logger.Error().Err(err).Str("to", to).Msg("mail send failed")
	}
}
