package mailer

import "github.com/mk-munna/wedmate-matrimony-server-project-12/pkg/config"

// Service sends workflow notification emails. Sending is best-effort: a
// failed email never fails the request that triggered it.
type Service interface {
	SendPremiumApproved(toEmail, toName string) error
	SendContactApproved(toEmail string, biodataID int64) error
}

// New picks the MailerSend client when an API key is configured and dev mode
// is off, otherwise the log-only mailer.
func New(cfg config.EmailConfig) Service {
	if !cfg.DevMode && cfg.MailerSendKey != "" {
		return NewMailerSend(cfg.MailerSendKey, cfg.FromName, cfg.FromEmail)
	}
	return NewDevMailer()
}
