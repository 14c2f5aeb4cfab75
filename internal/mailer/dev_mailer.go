package mailer

import (
	"github.com/mk-munna/wedmate-matrimony-server-project-12/pkg/logger"
)

// DevMailer prints emails to the log instead of sending them.
type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (m *DevMailer) SendPremiumApproved(toEmail, toName string) error {
	logger.Info("DEV EMAIL: premium approved",
		"to", toEmail,
		"name", toName,
	)
	return nil
}

func (m *DevMailer) SendContactApproved(toEmail string, biodataID int64) error {
	logger.Info("DEV EMAIL: contact request approved",
		"to", toEmail,
		"biodata_id", biodataID,
	)
	return nil
}
