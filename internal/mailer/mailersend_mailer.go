package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"
)

type MailerSendClient struct {
	client *mailersend.Mailersend
	from   mailersend.From
}

func NewMailerSend(apiKey, fromName, fromEmail string) *MailerSendClient {
	return &MailerSendClient{
		client: mailersend.NewMailersend(apiKey),
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}
}

func (m *MailerSendClient) SendPremiumApproved(toEmail, toName string) error {
	subject := "Your WedMate premium membership is active"
	html := fmt.Sprintf(`
		<h2>Congratulations%s!</h2>
		<p>An administrator has approved your premium request.</p>
		<p>Your biodata now appears in the premium listing and your contact
		details are highlighted to interested members.</p>
	`, htmlName(toName))

	text := "Your premium request has been approved. Your biodata now appears in the premium listing."

	return m.sendEmail(toEmail, toName, subject, text, html)
}

func (m *MailerSendClient) SendContactApproved(toEmail string, biodataID int64) error {
	subject := "Your contact request has been approved"
	html := fmt.Sprintf(`
		<h2>Contact request approved</h2>
		<p>Your request to view the contact details of biodata <strong>#%d</strong>
		has been approved. Open "My Contact Requests" to see the details.</p>
	`, biodataID)

	text := fmt.Sprintf("Your contact request for biodata #%d has been approved.", biodataID)

	return m.sendEmail(toEmail, "", subject, text, html)
}

func (m *MailerSendClient) sendEmail(toEmail, toName, subject, text, html string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Name: toName, Email: toEmail}})
	msg.SetSubject(subject)

	if strings.TrimSpace(text) != "" {
		msg.SetText(text)
	}
	if strings.TrimSpace(html) != "" {
		msg.SetHTML(html)
	}

	_, err := m.client.Email.Send(ctx, msg)
	return err
}

func htmlName(name string) string {
	if strings.TrimSpace(name) == "" {
		return ""
	}
	return " " + name
}
