// utils/email.go
package utils

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"store-management/models"
)

// EmailService sends notification emails through SendGrid.
type EmailService struct {
	client *sendgrid.Client
	sender string
}

// NewEmailService returns an EmailService, or nil when no API key is
// configured (alert emails are then skipped).
func NewEmailService(apiKey, sender string) *EmailService {
	if apiKey == "" {
		return nil
	}
	return &EmailService{
		client: sendgrid.NewSendClient(apiKey),
		sender: sender,
	}
}

// SendEmail sends a basic email to the specified recipient.
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	from := mail.NewEmail("Store Management", es.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, htmlContent, htmlContent)

	resp, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("failed to send email: status %d", resp.StatusCode)
	}
	return nil
}

// SendAlertNotification emails an employee about a freshly created
// alert. Best effort only; the alert's delivery status is unaffected.
func (es *EmailService) SendAlertNotification(toEmail string, alert models.Alert) error {
	subject := "New store alert"
	htmlContent := fmt.Sprintf(
		"<strong>You have a new alert:</strong><br><br>%s<br><br>Raised at %s.",
		alert.Message,
		alert.Timestamp.Format("Jan 2, 2006 15:04 MST"),
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}
