// utils/email.go
package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/keighl/postmark"
)

// EmailService handles sending emails using Postmark
type EmailService struct {
	client *postmark.Client
}

// NewEmailService initializes an EmailService. It returns nil when
// POSTMARK_API_TOKEN is not set; callers treat a nil service as mail disabled.
func NewEmailService() *EmailService {
	apiToken := os.Getenv("POSTMARK_API_TOKEN")
	if apiToken == "" {
		log.Println("POSTMARK_API_TOKEN not set. Email notifications disabled.")
		return nil
	}
	client := postmark.NewClient(apiToken, "")
	return &EmailService{
		client: client,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     os.Getenv("EMAIL_SENDER"),
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// SendPaymentConfirmationEmail notifies a customer that their payment settled
// and the covered orders were cleared.
func (es *EmailService) SendPaymentConfirmationEmail(toEmail string, price float64, orderCount int) error {
	subject := "Payment Confirmation - Lumina Store"
	htmlContent := fmt.Sprintf(
		"<strong>Dear Customer,</strong><br><br>We have received your payment of <strong>$%.2f</strong> covering %d order(s). Your items are on their way.<br><br>Thank you for shopping with us!",
		price,
		orderCount,
	)

	return es.SendEmail(toEmail, subject, htmlContent)
}
