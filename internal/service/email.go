package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendPaymentConfirmedNotification(ctx context.Context, email, name, listingTitle string) error {
	subject := fmt.Sprintf("Payment Confirmed: %s", listingTitle)
	body := fmt.Sprintf("Hello %s,\n\nThe payment for %s has been confirmed. Please review and sign the rental contract.\n\nBest regards,\nThe RentNest Team", name, listingTitle)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendStayCompletedNotification(ctx context.Context, email, name, listingTitle string) error {
	subject := fmt.Sprintf("Stay Completed: %s", listingTitle)
	body := fmt.Sprintf("Hello %s,\n\nYour rental period for %s has ended. You can now rate the other party.\n\nBest regards,\nThe RentNest Team", name, listingTitle)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendRatingRevealedNotification(ctx context.Context, email, name string) error {
	body := fmt.Sprintf("Hello %s,\n\nA rating from your completed stay has been revealed and is now visible on your profile.\n\nBest regards,\nThe RentNest Team", name)
	return s.send(email, name, "New Rating Revealed", body)
}
