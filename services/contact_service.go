package services

import (
	"fmt"

	"contact-relay/models"
)

const (
	ContactSenderName = "Contato Site"
	ContactSubject    = "Novo contato pelo site"
)

// ContactServiceConfig addressing used for every relayed submission
type ContactServiceConfig struct {
	SenderAddress string
	Receiver      string
}

// ContactService relays contact form submissions through a Mailer.
type ContactService struct {
	config ContactServiceConfig
	mailer Mailer
}

func NewContactService(cfg ContactServiceConfig, mailer Mailer) *ContactService {
	return &ContactService{config: cfg, mailer: mailer}
}

// Submit formats the submission and sends it exactly once. The submitted
// e-mail address only ever appears in the body.
func (s *ContactService) Submit(sub models.ContactSubmission) error {
	msg := BuildContactMessage(sub, s.config.SenderAddress, s.config.Receiver)
	if err := s.mailer.Send(msg); err != nil {
		return fmt.Errorf("relay contact submission: %w", err)
	}
	return nil
}

// BuildContactMessage renders the plain-text message for a submission.
func BuildContactMessage(sub models.ContactSubmission, sender, receiver string) models.MailMessage {
	return models.MailMessage{
		FromAddress: sender,
		FromName:    ContactSenderName,
		To:          receiver,
		Subject:     ContactSubject,
		TextBody: fmt.Sprintf("Nome: %s\nE-mail: %s\nWhatsApp: %s\nMensagem: %s",
			sub.Name, sub.Email, sub.WhatsApp, sub.Message),
	}
}
