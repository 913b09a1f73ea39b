package models

// MailMessage is a single outbound plain-text e-mail.
type MailMessage struct {
	FromAddress string
	FromName    string
	To          string
	Subject     string
	TextBody    string
}
