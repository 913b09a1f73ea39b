package services

import (
	"fmt"
	"time"

	"contact-relay/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer hands a message to the outbound mail channel.
// Implementations must be safe for concurrent use.
type Mailer interface {
	Send(msg models.MailMessage) error
}

// SMTPMailerConfig SMTP 发送配置
type SMTPMailerConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	// SSL dials implicit TLS (465). Otherwise the connection starts in plain
	// text and upgrades with STARTTLS when the server offers it (587).
	SSL bool
}

// SMTPMailer delivers messages through an SMTP server using gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
	log    *zap.Logger
}

// NewSMTPMailer builds the mailer once at startup; it opens a new SMTP
// session per Send.
func NewSMTPMailer(cfg SMTPMailerConfig, log *zap.Logger) *SMTPMailer {
	if log == nil {
		log = zap.NewNop()
	}
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = cfg.SSL
	log.Info("mail transport initialized",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.Bool("ssl", cfg.SSL),
		zap.String("user", cfg.Username))
	return &SMTPMailer{dialer: d, log: log}
}

// Send submits msg in its own SMTP session.
func (m *SMTPMailer) Send(msg models.MailMessage) error {
	gm := gomail.NewMessage()
	gm.SetAddressHeader("From", msg.FromAddress, msg.FromName)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetHeader("Message-ID", fmt.Sprintf("<%s@%s>", uuid.NewString(), messageIDDomain(m.dialer.Host)))
	gm.SetDateHeader("Date", time.Now())
	gm.SetBody("text/plain", msg.TextBody)

	// gomail stores the negotiated auth mechanism on the dialer.
	d := *m.dialer
	if err := d.DialAndSend(gm); err != nil {
		MailSendFailure.WithLabelValues(m.dialer.Host).Inc()
		return fmt.Errorf("send mail via %s:%d: %w", m.dialer.Host, m.dialer.Port, err)
	}

	MailSendSuccess.WithLabelValues(m.dialer.Host).Inc()
	m.log.Debug("mail sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}

func messageIDDomain(host string) string {
	if host == "" {
		return "localhost"
	}
	return host
}
