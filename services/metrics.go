package services

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	MailSendSuccess = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_relay_mail_send_success_total",
		Help: "Total number of e-mails accepted by the SMTP server",
	}, []string{"host"})
	MailSendFailure = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_relay_mail_send_failure_total",
		Help: "Total number of e-mails the SMTP transport failed to deliver",
	}, []string{"host"})
	// outcome is one of sent, failed, duplicate, rejected
	ContactSubmissions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_relay_submissions_total",
		Help: "Total number of contact form submissions by outcome",
	}, []string{"outcome"})
)

const (
	OutcomeSent      = "sent"
	OutcomeFailed    = "failed"
	OutcomeDuplicate = "duplicate"
	OutcomeRejected  = "rejected"
)

func init() {
	prometheus.MustRegister(MailSendSuccess)
	prometheus.MustRegister(MailSendFailure)
	prometheus.MustRegister(ContactSubmissions)
}
