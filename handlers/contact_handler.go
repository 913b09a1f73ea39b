package handlers

import (
	"net/http"
	"strings"
	"time"

	"contact-relay/models"
	"contact-relay/services"

	"github.com/gin-gonic/gin"
	cache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const (
	MessageSent       = "E-mail enviado com sucesso!"
	MessageSendFailed = "Erro ao enviar e-mail."
	MessageBadRequest = "Requisição inválida."

	IdempotencyKeyHeader = "Idempotency-Key"
)

// ContactSubmitter relays one contact submission.
type ContactSubmitter interface {
	Submit(sub models.ContactSubmission) error
}

// ContactHandler serves the contact form endpoint.
type ContactHandler struct {
	submitter ContactSubmitter
	log       *zap.Logger
	// nil when idempotency keys are disabled
	sent *cache.Cache
}

// NewContactHandler creates the handler. A zero idempotencyTTL disables
// Idempotency-Key handling.
func NewContactHandler(submitter ContactSubmitter, log *zap.Logger, idempotencyTTL time.Duration) *ContactHandler {
	if log == nil {
		log = zap.NewNop()
	}
	h := &ContactHandler{submitter: submitter, log: log}
	if idempotencyTTL > 0 {
		h.sent = cache.New(idempotencyTTL, time.Minute)
	}
	return h
}

// RegisterContactRoutes registers the contact form endpoint
func RegisterContactRoutes(r gin.IRoutes, h *ContactHandler) {
	r.POST("/send-email", h.SendEmail)
}

// SendEmail handles POST /send-email
func (h *ContactHandler) SendEmail(c *gin.Context) {
	req, err := bindSubmission(c)
	if err != nil {
		services.ContactSubmissions.WithLabelValues(services.OutcomeRejected).Inc()
		c.JSON(http.StatusBadRequest, models.ContactResponse{Message: MessageBadRequest})
		return
	}

	key := h.idempotencyKey(c)
	if key != "" {
		if _, found := h.sent.Get(key); found {
			services.ContactSubmissions.WithLabelValues(services.OutcomeDuplicate).Inc()
			c.JSON(http.StatusOK, models.ContactResponse{Message: MessageSent})
			return
		}
	}

	if err := h.submitter.Submit(req); err != nil {
		h.log.Error("failed to send contact e-mail",
			zap.Error(err),
			zap.String("client_ip", c.ClientIP()))
		services.ContactSubmissions.WithLabelValues(services.OutcomeFailed).Inc()
		c.JSON(http.StatusInternalServerError, models.ContactResponse{Message: MessageSendFailed})
		return
	}

	if key != "" {
		h.sent.SetDefault(key, struct{}{})
	}
	services.ContactSubmissions.WithLabelValues(services.OutcomeSent).Inc()
	c.JSON(http.StatusOK, models.ContactResponse{Message: MessageSent})
}

func bindSubmission(c *gin.Context) (models.ContactSubmission, error) {
	body, err := c.GetRawData()
	if err != nil {
		return models.ContactSubmission{}, err
	}
	return models.DecodeContactSubmission(body)
}

func (h *ContactHandler) idempotencyKey(c *gin.Context) string {
	if h.sent == nil {
		return ""
	}
	return strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader))
}
