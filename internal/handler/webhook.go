// internal/handler/webhook.go
package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"

	"parking-portal/internal/domain"
	"parking-portal/internal/provider"
	"parking-portal/internal/service"
)

// WebhookHandler receives the card provider's asynchronous completion
// callback. The signature check runs before anything touches the
// payment lifecycle.
type WebhookHandler struct {
	payments      *service.PaymentService
	signingSecret string
}

func NewWebhookHandler(payments *service.PaymentService, signingSecret string) *WebhookHandler {
	return &WebhookHandler{payments: payments, signingSecret: signingSecret}
}

func (h *WebhookHandler) HandleStripe(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, 1<<16))
	if err != nil {
		c.String(http.StatusBadRequest, "read body failed")
		return
	}

	event, err := webhook.ConstructEvent(body, c.GetHeader("Stripe-Signature"), h.signingSecret)
	if err != nil {
		slog.Warn("webhook signature verification failed", "error", err)
		c.String(http.StatusBadRequest, "signature verification failed")
		return
	}

	if event.Type != "checkout.session.completed" {
		c.Status(http.StatusOK)
		return
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		slog.Error("webhook payload parse failed", "event_id", event.ID, "error", err)
		c.String(http.StatusBadRequest, "malformed event payload")
		return
	}

	contractorID, err := uuid.Parse(session.Metadata[provider.MetaContractorID])
	if err != nil {
		slog.Error("webhook metadata missing contractor id", "event_id", event.ID)
		c.String(http.StatusBadRequest, "metadata error")
		return
	}

	var months []domain.Month
	if err := json.Unmarshal([]byte(session.Metadata[provider.MetaTargetMonths]), &months); err != nil || len(months) == 0 {
		slog.Error("webhook metadata missing target months", "event_id", event.ID)
		c.String(http.StatusBadRequest, "metadata error")
		return
	}

	err = h.payments.CompleteCardCheckout(c.Request.Context(), contractorID, months, session.AmountTotal, session.ID)
	if err != nil {
		slog.Error("card checkout completion failed",
			"event_id", event.ID, "contractor_id", contractorID, "error", err)
		// Non-2xx makes the provider redeliver; completion is
		// idempotent per session id so that is safe.
		c.String(http.StatusInternalServerError, "completion failed")
		return
	}

	c.Status(http.StatusOK)
}
