package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/linguahub/translation-dashboard/internal/api/metrics"
	"github.com/linguahub/translation-dashboard/internal/core/domain"
	"github.com/linguahub/translation-dashboard/internal/core/ports"
)

// PayloadVerifier checks the provider's signature headers against the raw
// body and returns the delivery id.
type PayloadVerifier interface {
	Verify(headers http.Header, body []byte) (string, error)
}

// WebhookHandler ingests identity lifecycle events from the external
// provider.
type WebhookHandler struct {
	verifier PayloadVerifier
	identity ports.IdentityService
	log      zerolog.Logger
}

func NewWebhookHandler(verifier PayloadVerifier, identity ports.IdentityService, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{verifier: verifier, identity: identity, log: log}
}

// webhookPayload mirrors the provider's event envelope. Only the fields
// this service consumes are decoded.
type webhookPayload struct {
	Type string `json:"type"`
	Data struct {
		ID             string `json:"id"`
		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		ImageURL       string `json:"image_url"`
		EmailAddresses []struct {
			EmailAddress string `json:"email_address"`
		} `json:"email_addresses"`
	} `json:"data"`
}

// Receive handles POST /webhook. The signature is verified before the
// body is parsed; a valid but already-seen delivery id is acknowledged
// without effect.
//
// @Summary      Ingest an identity lifecycle event
// @Tags         webhook
// @Accept       json
// @Success      200  "acknowledged"
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /webhook [post]
func (h *WebhookHandler) Receive(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable body")
	}

	deliveryID, err := h.verifier.Verify(c.Request().Header, body)
	if err != nil {
		metrics.WebhookEventsTotal.WithLabelValues("unknown", "bad_signature").Inc()
		h.log.Warn().Err(err).Msg("webhook signature rejected")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid signature")
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		metrics.WebhookEventsTotal.WithLabelValues("unknown", "invalid_payload").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	event := ports.WebhookEventInput{
		DeliveryID: deliveryID,
		Type:       payload.Type,
		User: ports.WebhookUserData{
			ExternalID: payload.Data.ID,
			FirstName:  payload.Data.FirstName,
			LastName:   payload.Data.LastName,
			AvatarURL:  payload.Data.ImageURL,
		},
	}
	if len(payload.Data.EmailAddresses) > 0 {
		event.User.Email = payload.Data.EmailAddresses[0].EmailAddress
	}

	if err := h.identity.ProcessEvent(c.Request().Context(), event); err != nil {
		// The provider retries on 5xx. A profile that is already gone
		// (or already created) is a redelivery artifact, not a failure.
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrUserExists) {
			h.log.Warn().Err(err).Str("type", payload.Type).Msg("webhook event already applied")
			metrics.WebhookEventsTotal.WithLabelValues(payload.Type, "processed").Inc()
			return c.NoContent(http.StatusOK)
		}
		metrics.WebhookEventsTotal.WithLabelValues(payload.Type, "error").Inc()
		return err
	}

	metrics.WebhookEventsTotal.WithLabelValues(payload.Type, "processed").Inc()
	return c.NoContent(http.StatusOK)
}
