package gateway_http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vecivendo/marketplace/internal/pkg/models"
)

// WhatsAppGateway delivers verification codes through the WhatsApp provider API
type WhatsAppGateway struct {
	cfg    models.WhatsAppConfig
	client *http.Client
}

// NewWhatsAppGateway creates a new WhatsApp gateway
func NewWhatsAppGateway(cfg models.WhatsAppConfig) *WhatsAppGateway {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WhatsAppGateway{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

type sendMessageRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// SendCode posts the verification message to the provider. Non-2xx responses
// are errors; the caller decides what happens to the outstanding challenge.
func (g *WhatsAppGateway) SendCode(ctx context.Context, phone, code string) error {
	payload := sendMessageRequest{
		Phone:   phone,
		Message: fmt.Sprintf("Tu código de verificación Vecivendo es: %s", code),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send verification code: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("whatsapp provider returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
