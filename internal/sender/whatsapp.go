package sender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Channel submits one flat text message to one destination.
type Channel interface {
	Send(ctx context.Context, destination, text string) error
	Name() string
}

// WhatsAppChannel sends messages through the WhatsApp Cloud API.
type WhatsAppChannel struct {
	BaseURL     string
	PhoneID     string
	AccessToken string
	Client      *http.Client
}

// NewWhatsAppChannel creates a channel with optional proxy support.
func NewWhatsAppChannel(baseURL, phoneID, accessToken, proxyURL string) *WhatsAppChannel {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &WhatsAppChannel{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		PhoneID:     phoneID,
		AccessToken: accessToken,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (w *WhatsAppChannel) Name() string { return "whatsapp" }

// Send posts a text message. The API wants the destination without
// the leading "+".
func (w *WhatsAppChannel) Send(ctx context.Context, destination, text string) error {
	payload := map[string]any{
		"messaging_product": "whatsapp",
		"recipient_type":    "individual",
		"to":                strings.TrimPrefix(destination, "+"),
		"type":              "text",
		"text": map[string]any{
			"preview_url": false,
			"body":        text,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	apiURL := fmt.Sprintf("%s/%s/messages", w.BaseURL, w.PhoneID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+w.AccessToken)

	resp, err := w.Client.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("whatsapp API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
