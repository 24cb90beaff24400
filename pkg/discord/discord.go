package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"campaign-srv/pkg/log"
)

// IDiscord defines the interface for the Discord webhook notifier.
// Implementations are safe for concurrent use.
type IDiscord interface {
	SendMessage(ctx context.Context, content string) error
	SendError(ctx context.Context, title, description string, err error) error
	SendInfo(ctx context.Context, title, description string) error
}

// DiscordWebhook contains webhook information for the Discord API.
type DiscordWebhook struct {
	ID    string
	Token string
}

// New creates a new Discord notifier. Returns the interface.
func New(l log.Logger, webhook *DiscordWebhook) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	return &discordImpl{
		l:       l,
		webhook: webhook,
		client:  &http.Client{Timeout: defaultTimeout},
	}, nil
}

type discordImpl struct {
	l       log.Logger
	webhook *DiscordWebhook
	client  *http.Client
}

type embed struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Color       int    `json:"color,omitempty"`
}

type webhookPayload struct {
	Content string  `json:"content,omitempty"`
	Embeds  []embed `json:"embeds,omitempty"`
}

const (
	defaultTimeout = 10 * time.Second
	colorRed       = 0xE74C3C
	colorBlue      = 0x3498DB
)

var errWebhookRequired = fmt.Errorf("discord: webhook ID and token are required")

// SendMessage posts a plain text message to the webhook.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.post(ctx, webhookPayload{Content: content})
}

// SendError posts an error embed to the webhook.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	desc := description
	if err != nil {
		desc = fmt.Sprintf("%s\n```%v```", description, err)
	}
	return d.post(ctx, webhookPayload{Embeds: []embed{{
		Title:       title,
		Description: desc,
		Color:       colorRed,
	}}})
}

// SendInfo posts an informational embed to the webhook.
func (d *discordImpl) SendInfo(ctx context.Context, title, description string) error {
	return d.post(ctx, webhookPayload{Embeds: []embed{{
		Title:       title,
		Description: description,
		Color:       colorBlue,
	}}})
}

func (d *discordImpl) post(ctx context.Context, payload webhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: failed to marshal payload: %w", err)
	}

	url := fmt.Sprintf("https://discord.com/api/webhooks/%s/%s", d.webhook.ID, d.webhook.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("discord: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("discord: webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("discord: webhook returned status %d", resp.StatusCode)
	}
	return nil
}
