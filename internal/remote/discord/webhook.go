package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/relictools/relicrater/internal/event"
)

// Notifier posts rating results and failed mutations to a Discord webhook.
type Notifier struct {
	url    string
	client *http.Client
}

func NewNotifier(webhookURL string) *Notifier {
	return &Notifier{
		url: strings.TrimSpace(webhookURL),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Handle is registered on the event listener.
func (n *Notifier) Handle(ctx context.Context, e event.Event) error {
	switch evt := e.(type) {
	case event.RelicRatedEvent:
		return n.sendEmbed(ctx, ratedEmbed(evt))
	case event.MutationFailedEvent:
		return n.send(ctx, "Template update failed: "+evt.Message())
	}
	return nil
}

func ratedEmbed(evt event.RelicRatedEvent) *discordgo.MessageEmbed {
	rangeText := fmt.Sprintf("%.2f%%", evt.MaxPercent)
	if evt.MinPercent != evt.MaxPercent {
		rangeText = fmt.Sprintf("%.2f%% - %.2f%%", evt.MinPercent, evt.MaxPercent)
	}

	return &discordgo.MessageEmbed{
		Title: "Relic rated",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Set", Value: evt.SetName, Inline: true},
			{Name: "Part", Value: evt.PartName, Inline: true},
			{Name: "Score", Value: rangeText, Inline: true},
			{Name: "Characters", Value: strings.Join(evt.Characters, ", ")},
		},
		Timestamp: evt.OccurredAt().Format(time.RFC3339),
	}
}

func (n *Notifier) send(ctx context.Context, content string) error {
	return n.post(ctx, map[string]any{"content": content})
}

func (n *Notifier) sendEmbed(ctx context.Context, embed *discordgo.MessageEmbed) error {
	return n.post(ctx, map[string]any{"embeds": []*discordgo.MessageEmbed{embed}})
}

func (n *Notifier) post(ctx context.Context, payload map[string]any) error {
	if n.url == "" {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to prepare webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	return nil
}
