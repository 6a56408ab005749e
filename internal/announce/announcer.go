// Package announce relays community events to a Discord channel through a
// webhook. It is best-effort: a failed send is logged and counted, never
// surfaced to the code path that published the event.
package announce

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/funckode/funckode/internal/event"
	"github.com/funckode/funckode/internal/logger"
	"github.com/funckode/funckode/internal/metrics"
)

// webhookExecutor is the slice of discordgo.Session the announcer needs
type webhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Announcer sends formatted event announcements to a Discord webhook.
// A zero-configured announcer (empty webhook URL) accepts events and
// drops them silently.
type Announcer struct {
	exec      webhookExecutor
	webhookID string
	token     string
	delay     time.Duration

	mu       sync.Mutex
	lastSend time.Time
}

// New builds an announcer for the given webhook URL. An empty URL yields
// a disabled announcer, not an error.
func New(webhookURL string) (*Announcer, error) {
	if webhookURL == "" {
		return &Announcer{delay: MessageDelay}, nil
	}

	id, token, err := parseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}

	// Webhook execution is unauthenticated; the session carries no bot token.
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	return &Announcer{
		exec:      session,
		webhookID: id,
		token:     token,
		delay:     MessageDelay,
	}, nil
}

// Enabled reports whether a webhook is configured
func (a *Announcer) Enabled() bool {
	return a.exec != nil
}

// Register subscribes the announcer to the event types it narrates
func (a *Announcer) Register(ctx context.Context, bus event.Bus) {
	if !a.Enabled() {
		logger.FromContext(ctx).Info(LogMsgAnnouncerDisabled)
		return
	}

	bus.Subscribe(event.BadgeAwarded, a.handleBadgeAwarded)
	bus.Subscribe(event.LevelUp, a.handleLevelUp)
	bus.Subscribe(event.StreakMilestone, a.handleStreakMilestone)
	bus.Subscribe(event.TopContributorSelected, a.handleTopContributor)
}

func (a *Announcer) handleBadgeAwarded(ctx context.Context, e event.Event) error {
	payload, err := event.DecodePayload[event.BadgeAwardedPayloadV1](e.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgDecodeFailed, "eventType", e.Type, "error", err)
		return nil
	}

	a.send(ctx, fmt.Sprintf(MsgFmtBadgeAwarded, "🏅", payload.Username, badgeTitle(payload.BadgeType)))
	return nil
}

func (a *Announcer) handleLevelUp(ctx context.Context, e event.Event) error {
	payload, err := event.DecodePayload[event.LevelUpPayloadV1](e.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgDecodeFailed, "eventType", e.Type, "error", err)
		return nil
	}

	a.send(ctx, fmt.Sprintf(MsgFmtLevelUp, payload.Username, payload.OldLevel, payload.NewLevel))
	return nil
}

func (a *Announcer) handleStreakMilestone(ctx context.Context, e event.Event) error {
	payload, err := event.DecodePayload[event.StreakMilestonePayloadV1](e.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgDecodeFailed, "eventType", e.Type, "error", err)
		return nil
	}

	a.send(ctx, fmt.Sprintf(MsgFmtStreak, payload.Username, payload.Streak))
	return nil
}

func (a *Announcer) handleTopContributor(ctx context.Context, e event.Event) error {
	payload, err := event.DecodePayload[event.TopContributorSelectedPayloadV1](e.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgDecodeFailed, "eventType", e.Type, "error", err)
		return nil
	}

	a.send(ctx, fmt.Sprintf(MsgFmtTopContributor, payload.Username, payload.Month, payload.Score))
	return nil
}

// send posts a single message, pacing consecutive sends by the configured
// delay. Failures are logged and counted but never returned.
func (a *Announcer) send(ctx context.Context, content string) {
	if !a.Enabled() {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if wait := a.delay - time.Since(a.lastSend); wait > 0 {
		time.Sleep(wait)
	}
	a.lastSend = time.Now()

	_, err := a.exec.WebhookExecute(a.webhookID, a.token, false, &discordgo.WebhookParams{
		Content:   content,
		Username:  AnnouncerUsername,
		AvatarURL: AnnouncerAvatarURL,
	})
	if err != nil {
		metrics.AnnouncementFailures.Inc()
		logger.FromContext(ctx).Error(LogMsgSendFailed, "error", err)
		return
	}

	metrics.AnnouncementsSent.Inc()
	logger.FromContext(ctx).Debug(LogMsgAnnouncementSent, "length", len(content))
}

var titleCaser = cases.Title(language.English)

// badgeTitle renders a badge identifier as display text ("first_pr" -> "First Pr")
func badgeTitle(badgeType string) string {
	return titleCaser.String(strings.ReplaceAll(badgeType, "_", " "))
}

// parseWebhookURL extracts the webhook ID and token from a Discord
// webhook URL of the form https://discord.com/api/webhooks/{id}/{token}
func parseWebhookURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", ErrMsgInvalidWebhookURL, err)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, seg := range segments {
		if seg == "webhooks" && i+2 < len(segments) && segments[i+1] != "" && segments[i+2] != "" {
			return segments[i+1], segments[i+2], nil
		}
	}

	return "", "", errors.New(ErrMsgInvalidWebhookURL)
}
