package announce

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funckode/funckode/internal/domain"
	"github.com/funckode/funckode/internal/event"
)

// fakeExecutor captures webhook calls without touching Discord
type fakeExecutor struct {
	mu      sync.Mutex
	calls   []discordgo.WebhookParams
	lastID  string
	lastTok string
	execErr error
}

func (f *fakeExecutor) WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastID = webhookID
	f.lastTok = token
	f.calls = append(f.calls, *data)
	return &discordgo.Message{}, f.execErr
}

func newTestAnnouncer(exec webhookExecutor) *Announcer {
	return &Announcer{
		exec:      exec,
		webhookID: "123",
		token:     "abc",
	}
}

func TestParseWebhookURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantID    string
		wantToken string
		wantErr   bool
	}{
		{
			name:      "standard webhook URL",
			url:       "https://discord.com/api/webhooks/1234567890/s3cr3t-t0ken",
			wantID:    "1234567890",
			wantToken: "s3cr3t-t0ken",
		},
		{
			name:      "versioned API path",
			url:       "https://discord.com/api/v10/webhooks/42/tok",
			wantID:    "42",
			wantToken: "tok",
		},
		{
			name:    "missing token",
			url:     "https://discord.com/api/webhooks/1234567890",
			wantErr: true,
		},
		{
			name:    "not a webhook URL",
			url:     "https://example.com/something",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, token, err := parseWebhookURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestNew_EmptyURLDisabled(t *testing.T) {
	a, err := New("")
	require.NoError(t, err)
	assert.False(t, a.Enabled())

	// A disabled announcer drops sends without panicking
	a.send(context.Background(), "hello")
}

func TestAnnouncer_BadgeAwarded(t *testing.T) {
	exec := &fakeExecutor{}
	a := newTestAnnouncer(exec)
	bus := event.NewMemoryBus()
	a.Register(context.Background(), bus)

	err := bus.Publish(context.Background(), event.NewBadgeAwardedEvent("octocat", domain.BadgeFirstPR, 5, nil))
	require.NoError(t, err)

	require.Len(t, exec.calls, 1)
	assert.Contains(t, exec.calls[0].Content, "octocat")
	assert.Contains(t, exec.calls[0].Content, "First Pr")
	assert.Equal(t, AnnouncerUsername, exec.calls[0].Username)
	assert.Equal(t, AnnouncerAvatarURL, exec.calls[0].AvatarURL)
	assert.Equal(t, "123", exec.lastID)
	assert.Equal(t, "abc", exec.lastTok)
}

func TestAnnouncer_LevelUp(t *testing.T) {
	exec := &fakeExecutor{}
	a := newTestAnnouncer(exec)
	bus := event.NewMemoryBus()
	a.Register(context.Background(), bus)

	err := bus.Publish(context.Background(), event.NewLevelUpEvent("octocat", 1, 2, 12))
	require.NoError(t, err)

	require.Len(t, exec.calls, 1)
	assert.Contains(t, exec.calls[0].Content, "Level 1 → Level 2")
}

func TestAnnouncer_StreakMilestone(t *testing.T) {
	exec := &fakeExecutor{}
	a := newTestAnnouncer(exec)
	bus := event.NewMemoryBus()
	a.Register(context.Background(), bus)

	err := bus.Publish(context.Background(), event.NewStreakMilestoneEvent("octocat", 14))
	require.NoError(t, err)

	require.Len(t, exec.calls, 1)
	assert.Contains(t, exec.calls[0].Content, "14-day")
}

func TestAnnouncer_TopContributor(t *testing.T) {
	exec := &fakeExecutor{}
	a := newTestAnnouncer(exec)
	bus := event.NewMemoryBus()
	a.Register(context.Background(), bus)

	err := bus.Publish(context.Background(), event.NewTopContributorSelectedEvent("octocat", 17, "2026-07"))
	require.NoError(t, err)

	require.Len(t, exec.calls, 1)
	assert.Contains(t, exec.calls[0].Content, "2026-07")
	assert.Contains(t, exec.calls[0].Content, "17")
}

func TestAnnouncer_SendFailureIsSwallowed(t *testing.T) {
	exec := &fakeExecutor{execErr: errors.New("discord is down")}
	a := newTestAnnouncer(exec)
	bus := event.NewMemoryBus()
	a.Register(context.Background(), bus)

	// The publish path never sees webhook failures
	err := bus.Publish(context.Background(), event.NewLevelUpEvent("octocat", 1, 2, 12))
	assert.NoError(t, err)
	assert.Len(t, exec.calls, 1)
}

func TestAnnouncer_MalformedPayloadIgnored(t *testing.T) {
	exec := &fakeExecutor{}
	a := newTestAnnouncer(exec)
	bus := event.NewMemoryBus()
	a.Register(context.Background(), bus)

	err := bus.Publish(context.Background(), event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.BadgeAwarded,
		Payload: make(chan int), // not decodable
	})
	assert.NoError(t, err)
	assert.Empty(t, exec.calls)
}
