package toprank

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funckode/funckode/internal/domain"
	"github.com/funckode/funckode/internal/event"
	"github.com/funckode/funckode/internal/githubapi"
)

// githubIssue is a compact fixture expanded into githubapi.Issue by the mock
type githubIssue struct {
	Number   int
	Author   string
	Assignee string
}

// githubReview is a compact fixture expanded into githubapi.Review
type githubReview struct {
	Reviewer string
	State    string
}

// mockGitHub serves canned activity for one scored window
type mockGitHub struct {
	prs       []githubIssue
	issues    []githubIssue
	reviews   map[int][]githubReview
	reviewErr map[int]error

	searchCalls int
	gotFrom     time.Time
	gotTo       time.Time
}

func toAPIIssues(fixtures []githubIssue) []githubapi.Issue {
	var out []githubapi.Issue
	for _, f := range fixtures {
		issue := githubapi.Issue{
			Number: f.Number,
			User:   githubapi.User{Login: f.Author},
		}
		if f.Assignee != "" {
			issue.Assignee = &githubapi.User{Login: f.Assignee}
		}
		out = append(out, issue)
	}
	return out
}

func (m *mockGitHub) SearchMergedPRs(ctx context.Context, ownerRepo string, from, to time.Time) ([]githubapi.Issue, error) {
	m.searchCalls++
	m.gotFrom, m.gotTo = from, to
	return toAPIIssues(m.prs), nil
}

func (m *mockGitHub) SearchClosedIssues(ctx context.Context, ownerRepo string, from, to time.Time) ([]githubapi.Issue, error) {
	m.searchCalls++
	return toAPIIssues(m.issues), nil
}

func (m *mockGitHub) ListReviews(ctx context.Context, ownerRepo string, prNumber int) ([]githubapi.Review, error) {
	if err := m.reviewErr[prNumber]; err != nil {
		return nil, err
	}
	var out []githubapi.Review
	for _, r := range m.reviews[prNumber] {
		out = append(out, githubapi.Review{User: githubapi.User{Login: r.Reviewer}, State: r.State})
	}
	return out, nil
}

// mockGamification records awards and serves existing contributor records
type mockGamification struct {
	contributors []domain.Contributor
	awardErr     error

	awardedUser     string
	awardedBadge    domain.BadgeType
	awardedEvidence map[string]interface{}
	awardCalls      int
}

func (m *mockGamification) AwardBadge(ctx context.Context, username string, badgeType domain.BadgeType, evidence map[string]interface{}) (*domain.AwardResult, error) {
	m.awardCalls++
	m.awardedUser = username
	m.awardedBadge = badgeType
	m.awardedEvidence = evidence
	if m.awardErr != nil {
		return &domain.AwardResult{Username: username, Duplicate: errors.Is(m.awardErr, domain.ErrDuplicateBadge)}, m.awardErr
	}
	return &domain.AwardResult{Username: username, Badge: badgeType}, nil
}

func (m *mockGamification) GetContributor(ctx context.Context, username string) (*domain.Contributor, error) {
	return nil, domain.ErrContributorNotFound
}

func (m *mockGamification) GetAllContributors(ctx context.Context) ([]domain.Contributor, error) {
	return m.contributors, nil
}

// capturingBus records published events
type capturingBus struct {
	events []event.Event
}

func (b *capturingBus) Publish(ctx context.Context, e event.Event) error {
	b.events = append(b.events, e)
	return nil
}

func (b *capturingBus) Subscribe(eventType event.Type, handler event.Handler) {}

var testNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func newTestService(github *mockGitHub, gamif *mockGamification, bus *capturingBus) *service {
	svc := NewService(github, gamif, bus, "funckode/community").(*service)
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestSelectForMonth_AwardsWinner(t *testing.T) {
	ctx := context.Background()

	github := &mockGitHub{
		prs: []githubIssue{
			{Number: 1, Author: "alice"},
			{Number: 2, Author: "alice"},
		},
		issues: []githubIssue{
			{Number: 30, Author: "dave", Assignee: "bob"},
		},
		reviews: map[int][]githubReview{
			1: {
				{Reviewer: "carol", State: "APPROVED"},
				{Reviewer: "alice", State: "COMMENTED"}, // self-review, ignored
			},
		},
	}
	gamif := &mockGamification{}
	bus := &capturingBus{}
	svc := newTestService(github, gamif, bus)

	sel, err := svc.SelectForMonth(ctx, 2026, time.July)
	require.NoError(t, err)

	assert.True(t, sel.Awarded)
	assert.Equal(t, "alice", sel.Username)
	assert.Equal(t, 6, sel.Score, "two merged PRs at three points each")
	assert.Equal(t, "2026-07", sel.Month)
	assert.Equal(t, map[string]int{"alice": 6, "bob": 1, "carol": 2}, sel.Scores)

	assert.Equal(t, "alice", gamif.awardedUser)
	assert.Equal(t, domain.BadgeTopContributor, gamif.awardedBadge)
	assert.Equal(t, "2026-07", gamif.awardedEvidence[domain.EvidenceMonth])
	assert.Equal(t, 6, gamif.awardedEvidence[domain.EvidenceScore])

	require.Len(t, bus.events, 1)
	assert.Equal(t, event.TopContributorSelected, bus.events[0].Type)
	payload, err := event.DecodePayload[event.TopContributorSelectedPayloadV1](bus.events[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, "alice", payload.Username)
	assert.Equal(t, "2026-07", payload.Month)
}

func TestSelectForMonth_TieBreaksLexicographically(t *testing.T) {
	ctx := context.Background()

	github := &mockGitHub{
		prs: []githubIssue{
			{Number: 1, Author: "zoe"},
			{Number: 2, Author: "amy"},
		},
	}
	gamif := &mockGamification{}
	svc := newTestService(github, gamif, &capturingBus{})

	sel, err := svc.SelectForMonth(ctx, 2026, time.July)
	require.NoError(t, err)

	assert.Equal(t, "amy", sel.Username)
	assert.Equal(t, 3, sel.Score)
}

func TestSelectForMonth_BelowMinimumScore(t *testing.T) {
	ctx := context.Background()

	github := &mockGitHub{
		issues: []githubIssue{{Number: 5, Author: "alice"}},
	}
	gamif := &mockGamification{}
	bus := &capturingBus{}
	svc := newTestService(github, gamif, bus)

	sel, err := svc.SelectForMonth(ctx, 2026, time.July)
	require.NoError(t, err)

	assert.False(t, sel.Awarded)
	assert.Equal(t, "below minimum score", sel.Reason)
	assert.Equal(t, 0, gamif.awardCalls)
	assert.Empty(t, bus.events)
}

func TestSelectForMonth_NoActivity(t *testing.T) {
	ctx := context.Background()

	svc := newTestService(&mockGitHub{}, &mockGamification{}, &capturingBus{})

	sel, err := svc.SelectForMonth(ctx, 2026, time.July)
	require.NoError(t, err)

	assert.False(t, sel.Awarded)
	assert.Equal(t, "no activity", sel.Reason)
}

func TestSelectForMonth_AlreadySelectedSkipsGitHub(t *testing.T) {
	ctx := context.Background()

	existing := domain.Contributor{
		Username: "past-winner",
		Badges: []domain.BadgeAward{{
			Type:     domain.BadgeTopContributor,
			Evidence: map[string]interface{}{domain.EvidenceMonth: "2026-07"},
		}},
	}

	github := &mockGitHub{prs: []githubIssue{{Number: 1, Author: "alice"}}}
	gamif := &mockGamification{contributors: []domain.Contributor{existing}}
	svc := newTestService(github, gamif, &capturingBus{})

	sel, err := svc.SelectForMonth(ctx, 2026, time.July)
	require.NoError(t, err)

	assert.False(t, sel.Awarded)
	assert.Equal(t, "already selected", sel.Reason)
	assert.Equal(t, 0, github.searchCalls, "no GitHub traffic when the month is settled")
}

func TestSelectForMonth_EvidenceMonthSurvivesJSONRoundTrip(t *testing.T) {
	ctx := context.Background()

	// A record loaded from disk carries float64 evidence values; the month
	// key stays a string and must still gate the pass
	existing := domain.Contributor{
		Username: "past-winner",
		Badges: []domain.BadgeAward{{
			Type: domain.BadgeTopContributor,
			Evidence: map[string]interface{}{
				domain.EvidenceMonth: "2026-07",
				domain.EvidenceScore: float64(9),
			},
		}},
	}

	svc := newTestService(&mockGitHub{}, &mockGamification{contributors: []domain.Contributor{existing}}, &capturingBus{})

	sel, err := svc.SelectForMonth(ctx, 2026, time.July)
	require.NoError(t, err)
	assert.Equal(t, "already selected", sel.Reason)

	// A different month is unaffected
	github := &mockGitHub{}
	svc = newTestService(github, &mockGamification{contributors: []domain.Contributor{existing}}, &capturingBus{})
	sel, err = svc.SelectForMonth(ctx, 2026, time.June)
	require.NoError(t, err)
	assert.Equal(t, "no activity", sel.Reason)
}

func TestSelectForMonth_DuplicateWinnerIsNotAnError(t *testing.T) {
	ctx := context.Background()

	github := &mockGitHub{prs: []githubIssue{{Number: 1, Author: "alice"}}}
	gamif := &mockGamification{awardErr: fmt.Errorf("award: %w", domain.ErrDuplicateBadge)}
	bus := &capturingBus{}
	svc := newTestService(github, gamif, bus)

	sel, err := svc.SelectForMonth(ctx, 2026, time.July)
	require.NoError(t, err)

	assert.False(t, sel.Awarded)
	assert.Equal(t, "winner already holds badge", sel.Reason)
	assert.Equal(t, "alice", sel.Username)
	assert.Empty(t, bus.events)
}

func TestSelectForMonth_BotsExcluded(t *testing.T) {
	ctx := context.Background()

	github := &mockGitHub{
		prs: []githubIssue{
			{Number: 1, Author: "dependabot[bot]"},
			{Number: 2, Author: "alice"},
		},
		reviews: map[int][]githubReview{
			2: {{Reviewer: "renovate[bot]", State: "APPROVED"}},
		},
	}
	gamif := &mockGamification{}
	svc := newTestService(github, gamif, &capturingBus{})

	sel, err := svc.SelectForMonth(ctx, 2026, time.July)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"alice": 3}, sel.Scores)
}

func TestSelectForMonth_ReviewsDedupedPerPR(t *testing.T) {
	ctx := context.Background()

	github := &mockGitHub{
		prs: []githubIssue{{Number: 1, Author: "alice"}},
		reviews: map[int][]githubReview{
			1: {
				{Reviewer: "carol", State: "CHANGES_REQUESTED"},
				{Reviewer: "carol", State: "APPROVED"},
			},
		},
	}
	svc := newTestService(github, &mockGamification{}, &capturingBus{})

	sel, err := svc.SelectForMonth(ctx, 2026, time.July)
	require.NoError(t, err)

	assert.Equal(t, domain.ScorePRReview, sel.Scores["carol"])
}

func TestSelectForMonth_ReviewFetchFailureTolerated(t *testing.T) {
	ctx := context.Background()

	github := &mockGitHub{
		prs: []githubIssue{
			{Number: 1, Author: "alice"},
			{Number: 2, Author: "alice"},
		},
		reviews: map[int][]githubReview{
			2: {{Reviewer: "carol", State: "APPROVED"}},
		},
		reviewErr: map[int]error{1: errors.New("boom")},
	}
	svc := newTestService(github, &mockGamification{}, &capturingBus{})

	sel, err := svc.SelectForMonth(ctx, 2026, time.July)
	require.NoError(t, err)

	assert.Equal(t, 6, sel.Scores["alice"])
	assert.Equal(t, 2, sel.Scores["carol"])
}

func TestRunMonthly_ScoresPreviousCalendarMonth(t *testing.T) {
	ctx := context.Background()

	github := &mockGitHub{}
	svc := newTestService(github, &mockGamification{}, &capturingBus{})

	_, err := svc.RunMonthly(ctx)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), github.gotFrom)
	assert.Equal(t, time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC), github.gotTo)
}

func TestPickWinner(t *testing.T) {
	username, score := pickWinner(map[string]int{"zoe": 5, "amy": 5, "bob": 2})
	assert.Equal(t, "amy", username)
	assert.Equal(t, 5, score)
}
