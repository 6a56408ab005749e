// Package toprank selects the community's top contributor for a calendar
// month from GitHub activity and awards the monthly badge. Scoring weighs
// merged pull requests, closed issues, and reviews on other people's PRs.
package toprank

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/funckode/funckode/internal/domain"
	"github.com/funckode/funckode/internal/event"
	"github.com/funckode/funckode/internal/gamification"
	"github.com/funckode/funckode/internal/githubapi"
	"github.com/funckode/funckode/internal/logger"
	"github.com/funckode/funckode/internal/metrics"
)

// Selection is the outcome of one monthly scoring pass
type Selection struct {
	Month    string         `json:"month"`
	Username string         `json:"username,omitempty"`
	Score    int            `json:"score"`
	Scores   map[string]int `json:"scores,omitempty"`

	// Awarded is false when the pass completed without a new badge:
	// no activity, score below minimum, month already selected, or
	// the winner already holds the badge
	Awarded bool   `json:"awarded"`
	Reason  string `json:"reason,omitempty"`
}

// Service defines the interface for monthly top contributor selection
type Service interface {
	// RunMonthly scores the previous calendar month and awards the badge
	RunMonthly(ctx context.Context) (*Selection, error)

	// SelectForMonth scores a specific month and awards the badge
	SelectForMonth(ctx context.Context, year int, month time.Month) (*Selection, error)
}

// service implements the Service interface
type service struct {
	github    githubapi.API
	gamif     gamification.Service
	publisher event.Bus
	ownerRepo string

	now func() time.Time
}

// NewService creates a new top contributor selection service
func NewService(github githubapi.API, gamif gamification.Service, publisher event.Bus, ownerRepo string) Service {
	return &service{
		github:    github,
		gamif:     gamif,
		publisher: publisher,
		ownerRepo: ownerRepo,
		now:       time.Now,
	}
}

// RunMonthly scores the calendar month before the current one
func (s *service) RunMonthly(ctx context.Context) (*Selection, error) {
	prev := s.now().UTC().AddDate(0, -1, 0)
	return s.SelectForMonth(ctx, prev.Year(), prev.Month())
}

// SelectForMonth implements the full selection pass for one month
func (s *service) SelectForMonth(ctx context.Context, year int, month time.Month) (*Selection, error) {
	log := logger.FromContext(ctx)

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	monthKey := from.Format(MonthLayout)

	log.Info(LogMsgSelectionStarted, "month", monthKey, "repo", s.ownerRepo)

	already, err := s.monthAlreadySelected(ctx, monthKey)
	if err != nil {
		return nil, err
	}
	if already {
		log.Info(LogMsgAlreadySelected, "month", monthKey)
		return &Selection{Month: monthKey, Reason: "already selected"}, nil
	}

	scores, err := s.scoreMonth(ctx, from, to)
	if err != nil {
		return nil, err
	}

	if len(scores) == 0 {
		log.Info(LogMsgNoActivity, "month", monthKey)
		return &Selection{Month: monthKey, Scores: scores, Reason: "no activity"}, nil
	}

	winner, topScore := pickWinner(scores)
	if topScore < domain.MinTopContributorScore {
		log.Info(LogMsgBelowMinimum, "month", monthKey, "username", winner, "score", topScore)
		return &Selection{Month: monthKey, Username: winner, Score: topScore, Scores: scores, Reason: "below minimum score"}, nil
	}

	selection := &Selection{
		Month:    monthKey,
		Username: winner,
		Score:    topScore,
		Scores:   scores,
	}

	evidence := map[string]interface{}{
		domain.EvidenceMonth: monthKey,
		domain.EvidenceScore: topScore,
	}

	_, err = s.gamif.AwardBadge(ctx, winner, domain.BadgeTopContributor, evidence)
	switch {
	case errors.Is(err, domain.ErrDuplicateBadge):
		// The badge is single-award; a repeat winner keeps their original
		log.Info(LogMsgDuplicateWinner, "month", monthKey, "username", winner)
		selection.Reason = "winner already holds badge"
		return selection, nil
	case err != nil:
		return nil, fmt.Errorf(ErrMsgAwardFailed, err)
	}

	selection.Awarded = true
	metrics.TopContributorsSelected.Inc()
	log.Info(LogMsgWinnerSelected, "month", monthKey, "username", winner, "score", topScore)

	if s.publisher != nil {
		if pubErr := s.publisher.Publish(ctx, event.NewTopContributorSelectedEvent(winner, topScore, monthKey)); pubErr != nil {
			log.Warn("Failed to publish selection event", "error", pubErr)
		}
	}

	return selection, nil
}

// scoreMonth tallies per-user scores for activity inside [from, to]
func (s *service) scoreMonth(ctx context.Context, from, to time.Time) (map[string]int, error) {
	log := logger.FromContext(ctx)
	scores := make(map[string]int)

	prs, err := s.github.SearchMergedPRs(ctx, s.ownerRepo, from, to)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFetchPRs, err)
	}
	for _, pr := range prs {
		if isBot(pr.User.Login) {
			continue
		}
		scores[pr.User.Login] += domain.ScoreMergedPR
	}

	issues, err := s.github.SearchClosedIssues(ctx, s.ownerRepo, from, to)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFetchIssues, err)
	}
	for _, issue := range issues {
		// Credit the assignee who resolved it; fall back to the reporter
		login := issue.User.Login
		if issue.Assignee != nil && issue.Assignee.Login != "" {
			login = issue.Assignee.Login
		}
		if isBot(login) {
			continue
		}
		scores[login] += domain.ScoreClosedIssue
	}

	for _, pr := range prs {
		reviews, err := s.github.ListReviews(ctx, s.ownerRepo, pr.Number)
		if err != nil {
			// One unreadable PR does not sink the month
			log.Warn(LogMsgReviewFetchFailed, "pr", pr.Number, "error", err)
			continue
		}

		// One credit per distinct reviewer per PR, never the author
		seen := make(map[string]bool)
		for _, review := range reviews {
			login := review.User.Login
			if login == "" || login == pr.User.Login || isBot(login) || seen[login] {
				continue
			}
			seen[login] = true
			scores[login] += domain.ScorePRReview
		}
	}

	return scores, nil
}

// monthAlreadySelected reports whether any contributor already holds a
// top contributor badge with evidence for the given month
func (s *service) monthAlreadySelected(ctx context.Context, monthKey string) (bool, error) {
	contributors, err := s.gamif.GetAllContributors(ctx)
	if err != nil {
		return false, fmt.Errorf(ErrMsgListRecords, err)
	}

	for i := range contributors {
		for _, award := range contributors[i].Badges {
			if award.Type != domain.BadgeTopContributor || award.Evidence == nil {
				continue
			}
			if m, ok := award.Evidence[domain.EvidenceMonth].(string); ok && m == monthKey {
				return true, nil
			}
		}
	}
	return false, nil
}

// pickWinner returns the highest score, breaking ties by the
// lexicographically smallest username
func pickWinner(scores map[string]int) (string, int) {
	usernames := make([]string, 0, len(scores))
	for username := range scores {
		usernames = append(usernames, username)
	}
	sort.Strings(usernames)

	winner, best := "", 0
	for _, username := range usernames {
		if scores[username] > best {
			winner, best = username, scores[username]
		}
	}
	return winner, best
}

func isBot(login string) bool {
	return strings.HasSuffix(login, "[bot]")
}
