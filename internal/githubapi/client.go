// Package githubapi is a minimal GitHub REST client covering the calls the
// monthly contribution scoring needs: merged pull requests, closed issues,
// and pull request reviews for a repository within a date window.
package githubapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/funckode/funckode/internal/logger"
)

// API defines the GitHub operations the scoring pipeline depends on
type API interface {
	// SearchMergedPRs returns pull requests merged in [from, to], inclusive by day
	SearchMergedPRs(ctx context.Context, ownerRepo string, from, to time.Time) ([]Issue, error)

	// SearchClosedIssues returns issues closed in [from, to], inclusive by day
	SearchClosedIssues(ctx context.Context, ownerRepo string, from, to time.Time) ([]Issue, error)

	// ListReviews returns the submitted reviews on a pull request
	ListReviews(ctx context.Context, ownerRepo string, prNumber int) ([]Review, error)
}

// Client implements API against the GitHub REST API
type Client struct {
	BaseURL string
	Client  *http.Client
	Token   string
}

var _ API = (*Client)(nil)

// NewClient creates a GitHub client. An empty token sends unauthenticated
// requests, which GitHub rate-limits far more aggressively.
func NewClient(token string) *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		Client: &http.Client{
			Timeout: requestTimeout,
		},
		Token: token,
	}
}

// SearchMergedPRs returns pull requests merged within the window
func (c *Client) SearchMergedPRs(ctx context.Context, ownerRepo string, from, to time.Time) ([]Issue, error) {
	if err := validateOwnerRepo(ownerRepo); err != nil {
		return nil, err
	}
	query := fmt.Sprintf("repo:%s is:pr is:merged merged:%s..%s",
		ownerRepo, from.Format("2006-01-02"), to.Format("2006-01-02"))
	return c.searchIssues(ctx, query)
}

// SearchClosedIssues returns issues closed within the window
func (c *Client) SearchClosedIssues(ctx context.Context, ownerRepo string, from, to time.Time) ([]Issue, error) {
	if err := validateOwnerRepo(ownerRepo); err != nil {
		return nil, err
	}
	query := fmt.Sprintf("repo:%s is:issue is:closed closed:%s..%s",
		ownerRepo, from.Format("2006-01-02"), to.Format("2006-01-02"))
	return c.searchIssues(ctx, query)
}

// ListReviews returns all submitted reviews on the given pull request
func (c *Client) ListReviews(ctx context.Context, ownerRepo string, prNumber int) ([]Review, error) {
	if err := validateOwnerRepo(ownerRepo); err != nil {
		return nil, err
	}

	var all []Review
	for page := 1; ; page++ {
		path := fmt.Sprintf("/repos/%s/pulls/%d/reviews?per_page=%d&page=%d",
			ownerRepo, prNumber, perPage, page)

		var reviews []Review
		if err := c.get(ctx, path, &reviews); err != nil {
			return nil, err
		}

		all = append(all, reviews...)
		if len(reviews) < perPage {
			return all, nil
		}
	}
}

// searchIssues pages through the search API for the given query
func (c *Client) searchIssues(ctx context.Context, query string) ([]Issue, error) {
	var all []Issue
	for page := 1; page <= maxSearchPages; page++ {
		path := fmt.Sprintf("/search/issues?q=%s&per_page=%d&page=%d",
			url.QueryEscape(query), perPage, page)

		var result searchResult
		if err := c.get(ctx, path, &result); err != nil {
			return nil, err
		}

		all = append(all, result.Items...)
		if len(all) >= result.TotalCount || len(result.Items) < perPage {
			return all, nil
		}
	}
	return all, nil
}

// get performs a GET with retries on transport errors and 5xx responses,
// decoding the JSON body into result
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			delay := retryDelay * time.Duration(1<<(attempt-1))
			delay += time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			log.Debug(LogMsgRetryingRequest, "attempt", attempt, "delay", delay, "path", path)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
		if err != nil {
			return fmt.Errorf(ErrMsgCreateRequest, err)
		}
		req.Header.Set("Accept", acceptHeader)
		if c.Token != "" {
			req.Header.Set("Authorization", "Bearer "+c.Token)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode >= 500 {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			lastErr = fmt.Errorf(ErrMsgAPIError, resp.StatusCode, strings.TrimSpace(string(body)))
			continue
		}

		defer resp.Body.Close()
		c.checkRateLimit(ctx, resp)

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			var apiErr apiError
			if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Message != "" {
				return fmt.Errorf(ErrMsgAPIError, resp.StatusCode, apiErr.Message)
			}
			return fmt.Errorf(ErrMsgAPIError, resp.StatusCode, http.StatusText(resp.StatusCode))
		}

		if result != nil {
			if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
				return fmt.Errorf(ErrMsgDecodeResponse, err)
			}
		}
		return nil
	}

	return fmt.Errorf(ErrMsgExecuteRequest, maxRetries+1, lastErr)
}

// checkRateLimit warns when the remaining request quota drops below 50
func (c *Client) checkRateLimit(ctx context.Context, resp *http.Response) {
	remaining := resp.Header.Get("X-RateLimit-Remaining")
	if remaining == "" {
		return
	}
	if n, err := strconv.Atoi(remaining); err == nil && n < 50 {
		logger.FromContext(ctx).Warn(LogMsgRateLimitLow, "remaining", n)
	}
}

func validateOwnerRepo(ownerRepo string) error {
	parts := strings.Split(ownerRepo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf(ErrMsgOwnerRepo, ownerRepo)
	}
	return nil
}
