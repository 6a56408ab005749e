package githubapi

import "time"

// User is the subset of a GitHub account the scoring pipeline reads
type User struct {
	Login string `json:"login"`
}

// Issue is a GitHub issue or pull request as returned by the search API.
// Pull requests carry a non-nil PullRequest marker.
type Issue struct {
	Number      int        `json:"number"`
	Title       string     `json:"title"`
	User        User       `json:"user"`
	Assignee    *User      `json:"assignee"`
	ClosedAt    *time.Time `json:"closed_at"`
	PullRequest *struct {
		MergedAt *time.Time `json:"merged_at"`
	} `json:"pull_request,omitempty"`
}

// Review is a submitted pull request review
type Review struct {
	User        User       `json:"user"`
	State       string     `json:"state"`
	SubmittedAt *time.Time `json:"submitted_at"`
}

// searchResult is the envelope the search API wraps results in
type searchResult struct {
	TotalCount int     `json:"total_count"`
	Items      []Issue `json:"items"`
}

// apiError is the error envelope GitHub returns on non-2xx responses
type apiError struct {
	Message string `json:"message"`
}
