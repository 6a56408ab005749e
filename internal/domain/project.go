package domain

import "time"

// ProjectStatus is the moderation state of a submitted project
type ProjectStatus string

const (
	ProjectPending  ProjectStatus = "pending"
	ProjectApproved ProjectStatus = "approved"
	ProjectRejected ProjectStatus = "rejected"
)

// Project is a community project submission awaiting or past moderation
type Project struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	RepoURL     string        `json:"repo_url"`
	Tags        []string      `json:"tags"`
	Author      string        `json:"author"`
	Status      ProjectStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	ModeratedAt *time.Time    `json:"moderated_at,omitempty"`
}

// CommunityEvent is a scheduled community gathering contributors can RSVP to
type CommunityEvent struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	RSVPCount   int       `json:"rsvp_count"`
}

// RSVP records one contributor's attendance intent for an event
type RSVP struct {
	EventID   int64     `json:"event_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
