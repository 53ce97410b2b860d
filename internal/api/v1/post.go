package v1

import (
	"fmt"
	"time"
)

// Post is a single social-media post as received from the upstream feed.
// Field names on the wire follow the feed: from_id/from_name identify the author,
// message carries the text.
type Post struct {
	// ID is the feed-assigned post identifier. Unique across all authors.
	ID string `json:"id"`

	// AuthorID identifies the author. Statistics compare authors by this value only.
	AuthorID string `json:"from_id"`

	// AuthorName is informational and never used for grouping.
	AuthorName string `json:"from_name"`

	// Text is the post body.
	Text string `json:"message"`

	// Type is the feed post type (e.g. "status").
	Type string `json:"type"`

	// CreatedTime is when the author published the post.
	CreatedTime time.Time `json:"created_time"`

	// IngestedAt is set by the ingestion service, not the client.
	IngestedAt time.Time `json:"ingested_at"`
}

// Validate ensures the post carries the attributes statistics depend on.
func (p *Post) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("id is required")
	}

	if p.AuthorID == "" {
		return fmt.Errorf("from_id is required")
	}

	if p.CreatedTime.IsZero() {
		return fmt.Errorf("created_time is required")
	}

	return nil
}
