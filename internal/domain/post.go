package domain

import (
	"time"
)

// Post is a recent community question considered as a recommendation candidate.
type Post struct {
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

// PostWindow bounds the recent-activity corpus scanned per recommendation request.
type PostWindow struct {
	Since time.Time
	Limit int
}

type PostListOptions struct {
	Page, PageSize int
}
