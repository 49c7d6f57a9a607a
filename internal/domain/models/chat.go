package models

import (
	"time"
)

// Chat represents one prompt-improvement lineage: the original prompt plus
// every improved version produced for it, newest last.
type Chat struct {
	ID        string    `json:"id"`
	Prompt    string    `json:"prompt"`
	Improved  string    `json:"improved"`
	Versions  []string  `json:"versions,omitempty"`
	Favorited bool      `json:"favorited"`
	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a deep copy so callers cannot mutate stored state.
func (c *Chat) Clone() Chat {
	out := *c
	if c.Versions != nil {
		out.Versions = make([]string, len(c.Versions))
		copy(out.Versions, c.Versions)
	}
	return out
}
