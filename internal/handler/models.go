package handler

import (
	"promptimize/internal/domain/models"
)

// ShareRequest is the DTO for creating a share link
type ShareRequest struct {
	Prompt   string `json:"prompt"`
	Improved string `json:"improved"`
}

// ShareResponse carries the opaque token plus the ready-to-copy link
type ShareResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// VersionHistoryResponse is the version-history view of a chat: the original
// prompt and every improved version, each with its diff against the prompt.
type VersionHistoryResponse struct {
	Prompt   string            `json:"prompt"`
	Versions []ImprovedVersion `json:"versions"`
}

// ImprovedVersion is one improved text and its word-level diff
type ImprovedVersion struct {
	Text string               `json:"text"`
	Diff []models.DiffSegment `json:"diff"`
}
