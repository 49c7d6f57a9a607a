// Package share encodes a (prompt, improved) pair into an opaque URL-safe
// token for link sharing, and decodes such tokens back.
//
// The wire form is layered: JSON {p, i} -> percent-escape -> URL-safe base64.
package share

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"promptimize/internal/domain"
	"promptimize/internal/domain/models"
)

// QueryParam is the URL query parameter carrying the share token
const QueryParam = "s"

// Encode serializes a prompt/improved pair into a share token
func Encode(prompt, improved string) (string, error) {
	payload, err := json.Marshal(models.SharePayload{Prompt: prompt, Improved: improved})
	if err != nil {
		return "", fmt.Errorf("marshal share payload: %w", err)
	}

	escaped := url.QueryEscape(string(payload))
	return base64.URLEncoding.EncodeToString([]byte(escaped)), nil
}

// Decode inverts Encode. Every failure mode (bad base64, bad escaping, bad
// JSON, empty fields) maps to domain.ErrDecode so callers can degrade to a
// no-op instead of crashing on untrusted input.
func Decode(token string) (*models.SharePayload, error) {
	escaped, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid token encoding", domain.ErrDecode)
	}

	raw, err := url.QueryUnescape(string(escaped))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid token escaping", domain.ErrDecode)
	}

	var payload models.SharePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("%w: invalid share payload", domain.ErrDecode)
	}

	if err := validatePayload(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}

	return &payload, nil
}

// URL builds the shareable link carrying the token
func URL(base, token string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse share base URL: %w", err)
	}

	q := u.Query()
	q.Set(QueryParam, token)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func validatePayload(p *models.SharePayload) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Prompt, validation.Required),
		validation.Field(&p.Improved, validation.Required),
	)
}
