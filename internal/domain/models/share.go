package models

// SharePayload is the only data serialized into a share token.
// Field names are deliberately terse to keep tokens short.
type SharePayload struct {
	Prompt   string `json:"p"`
	Improved string `json:"i"`
}
