package models

// AnalysisResult is the heuristic quality assessment of a prompt.
// Derived on every input change, never persisted.
type AnalysisResult struct {
	Score       int      `json:"score"`   // 1..10
	Percent     int      `json:"percent"` // Score as 0..100
	Suggestions []string `json:"suggestions"`
}

// DiffSegment is one token of a word-level diff of an improved text against
// its original. Whitespace runs are their own (never added) segments.
type DiffSegment struct {
	Text  string `json:"text"`
	Added bool   `json:"added"`
}
