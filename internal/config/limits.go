package config

const (
	// MaxHistoryEntries is the bound on the chat history. Insertions and
	// merges happen at the head; anything past this bound is dropped from
	// the tail.
	MaxHistoryEntries = 5

	// MaxSuggestions is the maximum number of analyzer suggestions returned.
	// Suggestions past this cut are dropped in generation order.
	MaxSuggestions = 4

	// MinPromptScore / MaxPromptScore bound the analyzer score.
	MinPromptScore = 1
	MaxPromptScore = 10

	// MaxPromptLength is the maximum length for submitted prompts.
	// Generous bound to keep request bodies and share tokens reasonable.
	MaxPromptLength = 10000

	// MaxLogFiles is the number of timestamped log files kept on disk.
	MaxLogFiles = 10
)
