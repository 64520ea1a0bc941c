package config

const (
	// MaxSessionTitleLength is the maximum length for session titles.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (titles should be short and descriptive).
	MaxSessionTitleLength = 255

	// MaxMessageLength is the maximum length of a single user utterance.
	MaxMessageLength = 32000

	// TitleWordCount is how many leading words of the first message are
	// used to derive a new session's title.
	TitleWordCount = 5
)
