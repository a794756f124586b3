package studygen

// Config controls the behavior of the Generator.
type Config struct {
	// MaxConcepts caps how many concepts one content unit yields.
	MaxConcepts int

	// MaxItemsPerKind caps how many items each generation stage produces.
	MaxItemsPerKind int

	// MaxSegmentChars truncates each source segment in prompts so a huge
	// paste cannot blow the context window.
	MaxSegmentChars int

	// MaxTokens is the token budget for each LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxConcepts:     12,
		MaxItemsPerKind: 20,
		MaxSegmentChars: 4000,
		MaxTokens:       2048,
		Temperature:     0.4,
	}
}
