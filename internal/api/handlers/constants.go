package handlers

const (
	defaultCount = 1

	errInvalidCount   = "count must be a positive integer"
	errUnknownGrammar = "Unknown grammar"
)
