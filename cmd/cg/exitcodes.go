package main

// Exit codes.
const (
	ExitSuccess         = 0 // Success
	ExitError           = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError     = 2 // Configuration error (bad config file, invalid paths)
	ExitExtractionError = 3 // Extraction produced no usable fields / LLM unavailable
)
