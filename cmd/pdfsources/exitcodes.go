package main

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure, unwritable output)
	ExitConfigError = 2 // Configuration error (unknown style, existing output with --no-interaction)
	ExitDataError   = 3 // Data error (no PDFs or JSON inputs to process)
	ExitToolMissing = 4 // anystyle is not installed
)
