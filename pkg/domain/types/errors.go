package types

import "github.com/m-mizutani/goerr/v2"

// Error tags drive HTTP status mapping in the controller layer.
// Untagged errors surface as 500.
var (
	// ErrTagNotFound marks lookups of unknown entity IDs (404)
	ErrTagNotFound = goerr.NewTag("not_found")

	// ErrTagValidation marks missing or invalid request parameters (400)
	ErrTagValidation = goerr.NewTag("validation")

	// ErrTagUpstream marks simulated external call failures (502)
	ErrTagUpstream = goerr.NewTag("upstream")
)
