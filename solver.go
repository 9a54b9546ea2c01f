// Package schedule provides the client side of the schedule-solver service:
// loading and validating solve payloads, submitting them over HTTP, and
// rendering solver responses.
package schedule

const (
	// DefaultSolveURL is the endpoint the solver service listens on.
	DefaultSolveURL = "http://localhost:8080/v1/schedule/solve"
	// ContentTypeJSON is the media type of every solve request and response.
	ContentTypeJSON = "application/json"
)
