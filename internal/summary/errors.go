package summary

import "errors"

var (
	// ErrNoMessages indicates there were no messages to summarize. The
	// generator fails with it before any outbound call is made; commands
	// recover it into a user-facing notice rather than a system fault.
	ErrNoMessages = errors.New("no messages to summarize")

	// ErrUpstream indicates the text-generation API call failed, timed
	// out, or returned no usable output. No retry is performed here;
	// retry policy, if any, belongs to the caller.
	ErrUpstream = errors.New("summary generation failed upstream")
)
