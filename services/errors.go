package services

import "fmt"

// ValidationError reports the first missing or invalid field of a submission.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid or missing field: %s", e.Field)
}

// NotFoundError reports an unknown report id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("report not found: %s", e.ID)
}

// InvalidVoteKindError reports a vote value outside {upvote, downvote}.
type InvalidVoteKindError struct {
	Kind string
}

func (e *InvalidVoteKindError) Error() string {
	return fmt.Sprintf("invalid vote kind: %q", e.Kind)
}
