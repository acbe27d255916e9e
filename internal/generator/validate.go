package generator

import "todo-api/internal/models"

const (
	// MaxCount is the most todos a single generation request may produce.
	MaxCount = 15
	// DefaultMaxCreationDaysAgo bounds randomized creation dates when the
	// request does not set maxCreationDaysAgo.
	DefaultMaxCreationDaysAgo = 30
)

// Validation messages. Kept as constants so the HTTP layer can reuse them
// when JSON decoding rejects a field's type before validation runs.
const (
	msgCount           = "Count must be a number between 1 and 15"
	msgCountMax        = "Cannot generate more than 15 todos at once"
	msgStatus          = "Status must be one of: pending, in-progress, completed"
	msgTitleKeywords   = "titleKeywords must be an array of strings"
	msgMaxDeadlineDays = "maxDeadlineDays must be a number greater than or equal to 0"
	msgRandomize       = "randomizeCreationDate must be a boolean"
	msgMaxCreationDays = "maxCreationDaysAgo must be a number greater than or equal to 0"
)

// Request configures one generation call. All fields are optional; absent
// fields fall back to defaults.
type Request struct {
	Count                 *int     `json:"count"`
	Status                *string  `json:"status"`
	TitleKeywords         []string `json:"titleKeywords"`
	MaxDeadlineDays       *float64 `json:"maxDeadlineDays"`
	RandomizeCreationDate *bool    `json:"randomizeCreationDate"`
	MaxCreationDaysAgo    *float64 `json:"maxCreationDaysAgo"`
}

// ValidationError describes a rejected generation request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// MessageForField returns the validation message for a request JSON field,
// or "" if the field is unknown. The HTTP layer uses it to translate JSON
// type errors into the same vocabulary the validator speaks.
func MessageForField(name string) string {
	switch name {
	case "count":
		return msgCount
	case "status":
		return msgStatus
	case "titleKeywords":
		return msgTitleKeywords
	case "maxDeadlineDays":
		return msgMaxDeadlineDays
	case "randomizeCreationDate":
		return msgRandomize
	case "maxCreationDaysAgo":
		return msgMaxCreationDays
	}
	return ""
}

// Validate checks the request's ranges and enums. Checks run in a fixed
// order and the first failure wins, so error messages are deterministic.
// Pure: no side effects, same input always yields the same result.
func (r Request) Validate() error {
	if r.Count != nil {
		if *r.Count > MaxCount {
			return &ValidationError{msgCountMax}
		}
		if *r.Count < 1 {
			return &ValidationError{msgCount}
		}
	}
	if r.Status != nil && !models.Status(*r.Status).Valid() {
		return &ValidationError{msgStatus}
	}
	if r.MaxDeadlineDays != nil && *r.MaxDeadlineDays < 0 {
		return &ValidationError{msgMaxDeadlineDays}
	}
	if r.MaxCreationDaysAgo != nil && *r.MaxCreationDaysAgo < 0 {
		return &ValidationError{msgMaxCreationDays}
	}
	return nil
}
