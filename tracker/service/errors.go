// tracker/service/errors.go
package service

import "fmt"

// Custom errors for clear communication to the API layer.
var (
	// ErrNotFound signals that the requested record does not exist.
	ErrNotFound = fmt.Errorf("record not found")
	// ErrDuplicateEntry signals an _id or unique-field collision on a write.
	ErrDuplicateEntry = fmt.Errorf("record already exists")
	// ErrInvalidParameter is the umbrella for missing or malformed required
	// query parameters; match it with errors.Is.
	ErrInvalidParameter = fmt.Errorf("invalid parameter")

	// Per-parameter variants carrying the exact messages the API returns.
	ErrUserIDRequired     = fmt.Errorf("%w: user_id parameter is required", ErrInvalidParameter)
	ErrTeamIDRequired     = fmt.Errorf("%w: team_id parameter is required", ErrInvalidParameter)
	ErrDifficultyRequired = fmt.Errorf("%w: difficulty parameter is required", ErrInvalidParameter)
)
