package scoring

import (
	"fmt"
	"strings"
	"time"

	"house-competition-system/models"
)

// Date formats accepted for event submissions. The admin form sends
// plain dates ("2025-03-14"); RFC3339 is accepted for API clients.
var dateFormats = []string{"2006-01-02", time.RFC3339}

// ErrorKind identifies which check a submission failed. The set is
// closed; the API layer maps each kind to a user-facing message.
type ErrorKind string

const (
	ErrEmptyName        ErrorKind = "empty_name"
	ErrMissingPlacement ErrorKind = "missing_placement"
	ErrDuplicateHouse   ErrorKind = "duplicate_house"
	ErrUnknownHouse     ErrorKind = "unknown_house"
	ErrInvalidDate      ErrorKind = "invalid_date"
)

// ValidationError is the only failure mode of ValidateSubmission.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func validationErr(kind ErrorKind, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Placement assigns one house to one finishing position.
type Placement struct {
	HouseID  string `json:"house_id"`
	Position int    `json:"position"`
}

// EventSubmission is a proposed event as received from the admin form:
// a name, a date string and the three place assignments.
type EventSubmission struct {
	Name       string      `json:"name"`
	Date       string      `json:"date"`
	Placements []Placement `json:"results"`
}

// ValidatedResult is one placement with its derived points.
type ValidatedResult struct {
	HouseID  string
	Position int
	Points   int
}

// ValidatedEvent is a submission that passed every check, ready for
// transactional persistence. Results are ordered 1st, 2nd, 3rd and
// carry points stamped from the point policy — callers never supply
// points themselves, so inconsistent awards can't be persisted.
type ValidatedEvent struct {
	Name    string
	Date    time.Time
	Results [3]ValidatedResult
}

// ValidateSubmission checks a submission against the domain rules and,
// on success, returns it with points derived per position. Checks run
// in a fixed order and stop at the first failure so the caller gets one
// specific error. Pure function of its inputs: the current house set is
// passed in rather than queried, which keeps this independently
// testable and free of I/O.
//
// Check order: empty name, missing/duplicate placement positions,
// duplicate house, unknown house, unparseable date.
func ValidateSubmission(sub EventSubmission, houses []models.House) (*ValidatedEvent, error) {
	if strings.TrimSpace(sub.Name) == "" {
		return nil, validationErr(ErrEmptyName, "event name is required")
	}

	if len(sub.Placements) != 3 {
		return nil, validationErr(ErrMissingPlacement, "exactly three placements are required, got %d", len(sub.Placements))
	}
	byPosition := make(map[int]Placement, 3)
	for _, p := range sub.Placements {
		byPosition[p.Position] = p
	}
	for pos := 1; pos <= 3; pos++ {
		if _, ok := byPosition[pos]; !ok {
			return nil, validationErr(ErrMissingPlacement, "no house assigned to position %d", pos)
		}
	}

	seen := make(map[string]bool, 3)
	for pos := 1; pos <= 3; pos++ {
		houseID := byPosition[pos].HouseID
		if seen[houseID] {
			return nil, validationErr(ErrDuplicateHouse, "house %s placed more than once", houseID)
		}
		seen[houseID] = true
	}

	known := make(map[string]bool, len(houses))
	for _, h := range houses {
		known[h.ID] = true
	}
	for pos := 1; pos <= 3; pos++ {
		if houseID := byPosition[pos].HouseID; !known[houseID] {
			return nil, validationErr(ErrUnknownHouse, "house %s does not exist", houseID)
		}
	}

	date, err := parseEventDate(sub.Date)
	if err != nil {
		return nil, validationErr(ErrInvalidDate, "cannot parse date %q", sub.Date)
	}

	validated := &ValidatedEvent{Name: strings.TrimSpace(sub.Name), Date: date}
	for pos := 1; pos <= 3; pos++ {
		pts, err := PointsForPosition(pos)
		if err != nil {
			return nil, err // unreachable: pos is 1..3
		}
		validated.Results[pos-1] = ValidatedResult{
			HouseID:  byPosition[pos].HouseID,
			Position: pos,
			Points:   pts,
		}
	}
	return validated, nil
}

// parseEventDate tries each accepted format in order. Past and future
// dates are both fine — results may be backfilled.
func parseEventDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	var lastErr error
	for _, layout := range dateFormats {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
