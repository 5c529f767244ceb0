package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"house-competition-system/models"
)

var testHouses = []models.House{
	{ID: "house-a", Name: "Ashworth"},
	{ID: "house-b", Name: "Briar"},
	{ID: "house-c", Name: "Caldwell"},
	{ID: "house-d", Name: "Drummond"},
}

func validSubmission() EventSubmission {
	return EventSubmission{
		Name: "100m Sprint",
		Date: "2025-03-14",
		Placements: []Placement{
			{HouseID: "house-a", Position: 1},
			{HouseID: "house-b", Position: 2},
			{HouseID: "house-c", Position: 3},
		},
	}
}

func TestValidateSubmissionOK(t *testing.T) {
	validated, err := ValidateSubmission(validSubmission(), testHouses)
	require.NoError(t, err)

	assert.Equal(t, "100m Sprint", validated.Name)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), validated.Date)

	// Results come back ordered 1st, 2nd, 3rd with policy points stamped.
	assert.Equal(t, ValidatedResult{HouseID: "house-a", Position: 1, Points: 5}, validated.Results[0])
	assert.Equal(t, ValidatedResult{HouseID: "house-b", Position: 2, Points: 3}, validated.Results[1])
	assert.Equal(t, ValidatedResult{HouseID: "house-c", Position: 3, Points: 1}, validated.Results[2])
}

func TestValidateSubmissionAcceptsRFC3339Date(t *testing.T) {
	sub := validSubmission()
	sub.Date = "2024-11-02T15:04:05Z"
	validated, err := ValidateSubmission(sub, testHouses)
	require.NoError(t, err)
	assert.Equal(t, 2024, validated.Date.Year())
}

func TestValidateSubmissionTrimsName(t *testing.T) {
	sub := validSubmission()
	sub.Name = "  Relay  "
	validated, err := ValidateSubmission(sub, testHouses)
	require.NoError(t, err)
	assert.Equal(t, "Relay", validated.Name)
}

func TestValidateSubmissionErrors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*EventSubmission)
		wantKind ErrorKind
	}{
		{
			name:     "empty name",
			mutate:   func(s *EventSubmission) { s.Name = "" },
			wantKind: ErrEmptyName,
		},
		{
			name:     "whitespace-only name",
			mutate:   func(s *EventSubmission) { s.Name = "   \t" },
			wantKind: ErrEmptyName,
		},
		{
			name:     "only two placements",
			mutate:   func(s *EventSubmission) { s.Placements = s.Placements[:2] },
			wantKind: ErrMissingPlacement,
		},
		{
			name:     "no placements at all",
			mutate:   func(s *EventSubmission) { s.Placements = nil },
			wantKind: ErrMissingPlacement,
		},
		{
			name: "position 2 assigned twice, position 3 absent",
			mutate: func(s *EventSubmission) {
				s.Placements[2].Position = 2
			},
			wantKind: ErrMissingPlacement,
		},
		{
			name: "same house in first and second place",
			mutate: func(s *EventSubmission) {
				s.Placements[1].HouseID = "house-a"
			},
			wantKind: ErrDuplicateHouse,
		},
		{
			name: "same house in all three places",
			mutate: func(s *EventSubmission) {
				s.Placements[1].HouseID = "house-a"
				s.Placements[2].HouseID = "house-a"
			},
			wantKind: ErrDuplicateHouse,
		},
		{
			name: "unknown house referenced",
			mutate: func(s *EventSubmission) {
				s.Placements[2].HouseID = "house-z"
			},
			wantKind: ErrUnknownHouse,
		},
		{
			name:     "unparseable date",
			mutate:   func(s *EventSubmission) { s.Date = "next tuesday" },
			wantKind: ErrInvalidDate,
		},
		{
			name:     "empty date",
			mutate:   func(s *EventSubmission) { s.Date = "" },
			wantKind: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(&sub)

			validated, err := ValidateSubmission(sub, testHouses)
			assert.Nil(t, validated)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantKind, verr.Kind)
		})
	}
}

// Checks short-circuit in a fixed order: a submission that is broken in
// several ways reports the first failing check only.
func TestValidateSubmissionShortCircuits(t *testing.T) {
	sub := validSubmission()
	sub.Name = ""
	sub.Date = "garbage"
	sub.Placements[1].HouseID = "house-a"

	_, err := ValidateSubmission(sub, testHouses)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ErrEmptyName, verr.Kind)
}

func TestValidateSubmissionDuplicateBeforeUnknown(t *testing.T) {
	// Duplicate check runs before existence check even when the
	// duplicated ID is also unknown.
	sub := validSubmission()
	sub.Placements[0].HouseID = "house-z"
	sub.Placements[1].HouseID = "house-z"

	_, err := ValidateSubmission(sub, testHouses)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ErrDuplicateHouse, verr.Kind)
}

func TestValidateSubmissionEmptyHouseSet(t *testing.T) {
	_, err := ValidateSubmission(validSubmission(), nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ErrUnknownHouse, verr.Kind)
}
