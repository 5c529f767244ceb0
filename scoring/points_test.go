package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsForPosition(t *testing.T) {
	tests := []struct {
		name     string
		position int
		want     int
	}{
		{name: "first place is gold", position: 1, want: 5},
		{name: "second place is silver", position: 2, want: 3},
		{name: "third place is bronze", position: 3, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PointsForPosition(tt.position)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPointsForPositionRejectsOutOfRange(t *testing.T) {
	for _, position := range []int{0, -1, 4, 100} {
		_, err := PointsForPosition(position)
		assert.ErrorIs(t, err, ErrInvalidPosition, "position %d", position)
	}
}
