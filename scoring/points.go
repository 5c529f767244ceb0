package scoring

import (
	"errors"
	"fmt"
)

// Fixed point awards per finishing position. Process-wide constant —
// changing these mid-competition would corrupt stored totals.
const (
	PointsGold   = 5
	PointsSilver = 3
	PointsBronze = 1
)

var pointsByPosition = map[int]int{
	1: PointsGold,
	2: PointsSilver,
	3: PointsBronze,
}

// ErrInvalidPosition means a position outside {1,2,3} reached the point
// policy. The submission validator is the sole gate before persistence,
// so this is a programming error, not a user-facing one.
var ErrInvalidPosition = errors.New("scoring: position must be 1, 2 or 3")

// PointsForPosition returns the points awarded for a finishing position.
func PointsForPosition(position int) (int, error) {
	pts, ok := pointsByPosition[position]
	if !ok {
		return 0, fmt.Errorf("%w (got %d)", ErrInvalidPosition, position)
	}
	return pts, nil
}
