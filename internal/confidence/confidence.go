// Package confidence maps video face-presence analysis to confidence scores
// and selects interview difficulty from a candidate's confidence history.
package confidence

import "fmt"

// ErrInvalidPercentage indicates a face percentage outside [0,100].
type ErrInvalidPercentage struct {
	Value float64
}

func (e *ErrInvalidPercentage) Error() string {
	return fmt.Sprintf("face percentage out of range [0,100]: %g", e.Value)
}

// FromFacePercentage converts a face-presence percentage into a discrete
// confidence score. Face presence approximates attention; the mapping is a
// step function with exactly four output values: 45, 60, 75 and 90.
func FromFacePercentage(facePercentage float64) (int, error) {
	if facePercentage < 0 || facePercentage > 100 {
		return 0, &ErrInvalidPercentage{Value: facePercentage}
	}

	switch {
	case facePercentage >= 80:
		return 90, nil
	case facePercentage >= 65:
		return 75, nil
	case facePercentage >= 50:
		return 60, nil
	default:
		return 45, nil
	}
}
