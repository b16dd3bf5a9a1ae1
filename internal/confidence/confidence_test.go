package confidence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFacePercentage_StepBoundaries(t *testing.T) {
	cases := []struct {
		facePercentage float64
		want           int
	}{
		{0, 45},
		{49.9, 45},
		{50, 60},
		{64.9, 60},
		{65, 75},
		{79.9, 75},
		{80, 90},
		{100, 90},
	}

	for _, tc := range cases {
		got, err := FromFacePercentage(tc.facePercentage)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "face percentage %g", tc.facePercentage)
	}
}

func TestFromFacePercentage_OutOfRange(t *testing.T) {
	_, err := FromFacePercentage(-0.1)
	require.Error(t, err)

	var invalid *ErrInvalidPercentage
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, -0.1, invalid.Value)

	_, err = FromFacePercentage(100.1)
	assert.Error(t, err)
}

func TestFromFacePercentage_Monotonic(t *testing.T) {
	prev := 0
	for p := 0.0; p <= 100; p += 0.5 {
		got, err := FromFacePercentage(p)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestSelectDifficulty_NoHistory(t *testing.T) {
	assert.Equal(t, Basic, SelectDifficulty(nil))
	assert.Equal(t, Basic, SelectDifficulty([]int{}))
}

func TestSelectDifficulty_MeanThresholds(t *testing.T) {
	assert.Equal(t, Hard, SelectDifficulty([]int{75, 75}))
	assert.Equal(t, Hard, SelectDifficulty([]int{90, 60}))
	assert.Equal(t, Medium, SelectDifficulty([]int{60, 60}))
	assert.Equal(t, Medium, SelectDifficulty([]int{74}))
	assert.Equal(t, Basic, SelectDifficulty([]int{45, 60}))
	assert.Equal(t, Basic, SelectDifficulty([]int{59}))
}
