package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAge(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{0, 0},
		{0.01, 6},
		{1, 6},
		{1.5, 7},
		{2.9, 9},
		{4, 10},
		{7.2, 14},
		{12, 18},
		{12.01, 24},
		{14, 24},
		{14.5, 24},
		{15, 24},
		{99.9, 24},
		{math.Inf(1), 24},
		{-0.5, 0},
	}
	for _, tt := range tests {
		got, err := Age(tt.score, NegativeAgeClamp)
		require.NoError(t, err, "score=%v", tt.score)
		require.Equal(t, tt.want, got, "score=%v", tt.score)
	}
}

func TestAge_NegativeBucket(t *testing.T) {
	req := require.New(t)

	got, err := Age(-4.3, NegativeAgeClamp)
	req.NoError(err)
	req.Equal(0, got)

	_, err = Age(-4.3, NegativeAgeFail)
	req.ErrorIs(err, ErrIndexOutOfRange)

	// ceil(-0.5) is -0, which is bucket 0 rather than a negative bucket
	got, err = Age(-0.5, NegativeAgeFail)
	req.NoError(err)
	req.Equal(0, got)
}

func TestAge_NaN(t *testing.T) {
	_, err := Age(math.NaN(), NegativeAgeClamp)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestAge_Monotonic(t *testing.T) {
	prev := -1
	for score := -3.0; score <= 20; score += 0.05 {
		got, err := Age(score, NegativeAgeClamp)
		require.NoError(t, err)
		require.GreaterOrEqual(t, got, prev, "score=%v", score)
		prev = got
	}
}

func TestNegativeAgePolicy_Valid(t *testing.T) {
	require.True(t, NegativeAgeClamp.Valid())
	require.True(t, NegativeAgeFail.Valid())
	require.False(t, NegativeAgePolicy("wrap").Valid())
}
