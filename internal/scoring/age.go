package scoring

import (
	"fmt"
	"math"
)

// ageTable maps a bucket in [0, 14] to a reader age.
var ageTable = [...]int{0, 6, 7, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 24, 24}

// MaxAge is returned for every bucket past the end of the table.
const MaxAge = 24

// NegativeAgePolicy decides what Age does with a score whose bucket is below zero.
type NegativeAgePolicy string

const (
	// NegativeAgeClamp maps negative buckets to the youngest age, 0.
	NegativeAgeClamp NegativeAgePolicy = "clamp"

	// NegativeAgeFail rejects negative buckets with ErrIndexOutOfRange.
	NegativeAgeFail NegativeAgePolicy = "fail"
)

// Valid reports whether p is a known policy.
func (p NegativeAgePolicy) Valid() bool {
	return p == NegativeAgeClamp || p == NegativeAgeFail
}

// Age maps a readability score to an estimated reader age.
// The bucket is ceil(score); buckets of 15 and above give MaxAge.
func Age(score float64, policy NegativeAgePolicy) (int, error) {
	if math.IsNaN(score) {
		return 0, fmt.Errorf("%w: score is NaN", ErrIndexOutOfRange)
	}

	bucket := math.Ceil(score)
	if bucket >= float64(len(ageTable)) {
		return MaxAge, nil
	}
	if bucket < 0 {
		if policy == NegativeAgeFail {
			return 0, fmt.Errorf("%w: bucket %d for score %g", ErrIndexOutOfRange, int(bucket), score)
		}
		return ageTable[0], nil
	}
	return ageTable[int(bucket)], nil
}
