package scoring

import (
	"errors"
	"fmt"

	"github.com/nvandessel/readscore/internal/models"
)

var (
	// ErrDivisionByZero is returned when a formula would divide by a zero word or sentence count.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrIndexOutOfRange is returned by Age for a negative bucket under NegativeAgeFail.
	ErrIndexOutOfRange = errors.New("age bucket out of range")

	// ErrUnrecognizedMetric is returned for a selection token outside ARI, FK, SMOG, CL, all.
	ErrUnrecognizedMetric = errors.New("unrecognized metric")
)

// MetricError ties a scoring failure to the metric that produced it.
type MetricError struct {
	Metric models.Metric
	Err    error
}

func (e *MetricError) Error() string {
	return fmt.Sprintf("%s: %v", e.Metric, e.Err)
}

func (e *MetricError) Unwrap() error {
	return e.Err
}
