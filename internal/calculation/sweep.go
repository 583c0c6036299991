package calculation

import (
	"errors"
	"math"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// MaxSweepPoints bounds the number of rates a single sweep may evaluate.
const MaxSweepPoints = 1000

// ErrInvalidSweep is returned for an empty, inverted or oversized sweep range.
var ErrInvalidSweep = errors.New("invalid sweep range")

// Sweep projects the same input across interest rates from..to (inclusive) in
// steps of step. Rates are computed as from+i*step so the grid does not drift.
func Sweep(in domain.ProjectionInput, from, to, step float64) ([]domain.SweepPoint, error) {
	if step <= 0 || from > to || math.IsNaN(from) || math.IsNaN(to) || math.IsInf(to-from, 0) {
		return nil, ErrInvalidSweep
	}
	// Bound the point count as a float so huge spans cannot overflow int.
	span := math.Floor((to-from)/step + 1e-9)
	if math.IsInf(span, 0) || math.IsNaN(span) || span+1 > MaxSweepPoints {
		return nil, ErrInvalidSweep
	}
	n := int(span) + 1

	points := make([]domain.SweepPoint, 0, n)
	for i := 0; i < n; i++ {
		rate := from + float64(i)*step
		in.InterestRate = rate
		points = append(points, domain.SweepPoint{InterestRate: rate, Result: Project(in)})
	}
	return points, nil
}
