package calculation

import (
	"math"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// Project computes the future value breakdown for a single input.
//
// The arithmetic reproduces the calculator's historical output exactly, including
// two quirks kept for output compatibility:
//   - the initial investment is grown once in bulk over the whole horizon and
//     still included as the starting balance of the monthly loop;
//   - the inflation adjustment is recomputed from the running balance every month,
//     so only the value after the last month is meaningful.
//
// Project performs no validation. Out-of-range rates (interest at or below -100%)
// yield NaN or Inf rather than an error.
func Project(in domain.ProjectionInput) domain.ProjectionResult {
	return project(in, nil)
}

// ProjectWithTrace is Project plus one snapshot at the end of every projection year.
func ProjectWithTrace(in domain.ProjectionInput) (domain.ProjectionResult, []domain.YearSnapshot) {
	var trace []domain.YearSnapshot
	if in.Years > 0 {
		trace = make([]domain.YearSnapshot, 0, in.Years)
	}
	res := project(in, func(s domain.YearSnapshot) {
		trace = append(trace, s)
	})
	return res, trace
}

// project runs the monthly accumulation loop. The float64 conversions around
// products stop the compiler from fusing multiply-add, which would change the
// last bits of the result on some architectures.
func project(in domain.ProjectionInput, onYearEnd func(domain.YearSnapshot)) domain.ProjectionResult {
	years := float64(in.Years)
	totalContributions := in.MonthlyInvestment * 12 * years
	totalPrincipal := in.InitialInvestment + float64(in.MonthlyInvestment*12*years)

	growth := 1 + in.InterestRate/100
	monthlyReturnRate := math.Pow(growth, 1.0/12) - 1

	futureVal := in.InitialInvestment
	futureVal += float64(futureVal * math.Pow(growth, years))

	inflationFactor := 1 - in.InflationRate/100
	contribution := in.MonthlyInvestment
	contributed := 0.0
	inflationAdjusted := 0.0

	months := in.Years * 12
	for month := 1; month <= months; month++ {
		if month%12 == 0 && in.AnnualStepUp > 0 {
			contribution *= 1 + in.AnnualStepUp/100
		}
		futureVal += float64(contribution * math.Pow(1+monthlyReturnRate, float64(month)))
		inflationAdjusted = futureVal * math.Pow(inflationFactor, years)
		contributed += contribution

		if onYearEnd != nil && month%12 == 0 {
			onYearEnd(domain.YearSnapshot{
				Year:                   month / 12,
				MonthlyContribution:    contribution,
				ContributedToDate:      contributed,
				FutureValue:            futureVal,
				InflationAdjustedValue: inflationAdjusted,
			})
		}
	}

	return domain.ProjectionResult{
		FutureValue:            futureVal,
		TotalPrincipal:         totalPrincipal,
		TotalContributions:     totalContributions,
		TotalInterest:          futureVal - totalPrincipal,
		InflationAdjustedValue: inflationAdjusted,
	}
}
