package service

import "github.com/vibast-solutions/ms-go-cloud-plans/app/entity"

const (
	FreePriceFormatted    = "Free"
	MissingPriceFormatted = "N/A"
)

// PlanProjection is a plan with its price resolved for one region. Plan is
// nil for prices-only projections.
type PlanProjection struct {
	Plan           *entity.Plan
	Price          int64
	PriceFormatted string
}

// ProjectPlan resolves the price of plan in region. Missing region data
// degrades to zero values instead of failing.
func ProjectPlan(plan entity.Plan, region *entity.Region, pricesOnly bool) PlanProjection {
	projection := PlanProjection{Price: 0, PriceFormatted: MissingPriceFormatted}

	switch {
	case plan.IsLifetime():
		projection.PriceFormatted = FreePriceFormatted
	case region == nil:
	case plan.Interval == entity.IntervalMonth:
		projection.Price = region.MonthlyPrice
		projection.PriceFormatted = orMissing(region.MonthlyPriceFormatted)
	default:
		projection.Price = region.YearlyPrice
		projection.PriceFormatted = orMissing(region.YearlyPriceFormatted)
	}

	if !pricesOnly {
		projection.Plan = &plan
	}
	return projection
}

func orMissing(formatted string) string {
	if formatted == "" {
		return MissingPriceFormatted
	}
	return formatted
}
