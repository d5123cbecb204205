package entity

const (
	IntervalLifetime = "lifetime"
	IntervalMonth    = "month"
	IntervalYear     = "year"
)

type Region struct {
	Code                  string `validate:"required,min=2,max=3,lowercase,alpha"`
	Name                  string `validate:"required"`
	Currency              string `validate:"required,len=3"`
	MonthlyPrice          int64  `validate:"min=0"`
	YearlyPrice           int64  `validate:"min=0"`
	MonthlyPriceFormatted string
	YearlyPriceFormatted  string
}

type CTA struct {
	Text       string
	ButtonText string
}

type Plan struct {
	ID       string   `validate:"required"`
	Name     string   `validate:"required"`
	Interval string   `validate:"required,oneof=lifetime month year"`
	Features []string `validate:"dive,required"`
	CTA      CTA
}

func (p *Plan) IsLifetime() bool {
	return p.Interval == IntervalLifetime
}

type Benefit struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
}

type Overview struct {
	Title       string
	Description string
}

// Catalog is built once at startup and shared read-only afterwards.
type Catalog struct {
	TrialDays        int `validate:"min=0"`
	FreePlanEnabled  bool
	FreemodeEnabled  bool
	DefaultRegion    string    `validate:"required"`
	Regions          []Region  `validate:"required,dive"`
	Plans            []Plan    `validate:"required,dive"`
	Benefits         []Benefit `validate:"dive"`
	PlansOverview    Overview
	BenefitsOverview Overview

	regionsByCode map[string]*Region
}

// Index rebuilds the region lookup. It must be called after Regions is final.
func (c *Catalog) Index() {
	c.regionsByCode = make(map[string]*Region, len(c.Regions))
	for i := range c.Regions {
		c.regionsByCode[c.Regions[i].Code] = &c.Regions[i]
	}
}

func (c *Catalog) Region(code string) (*Region, bool) {
	region, ok := c.regionsByCode[code]
	return region, ok
}

func (c *Catalog) Default() *Region {
	return c.regionsByCode[c.DefaultRegion]
}

// ListedPlans returns plans in configured order, without the lifetime plan
// unless the free plan is enabled.
func (c *Catalog) ListedPlans() []Plan {
	plans := make([]Plan, 0, len(c.Plans))
	for _, plan := range c.Plans {
		if plan.IsLifetime() && !c.FreePlanEnabled {
			continue
		}
		plans = append(plans, plan)
	}
	return plans
}
