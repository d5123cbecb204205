package dto

type EmptyResponse struct{}

type OverviewResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CTAResponse struct {
	Text       string `json:"text"`
	ButtonText string `json:"button_text"`
}

type PlanResponse struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Interval string      `json:"interval"`
	Features []string    `json:"features"`
	CTA      CTAResponse `json:"cta"`
}

type PriceResponse struct {
	Price          int64  `json:"price"`
	PriceFormatted string `json:"price_formatted"`
}

type PricedPlanResponse struct {
	PlanResponse
	PriceResponse
	Currency  string `json:"currency"`
	TrialDays int    `json:"trial_days"`
}

type RegionPricesResponse struct {
	Name            string                   `json:"name"`
	Currency        string                   `json:"currency"`
	TrialDays       int                      `json:"trial_days"`
	FreePlanEnabled bool                     `json:"free_plan_enabled"`
	Prices          map[string]PriceResponse `json:"prices"`
}

type AllPlansResponse struct {
	Overview        OverviewResponse                `json:"overview"`
	TrialDays       int                             `json:"trial_days"`
	FreePlanEnabled bool                            `json:"free_plan_enabled"`
	Plans           []PlanResponse                  `json:"plans"`
	Regions         map[string]RegionPricesResponse `json:"regions"`
}

type RegionPlansResponse struct {
	Overview        OverviewResponse     `json:"overview"`
	Region          string               `json:"region"`
	RegionCode      string               `json:"region_code"`
	Currency        string               `json:"currency"`
	TrialDays       int                  `json:"trial_days"`
	FreePlanEnabled bool                 `json:"free_plan_enabled"`
	Plans           []PricedPlanResponse `json:"plans"`
}

type BenefitResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type BenefitsResponse struct {
	Overview  OverviewResponse  `json:"overview"`
	Benefits  []BenefitResponse `json:"benefits"`
	TrialDays int               `json:"trial_days"`
}
