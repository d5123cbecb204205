package mapper

import (
	"encoding/json"
	"testing"

	"github.com/vibast-solutions/ms-go-cloud-plans/app/dto"
	"github.com/vibast-solutions/ms-go-cloud-plans/app/entity"
	"github.com/vibast-solutions/ms-go-cloud-plans/app/service"
)

func testRegion() *entity.Region {
	return &entity.Region{Code: "eu", Name: "Europe", Currency: "EUR", MonthlyPrice: 500, YearlyPrice: 5000, MonthlyPriceFormatted: "€5.00", YearlyPriceFormatted: "€50.00"}
}

func TestPlansResultToResponseFreemode(t *testing.T) {
	resp := PlansResultToResponse(&service.PlansResult{Freemode: true})
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != "{}" {
		t.Fatalf("expected empty object, got %s", data)
	}
}

func TestRegionPlansToResponse(t *testing.T) {
	region := testRegion()
	free := entity.Plan{ID: "free", Name: "Free", Interval: entity.IntervalLifetime}
	monthly := entity.Plan{ID: "monthly", Name: "Monthly", Interval: entity.IntervalMonth, Features: []string{"CSV exports"}, CTA: entity.CTA{Text: "Try", ButtonText: "Go"}}

	result := &service.PlansResult{
		TrialDays:       3,
		FreePlanEnabled: true,
		Overview:        entity.Overview{Title: "Upgrade"},
		Region: &service.RegionPlans{
			Region: region,
			Plans: []service.PlanProjection{
				service.ProjectPlan(free, region, false),
				service.ProjectPlan(monthly, region, false),
			},
		},
	}

	resp, ok := PlansResultToResponse(result).(*dto.RegionPlansResponse)
	if !ok {
		t.Fatalf("expected region plans response, got %T", PlansResultToResponse(result))
	}
	if resp.Region != "Europe" || resp.RegionCode != "eu" || resp.Currency != "EUR" || resp.Overview.Title != "Upgrade" {
		t.Fatalf("unexpected response header fields: %+v", resp)
	}
	if len(resp.Plans) != 2 {
		t.Fatalf("expected 2 plans, got %d", len(resp.Plans))
	}
	if resp.Plans[0].PriceFormatted != "Free" || resp.Plans[0].Features == nil || resp.Plans[0].TrialDays != 0 {
		t.Fatalf("unexpected free plan: %+v", resp.Plans[0])
	}
	if resp.Plans[1].Price != 500 || resp.Plans[1].Currency != "EUR" || resp.Plans[1].TrialDays != 3 || resp.Plans[1].CTA.ButtonText != "Go" {
		t.Fatalf("unexpected monthly plan: %+v", resp.Plans[1])
	}

	data, err := json.Marshal(resp.Plans[1])
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var flat map[string]interface{}
	if err := json.Unmarshal(data, &flat); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	for _, key := range []string{"id", "name", "interval", "features", "cta", "price", "price_formatted", "currency", "trial_days"} {
		if _, ok := flat[key]; !ok {
			t.Fatalf("expected key %q in plan json %s", key, data)
		}
	}
}

func TestAllRegionPlansToResponse(t *testing.T) {
	region := testRegion()
	monthly := entity.Plan{ID: "monthly", Name: "Monthly", Interval: entity.IntervalMonth}

	result := &service.PlansResult{
		TrialDays: 5,
		All: &service.AllRegionPlans{
			Plans: []entity.Plan{monthly},
			Regions: []service.RegionPrices{
				{Region: region, Prices: map[string]service.PlanProjection{"monthly": service.ProjectPlan(monthly, region, true)}},
			},
		},
	}

	resp, ok := PlansResultToResponse(result).(*dto.AllPlansResponse)
	if !ok {
		t.Fatalf("expected all plans response, got %T", PlansResultToResponse(result))
	}
	if len(resp.Plans) != 1 || resp.Plans[0].ID != "monthly" {
		t.Fatalf("unexpected plans: %+v", resp.Plans)
	}
	eu, ok := resp.Regions["eu"]
	if !ok {
		t.Fatalf("expected eu region, got %+v", resp.Regions)
	}
	if eu.Name != "Europe" || eu.Currency != "EUR" || eu.TrialDays != 5 {
		t.Fatalf("unexpected eu region: %+v", eu)
	}
	if eu.Prices["monthly"].Price != 500 || eu.Prices["monthly"].PriceFormatted != "€5.00" {
		t.Fatalf("unexpected eu prices: %+v", eu.Prices)
	}
}

func TestBenefitsResultToResponse(t *testing.T) {
	resp := BenefitsResultToResponse(&service.BenefitsResult{
		Overview:  entity.Overview{Title: "Why", Description: "Because"},
		Benefits:  []entity.Benefit{{Title: "A", Description: "a"}, {Title: "B", Description: "b"}},
		TrialDays: 3,
	})

	if resp.Overview.Title != "Why" || resp.TrialDays != 3 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.Benefits) != 2 || resp.Benefits[0].Title != "A" || resp.Benefits[1].Title != "B" {
		t.Fatalf("unexpected benefits: %+v", resp.Benefits)
	}
}
