package mapper

import (
	"github.com/vibast-solutions/ms-go-cloud-plans/app/dto"
	"github.com/vibast-solutions/ms-go-cloud-plans/app/entity"
	"github.com/vibast-solutions/ms-go-cloud-plans/app/service"
)

// PlansResultToResponse returns one of dto.EmptyResponse, *dto.AllPlansResponse
// or *dto.RegionPlansResponse depending on the result.
func PlansResultToResponse(result *service.PlansResult) interface{} {
	switch {
	case result == nil, result.Freemode:
		return &dto.EmptyResponse{}
	case result.All != nil:
		return AllRegionPlansToResponse(result)
	case result.Region != nil:
		return RegionPlansToResponse(result)
	default:
		return &dto.EmptyResponse{}
	}
}

func AllRegionPlansToResponse(result *service.PlansResult) *dto.AllPlansResponse {
	resp := &dto.AllPlansResponse{
		Overview:        OverviewToResponse(result.Overview),
		TrialDays:       result.TrialDays,
		FreePlanEnabled: result.FreePlanEnabled,
		Plans:           make([]dto.PlanResponse, 0, len(result.All.Plans)),
		Regions:         make(map[string]dto.RegionPricesResponse, len(result.All.Regions)),
	}

	for i := range result.All.Plans {
		resp.Plans = append(resp.Plans, PlanToResponse(&result.All.Plans[i]))
	}

	for _, item := range result.All.Regions {
		prices := make(map[string]dto.PriceResponse, len(item.Prices))
		for planID, projection := range item.Prices {
			prices[planID] = PriceToResponse(projection)
		}
		resp.Regions[item.Region.Code] = dto.RegionPricesResponse{
			Name:            item.Region.Name,
			Currency:        item.Region.Currency,
			TrialDays:       result.TrialDays,
			FreePlanEnabled: result.FreePlanEnabled,
			Prices:          prices,
		}
	}

	return resp
}

func RegionPlansToResponse(result *service.PlansResult) *dto.RegionPlansResponse {
	region := result.Region.Region
	resp := &dto.RegionPlansResponse{
		Overview:        OverviewToResponse(result.Overview),
		Region:          region.Name,
		RegionCode:      region.Code,
		Currency:        region.Currency,
		TrialDays:       result.TrialDays,
		FreePlanEnabled: result.FreePlanEnabled,
		Plans:           make([]dto.PricedPlanResponse, 0, len(result.Region.Plans)),
	}

	for _, projection := range result.Region.Plans {
		if projection.Plan == nil {
			continue
		}
		trialDays := result.TrialDays
		if projection.Plan.IsLifetime() {
			trialDays = 0
		}
		resp.Plans = append(resp.Plans, dto.PricedPlanResponse{
			PlanResponse:  PlanToResponse(projection.Plan),
			PriceResponse: PriceToResponse(projection),
			Currency:      region.Currency,
			TrialDays:     trialDays,
		})
	}

	return resp
}

func BenefitsResultToResponse(result *service.BenefitsResult) *dto.BenefitsResponse {
	resp := &dto.BenefitsResponse{
		Overview:  OverviewToResponse(result.Overview),
		Benefits:  make([]dto.BenefitResponse, 0, len(result.Benefits)),
		TrialDays: result.TrialDays,
	}
	for _, item := range result.Benefits {
		resp.Benefits = append(resp.Benefits, dto.BenefitResponse{
			Title:       item.Title,
			Description: item.Description,
		})
	}
	return resp
}

func PlanToResponse(plan *entity.Plan) dto.PlanResponse {
	features := make([]string, 0, len(plan.Features))
	features = append(features, plan.Features...)

	return dto.PlanResponse{
		ID:       plan.ID,
		Name:     plan.Name,
		Interval: plan.Interval,
		Features: features,
		CTA: dto.CTAResponse{
			Text:       plan.CTA.Text,
			ButtonText: plan.CTA.ButtonText,
		},
	}
}

func PriceToResponse(projection service.PlanProjection) dto.PriceResponse {
	return dto.PriceResponse{
		Price:          projection.Price,
		PriceFormatted: projection.PriceFormatted,
	}
}

func OverviewToResponse(overview entity.Overview) dto.OverviewResponse {
	return dto.OverviewResponse{
		Title:       overview.Title,
		Description: overview.Description,
	}
}
