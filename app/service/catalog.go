package service

import (
	"context"
	"regexp"

	"github.com/vibast-solutions/ms-go-cloud-plans/app/entity"
)

const (
	ScopeAllRegions = "all"
	ScopeRegion     = "region"
	ScopeFreemode   = "freemode"
)

var regionCodePattern = regexp.MustCompile(`^[a-z]{2,3}$`)

type listPlansRequest interface {
	GetRegion() string
	GetHasRegion() bool
}

// Observer receives plan listing events. metrics.Collector implements it.
type Observer interface {
	PlansListed(scope, region string)
	RegionFallback(requested, resolved string)
}

type noopObserver struct{}

func (noopObserver) PlansListed(string, string)    {}
func (noopObserver) RegionFallback(string, string) {}

type RegionPlans struct {
	Region          *entity.Region
	RequestedRegion string
	Fallback        bool
	Plans           []PlanProjection
}

type RegionPrices struct {
	Region *entity.Region
	// Prices holds prices-only projections keyed by plan id.
	Prices map[string]PlanProjection
}

type AllRegionPlans struct {
	Plans   []entity.Plan
	Regions []RegionPrices
}

// PlansResult carries exactly one of Region or All unless Freemode is set.
type PlansResult struct {
	Freemode        bool
	TrialDays       int
	FreePlanEnabled bool
	Overview        entity.Overview
	Region          *RegionPlans
	All             *AllRegionPlans
}

type BenefitsResult struct {
	Overview  entity.Overview
	Benefits  []entity.Benefit
	TrialDays int
}

type CatalogService struct {
	catalog  *entity.Catalog
	observer Observer
}

// NewCatalogService accepts a nil catalog; every call then fails with
// ErrCatalogUnavailable.
func NewCatalogService(catalog *entity.Catalog, observer Observer) *CatalogService {
	if observer == nil {
		observer = noopObserver{}
	}
	return &CatalogService{catalog: catalog, observer: observer}
}

func (s *CatalogService) Available() bool {
	return s.catalog != nil
}

func (s *CatalogService) ListPlans(_ context.Context, req listPlansRequest) (*PlansResult, error) {
	if s.catalog == nil {
		return nil, ErrCatalogUnavailable
	}

	if s.catalog.FreemodeEnabled {
		s.observer.PlansListed(ScopeFreemode, "")
		return &PlansResult{Freemode: true}, nil
	}

	result := &PlansResult{
		TrialDays:       s.catalog.TrialDays,
		FreePlanEnabled: s.catalog.FreePlanEnabled,
		Overview:        s.catalog.PlansOverview,
	}

	if !req.GetHasRegion() {
		result.All = s.allRegionPlans()
		s.observer.PlansListed(ScopeAllRegions, "")
		return result, nil
	}

	region, fallback := s.ResolveRegion(req.GetRegion())
	if fallback {
		s.observer.RegionFallback(req.GetRegion(), region.Code)
	}

	plans := s.catalog.ListedPlans()
	projections := make([]PlanProjection, 0, len(plans))
	for _, plan := range plans {
		projections = append(projections, ProjectPlan(plan, region, false))
	}

	result.Region = &RegionPlans{
		Region:          region,
		RequestedRegion: req.GetRegion(),
		Fallback:        fallback,
		Plans:           projections,
	}
	s.observer.PlansListed(ScopeRegion, region.Code)
	return result, nil
}

func (s *CatalogService) GetBenefits(_ context.Context) (*BenefitsResult, error) {
	if s.catalog == nil {
		return nil, ErrCatalogUnavailable
	}

	return &BenefitsResult{
		Overview:  s.catalog.BenefitsOverview,
		Benefits:  s.catalog.Benefits,
		TrialDays: s.catalog.TrialDays,
	}, nil
}

// ResolveRegion maps a requested code to a configured region. Malformed or
// unknown codes resolve to the default region and report a fallback.
func (s *CatalogService) ResolveRegion(code string) (*entity.Region, bool) {
	if regionCodePattern.MatchString(code) {
		if region, ok := s.catalog.Region(code); ok {
			return region, false
		}
	}
	return s.catalog.Default(), true
}

func (s *CatalogService) allRegionPlans() *AllRegionPlans {
	plans := s.catalog.ListedPlans()
	all := &AllRegionPlans{
		Plans:   plans,
		Regions: make([]RegionPrices, 0, len(s.catalog.Regions)),
	}

	for i := range s.catalog.Regions {
		region := &s.catalog.Regions[i]
		prices := make(map[string]PlanProjection, len(plans))
		for _, plan := range plans {
			prices[plan.ID] = ProjectPlan(plan, region, true)
		}
		all.Regions = append(all.Regions, RegionPrices{Region: region, Prices: prices})
	}
	return all
}
