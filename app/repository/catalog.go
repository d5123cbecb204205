package repository

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vibast-solutions/ms-go-cloud-plans/app/entity"
	"github.com/vibast-solutions/ms-go-cloud-plans/config"
	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
}

type overviewFile struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type benefitFile struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type regionFile struct {
	Code                  string `yaml:"code"`
	Name                  string `yaml:"name"`
	Currency              string `yaml:"currency"`
	MonthlyPrice          int64  `yaml:"monthly_price"`
	YearlyPrice           int64  `yaml:"yearly_price"`
	MonthlyPriceFormatted string `yaml:"monthly_price_formatted,omitempty"`
	YearlyPriceFormatted  string `yaml:"yearly_price_formatted,omitempty"`
}

type ctaFile struct {
	Text       string `yaml:"text"`
	ButtonText string `yaml:"button_text"`
}

type planFile struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Interval string   `yaml:"interval"`
	Features []string `yaml:"features"`
	CTA      ctaFile  `yaml:"cta"`
}

type catalogFile struct {
	Overview struct {
		Plans    *overviewFile `yaml:"plans,omitempty"`
		Benefits *overviewFile `yaml:"benefits,omitempty"`
	} `yaml:"overview"`
	Benefits []benefitFile `yaml:"benefits,omitempty"`
	Regions  []regionFile  `yaml:"regions,omitempty"`
	Plans    []planFile    `yaml:"plans,omitempty"`
}

type catalogDump struct {
	TrialDays       int    `yaml:"trial_days"`
	FreePlanEnabled bool   `yaml:"free_plan_enabled"`
	FreemodeEnabled bool   `yaml:"freemode_enabled"`
	DefaultRegion   string `yaml:"default_region"`
	catalogFile     `yaml:",inline"`
}

type CatalogRepository struct {
	cfg      config.CloudConfig
	validate *validator.Validate
}

func NewCatalogRepository(cfg config.CloudConfig) *CatalogRepository {
	return &CatalogRepository{
		cfg:      cfg,
		validate: validator.New(),
	}
}

// Load assembles the catalog from the built-in table, the optional catalog
// file and the per-region env overrides, in that order of precedence.
func (r *CatalogRepository) Load() (*entity.Catalog, error) {
	catalog := &entity.Catalog{
		TrialDays:        r.cfg.TrialDays,
		FreePlanEnabled:  r.cfg.FreePlanEnabled,
		FreemodeEnabled:  r.cfg.FreemodeEnabled,
		DefaultRegion:    r.cfg.DefaultRegion,
		Regions:          defaultRegions(),
		Plans:            defaultPlans(),
		Benefits:         defaultBenefits(),
		PlansOverview:    defaultPlansOverview(),
		BenefitsOverview: defaultBenefitsOverview(),
	}
	if catalog.DefaultRegion == "" {
		catalog.DefaultRegion = "us"
	}

	if r.cfg.CatalogFile != "" {
		data, err := os.ReadFile(r.cfg.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("read catalog file: %w", err)
		}
		if err := applyCatalogFile(catalog, data); err != nil {
			return nil, err
		}
	}

	r.applyOverrides(catalog)
	fillFormattedPrices(catalog)

	if err := r.validateCatalog(catalog); err != nil {
		return nil, err
	}

	catalog.Index()
	return catalog, nil
}

func applyCatalogFile(catalog *entity.Catalog, data []byte) error {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("%w: parse catalog file: %v", ErrInvalidCatalog, err)
	}

	if file.Overview.Plans != nil {
		catalog.PlansOverview = entity.Overview(*file.Overview.Plans)
	}
	if file.Overview.Benefits != nil {
		catalog.BenefitsOverview = entity.Overview(*file.Overview.Benefits)
	}
	if len(file.Benefits) > 0 {
		catalog.Benefits = make([]entity.Benefit, 0, len(file.Benefits))
		for _, item := range file.Benefits {
			catalog.Benefits = append(catalog.Benefits, entity.Benefit(item))
		}
	}
	if len(file.Regions) > 0 {
		catalog.Regions = make([]entity.Region, 0, len(file.Regions))
		for _, item := range file.Regions {
			region := entity.Region(item)
			region.Code = strings.ToLower(strings.TrimSpace(region.Code))
			region.Currency = strings.ToUpper(strings.TrimSpace(region.Currency))
			catalog.Regions = append(catalog.Regions, region)
		}
	}
	if len(file.Plans) > 0 {
		catalog.Plans = make([]entity.Plan, 0, len(file.Plans))
		for _, item := range file.Plans {
			catalog.Plans = append(catalog.Plans, entity.Plan{
				ID:       item.ID,
				Name:     item.Name,
				Interval: item.Interval,
				Features: item.Features,
				CTA:      entity.CTA(item.CTA),
			})
		}
	}
	return nil
}

func (r *CatalogRepository) applyOverrides(catalog *entity.Catalog) {
	for i := range catalog.Regions {
		region := &catalog.Regions[i]
		override, ok := r.cfg.RegionPrices[region.Code]
		if !ok {
			continue
		}
		if override.MonthlyPrice != nil {
			region.MonthlyPrice = *override.MonthlyPrice
			region.MonthlyPriceFormatted = ""
		}
		if override.YearlyPrice != nil {
			region.YearlyPrice = *override.YearlyPrice
			region.YearlyPriceFormatted = ""
		}
		if override.MonthlyPriceFormatted != "" {
			region.MonthlyPriceFormatted = override.MonthlyPriceFormatted
		}
		if override.YearlyPriceFormatted != "" {
			region.YearlyPriceFormatted = override.YearlyPriceFormatted
		}
	}

	for i := range catalog.Plans {
		plan := &catalog.Plans[i]
		if plan.IsLifetime() {
			continue
		}
		if r.cfg.CTAText != "" {
			plan.CTA.Text = r.cfg.CTAText
		}
		if r.cfg.ButtonText != "" {
			plan.CTA.ButtonText = r.cfg.ButtonText
		}
	}
}

func fillFormattedPrices(catalog *entity.Catalog) {
	for i := range catalog.Regions {
		region := &catalog.Regions[i]
		if region.MonthlyPriceFormatted == "" {
			region.MonthlyPriceFormatted = FormatMinorUnits(region.Currency, region.MonthlyPrice)
		}
		if region.YearlyPriceFormatted == "" {
			region.YearlyPriceFormatted = FormatMinorUnits(region.Currency, region.YearlyPrice)
		}
	}
}

func (r *CatalogRepository) validateCatalog(catalog *entity.Catalog) error {
	if err := r.validate.Struct(catalog); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	regionCodes := make(map[string]struct{}, len(catalog.Regions))
	for _, region := range catalog.Regions {
		if _, err := currency.ParseISO(region.Currency); err != nil {
			return fmt.Errorf("%w: region %s: unknown currency %q", ErrInvalidCatalog, region.Code, region.Currency)
		}
		if _, exists := regionCodes[region.Code]; exists {
			return fmt.Errorf("%w: duplicate region %q", ErrInvalidCatalog, region.Code)
		}
		regionCodes[region.Code] = struct{}{}
	}
	if _, ok := regionCodes[catalog.DefaultRegion]; !ok {
		return fmt.Errorf("%w: default region %q is not configured", ErrInvalidCatalog, catalog.DefaultRegion)
	}

	planIDs := make(map[string]struct{}, len(catalog.Plans))
	lifetimePlans := 0
	for _, plan := range catalog.Plans {
		if _, exists := planIDs[plan.ID]; exists {
			return fmt.Errorf("%w: duplicate plan %q", ErrInvalidCatalog, plan.ID)
		}
		planIDs[plan.ID] = struct{}{}
		if plan.IsLifetime() {
			lifetimePlans++
		}
	}
	if catalog.FreePlanEnabled && lifetimePlans != 1 {
		return fmt.Errorf("%w: free plan enabled but %d lifetime plans configured", ErrInvalidCatalog, lifetimePlans)
	}

	return nil
}

// FormatMinorUnits renders an amount in minor units using the currency's ISO 4217 scale.
func FormatMinorUnits(currencyCode string, amount int64) string {
	code := strings.ToUpper(currencyCode)
	scale := 2
	if unit, err := currency.ParseISO(code); err == nil {
		scale, _ = currency.Standard.Rounding(unit)
	}

	symbol, ok := currencySymbols[code]
	if !ok {
		symbol = code + " "
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	if scale == 0 {
		return fmt.Sprintf("%s%s%d", sign, symbol, amount)
	}

	divisor := int64(1)
	for i := 0; i < scale; i++ {
		divisor *= 10
	}
	return fmt.Sprintf("%s%s%d.%0*d", sign, symbol, amount/divisor, scale, amount%divisor)
}

// MarshalCatalogYAML renders a loaded catalog in the catalog file layout.
func MarshalCatalogYAML(catalog *entity.Catalog) ([]byte, error) {
	dump := catalogDump{
		TrialDays:       catalog.TrialDays,
		FreePlanEnabled: catalog.FreePlanEnabled,
		FreemodeEnabled: catalog.FreemodeEnabled,
		DefaultRegion:   catalog.DefaultRegion,
	}

	plansOverview := overviewFile(catalog.PlansOverview)
	benefitsOverview := overviewFile(catalog.BenefitsOverview)
	dump.Overview.Plans = &plansOverview
	dump.Overview.Benefits = &benefitsOverview

	for _, item := range catalog.Benefits {
		dump.Benefits = append(dump.Benefits, benefitFile(item))
	}
	for _, item := range catalog.Regions {
		dump.Regions = append(dump.Regions, regionFile(item))
	}
	for _, item := range catalog.Plans {
		dump.Plans = append(dump.Plans, planFile{
			ID:       item.ID,
			Name:     item.Name,
			Interval: item.Interval,
			Features: item.Features,
			CTA:      ctaFile(item.CTA),
		})
	}

	return yaml.Marshal(&dump)
}
