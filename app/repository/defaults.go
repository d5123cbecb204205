package repository

import "github.com/vibast-solutions/ms-go-cloud-plans/app/entity"

const (
	defaultPaidCTAText    = "Start 3-Day Free Trial"
	defaultPaidButtonText = "Get Started"
)

func defaultRegions() []entity.Region {
	return []entity.Region{
		{Code: "us", Name: "United States", Currency: "USD", MonthlyPrice: 500, YearlyPrice: 5000},
		{Code: "eu", Name: "Europe", Currency: "EUR", MonthlyPrice: 500, YearlyPrice: 5000},
		{Code: "uk", Name: "United Kingdom", Currency: "GBP", MonthlyPrice: 500, YearlyPrice: 5000},
	}
}

func defaultPlans() []entity.Plan {
	return []entity.Plan{
		{
			ID:       "free",
			Name:     "Free",
			Interval: entity.IntervalLifetime,
			Features: []string{
				"Up to 3 wallets",
				"Up to 10 categories",
				"Community support",
			},
			CTA: entity.CTA{Text: "Current Plan", ButtonText: "Get Started"},
		},
		{
			ID:       "monthly",
			Name:     "Monthly",
			Interval: entity.IntervalMonth,
			Features: []string{
				"Unlimited categories and wallets",
				"Mobile and web access",
				"CSV exports",
				"Community support",
			},
			CTA: entity.CTA{Text: defaultPaidCTAText, ButtonText: defaultPaidButtonText},
		},
		{
			ID:       "yearly",
			Name:     "Yearly",
			Interval: entity.IntervalYear,
			Features: []string{
				"Everything in Monthly",
				"2 months free (save ~17%)",
				"Premium support",
				"Early feature access",
				"Priority voting on roadmap",
			},
			CTA: entity.CTA{Text: defaultPaidCTAText, ButtonText: defaultPaidButtonText},
		},
	}
}

func defaultBenefits() []entity.Benefit {
	return []entity.Benefit{
		{
			Title:       "Access Anywhere",
			Description: "Use the app on your phone, tablet, or browser. Your data stays synced across all devices.",
		},
		{
			Title:       "Secure Cloud Backups",
			Description: "Never lose your data. Your transactions and settings are automatically backed up to the cloud.",
		},
		{
			Title:       "Early Access to New Features",
			Description: "Be the first to try out new budgeting tools, reports, and integrations before anyone else.",
		},
		{
			Title:       "Priority Support",
			Description: "Get help faster with our cloud user support channel, guaranteed response within 24 hours.",
		},
		{
			Title:       "Automatic Updates",
			Description: "Stay current with improvements and fixes. No manual updates needed.",
		},
	}
}

func defaultPlansOverview() entity.Overview {
	return entity.Overview{
		Title:       "Upgrade to Premium",
		Description: "Unlock powerful tools and premium features to achieve your financial goals.",
	}
}

func defaultBenefitsOverview() entity.Overview {
	return entity.Overview{
		Title:       "Why Create a Cloud Account?",
		Description: "A cloud account unlocks seamless access across all your devices, secure cloud backups, exclusive feature updates, and priority support.",
	}
}
