package scoring

import (
	"fmt"
	"math"
	"strings"

	"dealfinder/internal/domain/entity"
	"dealfinder/internal/domain/value"
)

const (
	excellentPriceRatio = 0.7
	goodPriceRatio      = 0.9
	recentDays          = 2
)

// Market is the baseline a batch of listings is judged against.
type Market struct {
	AveragePrice float64
}

// Rule adjusts a listing's score. An empty reason means the rule did not
// fire; a rule may fire without changing the score.
type Rule struct {
	Name  string
	Apply func(listing entity.RawListing, market Market) (delta int, reason string)
}

// DefaultRules returns the rules in the order their reasons are reported.
func DefaultRules() []Rule {
	return []Rule{
		PriceRule(),
		ConditionRule(),
		RecencyRule(),
		PackagingRule(),
		UrgencyRule(),
	}
}

// PriceRule always fires with exactly one of three tiers.
func PriceRule() Rule {
	return Rule{
		Name: "price",
		Apply: func(listing entity.RawListing, market Market) (int, string) {
			price := float64(listing.Price)
			avg := market.AveragePrice

			switch {
			case price < avg*excellentPriceRatio:
				below := math.Round((avg - price) / avg * 100) //nolint:mnd
				return 2, fmt.Sprintf("Excellent price - %d%% below average.", int(below))
			case price < avg*goodPriceRatio:
				return 1, "Good price - below average market value."
			default:
				return 0, "Fair price - in line with market value."
			}
		},
	}
}

func ConditionRule() Rule {
	return Rule{
		Name: "condition",
		Apply: func(listing entity.RawListing, _ Market) (int, string) {
			switch listing.Condition {
			case value.ConditionLikeNew, value.ConditionExcellent:
				return 2, "Item is in excellent condition."
			case value.ConditionVeryGood:
				return 1, "Item is in very good condition."
			default:
				return 0, ""
			}
		},
	}
}

func RecencyRule() Rule {
	return Rule{
		Name: "recency",
		Apply: func(listing entity.RawListing, _ Market) (int, string) {
			if listing.ListedDaysAgo <= recentDays {
				return 1, "Recently listed - act fast!"
			}

			return 0, ""
		},
	}
}

// PackagingRule matches case-sensitively: "Box" does not count.
func PackagingRule() Rule {
	return Rule{
		Name: "packaging",
		Apply: func(listing entity.RawListing, _ Market) (int, string) {
			if strings.Contains(listing.Description, "box") || strings.Contains(listing.Description, "accessories") {
				return 1, "Includes extras or original packaging."
			}

			return 0, ""
		},
	}
}

// UrgencyRule only explains; a motivated seller does not raise the score.
func UrgencyRule() Rule {
	return Rule{
		Name: "urgency",
		Apply: func(listing entity.RawListing, _ Market) (int, string) {
			description := strings.ToLower(listing.Description)

			if strings.Contains(description, "must sell") || strings.Contains(description, "moving") {
				return 0, "Seller is motivated - good negotiation opportunity."
			}

			return 0, ""
		},
	}
}
