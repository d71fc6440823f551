package cadence

import "strings"

// BusinessType is the coarse industry classification used to pick timing
// heuristics and the channel to front-load.
type BusinessType string

const (
	BusinessTypeRestaurantRetail     BusinessType = "restaurant_retail"
	BusinessTypeProfessionalServices BusinessType = "professional_services"
	BusinessTypeHomeServices         BusinessType = "home_services"
	BusinessTypeCreator              BusinessType = "creator"
	BusinessTypeGeneral              BusinessType = "general"
)

// keywordGroup ties a business type to the category keywords that select
// it. Groups are evaluated in declaration order; the first match wins.
type keywordGroup struct {
	businessType BusinessType
	keywords     []string
}

var keywordGroups = []keywordGroup{
	{BusinessTypeRestaurantRetail, []string{
		"restaurant", "cafe", "coffee", "bakery", "bar", "food",
		"retail", "shop", "store", "boutique", "salon", "spa",
	}},
	{BusinessTypeProfessionalServices, []string{
		"law", "attorney", "legal", "consult", "account", "financ",
		"insurance", "real estate", "dental", "medical", "clinic",
		"agency", "marketing",
	}},
	{BusinessTypeHomeServices, []string{
		"roofing", "plumbing", "hvac", "electric", "landscap",
		"cleaning", "pest", "contractor", "construction", "painting",
	}},
	{BusinessTypeCreator, []string{
		"photographer", "photography", "videograph", "podcast",
		"influencer", "artist", "musician", "content", "studio",
	}},
}

// ClassifyBusinessType maps a free-text category to a BusinessType.
// Case-insensitive substring match, first matching group wins, no match
// classifies as general. Total and deterministic: never errors.
func ClassifyBusinessType(category string) BusinessType {
	cat := strings.ToLower(strings.TrimSpace(category))
	if cat == "" {
		return BusinessTypeGeneral
	}
	for _, group := range keywordGroups {
		for _, kw := range group.keywords {
			if strings.Contains(cat, kw) {
				return group.businessType
			}
		}
	}
	return BusinessTypeGeneral
}

// PreferredChannel returns the channel most effective for opening outreach
// to the given business type. Feeds the planner prompt; availability is
// checked by the caller.
func PreferredChannel(bt BusinessType) Channel {
	switch bt {
	case BusinessTypeRestaurantRetail:
		return ChannelInPerson
	case BusinessTypeProfessionalServices:
		return ChannelEmail
	case BusinessTypeHomeServices:
		return ChannelPhone
	case BusinessTypeCreator:
		return ChannelInstagram
	default:
		return ChannelEmail
	}
}
