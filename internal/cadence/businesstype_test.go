package cadence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBusinessType(t *testing.T) {
	tests := []struct {
		name     string
		category string
		expected BusinessType
	}{
		{"restaurant", "Italian Restaurant", BusinessTypeRestaurantRetail},
		{"coffee shop", "coffee shop", BusinessTypeRestaurantRetail},
		{"boutique", "Fashion Boutique", BusinessTypeRestaurantRetail},
		{"law firm", "Law Firm", BusinessTypeProfessionalServices},
		{"consulting", "Management Consulting", BusinessTypeProfessionalServices},
		{"accounting", "Accounting Services", BusinessTypeProfessionalServices},
		{"roofing", "Residential Roofing", BusinessTypeHomeServices},
		{"plumber", "Plumbing & Heating", BusinessTypeHomeServices},
		{"photographer", "Wedding Photographer", BusinessTypeCreator},
		{"podcast", "True Crime Podcast", BusinessTypeCreator},
		{"no match", "Municipal Zoo", BusinessTypeGeneral},
		{"empty", "", BusinessTypeGeneral},
		{"case insensitive", "RESTAURANT", BusinessTypeRestaurantRetail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyBusinessType(tt.category))
		})
	}
}

func TestClassifyBusinessType_FirstGroupWins(t *testing.T) {
	// "restaurant marketing agency" matches both the restaurant group and
	// the professional-services group; declaration order breaks the tie.
	assert.Equal(t, BusinessTypeRestaurantRetail, ClassifyBusinessType("restaurant marketing agency"))
}

func TestPreferredChannel(t *testing.T) {
	assert.Equal(t, ChannelInPerson, PreferredChannel(BusinessTypeRestaurantRetail))
	assert.Equal(t, ChannelEmail, PreferredChannel(BusinessTypeProfessionalServices))
	assert.Equal(t, ChannelPhone, PreferredChannel(BusinessTypeHomeServices))
	assert.Equal(t, ChannelInstagram, PreferredChannel(BusinessTypeCreator))
	assert.Equal(t, ChannelEmail, PreferredChannel(BusinessTypeGeneral))
}
