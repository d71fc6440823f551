package cadence

import (
	"testing"

	"cadence-workers/internal/common/errors"
	"cadence-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectChannels_MissingIdentifier(t *testing.T) {
	tests := []struct {
		name string
		lead *models.Lead
	}{
		{"nil lead", nil},
		{"empty id", &models.Lead{Name: "Joe's Pizza"}},
		{"whitespace id", &models.Lead{ID: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avail, err := DetectChannels(tt.lead)
			require.Error(t, err)
			assert.Nil(t, avail, "no partial result on malformed lead")
			assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
		})
	}
}

func TestDetectChannels_MapsContactFields(t *testing.T) {
	lead := &models.Lead{
		ID:        "lead-1",
		Phone:     "+1 555 0100",
		Email:     "owner@example.com",
		Instagram: "@joespizza",
		City:      "Austin",
	}

	avail, err := DetectChannels(lead)
	require.NoError(t, err)

	assert.True(t, avail.Has(ChannelPhone))
	assert.True(t, avail.Has(ChannelEmail))
	assert.True(t, avail.Has(ChannelInstagram))
	assert.True(t, avail.Has(ChannelInPerson), "city implies a walk-in option")
	assert.False(t, avail.Has(ChannelFacebook))
	assert.False(t, avail.Has(ChannelTikTok))
	assert.False(t, avail.Has(ChannelLinkedIn))
	assert.True(t, avail.Has(ChannelOther), "other is always the repair fallback")
}

func TestChannelAvailability_Usable(t *testing.T) {
	avail, err := DetectChannels(&models.Lead{ID: "lead-2", Email: "a@b.c", Phone: "555"})
	require.NoError(t, err)

	usable := avail.Usable()
	assert.Equal(t, []Channel{ChannelPhone, ChannelEmail}, usable, "declaration order, other excluded")
	assert.True(t, avail.AnyUsable())
}

func TestChannelAvailability_NothingUsable(t *testing.T) {
	// A lead with an id but no contact data at all: only the catch-all is
	// set, which must not count as usable.
	avail, err := DetectChannels(&models.Lead{ID: "lead-3"})
	require.NoError(t, err)

	assert.False(t, avail.AnyUsable())
	assert.Empty(t, avail.Usable())
}

func TestIsValidChannel(t *testing.T) {
	assert.True(t, IsValidChannel("phone"))
	assert.True(t, IsValidChannel("  TikTok "))
	assert.True(t, IsValidChannel("in_person"))
	assert.False(t, IsValidChannel("carrier_pigeon"))
	assert.False(t, IsValidChannel(""))
}
