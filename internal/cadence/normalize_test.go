package cadence

import (
	"testing"

	"cadence-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phoneEmailOnly() ChannelAvailability {
	return ChannelAvailability{
		ChannelPhone: true,
		ChannelEmail: true,
		ChannelOther: true,
	}
}

func TestNormalizeDrafts_RepairsUnknownChannel(t *testing.T) {
	drafts := []models.CadenceStepDraft{
		{Step: 1, Channel: "email", DayOffset: 0, Template: "intro"},
		{Step: 2, Channel: "carrier_pigeon", DayOffset: 3, Template: "followup"},
	}

	out, warnings := NormalizeDrafts(drafts, phoneEmailOnly())

	require.Len(t, out, 2, "normalizer never drops steps")
	assert.Equal(t, "email", out[0].Channel)
	assert.Equal(t, string(ChannelOther), out[1].Channel, "hallucinated channel repaired, not rejected")
	assert.Len(t, warnings, 1)
}

func TestNormalizeDrafts_RepairsUnavailableChannel(t *testing.T) {
	// tiktok is a real channel, but the lead is only reachable by phone and
	// email: the step survives on the fallback channel.
	out, warnings := NormalizeDrafts([]models.CadenceStepDraft{
		{Step: 1, Channel: "tiktok", DayOffset: 2, Template: "dm"},
	}, phoneEmailOnly())

	require.Len(t, out, 1)
	assert.Equal(t, string(ChannelOther), out[0].Channel)
	assert.Equal(t, 2, out[0].DayOffset, "timing intent preserved")
	assert.Len(t, warnings, 1)
}

func TestNormalizeDrafts_CaseAndWhitespace(t *testing.T) {
	out, warnings := NormalizeDrafts([]models.CadenceStepDraft{
		{Step: 1, Channel: "  Phone ", DayOffset: 0, Template: "call"},
	}, phoneEmailOnly())
	assert.Equal(t, "phone", out[0].Channel)
	assert.Empty(t, warnings)
}

func TestNormalizeDrafts_DefaultTemplate(t *testing.T) {
	out, _ := NormalizeDrafts([]models.CadenceStepDraft{
		{Step: 1, Channel: "email", DayOffset: 0},
		{Step: 2, Channel: "email", DayOffset: 2, Template: "   "},
	}, phoneEmailOnly())
	assert.Equal(t, DefaultTemplate, out[0].Template)
	assert.Equal(t, DefaultTemplate, out[1].Template)
}

func TestNormalizeDrafts_PreservesAdvisoryHints(t *testing.T) {
	// Duplicate step numbers and non-monotonic offsets are the planner's
	// anomaly to own: they pass through verbatim, only flagged in warnings.
	drafts := []models.CadenceStepDraft{
		{Step: 1, Channel: "email", DayOffset: 7, Template: "a"},
		{Step: 1, Channel: "phone", DayOffset: 2, Template: "b"},
		{Step: 2, Channel: "phone", DayOffset: -1, Template: "c"},
	}

	out, warnings := NormalizeDrafts(drafts, phoneEmailOnly())

	require.Len(t, out, 3)
	assert.Equal(t, 1, out[1].Step)
	assert.Equal(t, 2, out[1].DayOffset)
	assert.Equal(t, -1, out[2].DayOffset, "negative offsets accepted as-is")
	assert.Len(t, warnings, 3, "duplicate step plus two offset regressions")
}

func TestNormalizeDrafts_CountRoundTrip(t *testing.T) {
	for _, n := range []int{1, 5, 7, 12} {
		drafts := make([]models.CadenceStepDraft, n)
		for i := range drafts {
			drafts[i] = models.CadenceStepDraft{Step: i + 1, Channel: "whatsapp", DayOffset: i}
		}
		out, _ := NormalizeDrafts(drafts, phoneEmailOnly())
		assert.Len(t, out, n)
	}
}
