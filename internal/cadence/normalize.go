package cadence

import (
	"fmt"
	"strings"

	"cadence-workers/internal/models"
)

// DefaultTemplate labels steps whose draft arrived without a template name.
const DefaultTemplate = "general_followup"

// NormalizeDrafts repairs the planner's untrusted drafts into a form safe
// for materialization. Policy is lenient repair, not rejection: a channel
// outside the closed enumeration, or one the lead cannot actually be
// reached on, becomes ChannelOther, and a blank template gets the default
// label — preserving the planner's ordering and timing intent even when it
// hallucinates. Step numbers and day offsets pass through untouched: they
// are advisory hints, and anomalies (duplicate numbers, non-monotonic
// offsets) are preserved verbatim and only reported in the returned
// warnings.
//
// Never drops, reorders, or fails: the output count always equals the
// input count. Empty input is rejected upstream by the planner.
func NormalizeDrafts(drafts []models.CadenceStepDraft, availability ChannelAvailability) ([]models.CadenceStepDraft, []string) {
	out := make([]models.CadenceStepDraft, len(drafts))
	var warnings []string

	seenSteps := make(map[int]bool, len(drafts))
	prevOffset := 0

	for i, d := range drafts {
		norm := d
		norm.Channel = strings.ToLower(strings.TrimSpace(d.Channel))

		if !allowedChannel(norm.Channel, availability) {
			warnings = append(warnings, fmt.Sprintf(
				"step %d: channel %q replaced with %q", d.Step, d.Channel, ChannelOther))
			norm.Channel = string(ChannelOther)
		}

		if strings.TrimSpace(norm.Template) == "" {
			norm.Template = DefaultTemplate
		}

		if seenSteps[d.Step] {
			warnings = append(warnings, fmt.Sprintf("duplicate step number %d preserved", d.Step))
		}
		seenSteps[d.Step] = true

		if i > 0 && d.DayOffset < prevOffset {
			warnings = append(warnings, fmt.Sprintf(
				"step %d: day offset %d precedes previous offset %d", d.Step, d.DayOffset, prevOffset))
		}
		prevOffset = d.DayOffset

		out[i] = norm
	}

	return out, warnings
}

// allowedChannel reports whether raw names a channel of the closed set the
// lead can be reached on. ChannelOther always passes: it is the repair
// target itself.
func allowedChannel(raw string, availability ChannelAvailability) bool {
	if !IsValidChannel(raw) {
		return false
	}
	ch := Channel(raw)
	if ch == ChannelOther {
		return true
	}
	return availability.Has(ch)
}
