package planner

import (
	"fmt"
	"strings"

	"cadence-workers/internal/cadence"
	"cadence-workers/internal/models"
)

const (
	minSteps = 5
	maxSteps = 7
	minSpan  = 14
	maxSpan  = 21
)

// BuildPrompt constructs the structured request for the generative planner.
// It states the lead profile, enumerates exactly the available channels and
// forbids any other value, states the step-count and day-span targets, and
// demands a machine-parseable JSON array and nothing else.
func BuildPrompt(lead *models.Lead, bt cadence.BusinessType, available []cadence.Channel) string {
	var parts []string

	parts = append(parts, "You are an outreach strategist for a local-business sales CRM. Design a contact cadence for the lead below.")

	parts = append(parts, "\nLead Profile:")
	parts = append(parts, fmt.Sprintf("- Business: %s", lead.Name))
	parts = append(parts, fmt.Sprintf("- Category: %s (classified as %s)", lead.Category, bt))
	if lead.City != "" {
		parts = append(parts, fmt.Sprintf("- City: %s", lead.City))
	}
	if lead.OwnerName != "" {
		parts = append(parts, fmt.Sprintf("- Owner: %s", lead.OwnerName))
	}
	parts = append(parts, fmt.Sprintf("- Has website: %t", lead.HasWebsite()))
	if lead.ReviewCount > 0 {
		parts = append(parts, fmt.Sprintf("- Rating: %.1f stars across %d reviews", lead.Rating, lead.ReviewCount))
	}
	parts = append(parts, fmt.Sprintf("- Lead score: %d/100", lead.LeadScore))
	if lead.AIBriefing != "" {
		parts = append(parts, fmt.Sprintf("- Briefing: %s", lead.AIBriefing))
	}

	channelNames := make([]string, len(available))
	for i, ch := range available {
		channelNames[i] = string(ch)
	}
	parts = append(parts, "\nAvailable channels (use ONLY these, any other channel value is invalid):")
	parts = append(parts, strings.Join(channelNames, ", "))

	parts = append(parts, "\nRequirements:")
	parts = append(parts, fmt.Sprintf("- Produce %d to %d steps spanning roughly %d to %d days", minSteps, maxSteps, minSpan, maxSpan))
	parts = append(parts, fmt.Sprintf("- Front-load the most effective channel for this business type (%s)", cadence.PreferredChannel(bt)))
	if hasHighTouch(available) {
		parts = append(parts, "- End with a high-touch step: phone or in_person")
	}
	parts = append(parts, "- Vary channels across the sequence instead of repeating one")

	parts = append(parts, "\nRespond with ONLY a JSON array, no prose, in this exact shape:")
	parts = append(parts, `[{"step": 1, "channel": "email", "dayOffset": 0, "template": "intro_email", "rationale": "why this step"}]`)

	return strings.Join(parts, "\n")
}

func hasHighTouch(available []cadence.Channel) bool {
	for _, ch := range available {
		if ch == cadence.ChannelPhone || ch == cadence.ChannelInPerson {
			return true
		}
	}
	return false
}
