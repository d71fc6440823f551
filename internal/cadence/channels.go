// Package cadence holds the pure domain logic of the outreach cadence
// engine: channel availability, business-type classification, contact
// timing, plan normalization and schedule materialization. Nothing in this
// package touches the network, the clock, or a datastore.
package cadence

import (
	"strings"

	"cadence-workers/internal/common/errors"
	"cadence-workers/internal/models"
)

// Channel is a contact medium. The set is closed: planner output naming
// anything else is repaired to ChannelOther by the normalizer.
type Channel string

const (
	ChannelPhone     Channel = "phone"
	ChannelEmail     Channel = "email"
	ChannelInstagram Channel = "instagram"
	ChannelFacebook  Channel = "facebook"
	ChannelTikTok    Channel = "tiktok"
	ChannelLinkedIn  Channel = "linkedin"
	ChannelInPerson  Channel = "in_person"
	ChannelOther     Channel = "other"
)

// AllChannels lists every valid channel in declaration order.
var AllChannels = []Channel{
	ChannelPhone,
	ChannelEmail,
	ChannelInstagram,
	ChannelFacebook,
	ChannelTikTok,
	ChannelLinkedIn,
	ChannelInPerson,
	ChannelOther,
}

// IsValidChannel reports whether raw names a channel of the closed set.
func IsValidChannel(raw string) bool {
	c := Channel(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range AllChannels {
		if c == known {
			return true
		}
	}
	return false
}

// ChannelAvailability maps each channel to whether the lead can be reached
// through it. Derived once per generation run.
type ChannelAvailability map[Channel]bool

// Usable returns the available channels in declaration order, excluding
// ChannelOther: it is the repair fallback, not a contact method a lead can
// actually be reached on.
func (a ChannelAvailability) Usable() []Channel {
	var out []Channel
	for _, ch := range AllChannels {
		if ch == ChannelOther {
			continue
		}
		if a[ch] {
			out = append(out, ch)
		}
	}
	return out
}

// AnyUsable reports whether at least one real channel is available.
// Generation is refused when this is false.
func (a ChannelAvailability) AnyUsable() bool {
	return len(a.Usable()) > 0
}

// Has reports availability for a single channel.
func (a ChannelAvailability) Has(ch Channel) bool {
	return a[ch]
}

// DetectChannels inspects the lead's contact fields and reports which
// channels are usable. Pure function of the lead; side-effect free. The only
// failure mode is a malformed lead missing its identifier — never a partial
// result.
func DetectChannels(lead *models.Lead) (ChannelAvailability, error) {
	if lead == nil || strings.TrimSpace(lead.ID) == "" {
		return nil, errors.NewInvalidRequestError("lead is missing its identifier")
	}

	return ChannelAvailability{
		ChannelPhone:     strings.TrimSpace(lead.Phone) != "",
		ChannelEmail:     strings.TrimSpace(lead.Email) != "",
		ChannelInstagram: strings.TrimSpace(lead.Instagram) != "",
		ChannelFacebook:  strings.TrimSpace(lead.Facebook) != "",
		ChannelTikTok:    strings.TrimSpace(lead.TikTok) != "",
		ChannelLinkedIn:  strings.TrimSpace(lead.LinkedIn) != "",
		ChannelInPerson:  strings.TrimSpace(lead.City) != "",
		ChannelOther:     true,
	}, nil
}
