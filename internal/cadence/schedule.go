package cadence

import (
	"time"

	"cadence-workers/internal/models"
)

// MaterializeSchedule converts normalized drafts into concrete cadence
// steps. For each draft the base date is ref plus the draft's day offset
// (zero means today; negative offsets resolve to past-dated schedules,
// which callers may treat as send-immediately), adjusted to the next valid
// contact instant for the step's channel. Steps are never deduplicated or
// merged: the output count equals the input count even when two steps
// collide on the same instant.
func MaterializeSchedule(leadID, userID string, bt BusinessType, drafts []models.CadenceStepDraft, ref time.Time) []models.CadenceStep {
	steps := make([]models.CadenceStep, len(drafts))
	for i, d := range drafts {
		base := ref.AddDate(0, 0, d.DayOffset)
		steps[i] = models.CadenceStep{
			LeadID:      leadID,
			UserID:      userID,
			Step:        d.Step,
			Channel:     d.Channel,
			ScheduledAt: NextContactTime(bt, Channel(d.Channel), base),
			Template:    d.Template,
			Completed:   false,
			Skipped:     false,
		}
	}
	return steps
}
