// internal/models/cadence.go
package models

import "time"

// CadenceStepDraft is one proposed step exactly as the generative planner
// emitted it. Untrusted: channel and template are free text until the
// normalizer has run, and step/dayOffset carry whatever the model produced.
type CadenceStepDraft struct {
	Step      int    `json:"step"`
	Channel   string `json:"channel"`
	DayOffset int    `json:"dayOffset"`
	Template  string `json:"template,omitempty"`
	Rationale string `json:"rationale,omitempty"`
}

// CadenceStep is one scheduled outreach action as persisted.
type CadenceStep struct {
	ID          string    `json:"id" db:"id"`
	LeadID      string    `json:"leadId" db:"lead_id"`
	UserID      string    `json:"userId" db:"user_id"`
	Step        int       `json:"step" db:"step_number"`
	Channel     string    `json:"channel" db:"channel"`
	ScheduledAt time.Time `json:"scheduledAt" db:"scheduled_at"`
	Template    string    `json:"template" db:"template"`
	Completed   bool      `json:"completed" db:"completed"`
	Skipped     bool      `json:"skipped" db:"skipped"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// StepAdvisory carries the planner's per-step reasoning back to the caller.
// Advisory only: never persisted with the schedule itself.
type StepAdvisory struct {
	Step      int    `json:"step"`
	Channel   string `json:"channel"`
	Rationale string `json:"rationale,omitempty"`
}
