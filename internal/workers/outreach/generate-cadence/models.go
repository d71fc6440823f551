// internal/workers/outreach/generate-cadence/models.go
package generatecadence

import "cadence-workers/internal/models"

type Input struct {
	LeadID string `json:"leadId"`
	UserID string `json:"userId"`
}

type Output struct {
	LeadID       string                `json:"leadId"`
	BusinessType string                `json:"businessType"`
	Steps        []models.CadenceStep  `json:"steps"`
	Advisories   []models.StepAdvisory `json:"advisories"`
}

// advisoryDocument is what gets indexed into elasticsearch for later human
// review of the planner's reasoning.
type advisoryDocument struct {
	LeadID       string                `json:"leadId"`
	UserID       string                `json:"userId"`
	BusinessType string                `json:"businessType"`
	Advisories   []models.StepAdvisory `json:"advisories"`
	RawPlan      string                `json:"rawPlan"`
	IndexedAt    string                `json:"indexedAt"`
}
