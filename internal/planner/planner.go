// Package planner asks a generative model for a candidate cadence and
// turns its untrusted reply into typed drafts. Everything downstream must
// treat the drafts as hostile input until the normalizer has run.
package planner

import (
	"context"
	"strings"

	"cadence-workers/internal/cadence"
	"cadence-workers/internal/common/errors"
	"cadence-workers/internal/common/logger"
	"cadence-workers/internal/models"
)

// TextGenerator is the generative-model transport. The engine does not
// depend on any specific model identity beyond "returns text containing a
// JSON sequence".
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Planner struct {
	gen       TextGenerator
	templates []string
	logger    logger.Logger
}

func New(gen TextGenerator, log logger.Logger) *Planner {
	return &Planner{
		gen:    gen,
		logger: log.WithFields(map[string]interface{}{"component": "planner"}),
	}
}

// UseTemplates suggests catalog template names to the model. The suggestion
// is advisory only: drafts may still name anything, and the normalizer is
// what guarantees the persisted values are safe.
func (p *Planner) UseTemplates(names []string) {
	p.templates = names
}

// Plan requests a cadence proposal for the lead and parses it into drafts.
// Returns the raw model text alongside the drafts so callers can attach it
// to errors and advisories. A failed call or unparseable output yields
// PLANNER_FAILED; a well-formed but empty sequence yields EMPTY_CADENCE.
func (p *Planner) Plan(ctx context.Context, lead *models.Lead, bt cadence.BusinessType, available []cadence.Channel) ([]models.CadenceStepDraft, string, error) {
	prompt := BuildPrompt(lead, bt, available)
	if len(p.templates) > 0 {
		prompt += "\nPrefer these template names where they fit: " + strings.Join(p.templates, ", ")
	}

	p.logger.Debug("requesting cadence plan", map[string]interface{}{
		"leadId":       lead.ID,
		"businessType": bt,
		"channels":     available,
	})

	raw, err := p.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, "", errors.NewPlannerError(err, "")
	}

	drafts, err := ParseDrafts(raw)
	if err != nil {
		return nil, raw, errors.NewPlannerError(err, raw)
	}

	if len(drafts) == 0 {
		return nil, raw, errors.NewEmptyCadenceError()
	}

	p.logger.Info("cadence plan received", map[string]interface{}{
		"leadId":    lead.ID,
		"stepCount": len(drafts),
	})

	return drafts, raw, nil
}
