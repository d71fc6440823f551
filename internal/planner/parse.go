package planner

import (
	"encoding/json"
	"fmt"
	"strings"

	"cadence-workers/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

// draftSchema gates the structure of the planner's output before decoding.
// Deliberately loose on values: channels stay free text and offsets
// unbounded, because repairing those is the normalizer's job — the schema
// only guarantees the response is a sequence of step-shaped objects.
const draftSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["step", "channel", "dayOffset"],
		"properties": {
			"step":      {"type": "integer"},
			"channel":   {"type": "string"},
			"dayOffset": {"type": "integer"},
			"template":  {"type": "string"},
			"rationale": {"type": "string"}
		}
	}
}`

var compiledDraftSchema = gojsonschema.NewStringLoader(draftSchema)

// ParseDrafts extracts and decodes the JSON step sequence from the model's
// raw text. Tolerates a fenced code block or surrounding prose, but the
// payload itself must validate against draftSchema.
func ParseDrafts(raw string) ([]models.CadenceStepDraft, error) {
	payload, err := extractJSONArray(raw)
	if err != nil {
		return nil, err
	}

	result, err := gojsonschema.Validate(compiledDraftSchema, gojsonschema.NewStringLoader(payload))
	if err != nil {
		return nil, fmt.Errorf("planner output is not valid JSON: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, fmt.Errorf("planner output failed schema validation: %s", strings.Join(msgs, "; "))
	}

	var drafts []models.CadenceStepDraft
	if err := json.Unmarshal([]byte(payload), &drafts); err != nil {
		return nil, fmt.Errorf("failed to decode planner output: %w", err)
	}

	return drafts, nil
}

// extractJSONArray pulls the JSON array out of raw model text, stripping a
// markdown fence if present.
func extractJSONArray(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", fmt.Errorf("planner returned no text")
	}

	if idx := strings.Index(text, "```"); idx >= 0 {
		text = text[idx+3:]
		text = strings.TrimPrefix(text, "json")
		if end := strings.Index(text, "```"); end >= 0 {
			text = text[:end]
		}
		text = strings.TrimSpace(text)
	}

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end < start {
		return "", fmt.Errorf("no JSON array found in planner output")
	}

	return text[start : end+1], nil
}
