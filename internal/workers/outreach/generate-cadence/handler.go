// internal/workers/outreach/generate-cadence/handler.go
package generatecadence

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"cadence-workers/internal/cadence"
	"cadence-workers/internal/common/errors"
	"cadence-workers/internal/common/logger"
	"cadence-workers/internal/common/metrics"
	"cadence-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "generate-cadence"
)

// LeadFetcher reads one lead by identifier.
type LeadFetcher interface {
	GetLead(ctx context.Context, leadID string) (*models.Lead, error)
}

// CadencePlanner produces untrusted draft steps plus the raw model text.
type CadencePlanner interface {
	Plan(ctx context.Context, lead *models.Lead, bt cadence.BusinessType, available []cadence.Channel) ([]models.CadenceStepDraft, string, error)
}

// CadenceSaver persists the full step set atomically.
type CadenceSaver interface {
	SaveCadence(ctx context.Context, steps []models.CadenceStep) ([]models.CadenceStep, error)
}

// AdvisoryIndexer archives the planner's reasoning for human review.
type AdvisoryIndexer interface {
	IndexDocument(ctx context.Context, index, docID string, doc interface{}) error
}

type Handler struct {
	config     *Config
	leads      LeadFetcher
	planner    CadencePlanner
	cadences   CadenceSaver
	advisories AdvisoryIndexer // optional, best-effort
	logger     logger.Logger
	now        func() time.Time
}

func NewHandler(config *Config, leads LeadFetcher, planner CadencePlanner, cadences CadenceSaver, advisories AdvisoryIndexer, log logger.Logger) *Handler {
	return &Handler{
		config:     config,
		leads:      leads,
		planner:    planner,
		cadences:   cadences,
		advisories: advisories,
		logger:     log.WithFields(map[string]interface{}{"taskType": TaskType}),
		now:        time.Now,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, errors.NewInvalidRequestError("parse input: "+err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	started := h.now()
	output, err := h.execute(ctx, &input)
	if err != nil {
		h.failJob(client, job, err)
		return
	}

	metrics.GenerationDuration.WithLabelValues(output.BusinessType).Observe(h.now().Sub(started).Seconds())
	h.completeJob(client, job, output)
}

// execute runs the full pipeline: fetch lead, detect channels, classify,
// plan, normalize, materialize, persist. Each request is independent; no
// step is retried internally and any failure aborts the whole request with
// nothing committed.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if strings.TrimSpace(input.LeadID) == "" || strings.TrimSpace(input.UserID) == "" {
		return nil, errors.NewInvalidRequestError("leadId and userId are required")
	}

	lead, err := h.leads.GetLead(ctx, input.LeadID)
	if err != nil {
		return nil, err
	}

	availability, err := cadence.DetectChannels(lead)
	if err != nil {
		return nil, err
	}
	// Refuse before any planner or store call.
	if !availability.AnyUsable() {
		return nil, errors.NewNoAvailableChannelsError(input.LeadID)
	}

	businessType := cadence.ClassifyBusinessType(lead.Category)

	drafts, rawPlan, err := h.planner.Plan(ctx, lead, businessType, availability.Usable())
	if err != nil {
		return nil, err
	}

	normalized, warnings := cadence.NormalizeDrafts(drafts, availability)
	for _, w := range warnings {
		h.logger.Warn("plan normalization", map[string]interface{}{
			"leadId":  input.LeadID,
			"warning": w,
		})
	}

	steps := cadence.MaterializeSchedule(input.LeadID, input.UserID, businessType, normalized, h.now().UTC())

	persisted, err := h.cadences.SaveCadence(ctx, steps)
	if err != nil {
		return nil, err
	}

	advisories := make([]models.StepAdvisory, len(normalized))
	for i, d := range normalized {
		advisories[i] = models.StepAdvisory{
			Step:      d.Step,
			Channel:   d.Channel,
			Rationale: d.Rationale,
		}
	}

	h.indexAdvisories(ctx, input, string(businessType), advisories, rawPlan)

	metrics.CadencesGenerated.WithLabelValues(string(businessType)).Inc()
	for _, step := range persisted {
		metrics.StepsScheduled.WithLabelValues(step.Channel).Inc()
	}

	h.logger.Info("cadence generated", map[string]interface{}{
		"leadId":       input.LeadID,
		"businessType": businessType,
		"stepCount":    len(persisted),
	})

	return &Output{
		LeadID:       input.LeadID,
		BusinessType: string(businessType),
		Steps:        persisted,
		Advisories:   advisories,
	}, nil
}

// indexAdvisories archives the planner's reasoning. Best-effort: the
// cadence is already committed, so an indexing failure is logged and
// swallowed.
func (h *Handler) indexAdvisories(ctx context.Context, input *Input, businessType string, advisories []models.StepAdvisory, rawPlan string) {
	if h.advisories == nil {
		return
	}

	doc := advisoryDocument{
		LeadID:       input.LeadID,
		UserID:       input.UserID,
		BusinessType: businessType,
		Advisories:   advisories,
		RawPlan:      rawPlan,
		IndexedAt:    h.now().UTC().Format(time.RFC3339),
	}
	if err := h.advisories.IndexDocument(ctx, h.config.AdvisoryIndex, uuid.NewString(), doc); err != nil {
		h.logger.Warn("advisory indexing failed", map[string]interface{}{
			"leadId": input.LeadID,
			"error":  err.Error(),
		})
	}
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err.Error(),
		})
		return
	}
	if _, err = cmd.Send(context.Background()); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err.Error(),
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, err error) {
	bpmnErr := errors.ConvertToBPMNError(err)
	metrics.CadencesFailed.WithLabelValues(bpmnErr.Code).Inc()

	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":    job.Key,
		"errorCode": bpmnErr.Code,
		"error":     err.Error(),
	})

	_, sendErr := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(bpmnErr.Code).
		ErrorMessage(bpmnErr.Message).
		Send(context.Background())
	if sendErr != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"jobKey": job.Key,
			"error":  sendErr.Error(),
		})
	}
}

// Execute runs the pipeline directly, outside a Zeebe job. Used by tests
// and by callers embedding the engine.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
