// Package errors provides standardized error handling for the cadence
// engine and its BPMN workflow integration.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Configuration errors (fatal, 5xx-equivalent).
	ErrCodeConfigurationMissing ErrorCode = "CONFIGURATION_MISSING"

	// Client request errors (4xx-equivalent, never retried).
	ErrCodeInvalidRequest      ErrorCode = "INVALID_REQUEST"
	ErrCodeLeadNotFound        ErrorCode = "LEAD_NOT_FOUND"
	ErrCodeNoAvailableChannels ErrorCode = "NO_AVAILABLE_CHANNELS"
	ErrCodeEmptyCadence        ErrorCode = "EMPTY_CADENCE"

	// Pipeline errors (5xx-equivalent).
	ErrCodePlannerFailed     ErrorCode = "PLANNER_FAILED"
	ErrCodePersistenceFailed ErrorCode = "PERSISTENCE_FAILED"
	ErrCodeGenerationFailed  ErrorCode = "CADENCE_GENERATION_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// IsClientError reports whether the error is the caller's fault
// (4xx-equivalent): bad input, unknown lead, or a lead with nothing to
// contact. Client errors must never be retried by the workflow.
func IsClientError(err error) bool {
	stdErr, ok := err.(*StandardError)
	if !ok {
		return false
	}
	switch stdErr.Code {
	case ErrCodeInvalidRequest, ErrCodeLeadNotFound, ErrCodeNoAvailableChannels, ErrCodeEmptyCadence:
		return true
	}
	return false
}

// CodeOf extracts the taxonomy code, or CADENCE_GENERATION_FAILED for
// foreign errors.
func CodeOf(err error) ErrorCode {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr.Code
	}
	return ErrCodeGenerationFailed
}

func newStandardError(code ErrorCode, message, details string, retryable bool) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
	}
}

// NewConfigurationMissingError signals absent credentials or endpoints.
// Fatal: the deployment is broken, no retry will help.
func NewConfigurationMissingError(what string) *StandardError {
	return newStandardError(ErrCodeConfigurationMissing,
		fmt.Sprintf("required configuration missing: %s", what), "", false)
}

// NewInvalidRequestError signals malformed or incomplete caller input.
func NewInvalidRequestError(details string) *StandardError {
	return newStandardError(ErrCodeInvalidRequest, "invalid request", details, false)
}

// NewLeadNotFoundError signals that no lead exists for the given identifier.
func NewLeadNotFoundError(leadID string) *StandardError {
	return newStandardError(ErrCodeLeadNotFound,
		fmt.Sprintf("lead %s not found", leadID), "", false)
}

// NewNoAvailableChannelsError signals a lead with no usable contact channel.
func NewNoAvailableChannelsError(leadID string) *StandardError {
	return newStandardError(ErrCodeNoAvailableChannels,
		fmt.Sprintf("lead %s has no usable outreach channels", leadID), "", false)
}

// NewEmptyCadenceError signals that the planner produced zero steps.
func NewEmptyCadenceError() *StandardError {
	return newStandardError(ErrCodeEmptyCadence, "planner returned an empty cadence", "", false)
}

// NewPlannerError signals a failed or unparseable generative-planner call.
// The raw planner text is attached for diagnosis.
func NewPlannerError(cause error, rawText string) *StandardError {
	e := newStandardError(ErrCodePlannerFailed, "cadence planner failed", cause.Error(), true)
	if rawText != "" {
		e.Metadata = map[string]interface{}{"rawPlannerText": rawText}
	}
	return e
}

// NewPersistenceError signals a failed cadence write. Nothing partial was
// committed.
func NewPersistenceError(cause error) *StandardError {
	return newStandardError(ErrCodePersistenceFailed, "failed to persist cadence", cause.Error(), true)
}

// GetRetryCount returns how many workflow-level retries a code warrants.
// The engine itself never retries; this only informs the job-fail command.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodePlannerFailed, ErrCodePersistenceFailed:
		return 1
	default:
		return 0
	}
}
