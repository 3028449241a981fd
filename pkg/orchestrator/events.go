package orchestrator

import (
	"time"

	"github.com/google/uuid"
)

// EventType names the workflow progress events emitted during execution.
type EventType string

const (
	EventPhaseStarted      EventType = "phase_started"
	EventStepStarted       EventType = "step_started"
	EventStepCompleted     EventType = "step_completed"
	EventStepFailed        EventType = "step_failed"
	EventPhaseCompleted    EventType = "phase_completed"
	EventWorkflowCompleted EventType = "workflow_completed"
	EventWorkflowFailed    EventType = "workflow_failed"
	EventWorkflowCancelled EventType = "workflow_cancelled"
)

// Event is one streamed workflow update.
type Event struct {
	UpdateID   string         `json:"update_id"`
	WorkflowID string         `json:"workflow_id"`
	Type       EventType      `json:"type"`
	Message    string         `json:"message"`
	Data       map[string]any `json:"data,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

// EventSink receives workflow events for forwarding to stream
// subscribers. Implementations must not block.
type EventSink interface {
	Publish(event Event)
}

func newEvent(workflowID string, t EventType, message string, data map[string]any) Event {
	return Event{
		UpdateID:   uuid.NewString(),
		WorkflowID: workflowID,
		Type:       t,
		Message:    message,
		Data:       data,
		Timestamp:  time.Now(),
	}
}
