// Package services holds the persistence services bridging the runtime's
// domain types to the ent-backed database.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/devex-platform/crewd/ent"
	"github.com/devex-platform/crewd/ent/agentexecution"
	"github.com/devex-platform/crewd/ent/agentstate"
	"github.com/devex-platform/crewd/ent/promptversion"
	"github.com/devex-platform/crewd/ent/workflow"
	"github.com/devex-platform/crewd/pkg/evolution"
	"github.com/devex-platform/crewd/pkg/models"
	"github.com/devex-platform/crewd/pkg/orchestrator"
)

// StoreService persists agent states, workflows, execution audit rows,
// and prompt versions. It implements the store surfaces the lifecycle
// manager and the orchestrator write through.
type StoreService struct {
	client *ent.Client
}

// NewStoreService creates a new StoreService
func NewStoreService(client *ent.Client) *StoreService {
	return &StoreService{client: client}
}

// UpsertAgentState writes the full agent state row, creating it on first
// save.
func (s *StoreService) UpsertAgentState(ctx context.Context, state models.AgentState) error {
	if state.AgentID == "" {
		return NewValidationError("agent_id", "required")
	}

	checkpoints, err := toJSONMaps(state.Checkpoints)
	if err != nil {
		return fmt.Errorf("failed to encode checkpoints: %w", err)
	}
	active := state.Lifecycle != models.StateTerminated

	err = s.client.AgentState.UpdateOneID(state.AgentID).
		SetLifecycle(agentstate.Lifecycle(state.Lifecycle)).
		SetExecutionCount(state.Counters.ExecutionCount).
		SetErrorCount(state.Counters.ErrorCount).
		SetContextSnapshot(state.ContextSnapshot).
		SetDependencies(state.Dependencies).
		SetCheckpoints(checkpoints).
		SetIsActive(active).
		SetLastUpdated(state.Counters.LastUpdated).
		Exec(ctx)
	if err == nil {
		return nil
	}
	if !ent.IsNotFound(err) {
		return fmt.Errorf("failed to update agent state %s: %w", state.AgentID, err)
	}

	createdAt := state.Counters.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	err = s.client.AgentState.Create().
		SetID(state.AgentID).
		SetTemplateID(state.TemplateID).
		SetKind(agentstate.Kind(state.Kind)).
		SetLifecycle(agentstate.Lifecycle(state.Lifecycle)).
		SetExecutionCount(state.Counters.ExecutionCount).
		SetErrorCount(state.Counters.ErrorCount).
		SetContextSnapshot(state.ContextSnapshot).
		SetDependencies(state.Dependencies).
		SetCheckpoints(checkpoints).
		SetIsActive(active).
		SetCreatedAt(createdAt).
		SetLastUpdated(state.Counters.LastUpdated).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create agent state %s: %w", state.AgentID, err)
	}
	return nil
}

// LoadAgentState reads one agent state row.
func (s *StoreService) LoadAgentState(ctx context.Context, agentID string) (*models.AgentState, error) {
	row, err := s.client.AgentState.Query().
		Where(agentstate.IDEQ(agentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load agent state %s: %w", agentID, err)
	}

	var checkpoints []models.Checkpoint
	if err := fromJSONMaps(row.Checkpoints, &checkpoints); err != nil {
		return nil, fmt.Errorf("failed to decode checkpoints for %s: %w", agentID, err)
	}

	return &models.AgentState{
		AgentID:    row.ID,
		TemplateID: row.TemplateID,
		Kind:       models.AgentKind(row.Kind),
		Lifecycle:  models.LifecycleState(row.Lifecycle),
		Counters: models.StatusCounters{
			ExecutionCount: row.ExecutionCount,
			ErrorCount:     row.ErrorCount,
			LastUpdated:    row.LastUpdated,
			CreatedAt:      row.CreatedAt,
		},
		ContextSnapshot: row.ContextSnapshot,
		Dependencies:    row.Dependencies,
		Checkpoints:     checkpoints,
	}, nil
}

// ListActiveAgents returns every non-terminated agent state.
func (s *StoreService) ListActiveAgents(ctx context.Context) ([]models.AgentState, error) {
	rows, err := s.client.AgentState.Query().
		Where(agentstate.IsActive(true)).
		Order(ent.Asc(agentstate.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active agents: %w", err)
	}
	out := make([]models.AgentState, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.AgentState{
			AgentID:    row.ID,
			TemplateID: row.TemplateID,
			Kind:       models.AgentKind(row.Kind),
			Lifecycle:  models.LifecycleState(row.Lifecycle),
			Counters: models.StatusCounters{
				ExecutionCount: row.ExecutionCount,
				ErrorCount:     row.ErrorCount,
				LastUpdated:    row.LastUpdated,
				CreatedAt:      row.CreatedAt,
			},
			Dependencies: row.Dependencies,
		})
	}
	return out, nil
}

// UpsertWorkflow rewrites the denormalized workflow row.
func (s *StoreService) UpsertWorkflow(ctx context.Context, wf models.Workflow) error {
	if wf.WorkflowID == "" {
		return NewValidationError("workflow_id", "required")
	}

	phases, err := toJSONMaps(wf.Phases)
	if err != nil {
		return fmt.Errorf("failed to encode phases: %w", err)
	}
	options, err := toJSONMap(wf.Options)
	if err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}

	err = s.client.Workflow.UpdateOneID(wf.WorkflowID).
		SetStatus(workflow.Status(wf.Status)).
		SetPhases(phases).
		SetSharedContext(wf.SharedContext).
		SetOptions(options).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err == nil {
		return nil
	}
	if !ent.IsNotFound(err) {
		return fmt.Errorf("failed to update workflow %s: %w", wf.WorkflowID, err)
	}

	err = s.client.Workflow.Create().
		SetID(wf.WorkflowID).
		SetName(wf.Name).
		SetDescription(wf.Description).
		SetProjectType(string(wf.ProjectType)).
		SetOwnerUserID(wf.OwnerUserID).
		SetSessionID(wf.SessionID).
		SetStatus(workflow.Status(wf.Status)).
		SetPhases(phases).
		SetSharedContext(wf.SharedContext).
		SetOptions(options).
		SetCreatedAt(wf.CreatedAt).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create workflow %s: %w", wf.WorkflowID, err)
	}
	return nil
}

// LoadWorkflow reads one workflow row back into the domain shape.
func (s *StoreService) LoadWorkflow(ctx context.Context, workflowID string) (*models.Workflow, error) {
	row, err := s.client.Workflow.Query().
		Where(workflow.IDEQ(workflowID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load workflow %s: %w", workflowID, err)
	}
	return decodeWorkflow(row)
}

// ListWorkflows returns workflows for one owner (or all owners when
// userID is empty), newest first.
func (s *StoreService) ListWorkflows(ctx context.Context, userID string, limit int) ([]models.Workflow, error) {
	query := s.client.Workflow.Query()
	if userID != "" {
		query = query.Where(workflow.OwnerUserIDEQ(userID))
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	rows, err := query.Order(ent.Desc(workflow.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflows: %w", err)
	}
	out := make([]models.Workflow, 0, len(rows))
	for _, row := range rows {
		wf, derr := decodeWorkflow(row)
		if derr != nil {
			return nil, derr
		}
		out = append(out, *wf)
	}
	return out, nil
}

func decodeWorkflow(row *ent.Workflow) (*models.Workflow, error) {
	var phases []models.Phase
	if err := fromJSONMaps(row.Phases, &phases); err != nil {
		return nil, fmt.Errorf("failed to decode phases for %s: %w", row.ID, err)
	}
	var options models.WorkflowOptions
	if row.Options != nil {
		if err := fromJSONMap(row.Options, &options); err != nil {
			return nil, fmt.Errorf("failed to decode options for %s: %w", row.ID, err)
		}
	}
	return &models.Workflow{
		WorkflowID:    row.ID,
		Name:          row.Name,
		Description:   row.Description,
		ProjectType:   models.ProjectType(row.ProjectType),
		OwnerUserID:   row.OwnerUserID,
		SessionID:     row.SessionID,
		CreatedAt:     row.CreatedAt,
		Phases:        phases,
		Status:        models.WorkflowStatus(row.Status),
		Options:       options,
		SharedContext: row.SharedContext,
	}, nil
}

// AppendAgentExecution writes one audit row.
func (s *StoreService) AppendAgentExecution(ctx context.Context, row orchestrator.ExecutionRow) error {
	if row.ExecutionID == "" {
		return NewValidationError("execution_id", "required")
	}
	if row.AgentID == "" {
		return NewValidationError("agent_id", "required")
	}

	builder := s.client.AgentExecution.Create().
		SetID(row.ExecutionID).
		SetAgentID(row.AgentID).
		SetSessionID(row.SessionID).
		SetWorkflowID(row.WorkflowID).
		SetInput(row.Input).
		SetOutput(row.Output).
		SetStatus(agentExecutionStatus(row.Status)).
		SetTokensUsed(row.TokensUsed).
		SetStartedAt(row.StartedAt).
		SetNillableCompletedAt(row.CompletedAt).
		SetMetadata(row.Metadata)
	if row.Error != "" {
		builder.SetErrorMessage(row.Error)
	}
	if err := builder.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to append execution %s: %w", row.ExecutionID, err)
	}
	return nil
}

// SavePromptVersion mirrors an in-memory prompt version to the database.
func (s *StoreService) SavePromptVersion(ctx context.Context, v evolution.PromptVersion) error {
	if v.VersionID == "" {
		return NewValidationError("version_id", "required")
	}

	err := s.client.PromptVersion.UpdateOneID(v.VersionID).
		SetUsageCount(v.UsageCount).
		SetSuccessRate(v.SuccessRate).
		SetAvgTime(v.AvgTime).
		SetPerformanceScore(v.PerformanceScore).
		Exec(ctx)
	if err == nil {
		return nil
	}
	if !ent.IsNotFound(err) {
		return fmt.Errorf("failed to update prompt version %s: %w", v.VersionID, err)
	}

	err = s.client.PromptVersion.Create().
		SetID(v.VersionID).
		SetAgentID(v.AgentID).
		SetTemplateText(v.TemplateText).
		SetUsageCount(v.UsageCount).
		SetSuccessRate(v.SuccessRate).
		SetAvgTime(v.AvgTime).
		SetPerformanceScore(v.PerformanceScore).
		SetCreatedAt(v.CreatedAt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create prompt version %s: %w", v.VersionID, err)
	}
	return nil
}

// ListPromptVersions returns an agent's persisted prompt history, oldest
// first.
func (s *StoreService) ListPromptVersions(ctx context.Context, agentID string) ([]evolution.PromptVersion, error) {
	rows, err := s.client.PromptVersion.Query().
		Where(promptversion.AgentIDEQ(agentID)).
		Order(ent.Asc(promptversion.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list prompt versions for %s: %w", agentID, err)
	}
	out := make([]evolution.PromptVersion, 0, len(rows))
	for _, row := range rows {
		out = append(out, evolution.PromptVersion{
			VersionID:        row.ID,
			AgentID:          row.AgentID,
			TemplateText:     row.TemplateText,
			UsageCount:       row.UsageCount,
			SuccessRate:      row.SuccessRate,
			AvgTime:          row.AvgTime,
			PerformanceScore: row.PerformanceScore,
			CreatedAt:        row.CreatedAt,
		})
	}
	return out, nil
}

// PurgeOldWorkflows deletes terminal workflows created before cutoff.
// Active workflows are never touched regardless of age.
func (s *StoreService) PurgeOldWorkflows(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Workflow.Delete().
		Where(
			workflow.StatusIn(
				workflow.Status(models.WorkflowCompleted),
				workflow.Status(models.WorkflowFailed),
				workflow.Status(models.WorkflowCancelled),
			),
			workflow.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge workflows: %w", err)
	}
	return n, nil
}

// PurgeOldExecutions deletes execution audit rows started before cutoff.
func (s *StoreService) PurgeOldExecutions(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.AgentExecution.Delete().
		Where(agentexecution.StartedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge executions: %w", err)
	}
	return n, nil
}

// PurgeTerminatedAgents deletes agent state rows that were terminated
// before cutoff.
func (s *StoreService) PurgeTerminatedAgents(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.AgentState.Delete().
		Where(
			agentstate.IsActive(false),
			agentstate.LastUpdatedLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge terminated agents: %w", err)
	}
	return n, nil
}

func agentExecutionStatus(s string) agentexecution.Status {
	switch s {
	case "failed":
		return agentexecution.StatusFailed
	case "cancelled":
		return agentexecution.StatusCancelled
	case "timed_out":
		return agentexecution.StatusTimedOut
	default:
		return agentexecution.StatusCompleted
	}
}

// JSON roundtrip helpers for the denormalized columns.

func toJSONMaps(v any) ([]map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func fromJSONMaps(in []map[string]any, out any) error {
	if in == nil {
		return nil
	}
	raw, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func toJSONMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func fromJSONMap(in map[string]any, out any) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
