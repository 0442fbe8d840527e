package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sequenceColumns = `id, organization_id, name, status, trigger_type, trigger_value,
    min_score, max_score, eligible_sources, exit_on_conversion, exit_on_unsubscribe, max_days,
    created_at, updated_at`

const stepColumns = `id, organization_id, sequence_id, position, name, delay_days, delay_hours,
    send_time, action_type, payload, condition, created_at`

// CreateNurtureSequenceParams represents parameters for creating a sequence
type CreateNurtureSequenceParams struct {
	OrganizationID    uuid.UUID
	Name              string
	TriggerType       string
	TriggerValue      *string
	MinScore          *int
	MaxScore          *int
	EligibleSources   StringArray
	ExitOnConversion  bool
	ExitOnUnsubscribe bool
	MaxDays           int
}

const sqlCreateNurtureSequence = `
INSERT INTO nurture_sequences (organization_id, name, status, trigger_type, trigger_value,
    min_score, max_score, eligible_sources, exit_on_conversion, exit_on_unsubscribe, max_days)
VALUES ($1, $2, 'draft', $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + sequenceColumns

// CreateNurtureSequence creates a new sequence in draft status
func (s *Store) CreateNurtureSequence(ctx context.Context, params CreateNurtureSequenceParams) (NurtureSequence, error) {
	var sequence NurtureSequence
	err := s.db.GetContext(ctx, &sequence, sqlCreateNurtureSequence,
		params.OrganizationID,
		params.Name,
		params.TriggerType,
		params.TriggerValue,
		params.MinScore,
		params.MaxScore,
		params.EligibleSources,
		params.ExitOnConversion,
		params.ExitOnUnsubscribe,
		params.MaxDays)
	if err != nil {
		s.logger.Error(ctx, "failed to create nurture sequence", err)
		return NurtureSequence{}, fmt.Errorf("failed to create nurture sequence: %w", err)
	}
	return sequence, nil
}

const sqlGetNurtureSequenceByID = `
SELECT ` + sequenceColumns + `
FROM nurture_sequences
WHERE id = $1 AND organization_id = $2
`

// GetNurtureSequenceByID retrieves a sequence scoped to an organization
func (s *Store) GetNurtureSequenceByID(ctx context.Context, orgID, sequenceID uuid.UUID) (NurtureSequence, error) {
	var sequence NurtureSequence
	err := s.db.GetContext(ctx, &sequence, sqlGetNurtureSequenceByID, sequenceID, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NurtureSequence{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get nurture sequence", err)
		return NurtureSequence{}, fmt.Errorf("failed to get nurture sequence: %w", err)
	}
	return sequence, nil
}

const sqlListNurtureSequences = `
SELECT ` + sequenceColumns + `
FROM nurture_sequences
WHERE organization_id = $1
ORDER BY created_at DESC
`

// ListNurtureSequences retrieves all sequences for an organization
func (s *Store) ListNurtureSequences(ctx context.Context, orgID uuid.UUID) ([]NurtureSequence, error) {
	var sequences []NurtureSequence
	err := s.db.SelectContext(ctx, &sequences, sqlListNurtureSequences, orgID)
	if err != nil {
		s.logger.Error(ctx, "failed to list nurture sequences", err)
		return nil, fmt.Errorf("failed to list nurture sequences: %w", err)
	}
	return sequences, nil
}

const sqlUpdateSequenceStatus = `
UPDATE nurture_sequences
SET status = $3,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND organization_id = $2 AND status = $4
`

// UpdateSequenceStatusIf transitions a sequence from an expected status to a
// new one. ErrConflict when the sequence is not in the expected status, which
// keeps activation idempotent under concurrent calls.
func (s *Store) UpdateSequenceStatusIf(ctx context.Context, orgID, sequenceID uuid.UUID, newStatus, expectedStatus string) error {
	res, err := s.db.ExecContext(ctx, sqlUpdateSequenceStatus, sequenceID, orgID, newStatus, expectedStatus)
	if err != nil {
		s.logger.Error(ctx, "failed to update sequence status", err)
		return fmt.Errorf("failed to update sequence status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		s.logger.Error(ctx, "failed to get rows affected", err)
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return ErrConflict
	}

	return nil
}

// CreateNurtureStepParams represents parameters for adding a step
type CreateNurtureStepParams struct {
	OrganizationID uuid.UUID
	SequenceID     uuid.UUID
	Position       int
	Name           string
	DelayDays      int
	DelayHours     int
	SendTime       *string
	ActionType     string
	Payload        JSONB
	Condition      JSONB
}

const sqlCreateNurtureStep = `
INSERT INTO nurture_steps (organization_id, sequence_id, position, name, delay_days, delay_hours,
    send_time, action_type, payload, condition)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + stepColumns

// CreateNurtureStep appends a step to a sequence
func (s *Store) CreateNurtureStep(ctx context.Context, params CreateNurtureStepParams) (NurtureStep, error) {
	var step NurtureStep
	err := s.db.GetContext(ctx, &step, sqlCreateNurtureStep,
		params.OrganizationID,
		params.SequenceID,
		params.Position,
		params.Name,
		params.DelayDays,
		params.DelayHours,
		params.SendTime,
		params.ActionType,
		params.Payload,
		params.Condition)
	if err != nil {
		s.logger.Error(ctx, "failed to create nurture step", err)
		return NurtureStep{}, fmt.Errorf("failed to create nurture step: %w", err)
	}
	return step, nil
}

const sqlGetStepsBySequence = `
SELECT ` + stepColumns + `
FROM nurture_steps
WHERE organization_id = $1 AND sequence_id = $2
ORDER BY (delay_days * 24 + delay_hours) ASC, position ASC
`

// GetStepsBySequence retrieves a sequence's steps ordered by cumulative offset
// then declaration order
func (s *Store) GetStepsBySequence(ctx context.Context, orgID, sequenceID uuid.UUID) ([]NurtureStep, error) {
	var steps []NurtureStep
	err := s.db.SelectContext(ctx, &steps, sqlGetStepsBySequence, orgID, sequenceID)
	if err != nil {
		s.logger.Error(ctx, "failed to get steps by sequence", err)
		return nil, fmt.Errorf("failed to get steps by sequence: %w", err)
	}
	return steps, nil
}

const sqlCountStepsBySequence = `
SELECT COUNT(*)
FROM nurture_steps
WHERE organization_id = $1 AND sequence_id = $2
`

// CountStepsBySequence counts the steps in a sequence
func (s *Store) CountStepsBySequence(ctx context.Context, orgID, sequenceID uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountStepsBySequence, orgID, sequenceID)
	if err != nil {
		s.logger.Error(ctx, "failed to count steps by sequence", err)
		return 0, fmt.Errorf("failed to count steps by sequence: %w", err)
	}
	return count, nil
}

// CreateStepExecutionParams represents parameters for recording a step firing
type CreateStepExecutionParams struct {
	OrganizationID uuid.UUID
	LeadID         uuid.UUID
	SequenceID     uuid.UUID
	StepID         uuid.UUID
	Skipped        bool
}

const sqlCreateStepExecution = `
INSERT INTO step_executions (organization_id, lead_id, sequence_id, step_id, skipped)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, organization_id, lead_id, sequence_id, step_id, skipped, executed_at
`

// CreateStepExecution records that a step fired or was skipped for a lead.
// The (lead_id, step_id) unique constraint rejects duplicate firings with
// ErrConflict, so concurrent drivers race safely.
func (s *Store) CreateStepExecution(ctx context.Context, params CreateStepExecutionParams) (StepExecution, error) {
	var execution StepExecution
	err := s.db.GetContext(ctx, &execution, sqlCreateStepExecution,
		params.OrganizationID,
		params.LeadID,
		params.SequenceID,
		params.StepID,
		params.Skipped)
	if err != nil {
		if isUniqueViolation(err) {
			return StepExecution{}, ErrConflict
		}
		s.logger.Error(ctx, "failed to create step execution", err)
		return StepExecution{}, fmt.Errorf("failed to create step execution: %w", err)
	}
	return execution, nil
}

const sqlGetStepExecutions = `
SELECT id, organization_id, lead_id, sequence_id, step_id, skipped, executed_at
FROM step_executions
WHERE organization_id = $1 AND lead_id = $2 AND sequence_id = $3
`

// GetStepExecutions retrieves the executions recorded for a lead in a sequence
func (s *Store) GetStepExecutions(ctx context.Context, orgID, leadID, sequenceID uuid.UUID) ([]StepExecution, error) {
	var executions []StepExecution
	err := s.db.SelectContext(ctx, &executions, sqlGetStepExecutions, orgID, leadID, sequenceID)
	if err != nil {
		s.logger.Error(ctx, "failed to get step executions", err)
		return nil, fmt.Errorf("failed to get step executions: %w", err)
	}
	return executions, nil
}
