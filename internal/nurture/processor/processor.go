package processor

import (
	"context"
	"errors"
	"fmt"
	"growth-server/internal/observability"
	"growth-server/internal/store"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSequenceNotFound   = errors.New("nurture sequence not found")
	ErrLeadNotFound       = errors.New("lead not found")
	ErrSequenceNotDraft   = errors.New("sequence can only be edited in draft status")
	ErrSequenceNotActive  = errors.New("sequence is not active")
	ErrSequenceHasNoSteps = errors.New("sequence has no steps")
	ErrInvalidStatusMove  = errors.New("sequence status transition is not allowed")
	ErrAlreadyEnrolled    = errors.New("lead is already enrolled in a sequence")
	ErrLeadNotEligible    = errors.New("lead does not meet the sequence eligibility rules")
	ErrInvalidTrigger     = errors.New("invalid sequence trigger type")
	ErrInvalidAction      = errors.New("invalid step action type")
	ErrInvalidDelay       = errors.New("step delay must not be negative")
	ErrInvalidScoreRange  = errors.New("min score must not exceed max score")
)

// Exit reasons recorded when a lead leaves a sequence
const (
	ExitReasonConverted    = "converted"
	ExitReasonUnsubscribed = "unsubscribed"
	ExitReasonMaxDays      = "max_days"
	ExitReasonCompleted    = "completed"
)

type NurtureProcessor struct {
	store     Store
	messenger Messenger
	auditor   Auditor
	logger    *observability.Logger
}

func New(store Store, messenger Messenger, auditor Auditor, logger *observability.Logger) NurtureProcessor {
	return NurtureProcessor{
		store:     store,
		messenger: messenger,
		auditor:   auditor,
		logger:    logger,
	}
}

// CreateSequenceRequest represents a request to create a sequence
type CreateSequenceRequest struct {
	Name              string
	TriggerType       string
	TriggerValue      *string
	MinScore          *int
	MaxScore          *int
	EligibleSources   []string
	ExitOnConversion  bool
	ExitOnUnsubscribe bool
	MaxDays           int
}

// CreateSequence creates a sequence in draft status
func (p *NurtureProcessor) CreateSequence(ctx context.Context, orgID uuid.UUID, req CreateSequenceRequest) (store.NurtureSequence, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: orgID.String()},
		observability.Field{Key: "sequence_name", Value: req.Name},
	)

	if !isValidTriggerType(req.TriggerType) {
		return store.NurtureSequence{}, ErrInvalidTrigger
	}
	if req.MinScore != nil && req.MaxScore != nil && *req.MinScore > *req.MaxScore {
		return store.NurtureSequence{}, ErrInvalidScoreRange
	}
	if req.MaxDays <= 0 {
		req.MaxDays = 30
	}

	sequence, err := p.store.CreateNurtureSequence(ctx, store.CreateNurtureSequenceParams{
		OrganizationID:    orgID,
		Name:              req.Name,
		TriggerType:       req.TriggerType,
		TriggerValue:      req.TriggerValue,
		MinScore:          req.MinScore,
		MaxScore:          req.MaxScore,
		EligibleSources:   req.EligibleSources,
		ExitOnConversion:  req.ExitOnConversion,
		ExitOnUnsubscribe: req.ExitOnUnsubscribe,
		MaxDays:           req.MaxDays,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create nurture sequence", err)
		return store.NurtureSequence{}, err
	}

	p.auditor.Record(ctx, orgID, "sequence.created", "nurture_sequence", sequence.ID, nil, store.JSONB{"name": sequence.Name})
	p.logger.Info(ctx, "nurture sequence created")
	return sequence, nil
}

// AddStepRequest represents a request to append a step to a draft sequence
type AddStepRequest struct {
	Name       string
	DelayDays  int
	DelayHours int
	SendTime   *string
	ActionType string
	Payload    store.JSONB
	Condition  store.JSONB
}

// AddStep appends a step to a draft sequence
func (p *NurtureProcessor) AddStep(ctx context.Context, orgID, sequenceID uuid.UUID, req AddStepRequest) (store.NurtureStep, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: orgID.String()},
		observability.Field{Key: "sequence_id", Value: sequenceID.String()},
	)

	if !isValidActionType(req.ActionType) {
		return store.NurtureStep{}, ErrInvalidAction
	}
	if req.DelayDays < 0 || req.DelayHours < 0 {
		return store.NurtureStep{}, ErrInvalidDelay
	}
	if req.SendTime != nil {
		if _, err := time.Parse("15:04", *req.SendTime); err != nil {
			return store.NurtureStep{}, fmt.Errorf("invalid send time %q: %w", *req.SendTime, err)
		}
	}

	sequence, err := p.store.GetNurtureSequenceByID(ctx, orgID, sequenceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.NurtureStep{}, ErrSequenceNotFound
		}
		p.logger.Error(ctx, "failed to get nurture sequence", err)
		return store.NurtureStep{}, err
	}

	if sequence.Status != store.SequenceStatusDraft {
		return store.NurtureStep{}, ErrSequenceNotDraft
	}

	count, err := p.store.CountStepsBySequence(ctx, orgID, sequenceID)
	if err != nil {
		p.logger.Error(ctx, "failed to count sequence steps", err)
		return store.NurtureStep{}, err
	}

	step, err := p.store.CreateNurtureStep(ctx, store.CreateNurtureStepParams{
		OrganizationID: orgID,
		SequenceID:     sequenceID,
		Position:       count + 1,
		Name:           req.Name,
		DelayDays:      req.DelayDays,
		DelayHours:     req.DelayHours,
		SendTime:       req.SendTime,
		ActionType:     req.ActionType,
		Payload:        req.Payload,
		Condition:      req.Condition,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create nurture step", err)
		return store.NurtureStep{}, err
	}
	return step, nil
}

// ActivateSequence moves a draft sequence with at least one step to active
func (p *NurtureProcessor) ActivateSequence(ctx context.Context, orgID, sequenceID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: orgID.String()},
		observability.Field{Key: "sequence_id", Value: sequenceID.String()},
	)

	if _, err := p.store.GetNurtureSequenceByID(ctx, orgID, sequenceID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSequenceNotFound
		}
		p.logger.Error(ctx, "failed to get nurture sequence", err)
		return err
	}

	count, err := p.store.CountStepsBySequence(ctx, orgID, sequenceID)
	if err != nil {
		p.logger.Error(ctx, "failed to count sequence steps", err)
		return err
	}
	if count == 0 {
		return ErrSequenceHasNoSteps
	}

	err = p.store.UpdateSequenceStatusIf(ctx, orgID, sequenceID, store.SequenceStatusActive, store.SequenceStatusDraft)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return ErrInvalidStatusMove
		}
		p.logger.Error(ctx, "failed to activate sequence", err)
		return err
	}

	p.auditor.Record(ctx, orgID, "sequence.activated", "nurture_sequence", sequenceID, nil, nil)
	p.logger.Info(ctx, "nurture sequence activated")
	return nil
}

// PauseSequence moves an active sequence to paused. Enrolled leads stay
// enrolled; the driver simply stops advancing them.
func (p *NurtureProcessor) PauseSequence(ctx context.Context, orgID, sequenceID uuid.UUID) error {
	err := p.store.UpdateSequenceStatusIf(ctx, orgID, sequenceID, store.SequenceStatusPaused, store.SequenceStatusActive)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return ErrInvalidStatusMove
		}
		p.logger.Error(ctx, "failed to pause sequence", err)
		return err
	}

	p.auditor.Record(ctx, orgID, "sequence.paused", "nurture_sequence", sequenceID, nil, nil)
	return nil
}

// ResumeSequence moves a paused sequence back to active
func (p *NurtureProcessor) ResumeSequence(ctx context.Context, orgID, sequenceID uuid.UUID) error {
	err := p.store.UpdateSequenceStatusIf(ctx, orgID, sequenceID, store.SequenceStatusActive, store.SequenceStatusPaused)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return ErrInvalidStatusMove
		}
		p.logger.Error(ctx, "failed to resume sequence", err)
		return err
	}

	p.auditor.Record(ctx, orgID, "sequence.resumed", "nurture_sequence", sequenceID, nil, nil)
	return nil
}

// GetSequence retrieves a sequence with its steps loaded
func (p *NurtureProcessor) GetSequence(ctx context.Context, orgID, sequenceID uuid.UUID) (store.NurtureSequence, error) {
	sequence, err := p.store.GetNurtureSequenceByID(ctx, orgID, sequenceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.NurtureSequence{}, ErrSequenceNotFound
		}
		p.logger.Error(ctx, "failed to get nurture sequence", err)
		return store.NurtureSequence{}, err
	}

	steps, err := p.store.GetStepsBySequence(ctx, orgID, sequenceID)
	if err != nil {
		p.logger.Error(ctx, "failed to get sequence steps", err)
		return store.NurtureSequence{}, err
	}
	sequence.Steps = steps
	return sequence, nil
}

// ListSequences retrieves all sequences for an organization
func (p *NurtureProcessor) ListSequences(ctx context.Context, orgID uuid.UUID) ([]store.NurtureSequence, error) {
	sequences, err := p.store.ListNurtureSequences(ctx, orgID)
	if err != nil {
		p.logger.Error(ctx, "failed to list nurture sequences", err)
		return nil, err
	}
	if sequences == nil {
		sequences = []store.NurtureSequence{}
	}
	return sequences, nil
}

// EnrollLead attaches an eligible lead to an active sequence
func (p *NurtureProcessor) EnrollLead(ctx context.Context, orgID, leadID, sequenceID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: orgID.String()},
		observability.Field{Key: "lead_id", Value: leadID.String()},
		observability.Field{Key: "sequence_id", Value: sequenceID.String()},
	)

	sequence, err := p.store.GetNurtureSequenceByID(ctx, orgID, sequenceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSequenceNotFound
		}
		p.logger.Error(ctx, "failed to get nurture sequence", err)
		return err
	}
	if sequence.Status != store.SequenceStatusActive {
		return ErrSequenceNotActive
	}

	lead, err := p.store.GetLeadByID(ctx, orgID, leadID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrLeadNotFound
		}
		p.logger.Error(ctx, "failed to get lead", err)
		return err
	}

	if lead.CurrentSequenceID != nil {
		return ErrAlreadyEnrolled
	}
	if !leadIsEligible(lead, sequence) {
		return ErrLeadNotEligible
	}

	if err := p.store.EnrollLead(ctx, orgID, leadID, sequenceID, time.Now().UTC()); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return ErrAlreadyEnrolled
		}
		p.logger.Error(ctx, "failed to enroll lead", err)
		return err
	}

	p.recordSequenceEvent(ctx, orgID, leadID, fmt.Sprintf("enrolled in sequence %s", sequence.Name))
	p.auditor.Record(ctx, orgID, "lead.enrolled", "nurture_sequence", sequenceID, nil,
		store.JSONB{"lead_id": leadID.String()})
	p.logger.Info(ctx, "lead enrolled in nurture sequence")
	return nil
}

// AdvanceResult reports what a single advance pass did for a lead
type AdvanceResult struct {
	Executed       bool       `json:"executed"`
	ExecutedStepID *uuid.UUID `json:"executed_step_id,omitempty"`
	SkippedSteps   int        `json:"skipped_steps"`
	Exited         bool       `json:"exited"`
	ExitReason     string     `json:"exit_reason,omitempty"`
}

// AdvanceLead advances an enrolled lead through its sequence at the given
// time. Exit checks run before any step fires; then steps are walked in
// cumulative-offset order with position breaking ties. At most one live step
// executes per call; the periodic driver re-invokes until the lead exits.
func (p *NurtureProcessor) AdvanceLead(ctx context.Context, orgID, leadID uuid.UUID, now time.Time) (AdvanceResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: orgID.String()},
		observability.Field{Key: "lead_id", Value: leadID.String()},
	)

	lead, err := p.store.GetLeadByID(ctx, orgID, leadID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AdvanceResult{}, ErrLeadNotFound
		}
		p.logger.Error(ctx, "failed to get lead", err)
		return AdvanceResult{}, err
	}

	if lead.CurrentSequenceID == nil || lead.EnrolledAt == nil {
		return AdvanceResult{}, nil
	}
	sequenceID := *lead.CurrentSequenceID
	enrolledAt := *lead.EnrolledAt

	sequence, err := p.store.GetNurtureSequenceByID(ctx, orgID, sequenceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AdvanceResult{}, ErrSequenceNotFound
		}
		p.logger.Error(ctx, "failed to get nurture sequence", err)
		return AdvanceResult{}, err
	}

	if reason := exitReason(lead, sequence, enrolledAt, now); reason != "" {
		if err := p.exitSequence(ctx, orgID, leadID, sequenceID, reason); err != nil {
			return AdvanceResult{}, err
		}
		return AdvanceResult{Exited: true, ExitReason: reason}, nil
	}

	if sequence.Status != store.SequenceStatusActive {
		return AdvanceResult{}, nil
	}

	steps, err := p.store.GetStepsBySequence(ctx, orgID, sequenceID)
	if err != nil {
		p.logger.Error(ctx, "failed to get sequence steps", err)
		return AdvanceResult{}, err
	}

	executions, err := p.store.GetStepExecutions(ctx, orgID, leadID, sequenceID)
	if err != nil {
		p.logger.Error(ctx, "failed to get step executions", err)
		return AdvanceResult{}, err
	}
	executed := make(map[uuid.UUID]bool, len(executions))
	for _, e := range executions {
		executed[e.StepID] = true
	}

	var result AdvanceResult
	remaining := 0
	for _, step := range steps {
		if executed[step.ID] {
			continue
		}
		remaining++

		offset := time.Duration(step.DelayDays)*24*time.Hour + time.Duration(step.DelayHours)*time.Hour
		if now.Sub(enrolledAt) < offset {
			// Steps are ordered by offset; nothing further is due yet.
			break
		}

		if step.SendTime != nil && !sendTimeReached(*step.SendTime, now) {
			break
		}

		if !conditionHolds(lead, step.Condition) {
			if err := p.recordExecution(ctx, orgID, leadID, sequenceID, step.ID, true); err != nil {
				return result, err
			}
			executed[step.ID] = true
			remaining--
			result.SkippedSteps++
			continue
		}

		// Claim the execution before acting so a concurrent driver cannot
		// fire the same step twice.
		if err := p.recordExecution(ctx, orgID, leadID, sequenceID, step.ID, false); err != nil {
			if errors.Is(err, store.ErrConflict) {
				executed[step.ID] = true
				remaining--
				continue
			}
			return result, err
		}
		executed[step.ID] = true
		remaining--

		p.executeStep(ctx, orgID, lead, step, now)

		stepID := step.ID
		result.Executed = true
		result.ExecutedStepID = &stepID
		break
	}

	if remaining == 0 && allExecuted(steps, executed) {
		if err := p.exitSequence(ctx, orgID, leadID, sequenceID, ExitReasonCompleted); err != nil {
			return result, err
		}
		result.Exited = true
		result.ExitReason = ExitReasonCompleted
	}

	return result, nil
}

// AdvanceSummary aggregates one driver sweep over all enrolled leads
type AdvanceSummary struct {
	Processed int `json:"processed"`
	Executed  int `json:"executed"`
	Exited    int `json:"exited"`
	Failed    int `json:"failed"`
}

// AdvanceDueLeads sweeps every enrolled lead once. One lead's failure never
// aborts the sweep.
func (p *NurtureProcessor) AdvanceDueLeads(ctx context.Context, now time.Time, batchSize int) (AdvanceSummary, error) {
	if batchSize < 1 {
		batchSize = 200
	}

	var summary AdvanceSummary
	offset := 0
	for {
		leads, err := p.store.GetEnrolledLeads(ctx, batchSize, offset)
		if err != nil {
			p.logger.Error(ctx, "failed to get enrolled leads", err)
			return summary, err
		}
		if len(leads) == 0 {
			break
		}

		for _, lead := range leads {
			summary.Processed++
			result, err := p.AdvanceLead(ctx, lead.OrganizationID, lead.ID, now)
			if err != nil {
				summary.Failed++
				p.logger.InfoWithError(ctx, "failed to advance lead", err)
				continue
			}
			if result.Executed {
				summary.Executed++
			}
			if result.Exited {
				summary.Exited++
			}
		}

		if len(leads) < batchSize {
			break
		}
		offset += batchSize
	}

	return summary, nil
}

func (p *NurtureProcessor) exitSequence(ctx context.Context, orgID, leadID, sequenceID uuid.UUID, reason string) error {
	if err := p.store.ClearLeadSequence(ctx, orgID, leadID); err != nil {
		p.logger.Error(ctx, "failed to clear lead sequence", err)
		return err
	}

	p.recordSequenceEvent(ctx, orgID, leadID, fmt.Sprintf("exited sequence: %s", reason))
	p.auditor.Record(ctx, orgID, "lead.sequence_exited", "nurture_sequence", sequenceID, nil,
		store.JSONB{"lead_id": leadID.String(), "reason": reason})
	return nil
}

func (p *NurtureProcessor) recordExecution(ctx context.Context, orgID, leadID, sequenceID, stepID uuid.UUID, skipped bool) error {
	_, err := p.store.CreateStepExecution(ctx, store.CreateStepExecutionParams{
		OrganizationID: orgID,
		LeadID:         leadID,
		SequenceID:     sequenceID,
		StepID:         stepID,
		Skipped:        skipped,
	})
	if err != nil && !errors.Is(err, store.ErrConflict) {
		p.logger.Error(ctx, "failed to record step execution", err)
	}
	return err
}

// executeStep performs a step's action. Failures are logged and swallowed:
// the execution row already claimed the step and delivery is intent-only.
func (p *NurtureProcessor) executeStep(ctx context.Context, orgID uuid.UUID, lead store.Lead, step store.NurtureStep, now time.Time) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "step_id", Value: step.ID.String()},
		observability.Field{Key: "action_type", Value: step.ActionType},
	)

	switch step.ActionType {
	case store.StepActionSendEmail:
		if lead.Email == nil {
			p.logger.Info(ctx, "step skipped delivery: lead has no email")
			return
		}
		subject, _ := step.Payload["subject"].(string)
		body, _ := step.Payload["body"].(string)
		if _, err := p.messenger.SendEmail(ctx, *lead.Email, subject, body); err != nil {
			p.logger.InfoWithError(ctx, "step email delivery failed", err)
			return
		}
		p.logger.Info(ctx, "step email sent")

	case store.StepActionSendSMS:
		if lead.Phone == nil {
			p.logger.Info(ctx, "step skipped delivery: lead has no phone")
			return
		}
		body, _ := step.Payload["body"].(string)
		if _, err := p.messenger.SendSMS(ctx, *lead.Phone, body); err != nil {
			p.logger.InfoWithError(ctx, "step sms delivery failed", err)
			return
		}
		p.logger.Info(ctx, "step sms sent")

	case store.StepActionUpdateScore:
		delta := 0
		if v, ok := step.Payload["delta"].(float64); ok {
			delta = int(v)
		}
		if _, err := p.store.AdjustLeadScore(ctx, orgID, lead.ID, delta); err != nil {
			p.logger.InfoWithError(ctx, "step score adjustment failed", err)
		}

	case store.StepActionCreateTask:
		dueInDays := 1
		if v, ok := step.Payload["due_in_days"].(float64); ok && v > 0 {
			dueInDays = int(v)
		}
		due := now.AddDate(0, 0, dueInDays)
		if err := p.store.SetLeadFollowUp(ctx, orgID, lead.ID, &due); err != nil {
			p.logger.InfoWithError(ctx, "step task creation failed", err)
		}
	}
}

func (p *NurtureProcessor) recordSequenceEvent(ctx context.Context, orgID, leadID uuid.UUID, note string) {
	_, err := p.store.CreateLeadActivity(ctx, store.CreateLeadActivityParams{
		OrganizationID: orgID,
		LeadID:         leadID,
		ActivityType:   store.LeadActivitySequenceEvent,
		Note:           &note,
	})
	if err != nil {
		p.logger.InfoWithError(ctx, "sequence event activity dropped", err)
	}
}

// exitReason returns the reason a lead should leave the sequence, or empty
// when it should stay. Conversion and unsubscribe take precedence over age.
func exitReason(lead store.Lead, sequence store.NurtureSequence, enrolledAt, now time.Time) string {
	if sequence.ExitOnConversion && lead.Status == store.LeadStatusConverted {
		return ExitReasonConverted
	}
	if sequence.ExitOnUnsubscribe && lead.OptedOut {
		return ExitReasonUnsubscribed
	}
	if now.Sub(enrolledAt) > time.Duration(sequence.MaxDays)*24*time.Hour {
		return ExitReasonMaxDays
	}
	return ""
}

func leadIsEligible(lead store.Lead, sequence store.NurtureSequence) bool {
	if sequence.MinScore != nil && lead.Score < *sequence.MinScore {
		return false
	}
	if sequence.MaxScore != nil && lead.Score > *sequence.MaxScore {
		return false
	}
	if len(sequence.EligibleSources) > 0 {
		match := false
		for _, source := range sequence.EligibleSources {
			if source == lead.Source {
				match = true
				break
			}
		}
		if !match {
			return false
		}
	}
	return true
}

// conditionHolds evaluates a step's predicate against the lead. An empty
// condition always holds. Supported keys: min_score, max_score, status,
// has_email, has_phone.
func conditionHolds(lead store.Lead, condition store.JSONB) bool {
	if len(condition) == 0 {
		return true
	}

	if v, ok := condition["min_score"].(float64); ok && lead.Score < int(v) {
		return false
	}
	if v, ok := condition["max_score"].(float64); ok && lead.Score > int(v) {
		return false
	}
	if v, ok := condition["status"].(string); ok && lead.Status != v {
		return false
	}
	if v, ok := condition["has_email"].(bool); ok && v && lead.Email == nil {
		return false
	}
	if v, ok := condition["has_phone"].(bool); ok && v && lead.Phone == nil {
		return false
	}
	return true
}

// sendTimeReached reports whether the clock has passed the step's local
// time-of-day gate.
func sendTimeReached(sendTime string, now time.Time) bool {
	gate, err := time.Parse("15:04", sendTime)
	if err != nil {
		return true
	}
	nowMinutes := now.Hour()*60 + now.Minute()
	gateMinutes := gate.Hour()*60 + gate.Minute()
	return nowMinutes >= gateMinutes
}

func allExecuted(steps []store.NurtureStep, executed map[uuid.UUID]bool) bool {
	for _, step := range steps {
		if !executed[step.ID] {
			return false
		}
	}
	return len(steps) > 0
}

func isValidTriggerType(trigger string) bool {
	validTriggers := map[string]bool{
		store.SequenceTriggerLeadCreated: true,
		store.SequenceTriggerScoreRange:  true,
		store.SequenceTriggerManual:      true,
	}
	return validTriggers[trigger]
}

func isValidActionType(action string) bool {
	validActions := map[string]bool{
		store.StepActionSendEmail:   true,
		store.StepActionSendSMS:     true,
		store.StepActionCreateTask:  true,
		store.StepActionUpdateScore: true,
	}
	return validActions[action]
}
