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
	ErrLeadNotFound      = errors.New("lead not found")
	ErrMissingName       = errors.New("first and last name are required")
	ErrMissingContact    = errors.New("at least one of email or phone is required")
	ErrInvalidSource     = errors.New("invalid lead source")
	ErrInvalidStatus     = errors.New("invalid lead status")
	ErrInvalidTransition = errors.New("status transition is not allowed")
	ErrTerminalStatus    = errors.New("lead has reached a terminal status")
	ErrNoteRequired      = errors.New("note text is required")
)

// DuplicateLeadError reports the lead an incoming capture collided with
type DuplicateLeadError struct {
	ExistingLeadID uuid.UUID
}

func (e *DuplicateLeadError) Error() string {
	return fmt.Sprintf("duplicate lead: existing lead %s", e.ExistingLeadID)
}

// legalTransitions enumerates allowed status moves. Converted is reachable
// only through ConvertToPatient, never through UpdateStatus.
var legalTransitions = map[string]map[string]bool{
	store.LeadStatusNew: {
		store.LeadStatusContacted:    true,
		store.LeadStatusQualified:    true,
		store.LeadStatusLost:         true,
		store.LeadStatusUnresponsive: true,
	},
	store.LeadStatusContacted: {
		store.LeadStatusEngaged:      true,
		store.LeadStatusQualified:    true,
		store.LeadStatusLost:         true,
		store.LeadStatusUnresponsive: true,
	},
	store.LeadStatusEngaged: {
		store.LeadStatusQualified:    true,
		store.LeadStatusLost:         true,
		store.LeadStatusUnresponsive: true,
	},
	store.LeadStatusQualified: {
		store.LeadStatusLost:         true,
		store.LeadStatusUnresponsive: true,
	},
	store.LeadStatusUnresponsive: {
		store.LeadStatusContacted: true,
		store.LeadStatusEngaged:   true,
		store.LeadStatusQualified: true,
		store.LeadStatusLost:      true,
	},
}

// initialScores seeds a new lead's score from its acquisition source
var initialScores = map[string]int{
	store.LeadSourceReferral:  25,
	store.LeadSourceWalkIn:    20,
	store.LeadSourcePhone:     15,
	store.LeadSourceWebsite:   10,
	store.LeadSourceGoogleAds: 10,
	store.LeadSourceFacebook:  10,
	store.LeadSourceEvent:     10,
	store.LeadSourceOther:     5,
}

type LeadProcessor struct {
	store     Store
	dedup     Deduplicator
	referrals ReferralCompleter
	campaigns CampaignRecorder
	auditor   Auditor
	logger    *observability.Logger
}

func New(store Store, dedup Deduplicator, referrals ReferralCompleter, campaigns CampaignRecorder, auditor Auditor, logger *observability.Logger) LeadProcessor {
	return LeadProcessor{
		store:     store,
		dedup:     dedup,
		referrals: referrals,
		campaigns: campaigns,
		auditor:   auditor,
		logger:    logger,
	}
}

// ExactContactDeduplicator is the default duplicate strategy: an exact match
// on email or phone within the organization.
type ExactContactDeduplicator struct {
	store Store
}

func NewExactContactDeduplicator(store Store) ExactContactDeduplicator {
	return ExactContactDeduplicator{store: store}
}

func (d ExactContactDeduplicator) FindDuplicate(ctx context.Context, orgID uuid.UUID, email, phone *string) (store.Lead, bool, error) {
	lead, err := d.store.FindLeadByEmailOrPhone(ctx, orgID, email, phone)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Lead{}, false, nil
		}
		return store.Lead{}, false, err
	}
	return lead, true, nil
}

// CreateLeadRequest represents a request to capture a lead
type CreateLeadRequest struct {
	FirstName   string
	LastName    string
	Email       *string
	Phone       *string
	Source      string
	UTMSource   *string
	UTMMedium   *string
	UTMCampaign *string
	UTMContent  *string
	UTMTerm     *string
	CampaignID  *uuid.UUID
	ReferralID  *uuid.UUID
	ActorID     *uuid.UUID
}

// CreateLead captures a new lead, rejecting duplicates by contact match and
// seeding the score from the acquisition source.
func (p *LeadProcessor) CreateLead(ctx context.Context, orgID uuid.UUID, req CreateLeadRequest) (store.Lead, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: orgID.String()},
		observability.Field{Key: "lead_source", Value: req.Source},
	)

	if req.FirstName == "" || req.LastName == "" {
		return store.Lead{}, ErrMissingName
	}
	if req.Email == nil && req.Phone == nil {
		return store.Lead{}, ErrMissingContact
	}
	if !isValidLeadSource(req.Source) {
		return store.Lead{}, ErrInvalidSource
	}

	existing, found, err := p.dedup.FindDuplicate(ctx, orgID, req.Email, req.Phone)
	if err != nil {
		p.logger.Error(ctx, "failed to check for duplicate lead", err)
		return store.Lead{}, err
	}
	if found {
		return store.Lead{}, &DuplicateLeadError{ExistingLeadID: existing.ID}
	}

	lead, err := p.store.CreateLead(ctx, store.CreateLeadParams{
		OrganizationID: orgID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Source:         req.Source,
		Score:          initialScores[req.Source],
		UTMSource:      req.UTMSource,
		UTMMedium:      req.UTMMedium,
		UTMCampaign:    req.UTMCampaign,
		UTMContent:     req.UTMContent,
		UTMTerm:        req.UTMTerm,
		CampaignID:     req.CampaignID,
		ReferralID:     req.ReferralID,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create lead", err)
		return store.Lead{}, err
	}

	p.appendActivity(ctx, store.CreateLeadActivityParams{
		OrganizationID: orgID,
		LeadID:         lead.ID,
		ActivityType:   store.LeadActivityStatusChange,
		ActorID:        req.ActorID,
		NewStatus:      &lead.Status,
	})

	// Attribution is advisory: a failed counter bump never unwinds the lead.
	if req.CampaignID != nil {
		if err := p.campaigns.RecordLead(ctx, orgID, *req.CampaignID); err != nil {
			p.logger.InfoWithError(ctx, "failed to record lead against campaign", err)
		}
	}

	p.auditor.Record(ctx, orgID, "lead.created", "lead", lead.ID, req.ActorID, store.JSONB{"source": lead.Source})
	p.logger.Info(ctx, "lead created")
	return lead, nil
}

// UpdateStatus moves a lead through the pipeline along a legal transition
func (p *LeadProcessor) UpdateStatus(ctx context.Context, orgID, leadID uuid.UUID, newStatus string, actorID *uuid.UUID) (store.Lead, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: orgID.String()},
		observability.Field{Key: "lead_id", Value: leadID.String()},
		observability.Field{Key: "new_status", Value: newStatus},
	)

	if !isValidLeadStatus(newStatus) || newStatus == store.LeadStatusConverted {
		return store.Lead{}, ErrInvalidStatus
	}

	lead, err := p.store.GetLeadByID(ctx, orgID, leadID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Lead{}, ErrLeadNotFound
		}
		p.logger.Error(ctx, "failed to get lead", err)
		return store.Lead{}, err
	}

	if isTerminalLeadStatus(lead.Status) {
		return store.Lead{}, ErrTerminalStatus
	}
	if !legalTransitions[lead.Status][newStatus] {
		return store.Lead{}, ErrInvalidTransition
	}

	oldStatus := lead.Status
	updated, err := p.store.UpdateLeadStatus(ctx, orgID, leadID, newStatus)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return store.Lead{}, ErrTerminalStatus
		}
		p.logger.Error(ctx, "failed to update lead status", err)
		return store.Lead{}, err
	}

	p.appendActivity(ctx, store.CreateLeadActivityParams{
		OrganizationID: orgID,
		LeadID:         leadID,
		ActivityType:   store.LeadActivityStatusChange,
		ActorID:        actorID,
		OldStatus:      &oldStatus,
		NewStatus:      &newStatus,
	})

	p.auditor.Record(ctx, orgID, "lead.status_changed", "lead", leadID, actorID,
		store.JSONB{"old_status": oldStatus, "new_status": newStatus})
	return updated, nil
}

// LogContactAttempt appends a contact attempt to the lead's activity trail
func (p *LeadProcessor) LogContactAttempt(ctx context.Context, orgID, leadID uuid.UUID, note *string, actorID *uuid.UUID) (store.LeadActivity, error) {
	if _, err := p.store.GetLeadByID(ctx, orgID, leadID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.LeadActivity{}, ErrLeadNotFound
		}
		p.logger.Error(ctx, "failed to get lead", err)
		return store.LeadActivity{}, err
	}

	activity, err := p.store.CreateLeadActivity(ctx, store.CreateLeadActivityParams{
		OrganizationID: orgID,
		LeadID:         leadID,
		ActivityType:   store.LeadActivityContactAttempt,
		ActorID:        actorID,
		Note:           note,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to log contact attempt", err)
		return store.LeadActivity{}, err
	}
	return activity, nil
}

// AddNote appends a free-form note to the lead's activity trail
func (p *LeadProcessor) AddNote(ctx context.Context, orgID, leadID uuid.UUID, note string, actorID *uuid.UUID) (store.LeadActivity, error) {
	if note == "" {
		return store.LeadActivity{}, ErrNoteRequired
	}

	if _, err := p.store.GetLeadByID(ctx, orgID, leadID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.LeadActivity{}, ErrLeadNotFound
		}
		p.logger.Error(ctx, "failed to get lead", err)
		return store.LeadActivity{}, err
	}

	activity, err := p.store.CreateLeadActivity(ctx, store.CreateLeadActivityParams{
		OrganizationID: orgID,
		LeadID:         leadID,
		ActivityType:   store.LeadActivityNote,
		ActorID:        actorID,
		Note:           &note,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to add note", err)
		return store.LeadActivity{}, err
	}
	return activity, nil
}

// SetFollowUp sets or clears a lead's follow-up time
func (p *LeadProcessor) SetFollowUp(ctx context.Context, orgID, leadID uuid.UUID, followUpAt *time.Time) error {
	err := p.store.SetLeadFollowUp(ctx, orgID, leadID, followUpAt)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrLeadNotFound
		}
		p.logger.Error(ctx, "failed to set follow-up", err)
		return err
	}
	return nil
}

// ConvertRequest represents a request to convert a lead into a patient
type ConvertRequest struct {
	PatientID       uuid.UUID
	ConversionValue *float64
	ActorID         *uuid.UUID
}

// ConvertResponse carries the converted lead and any downstream completion
// failure that needs operator attention.
type ConvertResponse struct {
	Lead store.Lead `json:"lead"`
	// ReferralCompletionError is set when the lead's referral could not be
	// completed. The conversion itself stands; the referral is reconciled
	// out of band.
	ReferralCompletionError *string `json:"referral_completion_error,omitempty"`
}

// ConvertToPatient marks a lead converted and cascades into referral
// completion and campaign conversion attribution.
func (p *LeadProcessor) ConvertToPatient(ctx context.Context, orgID, leadID uuid.UUID, req ConvertRequest) (ConvertResponse, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: orgID.String()},
		observability.Field{Key: "lead_id", Value: leadID.String()},
		observability.Field{Key: "patient_id", Value: req.PatientID.String()},
	)

	lead, err := p.store.GetLeadByID(ctx, orgID, leadID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ConvertResponse{}, ErrLeadNotFound
		}
		p.logger.Error(ctx, "failed to get lead", err)
		return ConvertResponse{}, err
	}

	if isTerminalLeadStatus(lead.Status) {
		return ConvertResponse{}, ErrTerminalStatus
	}

	oldStatus := lead.Status
	converted, err := p.store.ConvertLead(ctx, orgID, leadID, req.PatientID)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return ConvertResponse{}, ErrTerminalStatus
		}
		p.logger.Error(ctx, "failed to convert lead", err)
		return ConvertResponse{}, err
	}

	newStatus := store.LeadStatusConverted
	p.appendActivity(ctx, store.CreateLeadActivityParams{
		OrganizationID: orgID,
		LeadID:         leadID,
		ActivityType:   store.LeadActivityStatusChange,
		ActorID:        req.ActorID,
		OldStatus:      &oldStatus,
		NewStatus:      &newStatus,
	})

	response := ConvertResponse{Lead: converted}

	// The referral side runs after the conversion commits, so a failure here
	// leaves the lead converted and surfaces the gap for reconciliation.
	if lead.ReferralID != nil {
		if err := p.referrals.CompleteReferralForLead(ctx, orgID, *lead.ReferralID, req.PatientID, req.ConversionValue); err != nil {
			p.logger.Error(ctx, "referral completion failed after lead conversion", err)
			msg := err.Error()
			response.ReferralCompletionError = &msg
		}
	}

	if lead.CampaignID != nil {
		revenue := 0.0
		if req.ConversionValue != nil {
			revenue = *req.ConversionValue
		}
		if err := p.campaigns.RecordConversion(ctx, orgID, *lead.CampaignID, revenue); err != nil {
			p.logger.InfoWithError(ctx, "failed to record conversion against campaign", err)
		}
	}

	p.auditor.Record(ctx, orgID, "lead.converted", "lead", leadID, req.ActorID,
		store.JSONB{"patient_id": req.PatientID.String()})
	p.logger.Info(ctx, "lead converted to patient")
	return response, nil
}

// MarkOptedOut flags a lead as unsubscribed from all outreach
func (p *LeadProcessor) MarkOptedOut(ctx context.Context, orgID, leadID uuid.UUID, actorID *uuid.UUID) error {
	err := p.store.SetLeadOptedOut(ctx, orgID, leadID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrLeadNotFound
		}
		p.logger.Error(ctx, "failed to mark lead opted out", err)
		return err
	}

	note := "lead opted out of outreach"
	p.appendActivity(ctx, store.CreateLeadActivityParams{
		OrganizationID: orgID,
		LeadID:         leadID,
		ActivityType:   store.LeadActivityNote,
		ActorID:        actorID,
		Note:           &note,
	})

	p.auditor.Record(ctx, orgID, "lead.opted_out", "lead", leadID, actorID, nil)
	return nil
}

// GetFollowUpsDue lists non-terminal leads whose follow-up time has passed
func (p *LeadProcessor) GetFollowUpsDue(ctx context.Context, orgID uuid.UUID, now time.Time) ([]store.Lead, error) {
	leads, err := p.store.GetLeadsDueForFollowUp(ctx, orgID, now)
	if err != nil {
		p.logger.Error(ctx, "failed to get follow-ups due", err)
		return nil, err
	}
	if leads == nil {
		leads = []store.Lead{}
	}
	return leads, nil
}

// GetLead retrieves a single lead
func (p *LeadProcessor) GetLead(ctx context.Context, orgID, leadID uuid.UUID) (store.Lead, error) {
	lead, err := p.store.GetLeadByID(ctx, orgID, leadID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Lead{}, ErrLeadNotFound
		}
		p.logger.Error(ctx, "failed to get lead", err)
		return store.Lead{}, err
	}
	return lead, nil
}

// ListLeadsRequest represents parameters for listing leads
type ListLeadsRequest struct {
	Status *string
	Source *string
	Page   int
	Limit  int
}

// ListLeads retrieves leads with optional status and source filters
func (p *LeadProcessor) ListLeads(ctx context.Context, orgID uuid.UUID, req ListLeadsRequest) ([]store.Lead, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}
	if req.Status != nil && !isValidLeadStatus(*req.Status) {
		return nil, ErrInvalidStatus
	}
	if req.Source != nil && !isValidLeadSource(*req.Source) {
		return nil, ErrInvalidSource
	}

	leads, err := p.store.ListLeads(ctx, store.ListLeadsParams{
		OrganizationID: orgID,
		Status:         req.Status,
		Source:         req.Source,
		Limit:          req.Limit,
		Offset:         (req.Page - 1) * req.Limit,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list leads", err)
		return nil, err
	}
	if leads == nil {
		leads = []store.Lead{}
	}
	return leads, nil
}

// ListActivities retrieves a lead's activity trail, newest first
func (p *LeadProcessor) ListActivities(ctx context.Context, orgID, leadID uuid.UUID, page, limit int) ([]store.LeadActivity, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	if _, err := p.store.GetLeadByID(ctx, orgID, leadID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrLeadNotFound
		}
		p.logger.Error(ctx, "failed to get lead", err)
		return nil, err
	}

	activities, err := p.store.GetActivitiesByLead(ctx, orgID, leadID, limit, (page-1)*limit)
	if err != nil {
		p.logger.Error(ctx, "failed to list lead activities", err)
		return nil, err
	}
	if activities == nil {
		activities = []store.LeadActivity{}
	}
	return activities, nil
}

// appendActivity writes a trail row, logging and swallowing failures so the
// primary write stands.
func (p *LeadProcessor) appendActivity(ctx context.Context, params store.CreateLeadActivityParams) {
	if _, err := p.store.CreateLeadActivity(ctx, params); err != nil {
		p.logger.InfoWithError(ctx, "lead activity dropped", err)
	}
}

func isValidLeadSource(source string) bool {
	validSources := map[string]bool{
		store.LeadSourceWebsite:   true,
		store.LeadSourceReferral:  true,
		store.LeadSourceGoogleAds: true,
		store.LeadSourceFacebook:  true,
		store.LeadSourceWalkIn:    true,
		store.LeadSourcePhone:     true,
		store.LeadSourceEvent:     true,
		store.LeadSourceOther:     true,
	}
	return validSources[source]
}

func isValidLeadStatus(status string) bool {
	validStatuses := map[string]bool{
		store.LeadStatusNew:          true,
		store.LeadStatusContacted:    true,
		store.LeadStatusEngaged:      true,
		store.LeadStatusQualified:    true,
		store.LeadStatusConverted:    true,
		store.LeadStatusLost:         true,
		store.LeadStatusUnresponsive: true,
	}
	return validStatuses[status]
}

func isTerminalLeadStatus(status string) bool {
	return status == store.LeadStatusConverted || status == store.LeadStatusLost
}
