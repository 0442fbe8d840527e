package processor

import (
	"context"
	"errors"
	"growth-server/internal/observability"
	"growth-server/internal/referrals/utils"
	"growth-server/internal/store"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProgramNotFound      = errors.New("referral program not found")
	ErrProgramInactive      = errors.New("referral program is not active")
	ErrReferralNotFound     = errors.New("referral not found")
	ErrInvalidRewardType    = errors.New("invalid reward type")
	ErrInvalidRewardValue   = errors.New("reward value must be positive")
	ErrReferralLimitReached = errors.New("referrer has reached the program referral limit")
	ErrAlreadyLinked        = errors.New("referral already has a linked referee")
	ErrInvalidStatus        = errors.New("referral is not in a valid status for this operation")
	ErrReferralExpired      = errors.New("referral has expired")
	ErrCodeGeneration       = errors.New("failed to generate a unique referral code")
)

const codeGenerationRetries = 5

type ReferralProcessor struct {
	store   Store
	auditor Auditor
	logger  *observability.Logger
}

func New(store Store, auditor Auditor, logger *observability.Logger) ReferralProcessor {
	return ReferralProcessor{
		store:   store,
		auditor: auditor,
		logger:  logger,
	}
}

// CreateProgramRequest represents a request to create a referral program
type CreateProgramRequest struct {
	Name                   string
	ReferrerRewardType     string
	ReferrerRewardValue    float64
	ReferrerRewardMax      *float64
	RefereeRewardType      *string
	RefereeRewardValue     *float64
	QualificationCriteria  *string
	ExpirationDays         int
	MaxReferralsPerPatient *int
	RequireNewPatient      bool
	StartsAt               *time.Time
	EndsAt                 *time.Time
}

// CreateProgram validates reward rules and persists a new program
func (p *ReferralProcessor) CreateProgram(ctx context.Context, orgID uuid.UUID, req CreateProgramRequest) (store.ReferralProgram, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: orgID.String()},
		observability.Field{Key: "program_name", Value: req.Name},
	)

	if !isValidRewardType(req.ReferrerRewardType) {
		return store.ReferralProgram{}, ErrInvalidRewardType
	}
	if req.ReferrerRewardValue <= 0 {
		return store.ReferralProgram{}, ErrInvalidRewardValue
	}
	if req.ReferrerRewardMax != nil && *req.ReferrerRewardMax <= 0 {
		return store.ReferralProgram{}, ErrInvalidRewardValue
	}

	// Referee reward is optional but must be complete and valid when present
	if req.RefereeRewardType != nil {
		if !isValidRewardType(*req.RefereeRewardType) {
			return store.ReferralProgram{}, ErrInvalidRewardType
		}
		if req.RefereeRewardValue == nil || *req.RefereeRewardValue <= 0 {
			return store.ReferralProgram{}, ErrInvalidRewardValue
		}
	}

	if req.ExpirationDays <= 0 {
		req.ExpirationDays = 90
	}

	program, err := p.store.CreateReferralProgram(ctx, store.CreateReferralProgramParams{
		OrganizationID:         orgID,
		Name:                   req.Name,
		ReferrerRewardType:     req.ReferrerRewardType,
		ReferrerRewardValue:    req.ReferrerRewardValue,
		ReferrerRewardMax:      req.ReferrerRewardMax,
		RefereeRewardType:      req.RefereeRewardType,
		RefereeRewardValue:     req.RefereeRewardValue,
		QualificationCriteria:  req.QualificationCriteria,
		ExpirationDays:         req.ExpirationDays,
		MaxReferralsPerPatient: req.MaxReferralsPerPatient,
		RequireNewPatient:      req.RequireNewPatient,
		StartsAt:               req.StartsAt,
		EndsAt:                 req.EndsAt,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create referral program", err)
		return store.ReferralProgram{}, err
	}

	p.auditor.Record(ctx, orgID, "program.created", "referral_program", program.ID, nil, store.JSONB{"name": program.Name})
	p.logger.Info(ctx, "referral program created")
	return program, nil
}

// CreateReferralRequest represents a request to create a referral
type CreateReferralRequest struct {
	ProgramID      uuid.UUID
	ReferrerID     uuid.UUID
	RefereeContact *string
	UTMSource      *string
	UTMMedium      *string
	UTMCampaign    *string
}

// CreateReferral generates a unique code and creates a pending referral
func (p *ReferralProcessor) CreateReferral(ctx context.Context, orgID uuid.UUID, req CreateReferralRequest) (store.Referral, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: orgID.String()},
		observability.Field{Key: "program_id", Value: req.ProgramID.String()},
		observability.Field{Key: "referrer_id", Value: req.ReferrerID.String()},
	)

	program, err := p.store.GetReferralProgramByID(ctx, orgID, req.ProgramID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Referral{}, ErrProgramNotFound
		}
		p.logger.Error(ctx, "failed to get referral program", err)
		return store.Referral{}, err
	}

	if !program.Active {
		return store.Referral{}, ErrProgramInactive
	}

	if program.MaxReferralsPerPatient != nil {
		count, err := p.store.CountReferralsByReferrer(ctx, orgID, program.ID, req.ReferrerID)
		if err != nil {
			p.logger.Error(ctx, "failed to count referrals by referrer", err)
			return store.Referral{}, err
		}
		if count >= *program.MaxReferralsPerPatient {
			return store.Referral{}, ErrReferralLimitReached
		}
	}

	// Collision-checked code generation with a bounded regenerate loop. A
	// concurrent insert of the same code surfaces as ErrConflict from the
	// unique constraint and also retries.
	for attempt := 0; attempt < codeGenerationRetries; attempt++ {
		code, err := utils.GenerateReferralCode(8)
		if err != nil {
			p.logger.Error(ctx, "failed to generate referral code", err)
			return store.Referral{}, err
		}

		exists, err := p.store.ReferralCodeExists(ctx, orgID, code)
		if err != nil {
			p.logger.Error(ctx, "failed to check referral code", err)
			return store.Referral{}, err
		}
		if exists {
			continue
		}

		referral, err := p.store.CreateReferral(ctx, store.CreateReferralParams{
			OrganizationID: orgID,
			ProgramID:      req.ProgramID,
			ReferrerID:     req.ReferrerID,
			ReferralCode:   code,
			RefereeContact: req.RefereeContact,
			UTMSource:      req.UTMSource,
			UTMMedium:      req.UTMMedium,
			UTMCampaign:    req.UTMCampaign,
		})
		if err != nil {
			if errors.Is(err, store.ErrConflict) {
				continue
			}
			p.logger.Error(ctx, "failed to create referral", err)
			return store.Referral{}, err
		}

		p.auditor.Record(ctx, orgID, "referral.created", "referral", referral.ID, nil, store.JSONB{"code": referral.ReferralCode})
		p.logger.Info(ctx, "referral created")
		return referral, nil
	}

	return store.Referral{}, ErrCodeGeneration
}

// LinkRefereeRequest represents a request to link a referee patient
type LinkRefereeRequest struct {
	ReferralCode    string
	PatientID       uuid.UUID
	ExistingPatient bool
}

// LinkRefereePatient links a referee to a pending referral and qualifies it.
// A patient that already existed before the referral is flagged when the
// program requires new patients, but qualification still proceeds.
func (p *ReferralProcessor) LinkRefereePatient(ctx context.Context, orgID uuid.UUID, req LinkRefereeRequest) (store.Referral, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: orgID.String()},
		observability.Field{Key: "referral_code", Value: req.ReferralCode},
	)

	referral, err := p.store.GetReferralByCode(ctx, orgID, req.ReferralCode)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Referral{}, ErrReferralNotFound
		}
		p.logger.Error(ctx, "failed to get referral by code", err)
		return store.Referral{}, err
	}

	referral, err = p.expireIfStale(ctx, orgID, referral)
	if err != nil {
		return store.Referral{}, err
	}

	if referral.Status != store.ReferralStatusPending {
		if referral.RefereeID != nil {
			return store.Referral{}, ErrAlreadyLinked
		}
		return store.Referral{}, ErrInvalidStatus
	}

	program, err := p.store.GetReferralProgramByID(ctx, orgID, referral.ProgramID)
	if err != nil {
		p.logger.Error(ctx, "failed to get referral program", err)
		return store.Referral{}, err
	}

	flagged := program.RequireNewPatient && req.ExistingPatient

	linked, err := p.store.LinkReferee(ctx, orgID, referral.ID, req.PatientID, flagged)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return store.Referral{}, ErrAlreadyLinked
		}
		p.logger.Error(ctx, "failed to link referee", err)
		return store.Referral{}, err
	}

	p.auditor.Record(ctx, orgID, "referral.qualified", "referral", linked.ID, nil,
		store.JSONB{"referee_id": req.PatientID.String(), "flagged": flagged})
	p.logger.Info(ctx, "referee linked and referral qualified")
	return linked, nil
}

// CompleteReferralRequest represents a request to complete a referral
type CompleteReferralRequest struct {
	ReferralID uuid.UUID
	// ConversionValue is the value the referee's conversion produced, used
	// to compute percentage-based rewards.
	ConversionValue *float64
}

// CompleteReferralResponse carries the completion outcome
type CompleteReferralResponse struct {
	Referral         store.Referral         `json:"referral"`
	Rewards          []store.RewardIssuance `json:"rewards"`
	AlreadyCompleted bool                   `json:"already_completed"`
}

// CompleteReferral issues rewards for a qualified referral exactly once.
// A repeated call on a completed referral returns the prior issuances
// without re-issuing; the storage-level status guard resolves concurrent
// racers so at most one wins the transition.
func (p *ReferralProcessor) CompleteReferral(ctx context.Context, orgID uuid.UUID, req CompleteReferralRequest) (CompleteReferralResponse, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: orgID.String()},
		observability.Field{Key: "referral_id", Value: req.ReferralID.String()},
	)

	referral, err := p.store.GetReferralByID(ctx, orgID, req.ReferralID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CompleteReferralResponse{}, ErrReferralNotFound
		}
		p.logger.Error(ctx, "failed to get referral", err)
		return CompleteReferralResponse{}, err
	}

	if referral.Status == store.ReferralStatusCompleted {
		return p.priorCompletion(ctx, orgID, referral)
	}

	referral, err = p.expireIfStale(ctx, orgID, referral)
	if err != nil {
		return CompleteReferralResponse{}, err
	}

	if referral.Status != store.ReferralStatusQualified {
		return CompleteReferralResponse{}, ErrInvalidStatus
	}

	program, err := p.store.GetReferralProgramByID(ctx, orgID, referral.ProgramID)
	if err != nil {
		p.logger.Error(ctx, "failed to get referral program", err)
		return CompleteReferralResponse{}, err
	}

	issuances := []store.RewardIssuanceParams{
		{
			Recipient:  store.RewardRecipientReferrer,
			PatientID:  referral.ReferrerID,
			RewardType: program.ReferrerRewardType,
			Value: computeRewardValue(program.ReferrerRewardType, program.ReferrerRewardValue,
				program.ReferrerRewardMax, req.ConversionValue),
		},
	}

	if program.RefereeRewardType != nil && referral.RefereeID != nil {
		issuances = append(issuances, store.RewardIssuanceParams{
			Recipient:  store.RewardRecipientReferee,
			PatientID:  *referral.RefereeID,
			RewardType: *program.RefereeRewardType,
			Value:      computeRewardValue(*program.RefereeRewardType, *program.RefereeRewardValue, nil, req.ConversionValue),
		})
	}

	completed, rewards, err := p.store.CompleteReferral(ctx, orgID, referral.ID, issuances)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			// Lost the race: another caller completed it first. Return
			// that caller's result.
			current, getErr := p.store.GetReferralByID(ctx, orgID, referral.ID)
			if getErr != nil {
				return CompleteReferralResponse{}, getErr
			}
			if current.Status == store.ReferralStatusCompleted {
				return p.priorCompletion(ctx, orgID, current)
			}
			return CompleteReferralResponse{}, ErrInvalidStatus
		}
		p.logger.Error(ctx, "failed to complete referral", err)
		return CompleteReferralResponse{}, err
	}

	p.auditor.Record(ctx, orgID, "referral.completed", "referral", completed.ID, nil,
		store.JSONB{"rewards_issued": len(rewards)})
	p.logger.Info(ctx, "referral completed and rewards issued")

	return CompleteReferralResponse{
		Referral: completed,
		Rewards:  rewards,
	}, nil
}

// GetReferral retrieves a referral, lazily expiring it when stale
func (p *ReferralProcessor) GetReferral(ctx context.Context, orgID, referralID uuid.UUID) (store.Referral, error) {
	referral, err := p.store.GetReferralByID(ctx, orgID, referralID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Referral{}, ErrReferralNotFound
		}
		p.logger.Error(ctx, "failed to get referral", err)
		return store.Referral{}, err
	}

	if isTerminalReferralStatus(referral.Status) {
		return referral, nil
	}

	expired, err := p.expireIfStale(ctx, orgID, referral)
	if err != nil && !errors.Is(err, ErrReferralExpired) {
		return store.Referral{}, err
	}
	if errors.Is(err, ErrReferralExpired) {
		expired.Status = store.ReferralStatusExpired
	}
	return expired, nil
}

// ListReferralsRequest represents parameters for listing referrals
type ListReferralsRequest struct {
	ProgramID *uuid.UUID
	Status    *string
	Page      int
	Limit     int
}

// ListReferrals retrieves referrals with optional filters
func (p *ReferralProcessor) ListReferrals(ctx context.Context, orgID uuid.UUID, req ListReferralsRequest) ([]store.Referral, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: orgID.String()},
	)

	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}

	if req.Status != nil && !isValidReferralStatus(*req.Status) {
		return nil, ErrInvalidStatus
	}

	referrals, err := p.store.ListReferrals(ctx, store.ListReferralsParams{
		OrganizationID: orgID,
		ProgramID:      req.ProgramID,
		Status:         req.Status,
		Limit:          req.Limit,
		Offset:         (req.Page - 1) * req.Limit,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list referrals", err)
		return nil, err
	}

	if referrals == nil {
		referrals = []store.Referral{}
	}
	return referrals, nil
}

// CancelReferral cancels a non-terminal referral
func (p *ReferralProcessor) CancelReferral(ctx context.Context, orgID, referralID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: orgID.String()},
		observability.Field{Key: "referral_id", Value: referralID.String()},
	)

	err := p.store.TransitionReferralStatus(ctx, orgID, referralID, store.ReferralStatusCancelled)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return ErrInvalidStatus
		}
		p.logger.Error(ctx, "failed to cancel referral", err)
		return err
	}

	p.auditor.Record(ctx, orgID, "referral.cancelled", "referral", referralID, nil, nil)
	return nil
}

// Statistics aggregates referral counts within a range
type Statistics struct {
	Total          int     `json:"total"`
	Pending        int     `json:"pending"`
	Qualified      int     `json:"qualified"`
	Completed      int     `json:"completed"`
	Expired        int     `json:"expired"`
	Cancelled      int     `json:"cancelled"`
	CompletionRate float64 `json:"completion_rate"`
}

// GetStatistics aggregates referral counts and the completion rate for a range
func (p *ReferralProcessor) GetStatistics(ctx context.Context, orgID uuid.UUID, from, to time.Time) (Statistics, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: orgID.String()},
	)

	counts, err := p.store.CountReferralsByStatus(ctx, orgID, from, to)
	if err != nil {
		p.logger.Error(ctx, "failed to get referral statistics", err)
		return Statistics{}, err
	}

	var stats Statistics
	for _, c := range counts {
		stats.Total += c.Count
		switch c.Status {
		case store.ReferralStatusPending:
			stats.Pending = c.Count
		case store.ReferralStatusQualified:
			stats.Qualified = c.Count
		case store.ReferralStatusCompleted:
			stats.Completed = c.Count
		case store.ReferralStatusExpired:
			stats.Expired = c.Count
		case store.ReferralStatusCancelled:
			stats.Cancelled = c.Count
		}
	}

	if stats.Total > 0 {
		stats.CompletionRate = float64(stats.Completed) / float64(stats.Total)
	}
	return stats, nil
}

// GetTopReferrers ranks referrers by completed referrals within a range
func (p *ReferralProcessor) GetTopReferrers(ctx context.Context, orgID uuid.UUID, from, to time.Time, limit int) ([]store.TopReferrer, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}

	referrers, err := p.store.GetTopReferrers(ctx, orgID, from, to, limit)
	if err != nil {
		p.logger.Error(ctx, "failed to get top referrers", err)
		return nil, err
	}

	if referrers == nil {
		referrers = []store.TopReferrer{}
	}
	return referrers, nil
}

// priorCompletion returns the result of an earlier completion unchanged
func (p *ReferralProcessor) priorCompletion(ctx context.Context, orgID uuid.UUID, referral store.Referral) (CompleteReferralResponse, error) {
	rewards, err := p.store.GetRewardIssuancesByReferral(ctx, orgID, referral.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to get prior reward issuances", err)
		return CompleteReferralResponse{}, err
	}
	return CompleteReferralResponse{
		Referral:         referral,
		Rewards:          rewards,
		AlreadyCompleted: true,
	}, nil
}

// expireIfStale lazily expires a non-terminal referral older than the
// program's expiration window. Returns ErrReferralExpired when the referral
// was (or already is) expired.
func (p *ReferralProcessor) expireIfStale(ctx context.Context, orgID uuid.UUID, referral store.Referral) (store.Referral, error) {
	if referral.Status == store.ReferralStatusExpired {
		return referral, ErrReferralExpired
	}
	if isTerminalReferralStatus(referral.Status) {
		return referral, nil
	}

	program, err := p.store.GetReferralProgramByID(ctx, orgID, referral.ProgramID)
	if err != nil {
		p.logger.Error(ctx, "failed to get referral program", err)
		return referral, err
	}

	age := time.Since(referral.CreatedAt)
	if age <= time.Duration(program.ExpirationDays)*24*time.Hour {
		return referral, nil
	}

	if err := p.store.TransitionReferralStatus(ctx, orgID, referral.ID, store.ReferralStatusExpired); err != nil && !errors.Is(err, store.ErrConflict) {
		p.logger.Error(ctx, "failed to expire referral", err)
		return referral, err
	}
	return referral, ErrReferralExpired
}

// computeRewardValue resolves the issued reward amount. Percentage-based
// rewards apply against the conversion value; everything else is absolute.
// The referrer cap bounds the final amount.
func computeRewardValue(rewardType string, rewardValue float64, max *float64, conversionValue *float64) float64 {
	amount := rewardValue
	if rewardType == store.RewardTypePercentDiscount && conversionValue != nil {
		amount = rewardValue * *conversionValue / 100
	}
	if max != nil && amount > *max {
		amount = *max
	}
	return amount
}

func isValidRewardType(rewardType string) bool {
	validTypes := map[string]bool{
		store.RewardTypePercentDiscount: true,
		store.RewardTypeFixedDiscount:   true,
		store.RewardTypeCredit:          true,
		store.RewardTypeCash:            true,
		store.RewardTypeGiftCard:        true,
		store.RewardTypeFreeService:     true,
	}
	return validTypes[rewardType]
}

func isValidReferralStatus(status string) bool {
	validStatuses := map[string]bool{
		store.ReferralStatusPending:   true,
		store.ReferralStatusQualified: true,
		store.ReferralStatusCompleted: true,
		store.ReferralStatusExpired:   true,
		store.ReferralStatusCancelled: true,
	}
	return validStatuses[status]
}

func isTerminalReferralStatus(status string) bool {
	return status == store.ReferralStatusCompleted ||
		status == store.ReferralStatusExpired ||
		status == store.ReferralStatusCancelled
}
