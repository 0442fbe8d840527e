package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// JSONB is a custom type for JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	if len(bytes) == 0 || string(bytes) == "null" {
		*j = make(JSONB)
		return nil
	}

	result := make(JSONB)
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*j = result
	return nil
}

// StringArray is a custom type for PostgreSQL text[] arrays
type StringArray []string

// Value implements the driver.Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	if len(a) == 0 {
		return "{}", nil
	}
	return "{" + strings.Join(a, ",") + "}", nil
}

// Scan implements the sql.Scanner interface for StringArray
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var str string
	switch v := value.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	default:
		return errors.New("incompatible type for StringArray")
	}

	str = strings.Trim(str, "{}")
	if str == "" {
		*a = StringArray{}
		return nil
	}
	*a = strings.Split(str, ",")
	return nil
}

// ReferralProgram holds the reward rules for a practice's referral offering.
type ReferralProgram struct {
	ID             uuid.UUID `db:"id" json:"id"`
	OrganizationID uuid.UUID `db:"organization_id" json:"organization_id"`
	Name           string    `db:"name" json:"name"`

	ReferrerRewardType  string   `db:"referrer_reward_type" json:"referrer_reward_type"`
	ReferrerRewardValue float64  `db:"referrer_reward_value" json:"referrer_reward_value"`
	ReferrerRewardMax   *float64 `db:"referrer_reward_max" json:"referrer_reward_max,omitempty"`
	RefereeRewardType   *string  `db:"referee_reward_type" json:"referee_reward_type,omitempty"`
	RefereeRewardValue  *float64 `db:"referee_reward_value" json:"referee_reward_value,omitempty"`

	QualificationCriteria  *string `db:"qualification_criteria" json:"qualification_criteria,omitempty"`
	ExpirationDays         int     `db:"expiration_days" json:"expiration_days"`
	MaxReferralsPerPatient *int    `db:"max_referrals_per_patient" json:"max_referrals_per_patient,omitempty"`
	RequireNewPatient      bool    `db:"require_new_patient" json:"require_new_patient"`

	Active   bool       `db:"active" json:"active"`
	StartsAt *time.Time `db:"starts_at" json:"starts_at,omitempty"`
	EndsAt   *time.Time `db:"ends_at" json:"ends_at,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Referral tracks one introduction from an existing patient to a prospect.
type Referral struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	OrganizationID uuid.UUID  `db:"organization_id" json:"organization_id"`
	ProgramID      uuid.UUID  `db:"program_id" json:"program_id"`
	ReferrerID     uuid.UUID  `db:"referrer_id" json:"referrer_id"`
	RefereeID      *uuid.UUID `db:"referee_id" json:"referee_id,omitempty"`
	ReferralCode   string     `db:"referral_code" json:"referral_code"`
	Status         string     `db:"status" json:"status"`

	RefereeContact         *string `db:"referee_contact" json:"referee_contact,omitempty"`
	ExistingPatientFlagged bool    `db:"existing_patient_flagged" json:"existing_patient_flagged"`

	UTMSource   *string `db:"utm_source" json:"utm_source,omitempty"`
	UTMMedium   *string `db:"utm_medium" json:"utm_medium,omitempty"`
	UTMCampaign *string `db:"utm_campaign" json:"utm_campaign,omitempty"`

	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	QualifiedAt *time.Time `db:"qualified_at" json:"qualified_at,omitempty"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// RewardIssuance is the ledger record of a reward granted for a completed
// referral. The (referral_id, recipient) pair is unique, which is what makes
// completion at-most-once.
type RewardIssuance struct {
	ID             uuid.UUID `db:"id" json:"id"`
	OrganizationID uuid.UUID `db:"organization_id" json:"organization_id"`
	ReferralID     uuid.UUID `db:"referral_id" json:"referral_id"`
	Recipient      string    `db:"recipient" json:"recipient"`
	PatientID      uuid.UUID `db:"patient_id" json:"patient_id"`
	RewardType     string    `db:"reward_type" json:"reward_type"`
	Value          float64   `db:"value" json:"value"`
	IssuedAt       time.Time `db:"issued_at" json:"issued_at"`
}

// Lead is a prospective patient captured before conversion.
type Lead struct {
	ID             uuid.UUID `db:"id" json:"id"`
	OrganizationID uuid.UUID `db:"organization_id" json:"organization_id"`
	FirstName      string    `db:"first_name" json:"first_name"`
	LastName       string    `db:"last_name" json:"last_name"`
	Email          *string   `db:"email" json:"email,omitempty"`
	Phone          *string   `db:"phone" json:"phone,omitempty"`

	Source string `db:"source" json:"source"`
	Status string `db:"status" json:"status"`
	Score  int    `db:"score" json:"score"`

	UTMSource   *string `db:"utm_source" json:"utm_source,omitempty"`
	UTMMedium   *string `db:"utm_medium" json:"utm_medium,omitempty"`
	UTMCampaign *string `db:"utm_campaign" json:"utm_campaign,omitempty"`
	UTMContent  *string `db:"utm_content" json:"utm_content,omitempty"`
	UTMTerm     *string `db:"utm_term" json:"utm_term,omitempty"`

	CampaignID *uuid.UUID `db:"campaign_id" json:"campaign_id,omitempty"`
	ReferralID *uuid.UUID `db:"referral_id" json:"referral_id,omitempty"`

	CurrentSequenceID *uuid.UUID `db:"current_sequence_id" json:"current_sequence_id,omitempty"`
	EnrolledAt        *time.Time `db:"enrolled_at" json:"enrolled_at,omitempty"`

	FollowUpAt         *time.Time `db:"follow_up_at" json:"follow_up_at,omitempty"`
	ConvertedPatientID *uuid.UUID `db:"converted_patient_id" json:"converted_patient_id,omitempty"`
	OptedOut           bool       `db:"opted_out" json:"opted_out"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// LeadActivity is an append-only audit trail entry for a lead. Rows are never
// updated or deleted.
type LeadActivity struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	OrganizationID uuid.UUID  `db:"organization_id" json:"organization_id"`
	LeadID         uuid.UUID  `db:"lead_id" json:"lead_id"`
	ActivityType   string     `db:"activity_type" json:"activity_type"`
	ActorID        *uuid.UUID `db:"actor_id" json:"actor_id,omitempty"`
	Note           *string    `db:"note" json:"note,omitempty"`
	OldStatus      *string    `db:"old_status" json:"old_status,omitempty"`
	NewStatus      *string    `db:"new_status" json:"new_status,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

// NurtureSequence defines an ordered, time-delayed set of actions applied to
// enrolled leads.
type NurtureSequence struct {
	ID             uuid.UUID `db:"id" json:"id"`
	OrganizationID uuid.UUID `db:"organization_id" json:"organization_id"`
	Name           string    `db:"name" json:"name"`
	Status         string    `db:"status" json:"status"`

	TriggerType  string  `db:"trigger_type" json:"trigger_type"`
	TriggerValue *string `db:"trigger_value" json:"trigger_value,omitempty"`

	MinScore        *int        `db:"min_score" json:"min_score,omitempty"`
	MaxScore        *int        `db:"max_score" json:"max_score,omitempty"`
	EligibleSources StringArray `db:"eligible_sources" json:"eligible_sources"`

	ExitOnConversion  bool `db:"exit_on_conversion" json:"exit_on_conversion"`
	ExitOnUnsubscribe bool `db:"exit_on_unsubscribe" json:"exit_on_unsubscribe"`
	MaxDays           int  `db:"max_days" json:"max_days"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	// Loaded separately, not from DB
	Steps []NurtureStep `db:"-" json:"steps,omitempty"`
}

// NurtureStep is one action within a sequence. Delays are cumulative from
// enrollment; ties in cumulative offset order by position.
type NurtureStep struct {
	ID             uuid.UUID `db:"id" json:"id"`
	OrganizationID uuid.UUID `db:"organization_id" json:"organization_id"`
	SequenceID     uuid.UUID `db:"sequence_id" json:"sequence_id"`
	Position       int       `db:"position" json:"position"`
	Name           string    `db:"name" json:"name"`

	DelayDays  int     `db:"delay_days" json:"delay_days"`
	DelayHours int     `db:"delay_hours" json:"delay_hours"`
	SendTime   *string `db:"send_time" json:"send_time,omitempty"`

	ActionType string `db:"action_type" json:"action_type"`
	Payload    JSONB  `db:"payload" json:"payload"`
	Condition  JSONB  `db:"condition" json:"condition,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// StepExecution records that a step fired (or was skipped) for a lead. The
// (lead_id, step_id) pair is unique so a step never fires twice.
type StepExecution struct {
	ID             uuid.UUID `db:"id" json:"id"`
	OrganizationID uuid.UUID `db:"organization_id" json:"organization_id"`
	LeadID         uuid.UUID `db:"lead_id" json:"lead_id"`
	SequenceID     uuid.UUID `db:"sequence_id" json:"sequence_id"`
	StepID         uuid.UUID `db:"step_id" json:"step_id"`
	Skipped        bool      `db:"skipped" json:"skipped"`
	ExecutedAt     time.Time `db:"executed_at" json:"executed_at"`
}

// ReviewRequest tracks a single ask for a public review.
type ReviewRequest struct {
	ID             uuid.UUID `db:"id" json:"id"`
	OrganizationID uuid.UUID `db:"organization_id" json:"organization_id"`
	PatientID      uuid.UUID `db:"patient_id" json:"patient_id"`
	Platform       string    `db:"platform" json:"platform"`
	Status         string    `db:"status" json:"status"`

	TriggeredByAppointmentID *uuid.UUID `db:"triggered_by_appointment_id" json:"triggered_by_appointment_id,omitempty"`
	RecipientContact         string     `db:"recipient_contact" json:"recipient_contact"`

	ScheduledFor      time.Time  `db:"scheduled_for" json:"scheduled_for"`
	SentAt            *time.Time `db:"sent_at" json:"sent_at,omitempty"`
	SentVia           *string    `db:"sent_via" json:"sent_via,omitempty"`
	ProviderMessageID *string    `db:"provider_message_id" json:"provider_message_id,omitempty"`
	ClickedAt         *time.Time `db:"clicked_at" json:"clicked_at,omitempty"`
	ReviewedAt        *time.Time `db:"reviewed_at" json:"reviewed_at,omitempty"`
	Rating            *int       `db:"rating" json:"rating,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Campaign is a marketing campaign with rolling acquisition metrics.
type Campaign struct {
	ID             uuid.UUID `db:"id" json:"id"`
	OrganizationID uuid.UUID `db:"organization_id" json:"organization_id"`
	Name           string    `db:"name" json:"name"`
	Type           string    `db:"type" json:"type"`
	Status         string    `db:"status" json:"status"`

	StartDate *time.Time `db:"start_date" json:"start_date,omitempty"`
	EndDate   *time.Time `db:"end_date" json:"end_date,omitempty"`

	Budget            *float64 `db:"budget" json:"budget,omitempty"`
	TargetLeads       *int     `db:"target_leads" json:"target_leads,omitempty"`
	TargetConversions *int     `db:"target_conversions" json:"target_conversions,omitempty"`
	TargetRevenue     *float64 `db:"target_revenue" json:"target_revenue,omitempty"`

	Impressions      int     `db:"impressions" json:"impressions"`
	Clicks           int     `db:"clicks" json:"clicks"`
	Spend            float64 `db:"spend" json:"spend"`
	LeadsGenerated   int     `db:"leads_generated" json:"leads_generated"`
	Conversions      int     `db:"conversions" json:"conversions"`
	RevenueGenerated float64 `db:"revenue_generated" json:"revenue_generated"`

	UTMSource   *string `db:"utm_source" json:"utm_source,omitempty"`
	UTMMedium   *string `db:"utm_medium" json:"utm_medium,omitempty"`
	UTMCampaign *string `db:"utm_campaign" json:"utm_campaign,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// LandingPage carries attribution counters for a campaign page.
type LandingPage struct {
	ID             uuid.UUID `db:"id" json:"id"`
	OrganizationID uuid.UUID `db:"organization_id" json:"organization_id"`
	CampaignID     uuid.UUID `db:"campaign_id" json:"campaign_id"`
	Name           string    `db:"name" json:"name"`
	Slug           string    `db:"slug" json:"slug"`
	Views          int       `db:"views" json:"views"`
	Submissions    int       `db:"submissions" json:"submissions"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// AuditEntry is one row in the append-only audit side channel.
type AuditEntry struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	OrganizationID uuid.UUID  `db:"organization_id" json:"organization_id"`
	Action         string     `db:"action" json:"action"`
	EntityType     string     `db:"entity_type" json:"entity_type"`
	EntityID       uuid.UUID  `db:"entity_id" json:"entity_id"`
	ActorID        *uuid.UUID `db:"actor_id" json:"actor_id,omitempty"`
	Changes        JSONB      `db:"changes" json:"changes"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}
