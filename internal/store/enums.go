package store

// Referral ENUMs
const (
	ReferralStatusPending   = "pending"
	ReferralStatusQualified = "qualified"
	ReferralStatusCompleted = "completed"
	ReferralStatusExpired   = "expired"
	ReferralStatusCancelled = "cancelled"
)

const (
	RewardTypePercentDiscount = "percent_discount"
	RewardTypeFixedDiscount   = "fixed_discount"
	RewardTypeCredit          = "credit"
	RewardTypeCash            = "cash"
	RewardTypeGiftCard        = "gift_card"
	RewardTypeFreeService     = "free_service"
)

const (
	RewardRecipientReferrer = "referrer"
	RewardRecipientReferee  = "referee"
)

// Lead ENUMs
const (
	LeadStatusNew          = "new"
	LeadStatusContacted    = "contacted"
	LeadStatusEngaged      = "engaged"
	LeadStatusQualified    = "qualified"
	LeadStatusConverted    = "converted"
	LeadStatusLost         = "lost"
	LeadStatusUnresponsive = "unresponsive"
)

const (
	LeadSourceWebsite   = "website"
	LeadSourceReferral  = "referral"
	LeadSourceGoogleAds = "google_ads"
	LeadSourceFacebook  = "facebook"
	LeadSourceWalkIn    = "walk_in"
	LeadSourcePhone     = "phone"
	LeadSourceEvent     = "event"
	LeadSourceOther     = "other"
)

const (
	LeadActivityContactAttempt = "contact_attempt"
	LeadActivityNote           = "note"
	LeadActivityStatusChange   = "status_change"
	LeadActivitySequenceEvent  = "sequence_event"
)

// Nurture sequence ENUMs
const (
	SequenceStatusDraft     = "draft"
	SequenceStatusActive    = "active"
	SequenceStatusPaused    = "paused"
	SequenceStatusCompleted = "completed"
	SequenceStatusCancelled = "cancelled"
)

const (
	StepActionSendEmail   = "send_email"
	StepActionSendSMS     = "send_sms"
	StepActionCreateTask  = "create_task"
	StepActionUpdateScore = "update_score"
)

const (
	SequenceTriggerLeadCreated = "lead_created"
	SequenceTriggerScoreRange  = "score_range"
	SequenceTriggerManual      = "manual"
)

// Review request ENUMs
const (
	ReviewStatusPending  = "pending"
	ReviewStatusSent     = "sent"
	ReviewStatusClicked  = "clicked"
	ReviewStatusReviewed = "reviewed"
	ReviewStatusDeclined = "declined"
	ReviewStatusFailed   = "failed"
)

const (
	ReviewPlatformGoogle       = "google"
	ReviewPlatformYelp         = "yelp"
	ReviewPlatformFacebook     = "facebook"
	ReviewPlatformHealthgrades = "healthgrades"
)

const (
	ReviewChannelEmail = "email"
	ReviewChannelSMS   = "sms"
)

// Campaign ENUMs
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusScheduled = "scheduled"
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
	CampaignStatusCancelled = "cancelled"
)

const (
	CampaignTypeGoogleAds   = "google_ads"
	CampaignTypeFacebookAds = "facebook_ads"
	CampaignTypeEmail       = "email"
	CampaignTypePrint       = "print"
	CampaignTypeEvent       = "event"
	CampaignTypeOther       = "other"
)
