package bootstrap

import (
	"context"
	"fmt"
	"growth-server/internal/audit"
	"growth-server/internal/clients/mail"
	"growth-server/internal/clients/sms"
	"growth-server/internal/config"
	"growth-server/internal/jobs"
	"growth-server/internal/jobs/scheduler"
	"growth-server/internal/messaging"
	"growth-server/internal/observability"
	"growth-server/internal/store"

	campaignHandler "growth-server/internal/campaigns/handler"
	campaignProcessor "growth-server/internal/campaigns/processor"
	leadHandler "growth-server/internal/leads/handler"
	leadProcessor "growth-server/internal/leads/processor"
	nurtureHandler "growth-server/internal/nurture/handler"
	nurtureProcessor "growth-server/internal/nurture/processor"
	referralHandler "growth-server/internal/referrals/handler"
	referralProcessor "growth-server/internal/referrals/processor"
	reviewHandler "growth-server/internal/reviews/handler"
	reviewProcessor "growth-server/internal/reviews/processor"

	"github.com/google/uuid"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	ReferralHandler referralHandler.Handler
	LeadHandler     leadHandler.Handler
	NurtureHandler  nurtureHandler.Handler
	ReviewHandler   reviewHandler.Handler
	CampaignHandler campaignHandler.Handler

	// Background driver
	Scheduler *scheduler.Scheduler
}

// referralCompleterAdapter bridges the lead conversion cascade onto the
// referral processor
type referralCompleterAdapter struct {
	referrals *referralProcessor.ReferralProcessor
}

func (a referralCompleterAdapter) CompleteReferralForLead(ctx context.Context, orgID, referralID, patientID uuid.UUID, conversionValue *float64) error {
	_, err := a.referrals.CompleteReferral(ctx, orgID, referralProcessor.CompleteReferralRequest{
		ReferralID:      referralID,
		ConversionValue: conversionValue,
	})
	return err
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize delivery clients
	mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create resend client: %w", err)
	}
	smsClient := sms.NewTwilioClient(
		cfg.Services.TwilioAccountSID,
		cfg.Services.TwilioAuthToken,
		cfg.Services.TwilioFromNumber,
		logger,
	)
	messenger := messaging.New(mailClient, smsClient, cfg.Services.DefaultEmailSender, logger)

	// Initialize audit side channel
	auditor := audit.New(&deps.Store, logger)

	// Initialize referral processor and handler
	referralProc := referralProcessor.New(&deps.Store, auditor, logger)
	deps.ReferralHandler = referralHandler.New(referralProc, logger, cfg.Services.WebAppURI)

	// Initialize campaign processor and handler
	campaignProc := campaignProcessor.New(&deps.Store, auditor, logger)
	deps.CampaignHandler = campaignHandler.New(campaignProc, logger)

	// Initialize lead processor and handler
	deduplicator := leadProcessor.NewExactContactDeduplicator(&deps.Store)
	leadProc := leadProcessor.New(
		&deps.Store,
		deduplicator,
		referralCompleterAdapter{referrals: &referralProc},
		&campaignProc,
		auditor,
		logger,
	)
	deps.LeadHandler = leadHandler.New(leadProc, logger)

	// Initialize nurture processor and handler
	nurtureProc := nurtureProcessor.New(&deps.Store, messenger.ForFlow(messaging.FlowNurture), auditor, logger)
	deps.NurtureHandler = nurtureHandler.New(nurtureProc, logger)

	// Initialize review processor and handler
	reviewProc := reviewProcessor.New(&deps.Store, messenger.ForFlow(messaging.FlowReviewRequest), auditor, logger)
	deps.ReviewHandler = reviewHandler.New(reviewProc, logger)

	// Initialize the periodic drivers
	deps.Scheduler = scheduler.New(logger)
	deps.Scheduler.Register(jobs.NewNurtureAdvanceJob(&nurtureProc, logger,
		cfg.Driver.NurtureAdvanceInterval, cfg.Driver.BatchSize))
	deps.Scheduler.Register(jobs.NewReviewDispatchJob(&reviewProc, logger,
		cfg.Driver.ReviewDispatchInterval, cfg.Driver.BatchSize))

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	d.Store.Close()
}
