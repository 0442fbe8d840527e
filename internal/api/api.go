package api

import (
	campaignHandler "growth-server/internal/campaigns/handler"
	leadHandler "growth-server/internal/leads/handler"
	nurtureHandler "growth-server/internal/nurture/handler"
	referralHandler "growth-server/internal/referrals/handler"
	reviewHandler "growth-server/internal/reviews/handler"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type API struct {
	router          *gin.RouterGroup
	referralHandler referralHandler.Handler
	leadHandler     leadHandler.Handler
	nurtureHandler  nurtureHandler.Handler
	reviewHandler   reviewHandler.Handler
	campaignHandler campaignHandler.Handler
}

func New(
	router *gin.RouterGroup,
	referralHandler referralHandler.Handler,
	leadHandler leadHandler.Handler,
	nurtureHandler nurtureHandler.Handler,
	reviewHandler reviewHandler.Handler,
	campaignHandler campaignHandler.Handler,
) API {
	return API{
		router:          router,
		referralHandler: referralHandler,
		leadHandler:     leadHandler,
		nurtureHandler:  nurtureHandler,
		reviewHandler:   reviewHandler,
		campaignHandler: campaignHandler,
	}
}

// OrganizationMiddleware resolves the tenant from the X-Organization-ID
// header and stores it on the gin context for handlers.
func OrganizationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		orgIDStr := c.GetHeader("X-Organization-ID")
		if orgIDStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing organization id"})
			return
		}
		if _, err := uuid.Parse(orgIDStr); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
			return
		}
		c.Set("Organization-ID", orgIDStr)
		c.Next()
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api/v1", OrganizationMiddleware())
	{
		programGroup := apiGroup.Group("/referral-programs")
		programGroup.POST("", a.referralHandler.HandleCreateProgram)

		referralGroup := apiGroup.Group("/referrals")
		referralGroup.POST("", a.referralHandler.HandleCreateReferral)
		referralGroup.GET("", a.referralHandler.HandleListReferrals)
		referralGroup.GET("/statistics", a.referralHandler.HandleGetStatistics)
		referralGroup.GET("/top-referrers", a.referralHandler.HandleGetTopReferrers)
		referralGroup.POST("/link", a.referralHandler.HandleLinkReferee)
		referralGroup.GET("/:referral_id", a.referralHandler.HandleGetReferral)
		referralGroup.POST("/:referral_id/complete", a.referralHandler.HandleCompleteReferral)
		referralGroup.POST("/:referral_id/cancel", a.referralHandler.HandleCancelReferral)

		leadGroup := apiGroup.Group("/leads")
		leadGroup.POST("", a.leadHandler.HandleCreateLead)
		leadGroup.GET("", a.leadHandler.HandleListLeads)
		leadGroup.GET("/follow-ups-due", a.leadHandler.HandleGetFollowUpsDue)
		leadGroup.GET("/:lead_id", a.leadHandler.HandleGetLead)
		leadGroup.PUT("/:lead_id/status", a.leadHandler.HandleUpdateStatus)
		leadGroup.POST("/:lead_id/contact-attempts", a.leadHandler.HandleLogContactAttempt)
		leadGroup.POST("/:lead_id/notes", a.leadHandler.HandleAddNote)
		leadGroup.PUT("/:lead_id/follow-up", a.leadHandler.HandleSetFollowUp)
		leadGroup.POST("/:lead_id/convert", a.leadHandler.HandleConvertToPatient)
		leadGroup.POST("/:lead_id/opt-out", a.leadHandler.HandleMarkOptedOut)
		leadGroup.GET("/:lead_id/activities", a.leadHandler.HandleListActivities)
		leadGroup.POST("/:lead_id/advance", a.nurtureHandler.HandleAdvanceLead)

		sequenceGroup := apiGroup.Group("/nurture-sequences")
		sequenceGroup.POST("", a.nurtureHandler.HandleCreateSequence)
		sequenceGroup.GET("", a.nurtureHandler.HandleListSequences)
		sequenceGroup.GET("/:sequence_id", a.nurtureHandler.HandleGetSequence)
		sequenceGroup.POST("/:sequence_id/steps", a.nurtureHandler.HandleAddStep)
		sequenceGroup.POST("/:sequence_id/activate", a.nurtureHandler.HandleActivateSequence)
		sequenceGroup.POST("/:sequence_id/pause", a.nurtureHandler.HandlePauseSequence)
		sequenceGroup.POST("/:sequence_id/resume", a.nurtureHandler.HandleResumeSequence)
		sequenceGroup.POST("/:sequence_id/enroll", a.nurtureHandler.HandleEnrollLead)

		reviewGroup := apiGroup.Group("/review-requests")
		reviewGroup.POST("", a.reviewHandler.HandleCreateReviewRequest)
		reviewGroup.GET("/statistics", a.reviewHandler.HandleGetStatistics)
		reviewGroup.GET("/due", a.reviewHandler.HandleGetDueRequests)
		reviewGroup.GET("/:request_id", a.reviewHandler.HandleGetReviewRequest)
		reviewGroup.POST("/:request_id/send", a.reviewHandler.HandleSendReviewRequest)
		reviewGroup.POST("/:request_id/click", a.reviewHandler.HandleTrackClick)
		reviewGroup.POST("/:request_id/reviewed", a.reviewHandler.HandleRecordReview)
		reviewGroup.POST("/:request_id/decline", a.reviewHandler.HandleDeclineRequest)

		campaignGroup := apiGroup.Group("/campaigns")
		campaignGroup.POST("", a.campaignHandler.HandleCreateCampaign)
		campaignGroup.GET("", a.campaignHandler.HandleListCampaigns)
		campaignGroup.GET("/top", a.campaignHandler.HandleGetTopCampaigns)
		campaignGroup.GET("/:campaign_id", a.campaignHandler.HandleGetCampaign)
		campaignGroup.PUT("/:campaign_id/status", a.campaignHandler.HandleUpdateStatus)
		campaignGroup.POST("/:campaign_id/impressions", a.campaignHandler.HandleRecordImpressions)
		campaignGroup.POST("/:campaign_id/clicks", a.campaignHandler.HandleRecordClicks)
		campaignGroup.PUT("/:campaign_id/spend", a.campaignHandler.HandleUpdateSpend)
		campaignGroup.GET("/:campaign_id/metrics", a.campaignHandler.HandleGetMetrics)
		campaignGroup.POST("/:campaign_id/landing-pages", a.campaignHandler.HandleCreateLandingPage)
		campaignGroup.GET("/:campaign_id/landing-pages", a.campaignHandler.HandleListLandingPages)

		pageGroup := apiGroup.Group("/landing-pages")
		pageGroup.GET("/:slug", a.campaignHandler.HandleGetLandingPage)
		pageGroup.POST("/:page_id/views", a.campaignHandler.HandleRecordPageView)
		pageGroup.POST("/:page_id/submissions", a.campaignHandler.HandleRecordPageSubmission)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
