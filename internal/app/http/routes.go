package routes

import (
	adminapi "cafe-platform/internal/api/admin"
	analyticsapi "cafe-platform/internal/api/analytics"
	authapi "cafe-platform/internal/api/auth"
	billingapi "cafe-platform/internal/api/billing"
	cafesapi "cafe-platform/internal/api/cafes"
	campaignsapi "cafe-platform/internal/api/campaigns"
	hashtagsapi "cafe-platform/internal/api/hashtags"
	leadsapi "cafe-platform/internal/api/leads"
	plansapi "cafe-platform/internal/api/plans"
	socialapi "cafe-platform/internal/api/social"
	webhookapi "cafe-platform/internal/api/webhook"
	"cafe-platform/internal/app/http/middleware"

	"cafe-platform/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(r *gin.Engine) {
	// Signature-verified, no session
	r.POST("/webhook/social", webhookapi.Receive)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/auth/register", authapi.Register)
	public.POST("/auth/login", authapi.Login)
	public.GET("/plans", plansapi.ListPlans)

	if config.GoogleEnabled() {
		public.GET("/auth/google", authapi.GoogleStart)
		public.GET("/auth/google/callback", authapi.GoogleCallback)
	}

	// Authenticated cafe routes
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())

	auth.POST("/auth/change-password", authapi.ChangePassword)

	auth.GET("/cafes/me", cafesapi.GetMyCafe)
	auth.PUT("/cafes/me", cafesapi.UpdateMyCafe)

	auth.POST("/plans/subscribe", plansapi.Subscribe)
	auth.POST("/payments/process", billingapi.ProcessPayment)
	auth.GET("/payments/history", billingapi.PaymentHistory)

	auth.GET("/social/posts", socialapi.ListPosts)
	auth.POST("/social/posts", socialapi.CreatePost)
	auth.POST("/social/generate-content", socialapi.GenerateContent)
	auth.POST("/social/generate-advanced-content", socialapi.GenerateAdvancedContent)
	auth.POST("/social/schedule", socialapi.SchedulePost)
	auth.GET("/social/analytics", socialapi.PostAnalytics)

	auth.GET("/campaigns", campaignsapi.ListCampaigns)
	auth.POST("/campaigns", campaignsapi.CreateCampaign)
	auth.GET("/campaigns/:id", campaignsapi.GetCampaign)
	auth.PUT("/campaigns/:id", campaignsapi.UpdateCampaign)
	auth.DELETE("/campaigns/:id", campaignsapi.DeleteCampaign)
	auth.POST("/campaigns/:id/start", campaignsapi.StartCampaign)
	auth.POST("/campaigns/:id/pause", campaignsapi.PauseCampaign)
	auth.POST("/campaigns/:id/metrics", campaignsapi.RecordMetrics)
	auth.POST("/campaigns/:id/generate-content", campaignsapi.GenerateCampaignContent)

	auth.GET("/hashtags", hashtagsapi.ListHashtags)
	auth.POST("/hashtags/research", hashtagsapi.ResearchHashtags)
	auth.GET("/hashtags/recommendations", hashtagsapi.Recommendations)
	auth.GET("/hashtags/trending", hashtagsapi.TrendingHashtags)
	auth.PUT("/hashtags/:id", hashtagsapi.UpdateHashtag)
	auth.DELETE("/hashtags/:id", hashtagsapi.DeleteHashtag)

	auth.GET("/analytics/dashboard", analyticsapi.Dashboard)
	auth.GET("/analytics/detailed", analyticsapi.Detailed)
	auth.POST("/analytics/update", analyticsapi.Update)
	auth.GET("/analytics/social-media", analyticsapi.SocialMedia)
	auth.GET("/analytics/campaigns/:campaignId", analyticsapi.CampaignReport)
	auth.POST("/analytics/report", analyticsapi.Report)

	// Plan-gated
	subscribed := auth.Group("/")
	subscribed.Use(middleware.RequireActiveSubscription())
	subscribed.POST("/social/bulk-schedule", socialapi.BulkSchedule)

	// Operator routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.Dashboard)
	admin.GET("/cafes", cafesapi.ListCafes)
	admin.POST("/plans", plansapi.CreatePlan)
	admin.POST("/campaigns/:id/status", adminapi.SetCampaignStatus)

	admin.GET("/leads", leadsapi.ListLeads)
	admin.POST("/leads", leadsapi.CreateLead)
	admin.GET("/leads/stats/overview", leadsapi.StatsOverview)
	admin.POST("/leads/scrape/google-maps", leadsapi.ScrapeGoogleMaps)
	admin.POST("/leads/import", leadsapi.ImportLeads)
	admin.GET("/leads/:id", leadsapi.GetLead)
	admin.PUT("/leads/:id", leadsapi.UpdateLead)
	admin.DELETE("/leads/:id", leadsapi.DeleteLead)
}
