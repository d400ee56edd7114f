package analytics

import (
	"net/http"
	"time"

	"cafe-platform/database"
	"cafe-platform/internal/api/tenant"
	domain "cafe-platform/internal/domain/analytics"
	"cafe-platform/internal/domain/campaigns"
	"cafe-platform/internal/domain/content"
	"cafe-platform/internal/domain/social"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

var estimator content.EngagementEstimator = content.NewRandomEstimator()

// Dashboard aggregates posts, campaigns and the latest snapshots into the
// cafe's overview. The three reads are independent and run in parallel.
func Dashboard(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}

	now := time.Now()
	windowStart := now.AddDate(0, 0, -30)
	prevWindowStart := now.AddDate(0, 0, -60)

	var (
		allPosts  []social.Post
		camps     []campaigns.Campaign
		snapshots []domain.Snapshot
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		// both the current window and the equal-length preceding one
		return database.DB.WithContext(ctx).
			Where("cafe_id = ? AND created_at >= ?", cafe.ID, prevWindowStart).
			Find(&allPosts).Error
	})
	g.Go(func() error {
		return database.DB.WithContext(ctx).
			Where("cafe_id = ?", cafe.ID).
			Find(&camps).Error
	})
	g.Go(func() error {
		return database.DB.WithContext(ctx).
			Where("cafe_id = ?", cafe.ID).
			Order("date desc").
			Limit(2).
			Find(&snapshots).Error
	})
	if err := g.Wait(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard data"})
		return
	}

	postsByStatus := map[string]int{}
	platformsUsed := map[string]bool{}
	currentPosts := 0
	previousPosts := 0
	for _, p := range allPosts {
		if p.CreatedAt.Before(windowStart) {
			previousPosts++
			continue
		}
		currentPosts++
		postsByStatus[p.Status]++
		platformsUsed[p.Platform] = true
	}

	activeCampaigns := 0
	var totals campaigns.Metrics
	for _, cp := range camps {
		if cp.Status == campaigns.StatusActive {
			activeCampaigns++
		}
		totals.Impressions += cp.Metrics.Impressions
		totals.Clicks += cp.Metrics.Clicks
		totals.Engagements += cp.Metrics.Engagements
		totals.Conversions += cp.Metrics.Conversions
		totals.Spend += cp.Metrics.Spend
	}

	growth := gin.H{
		"posts":     domain.Growth(float64(previousPosts), float64(currentPosts)),
		"visitors":  0.0,
		"followers": 0.0,
		"revenue":   0.0,
	}
	if len(snapshots) >= 1 {
		cur := snapshots[0]
		var prev domain.Snapshot
		if len(snapshots) == 2 {
			prev = snapshots[1]
		}
		growth["visitors"] = domain.Growth(float64(prev.Website.Visitors), float64(cur.Website.Visitors))
		growth["followers"] = domain.Growth(
			float64(prev.SocialMedia.Instagram.Followers+prev.SocialMedia.Facebook.Followers+prev.SocialMedia.Twitter.Followers),
			float64(cur.SocialMedia.Instagram.Followers+cur.SocialMedia.Facebook.Followers+cur.SocialMedia.Twitter.Followers),
		)
		growth["revenue"] = domain.Growth(prev.Business.Revenue, cur.Business.Revenue)
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": gin.H{
			"total_last_30_days": currentPosts,
			"by_status":          postsByStatus,
			"platforms_used":     len(platformsUsed),
		},
		"campaigns": gin.H{
			"total":       len(camps),
			"active":      activeCampaigns,
			"totals":      totals,
			"performance": campaigns.ComputePerformance(totals),
		},
		"growth":          growth,
		"recommendations": domain.Recommendations(currentPosts, activeCampaigns, len(platformsUsed)),
	})
}

// Detailed returns the stored snapshots inside a date range with a metric
// summary and per-date chart series.
func Detailed(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}

	period := c.DefaultQuery("period", domain.PeriodDaily)
	if !domain.ValidPeriod(period) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period"})
		return
	}

	end := time.Now()
	start := end.AddDate(0, 0, -30)
	if s := c.Query("start_date"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			start = t
		}
	}
	if s := c.Query("end_date"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			end = t
		}
	}

	var snapshots []domain.Snapshot
	if err := database.DB.
		Where("cafe_id = ? AND period = ? AND date BETWEEN ? AND ?", cafe.ID, period, start, end).
		Order("date asc").
		Find(&snapshots).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}

	type point struct {
		Date      time.Time `json:"date"`
		Visitors  int       `json:"visitors"`
		PageViews int       `json:"page_views"`
		Followers int       `json:"followers"`
		Revenue   float64   `json:"revenue"`
	}
	chart := make([]point, 0, len(snapshots))
	totalVisitors, totalPageViews := 0, 0
	totalRevenue := 0.0
	for _, s := range snapshots {
		followers := s.SocialMedia.Instagram.Followers + s.SocialMedia.Facebook.Followers + s.SocialMedia.Twitter.Followers
		chart = append(chart, point{
			Date:      s.Date,
			Visitors:  s.Website.Visitors,
			PageViews: s.Website.PageViews,
			Followers: followers,
			Revenue:   s.Business.Revenue,
		})
		totalVisitors += s.Website.Visitors
		totalPageViews += s.Website.PageViews
		totalRevenue += s.Business.Revenue
	}

	c.JSON(http.StatusOK, gin.H{
		"period": period,
		"range":  gin.H{"start": start, "end": end},
		"summary": gin.H{
			"snapshots":  len(snapshots),
			"visitors":   totalVisitors,
			"page_views": totalPageViews,
			"revenue":    totalRevenue,
		},
		"chart_data": chart,
	})
}

// Update upserts the snapshot for (date, period). Dates normalize to
// midnight UTC so one bucket exists per day.
func Update(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}

	var input struct {
		Date           *time.Time                 `json:"date"`
		Period         string                     `json:"period"`
		SocialMedia    *domain.SocialMediaStats   `json:"social_media"`
		Website        *domain.WebsiteStats       `json:"website"`
		Business       *domain.BusinessStats      `json:"business"`
		Campaigns      []domain.CampaignSnapshot  `json:"campaigns"`
		AutomatedPosts *domain.AutomatedPostStats `json:"automated_posts"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	period := input.Period
	if period == "" {
		period = domain.PeriodDaily
	}
	if !domain.ValidPeriod(period) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period"})
		return
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	var snap domain.Snapshot
	err := database.DB.Where("cafe_id = ? AND date = ? AND period = ?", cafe.ID, date, period).First(&snap).Error
	if err != nil {
		snap = domain.Snapshot{CafeID: cafe.ID, Date: date, Period: period}
	}

	if input.SocialMedia != nil {
		snap.SocialMedia = *input.SocialMedia
	}
	if input.Website != nil {
		snap.Website = *input.Website
	}
	if input.Business != nil {
		snap.Business = *input.Business
	}
	if input.Campaigns != nil {
		snap.Campaigns = input.Campaigns
	}
	if input.AutomatedPosts != nil {
		snap.AutomatedPosts = *input.AutomatedPosts
	}

	if err := database.DB.Save(&snap).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save analytics"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Analytics updated", "snapshot": snap})
}

// SocialMedia reports the latest per-platform stats plus audience
// insights from the estimator.
func SocialMedia(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}

	var snap domain.Snapshot
	found := database.DB.Where("cafe_id = ?", cafe.ID).Order("date desc").First(&snap).Error == nil

	out := gin.H{"audience": estimator.Audience()}
	if found {
		out["stats"] = snap.SocialMedia
		out["as_of"] = snap.Date
	} else {
		out["stats"] = domain.SocialMediaStats{}
	}
	c.JSON(http.StatusOK, out)
}

// CampaignReport is the per-campaign performance breakdown.
func CampaignReport(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}

	var campaign campaigns.Campaign
	if err := database.DB.Where("id = ? AND cafe_id = ?", c.Param("campaignId"), cafe.ID).First(&campaign).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"campaign":    campaign,
		"performance": campaigns.ComputePerformance(campaign.Metrics),
		"roi":         campaigns.ComputeROI(campaign.Metrics),
	})
}

// Report builds an on-demand summary for a date range.
func Report(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}

	var input struct {
		StartDate time.Time `json:"start_date" binding:"required"`
		EndDate   time.Time `json:"end_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.EndDate.Before(input.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be after start_date"})
		return
	}

	var (
		postCount    int64
		campaignList []campaigns.Campaign
		snapshots    []domain.Snapshot
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		return database.DB.WithContext(ctx).Model(&social.Post{}).
			Where("cafe_id = ? AND created_at BETWEEN ? AND ?", cafe.ID, input.StartDate, input.EndDate).
			Count(&postCount).Error
	})
	g.Go(func() error {
		return database.DB.WithContext(ctx).
			Where("cafe_id = ? AND created_at <= ?", cafe.ID, input.EndDate).
			Find(&campaignList).Error
	})
	g.Go(func() error {
		return database.DB.WithContext(ctx).
			Where("cafe_id = ? AND date BETWEEN ? AND ?", cafe.ID, input.StartDate, input.EndDate).
			Order("date asc").
			Find(&snapshots).Error
	})
	if err := g.Wait(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	var totals campaigns.Metrics
	for _, cp := range campaignList {
		totals.Impressions += cp.Metrics.Impressions
		totals.Clicks += cp.Metrics.Clicks
		totals.Conversions += cp.Metrics.Conversions
		totals.Spend += cp.Metrics.Spend
	}

	totalRevenue := 0.0
	totalVisitors := 0
	for _, s := range snapshots {
		totalRevenue += s.Business.Revenue
		totalVisitors += s.Website.Visitors
	}

	c.JSON(http.StatusOK, gin.H{
		"cafe_id":      cafe.ID,
		"range":        gin.H{"start": input.StartDate, "end": input.EndDate},
		"generated_at": time.Now().UTC(),
		"posts":        postCount,
		"campaigns": gin.H{
			"count":       len(campaignList),
			"totals":      totals,
			"performance": campaigns.ComputePerformance(totals),
		},
		"website": gin.H{"visitors": totalVisitors},
		"revenue": totalRevenue,
	})
}
