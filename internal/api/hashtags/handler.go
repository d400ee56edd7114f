package hashtags

import (
	"net/http"
	"time"

	"cafe-platform/database"
	"cafe-platform/internal/api/tenant"
	domain "cafe-platform/internal/domain/hashtags"

	"github.com/gin-gonic/gin"
)

// metricSource fabricates research metrics until a real listening API is
// wired in. Tests swap in a deterministic source.
var metricSource domain.MetricSource = domain.NewRandomMetricSource()

// ListHashtags returns the cafe's researched hashtags with optional
// platform/category/trending filters.
func ListHashtags(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}

	q := database.DB.Where("cafe_id = ?", cafe.ID)
	if platform := c.Query("platform"); platform != "" {
		q = q.Where("platform = ?", platform)
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	if c.Query("trending") == "true" {
		q = q.Where("trending_is_currently_trending = ?", true)
	}

	var rows []domain.Research
	if err := q.Order("metric_popularity desc").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hashtags"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ResearchHashtags scores the candidate set for every (platform, keyword)
// pair and upserts one record per (platform, hashtag). Re-running research
// refreshes metrics and bumps last_updated instead of duplicating rows.
func ResearchHashtags(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}

	var input struct {
		Keywords  []string `json:"keywords" binding:"required"`
		Platforms []string `json:"platforms"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(input.Platforms) == 0 {
		input.Platforms = []string{domain.PlatformInstagram}
	}
	for _, p := range input.Platforms {
		if !domain.ValidPlatform(p) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid platform: " + p})
			return
		}
	}

	now := time.Now()
	results := make([]domain.Research, 0)
	for _, platform := range input.Platforms {
		for _, keyword := range input.Keywords {
			for _, tag := range domain.Candidates(keyword) {
				scored := metricSource.Score(tag, keyword, platform)

				var row domain.Research
				err := database.DB.Where(
					"cafe_id = ? AND platform = ? AND hashtag = ?",
					cafe.ID, platform, tag,
				).First(&row).Error
				if err != nil {
					row = domain.Research{
						CafeID:   cafe.ID,
						Platform: platform,
						Hashtag:  tag,
					}
				}

				row.Metrics = scored.Metrics
				row.Trending = scored.Trending
				row.SEOValue = scored.SEOValue
				row.Recommendation = scored.Recommendation
				row.RelatedHashtags = domain.RelatedHashtags(tag)
				row.Category = domain.Categorize(tag)
				row.LastUpdated = now

				if err := database.DB.Save(&row).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save research"})
					return
				}
				results = append(results, row)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Research completed",
		"keywords":  input.Keywords,
		"platforms": input.Platforms,
		"count":     len(results),
		"hashtags":  results,
	})
}

// Recommendations bundles stored research into ready-to-use sets plus an
// aggregate analytics block.
func Recommendations(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}

	platform := c.Query("platform")
	if platform == "" {
		platform = domain.PlatformInstagram
	}
	recType := c.Query("type")
	if recType == "" {
		recType = domain.TypeBalanced
	}

	q := database.DB.Where("cafe_id = ? AND platform = ? AND rec_should_use = ?", cafe.ID, platform, true)
	switch recType {
	case domain.TypeTrending:
		q = q.Where("trending_is_currently_trending = ?", true)
	case domain.TypeLowCompetition:
		q = q.Where("metric_competition < ?", 40)
	case domain.TypeHighEngagement:
		q = q.Where("metric_engagement > ?", 5.0)
	case domain.TypeLocal:
		q = q.Where("category = ?", "local")
	}

	var rows []domain.Research
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recommendations"})
		return
	}

	domain.SortForType(rows, recType)
	if len(rows) > 20 {
		rows = rows[:20]
	}

	totalPop := 0
	totalComp := 0
	trendingCount := 0
	for _, r := range rows {
		totalPop += r.Metrics.Popularity
		totalComp += r.Metrics.Competition
		if r.Trending.IsCurrentlyTrending {
			trendingCount++
		}
	}
	analytics := gin.H{
		"total":          len(rows),
		"trending_count": trendingCount,
	}
	if len(rows) > 0 {
		analytics["avg_popularity"] = totalPop / len(rows)
		analytics["avg_competition"] = totalComp / len(rows)
	}

	c.JSON(http.StatusOK, gin.H{
		"recommendations": rows,
		"sets":            domain.BuildSets(rows),
		"analytics":       analytics,
	})
}

// UpdateHashtag edits the usage recommendation on one research record.
func UpdateHashtag(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}

	var row domain.Research
	if err := database.DB.Where("id = ? AND cafe_id = ?", c.Param("id"), cafe.ID).First(&row).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hashtag not found"})
		return
	}

	var input struct {
		ShouldUse *bool   `json:"should_use"`
		Frequency *string `json:"frequency"`
		Notes     *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.ShouldUse != nil {
		row.Recommendation.ShouldUse = *input.ShouldUse
	}
	if input.Frequency != nil {
		row.Recommendation.Frequency = *input.Frequency
	}
	if input.Notes != nil {
		row.Recommendation.Notes = *input.Notes
	}
	row.LastUpdated = time.Now()

	if err := database.DB.Save(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update hashtag"})
		return
	}
	c.JSON(http.StatusOK, row)
}

// DeleteHashtag removes one research record.
func DeleteHashtag(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}

	res := database.DB.Where("id = ? AND cafe_id = ?", c.Param("id"), cafe.ID).Delete(&domain.Research{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete hashtag"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hashtag not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hashtag deleted successfully"})
}

// TrendingHashtags returns the platform-wide trending feed. Isolated from
// the cafe's stored research.
func TrendingHashtags(c *gin.Context) {
	platform := c.Query("platform")
	if platform == "" {
		platform = domain.PlatformInstagram
	}

	feed := domain.NewRandomMetricSource().TrendingFeed(platform)
	c.JSON(http.StatusOK, gin.H{
		"platform": platform,
		"trending": feed,
	})
}
