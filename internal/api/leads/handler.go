package leads

import (
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"cafe-platform/database"
	domain "cafe-platform/internal/domain/leads"

	"github.com/gin-gonic/gin"
)

// ListLeads returns a page of prospects with optional filters.
func ListLeads(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	q := database.DB.Model(&domain.ContactLead{})
	if status := c.Query("status"); status != "" {
		q = q.Where("contact_status = ?", status)
	}
	if source := c.Query("source"); source != "" {
		q = q.Where("source = ?", source)
	}
	if bt := c.Query("business_type"); bt != "" {
		q = q.Where("business_type = ?", bt)
	}

	var total int64
	q.Count(&total)

	var rows []domain.ContactLead
	if err := q.Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leads"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leads": rows,
		"pagination": gin.H{
			"page":        page,
			"limit":       limit,
			"total":       total,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

func GetLead(c *gin.Context) {
	var lead domain.ContactLead
	if err := database.DB.Preload("AssignedTo").First(&lead, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}
	c.JSON(http.StatusOK, lead)
}

type leadInput struct {
	BusinessName     string                 `json:"business_name" binding:"required"`
	Email            string                 `json:"email" binding:"required,email"`
	Phone            string                 `json:"phone"`
	Address          string                 `json:"address"`
	Website          string                 `json:"website"`
	SocialMedia      domain.SocialLinks     `json:"social_media"`
	BusinessType     string                 `json:"business_type"`
	Source           string                 `json:"source"`
	Notes            string                 `json:"notes"`
	Tags             []string               `json:"tags"`
	Location         domain.Location        `json:"location"`
	BusinessHours    []domain.BusinessHours `json:"business_hours"`
	EstimatedRevenue float64                `json:"estimated_revenue"`
	EmployeeCount    int                    `json:"employee_count"`
}

func (in leadInput) toLead() domain.ContactLead {
	source := in.Source
	if source == "" {
		source = domain.SourceManual
	}
	businessType := in.BusinessType
	if businessType == "" {
		businessType = "cafe"
	}
	return domain.ContactLead{
		BusinessName:     in.BusinessName,
		Email:            in.Email,
		Phone:            in.Phone,
		Address:          in.Address,
		Website:          in.Website,
		SocialMedia:      in.SocialMedia,
		BusinessType:     businessType,
		Source:           source,
		ContactStatus:    domain.StatusNew,
		Notes:            in.Notes,
		Tags:             in.Tags,
		Location:         in.Location,
		BusinessHours:    in.BusinessHours,
		EstimatedRevenue: in.EstimatedRevenue,
		EmployeeCount:    in.EmployeeCount,
	}
}

// isDuplicate matches an existing lead by email, or by business name plus
// phone when both are present.
func isDuplicate(lead domain.ContactLead) bool {
	var count int64
	q := database.DB.Model(&domain.ContactLead{}).Where("email = ?", lead.Email)
	if lead.Phone != "" {
		q = q.Or("business_name = ? AND phone = ?", lead.BusinessName, lead.Phone)
	}
	q.Count(&count)
	return count > 0
}

func CreateLead(c *gin.Context) {
	var input leadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Source != "" && !domain.ValidSource(input.Source) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid source"})
		return
	}

	lead := input.toLead()
	if isDuplicate(lead) {
		c.JSON(http.StatusConflict, gin.H{"error": "Lead already exists"})
		return
	}

	if err := database.DB.Create(&lead).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create lead"})
		return
	}
	c.JSON(http.StatusCreated, lead)
}

func UpdateLead(c *gin.Context) {
	var lead domain.ContactLead
	if err := database.DB.First(&lead, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	var input struct {
		ContactStatus    *string    `json:"contact_status"`
		Notes            *string    `json:"notes"`
		Phone            *string    `json:"phone"`
		AssignedToID     *uint      `json:"assigned_to_id"`
		Tags             []string   `json:"tags"`
		NextFollowUpDate *time.Time `json:"next_follow_up_date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.ContactStatus != nil {
		if !domain.ValidStatus(*input.ContactStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact status"})
			return
		}
		if lead.ContactStatus == domain.StatusNew && *input.ContactStatus != domain.StatusNew {
			now := time.Now()
			lead.LastContactDate = &now
		}
		lead.ContactStatus = *input.ContactStatus
	}
	if input.Notes != nil {
		lead.Notes = *input.Notes
	}
	if input.Phone != nil {
		lead.Phone = *input.Phone
	}
	if input.AssignedToID != nil {
		lead.AssignedToID = input.AssignedToID
	}
	if input.Tags != nil {
		lead.Tags = input.Tags
	}
	if input.NextFollowUpDate != nil {
		lead.NextFollowUpDate = input.NextFollowUpDate
	}

	if err := database.DB.Save(&lead).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update lead"})
		return
	}
	c.JSON(http.StatusOK, lead)
}

func DeleteLead(c *gin.Context) {
	res := database.DB.Delete(&domain.ContactLead{}, c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lead"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lead deleted successfully"})
}

var mockCafeNames = []string{
	"The Daily Grind", "Bean Scene", "Roast & Toast", "Mocha Moments",
	"Brew Haven", "Caffeine Corner", "The Steamy Cup", "Grounds for Celebration",
}

// ScrapeGoogleMaps fabricates prospects for an area. A stand-in until a
// real places API integration lands.
func ScrapeGoogleMaps(c *gin.Context) {
	var input struct {
		Location string `json:"location" binding:"required"`
		Radius   int    `json:"radius"`
		Limit    int    `json:"limit"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	limit := input.Limit
	if limit < 1 || limit > len(mockCafeNames) {
		limit = 5
	}

	created := make([]domain.ContactLead, 0, limit)
	skipped := 0
	for i := 0; i < limit; i++ {
		name := mockCafeNames[i]
		lead := domain.ContactLead{
			BusinessName:  name,
			Email:         fmt.Sprintf("contact%d@cafe%d.example.com", rand.Intn(1000), i),
			Phone:         fmt.Sprintf("+1-555-%04d", rand.Intn(10000)),
			Address:       fmt.Sprintf("%d Main St, %s", rand.Intn(999)+1, input.Location),
			BusinessType:  "cafe",
			Source:        domain.SourceGoogleMaps,
			ContactStatus: domain.StatusNew,
			Location: domain.Location{
				City: input.Location,
				Lat:  40 + rand.Float64()*10,
				Lng:  -120 + rand.Float64()*40,
			},
			EstimatedRevenue: float64(rand.Intn(400000) + 100000),
			EmployeeCount:    rand.Intn(20) + 2,
		}
		if isDuplicate(lead) {
			skipped++
			continue
		}
		if err := database.DB.Create(&lead).Error; err != nil {
			skipped++
			continue
		}
		created = append(created, lead)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Scraping completed",
		"location": input.Location,
		"created":  len(created),
		"skipped":  skipped,
		"leads":    created,
	})
}

// ImportLeads bulk-inserts prospects, skipping duplicates and collecting
// per-item errors instead of failing the batch.
func ImportLeads(c *gin.Context) {
	var input struct {
		Leads []leadInput `json:"leads" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imported := 0
	skipped := 0
	errs := []string{}
	for i, item := range input.Leads {
		if item.BusinessName == "" || item.Email == "" {
			errs = append(errs, fmt.Sprintf("row %d: business_name and email are required", i))
			continue
		}
		lead := item.toLead()
		if isDuplicate(lead) {
			skipped++
			continue
		}
		if err := database.DB.Create(&lead).Error; err != nil {
			errs = append(errs, fmt.Sprintf("row %d: %s", i, err.Error()))
			continue
		}
		imported++
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Import completed",
		"imported": imported,
		"skipped":  skipped,
		"errors":   errs,
	})
}

// StatsOverview summarizes the pipeline: totals by status, source
// breakdown and a 12-month acquisition trend.
func StatsOverview(c *gin.Context) {
	var total int64
	database.DB.Model(&domain.ContactLead{}).Count(&total)

	type statusCount struct {
		ContactStatus string `json:"status"`
		Count         int64  `json:"count"`
	}
	var byStatus []statusCount
	database.DB.Model(&domain.ContactLead{}).
		Select("contact_status, count(*) as count").
		Group("contact_status").
		Scan(&byStatus)

	type sourceCount struct {
		Source string `json:"source"`
		Count  int64  `json:"count"`
	}
	var bySource []sourceCount
	database.DB.Model(&domain.ContactLead{}).
		Select("source, count(*) as count").
		Group("source").
		Scan(&bySource)

	type monthCount struct {
		Month string `json:"month"`
		Count int64  `json:"count"`
	}
	var trend []monthCount
	database.DB.Model(&domain.ContactLead{}).
		Select("to_char(created_at, 'YYYY-MM') as month, count(*) as count").
		Where("created_at >= ?", time.Now().AddDate(0, -12, 0)).
		Group("to_char(created_at, 'YYYY-MM')").
		Order("month asc").
		Scan(&trend)

	var converted int64
	database.DB.Model(&domain.ContactLead{}).
		Where("contact_status = ?", domain.StatusConverted).
		Count(&converted)

	conversionRate := 0.0
	if total > 0 {
		conversionRate = float64(converted) / float64(total) * 100
	}

	c.JSON(http.StatusOK, gin.H{
		"total":           total,
		"by_status":       byStatus,
		"by_source":       bySource,
		"monthly_trend":   trend,
		"converted":       converted,
		"conversion_rate": conversionRate,
	})
}
