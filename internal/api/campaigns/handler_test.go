package campaigns

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"cafe-platform/database"
	"cafe-platform/internal/domain/cafes"
	domain "cafe-platform/internal/domain/campaigns"
	"cafe-platform/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCampaignDB(t *testing.T) (*gorm.DB, cafes.Cafe) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&users.User{}, &cafes.Cafe{}, &domain.Campaign{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db

	user := users.User{Email: "owner@cafe.example.com", AuthProvider: "local", Role: users.RoleCafe}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	cafe := cafes.Cafe{UserID: user.ID, Name: "Brew Haven", Email: user.Email}
	if err := db.Create(&cafe).Error; err != nil {
		t.Fatalf("seed cafe: %v", err)
	}
	return db, cafe
}

func campaignRouter(userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", userID) })
	r.POST("/campaigns/:id/metrics", RecordMetrics)
	return r
}

func postMetrics(t *testing.T, r http.Handler, campaignID uint, delta domain.MetricsDelta) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(delta)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/campaigns/%d/metrics", campaignID), bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRecordMetricsReturnsUpdatedCounters(t *testing.T) {
	db, cafe := setupCampaignDB(t)
	r := campaignRouter(cafe.UserID)

	campaign := domain.Campaign{
		CafeID: cafe.ID,
		Name:   "Summer Push",
		Type:   domain.TypeSocialMedia,
		Status: domain.StatusActive,
	}
	if err := db.Create(&campaign).Error; err != nil {
		t.Fatalf("seed campaign: %v", err)
	}

	w := postMetrics(t, r, campaign.ID, domain.MetricsDelta{Impressions: 100, Clicks: 10, Spend: 5})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Campaign domain.Campaign `json:"campaign"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Campaign.Metrics.Impressions != 100 || resp.Campaign.Metrics.Clicks != 10 {
		t.Errorf("metrics = %+v, want impressions 100 clicks 10", resp.Campaign.Metrics)
	}

	// the response must reflect the stored counters, not the values read
	// before the increment
	w = postMetrics(t, r, campaign.ID, domain.MetricsDelta{Impressions: 50})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Campaign.Metrics.Impressions != 150 {
		t.Errorf("impressions = %d, want 150", resp.Campaign.Metrics.Impressions)
	}
}

func TestRecordMetricsRejectsNegativeDelta(t *testing.T) {
	db, cafe := setupCampaignDB(t)
	r := campaignRouter(cafe.UserID)

	campaign := domain.Campaign{
		CafeID: cafe.ID,
		Name:   "Summer Push",
		Type:   domain.TypeSocialMedia,
		Status: domain.StatusActive,
	}
	if err := db.Create(&campaign).Error; err != nil {
		t.Fatalf("seed campaign: %v", err)
	}

	w := postMetrics(t, r, campaign.ID, domain.MetricsDelta{Clicks: -1})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var stored domain.Campaign
	if err := db.First(&stored, campaign.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.Metrics.Clicks != 0 {
		t.Errorf("clicks = %d, negative delta was applied", stored.Metrics.Clicks)
	}
}
