package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func sanitizeRouter() (*gin.Engine, *map[string]interface{}) {
	gin.SetMode(gin.TestMode)
	captured := map[string]interface{}{}
	r := gin.New()
	r.POST("/echo", SanitizeAndCleanInputMiddleware(), func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		json.Unmarshal(body, &captured)
		c.JSON(http.StatusOK, captured)
	})
	return r, &captured
}

func TestSanitizeStripsMarkup(t *testing.T) {
	r, captured := sanitizeRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo",
		strings.NewReader(`{"name":"<script>alert(1)</script>Bean There","count":3}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := (*captured)["name"]; got != "Bean There" {
		t.Errorf("name = %q, want markup stripped", got)
	}
	if got := (*captured)["count"]; got != float64(3) {
		t.Errorf("non-string field changed: %v", got)
	}
}

func TestSanitizeEmptyBodyPassesThrough(t *testing.T) {
	r, _ := sanitizeRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestSanitizeMalformedJSONRejected(t *testing.T) {
	r, _ := sanitizeRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"broken`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
