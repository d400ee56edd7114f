package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cafe-platform/config"
	"cafe-platform/database"
	"cafe-platform/internal/domain/cafes"
	"cafe-platform/internal/domain/users"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthDB(t *testing.T) *gorm.DB {
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
	if err := db.AutoMigrate(&users.User{}, &cafes.Cafe{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db
	return db
}

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/register", Register)
	r.POST("/auth/login", Login)
	return r
}

func postJSON(t *testing.T, r http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterDuplicateEmail(t *testing.T) {
	config.JWT_SECRET = "test-secret"
	setupAuthDB(t)
	r := authRouter()

	input := gin.H{
		"name":     "Bean There",
		"email":    "owner@beanthere.example.com",
		"password": "password123",
	}

	if w := postJSON(t, r, "/auth/register", input); w.Code != http.StatusCreated {
		t.Fatalf("first register status = %d, body %s", w.Code, w.Body.String())
	}

	w := postJSON(t, r, "/auth/register", input)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register status = %d, want 400", w.Code)
	}
	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != "User already exists" {
		t.Errorf("error = %q", resp["error"])
	}
}

func TestRegisterStorageFailureIsNotReportedAsDuplicate(t *testing.T) {
	config.JWT_SECRET = "test-secret"
	db := setupAuthDB(t)
	r := authRouter()

	// user insert succeeds, cafe insert fails; the transaction error is
	// not a duplicate and must not claim the account exists
	if err := db.Migrator().DropTable(&cafes.Cafe{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	w := postJSON(t, r, "/auth/register", gin.H{
		"name":     "Roast House",
		"email":    "owner@roasthouse.example.com",
		"password": "password123",
	})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500, body %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] == "User already exists" {
		t.Error("storage failure reported as duplicate account")
	}
}

func TestLoginDoesNotRevealSignInMethod(t *testing.T) {
	config.JWT_SECRET = "test-secret"
	db := setupAuthDB(t)
	r := authRouter()

	sub := "google-sub-1"
	google := users.User{
		Email:        "google@cafe.example.com",
		AuthProvider: "google",
		GoogleSub:    &sub,
		Role:         users.RoleCafe,
	}
	if err := db.Create(&google).Error; err != nil {
		t.Fatalf("seed google user: %v", err)
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	hashed := string(hash)
	local := users.User{
		Email:        "local@cafe.example.com",
		Password:     &hashed,
		AuthProvider: "local",
		Role:         users.RoleCafe,
	}
	if err := db.Create(&local).Error; err != nil {
		t.Fatalf("seed local user: %v", err)
	}

	googleAttempt := postJSON(t, r, "/auth/login", gin.H{
		"email":    google.Email,
		"password": "anything1",
	})
	wrongPassword := postJSON(t, r, "/auth/login", gin.H{
		"email":    local.Email,
		"password": "wrongpass1",
	})

	if googleAttempt.Code != http.StatusUnauthorized || wrongPassword.Code != http.StatusUnauthorized {
		t.Fatalf("statuses = %d, %d, want 401 for both", googleAttempt.Code, wrongPassword.Code)
	}
	if googleAttempt.Body.String() != wrongPassword.Body.String() {
		t.Errorf("responses differ, sign-in method leaked: %q vs %q",
			googleAttempt.Body.String(), wrongPassword.Body.String())
	}
}

func TestLoginSuccess(t *testing.T) {
	config.JWT_SECRET = "test-secret"
	db := setupAuthDB(t)
	r := authRouter()

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	hashed := string(hash)
	user := users.User{
		Email:        "owner@cafe.example.com",
		Password:     &hashed,
		AuthProvider: "local",
		Role:         users.RoleCafe,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if err := db.Create(&cafes.Cafe{UserID: user.ID, Name: "Brew Haven", Email: user.Email}).Error; err != nil {
		t.Fatalf("seed cafe: %v", err)
	}

	w := postJSON(t, r, "/auth/login", gin.H{
		"email":    user.Email,
		"password": "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string     `json:"token"`
		Cafe  cafes.Cafe `json:"cafe"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
	if resp.Cafe.Name != "Brew Haven" {
		t.Errorf("cafe = %q", resp.Cafe.Name)
	}
}
