package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
)

// helper to perform requests with auth token
func performRequest(r http.Handler, method, path string, body io.Reader, token string, contentType string) *httptest.ResponseRecorder {
	// allow callers to pass nil for body safely
	req, _ := http.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func setupTestServer(t *testing.T) *gin.Engine {
	// integration tests are opt-in. Set DB_DSN_TEST=1 and DB_DSN to run them.
	if os.Getenv("DB_DSN_TEST") != "1" {
		t.Skip("integration tests are disabled; set DB_DSN_TEST=1 to enable")
	}
	gin.SetMode(gin.TestMode)
	jwtSecret = []byte("test-secret")
	initDB()
	r := gin.Default()
	setupRoutes(r)
	return r
}

func TestFullFlow(t *testing.T) {
	r := setupTestServer(t)

	// 1. Register user
	regBody, _ := json.Marshal(map[string]string{"username": "user1", "password": "pass123"})
	resp := performRequest(r, http.MethodPost, "/register", bytes.NewBuffer(regBody), "", "application/json")
	if resp.Code != 200 && resp.Code != 409 {
		b := resp.Body.String()
		t.Fatalf("register failed status=%d body=%s", resp.Code, b)
	}

	// 2. Login
	loginBody, _ := json.Marshal(map[string]string{"username": "user1", "password": "pass123"})
	resp = performRequest(r, http.MethodPost, "/login", bytes.NewBuffer(loginBody), "", "application/json")
	if resp.Code != 200 {
		b := resp.Body.String()
		t.Fatalf("login failed status=%d body=%s", resp.Code, b)
	}
	var loginResp map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &loginResp)
	token, _ := loginResp["token"].(string)
	if token == "" {
		t.Fatalf("empty token in login response: %+v", loginResp)
	}

	// 3. Import a scan report
	report := map[string]any{
		"disk_data": []map[string]any{{
			"set_name":         "Swing Jazz",
			"partition_number": 2,
			"rarity":           "S",
			"current_level":    "9",
			"max_level":        "15",
			"base_stat_name":   "ATK",
			"base_stat_value":  "221",
			"random_stats":     []map[string]any{{"stat_name": "DEF", "stat_value": "15"}},
		}},
		"wengine_data":   []map[string]any{},
		"character_data": []map[string]any{},
	}
	repBody, _ := json.Marshal(report)
	resp = performRequest(r, http.MethodPost, "/scans", bytes.NewBuffer(repBody), token, "application/json")
	if resp.Code != 200 {
		b := resp.Body.String()
		t.Fatalf("import scan failed status=%d body=%s", resp.Code, b)
	}
	var importResp map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &importResp)
	if _, ok := importResp["id"]; !ok {
		t.Fatalf("import response missing id: %+v", importResp)
	}

	// 4. List scans
	resp = performRequest(r, http.MethodGet, "/scans", nil, token, "")
	if resp.Code != 200 {
		b := resp.Body.String()
		t.Fatalf("list scans failed status=%d body=%s", resp.Code, b)
	}
	var list []map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &list)
	if len(list) == 0 {
		t.Fatalf("expected at least one scan run in list")
	}
	if got, _ := list[0]["disk_count"].(float64); got != 1 {
		t.Fatalf("expected disk_count 1 got %v", list[0]["disk_count"])
	}

	// 5. Latest scan returns the full report payload
	resp = performRequest(r, http.MethodGet, "/scans/latest", nil, token, "")
	if resp.Code != 200 {
		b := resp.Body.String()
		t.Fatalf("latest scan failed status=%d body=%s", resp.Code, b)
	}
	var latest map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &latest)
	if _, ok := latest["report"]; !ok {
		t.Fatalf("latest scan missing report payload: %+v", latest)
	}

	// 6. Me endpoint
	resp = performRequest(r, http.MethodGet, "/me", nil, token, "")
	if resp.Code != 200 {
		b := resp.Body.String()
		t.Fatalf("me failed status=%d body=%s", resp.Code, b)
	}

	// 7. Unauthorized access to protected endpoint should be 401
	unauth := performRequest(r, http.MethodGet, "/scans", nil, "", "")
	if unauth.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unauthorized list scans got %d", unauth.Code)
	}
}

func TestMigrateCommand(t *testing.T) {
	if os.Getenv("DB_DSN_TEST") != "1" {
		t.Skip("integration tests are disabled; set DB_DSN_TEST=1 to enable")
	}
	initDB()
}
