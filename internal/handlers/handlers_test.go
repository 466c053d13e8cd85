package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"inkwell/internal/db"
	"inkwell/internal/models"
	"inkwell/internal/router"
	"inkwell/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupServer wires the full router against a fresh in-memory database
// and returns a running test server.
func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	db.DB = conn

	// Responses are cached across requests; start every test cold
	utils.GetCache().Purge()

	if err := conn.Create(&models.Category{Title: "General", Slug: "general"}).Error; err != nil {
		t.Fatalf("Failed to seed category: %v", err)
	}

	r := gin.New()
	store := cookie.NewStore([]byte("test_secret"))
	// Test server speaks plain HTTP; a Secure cookie would never come back
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("inkwell_session", store))
	router.RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// newClient returns an http client with its own cookie jar, i.e. its own
// login session.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("Failed to create cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}

// signup registers a user through the API and leaves the client logged in
func signup(t *testing.T, srv *httptest.Server, client *http.Client, username string) {
	t.Helper()
	resp := doJSON(t, client, http.MethodPost, srv.URL+"/signup", map[string]interface{}{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret123",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Signup for %s returned %d", username, resp.StatusCode)
	}
}

// signupAdmin registers a user and promotes it to admin. The promotion
// happens in the store; the next request picks up the new role.
func signupAdmin(t *testing.T, srv *httptest.Server, client *http.Client, username string) {
	t.Helper()
	signup(t, srv, client, username)
	if err := db.DB.Model(&models.User{}).Where("username = ?", username).Update("role", "admin").Error; err != nil {
		t.Fatalf("Failed to promote %s: %v", username, err)
	}
}

func doJSON(t *testing.T, client *http.Client, method, url string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return out
}

func decodeList(t *testing.T, resp *http.Response) []interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out []interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return out
}

func uintField(m map[string]interface{}, key string) uint {
	if v, ok := m[key].(float64); ok {
		return uint(v)
	}
	return 0
}

func TestSignupAndLogin(t *testing.T) {
	srv := setupServer(t)

	client := newClient(t)
	signup(t, srv, client, "alice")

	// Fresh client, wrong password
	bad := newClient(t)
	resp := doJSON(t, bad, http.MethodPost, srv.URL+"/login", map[string]interface{}{
		"username": "alice",
		"password": "wrong",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Login with wrong password returned %d, want 401", resp.StatusCode)
	}

	// Correct password
	good := newClient(t)
	resp = doJSON(t, good, http.MethodPost, srv.URL+"/login", map[string]interface{}{
		"username": "alice",
		"password": "secret123",
	})
	payload := decodeMap(t, resp)
	if payload["username"] != "alice" {
		t.Errorf("Login payload username = %v", payload["username"])
	}
	if payload["is_admin"] != false {
		t.Errorf("Fresh signup serialized as admin: %v", payload["is_admin"])
	}
}

func TestSessionSurvivesPlainHTTP(t *testing.T) {
	srv := setupServer(t)

	alice := newClient(t)
	signup(t, srv, alice, "alice")

	// The jar must actually hold the session cookie after signup
	u, _ := url.Parse(srv.URL)
	if len(alice.Jar.Cookies(u)) == 0 {
		t.Fatal("No session cookie stored after signup over plain HTTP")
	}

	// And the next mutation must run as alice, not anonymous
	resp := doJSON(t, alice, http.MethodPost, srv.URL+"/posts/create/", map[string]interface{}{
		"title": "Session Check",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Post create after signup returned %d, want 201", resp.StatusCode)
	}
	payload := decodeMap(t, resp)
	author := payload["author"].(map[string]interface{})
	if author["username"] != "alice" {
		t.Errorf("author.username = %v, want alice", author["username"])
	}
}

func TestMutationRequiresAuth(t *testing.T) {
	srv := setupServer(t)

	anon := newClient(t)
	resp := doJSON(t, anon, http.MethodPost, srv.URL+"/posts/create/", map[string]interface{}{
		"title": "Hello World",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Anonymous post create returned %d, want 401", resp.StatusCode)
	}
}
