package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"finboard/pkg/config"

	"github.com/gin-gonic/gin"
)

// helper to perform requests, optionally with a session cookie
func performRequest(r http.Handler, method, path string, body io.Reader, cookie *http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func setupTestServer(t *testing.T) *gin.Engine {
	// integration tests are opt-in. Set FINBOARD_DB_TEST=1 and
	// FINBOARD_DATABASE_DSN to run them against a disposable Postgres.
	if os.Getenv("FINBOARD_DB_TEST") != "1" {
		t.Skip("integration tests are disabled; set FINBOARD_DB_TEST=1 to enable")
	}
	gin.SetMode(gin.TestMode)
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	r, err := newServer(cfg)
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	return r
}

func sessionCookieFrom(rec *httptest.ResponseRecorder) *http.Cookie {
	res := http.Response{Header: rec.Header()}
	for _, c := range res.Cookies() {
		if c.Name == sessionCookie {
			return c
		}
	}
	return nil
}

func TestAuthFlow(t *testing.T) {
	r := setupTestServer(t)
	email := fmt.Sprintf("alice+%d@x.com", time.Now().UnixNano())

	// 1. Register
	regBody, _ := json.Marshal(map[string]string{"name": "Alice", "email": email, "password": "pw123"})
	resp := performRequest(r, http.MethodPost, "/register", bytes.NewBuffer(regBody), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("register failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var profile map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &profile)
	if profile["email"] != email {
		t.Fatalf("unexpected register response: %+v", profile)
	}
	if _, leaked := profile["password"]; leaked {
		t.Fatalf("register response leaks password: %+v", profile)
	}

	// 2. Duplicate register conflicts
	resp = performRequest(r, http.MethodPost, "/register", bytes.NewBuffer(regBody), nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("duplicate register status=%d, want 409", resp.Code)
	}

	// 3. Login with wrong password and unknown email both 401
	for _, creds := range []map[string]string{
		{"email": email, "password": "wrongpw"},
		{"email": "nobody@x.com", "password": "anything"},
	} {
		body, _ := json.Marshal(creds)
		resp = performRequest(r, http.MethodPost, "/login", bytes.NewBuffer(body), nil)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("bad login status=%d, want 401", resp.Code)
		}
	}

	// 4. Login sets the session cookie
	loginBody, _ := json.Marshal(map[string]string{"email": email, "password": "pw123"})
	resp = performRequest(r, http.MethodPost, "/login", bytes.NewBuffer(loginBody), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("login failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	cookie := sessionCookieFrom(resp)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("login did not set the session cookie")
	}
	if !cookie.HttpOnly {
		t.Fatal("session cookie is not httpOnly")
	}

	// 5. Authenticated /me
	resp = performRequest(r, http.MethodGet, "/me", nil, cookie)
	if resp.Code != http.StatusOK {
		t.Fatalf("me failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	// 6. Logout requires and clears the session
	resp = performRequest(r, http.MethodPost, "/logout", nil, nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("logout without session status=%d, want 401", resp.Code)
	}
	resp = performRequest(r, http.MethodPost, "/logout", nil, cookie)
	if resp.Code != http.StatusOK {
		t.Fatalf("logout failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	cleared := sessionCookieFrom(resp)
	if cleared == nil || cleared.Value != "" || cleared.MaxAge >= 0 {
		t.Fatalf("logout did not clear the session cookie: %+v", cleared)
	}
}
