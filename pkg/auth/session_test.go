package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	secret := SessionSecretBytes("a-long-enough-session-secret-value")
	token := CreateSessionToken("operator", secret)

	username, err := VerifySessionToken(token, secret)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if username != "operator" {
		t.Errorf("want operator, got %q", username)
	}
}

func TestSessionToken_RejectsTampering(t *testing.T) {
	secret := SessionSecretBytes("a-long-enough-session-secret-value")
	token := CreateSessionToken("operator", secret)

	// Forge a token for a different user with the original signature.
	forged := CreateSessionToken("intruder", secret)
	parts := strings.SplitN(token, ".", 2)
	forgedParts := strings.SplitN(forged, ".", 2)
	if _, err := VerifySessionToken(forgedParts[0]+"."+parts[1], secret); err == nil {
		t.Error("mismatched payload/signature accepted")
	}

	if _, err := VerifySessionToken(token, SessionSecretBytes("another-secret-entirely-here....")); err == nil {
		t.Error("token verified against the wrong secret")
	}
	if _, err := VerifySessionToken("no-dot-separator", secret); err == nil {
		t.Error("malformed token accepted")
	}
}

func TestSessionSecretBytes_PadsShortSecrets(t *testing.T) {
	b := SessionSecretBytes("short")
	if len(b) != 32 {
		t.Errorf("expected 32-byte key, got %d", len(b))
	}
	long := strings.Repeat("x", 48)
	if got := SessionSecretBytes(long); len(got) != 48 {
		t.Errorf("long secrets must pass through, got %d bytes", len(got))
	}
}

func TestRequireAuth_AllowsValidSession(t *testing.T) {
	secret := SessionSecretBytes("a-long-enough-session-secret-value")
	var gotAdmin string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAdmin, _ = AdminFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/api/admin/services", nil)
	req.AddCookie(&http.Cookie{
		Name:  SessionCookieName(),
		Value: CreateSessionToken("operator", secret),
	})
	rec := httptest.NewRecorder()
	RequireAuth(secret)(inner).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotAdmin != "operator" {
		t.Errorf("admin not in context: %q", gotAdmin)
	}
}

func TestRequireAuth_RejectsMissingAndInvalidCookies(t *testing.T) {
	secret := SessionSecretBytes("a-long-enough-session-secret-value")
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("inner handler called without a valid session")
	})
	handler := RequireAuth(secret)(inner)

	req := httptest.NewRequest("GET", "/api/admin/services", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("missing cookie: expected 401, got %d", rec.Code)
	}

	req = httptest.NewRequest("GET", "/api/admin/services", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName(), Value: "garbage.token"})
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("invalid cookie: expected 401, got %d", rec.Code)
	}
}

func TestDevAuth_InjectsDummyAdmin(t *testing.T) {
	var gotAdmin string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAdmin, _ = AdminFromContext(r.Context())
	})

	req := httptest.NewRequest("GET", "/api/admin/services", nil)
	DevAuth(inner).ServeHTTP(httptest.NewRecorder(), req)

	if gotAdmin != DevAdmin {
		t.Errorf("expected %q, got %q", DevAdmin, gotAdmin)
	}
}
