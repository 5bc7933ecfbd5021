package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	vcderrors "github.com/kbukum/vcd/errors"
)

func basicHeader(user, org, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+"@"+org+":"+password))
}

func TestSetCredentials_BasicLogin(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/cloudapi/1.0.0/sessions" && r.Method == http.MethodPost {
			if got := r.Header.Get("Authorization"); got != basicHeader("alice", "dept", "secret") {
				t.Errorf("expected basic credentials, got %q", got)
			}
			w.Header().Set("X-VMWARE-VCLOUD-TOKEN-TYPE", "Bearer")
			w.Header().Set("X-VMWARE-VCLOUD-ACCESS-TOKEN", "tok-123")
			fmt.Fprint(w, `{"id":"s-1","user":{"name":"alice"},"org":{"name":"dept"}}`)
			return
		}
		// Post-login calls carry the issued token.
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("expected issued token on follow-up call, got %q", got)
		}
		fmt.Fprint(w, `{}`)
	}))

	err := c.SetCredentials(context.Background(), BasicCredentials{User: "alice", Org: "dept", Password: "secret"})
	if err != nil {
		t.Fatalf("SetCredentials: %v", err)
	}

	if got := c.Token(); got != "tok-123" {
		t.Errorf("expected held token, got %q", got)
	}
	if got := c.User(); got != "alice" {
		t.Errorf("expected user alice, got %q", got)
	}
	if got := c.Org(); got != "dept" {
		t.Errorf("expected org dept, got %q", got)
	}

	if _, err := c.Execute(context.Background(), Request{Method: http.MethodGet, URL: c.CloudAPIURL("/1.0.0/orgs")}); err != nil {
		t.Fatalf("follow-up call: %v", err)
	}
}

func TestSetCredentials_SystemOrgUsesProviderEndpoint(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cloudapi/1.0.0/sessions/provider" {
			t.Errorf("expected provider endpoint, got %s", r.URL.Path)
		}
		w.Header().Set("X-VMWARE-VCLOUD-ACCESS-TOKEN", "tok-sys")
		fmt.Fprint(w, `{"id":"s-2","user":{"name":"admin"},"org":{"name":"System"}}`)
	}))

	err := c.SetCredentials(context.Background(), BasicCredentials{User: "admin", Org: "System", Password: "secret"})
	if err != nil {
		t.Fatalf("SetCredentials: %v", err)
	}
	if got := c.Token(); got != "tok-sys" {
		t.Errorf("expected held token, got %q", got)
	}
}

func TestSetCredentials_TokenTypeDefaultsToBearer(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.Header().Set("X-VMWARE-VCLOUD-ACCESS-TOKEN", "tok-9")
			fmt.Fprint(w, `{"id":"s-9"}`)
			return
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-9" {
			t.Errorf("expected Bearer default, got %q", got)
		}
		fmt.Fprint(w, `{}`)
	}))

	if err := c.SetCredentials(context.Background(), BasicCredentials{User: "u", Org: "o", Password: "p"}); err != nil {
		t.Fatalf("SetCredentials: %v", err)
	}
	if _, err := c.Execute(context.Background(), Request{Method: http.MethodGet, URL: c.CloudAPIURL("/1.0.0/orgs")}); err != nil {
		t.Fatalf("follow-up call: %v", err)
	}
}

func TestSetCredentials_MissingAccessToken(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"s-1"}`)
	}))

	err := c.SetCredentials(context.Background(), BasicCredentials{User: "u", Org: "o", Password: "p"})
	if !vcderrors.IsAuthenticationError(err) {
		t.Fatalf("expected authentication error, got %v", err)
	}
	if c.Token() != "" {
		t.Error("expected no token held after failed login")
	}
}

func TestSetCredentials_BadPassword(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message":"Log in failed."}`)
	}))

	err := c.SetCredentials(context.Background(), BasicCredentials{User: "u", Org: "o", Password: "wrong"})
	if !vcderrors.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized response error, got %v", err)
	}
}

func TestSetCredentials_BearerValidates(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/cloudapi/1.0.0/sessions" {
			t.Errorf("expected GET /cloudapi/1.0.0/sessions, got %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-77" {
			t.Errorf("expected bearer token on validation, got %q", got)
		}
		fmt.Fprint(w, `{"resultTotal":1,"values":[{"id":"s-7","user":{"name":"bob"},"org":{"name":"dept"}}]}`)
	}))

	if err := c.SetCredentials(context.Background(), BearerCredentials{Token: "tok-77"}); err != nil {
		t.Fatalf("SetCredentials: %v", err)
	}
	if got := c.Token(); got != "tok-77" {
		t.Errorf("expected held token, got %q", got)
	}
	if got := c.User(); got != "bob" {
		t.Errorf("expected user bob, got %q", got)
	}
}

func TestSetCredentials_BearerMatchesNoSession(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"resultTotal":0,"values":[]}`)
	}))

	err := c.SetCredentials(context.Background(), BearerCredentials{Token: "stale"})
	if !vcderrors.IsAuthenticationError(err) {
		t.Fatalf("expected authentication error, got %v", err)
	}
}

func TestLogout(t *testing.T) {
	var deleted bool
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			w.Header().Set("X-VMWARE-VCLOUD-ACCESS-TOKEN", "tok-1")
			fmt.Fprint(w, `{"id":"s-1","user":{"name":"alice"}}`)
		case r.Method == http.MethodDelete:
			deleted = true
			if r.URL.Path != "/cloudapi/1.0.0/sessions/s-1" {
				t.Errorf("expected session delete path, got %s", r.URL.Path)
			}
			w.WriteHeader(http.StatusNoContent)
		}
	}))

	if err := c.SetCredentials(context.Background(), BasicCredentials{User: "alice", Org: "dept", Password: "pw"}); err != nil {
		t.Fatalf("SetCredentials: %v", err)
	}
	if err := c.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if !deleted {
		t.Error("expected the server-side session deleted")
	}
	if c.Token() != "" || c.Session() != nil {
		t.Error("expected credentials cleared after logout")
	}
}

func TestLogout_ClearsCredentialsOnServerError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.Header().Set("X-VMWARE-VCLOUD-ACCESS-TOKEN", "tok-1")
			fmt.Fprint(w, `{"id":"s-1"}`)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))

	if err := c.SetCredentials(context.Background(), BasicCredentials{User: "u", Org: "o", Password: "p"}); err != nil {
		t.Fatalf("SetCredentials: %v", err)
	}

	err := c.Logout(context.Background())
	if !vcderrors.IsInternalServerError(err) {
		t.Fatalf("expected server error surfaced, got %v", err)
	}
	if c.Token() != "" || c.Session() != nil {
		t.Error("expected credentials cleared despite server error")
	}
}

func TestLogout_NoSession(t *testing.T) {
	c, err := New(Config{Host: "https://vcd.example.com"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.Logout(context.Background()); err == nil {
		t.Fatal("expected error for logout without session")
	}
}

func TestTokenExpiry(t *testing.T) {
	expiry := time.Now().Add(8 * time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": expiry.Unix(),
		"sub": "alice",
	}).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-VMWARE-VCLOUD-ACCESS-TOKEN", signed)
		fmt.Fprint(w, `{"id":"s-1"}`)
	}))

	if err := c.SetCredentials(context.Background(), BasicCredentials{User: "alice", Org: "dept", Password: "pw"}); err != nil {
		t.Fatalf("SetCredentials: %v", err)
	}

	got, err := c.TokenExpiry()
	if err != nil {
		t.Fatalf("TokenExpiry: %v", err)
	}
	if !got.Equal(expiry) {
		t.Errorf("expected expiry %v, got %v", expiry, got)
	}
}

func TestTokenExpiry_NoToken(t *testing.T) {
	c, err := New(Config{Host: "https://vcd.example.com"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.TokenExpiry(); err == nil {
		t.Fatal("expected error without a token")
	}
}

func TestTokenExpiry_OpaqueToken(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-VMWARE-VCLOUD-ACCESS-TOKEN", "not-a-jwt")
		fmt.Fprint(w, `{"id":"s-1"}`)
	}))

	if err := c.SetCredentials(context.Background(), BasicCredentials{User: "u", Org: "o", Password: "p"}); err != nil {
		t.Fatalf("SetCredentials: %v", err)
	}
	if _, err := c.TokenExpiry(); err == nil {
		t.Fatal("expected parse error for an opaque token")
	}
}
