package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kbukum/vcd/logger"
	"github.com/kbukum/vcd/model"
	"github.com/kbukum/vcd/observability"
	"github.com/kbukum/vcd/schema"

	vcderrors "github.com/kbukum/vcd/errors"
)

// Credentials authenticates a client against the /cloudapi session
// endpoint. The two implementations are BasicCredentials for a fresh
// login and BearerCredentials for resuming with a saved token.
type Credentials interface {
	authenticate(ctx context.Context, c *Client) error
}

// BasicCredentials logs in with a username, organization, and password.
// The organization "system" (any case) selects the provider session
// endpoint.
type BasicCredentials struct {
	User     string
	Org      string
	Password string
}

func (b BasicCredentials) authenticate(ctx context.Context, c *Client) error {
	path := "/1.0.0/sessions"
	if strings.EqualFold(b.Org, "system") {
		path = "/1.0.0/sessions/provider"
	}

	basic := base64.StdEncoding.EncodeToString(
		[]byte(b.User + "@" + b.Org + ":" + b.Password))

	result, err := c.Execute(ctx, Request{
		Method:       http.MethodPost,
		URL:          c.CloudAPIURL(path),
		Headers:      map[string]any{"Authorization": "Basic " + basic},
		ResponseType: schema.Named(model.TypeSession),
	})
	if err != nil {
		return err
	}

	token := result.Headers.Get(headerAccessToken)
	if token == "" {
		return &vcderrors.AuthenticationError{Message: "no access token in login response"}
	}
	tokenType := result.Headers.Get(headerTokenType)
	if tokenType == "" {
		tokenType = "Bearer"
	}

	session, _ := result.Decoded.(*model.Session)
	c.setSession(tokenType+" "+token, token, session)
	c.log.Info("session established", logger.Fields(
		"user", b.User,
		"org", b.Org,
	))
	return nil
}

// BearerCredentials resumes a session from a previously issued access
// token, validating it against the server.
type BearerCredentials struct {
	Token string
}

func (b BearerCredentials) authenticate(ctx context.Context, c *Client) error {
	result, err := c.Execute(ctx, Request{
		Method:       http.MethodGet,
		URL:          c.CloudAPIURL("/1.0.0/sessions"),
		Headers:      map[string]any{"Authorization": "Bearer " + b.Token},
		ResponseType: schema.Named(model.TypeSessions),
	})
	if err != nil {
		return err
	}

	sessions, _ := result.Decoded.(*model.Sessions)
	if sessions == nil || len(sessions.Values) == 0 {
		return &vcderrors.AuthenticationError{Message: "token matches no active session"}
	}

	c.setSession("Bearer "+b.Token, b.Token, sessions.Values[0])
	return nil
}

// SetCredentials authenticates the client. On success the session is
// retained and every subsequent request carries the issued token.
func (c *Client) SetCredentials(ctx context.Context, creds Credentials) error {
	ctx, span := observability.StartSpan(ctx, observability.SpanSessionAuth)
	defer span.End()

	err := creds.authenticate(ctx, c)
	if err != nil {
		observability.SetSpanError(ctx, err)
	}
	return err
}

func (c *Client) setSession(authHeader, token string, s *model.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authHeader = authHeader
	c.token = token
	c.session = s
}

// Session returns the authenticated session, nil before login.
func (c *Client) Session() *model.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Token returns the raw access token, empty before login. Persist it to
// resume later with BearerCredentials.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// User returns the logged-in user name, empty before login.
func (c *Client) User() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil || c.session.User == nil || c.session.User.Name == nil {
		return ""
	}
	return *c.session.User.Name
}

// Org returns the logged-in organization name, empty before login.
func (c *Client) Org() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil || c.session.Org == nil || c.session.Org.Name == nil {
		return ""
	}
	return *c.session.Org.Name
}

// TokenExpiry reports when the held access token expires. The token is a
// JWT issued by the server; its claims are read without signature
// verification, which is fine for scheduling a re-login but never for
// trusting the claims.
func (c *Client) TokenExpiry() (time.Time, error) {
	token := c.Token()
	if token == "" {
		return time.Time{}, fmt.Errorf("client: no access token held")
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("client: parse access token: %w", err)
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, fmt.Errorf("client: access token carries no expiry")
	}
	return exp.Time, nil
}

// Logout deletes the server-side session and drops the held credentials.
// Credentials are dropped even when the server call fails, so a client is
// always unauthenticated after Logout returns.
func (c *Client) Logout(ctx context.Context) error {
	c.mu.Lock()
	session := c.session
	c.mu.Unlock()

	if session == nil || session.Id == nil {
		return fmt.Errorf("client: no active session")
	}

	_, err := c.Execute(ctx, Request{
		Method: http.MethodDelete,
		URL:    c.CloudAPIURL("/1.0.0/sessions/" + *session.Id),
	})
	if err != nil {
		c.log.Warn("logout failed, dropping credentials anyway", logger.ErrorFields("logout", err))
	}

	c.setSession("", "", nil)
	return err
}
