package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rodvers/internal/infrastructure/ratelimit"
)

type stubTokens struct{}

func (stubTokens) Sign(userID string, admin bool) (string, error) {
	return "valid-" + userID, nil
}

func (stubTokens) Verify(token string) (string, bool, error) {
	if len(token) > 6 && token[:6] == "valid-" {
		return token[6:], false, nil
	}
	return "", false, fmt.Errorf("bad token")
}

func runMiddleware(mw echo.MiddlewareFunc, mutate func(*http.Request)) (*httptest.ResponseRecorder, string) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var capturedUserID string
	handler := mw(func(c echo.Context) error {
		capturedUserID = UserID(c)
		return c.NoContent(http.StatusOK)
	})
	_ = handler(c)
	return rec, capturedUserID
}

func TestRequireAuthWithoutHeader(t *testing.T) {
	m := NewAuthMiddleware(stubTokens{})

	rec, _ := runMiddleware(m.RequireAuth, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestRequireAuthWithBadToken(t *testing.T) {
	m := NewAuthMiddleware(stubTokens{})

	rec, _ := runMiddleware(m.RequireAuth, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer garbage")
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthWithValidToken(t *testing.T) {
	m := NewAuthMiddleware(stubTokens{})

	rec, userID := runMiddleware(m.RequireAuth, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer valid-user-42")
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", userID)
}

func TestRequireAuthRejectsMalformedHeader(t *testing.T) {
	m := NewAuthMiddleware(stubTokens{})

	rec, _ := runMiddleware(m.RequireAuth, func(req *http.Request) {
		req.Header.Set("Authorization", "valid-user-42")
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptionalAuthPassesAnonymous(t *testing.T) {
	m := NewAuthMiddleware(stubTokens{})

	rec, userID := runMiddleware(m.OptionalAuth, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, userID)
}

func TestOptionalAuthAttachesIdentity(t *testing.T) {
	m := NewAuthMiddleware(stubTokens{})

	rec, userID := runMiddleware(m.OptionalAuth, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer valid-user-42")
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", userID)
}

func TestOptionalAuthIgnoresInvalidToken(t *testing.T) {
	m := NewAuthMiddleware(stubTokens{})

	rec, userID := runMiddleware(m.OptionalAuth, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer garbage")
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, userID)
}

func TestWebhookSecret(t *testing.T) {
	mw := WebhookSecret("s3cret")

	rec, _ := runMiddleware(mw, func(req *http.Request) {
		req.Header.Set(PromoteSecretHeader, "s3cret")
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = runMiddleware(mw, func(req *http.Request) {
		req.Header.Set(PromoteSecretHeader, "wrong")
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = runMiddleware(mw, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWebhookSecretDisabledWhenUnconfigured(t *testing.T) {
	mw := WebhookSecret("")

	// Even an empty provided header must not match an empty configured secret.
	rec, _ := runMiddleware(mw, func(req *http.Request) {
		req.Header.Set(PromoteSecretHeader, "")
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRateLimitThrottlesPerClient(t *testing.T) {
	limiter := ratelimit.NewKeyedLimiter(1, 2)
	mw := RateLimit(limiter)

	asClient := func(ip string) int {
		rec, _ := runMiddleware(mw, func(req *http.Request) {
			req.Header.Set(echo.HeaderXRealIP, ip)
		})
		return rec.Code
	}

	require.Equal(t, http.StatusOK, asClient("10.0.0.1"))
	require.Equal(t, http.StatusOK, asClient("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, asClient("10.0.0.1"))

	// A different client has its own bucket.
	assert.Equal(t, http.StatusOK, asClient("10.0.0.2"))
}
