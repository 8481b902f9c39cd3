package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	app.Get("/test", func(c *fiber.Ctx) error {
		rid := c.Locals(RequestIDLocalKey)
		return c.SendString(rid.(string))
	})

	t.Run("should generate new request id if not present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		ridHeader := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, ridHeader)

		// Check if it's readable in handler (from response body)
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, ridHeader, buf.String())
	})

	t.Run("should preserve existing request id", func(t *testing.T) {
		existingID := "test-id-123"
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, existingID)

		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, existingID, resp.Header.Get(RequestIDHeader))

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, existingID, buf.String())
	})

	t.Run("should replace unusable request id", func(t *testing.T) {
		for _, bad := range []string{"has space", strings.Repeat("x", 129)} {
			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set(RequestIDHeader, bad)

			resp, _ := app.Test(req)

			got := resp.Header.Get(RequestIDHeader)
			assert.NotEqual(t, bad, got)
			assert.Len(t, got, 36)
		}
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	loc := time.UTC

	// Logger usually depends on RequestID for request_id field
	app.Use(RequestID())
	app.Use(LoggerWithWriter(&buf, loc))

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	// Verify log output
	var logData map[string]any
	err := json.Unmarshal(buf.Bytes(), &logData)
	assert.NoError(t, err)

	assert.NotEmpty(t, logData["request_id"])
	assert.Equal(t, "GET", logData["method"])
	assert.Equal(t, "/test", logData["path"])
	assert.Equal(t, float64(fiber.StatusAccepted), logData["status"])
	assert.NotNil(t, logData["latency"])
	assert.NotEmpty(t, logData["ts"])
}

func TestLogger_RendersHandlerErrors(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(RequestID())
	app.Use(LoggerWithWriter(&buf, time.UTC))

	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var logData map[string]any
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &logData))
	assert.Equal(t, "warn", logData["level"])
	assert.Equal(t, float64(fiber.StatusNotFound), logData["status"])
}

func TestRateLimit(t *testing.T) {
	app := fiber.New()
	app.Post("/contact", RateLimit(0.001, 2), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})
	app.Post("/other", RateLimit(0.001, 1), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/contact", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("POST", "/contact", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "1000", resp.Header.Get(fiber.HeaderRetryAfter))

	// separate limiter instances keep separate buckets
	resp, err = app.Test(httptest.NewRequest("POST", "/other", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func proxiedApp() *fiber.App {
	// app.Test connections come from 0.0.0.0.
	return fiber.New(fiber.Config{
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0"},
		EnableIPValidation:      true,
	})
}

func forwardedRequest(ip string) *http.Request {
	req := httptest.NewRequest("POST", "/contact", nil)
	req.Header.Set(fiber.HeaderXForwardedFor, ip)
	return req
}

func TestRateLimit_ForwardedClients(t *testing.T) {
	app := proxiedApp()
	app.Post("/contact", RateLimit(0.001, 1), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	for _, ip := range []string{"198.51.100.1", "198.51.100.2", "198.51.100.3", "198.51.100.4"} {
		resp, err := app.Test(forwardedRequest(ip))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode, ip)
	}

	resp, err := app.Test(forwardedRequest("198.51.100.2"))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func storeSize(s *limiterStore) int {
	n := 0
	s.m.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}

func TestLimiterStore_Sweep(t *testing.T) {
	t0 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s := &limiterStore{rps: 1, burst: 2}

	assert.True(t, s.get("busy", t0).AllowN(t0, 1))
	s.get("idle", t0)
	require.Equal(t, 2, storeSize(s))

	s.sweep(t0)
	assert.Equal(t, 1, storeSize(s))
	_, ok := s.m.Load("busy")
	assert.True(t, ok)

	s.sweep(t0.Add(2 * time.Second))
	assert.Equal(t, 0, storeSize(s))
}

func TestLimiterStore_SweepsOnInterval(t *testing.T) {
	t0 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s := &limiterStore{rps: 0.001, burst: 1}

	assert.True(t, s.get("busy", t0).AllowN(t0, 1))
	for i := 0; i < 1000; i++ {
		s.get("ip:10.0.0."+strconv.Itoa(i), t0)
	}
	require.Equal(t, 1001, storeSize(s))

	late := t0.Add(sweepInterval / 2)
	assert.True(t, s.get("late", late).AllowN(late, 1))
	assert.Equal(t, 1002, storeSize(s))

	s.get("later", t0.Add(sweepInterval))
	assert.Equal(t, 3, storeSize(s), "only busy, late and later remain")
}
