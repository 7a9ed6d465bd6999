package transport

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fastPolicy(attempts int) RetryPolicy {
	return RetryPolicy{
		Attempts:     attempts,
		InitialDelay: time.Millisecond,
		Factor:       2,
		MaxDelay:     5 * time.Millisecond,
		Statuses:     []int{429, 500, 502, 503, 504},
	}
}

func TestRetryPolicy_Delay(t *testing.T) {
	p := RetryPolicy{InitialDelay: 5 * time.Second, Factor: 2, MaxDelay: 40 * time.Second}

	assert.Equal(t, 5*time.Second, p.Delay(0))
	assert.Equal(t, 10*time.Second, p.Delay(1))
	assert.Equal(t, 20*time.Second, p.Delay(2))
	assert.Equal(t, 40*time.Second, p.Delay(3))
	assert.Equal(t, 40*time.Second, p.Delay(10), "capped at max delay")
}

func TestRetryTransport_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := NewClient(fastPolicy(4), time.Second, testLogger())
	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), calls.Load())
}

func TestRetryTransport_ReturnsLastResponseWhenExhausted(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(fastPolicy(3), time.Second, testLogger())
	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, int32(3), calls.Load())
}

func TestRetryTransport_DoesNotRetryOtherStatuses(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(fastPolicy(4), time.Second, testLogger())
	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRetryTransport_ReplaysBody(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "action=search", string(body))
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(fastPolicy(3), time.Second, testLogger())
	req, err := http.NewRequest(http.MethodPost, server.URL, strings.NewReader("action=search"))
	require.NoError(t, err)
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(2), calls.Load())
}

func TestRetryTransport_SingleAttempt(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(fastPolicy(1), time.Second, testLogger())
	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRetryTransport_StopsOnCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	policy := fastPolicy(5)
	policy.InitialDelay = time.Hour
	policy.MaxDelay = time.Hour
	client := NewClient(policy, 0, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	start := time.Now()
	_, err = client.Do(req)
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 10*time.Second)
}
