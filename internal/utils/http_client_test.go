package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
	assert.NoError(t, client1.Wait(context.Background()), "unthrottled client never waits")
}

func TestHTTPClient_WithRateLimit(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	client := NewHTTPClient().WithRateLimit(20)

	start := time.Now()
	for range 25 {
		_, err := client.R().Get(srv.URL)
		require.NoError(t, err)
	}

	assert.Equal(t, int32(25), hits.Load())
	// the first 20 requests use the burst, the rest wait about 50ms each
	assert.GreaterOrEqual(t, time.Since(start), 200*time.Millisecond)
}

func TestHTTPClient_ThrottleHonoursContext(t *testing.T) {
	client := NewHTTPClient().WithRateLimit(0.001)
	require.NoError(t, client.Wait(context.Background()), "burst of one")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, client.Wait(ctx))
}

func TestHTTPClient_SiblingSharesLimiter(t *testing.T) {
	client := NewHTTPClient().WithRateLimit(0.001)
	sibling := client.Sibling()

	require.NoError(t, client.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, sibling.Wait(ctx), "burst already spent by the other client")

	assert.NoError(t, NewHTTPClient().Sibling().Wait(context.Background()))
}

func TestUUIDGenerator(t *testing.T) {
	g := NewUUIDGenerator()
	a, b := g.Generate(), g.Generate()

	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
	assert.Less(t, a, b, "v7 names sort by creation time")
}
