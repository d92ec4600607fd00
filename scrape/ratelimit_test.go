package scrape_test

import (
	"context"
	"testing"
	"time"

	"recast/scrape"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_PacesSameDomain(t *testing.T) {
	t.Parallel()

	limiter := scrape.NewDomainLimiter(20) // 50ms between requests

	ctx := context.Background()
	start := time.Now()
	require.NoError(t, limiter.Wait(ctx, "example.com"))
	require.NoError(t, limiter.Wait(ctx, "example.com"))
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 40*time.Millisecond)
}

func TestDomainLimiter_IndependentDomains(t *testing.T) {
	t.Parallel()

	limiter := scrape.NewDomainLimiter(1) // 1s between requests per domain

	ctx := context.Background()
	start := time.Now()
	require.NoError(t, limiter.Wait(ctx, "a.example.com"))
	require.NoError(t, limiter.Wait(ctx, "b.example.com"))
	elapsed := time.Since(start)

	// Different domains must not wait on each other.
	assert.Less(t, elapsed, 500*time.Millisecond)
}

func TestDomainLimiter_RespectsContextCancellation(t *testing.T) {
	t.Parallel()

	limiter := scrape.NewDomainLimiter(0.1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	require.NoError(t, limiter.Wait(ctx, "example.com"))
	err := limiter.Wait(ctx, "example.com")
	require.Error(t, err)
}
