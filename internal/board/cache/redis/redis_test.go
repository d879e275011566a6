package redis

import (
	"context"
	"testing"
	"time"

	"github.com/driftlab/driftboard/internal/board/cache"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startRedis runs a throwaway redis container. Tests are skipped when no
// container runtime is available, e.g. in restricted CI sandboxes.
func startRedis(t *testing.T) string {
	t.Helper()

	// GenericContainer panics rather than erroring when no provider is
	// reachable, so probe provider health first.
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("container runtime unavailable: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)
	return endpoint
}

func TestRedisCacheRoundTrip(t *testing.T) {
	addr := startRedis(t)
	ctx := context.Background()

	c, err := New(ctx, addr, "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), got)

	require.NoError(t, c.Del(ctx, "k"))
	_, err = c.Get(ctx, "k")
	require.ErrorIs(t, err, cache.ErrCacheMiss)
}

func TestRedisCacheExpiry(t *testing.T) {
	addr := startRedis(t)
	ctx := context.Background()

	c, err := New(ctx, addr, "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 100*time.Millisecond))

	require.Eventually(t, func() bool {
		_, err := c.Get(ctx, "k")
		return err == cache.ErrCacheMiss
	}, 5*time.Second, 50*time.Millisecond)
}
